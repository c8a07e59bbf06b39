package hostlist

import (
	"context"
	"net"
	"strings"
	"sync"
	"time"
)

// ReverseLookup resolves the PTR name for an address, best effort. On any
// failure (including hostnames, which have no PTR record here) it returns
// the address unchanged.
func ReverseLookup(ctx context.Context, address string, timeout time.Duration) string {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	names, err := net.DefaultResolver.LookupAddr(ctx, address)
	if err != nil || len(names) == 0 {
		return address
	}
	return strings.TrimSuffix(names[0], ".")
}

// ResolveNames performs reverse lookups for all entries concurrently and
// returns the names in entry order. Lookups are bounded by timeout and never
// fail: unresolvable addresses map to themselves.
func ResolveNames(ctx context.Context, entries []Entry, timeout time.Duration) []string {
	names := make([]string, len(entries))

	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Add(1)
		go func(i int, address string) {
			defer wg.Done()
			names[i] = ReverseLookup(ctx, address, timeout)
		}(i, e.Address)
	}
	wg.Wait()

	return names
}
