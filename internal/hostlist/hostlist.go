// Package hostlist loads and expands the monitored host list. A hosts file
// contains one entry per line: an address optionally followed by a comma and
// a friendly display name. Addresses may be hostnames, single IPs, IPv4 CIDR
// blocks, or IPv4 ranges (start-end), which are expanded in place. File
// order defines the dashboard's row order.
package hostlist

import (
	"bufio"
	"io"
	"net"
	"net/netip"
	"os"
	"strings"

	"github.com/rileyhilliard/pingwatch/internal/errors"
	"github.com/rileyhilliard/pingwatch/internal/logger"
)

// Entry is one monitored host: a probe target and an optional friendly name.
type Entry struct {
	Address string
	Name    string
}

// ParseFile reads and expands a hosts file. An unreadable file or a file
// that yields zero valid entries is an error; invalid CIDR/range lines are
// logged as warnings and skipped.
func ParseFile(path string, log logger.Logger) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrHosts,
			"Cannot read hosts file: "+path,
			"Create it with one address per line, or point --hosts-file elsewhere")
	}
	defer f.Close()

	entries, err := Parse(f, log)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, errors.New(errors.ErrHosts,
			"No hosts to monitor in "+path,
			"Add at least one address, CIDR block, or address range")
	}

	return entries, nil
}

// Parse reads entries from r, expanding CIDR blocks and ranges.
func Parse(r io.Reader, log logger.Logger) ([]Entry, error) {
	if log == nil {
		log = logger.Noop()
	}

	var entries []Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		addrPart := line
		namePart := ""
		if i := strings.IndexByte(line, ','); i >= 0 {
			addrPart = strings.TrimSpace(line[:i])
			namePart = strings.TrimSpace(line[i+1:])
		}
		if addrPart == "" {
			continue
		}

		for _, addr := range expand(addrPart, log) {
			entries = append(entries, Entry{Address: addr, Name: namePart})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrHosts,
			"Failed reading hosts file",
			"Check the file is a plain text file")
	}

	return entries, nil
}

// expand turns one address token into its list of probe targets.
func expand(token string, log logger.Logger) []string {
	switch {
	case strings.Contains(token, "/"):
		addrs, err := expandCIDR(token)
		if err != nil {
			log.Warn("skipping invalid CIDR %q: %v", token, err)
			return nil
		}
		return addrs

	case looksLikeRange(token):
		addrs, err := expandRange(token)
		if err != nil {
			log.Warn("skipping invalid range %q: %v", token, err)
			return nil
		}
		return addrs

	default:
		return []string{token}
	}
}

// looksLikeRange reports whether token is an IPv4 range like
// "10.0.0.1-10.0.0.9". Hostnames may legitimately contain dashes, so both
// sides must parse as IPv4 addresses.
func looksLikeRange(token string) bool {
	i := strings.IndexByte(token, '-')
	if i < 0 {
		return false
	}
	start, err1 := netip.ParseAddr(strings.TrimSpace(token[:i]))
	end, err2 := netip.ParseAddr(strings.TrimSpace(token[i+1:]))
	return err1 == nil && err2 == nil && start.Is4() && end.Is4()
}

// expandCIDR returns the usable host addresses of an IPv4 network in order.
// For /31 and /32 every address is usable; otherwise the network and
// broadcast addresses are excluded.
func expandCIDR(token string) ([]string, error) {
	prefix, err := netip.ParsePrefix(token)
	if err != nil {
		// Accept non-canonical forms like 10.0.0.5/24 the way the
		// stdlib net package does.
		ip, ipnet, perr := net.ParseCIDR(token)
		if perr != nil || ip.To4() == nil {
			return nil, err
		}
		ones, _ := ipnet.Mask.Size()
		addr, _ := netip.AddrFromSlice(ipnet.IP.To4())
		prefix = netip.PrefixFrom(addr, ones)
	}
	if !prefix.Addr().Is4() {
		return nil, errors.New(errors.ErrHosts, "only IPv4 CIDR blocks are supported", "")
	}

	prefix = prefix.Masked()
	var addrs []string

	if prefix.Bits() >= 31 {
		for a := prefix.Addr(); prefix.Contains(a); a = a.Next() {
			addrs = append(addrs, a.String())
		}
		return addrs, nil
	}

	// Skip network address, stop before broadcast.
	last := broadcastOf(prefix)
	for a := prefix.Addr().Next(); a.Less(last); a = a.Next() {
		addrs = append(addrs, a.String())
	}
	return addrs, nil
}

// broadcastOf returns the highest address in an IPv4 prefix.
func broadcastOf(prefix netip.Prefix) netip.Addr {
	a4 := prefix.Addr().As4()
	hostBits := 32 - prefix.Bits()
	v := uint32(a4[0])<<24 | uint32(a4[1])<<16 | uint32(a4[2])<<8 | uint32(a4[3])
	v |= (1 << hostBits) - 1
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// expandRange returns every address from start to end inclusive.
func expandRange(token string) ([]string, error) {
	i := strings.IndexByte(token, '-')
	start, err := netip.ParseAddr(strings.TrimSpace(token[:i]))
	if err != nil {
		return nil, err
	}
	end, err := netip.ParseAddr(strings.TrimSpace(token[i+1:]))
	if err != nil {
		return nil, err
	}
	if end.Less(start) {
		return nil, errors.New(errors.ErrHosts, "range start is after range end", "")
	}

	// Compare before advancing: Next() past 255.255.255.255 yields an
	// invalid Addr, which sorts before every valid one and would keep the
	// loop alive forever.
	var addrs []string
	for a := start; ; a = a.Next() {
		addrs = append(addrs, a.String())
		if a == end {
			break
		}
	}
	return addrs, nil
}
