package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/pingwatch/internal/logger"
	"github.com/rileyhilliard/pingwatch/internal/probe"
)

// Prober drives the probe loop for a single host record. Each prober owns
// exactly one record; failures on one host never affect another.
type Prober struct {
	record   *HostRecord
	pinger   probe.Pinger
	interval time.Duration
	timeout  time.Duration
	log      logger.Logger
}

// NewProber creates a prober for record using pinger.
func NewProber(record *HostRecord, pinger probe.Pinger, interval, timeout time.Duration, log logger.Logger) *Prober {
	if log == nil {
		log = logger.Noop()
	}
	return &Prober{
		record:   record,
		pinger:   pinger,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

// Run probes the host until ctx is cancelled. The first probe fires
// immediately; cancellation interrupts the between-probe sleep rather than
// waiting for it to elapse.
func (p *Prober) Run(ctx context.Context) {
	for {
		p.probeOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// probeOnce performs a single probe and applies the outcome. Every failure
// kind maps to the same absent sample; the distinction only matters for
// debug logging.
func (p *Prober) probeOnce(ctx context.Context) {
	latency, err := p.pinger.Ping(ctx, p.record.Address(), p.timeout)
	if err != nil {
		// A shutdown-induced failure is not a sample.
		if ctx.Err() != nil {
			return
		}
		p.log.Debug("probe %s: %v", p.record.Address(), err)
		p.record.ApplySample(Sample{OK: false})
		return
	}

	p.record.ApplySample(Sample{
		Millis: float64(latency) / float64(time.Millisecond),
		OK:     true,
	})
}

// StartProbers launches one prober goroutine per record in the store and
// returns a WaitGroup that completes once all probers have observed
// cancellation.
func StartProbers(ctx context.Context, store *Store, pinger probe.Pinger, interval, timeout time.Duration, log logger.Logger) *sync.WaitGroup {
	var wg sync.WaitGroup
	for _, record := range store.Records() {
		wg.Add(1)
		go func(r *HostRecord) {
			defer wg.Done()
			NewProber(r, pinger, interval, timeout, log).Run(ctx)
		}(record)
	}
	return &wg
}
