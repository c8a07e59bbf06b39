package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/VividCortex/ewma"
)

// DefaultHistorySize is the default number of samples retained per host.
const DefaultHistorySize = 10

// labelUnavailable is shown when the most recent probe failed.
const labelUnavailable = "unavailable"

// HostRecord tracks one monitored host: its identity, a fixed-size ring of
// recent samples, and the statistics derived from them. Exactly one prober
// goroutine writes a record; the dashboard reads through Snapshot.
type HostRecord struct {
	mu sync.Mutex

	address      string
	displayName  string
	resolvedName string

	ring  *ringBuffer
	stats Stats

	smoothed ewma.MovingAverage

	now func() time.Time
}

// NewHostRecord creates a record with an empty window of the given size.
func NewHostRecord(address, displayName, resolvedName string, historySize int) *HostRecord {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &HostRecord{
		address:      address,
		displayName:  displayName,
		resolvedName: resolvedName,
		ring:         newRingBuffer(historySize),
		smoothed:     ewma.NewMovingAverage(),
		now:          time.Now,
	}
}

// Address returns the probe target.
func (r *HostRecord) Address() string {
	return r.address
}

// ApplySample appends one probe result and recomputes all derived
// statistics over the rolling window.
func (r *HostRecord) ApplySample(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prevAvg := r.stats.AverageMillis

	r.ring.push(s)
	r.stats.SampleCount++
	r.stats.LastUpdate = r.now()
	r.stats.LastOK = s.OK

	if s.OK {
		r.stats.LastLabel = fmt.Sprintf("%.2f ms", s.Millis)
		r.smoothed.Add(s.Millis)
		r.stats.SmoothedMillis = r.smoothed.Value()
		r.stats.HasSmoothed = true
	} else {
		r.stats.LastLabel = labelUnavailable
	}

	window := r.ring.getAll()

	var (
		sum       float64
		successes int
		min, max  float64
	)
	for _, w := range window {
		if !w.OK {
			continue
		}
		if successes == 0 {
			min, max = w.Millis, w.Millis
		} else {
			if w.Millis < min {
				min = w.Millis
			}
			if w.Millis > max {
				max = w.Millis
			}
		}
		sum += w.Millis
		successes++
	}

	if successes == 0 {
		r.stats.AverageMillis = 0
		r.stats.HasAverage = false
		r.stats.JitterMillis = 0
		r.stats.SuccessRate = 0
		r.stats.Trend = TrendNone
		return
	}

	newAvg := sum / float64(successes)

	// Trend compares against the pre-update average. The first meaningful
	// average sets no direction; a zero prior average means there was
	// nothing to compare against yet.
	if prevAvg != 0 {
		switch {
		case newAvg > prevAvg:
			r.stats.Trend = TrendUp
		case newAvg < prevAvg:
			r.stats.Trend = TrendDown
		default:
			r.stats.Trend = TrendSteady
		}
	}

	r.stats.AverageMillis = newAvg
	r.stats.HasAverage = true
	r.stats.JitterMillis = max - min
	r.stats.SuccessRate = float64(successes) / float64(len(window)) * 100
}

// Snapshot returns a consistent copy of the record for rendering. The
// window slice is freshly allocated and safe to retain.
func (r *HostRecord) Snapshot() RecordView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return RecordView{
		Address:      r.address,
		DisplayName:  r.displayName,
		ResolvedName: r.resolvedName,
		Stats:        r.stats,
		Window:       r.ring.getAll(),
	}
}

// ringBuffer is a fixed-size circular buffer of samples.
type ringBuffer struct {
	data  []Sample
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]Sample, size),
		size: size,
	}
}

// push adds a sample, evicting the oldest once the buffer is full.
func (r *ringBuffer) push(s Sample) {
	r.data[r.head] = s
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getAll returns the stored samples in chronological order (oldest first).
func (r *ringBuffer) getAll() []Sample {
	if r.count == 0 {
		return nil
	}

	result := make([]Sample, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
