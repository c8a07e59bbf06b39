package monitor

import "time"

// Sample is a single probe observation. A failed probe is recorded with
// OK=false and contributes to the window without a latency value.
type Sample struct {
	Millis float64
	OK     bool
}

// Trend describes how the windowed average moved relative to the previous
// average. It is only meaningful once a prior nonzero average exists.
type Trend int

const (
	TrendNone Trend = iota
	TrendUp
	TrendDown
	TrendSteady
)

// Arrow returns the dashboard glyph for the trend. Steady and unset both
// render as a dash; only movement gets an arrow.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "-"
	}
}

// Stats holds the derived statistics for one host, computed over the
// rolling sample window on every probe.
type Stats struct {
	// LastLabel is the rendered latency of the most recent probe, or
	// "unavailable" when it failed.
	LastLabel string
	LastOK    bool

	// AverageMillis is the mean of successful samples in the window.
	// HasAverage is false while the window contains no successes.
	AverageMillis float64
	HasAverage    bool

	// SmoothedMillis is an exponentially weighted moving average of
	// successful latencies across the record's lifetime.
	SmoothedMillis float64
	HasSmoothed    bool

	// JitterMillis is max minus min of successful samples in the window.
	JitterMillis float64

	// SuccessRate is the percentage of window samples that succeeded.
	SuccessRate float64

	// SampleCount counts every probe since monitoring began, not just
	// those still in the window.
	SampleCount int

	Trend      Trend
	LastUpdate time.Time
}

// RecordView is an immutable snapshot of one host's state, safe to render
// while the owning prober keeps writing.
type RecordView struct {
	Address      string
	DisplayName  string
	ResolvedName string
	Stats        Stats
	Window       []Sample
}
