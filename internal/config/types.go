package config

import "time"

// ConfigFileName is the default config file name.
const ConfigFileName = ".pingwatch.yaml"

// Config represents the complete .pingwatch.yaml configuration file.
type Config struct {
	// HostsFile is the path to the host list (one "address[,name]" per line).
	HostsFile string `yaml:"hosts_file" mapstructure:"hosts_file"`

	// PingInterval is the pause between two probes of the same host,
	// measured from the end of one probe to the start of the next.
	PingInterval time.Duration `yaml:"ping_interval" mapstructure:"ping_interval"`

	// ProbeTimeout bounds a single probe.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`

	// HistorySize is the number of samples kept per host for statistics.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// RefreshInterval is the dashboard redraw period.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`

	// ResolveTimeout bounds the best-effort reverse DNS lookup at startup.
	ResolveTimeout time.Duration `yaml:"resolve_timeout" mapstructure:"resolve_timeout"`

	Probe ProbeConfig `yaml:"probe" mapstructure:"probe"`
	Tiers TierConfig  `yaml:"tiers" mapstructure:"tiers"`
}

// ProbeConfig selects how reachability is measured.
type ProbeConfig struct {
	// Mode is "auto", "icmp", or "tcp". "auto" uses ICMP when a socket can
	// be opened and falls back to TCP connect probes otherwise.
	Mode string `yaml:"mode" mapstructure:"mode"`

	// TCPPort is the port used by TCP connect probes.
	TCPPort int `yaml:"tcp_port" mapstructure:"tcp_port"`
}

// TierConfig holds the latency severity thresholds, in milliseconds.
// Averages at or below Low render as healthy, at or below Medium as
// degraded, above Medium (and the no-data case) as critical.
type TierConfig struct {
	LowMillis    float64 `yaml:"low_ms" mapstructure:"low_ms"`
	MediumMillis float64 `yaml:"medium_ms" mapstructure:"medium_ms"`
}

// Probe mode values.
const (
	ProbeModeAuto = "auto"
	ProbeModeICMP = "icmp"
	ProbeModeTCP  = "tcp"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		HostsFile:       "hosts.txt",
		PingInterval:    time.Second,
		ProbeTimeout:    2 * time.Second,
		HistorySize:     10,
		RefreshInterval: time.Second,
		ResolveTimeout:  2 * time.Second,
		Probe: ProbeConfig{
			Mode:    ProbeModeAuto,
			TCPPort: 80,
		},
		Tiers: TierConfig{
			LowMillis:    50,
			MediumMillis: 150,
		},
	}
}
