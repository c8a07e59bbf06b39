package config

import (
	"fmt"

	"github.com/rileyhilliard/pingwatch/internal/errors"
)

// Validate checks a Config for values the monitor cannot run with.
func Validate(cfg *Config) error {
	if cfg.HostsFile == "" {
		return errors.New(errors.ErrConfig,
			"No hosts file configured",
			"Set hosts_file in "+ConfigFileName+" or pass --hosts-file")
	}

	if cfg.PingInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"ping_interval must be positive",
			"Use a duration like 1s or 500ms")
	}

	if cfg.ProbeTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			"probe_timeout must be positive",
			"Use a duration like 2s")
	}

	if cfg.RefreshInterval <= 0 {
		return errors.New(errors.ErrConfig,
			"refresh_interval must be positive",
			"Use a duration like 1s")
	}

	if cfg.HistorySize < 1 {
		return errors.New(errors.ErrConfig,
			"history_size must be at least 1",
			"10 is a good default")
	}

	switch cfg.Probe.Mode {
	case ProbeModeAuto, ProbeModeICMP, ProbeModeTCP:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown probe mode: %q", cfg.Probe.Mode),
			"Valid modes are auto, icmp, and tcp")
	}

	if cfg.Probe.TCPPort < 1 || cfg.Probe.TCPPort > 65535 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid TCP probe port: %d", cfg.Probe.TCPPort),
			"Use a port between 1 and 65535")
	}

	if cfg.Tiers.LowMillis <= 0 || cfg.Tiers.MediumMillis <= cfg.Tiers.LowMillis {
		return errors.New(errors.ErrConfig,
			"Latency tiers must satisfy 0 < low_ms < medium_ms",
			"Defaults are low_ms: 50, medium_ms: 150")
	}

	return nil
}
