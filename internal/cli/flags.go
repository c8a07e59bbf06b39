package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pingwatch/internal/config"
	"github.com/rileyhilliard/pingwatch/internal/errors"
)

// WatchFlags holds the flags shared by the root command and `watch`.
type WatchFlags struct {
	HostsFile string
	Interval  string
	Timeout   string
	History   int
	Refresh   string
	ProbeMode string
	TCPPort   int
}

// watchFlags backs both the root command and the explicit watch subcommand.
var watchFlags WatchFlags

// addWatchFlags registers the dashboard flags on a command.
func addWatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&watchFlags.HostsFile, "hosts-file", "", "path to the hosts file")
	cmd.Flags().StringVar(&watchFlags.Interval, "interval", "", "probe interval per host (e.g., 1s, 500ms)")
	cmd.Flags().StringVar(&watchFlags.Timeout, "timeout", "", "per-probe timeout (e.g., 2s)")
	cmd.Flags().IntVar(&watchFlags.History, "history", 0, "samples kept per host")
	cmd.Flags().StringVar(&watchFlags.Refresh, "refresh", "", "dashboard refresh interval (e.g., 1s)")
	cmd.Flags().StringVar(&watchFlags.ProbeMode, "probe-mode", "", "probe mode: auto, icmp, or tcp")
	cmd.Flags().IntVar(&watchFlags.TCPPort, "tcp-port", 0, "target port for tcp probes")
}

// parseDurationFlag parses a duration flag value. Returns zero when the
// flag is empty.
func parseDurationFlag(name, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid %s", value, name),
			"Try something like 1s, 500ms, or 2m.")
	}
	return duration, nil
}

// applyWatchFlags overlays non-empty flag values onto the loaded config.
func applyWatchFlags(cfg *config.Config, flags WatchFlags) error {
	if flags.HostsFile != "" {
		cfg.HostsFile = flags.HostsFile
	}
	if flags.History > 0 {
		cfg.HistorySize = flags.History
	}
	if flags.ProbeMode != "" {
		cfg.Probe.Mode = flags.ProbeMode
	}
	if flags.TCPPort > 0 {
		cfg.Probe.TCPPort = flags.TCPPort
	}

	if d, err := parseDurationFlag("interval", flags.Interval); err != nil {
		return err
	} else if d > 0 {
		cfg.PingInterval = d
	}

	if d, err := parseDurationFlag("timeout", flags.Timeout); err != nil {
		return err
	} else if d > 0 {
		cfg.ProbeTimeout = d
	}

	if d, err := parseDurationFlag("refresh", flags.Refresh); err != nil {
		return err
	} else if d > 0 {
		cfg.RefreshInterval = d
	}

	return nil
}
