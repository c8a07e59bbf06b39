// Package cli wires the pingwatch commands: the live watch dashboard, host
// list inspection, config scaffolding, and the usual version/completion
// plumbing.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag is the --config persistent flag value.
var configFlag string

// rootCmd is the base command. Running pingwatch with no subcommand starts
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "pingwatch",
	Short: "Live reachability and latency dashboard for a fleet of hosts",
	Long: `pingwatch continuously probes a set of hosts and renders a live
table of reachability, latency, jitter, and trend per host.

Hosts come from a plain text file (hosts.txt by default): one address per
line, optionally followed by a comma and a display name. CIDR blocks and
IPv4 ranges are expanded automatically.

Running pingwatch without a subcommand starts the dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	addWatchFlags(rootCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
