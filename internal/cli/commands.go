package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pingwatch/internal/errors"
)

// Command-specific flags
var (
	initForce          bool
	initNonInteractive bool
	hostsResolveFlag   bool
)

// watchCmd starts the dashboard explicitly. It shares its flags with the
// root command so `pingwatch` and `pingwatch watch` behave identically.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Start the live latency dashboard",
	Long: `Start the interactive dashboard. Each host is probed on its own
schedule; the table refreshes continuously with latency, jitter, success
rate, and trend per host.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  r           Force refresh
  up/k        Select previous host
  down/j      Select next host
  Home/End    Jump to first/last host
  ?           Show help

Examples:
  pingwatch watch
  pingwatch watch --hosts-file /etc/pingwatch/hosts.txt
  pingwatch watch --interval 500ms --history 30
  pingwatch watch --probe-mode tcp --tcp-port 443`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchFlags)
	},
}

// hostsCmd prints the expanded host list without starting the dashboard.
var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Print the expanded host list",
	Long: `Parse the hosts file, expand CIDR blocks and address ranges, and
print the resulting host list in probe order.

Useful for checking what a hosts file expands to before watching it.

Examples:
  pingwatch hosts
  pingwatch hosts --resolve
  pingwatch hosts --hosts-file lab-hosts.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return hostsCommand(watchFlags.HostsFile, hostsResolveFlag)
	},
}

// initCmd creates a .pingwatch.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .pingwatch.yaml configuration",
	Long: `Initialize a pingwatch configuration file in the current directory.

Walks through the main settings with interactive prompts and can scaffold
a starter hosts file.

Examples:
  pingwatch init
  pingwatch init --force
  pingwatch init --non-interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(InitOptions{
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pingwatch.

Examples:
  # Bash
  pingwatch completion bash > /etc/bash_completion.d/pingwatch

  # Zsh
  pingwatch completion zsh > "${fpath[1]}/_pingwatch"

  # Fish
  pingwatch completion fish > ~/.config/fish/completions/pingwatch.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	addWatchFlags(watchCmd)

	hostsCmd.Flags().StringVar(&watchFlags.HostsFile, "hosts-file", "", "path to the hosts file")
	hostsCmd.Flags().BoolVar(&hostsResolveFlag, "resolve", false, "reverse-resolve each address")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "skip prompts, use defaults")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
