package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/rileyhilliard/pingwatch/internal/config"
	"github.com/rileyhilliard/pingwatch/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// sampleHostsFile is written when the user asks for a starter hosts file.
const sampleHostsFile = `# pingwatch hosts
# One entry per line: address[, display name]
# CIDR blocks (10.0.0.0/30) and ranges (10.0.0.1-10.0.0.9) are expanded.
1.1.1.1, Cloudflare DNS
8.8.8.8, Google DNS
`

// initCommand creates a .pingwatch.yaml configuration file.
func initCommand(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		hostsFile := cfg.HostsFile
		interval := cfg.PingInterval.String()
		history := strconv.Itoa(cfg.HistorySize)
		mode := cfg.Probe.Mode

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hosts file").
					Description("Plain text file with one address per line").
					Placeholder("hosts.txt").
					Value(&hostsFile).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("hosts file is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Probe interval").
					Description("How often each host is probed").
					Placeholder("1s").
					Value(&interval).
					Validate(func(s string) error {
						d, err := time.ParseDuration(s)
						if err != nil {
							return fmt.Errorf("use a duration like 1s or 500ms")
						}
						if d <= 0 {
							return fmt.Errorf("interval must be positive")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("History size").
					Description("Samples kept per host for the rolling statistics").
					Placeholder("10").
					Value(&history).
					Validate(func(s string) error {
						n, err := strconv.Atoi(s)
						if err != nil || n < 1 {
							return fmt.Errorf("history size must be a positive integer")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Probe mode").
					Description("auto prefers ICMP and falls back to TCP connect").
					Options(
						huh.NewOption("auto", config.ProbeModeAuto),
						huh.NewOption("icmp", config.ProbeModeICMP),
						huh.NewOption("tcp", config.ProbeModeTCP),
					).
					Value(&mode),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive")
		}

		cfg.HostsFile = hostsFile
		cfg.PingInterval, _ = time.ParseDuration(interval)
		cfg.HistorySize, _ = strconv.Atoi(history)
		cfg.Probe.Mode = mode
	}

	if err := writeConfig(configPath, cfg); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", configPath)

	// Offer a starter hosts file when the configured one doesn't exist.
	if _, err := os.Stat(cfg.HostsFile); os.IsNotExist(err) {
		scaffold := opts.NonInteractive
		if !opts.NonInteractive {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Hosts file '%s' doesn't exist. Create a starter one?", cfg.HostsFile)).
						Value(&scaffold),
				),
			)
			if err := form.Run(); err != nil {
				return nil
			}
		}
		if scaffold {
			if err := os.WriteFile(cfg.HostsFile, []byte(sampleHostsFile), 0644); err != nil {
				return errors.WrapWithCode(err, errors.ErrHosts,
					"Failed to write hosts file",
					"Check directory permissions")
			}
			fmt.Printf("Wrote %s\n", cfg.HostsFile)
		}
	}

	return nil
}

// configDoc mirrors config.Config with human-readable duration strings, so
// the generated YAML says "1s" instead of nanosecond integers.
type configDoc struct {
	HostsFile       string `yaml:"hosts_file"`
	PingInterval    string `yaml:"ping_interval"`
	ProbeTimeout    string `yaml:"probe_timeout"`
	HistorySize     int    `yaml:"history_size"`
	RefreshInterval string `yaml:"refresh_interval"`
	ResolveTimeout  string `yaml:"resolve_timeout"`
	Probe           struct {
		Mode    string `yaml:"mode"`
		TCPPort int    `yaml:"tcp_port"`
	} `yaml:"probe"`
	Tiers struct {
		LowMillis    float64 `yaml:"low_ms"`
		MediumMillis float64 `yaml:"medium_ms"`
	} `yaml:"tiers"`
}

// writeConfig marshals cfg to YAML with a short header comment.
func writeConfig(path string, cfg *config.Config) error {
	var doc configDoc
	doc.HostsFile = cfg.HostsFile
	doc.PingInterval = cfg.PingInterval.String()
	doc.ProbeTimeout = cfg.ProbeTimeout.String()
	doc.HistorySize = cfg.HistorySize
	doc.RefreshInterval = cfg.RefreshInterval.String()
	doc.ResolveTimeout = cfg.ResolveTimeout.String()
	doc.Probe.Mode = cfg.Probe.Mode
	doc.Probe.TCPPort = cfg.Probe.TCPPort
	doc.Tiers.LowMillis = cfg.Tiers.LowMillis
	doc.Tiers.MediumMillis = cfg.Tiers.MediumMillis

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug, please report it")
	}

	header := "# pingwatch configuration\n# Durations use Go syntax: 500ms, 1s, 2m\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}
