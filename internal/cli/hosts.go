package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pingwatch/internal/config"
	"github.com/rileyhilliard/pingwatch/internal/hostlist"
	"github.com/rileyhilliard/pingwatch/internal/logger"
)

// hostsCommand prints the expanded host list as a static table.
func hostsCommand(hostsFileFlag string, resolve bool) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if hostsFileFlag != "" {
		cfg.HostsFile = hostsFileFlag
	}

	entries, err := hostlist.ParseFile(cfg.HostsFile, logger.NewEnvLogger("[pingwatch]"))
	if err != nil {
		return err
	}

	var names []string
	if resolve {
		names = hostlist.ResolveNames(context.Background(), entries, cfg.ResolveTimeout)
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Faint(true)

	header := padCell("#", 5) + padCell("ADDRESS", 20) + padCell("NAME", 20)
	if resolve {
		header += "HOSTNAME"
	}
	fmt.Println(headerStyle.Render(header))

	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		line := mutedStyle.Render(padCell(fmt.Sprintf("%d", i+1), 5)) +
			padCell(e.Address, 20) +
			padCell(name, 20)
		if resolve {
			line += mutedStyle.Render(names[i])
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d hosts from %s", len(entries), cfg.HostsFile)))

	return nil
}

// padCell pads a table cell to a fixed width, ANSI-aware.
func padCell(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-visible)
}
