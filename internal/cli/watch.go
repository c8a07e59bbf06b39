package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/pingwatch/internal/config"
	"github.com/rileyhilliard/pingwatch/internal/errors"
	"github.com/rileyhilliard/pingwatch/internal/hostlist"
	"github.com/rileyhilliard/pingwatch/internal/logger"
	"github.com/rileyhilliard/pingwatch/internal/monitor"
	"github.com/rileyhilliard/pingwatch/internal/probe"
)

// watchCommand starts the TUI dashboard: load config, expand the host
// list, start one prober per host, and hand the store to the renderer.
func watchCommand(flags WatchFlags) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	if err := applyWatchFlags(cfg, flags); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log := logger.NewEnvLogger("[pingwatch]")

	entries, err := hostlist.ParseFile(cfg.HostsFile, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Best-effort reverse lookups before the dashboard takes the screen.
	names := hostlist.ResolveNames(ctx, entries, cfg.ResolveTimeout)

	records := make([]*monitor.HostRecord, len(entries))
	for i, e := range entries {
		records[i] = monitor.NewHostRecord(e.Address, e.Name, names[i], cfg.HistorySize)
	}
	store := monitor.NewStore(records)

	pinger, err := probe.NewPinger(cfg.Probe.Mode, cfg.Probe.TCPPort)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot create prober",
			"Check the probe.mode setting (auto, icmp, or tcp)")
	}

	wg := monitor.StartProbers(ctx, store, pinger, cfg.PingInterval, cfg.ProbeTimeout, log)

	model := monitor.NewModel(store, cfg.RefreshInterval, cfg.Tiers.LowMillis, cfg.Tiers.MediumMillis)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	// Stop all probers before returning the terminal.
	cancel()
	wg.Wait()

	return runErr
}
