package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pingwatch/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "hosts.txt", cfg.HostsFile)
	assert.Equal(t, time.Second, cfg.PingInterval)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, ProbeModeAuto, cfg.Probe.Mode)
	assert.Equal(t, 80, cfg.Probe.TCPPort)
	assert.Equal(t, 50.0, cfg.Tiers.LowMillis)
	assert.Equal(t, 150.0, cfg.Tiers.MediumMillis)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	content := `hosts_file: /etc/pingwatch/hosts.txt
ping_interval: 500ms
probe_timeout: 3s
history_size: 20
probe:
  mode: tcp
  tcp_port: 443
tiers:
  low_ms: 30
  medium_ms: 100
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/etc/pingwatch/hosts.txt", cfg.HostsFile)
	assert.Equal(t, 500*time.Millisecond, cfg.PingInterval)
	assert.Equal(t, 3*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 20, cfg.HistorySize)
	assert.Equal(t, ProbeModeTCP, cfg.Probe.Mode)
	assert.Equal(t, 443, cfg.Probe.TCPPort)
	assert.Equal(t, 30.0, cfg.Tiers.LowMillis)
	assert.Equal(t, 100.0, cfg.Tiers.MediumMillis)

	// Unspecified fields keep defaults
	assert.Equal(t, time.Second, cfg.RefreshInterval)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	require.NoError(t, os.WriteFile(path, []byte("hosts_file: mine.txt\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mine.txt", cfg.HostsFile)
	assert.Equal(t, time.Second, cfg.PingInterval)
	assert.Equal(t, 10, cfg.HistorySize)
	assert.Equal(t, ProbeModeAuto, cfg.Probe.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("hosts_file: [unclosed\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFindExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadOrDefaultWithoutConfig(t *testing.T) {
	// Run from an empty directory with no global config influence
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty hosts file", func(c *Config) { c.HostsFile = "" }, true},
		{"zero interval", func(c *Config) { c.PingInterval = 0 }, true},
		{"negative timeout", func(c *Config) { c.ProbeTimeout = -time.Second }, true},
		{"zero refresh", func(c *Config) { c.RefreshInterval = 0 }, true},
		{"zero history", func(c *Config) { c.HistorySize = 0 }, true},
		{"bad probe mode", func(c *Config) { c.Probe.Mode = "udp" }, true},
		{"bad tcp port", func(c *Config) { c.Probe.TCPPort = 0 }, true},
		{"inverted tiers", func(c *Config) { c.Tiers.MediumMillis = 10 }, true},
		{"tcp mode valid", func(c *Config) { c.Probe.Mode = ProbeModeTCP }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
