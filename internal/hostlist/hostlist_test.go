package hostlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/pingwatch/internal/errors"
	"github.com/rileyhilliard/pingwatch/internal/logger"
)

func TestParseBasic(t *testing.T) {
	input := `# core infra
1.1.1.1, Cloudflare DNS
8.8.8.8
router.local, Home Router

example.com  # trailing comment
`
	entries, err := Parse(strings.NewReader(input), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Address: "1.1.1.1", Name: "Cloudflare DNS"}, entries[0])
	assert.Equal(t, Entry{Address: "8.8.8.8", Name: ""}, entries[1])
	assert.Equal(t, Entry{Address: "router.local", Name: "Home Router"}, entries[2])
	assert.Equal(t, Entry{Address: "example.com", Name: ""}, entries[3])
}

func TestParsePreservesOrder(t *testing.T) {
	input := "10.0.0.2\n10.0.0.1\n10.0.0.3\n"
	entries, err := Parse(strings.NewReader(input), logger.Noop())
	require.NoError(t, err)

	var addrs []string
	for _, e := range entries {
		addrs = append(addrs, e.Address)
	}
	assert.Equal(t, []string{"10.0.0.2", "10.0.0.1", "10.0.0.3"}, addrs)
}

func TestParseCIDRExpansion(t *testing.T) {
	entries, err := Parse(strings.NewReader("10.0.0.0/30, Lab\n"), logger.Noop())
	require.NoError(t, err)

	// /30 has two usable hosts; network and broadcast excluded.
	require.Len(t, entries, 2)
	assert.Equal(t, "10.0.0.1", entries[0].Address)
	assert.Equal(t, "10.0.0.2", entries[1].Address)
	assert.Equal(t, "Lab", entries[0].Name)
	assert.Equal(t, "Lab", entries[1].Name)
}

func TestParseCIDRSmallPrefixes(t *testing.T) {
	entries, err := Parse(strings.NewReader("192.168.1.4/31\n192.168.1.9/32\n"), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "192.168.1.4", entries[0].Address)
	assert.Equal(t, "192.168.1.5", entries[1].Address)
	assert.Equal(t, "192.168.1.9", entries[2].Address)
}

func TestParseRangeExpansion(t *testing.T) {
	entries, err := Parse(strings.NewReader("10.1.2.250-10.1.2.253\n"), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 4)
	assert.Equal(t, "10.1.2.250", entries[0].Address)
	assert.Equal(t, "10.1.2.253", entries[3].Address)
}

func TestParseRangeAtAddressSpaceCeiling(t *testing.T) {
	// Ranges ending at the highest IPv4 address must still terminate.
	entries, err := Parse(strings.NewReader("255.255.255.250-255.255.255.255\n"), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 6)
	assert.Equal(t, "255.255.255.250", entries[0].Address)
	assert.Equal(t, "255.255.255.255", entries[5].Address)
}

func TestParseSingleAddressRange(t *testing.T) {
	entries, err := Parse(strings.NewReader("10.0.0.5-10.0.0.5\n"), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "10.0.0.5", entries[0].Address)
}

func TestParseHostnameWithDashNotARange(t *testing.T) {
	entries, err := Parse(strings.NewReader("my-server.example.com\n"), logger.Noop())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "my-server.example.com", entries[0].Address)
}

func TestParseInvalidEntriesAreWarnings(t *testing.T) {
	buf := logger.NewBufferLogger()
	input := "10.0.0.300/30\n10.0.0.9-10.0.0.1\n1.1.1.1\n"

	entries, err := Parse(strings.NewReader(input), buf)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "1.1.1.1", entries[0].Address)
	assert.True(t, buf.HasLevel("warn"))
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"), logger.Noop())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrHosts))
}

func TestParseFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	require.NoError(t, os.WriteFile(path, []byte("# only comments\n\n"), 0644))

	_, err := ParseFile(path, logger.Noop())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrHosts))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.1.1.1, One\n8.8.8.8, Google\n"), 0644))

	entries, err := ParseFile(path, logger.Noop())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Google", entries[1].Name)
}
