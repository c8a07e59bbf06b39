package monitor

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestNewModelSnapshotsRows(t *testing.T) {
	store := newTestStore("1.1.1.1", "8.8.8.8")
	m := NewModel(store, time.Second, 50, 150)

	assert.Len(t, m.rows, 2)
	assert.Equal(t, 0, m.selected)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel(newTestStore("1.1.1.1"), time.Second, 50, 150)

			handled, cmd := m.HandleKeyMsg(keyMsg(key))
			assert.True(t, handled)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
		})
	}
}

func TestSelectionMovement(t *testing.T) {
	m := NewModel(newTestStore("a", "b", "c"), time.Second, 50, 150)
	require.Equal(t, 0, m.selected)

	m.HandleKeyMsg(keyMsg("up"))
	assert.Equal(t, 0, m.selected, "cannot move above first row")

	m.HandleKeyMsg(keyMsg("down"))
	m.HandleKeyMsg(keyMsg("j"))
	assert.Equal(t, 2, m.selected)

	m.HandleKeyMsg(keyMsg("down"))
	assert.Equal(t, 2, m.selected, "cannot move past last row")

	m.HandleKeyMsg(keyMsg("k"))
	assert.Equal(t, 1, m.selected)
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(newTestStore("a"), time.Second, 50, 150)

	m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keybindings")

	m.HandleKeyMsg(keyMsg("esc"))
	assert.False(t, m.showHelp)
}

func TestTickRefreshesRows(t *testing.T) {
	store := newTestStore("1.1.1.1")
	m := NewModel(store, time.Second, 50, 150)
	require.Equal(t, 0, m.rows[0].Stats.SampleCount)

	store.Get("1.1.1.1").ApplySample(ok(33.0))

	updated, cmd := m.Update(tickMsg(time.Now()))
	m = updated.(Model)

	assert.Equal(t, 1, m.rows[0].Stats.SampleCount)
	require.NotNil(t, cmd, "tick must reschedule itself")
}

func TestViewRendersHostRows(t *testing.T) {
	store := newTestStore("1.1.1.1", "8.8.8.8")
	store.Get("1.1.1.1").ApplySample(ok(12.34))
	store.Get("8.8.8.8").ApplySample(failed())

	m := NewModel(store, time.Second, 50, 150)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "pingwatch")
	assert.Contains(t, view, "1.1.1.1")
	assert.Contains(t, view, "12.34 ms")
	assert.Contains(t, view, "✗ unavailable")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "q quit")
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	m := NewModel(newTestStore("a"), time.Second, 50, 150)
	m.HandleKeyMsg(keyMsg("q"))
	assert.Empty(t, m.View())
}

func TestReachableCount(t *testing.T) {
	store := newTestStore("a", "b", "c")
	store.Get("a").ApplySample(ok(5))
	store.Get("b").ApplySample(failed())

	m := NewModel(store, time.Second, 50, 150)
	assert.Equal(t, 1, m.ReachableCount())
}

func TestRenderRowFormats(t *testing.T) {
	store := newTestStore("10.9.8.7")
	r := store.Get("10.9.8.7")
	r.ApplySample(ok(100))
	r.ApplySample(ok(50))

	m := NewModel(store, time.Second, 50, 150)
	row := m.renderRow(0, m.rows[0], false)

	assert.Contains(t, row, "75.00 ms")  // average
	assert.Contains(t, row, "50.00 ms")  // jitter and last sample
	assert.Contains(t, row, "100.00 %")  // success rate
	assert.True(t, strings.Contains(row, "↓"), "average halved, trend should point down")
}

func TestRenderRowNoData(t *testing.T) {
	m := NewModel(newTestStore("10.9.8.7"), time.Second, 50, 150)
	row := m.renderRow(0, m.rows[0], false)

	assert.Contains(t, row, "N/A")
	assert.Contains(t, row, "0.00 ms") // jitter default
}
