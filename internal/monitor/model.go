package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model for the latency dashboard. It owns no host
// state of its own: every frame is rendered from a fresh store snapshot.
type Model struct {
	store        *Store
	refresh      time.Duration
	lowMillis    float64
	mediumMillis float64

	rows        []RecordView
	selected    int
	width       int
	height      int
	quitting    bool
	showHelp    bool
	lastRefresh time.Time

	// Table body viewport for host lists taller than the terminal.
	viewport      viewport.Model
	viewportReady bool

	now func() time.Time
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard model reading from store. lowMillis and
// mediumMillis are the latency tier boundaries for cell coloring.
func NewModel(store *Store, refresh time.Duration, lowMillis, mediumMillis float64) Model {
	m := Model{
		store:        store,
		refresh:      refresh,
		lowMillis:    lowMillis,
		mediumMillis: mediumMillis,
		now:          time.Now,
	}
	m.refreshRows()
	return m
}

// Init starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.syncViewport()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		bodyHeight := m.height - headerHeight - footerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}

		if !m.viewportReady {
			m.viewport = viewport.New(m.width, bodyHeight)
			m.viewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = bodyHeight
		}
		m.syncViewport()

	case tickMsg:
		m.refreshRows()
		m.syncViewport()
		return m, m.tickCmd()
	}

	// Let the viewport handle scrolling keys it owns (pgup/pgdn, wheel).
	if m.viewportReady {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// tickCmd schedules the next refresh.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refreshRows takes a fresh snapshot of every host record.
func (m *Model) refreshRows() {
	m.rows = m.store.Snapshot()
	m.lastRefresh = m.now()

	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 && len(m.rows) > 0 {
		m.selected = 0
	}
}

// syncViewport re-renders the table body into the viewport.
func (m *Model) syncViewport() {
	if m.viewportReady {
		m.viewport.SetContent(m.renderRows())
	}
}

// ReachableCount returns how many hosts answered their most recent probe.
func (m Model) ReachableCount() int {
	count := 0
	for _, row := range m.rows {
		if row.Stats.LastOK {
			count++
		}
	}
	return count
}
