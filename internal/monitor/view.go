package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Vertical space reserved around the table body.
const (
	headerHeight = 2
	footerHeight = 2
)

// Column widths for the host table.
const (
	colIndex   = 4
	colHost    = 18
	colName    = 16
	colHostDNS = 24
	colLast    = 16
	colAvg     = 12
	colSmooth  = 12
	colTrend   = 6
	colJitter  = 12
	colSuccess = 10
	colCount   = 7
)

// View renders the complete dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title bar with summary stats.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("pingwatch")

	stats := MutedStyle.Render(fmt.Sprintf(" | %d hosts | %d reachable | %s",
		len(m.rows), m.ReachableCount(), m.lastRefresh.Format("15:04:05")))

	return HeaderStyle.Render(title + stats)
}

// renderRows renders the table header and one row per host.
func (m Model) renderRows() string {
	if len(m.rows) == 0 {
		return MutedStyle.Render("No hosts configured")
	}

	var b strings.Builder

	header := padRight("#", colIndex) +
		padRight("HOST", colHost) +
		padRight("NAME", colName) +
		padRight("HOSTNAME", colHostDNS) +
		padRight("LAST", colLast) +
		padRight("AVG", colAvg) +
		padRight("SMOOTH", colSmooth) +
		padRight("TREND", colTrend) +
		padRight("JITTER", colJitter) +
		padRight("SUCCESS", colSuccess) +
		padRight("COUNT", colCount) +
		"UPDATED"
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, row := range m.rows {
		b.WriteString(m.renderRow(i, row, i == m.selected))
		if i < len(m.rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderRow renders a single host row.
func (m Model) renderRow(index int, row RecordView, selected bool) string {
	stats := row.Stats
	severity := SeverityFor(stats.AverageMillis, stats.HasAverage, m.lowMillis, m.mediumMillis)

	name := row.DisplayName
	if name == "" {
		name = "-"
	}
	hostname := row.ResolvedName
	if hostname == "" {
		hostname = row.Address
	}

	var last, updated string
	switch {
	case stats.SampleCount == 0:
		last = MutedStyle.Render(padRight("…", colLast))
		updated = "-"
	case stats.LastOK:
		last = HostStyle.Render(padRight(stats.LastLabel, colLast))
		updated = stats.LastUpdate.Format("15:04:05")
	default:
		last = FailureStyle.Render(padRight("✗ "+stats.LastLabel, colLast))
		updated = stats.LastUpdate.Format("15:04:05")
	}

	avg := "N/A"
	if stats.HasAverage {
		avg = fmt.Sprintf("%.2f ms", stats.AverageMillis)
	}

	smooth := "N/A"
	if stats.HasSmoothed {
		smooth = fmt.Sprintf("%.2f ms", stats.SmoothedMillis)
	}

	line := MutedStyle.Render(padRight(fmt.Sprintf("%d", index+1), colIndex)) +
		HostStyle.Render(padRight(row.Address, colHost)) +
		MutedStyle.Render(padRight(name, colName)) +
		MutedStyle.Render(padRight(hostname, colHostDNS)) +
		last +
		SeverityStyle(severity).Render(padRight(avg, colAvg)) +
		SeverityStyle(severity).Render(padRight(smooth, colSmooth)) +
		TrendStyle(stats.Trend).Render(padRight(stats.Trend.Arrow(), colTrend)) +
		HostStyle.Render(padRight(fmt.Sprintf("%.2f ms", stats.JitterMillis), colJitter)) +
		HostStyle.Render(padRight(fmt.Sprintf("%.2f %%", stats.SuccessRate), colSuccess)) +
		MutedStyle.Render(padRight(fmt.Sprintf("%d", stats.SampleCount), colCount)) +
		MutedStyle.Render(updated)

	if selected {
		return SelectedRowStyle.Render(line)
	}
	return line
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"r refresh",
		"↑↓ select",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderHelp renders the full keybinding reference shown by '?'.
func (m Model) renderHelp() string {
	lines := []string{
		TableHeaderStyle.Render("Keybindings"),
		"",
		"  q, ctrl+c   quit",
		"  r           refresh now",
		"  ↑/k ↓/j     move selection",
		"  home/end    jump to first/last host",
		"  pgup/pgdn   scroll",
		"  ?           toggle this help",
		"  esc         close help",
	}
	return strings.Join(lines, "\n")
}

// padRight pads a string to the specified width, ANSI-aware.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-visibleLen)
}
