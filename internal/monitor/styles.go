package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dashboard color palette
const (
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimaryDark  = lipgloss.Color("#FFFFFF")
	ColorTextPrimaryLight = lipgloss.Color("#1A1A2E")
	ColorTextMutedDark    = lipgloss.Color("#6B6B8D")
	ColorTextMutedLight   = lipgloss.Color("#8888A0")

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorSelected  = lipgloss.Color("#2A2A4A")
)

// Severity buckets a latency value into one of three display tiers.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// SeverityFor buckets an average latency against the configured tier
// boundaries. Hosts with no data land in the most severe tier.
func SeverityFor(avgMillis float64, hasData bool, lowMillis, mediumMillis float64) Severity {
	switch {
	case !hasData:
		return SeverityHigh
	case avgMillis <= lowMillis:
		return SeverityLow
	case avgMillis <= mediumMillis:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// textPrimary and textMuted adapt to the terminal background so the table
// stays readable on light themes.
var (
	textPrimary = pickByBackground(ColorTextPrimaryDark, ColorTextPrimaryLight)
	textMuted   = pickByBackground(ColorTextMutedDark, ColorTextMutedLight)
)

func pickByBackground(dark, light lipgloss.Color) lipgloss.Color {
	if termenv.HasDarkBackground() {
		return dark
	}
	return light
}

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(textPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(textMuted).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Background(ColorSelected).
				Bold(true)

	HostStyle = lipgloss.NewStyle().
			Foreground(textPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true)
)

// SeverityStyle returns the latency cell style for a tier.
func SeverityStyle(s Severity) lipgloss.Style {
	switch s {
	case SeverityLow:
		return lipgloss.NewStyle().Foreground(ColorHealthy)
	case SeverityMedium:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ColorCritical)
	}
}

// TrendStyle returns the style for a trend marker.
func TrendStyle(t Trend) lipgloss.Style {
	switch t {
	case TrendUp:
		return lipgloss.NewStyle().Foreground(ColorCritical)
	case TrendDown:
		return lipgloss.NewStyle().Foreground(ColorHealthy)
	default:
		return MutedStyle
	}
}
