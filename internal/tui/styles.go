package tui

import (
	"github.com/charmbracelet/lipgloss"

	"fatigue-monitor/internal/analysis"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	infoColor      = lipgloss.Color("#3B82F6") // Blue
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(20)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Table
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				BorderBottom(true).
				BorderForeground(mutedColor).
				Padding(0, 1)

	tableRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	tableSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Background(primaryColor).
				Foreground(textColor).
				Padding(0, 1)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	infoStyle = lipgloss.NewStyle().
			Foreground(infoColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Distribution bar
	barFullStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// bandStyle picks a severity color for an ACWR band.
func bandStyle(band analysis.Band) lipgloss.Style {
	switch band {
	case analysis.BandHighRisk:
		return errorStyle
	case analysis.BandModerateRisk:
		return warningStyle
	case analysis.BandOptimal:
		return successStyle
	case analysis.BandUndertrained:
		return infoStyle
	default:
		return mutedStyle
	}
}

// trendStyle picks a color for an efficiency trend.
func trendStyle(trend analysis.Trend) lipgloss.Style {
	switch trend {
	case analysis.TrendImproving:
		return successStyle
	case analysis.TrendDeclining:
		return errorStyle
	case analysis.TrendStable:
		return infoStyle
	default:
		return mutedStyle
	}
}

// RenderMetric renders a metric line with label and value
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// RenderBar renders an ASCII proportion bar
func RenderBar(fraction float64, width int) string {
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += barFullStyle.Render("█")
		} else {
			bar += barEmptyStyle.Render("░")
		}
	}
	return bar
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
