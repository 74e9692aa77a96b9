package tui

import (
	"fmt"

	"fatigue-monitor/internal/analysis"

	"github.com/charmbracelet/lipgloss"
)

// adverseDeviationPct is the mean efficiency deviation over the recent
// sessions below which the dashboard raises a fatigue note.
const adverseDeviationPct = -5.0

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	report       *analysis.Report
	distanceUnit string
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(report *analysis.Report, distanceUnit string) DashboardModel {
	return DashboardModel{report: report, distanceUnit: distanceUnit}
}

// View renders the dashboard
func (m DashboardModel) View() string {
	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderStateCard(), "  ", m.renderRiskCard())
	sections = append(sections, topRow)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderRecommendationCard(), "  ", m.renderSummaryCard())
	sections = append(sections, bottomRow)

	if note := m.fatigueNote(); note != "" {
		sections = append(sections, warningStyle.Render("  ! "+note))
	}

	sections = append(sections, statusStyle.Render("Press '2' for trends, '3' for risk history, '?' for help"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderStateCard() string {
	title := cardTitleStyle.Render("Current State")

	latest := m.report.Smoothed[len(m.report.Smoothed)-1]
	risk := m.report.Risk[len(m.report.Risk)-1]

	lines := []string{
		RenderMetric("Fatigue (ATL)", fmt.Sprintf("%.1f", latest.ATL)),
		RenderMetric("Fitness (CTL)", fmt.Sprintf("%.1f", latest.CTL)),
		RenderMetric("Form (TSB)", formatOptional(risk.TSB, "%+.1f")),
	}
	if risk.TSB != nil {
		lines = append(lines, "", mutedStyle.Render(analysis.FormDescription(*risk.TSB)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderRiskCard() string {
	title := cardTitleStyle.Render("Injury Risk")

	risk := m.report.Risk[len(m.report.Risk)-1]

	lines := []string{
		RenderMetric("ACWR", formatOptional(risk.ACWR, "%.2f")),
		lipgloss.JoinHorizontal(lipgloss.Left,
			metricLabelStyle.Render("Band"),
			bandStyle(risk.Band).Bold(true).Render(risk.Band.String()),
		),
		lipgloss.JoinHorizontal(lipgloss.Left,
			metricLabelStyle.Render("Efficiency trend"),
			trendStyle(m.report.Trend).Render(m.report.Trend.String()),
		),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderRecommendationCard() string {
	title := cardTitleStyle.Render("Recommendation")

	rec := m.report.Recommendation

	lines := []string{bandStyle(rec.Band).Bold(true).Render(rec.Message)}
	for _, r := range rec.Rationale {
		lines = append(lines, mutedStyle.Render("- "+r))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(56).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderSummaryCard() string {
	title := cardTitleStyle.Render("Training Log")

	sum := m.report.Summary
	lines := []string{
		RenderMetric("Sessions", fmt.Sprintf("%d", sum.Sessions)),
		RenderMetric("Span", countLabel(sum.Days, "day")),
		RenderMetric("Total distance", formatDistance(sum.TotalDistance, m.distanceUnit)),
		RenderMetric("Mean aerobic TE", fmt.Sprintf("%.2f", sum.MeanTE)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

// fatigueNote flags a sustained adverse efficiency deviation, the original
// signal for accumulated fatigue independent of load ratios.
func (m DashboardModel) fatigueNote() string {
	points := m.report.Efficiency
	if len(points) > 5 {
		points = points[len(points)-5:]
	}

	var sum float64
	var n int
	for _, p := range points {
		if p.Deviation != nil {
			sum += *p.Deviation
			n++
		}
	}
	if n == 0 {
		return ""
	}

	if mean := sum / float64(n); mean < adverseDeviationPct {
		return fmt.Sprintf("cardiac efficiency is %.1f%% below its recent baseline - a sign of accumulated fatigue", -mean)
	}
	return ""
}
