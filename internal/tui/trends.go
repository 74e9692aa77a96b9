package tui

import (
	"fatigue-monitor/internal/analysis"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// chartDays caps how much history the trend charts show.
const chartDays = 90

// TrendsModel is the load-trends screen model
type TrendsModel struct {
	report *analysis.Report
}

// NewTrendsModel creates a new trends model
func NewTrendsModel(report *analysis.Report) TrendsModel {
	return TrendsModel{report: report}
}

// View renders the ATL/CTL and TSB charts
func (m TrendsModel) View() string {
	smoothed := m.report.Smoothed
	if len(smoothed) > chartDays {
		smoothed = smoothed[len(smoothed)-chartDays:]
	}

	var sections []string
	sections = append(sections, m.renderLoadChart(smoothed))

	risk := m.report.Risk
	if len(risk) > chartDays {
		risk = risk[len(risk)-chartDays:]
	}
	sections = append(sections, m.renderFormChart(risk))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TrendsModel) renderLoadChart(smoothed []analysis.SmoothedPoint) string {
	title := cardTitleStyle.Render("Fatigue (ATL) vs Fitness (CTL)")

	if len(smoothed) < 3 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough history to chart"))
	}

	atl := make([]float64, len(smoothed))
	ctl := make([]float64, len(smoothed))
	for i, sp := range smoothed {
		atl[i] = sp.ATL
		ctl[i] = sp.CTL
	}

	graph := asciigraph.PlotMany([][]float64{atl, ctl},
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.SeriesLegends("ATL", "CTL"),
	)

	caption := mutedStyle.Render(formatDate(smoothed[0].Date) + " - " + formatDate(smoothed[len(smoothed)-1].Date))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}

func (m TrendsModel) renderFormChart(risk []analysis.RiskPoint) string {
	title := cardTitleStyle.Render("Form (TSB)")

	var tsb []float64
	for _, rp := range risk {
		if rp.TSB != nil {
			tsb = append(tsb, *rp.TSB)
		}
	}
	if len(tsb) < 3 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough history to chart"))
	}

	graph := asciigraph.Plot(tsb,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(1),
	)

	caption := mutedStyle.Render("positive = fresh, negative = fatigued")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}
