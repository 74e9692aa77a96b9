package tui

import (
	"fmt"

	"fatigue-monitor/internal/analysis"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// RiskModel is the injury-risk screen model
type RiskModel struct {
	report *analysis.Report
}

// NewRiskModel creates a new risk model
func NewRiskModel(report *analysis.Report) RiskModel {
	return RiskModel{report: report}
}

// View renders the ACWR history and band distribution
func (m RiskModel) View() string {
	var sections []string
	sections = append(sections, m.renderACWRChart())
	sections = append(sections, m.renderBandDistribution())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RiskModel) renderACWRChart() string {
	title := cardTitleStyle.Render("Acute:Chronic Workload Ratio")

	risk := m.report.Risk
	if len(risk) > chartDays {
		risk = risk[len(risk)-chartDays:]
	}

	var acwr []float64
	for _, rp := range risk {
		if rp.ACWR != nil {
			acwr = append(acwr, *rp.ACWR)
		}
	}
	if len(acwr) < 3 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough history to chart"))
	}

	graph := asciigraph.Plot(acwr,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	caption := mutedStyle.Render("safe zone 0.80-1.30, caution to 1.50, high risk above")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}

func (m RiskModel) renderBandDistribution() string {
	title := cardTitleStyle.Render("Days per Risk Band")

	counts := make(map[analysis.Band]int)
	for _, rp := range m.report.Risk {
		counts[rp.Band]++
	}
	total := len(m.report.Risk)

	var rows []string
	for _, band := range analysis.Bands {
		n := counts[band]
		if n == 0 {
			continue
		}
		fraction := float64(n) / float64(total)
		label := bandStyle(band).Width(14).Render(band.String())
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left,
			label,
			RenderBar(fraction, 30),
			mutedStyle.Render(fmt.Sprintf(" %d (%.0f%%)", n, fraction*100)),
		))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, rows...)))
}
