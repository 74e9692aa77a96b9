package tui

import (
	"fmt"

	"fatigue-monitor/internal/analysis"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// EfficiencyModel is the cardiac-efficiency screen model
type EfficiencyModel struct {
	report *analysis.Report
	offset int // table scroll offset
}

const efficiencyPageSize = 8

// NewEfficiencyModel creates a new efficiency model
func NewEfficiencyModel(report *analysis.Report) EfficiencyModel {
	return EfficiencyModel{report: report}
}

// Init initializes the efficiency screen
func (m EfficiencyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m EfficiencyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			if m.offset < len(m.report.Efficiency)-efficiencyPageSize {
				m.offset++
			}
		case "k", "up":
			if m.offset > 0 {
				m.offset--
			}
		}
	}
	return m, nil
}

// View renders the efficiency chart and the per-session table
func (m EfficiencyModel) View() string {
	var sections []string
	sections = append(sections, m.renderChart())
	sections = append(sections, m.renderTable())
	sections = append(sections, statusStyle.Render("j/k to scroll the table"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m EfficiencyModel) renderChart() string {
	trend := trendStyle(m.report.Trend).Render(m.report.Trend.String())
	title := cardTitleStyle.Render("Cardiac Efficiency (km per 100 beats/min)") + " " + trend

	points := m.report.Efficiency
	if len(points) > chartDays {
		points = points[len(points)-chartDays:]
	}
	if len(points) < 3 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "Not enough sessions to chart"))
	}

	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Efficiency * 100
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	caption := mutedStyle.Render("higher = more distance for the same cardiac effort")
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph, caption))
}

func (m EfficiencyModel) renderTable() string {
	title := cardTitleStyle.Render("Recent Sessions")

	points := m.report.Efficiency
	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %10s  %10s  %9s",
		"Date", "Efficiency", "Baseline", "Deviation"))

	rows := []string{header}
	end := m.offset + efficiencyPageSize
	if end > len(points) {
		end = len(points)
	}
	for _, p := range points[m.offset:end] {
		dev := "-"
		if p.Deviation != nil {
			dev = fmt.Sprintf("%+.1f%%", *p.Deviation)
		}
		baseline := "-"
		if p.Baseline != nil {
			baseline = fmt.Sprintf("%.4f", *p.Baseline)
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %10.4f  %10s  %9s",
			formatDate(p.Date), p.Efficiency, baseline, dev))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
