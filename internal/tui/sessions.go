package tui

import (
	"fmt"

	"fatigue-monitor/internal/analysis"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sessionsPageSize = 12

// SessionsModel is the session-log screen model
type SessionsModel struct {
	report       *analysis.Report
	distanceUnit string
	loadByDate   map[string]float64
	cursor       int
	page         int
}

// NewSessionsModel creates a new sessions model
func NewSessionsModel(report *analysis.Report, distanceUnit string) SessionsModel {
	loadByDate := make(map[string]float64, len(report.Daily))
	for _, dl := range report.Daily {
		loadByDate[dl.Date.Format("2006-01-02")] = dl.Load
	}
	return SessionsModel{report: report, distanceUnit: distanceUnit, loadByDate: loadByDate}
}

// Init initializes the sessions screen
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	total := len(m.report.Sessions)

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			if m.cursor < total-1 {
				m.cursor++
				m.page = m.cursor / sessionsPageSize
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.page = m.cursor / sessionsPageSize
			}
		case "pgdown":
			if (m.page+1)*sessionsPageSize < total {
				m.page++
				m.cursor = m.page * sessionsPageSize
			}
		case "pgup":
			if m.page > 0 {
				m.page--
				m.cursor = m.page * sessionsPageSize
			}
		case "G":
			m.cursor = total - 1
			m.page = m.cursor / sessionsPageSize
		case "g":
			m.cursor, m.page = 0, 0
		}
	}
	return m, nil
}

// View renders the session table and the per-type summary
func (m SessionsModel) View() string {
	var sections []string
	sections = append(sections, m.renderTable())
	sections = append(sections, m.renderTypeSummary())
	sections = append(sections, statusStyle.Render("j/k to move, pgup/pgdn to page, g/G for first/last"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m SessionsModel) renderTable() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Sessions (%d)", len(m.report.Sessions)))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-10s  %9s  %5s  %6s  %6s",
		"Date", "Type", "Distance", "TE", "Avg HR", "Load"))

	rows := []string{header}

	start := m.page * sessionsPageSize
	end := start + sessionsPageSize
	if end > len(m.report.Sessions) {
		end = len(m.report.Sessions)
	}

	for i := start; i < end; i++ {
		s := m.report.Sessions[i]
		line := fmt.Sprintf("%-10s  %-10s  %9s  %5.1f  %6d  %6.1f",
			formatDate(s.Date),
			analysis.ClassifyWorkout(s.Date),
			formatDistance(s.DistanceKm, m.distanceUnit),
			s.AerobicTE,
			s.AvgHR,
			m.loadByDate[s.Date.Format("2006-01-02")],
		)
		if i == m.cursor {
			rows = append(rows, tableSelectedStyle.Render(line))
		} else {
			rows = append(rows, tableRowStyle.Render(line))
		}
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m SessionsModel) renderTypeSummary() string {
	title := cardTitleStyle.Render("By Workout Type")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %5s  %12s  %8s  %7s  %8s",
		"Type", "Count", "Avg Distance", "Avg Load", "Avg HR", "Avg TSB"))

	rows := []string{header}
	for _, ts := range m.report.ByType {
		tsb := "-"
		if ts.AvgTSB != nil {
			tsb = fmt.Sprintf("%+.1f", *ts.AvgTSB)
		}
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-10s  %5d  %12s  %8.1f  %7.0f  %8s",
			ts.Type, ts.Count, formatDistance(ts.AvgDistance, m.distanceUnit), ts.AvgLoad, ts.AvgHR, tsb)))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}
