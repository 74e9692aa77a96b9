package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

type keyHelp struct {
	key  string
	desc string
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Load trends (ATL/CTL/TSB)"},
		{"3", "Injury risk (ACWR)"},
		{"4", "Cardiac efficiency"},
		{"5", "Session log"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Close help"},
	})
	sections = append(sections, navSection)

	listSection := m.renderSection("Tables", []keyHelp{
		{"j / down", "Move down"},
		{"k / up", "Move up"},
		{"pgdn / pgup", "Page (session log)"},
		{"g / G", "First / last session"},
	})
	sections = append(sections, listSection)

	glossary := m.renderSection("Reading the Numbers", []keyHelp{
		{"ATL", "Acute training load - recent fatigue"},
		{"CTL", "Chronic training load - built fitness"},
		{"TSB", "CTL minus ATL - freshness when positive"},
		{"ACWR", "ATL over CTL - injury-risk proxy"},
	})
	sections = append(sections, glossary)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m HelpModel) renderSection(name string, keys []keyHelp) string {
	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(name) + "\n")
	for _, k := range keys {
		b.WriteString("  " + helpKeyStyle.Width(12).Render(k.key) + helpDescStyle.Render(k.desc) + "\n")
	}
	return b.String()
}
