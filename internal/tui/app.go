package tui

import (
	"fatigue-monitor/internal/analysis"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenTrends
	ScreenRisk
	ScreenEfficiency
	ScreenSessions
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard  DashboardModel
	trends     TrendsModel
	risk       RiskModel
	efficiency EfficiencyModel
	sessions   SessionsModel
	help       HelpModel

	// Shared state
	report     *analysis.Report
	sourceFile string

	// Window dimensions
	width  int
	height int
}

// NewApp creates the app over a finished pipeline report
func NewApp(report *analysis.Report, sourceFile, distanceUnit string) *App {
	return &App{
		screen:     ScreenDashboard,
		report:     report,
		sourceFile: sourceFile,
		dashboard:  NewDashboardModel(report, distanceUnit),
		trends:     NewTrendsModel(report),
		risk:       NewRiskModel(report),
		efficiency: NewEfficiencyModel(report),
		sessions:   NewSessionsModel(report, distanceUnit),
		help:       NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			return a, nil
		case "2":
			a.screen = ScreenTrends
			return a, nil
		case "3":
			a.screen = ScreenRisk
			return a, nil
		case "4":
			a.screen = ScreenEfficiency
			return a, nil
		case "5":
			a.screen = ScreenSessions
			return a, nil
		case "?":
			a.prevScreen = a.screen
			a.screen = ScreenHelp
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to screens with their own key handling
	var cmd tea.Cmd
	switch a.screen {
	case ScreenSessions:
		var m tea.Model
		m, cmd = a.sessions.Update(msg)
		a.sessions = m.(SessionsModel)
	case ScreenEfficiency:
		var m tea.Model
		m, cmd = a.efficiency.Update(msg)
		a.efficiency = m.(EfficiencyModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenTrends:
		content = a.trends.View()
	case ScreenRisk:
		content = a.risk.View()
	case ScreenEfficiency:
		content = a.efficiency.View()
	case ScreenSessions:
		content = a.sessions.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fatigue & Recovery Monitor")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Trends", ScreenTrends},
		{"3", "Risk", ScreenRisk},
		{"4", "Efficiency", ScreenEfficiency},
		{"5", "Sessions", ScreenSessions},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	status := a.sourceFile
	if a.report.Validation != nil && a.report.Validation.Dropped > 0 {
		status += "  " + warningStyle.Render(countLabel(a.report.Validation.Dropped, "row")+" dropped during validation")
	}
	return statusStyle.Render(status)
}
