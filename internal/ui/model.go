package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudged/nudge/internal/app"
)

// Model holds the current state of the UI.
type Model struct {
	State        state
	Coordinator  *app.Coordinator
	Snapshot     app.Snapshot
	IdleSeconds  float64
	Active       bool
	ErrorMessage string
	Keys         KeyMap
	Help         help.Model
	Form         configForm
}

// InitialModel returns the initial model for the TUI.
func InitialModel(coord *app.Coordinator) Model {
	return Model{
		State:       stateStatus,
		Coordinator: coord,
		Snapshot:    coord.Snapshot(),
		Keys:        DefaultKeys(),
		Help:        help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}

// tickMsg refreshes the displayed state once per second.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
