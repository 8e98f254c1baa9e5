package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.Snapshot = m.Coordinator.Snapshot()
		m.IdleSeconds = m.Coordinator.IdleSeconds()
		return m, tick()

	case ActiveMsg:
		m.Active = bool(msg)
		m.Snapshot = m.Coordinator.Snapshot()
		return m, nil

	case MonitoringMsg, ScheduleStatusMsg, ThresholdMsg, AutoStartMsg:
		m.Snapshot = m.Coordinator.Snapshot()
		return m, nil

	case ErrorMsg:
		m.ErrorMessage = msg.Title + ": " + msg.Message
		m.Snapshot = m.Coordinator.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return handleKey(msg, m)
	}

	return m, nil
}

func handleKey(msg tea.KeyMsg, m Model) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case stateStatus:
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.ToggleMonitoring):
			m.Coordinator.SetMonitoringEnabled(!m.Snapshot.MonitoringEnabled)
			m.Snapshot = m.Coordinator.Snapshot()
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.Configure):
			m.State = stateConfig
			m.Form = newConfigForm(m.Coordinator.Settings())
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.ToggleHelp):
			m.State = stateHelp
			return m, nil
		}

	case stateConfig:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			m.State = stateStatus
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.Save):
			updated, autoStart, err := m.Form.settings(m.Coordinator.Settings())
			if err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			m.Coordinator.SetAutoStart(autoStart)
			m.Coordinator.Apply(updated)
			m.State = stateStatus
			m.Snapshot = m.Coordinator.Snapshot()
			m.ErrorMessage = ""
			return m, nil
		case key.Matches(msg, m.Keys.Up):
			m.Form.prev()
			return m, nil
		case key.Matches(msg, m.Keys.Down):
			m.Form.next()
			return m, nil
		case key.Matches(msg, m.Keys.Toggle):
			m.Form.toggle()
			return m, nil
		case key.Matches(msg, m.Keys.Backspace):
			m.Form.backspace()
			m.ErrorMessage = ""
			return m, nil
		default:
			s := msg.String()
			if len(s) == 1 {
				m.Form.typeRune(rune(s[0]))
				m.ErrorMessage = ""
			}
			return m, nil
		}

	case stateHelp:
		switch {
		case key.Matches(msg, m.Keys.Quit), key.Matches(msg, m.Keys.ToggleHelp), key.Matches(msg, m.Keys.Cancel):
			m.State = stateStatus
			return m, nil
		}
	}

	return m, nil
}
