package ui

import (
	"fmt"
	"strings"

	"github.com/nudged/nudge/internal/app"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case stateStatus:
		return statusView(m)
	case stateConfig:
		return configView(m)
	case stateHelp:
		return helpView()
	}
	return ""
}

func statusView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Nudge"))
	b.WriteString("\n\n")

	b.WriteString(stateLine(m))
	b.WriteString("\n\n")

	b.WriteString(Current.UnselectedItem.Render(m.Snapshot.ScheduleLabel))
	b.WriteString("\n")

	if m.Snapshot.MonitoringEnabled && !m.Snapshot.WithinSchedule && m.Snapshot.HasNextActive {
		next := m.Snapshot.NextActive.Format("Mon 15:04")
		b.WriteString(Current.InactiveStatus.Render("Next active: " + next))
		b.WriteString("\n")
	}

	idle := fmt.Sprintf("Idle: %.0fs / %ds", m.IdleSeconds, m.Snapshot.ThresholdSeconds)
	b.WriteString(Current.UnselectedItem.Render(idle))
	b.WriteString("\n")

	autoStart := "Start at login: off"
	if m.Snapshot.AutoStart {
		autoStart = "Start at login: on"
	}
	b.WriteString(Current.UnselectedItem.Render(autoStart))
	b.WriteString("\n")

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage) + "\n")
	}

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(m.State)))
	return b.String()
}

func stateLine(m Model) string {
	switch m.Snapshot.State {
	case app.StateMoving:
		return Current.ActiveStatus.Render("● Nudging the cursor")
	case app.StateArmed:
		if m.Active {
			return Current.ActiveStatus.Render("● Nudged just now")
		}
		return Current.ActiveStatus.Render("Monitoring: waiting for idle")
	case app.StateOutOfSchedule:
		return Current.InactiveStatus.Render("Monitoring: outside schedule")
	default:
		return Current.InactiveStatus.Render("Monitoring: off")
	}
}

func configView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Settings"))
	b.WriteString("\n\n")

	for i, field := range m.Form.fields {
		var line string
		switch field.kind {
		case fieldToggle:
			mark := "[ ]"
			if field.on {
				mark = "[x]"
			}
			line = fmt.Sprintf("%s %s", mark, field.label)
		default:
			line = fmt.Sprintf("%s: %s", field.label, field.text)
		}

		if i == m.Form.cursor {
			b.WriteString(Current.SelectedItem.Render("> " + line))
		} else {
			b.WriteString(Current.UnselectedItem.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage) + "\n")
	}

	b.WriteString("\n" + m.Help.View(m.Keys.ForState(m.State)))
	return b.String()
}

func helpView() string {
	help := `Nudge Help

Nudge keeps your session active by nudging the mouse cursor one pixel
and back whenever the system has been idle past the threshold, but only
inside the configured weekly schedule.

Usage:
  nudge [flags]

Flags:
  -config string   Path to the settings file (default: next to the executable)
  -headless        Run without the interactive interface
  -v, -version     Show version information

Keys:
  m          : Toggle monitoring
  c          : Open settings
  h/?        : Show this help
  q          : Quit

Press 'q' or 'esc' to close help`

	return Current.Help.Render(help)
}
