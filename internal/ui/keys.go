package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the UI states.
type KeyMap struct {
	// Common
	Quit       key.Binding
	ToggleHelp key.Binding

	// Status
	ToggleMonitoring key.Binding
	Configure        key.Binding

	// Config form
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Save      key.Binding
	Cancel    key.Binding
	Backspace key.Binding
}

// DefaultKeys returns the default key bindings for the application.
func DefaultKeys() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		ToggleMonitoring: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m", "toggle monitoring"),
		),
		Configure: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "configure"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓", "next field"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
	}
}

// stateKeyMap adapts bindings to the current UI state for contextual help.
type stateKeyMap struct {
	keys  KeyMap
	state state
}

// ForState returns a contextual key map implementing help.KeyMap.
func (k KeyMap) ForState(s state) help.KeyMap {
	return stateKeyMap{keys: k, state: s}
}

// ShortHelp implements help.KeyMap (compact).
func (s stateKeyMap) ShortHelp() []key.Binding {
	switch s.state {
	case stateStatus:
		return []key.Binding{s.keys.ToggleMonitoring, s.keys.Configure, s.keys.ToggleHelp, s.keys.Quit}
	case stateConfig:
		return []key.Binding{s.keys.Up, s.keys.Down, s.keys.Toggle, s.keys.Save, s.keys.Cancel}
	default:
		return []key.Binding{s.keys.ToggleHelp, s.keys.Quit}
	}
}

// FullHelp implements help.KeyMap (expanded).
func (s stateKeyMap) FullHelp() [][]key.Binding {
	switch s.state {
	case stateStatus:
		return [][]key.Binding{{s.keys.ToggleMonitoring, s.keys.Configure}, {s.keys.ToggleHelp, s.keys.Quit}}
	case stateConfig:
		return [][]key.Binding{{s.keys.Up, s.keys.Down, s.keys.Toggle, s.keys.Backspace}, {s.keys.Save, s.keys.Cancel}}
	default:
		return [][]key.Binding{{s.keys.ToggleHelp, s.keys.Quit}}
	}
}
