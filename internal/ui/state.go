package ui

// state represents the different screens of the TUI.
type state int

const (
	stateStatus state = iota
	stateConfig
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateStatus:
		return "Status"
	case stateConfig:
		return "Config"
	case stateHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
