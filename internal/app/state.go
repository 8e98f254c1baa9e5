package app

import "time"

// State describes the monitoring subsystem as presented to the user.
type State int

const (
	// StateDisabled means the user turned monitoring off.
	StateDisabled State = iota
	// StateOutOfSchedule means monitoring is on but the clock is outside
	// the active window.
	StateOutOfSchedule
	// StateArmed means monitoring is on, in schedule, and waiting for idle.
	StateArmed
	// StateMoving means an actuation is in progress.
	StateMoving
)

func (s State) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateOutOfSchedule:
		return "OutOfSchedule"
	case StateArmed:
		return "Armed"
	case StateMoving:
		return "Moving"
	default:
		return "Unknown"
	}
}

// Snapshot is a point-in-time copy of the coordinator state for the UI
// layer. UI code reads snapshots instead of sharing references.
type Snapshot struct {
	State             State
	MonitoringEnabled bool
	WithinSchedule    bool
	Moving            bool
	ThresholdSeconds  int
	AutoStart         bool
	ScheduleLabel     string
	NextActive        time.Time
	HasNextActive     bool
}
