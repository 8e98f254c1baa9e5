// Package mouse nudges the cursor just enough to reset the system idle
// timer without the user noticing.
package mouse

import (
	"log"
	"time"

	"github.com/nudged/nudge/internal/platform"
)

const (
	// moveDistance is the nudge size in pixels.
	moveDistance = 1

	// movePause separates the outbound and return displacements.
	movePause = 50 * time.Millisecond
)

// Events receives movement lifecycle notifications.
type Events interface {
	MovementStarted()
	MovementFinished()
}

// Actuator performs imperceptible cursor movements through a relative mover.
type Actuator struct {
	mover  platform.Mover
	events Events
	pause  time.Duration
}

// NewActuator creates an actuator. A nil mover is permitted: every movement
// then fails, but lifecycle notifications still fire.
func NewActuator(mover platform.Mover) *Actuator {
	return &Actuator{mover: mover, pause: movePause}
}

// SetEvents registers the movement lifecycle listener.
func (a *Actuator) SetEvents(events Events) {
	a.events = events
}

// MoveImperceptibly displaces the cursor one pixel right, pauses briefly,
// and moves it back. The completion notification fires unconditionally,
// even when a displacement fails. Returns true only if both displacements
// succeeded.
func (a *Actuator) MoveImperceptibly() bool {
	if a.events != nil {
		a.events.MovementStarted()
	}
	defer func() {
		if a.events != nil {
			a.events.MovementFinished()
		}
	}()

	if a.mover == nil {
		return false
	}

	errOut := a.mover.MoveRelative(moveDistance, 0)
	time.Sleep(a.pause)
	errBack := a.mover.MoveRelative(-moveDistance, 0)

	if errOut != nil || errBack != nil {
		log.Printf("mouse: nudge failed (out=%v, back=%v)", errOut, errBack)
		return false
	}
	return true
}
