package mouse

import (
	"errors"
	"testing"
)

type fakeMover struct {
	moves  [][2]int
	failOn int // 1-based call number that fails, 0 for never
	calls  int
}

func (f *fakeMover) MoveRelative(dx, dy int) error {
	f.calls++
	f.moves = append(f.moves, [2]int{dx, dy})
	if f.failOn != 0 && f.calls == f.failOn {
		return errors.New("injection failed")
	}
	return nil
}

type recordingEvents struct {
	order []string
}

func (r *recordingEvents) MovementStarted()  { r.order = append(r.order, "started") }
func (r *recordingEvents) MovementFinished() { r.order = append(r.order, "finished") }

func newTestActuator(mover *fakeMover, events Events) *Actuator {
	a := NewActuator(mover)
	a.pause = 0
	a.SetEvents(events)
	return a
}

func TestMoveImperceptibly(t *testing.T) {
	mover := &fakeMover{}
	events := &recordingEvents{}
	a := newTestActuator(mover, events)

	if !a.MoveImperceptibly() {
		t.Fatal("expected success")
	}

	want := [][2]int{{1, 0}, {-1, 0}}
	if len(mover.moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(mover.moves), len(want))
	}
	for i, mv := range want {
		if mover.moves[i] != mv {
			t.Errorf("move %d = %v, want %v", i, mover.moves[i], mv)
		}
	}

	if len(events.order) != 2 || events.order[0] != "started" || events.order[1] != "finished" {
		t.Errorf("event order = %v, want [started finished]", events.order)
	}
}

func TestMoveImperceptiblyFailureStillCompletes(t *testing.T) {
	tests := []struct {
		name   string
		failOn int
	}{
		{"outbound displacement fails", 1},
		{"return displacement fails", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mover := &fakeMover{failOn: tt.failOn}
			events := &recordingEvents{}
			a := newTestActuator(mover, events)

			if a.MoveImperceptibly() {
				t.Error("expected failure")
			}
			if len(events.order) == 0 || events.order[len(events.order)-1] != "finished" {
				t.Errorf("completion did not fire: events = %v", events.order)
			}
			// Both displacements are attempted even when the first fails.
			if mover.calls != 2 {
				t.Errorf("mover called %d times, want 2", mover.calls)
			}
		})
	}
}

func TestMoveImperceptiblyNilMover(t *testing.T) {
	events := &recordingEvents{}
	a := NewActuator(nil)
	a.pause = 0
	a.SetEvents(events)

	if a.MoveImperceptibly() {
		t.Error("expected failure with nil mover")
	}
	if len(events.order) != 2 {
		t.Errorf("expected both notifications, got %v", events.order)
	}
}

func TestMoveImperceptiblyWithoutEvents(t *testing.T) {
	a := NewActuator(&fakeMover{})
	a.pause = 0

	// Must not panic with no listener registered.
	if !a.MoveImperceptibly() {
		t.Error("expected success")
	}
}
