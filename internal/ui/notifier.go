package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages published by the coordinator into the bubbletea event loop.
type (
	// ActiveMsg lights or clears the actuation indicator.
	ActiveMsg bool
	// MonitoringMsg reports the user-level monitoring switch.
	MonitoringMsg bool
	// ScheduleStatusMsg reports the evaluated schedule window.
	ScheduleStatusMsg struct {
		Within bool
		Label  string
	}
	// ThresholdMsg reports the active idle threshold in seconds.
	ThresholdMsg int
	// AutoStartMsg reports the login registration state.
	AutoStartMsg bool
	// ErrorMsg surfaces a coordinator error to the user.
	ErrorMsg struct {
		Title   string
		Message string
	}
)

// Forwarder bridges coordinator notifications into the bubbletea program.
// The coordinator is constructed before the program exists, so the program
// is attached later; notifications raised before Attach are queued.
//
// send never blocks the caller: Program.Send parks on an unbuffered channel
// until the program's event loop is running, and the notifier is invoked
// both from coordinator goroutines before Run and from coordinator calls
// made inside Update, where the event loop is the would-be reader. Delivery
// therefore happens on a dedicated pump goroutine reading a buffered queue.
type Forwarder struct {
	mu      sync.Mutex
	queue   chan tea.Msg
	program *tea.Program
}

// NewForwarder returns an unattached forwarder.
func NewForwarder() *Forwarder {
	return &Forwarder{queue: make(chan tea.Msg, 64)}
}

// Attach connects the forwarder to a program and starts delivering queued
// notifications to it. Only the first Attach takes effect.
func (f *Forwarder) Attach(p *tea.Program) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.program != nil {
		return
	}
	f.program = p
	go f.pump(p)
}

func (f *Forwarder) pump(p *tea.Program) {
	for msg := range f.queue {
		p.Send(msg)
	}
}

func (f *Forwarder) send(msg tea.Msg) {
	select {
	case f.queue <- msg:
	default:
		// A full queue means the program is not consuming; state
		// messages are snapshots, so dropping is safe.
	}
}

func (f *Forwarder) SetActive(active bool) { f.send(ActiveMsg(active)) }

func (f *Forwarder) SetMonitoring(enabled bool) { f.send(MonitoringMsg(enabled)) }

func (f *Forwarder) SetScheduleStatus(within bool, label string) {
	f.send(ScheduleStatusMsg{Within: within, Label: label})
}

func (f *Forwarder) SetThreshold(seconds int) { f.send(ThresholdMsg(seconds)) }

func (f *Forwarder) SetAutoStart(enabled bool) { f.send(AutoStartMsg(enabled)) }

func (f *Forwarder) ReportError(title, message string) {
	f.send(ErrorMsg{Title: title, Message: message})
}
