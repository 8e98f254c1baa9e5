// Package idle polls the time since the last user input and raises a
// callback once it crosses a configurable threshold.
package idle

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// pollInterval is the cadence of the idle check loop.
	pollInterval = time.Second

	// stopTimeout bounds how long Stop waits for the polling goroutine.
	stopTimeout = 2 * time.Second

	// queryWarnEvery rate-limits warnings about a failing idle query.
	queryWarnEvery = time.Minute
)

// Source reports the elapsed time since the last user input.
type Source func() (time.Duration, error)

// Monitor watches system idle time on a background goroutine and invokes the
// idle callback, synchronously from the polling goroutine, on every check
// where the idle time meets the threshold.
type Monitor struct {
	mu        sync.Mutex
	threshold time.Duration
	interval  time.Duration
	source    Source
	onIdle    func()
	running   bool
	stop      chan struct{}
	done      chan struct{}

	// last query warning, unix nanos
	lastWarnNS int64
}

// NewMonitor creates a monitor reading idle time from source. The threshold
// defaults to zero; callers set it via SetThreshold before Start.
func NewMonitor(source Source) *Monitor {
	return &Monitor{
		source:   source,
		interval: pollInterval,
	}
}

// SetIdleCallback registers the function invoked when the threshold is met.
func (m *Monitor) SetIdleCallback(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onIdle = fn
}

// SetThreshold updates the idle threshold, effective on the next poll.
func (m *Monitor) SetThreshold(seconds int) error {
	if seconds <= 0 {
		return errors.New("idle threshold must be positive")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.threshold = time.Duration(seconds) * time.Second
	return nil
}

// Running reports whether the polling loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Start begins the polling loop. It is a no-op when already running.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.running {
		return
	}
	m.running = true
	m.stop = make(chan struct{})
	m.done = make(chan struct{})
	go m.loop(m.stop, m.done)
	log.Printf("idle: monitor started (threshold=%v)", m.threshold)
}

// Stop signals the polling loop to exit and waits, bounded, for it to
// terminate. No idle callback fires after Stop returns. Idempotent.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	stop, done := m.stop, m.done
	m.stop, m.done = nil, nil
	m.mu.Unlock()

	close(stop)
	select {
	case <-done:
		log.Printf("idle: monitor stopped")
	case <-time.After(stopTimeout):
		log.Printf("idle: monitor did not stop within %v", stopTimeout)
	}
}

func (m *Monitor) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			m.mu.Lock()
			threshold := m.threshold
			onIdle := m.onIdle
			m.mu.Unlock()

			if onIdle == nil || threshold <= 0 {
				continue
			}
			if m.IdleSeconds() >= threshold.Seconds() {
				onIdle()
			}
		}
	}
}

// IdleSeconds returns the elapsed seconds since the last user input, clamped
// to >= 0. A failing query counts as "not idle": availability over precision.
func (m *Monitor) IdleSeconds() float64 {
	elapsed, err := m.source()
	if err != nil {
		m.warnQueryFailure(err)
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Seconds()
}

func (m *Monitor) warnQueryFailure(err error) {
	nowNS := time.Now().UnixNano()
	last := atomic.LoadInt64(&m.lastWarnNS)
	if last != 0 && time.Duration(nowNS-last) < queryWarnEvery {
		return
	}
	atomic.StoreInt64(&m.lastWarnNS, nowNS)
	log.Printf("idle: query failed, treating as not idle: %v", err)
}
