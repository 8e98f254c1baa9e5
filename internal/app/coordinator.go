// Package app wires idle detection, schedule evaluation, and mouse actuation
// into the monitoring state machine behind the user interface.
package app

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nudged/nudge/internal/mouse"
	"github.com/nudged/nudge/internal/schedule"
	"github.com/nudged/nudge/internal/settings"
)

const (
	// scheduleRefreshInterval is the cadence of schedule re-evaluation.
	scheduleRefreshInterval = time.Minute

	// activeIconDecay keeps the "active" indicator visible after an
	// actuation. Visual feedback only: it never gates new actuations.
	activeIconDecay = 1500 * time.Millisecond

	shutdownTimeout = 5 * time.Second
)

// IdleMonitor is the polling worker that raises idle callbacks.
type IdleMonitor interface {
	Start()
	Stop()
	SetThreshold(seconds int) error
	SetIdleCallback(fn func())
	IdleSeconds() float64
}

// Actuator performs one imperceptible cursor nudge.
type Actuator interface {
	MoveImperceptibly() bool
	SetEvents(events mouse.Events)
}

// SettingsStore persists the configuration.
type SettingsStore interface {
	Load() settings.Settings
	Save(settings.Settings) bool
}

// Autostart registers the application to run at login.
type Autostart interface {
	IsEnabled() bool
	SetEnabled(enabled bool) bool
}

// Notifier receives user-facing state updates. Implementations must not
// block; they are called from background goroutines.
type Notifier interface {
	SetActive(active bool)
	SetMonitoring(enabled bool)
	SetScheduleStatus(within bool, label string)
	SetThreshold(seconds int)
	SetAutoStart(enabled bool)
	ReportError(title, message string)
}

// Coordinator drives the idle-prevention state machine: it gates idle events
// on the monitoring flag, the weekly schedule, and the re-entrancy guard, and
// starts or stops the idle monitor as the schedule window opens and closes.
type Coordinator struct {
	store     SettingsStore
	monitor   IdleMonitor
	actuator  Actuator
	autostart Autostart
	notifier  Notifier
	cleanup   *CleanupManager
	now       func() time.Time

	mu             sync.Mutex
	settings       settings.Settings
	running        bool
	isMoving       bool
	withinSchedule bool
	scheduleTimer  *time.Timer
	iconTimer      *time.Timer
	refreshEvery   time.Duration
	iconDecay      time.Duration
}

// New creates the coordinator, loads the persisted settings, and wires the
// monitor and actuator callbacks.
func New(store SettingsStore, monitor IdleMonitor, actuator Actuator, autostart Autostart, notifier Notifier) *Coordinator {
	c := &Coordinator{
		store:        store,
		monitor:      monitor,
		actuator:     actuator,
		autostart:    autostart,
		notifier:     notifier,
		cleanup:      NewCleanupManager(shutdownTimeout),
		now:          time.Now,
		refreshEvery: scheduleRefreshInterval,
		iconDecay:    activeIconDecay,
	}
	c.settings = store.Load()
	if err := monitor.SetThreshold(c.settings.IdleThresholdSeconds); err != nil {
		log.Printf("coordinator: could not apply stored threshold: %v", err)
	}
	monitor.SetIdleCallback(c.handleIdle)
	actuator.SetEvents(c)

	c.cleanup.Register("timers", func() error {
		c.cancelTimers()
		return nil
	})
	c.cleanup.Register("idle monitor", func() error {
		c.monitor.Stop()
		return nil
	})
	return c
}

// Start reconciles autostart state with the OS, publishes the initial state
// to the notifier, and arms the recurring schedule evaluation.
func (c *Coordinator) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.mu.Unlock()

	c.reconcileAutostart()

	c.mu.Lock()
	threshold := c.settings.IdleThresholdSeconds
	monitoring := c.settings.MonitoringEnabled
	c.mu.Unlock()
	c.notifier.SetThreshold(threshold)
	c.notifier.SetMonitoring(monitoring)

	c.updateScheduleState()

	c.mu.Lock()
	c.scheduleTimer = time.AfterFunc(c.refreshEvery, c.scheduleTick)
	c.mu.Unlock()

	log.Printf("coordinator: started (threshold=%ds, monitoring=%v)", threshold, monitoring)
}

// Close stops monitoring and cancels all pending timers. It blocks until the
// polling worker has terminated (bounded). Idempotent.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.running = false
	c.mu.Unlock()

	for _, err := range c.cleanup.Execute() {
		log.Printf("coordinator: shutdown: %v", err)
	}
	log.Printf("coordinator: stopped")
}

// reconcileAutostart adopts the actual OS registration state when it
// disagrees with the persisted setting.
func (c *Coordinator) reconcileAutostart() {
	registered := c.autostart.IsEnabled()

	c.mu.Lock()
	changed := c.settings.AutoStart != registered
	if changed {
		c.settings.AutoStart = registered
	}
	snap := c.settings
	c.mu.Unlock()

	if changed && !c.store.Save(snap) {
		c.notifier.ReportError("Settings", "failed to save auto-start state; changes may not persist")
	}
	c.notifier.SetAutoStart(registered)
}

// handleIdle runs on the polling goroutine. The gate check and the setting
// of the moving flag form a single critical section so that concurrent idle
// events cannot both pass the guard.
func (c *Coordinator) handleIdle() {
	c.mu.Lock()
	if !c.settings.MonitoringEnabled || !c.withinSchedule || c.isMoving {
		c.mu.Unlock()
		return
	}
	c.isMoving = true
	c.mu.Unlock()

	c.actuator.MoveImperceptibly()
}

// MovementStarted implements mouse.Events.
func (c *Coordinator) MovementStarted() {
	c.notifier.SetActive(true)
}

// MovementFinished implements mouse.Events. The moving flag clears
// immediately, success or failure; only the visual indicator lingers.
func (c *Coordinator) MovementFinished() {
	c.mu.Lock()
	c.isMoving = false
	if c.iconTimer != nil {
		c.iconTimer.Stop()
	}
	c.iconTimer = time.AfterFunc(c.iconDecay, func() {
		c.notifier.SetActive(false)
	})
	c.mu.Unlock()
}

// SetMonitoringEnabled flips the user-level monitoring switch and re-derives
// the monitor state from the current schedule.
func (c *Coordinator) SetMonitoringEnabled(enabled bool) {
	c.mu.Lock()
	c.settings.MonitoringEnabled = enabled
	snap := c.settings
	c.mu.Unlock()

	if !c.store.Save(snap) {
		c.notifier.ReportError("Settings", "failed to save monitoring setting; changes may not persist")
	}
	c.notifier.SetMonitoring(enabled)
	c.updateScheduleState()
	log.Printf("coordinator: monitoring %v", enabled)
}

// Apply replaces the idle threshold and schedule in one step: the monitor
// and evaluator see the new values, the settings are persisted, and the
// monitoring state is re-derived. Applying identical settings twice is a
// no-op beyond the save.
func (c *Coordinator) Apply(updated settings.Settings) {
	if err := c.monitor.SetThreshold(updated.IdleThresholdSeconds); err != nil {
		c.notifier.ReportError("Configuration", err.Error())
		return
	}

	c.mu.Lock()
	c.settings.IdleThresholdSeconds = updated.IdleThresholdSeconds
	c.settings.Schedule = updated.Schedule
	snap := c.settings
	c.mu.Unlock()

	if !c.store.Save(snap) {
		c.notifier.ReportError("Settings", "failed to save configuration; changes may not persist")
	}

	c.notifier.SetThreshold(snap.IdleThresholdSeconds)
	c.notifier.SetMonitoring(snap.MonitoringEnabled)
	c.updateScheduleState()
}

// SetAutoStart updates the OS login registration. When the registration call
// fails, the persisted setting keeps its prior value and the notifier is told
// to revert the toggle.
func (c *Coordinator) SetAutoStart(enabled bool) bool {
	c.mu.Lock()
	current := c.settings.AutoStart
	c.mu.Unlock()
	if enabled == current {
		return true
	}

	if !c.autostart.SetEnabled(enabled) {
		c.notifier.ReportError("Auto-start", "failed to update the login registration")
		c.notifier.SetAutoStart(current)
		return false
	}

	c.mu.Lock()
	c.settings.AutoStart = enabled
	snap := c.settings
	c.mu.Unlock()

	c.notifier.SetAutoStart(enabled)
	if !c.store.Save(snap) {
		c.notifier.ReportError("Settings", "failed to save auto-start setting; changes may not persist")
	}
	return true
}

// scheduleTick re-evaluates the schedule and re-arms itself: a recurring
// one-shot rather than a fixed-rate timer, so drift accumulates by the
// tick's own execution time.
func (c *Coordinator) scheduleTick() {
	c.mu.Lock()
	running := c.running
	c.mu.Unlock()
	if !running {
		return
	}

	c.updateScheduleState()

	c.mu.Lock()
	if c.running {
		c.scheduleTimer = time.AfterFunc(c.refreshEvery, c.scheduleTick)
	}
	c.mu.Unlock()
}

// updateScheduleState evaluates the schedule, publishes the result, and
// starts or stops the idle monitor. The monitor is never started or stopped
// while holding the state lock: Stop joins the polling goroutine, which may
// itself be waiting on the lock inside handleIdle. Consequently a schedule
// tick and a user toggle can interleave and leave the poller running for up
// to one more evaluation; that is harmless, handleIdle re-checks every gate
// under the lock before acting.
func (c *Coordinator) updateScheduleState() {
	c.mu.Lock()
	within := schedule.IsWithinSchedule(c.settings.Schedule, c.now())
	c.withinSchedule = within
	label := c.scheduleLabelLocked()
	shouldMonitor := c.running && c.settings.MonitoringEnabled && within
	c.mu.Unlock()

	c.notifier.SetScheduleStatus(within, label)
	if shouldMonitor {
		c.monitor.Start()
	} else {
		c.monitor.Stop()
	}
}

func (c *Coordinator) scheduleLabelLocked() string {
	index := schedule.DayIndex(c.now())
	name, err := schedule.DayName(index)
	if err != nil {
		return ""
	}
	day := c.settings.Schedule.Day(index)
	if !day.Enabled {
		return fmt.Sprintf("Schedule: %s disabled", name)
	}
	return fmt.Sprintf("Schedule: %s %s-%s", name, day.StartTime, day.StopTime)
}

func (c *Coordinator) cancelTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scheduleTimer != nil {
		c.scheduleTimer.Stop()
		c.scheduleTimer = nil
	}
	if c.iconTimer != nil {
		c.iconTimer.Stop()
		c.iconTimer = nil
	}
}

// Settings returns a copy of the current settings.
func (c *Coordinator) Settings() settings.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// IdleSeconds reports the current system idle time for display purposes.
func (c *Coordinator) IdleSeconds() float64 {
	return c.monitor.IdleSeconds()
}

// Snapshot returns a copy of the current monitoring state for the UI layer.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := StateDisabled
	switch {
	case !c.settings.MonitoringEnabled:
		state = StateDisabled
	case c.isMoving:
		state = StateMoving
	case c.withinSchedule:
		state = StateArmed
	default:
		state = StateOutOfSchedule
	}

	snap := Snapshot{
		State:             state,
		MonitoringEnabled: c.settings.MonitoringEnabled,
		WithinSchedule:    c.withinSchedule,
		Moving:            c.isMoving,
		ThresholdSeconds:  c.settings.IdleThresholdSeconds,
		AutoStart:         c.settings.AutoStart,
		ScheduleLabel:     c.scheduleLabelLocked(),
	}
	if next, ok := schedule.NextActiveTime(c.settings.Schedule, c.now()); ok {
		snap.NextActive = next
		snap.HasNextActive = true
	}
	return snap
}
