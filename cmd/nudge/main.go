package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nudged/nudge/internal/app"
	"github.com/nudged/nudge/internal/autostart"
	"github.com/nudged/nudge/internal/config"
	"github.com/nudged/nudge/internal/idle"
	"github.com/nudged/nudge/internal/mouse"
	"github.com/nudged/nudge/internal/platform"
	"github.com/nudged/nudge/internal/settings"
	"github.com/nudged/nudge/internal/ui"
)

const appVersion = "1.0.0"

func main() {
	cfg, err := config.ParseFlags("nudge", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Printf("Nudge Version: %s\n", appVersion)
		return
	}

	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	store := settings.NewStore(cfg.SettingsPath)
	monitor := idle.NewMonitor(idleSource())
	actuator := mouse.NewActuator(mover())
	forwarder := ui.NewForwarder()
	coord := app.New(store, monitor, actuator, autostart.New(), forwarder)

	if cfg.Headless {
		runHeadless(coord)
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	p := tea.NewProgram(
		ui.InitialModel(coord),
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)
	forwarder.Attach(p)

	go func() {
		sig := <-sigChan
		log.Printf("main: received signal: %v", sig)
		coord.Close()
		p.Kill()
	}()

	coord.Start()
	if _, err := p.Run(); err != nil {
		log.Printf("main: error running program: %v", err)
		coord.Close()
		os.Exit(1)
	}
	coord.Close()
}

// runHeadless starts monitoring without the TUI and blocks until a
// termination signal arrives.
func runHeadless(coord *app.Coordinator) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	coord.Start()
	log.Printf("main: running headless, send SIGINT or SIGTERM to stop")

	sig := <-sigChan
	log.Printf("main: received signal: %v", sig)
	coord.Close()
}

// idleSource returns the platform idle query. When idle detection is not
// available the source always fails, which the monitor treats as never idle.
func idleSource() idle.Source {
	source, err := platform.NewInputMonitor()
	if err != nil {
		log.Printf("main: idle detection unavailable: %v", err)
		return func() (time.Duration, error) { return 0, err }
	}
	return source.IdleTime
}

// mover returns the platform cursor mover, or nil when no movement backend
// is available. The actuator reports failed movements for a nil mover.
func mover() platform.Mover {
	m, err := platform.NewMover()
	if err != nil {
		log.Printf("main: mouse movement unavailable: %v", err)
		return nil
	}
	return m
}
