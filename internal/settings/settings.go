// Package settings persists the application configuration as a JSON file
// stored next to the executable, so the program stays portable.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/nudged/nudge/internal/schedule"
)

const fileName = "nudge_settings.json"

// DefaultIdleThresholdSeconds is the inactivity threshold used until the
// user configures one (5 minutes).
const DefaultIdleThresholdSeconds = 300

// Settings is the persisted application configuration.
type Settings struct {
	IdleThresholdSeconds int                     `json:"idle_threshold_seconds"`
	AutoStart            bool                    `json:"auto_start"`
	MonitoringEnabled    bool                    `json:"monitoring_enabled"`
	Schedule             schedule.WeeklySchedule `json:"schedule"`
}

// Default returns the out-of-the-box configuration.
func Default() Settings {
	return Settings{
		IdleThresholdSeconds: DefaultIdleThresholdSeconds,
		AutoStart:            false,
		MonitoringEnabled:    true,
		Schedule:             schedule.Default(),
	}
}

// Store reads and writes Settings at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the given path. An empty path selects the
// default location beside the running executable.
func NewStore(path string) *Store {
	if path == "" {
		path = defaultPath()
	}
	return &Store{path: path}
}

func defaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		log.Printf("settings: could not resolve executable path: %v", err)
		return fileName
	}
	return filepath.Join(filepath.Dir(exe), fileName)
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Load reads settings from disk. A missing or unreadable file yields the
// defaults with a logged warning; Load never fails.
func (s *Store) Load() Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("settings: could not read %s: %v; using defaults", s.path, err)
		}
		return Default()
	}

	// Start from the defaults so fields absent from the file keep their
	// default values.
	loaded := Default()
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("settings: could not parse %s: %v; using defaults", s.path, err)
		return Default()
	}
	if loaded.IdleThresholdSeconds <= 0 {
		log.Printf("settings: invalid idle threshold %d in %s; using default",
			loaded.IdleThresholdSeconds, s.path)
		loaded.IdleThresholdSeconds = DefaultIdleThresholdSeconds
	}
	return loaded
}

// Save writes settings to disk, best effort. It returns false on failure.
func (s *Store) Save(v Settings) bool {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("settings: could not encode settings: %v", err)
		return false
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("settings: could not create %s: %v", dir, err)
			return false
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("settings: could not write %s: %v", s.path, err)
		return false
	}
	return true
}
