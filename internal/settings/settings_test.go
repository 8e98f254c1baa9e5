package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nudged/nudge/internal/schedule"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "settings.json"))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := tempStore(t)

	got := s.Load()
	want := Default()
	if got != want {
		t.Errorf("Load() = %+v, want defaults %+v", got, want)
	}
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoadInvalidThresholdFallsBack(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"idle_threshold_seconds": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if got.IdleThresholdSeconds != DefaultIdleThresholdSeconds {
		t.Errorf("IdleThresholdSeconds = %d, want %d",
			got.IdleThresholdSeconds, DefaultIdleThresholdSeconds)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	saved := Default()
	saved.IdleThresholdSeconds = 120
	saved.MonitoringEnabled = false
	saved.AutoStart = true
	saved.Schedule.Saturday = schedule.DaySchedule{
		Enabled: true, StartTime: "10:00", StopTime: "14:00",
	}

	if !s.Save(saved) {
		t.Fatal("Save failed")
	}

	got := s.Load()
	if got != saved {
		t.Errorf("Load() = %+v, want %+v", got, saved)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path(), []byte(`{"idle_threshold_seconds": 60}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.Load()
	if got.IdleThresholdSeconds != 60 {
		t.Errorf("IdleThresholdSeconds = %d, want 60", got.IdleThresholdSeconds)
	}
	if !got.MonitoringEnabled {
		t.Error("expected MonitoringEnabled to default to true")
	}
	if got.Schedule != schedule.Default() {
		t.Error("expected schedule to default")
	}
}

func TestSaveFailureReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	// A path whose parent is a file cannot be created.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(filepath.Join(blocker, "settings.json"))

	if s.Save(Default()) {
		t.Error("expected Save to fail when the directory cannot be created")
	}
}
