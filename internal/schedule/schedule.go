// Package schedule holds the weekly activity schedule and decides whether
// idle prevention is allowed to act at a given point in time.
package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// DaySchedule is the active window for a single day of the week. Times are
// 24-hour "HH:MM" strings, validated at configuration time; evaluation treats
// malformed values as "not within schedule".
type DaySchedule struct {
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	StopTime  string `json:"stop_time"`
}

// WeeklySchedule configures one window per weekday.
type WeeklySchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Default returns the standard working-hours schedule: Monday through Friday
// 08:00-17:00, weekends disabled.
func Default() WeeklySchedule {
	workday := DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"}
	weekend := DaySchedule{Enabled: false, StartTime: "08:00", StopTime: "17:00"}
	return WeeklySchedule{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  weekend,
		Sunday:    weekend,
	}
}

// Day returns the schedule for a day index (0=Monday .. 6=Sunday). An index
// outside that range yields a disabled day rather than a panic.
func (s WeeklySchedule) Day(index int) DaySchedule {
	switch index {
	case 0:
		return s.Monday
	case 1:
		return s.Tuesday
	case 2:
		return s.Wednesday
	case 3:
		return s.Thursday
	case 4:
		return s.Friday
	case 5:
		return s.Saturday
	case 6:
		return s.Sunday
	}
	return DaySchedule{}
}

// SetDay replaces the schedule for a day index. Out-of-range indices are
// ignored.
func (s *WeeklySchedule) SetDay(index int, day DaySchedule) {
	switch index {
	case 0:
		s.Monday = day
	case 1:
		s.Tuesday = day
	case 2:
		s.Wednesday = day
	case 3:
		s.Thursday = day
	case 4:
		s.Friday = day
	case 5:
		s.Saturday = day
	case 6:
		s.Sunday = day
	}
}

// DayIndex converts a point in time to a day index (0=Monday .. 6=Sunday).
func DayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName returns the name of a day by index (0=Monday .. 6=Sunday).
func DayName(index int) (string, error) {
	if index < 0 || index > 6 {
		return "", fmt.Errorf("day index must be 0-6, got %d", index)
	}
	return dayNames[index], nil
}

// ValidateClock reports whether value is a well-formed, zero-padded 24-hour
// "HH:MM" string.
func ValidateClock(value string) error {
	if _, err := parseClock(value); err != nil {
		return err
	}
	return nil
}

// parseClock converts a strict "HH:MM" string to seconds since midnight.
func parseClock(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
	}
	hour, err := strconv.Atoi(value[:2])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q: hour must be 00-23", value)
	}
	minute, err := strconv.Atoi(value[3:])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: minute must be 00-59", value)
	}
	return hour*3600 + minute*60, nil
}

// inWindow checks a second-of-day against [start, stop], inclusive on both
// ends. A start after the stop wraps past midnight (e.g. 22:00-06:00).
func inWindow(current, start, stop int) bool {
	if start <= stop {
		return current >= start && current <= stop
	}
	return current >= start || current <= stop
}

// IsWithinSchedule reports whether now falls inside the active window for
// its weekday. Disabled days and malformed times are never within schedule;
// the function never fails.
func IsWithinSchedule(s WeeklySchedule, now time.Time) bool {
	day := s.Day(DayIndex(now))
	if !day.Enabled {
		return false
	}
	start, err := parseClock(day.StartTime)
	if err != nil {
		return false
	}
	stop, err := parseClock(day.StopTime)
	if err != nil {
		return false
	}
	current := now.Hour()*3600 + now.Minute()*60 + now.Second()
	return inWindow(current, start, stop)
}

// NextActiveTime returns the next instant the schedule becomes active: now
// itself when already inside today's window, otherwise the start of the first
// enabled day scanning forward (wrapping past Sunday). ok is false when no
// day is enabled.
func NextActiveTime(s WeeklySchedule, now time.Time) (next time.Time, ok bool) {
	if IsWithinSchedule(s, now) {
		return now, true
	}
	today := DayIndex(now)
	for offset := 0; offset < 7; offset++ {
		day := s.Day((today + offset) % 7)
		if !day.Enabled {
			continue
		}
		start, err := parseClock(day.StartTime)
		if err != nil {
			continue
		}
		target := time.Date(now.Year(), now.Month(), now.Day()+offset,
			start/3600, start%3600/60, 0, 0, now.Location())
		if offset == 0 && !target.After(now) {
			// Today's start already passed and we are outside the window.
			continue
		}
		return target, true
	}
	return time.Time{}, false
}
