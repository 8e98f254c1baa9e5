package schedule

import (
	"testing"
	"time"
)

// monday returns a time.Time on a known Monday (2024-01-01) at the given
// clock time.
func monday(hour, minute, second int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, second, 0, time.UTC)
}

func allDays(day DaySchedule) WeeklySchedule {
	var s WeeklySchedule
	for i := 0; i < 7; i++ {
		s.SetDay(i, day)
	}
	return s
}

func TestIsWithinSchedule(t *testing.T) {
	tests := []struct {
		name string
		day  DaySchedule
		now  time.Time
		want bool
	}{
		{
			name: "inside window",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"},
			now:  monday(12, 0, 0),
			want: true,
		},
		{
			name: "exactly at start",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"},
			now:  monday(8, 0, 0),
			want: true,
		},
		{
			name: "exactly at stop",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"},
			now:  monday(17, 0, 0),
			want: true,
		},
		{
			name: "one minute before start",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"},
			now:  monday(7, 59, 0),
			want: false,
		},
		{
			name: "one minute past stop",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "17:00"},
			now:  monday(17, 1, 0),
			want: false,
		},
		{
			name: "disabled day is never within schedule",
			day:  DaySchedule{Enabled: false, StartTime: "00:00", StopTime: "23:59"},
			now:  monday(12, 0, 0),
			want: false,
		},
		{
			name: "overnight window active late evening",
			day:  DaySchedule{Enabled: true, StartTime: "22:00", StopTime: "06:00"},
			now:  monday(23, 0, 0),
			want: true,
		},
		{
			name: "overnight window active early morning",
			day:  DaySchedule{Enabled: true, StartTime: "22:00", StopTime: "06:00"},
			now:  monday(5, 59, 0),
			want: true,
		},
		{
			name: "overnight window boundary at stop",
			day:  DaySchedule{Enabled: true, StartTime: "22:00", StopTime: "06:00"},
			now:  monday(6, 0, 0),
			want: true,
		},
		{
			name: "overnight window inactive at midday",
			day:  DaySchedule{Enabled: true, StartTime: "22:00", StopTime: "06:00"},
			now:  monday(12, 0, 0),
			want: false,
		},
		{
			name: "overnight window inactive mid-morning",
			day:  DaySchedule{Enabled: true, StartTime: "22:00", StopTime: "06:00"},
			now:  monday(7, 0, 0),
			want: false,
		},
		{
			name: "malformed start time",
			day:  DaySchedule{Enabled: true, StartTime: "invalid", StopTime: "17:00"},
			now:  monday(12, 0, 0),
			want: false,
		},
		{
			name: "malformed stop time",
			day:  DaySchedule{Enabled: true, StartTime: "08:00", StopTime: "invalid"},
			now:  monday(12, 0, 0),
			want: false,
		},
		{
			name: "unpadded hour is rejected",
			day:  DaySchedule{Enabled: true, StartTime: "8:00", StopTime: "17:00"},
			now:  monday(12, 0, 0),
			want: false,
		},
		{
			name: "hour out of range",
			day:  DaySchedule{Enabled: true, StartTime: "24:00", StopTime: "17:00"},
			now:  monday(12, 0, 0),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := allDays(tt.day)
			if got := IsWithinSchedule(s, tt.now); got != tt.want {
				t.Errorf("IsWithinSchedule() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWithinScheduleUsesWeekday(t *testing.T) {
	s := Default()
	// 2024-01-06 is a Saturday; default schedule disables weekends.
	saturdayNoon := time.Date(2024, time.January, 6, 12, 0, 0, 0, time.UTC)
	if IsWithinSchedule(s, saturdayNoon) {
		t.Error("expected Saturday to be outside the default schedule")
	}
	mondayNoon := monday(12, 0, 0)
	if !IsWithinSchedule(s, mondayNoon) {
		t.Error("expected Monday noon to be inside the default schedule")
	}
}

func TestNextActiveTime(t *testing.T) {
	t.Run("already active returns now", func(t *testing.T) {
		now := monday(12, 0, 0)
		next, ok := NextActiveTime(Default(), now)
		if !ok {
			t.Fatal("expected an active time")
		}
		if !next.Equal(now) {
			t.Errorf("expected now (%v), got %v", now, next)
		}
	})

	t.Run("before start returns start of today", func(t *testing.T) {
		now := monday(6, 0, 0)
		next, ok := NextActiveTime(Default(), now)
		if !ok {
			t.Fatal("expected an active time")
		}
		want := monday(8, 0, 0)
		if !next.Equal(want) {
			t.Errorf("expected %v, got %v", want, next)
		}
	})

	t.Run("after stop returns start of next enabled day", func(t *testing.T) {
		now := monday(18, 0, 0)
		next, ok := NextActiveTime(Default(), now)
		if !ok {
			t.Fatal("expected an active time")
		}
		want := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("expected Tuesday 08:00 (%v), got %v", want, next)
		}
	})

	t.Run("weekend skips to Monday", func(t *testing.T) {
		// 2024-01-06 is a Saturday; next enabled day is Monday the 8th.
		now := time.Date(2024, time.January, 6, 12, 0, 0, 0, time.UTC)
		next, ok := NextActiveTime(Default(), now)
		if !ok {
			t.Fatal("expected an active time")
		}
		want := time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("expected Monday 08:00 (%v), got %v", want, next)
		}
	})

	t.Run("friday evening wraps past the weekend", func(t *testing.T) {
		// 2024-01-05 is a Friday.
		now := time.Date(2024, time.January, 5, 20, 0, 0, 0, time.UTC)
		next, ok := NextActiveTime(Default(), now)
		if !ok {
			t.Fatal("expected an active time")
		}
		want := time.Date(2024, time.January, 8, 8, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("expected Monday 08:00 (%v), got %v", want, next)
		}
	})

	t.Run("no enabled days returns not ok", func(t *testing.T) {
		s := allDays(DaySchedule{Enabled: false, StartTime: "08:00", StopTime: "17:00"})
		if _, ok := NextActiveTime(s, monday(12, 0, 0)); ok {
			t.Error("expected no active time with all days disabled")
		}
	})

	t.Run("malformed enabled day is skipped", func(t *testing.T) {
		s := allDays(DaySchedule{Enabled: false, StartTime: "08:00", StopTime: "17:00"})
		s.Monday = DaySchedule{Enabled: true, StartTime: "bogus", StopTime: "17:00"}
		s.Tuesday = DaySchedule{Enabled: true, StartTime: "09:00", StopTime: "17:00"}
		now := monday(6, 0, 0)
		next, ok := NextActiveTime(s, now)
		if !ok {
			t.Fatal("expected an active time")
		}
		want := time.Date(2024, time.January, 2, 9, 0, 0, 0, time.UTC)
		if !next.Equal(want) {
			t.Errorf("expected Tuesday 09:00 (%v), got %v", want, next)
		}
	})
}

func TestDayName(t *testing.T) {
	tests := []struct {
		index   int
		want    string
		wantErr bool
	}{
		{0, "Monday", false},
		{4, "Friday", false},
		{6, "Sunday", false},
		{-1, "", true},
		{7, "", true},
	}

	for _, tt := range tests {
		got, err := DayName(tt.index)
		if (err != nil) != tt.wantErr {
			t.Errorf("DayName(%d) error = %v, wantErr %v", tt.index, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("DayName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestValidateClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "17:00", "23:59"}
	for _, v := range valid {
		if err := ValidateClock(v); err != nil {
			t.Errorf("ValidateClock(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "8:00", "08:0", "24:00", "12:60", "ab:cd", "08-00", "08:00:00"}
	for _, v := range invalid {
		if err := ValidateClock(v); err == nil {
			t.Errorf("ValidateClock(%q) = nil, want error", v)
		}
	}
}

func TestDayIndex(t *testing.T) {
	// 2024-01-01 is a Monday, 2024-01-07 a Sunday.
	for offset := 0; offset < 7; offset++ {
		day := time.Date(2024, time.January, 1+offset, 12, 0, 0, 0, time.UTC)
		if got := DayIndex(day); got != offset {
			t.Errorf("DayIndex(%v) = %d, want %d", day.Weekday(), got, offset)
		}
	}
}
