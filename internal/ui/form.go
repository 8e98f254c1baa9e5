package ui

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/nudged/nudge/internal/schedule"
	"github.com/nudged/nudge/internal/settings"
)

type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldClock
	fieldToggle
)

type formField struct {
	label string
	kind  fieldKind
	text  string
	on    bool
}

// configForm is the editable settings screen: the idle threshold, the
// auto-start toggle, and three fields per weekday.
type configForm struct {
	fields []formField
	cursor int
}

func newConfigForm(s settings.Settings) configForm {
	fields := []formField{
		{label: "Idle threshold (seconds)", kind: fieldNumber, text: strconv.Itoa(s.IdleThresholdSeconds)},
		{label: "Start at login", kind: fieldToggle, on: s.AutoStart},
	}
	for i := 0; i < 7; i++ {
		name, err := schedule.DayName(i)
		if err != nil {
			continue
		}
		day := s.Schedule.Day(i)
		fields = append(fields,
			formField{label: name, kind: fieldToggle, on: day.Enabled},
			formField{label: name + " start", kind: fieldClock, text: day.StartTime},
			formField{label: name + " stop", kind: fieldClock, text: day.StopTime},
		)
	}
	return configForm{fields: fields}
}

func (f *configForm) next() {
	if f.cursor < len(f.fields)-1 {
		f.cursor++
	}
}

func (f *configForm) prev() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *configForm) toggle() {
	field := &f.fields[f.cursor]
	if field.kind == fieldToggle {
		field.on = !field.on
	}
}

func (f *configForm) typeRune(r rune) {
	field := &f.fields[f.cursor]
	switch field.kind {
	case fieldNumber:
		if unicode.IsDigit(r) && len(field.text) < 5 {
			field.text += string(r)
		}
	case fieldClock:
		if (unicode.IsDigit(r) || r == ':') && len(field.text) < 5 {
			field.text += string(r)
		}
	}
}

func (f *configForm) backspace() {
	field := &f.fields[f.cursor]
	if field.kind != fieldToggle && len(field.text) > 0 {
		field.text = field.text[:len(field.text)-1]
	}
}

// settings validates the form and folds it into base. The second return is
// the requested auto-start state, which is applied separately because it can
// fail and revert.
func (f *configForm) settings(base settings.Settings) (settings.Settings, bool, error) {
	threshold, err := strconv.Atoi(f.fields[0].text)
	if err != nil || threshold <= 0 {
		return base, false, errors.New("idle threshold must be a positive number of seconds")
	}

	updated := base
	updated.IdleThresholdSeconds = threshold
	for i := 0; i < 7; i++ {
		enabled := f.fields[2+3*i]
		start := f.fields[3+3*i]
		stop := f.fields[4+3*i]
		if err := schedule.ValidateClock(start.text); err != nil {
			return base, false, fmt.Errorf("%s: %v", start.label, err)
		}
		if err := schedule.ValidateClock(stop.text); err != nil {
			return base, false, fmt.Errorf("%s: %v", stop.label, err)
		}
		updated.Schedule.SetDay(i, schedule.DaySchedule{
			Enabled:   enabled.on,
			StartTime: start.text,
			StopTime:  stop.text,
		})
	}
	return updated, f.fields[1].on, nil
}
