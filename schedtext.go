// Package schedtext turns natural-language recurrence text, in English or
// French, into the next concrete instant it describes. It has no process,
// network, or storage surface: every exported function is a pure
// text-in/instant-out call.
package schedtext

import (
	"time"

	"github.com/jpfluger/schedtext/alang"
	"github.com/jpfluger/schedtext/arecur"
	"github.com/jpfluger/schedtext/aschedule"
	"github.com/jpfluger/schedtext/atime"
)

// ParseSchedule parses text (English or French, auto-detected) into a
// Schedule IR. defaultTZ is used unless text itself names a trailing
// "in <Area/Zone>" clause.
func ParseSchedule(text string, defaultTZ string) (*arecur.Schedule, error) {
	return alang.ParseSchedule(text, defaultTZ)
}

// ParseRule parses a single rule clause (English or French, auto-detected).
func ParseRule(text string) (*arecur.Rule, error) {
	return alang.ParseRule(text)
}

// NextOccurrence parses text and returns the earliest instant strictly
// after now that any of its rules produce, resolved in the schedule's
// timezone. A zero now defaults to time.Now(); provider may be nil unless
// a rule excludes holidays.
func NextOccurrence(text string, now time.Time, defaultTZ string, provider arecur.Provider) (time.Time, error) {
	sched, err := ParseSchedule(text, defaultTZ)
	if err != nil {
		return time.Time{}, err
	}

	loc, err := atime.GetLocation(sched.TZ)
	if err != nil {
		return time.Time{}, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	engine := aschedule.NewEngine(provider)
	return engine.NextOccurrence(sched, now)
}

// Validate parses text and checks the resulting schedule for internal
// consistency, returning a ValidationReport (which includes the first
// occurrence) on success or an *aerr.InvalidRuleError identifying the
// offending rule.
func Validate(text string, now time.Time, defaultTZ string, provider arecur.Provider) (*aschedule.ValidationReport, error) {
	sched, err := ParseSchedule(text, defaultTZ)
	if err != nil {
		return nil, err
	}

	loc, err := atime.GetLocation(sched.TZ)
	if err != nil {
		return nil, err
	}
	if now.IsZero() {
		now = time.Now()
	}
	now = now.In(loc)

	v := aschedule.NewValidator(provider)
	return v.Validate(sched, now, time.Time{})
}
