package aschedule

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jpfluger/schedtext/aerr"
	"github.com/jpfluger/schedtext/alog"
	"github.com/jpfluger/schedtext/arecur"
)

// maxProbes caps the number of candidate instants a single rule will walk
// through looking for one that survives its exclusions, before giving up.
// A rule excluding every weekday, every holiday and a thousand years of
// dates would otherwise spin forever.
const maxProbes = 500

// Engine computes NextOccurrence over a Schedule. It holds an optional
// holiday Provider shared by every rule that declares except.holidays.
type Engine struct {
	expander *arecur.Expander
	provider arecur.Provider
}

// NewEngine builds an Engine. provider may be nil; rules that need holiday
// exclusion then fail with aerr.UnsupportedFeatureError instead of silently
// ignoring the request.
func NewEngine(provider arecur.Provider) *Engine {
	return &Engine{expander: arecur.NewExpander(), provider: provider}
}

// NextOccurrence returns the earliest instant strictly after `after` that
// satisfies any rule in sched, honoring each rule's window, exceptions and
// weekend shift. Composition across rules is a plain minimum: the result is
// whichever rule fires soonest.
func (e *Engine) NextOccurrence(sched *arecur.Schedule, after time.Time) (time.Time, error) {
	var best time.Time
	found := false

	for _, r := range sched.Rules {
		t, ok, err := e.nextForRule(r, after)
		if err != nil {
			return time.Time{}, err
		}
		if !ok {
			continue
		}
		if !found || t.Before(best) {
			best = t
			found = true
		}
	}

	if !found {
		return time.Time{}, aerr.NewNoOccurrenceError("no rule in the schedule produces an occurrence after %s", after.Format(time.RFC3339))
	}
	return best, nil
}

func (e *Engine) nextForRule(r *arecur.Rule, after time.Time) (time.Time, bool, error) {
	if r.IsOneShot {
		return e.nextForOneShot(r, after)
	}
	if r.IsStepWithinDay() {
		return e.nextForStepWithinDay(r, after)
	}
	return e.nextForTimed(r, after)
}

func (e *Engine) nextForOneShot(r *arecur.Rule, after time.Time) (time.Time, bool, error) {
	if !r.At.After(after) {
		return time.Time{}, false, nil
	}
	if !windowContains(r.WindowDate, r.At) {
		return time.Time{}, false, nil
	}
	excluded, err := e.isExcluded(r, r.At)
	if err != nil {
		return time.Time{}, false, err
	}
	if excluded {
		return time.Time{}, false, nil
	}
	return r.At, true, nil
}

func (e *Engine) nextForTimed(r *arecur.Rule, after time.Time) (time.Time, bool, error) {
	log := alog.LOGGER(alog.LOGGER_ENGINE)

	_, wEnd := windowBounds(r.WindowDate, after.Location())

	dtstart := after
	if wStart, _ := windowBounds(r.WindowDate, after.Location()); wStart != nil && wStart.After(dtstart) {
		dtstart = *wStart
	}

	rules, err := e.expander.Build(r, dtstart)
	if err != nil {
		return time.Time{}, false, err
	}

	probe := after
	for i := 0; i < maxProbes; i++ {
		cand, ok := earliestAfter(rules, probe)
		if !ok {
			return time.Time{}, false, nil
		}

		shifted := applyWeekendShift(r.WeekendShift, cand)

		if wEnd != nil && shifted.After(*wEnd) {
			return time.Time{}, false, nil
		}

		excluded, err := e.isExcluded(r, shifted)
		if err != nil {
			return time.Time{}, false, err
		}
		if excluded {
			probe = shifted.Add(time.Second)
			continue
		}

		log.Debug().Int("probe", i).Time("candidate", shifted).Msg("accepted candidate")
		return shifted, true, nil
	}

	return time.Time{}, false, aerr.NewNoOccurrenceError("exhausted %d probes without a surviving candidate", maxProbes)
}

func (e *Engine) nextForStepWithinDay(r *arecur.Rule, after time.Time) (time.Time, bool, error) {
	_, wEnd := windowBounds(r.WindowDate, after.Location())

	dtstart := after
	if wStart, _ := windowBounds(r.WindowDate, after.Location()); wStart != nil && wStart.After(dtstart) {
		dtstart = *wStart
	}
	// Build the day rule from midnight of its first day, so that day's own
	// fixed slot time stays a candidate even when dtstart is later in it.
	dtstart = time.Date(dtstart.Year(), dtstart.Month(), dtstart.Day(), 0, 0, 0, 0, dtstart.Location())

	rules, err := e.expander.Build(r, dtstart)
	if err != nil {
		return time.Time{}, false, err
	}
	dayRule := rules[0]

	probe := after
	for i := 0; i < maxProbes; i++ {
		// Anchor the day-rule lookup at the start of probe's own calendar
		// day, not at probe itself: probe's time-of-day may already be
		// past the day rule's fixed byhour/byminute, which would
		// otherwise skip today entirely even though an unprobed slot
		// later today still satisfies the stride.
		dayStart := time.Date(probe.Year(), probe.Month(), probe.Day(), 0, 0, 0, 0, probe.Location())
		dayCandidate := dayRule.After(dayStart.Add(-time.Second), false)
		if dayCandidate.IsZero() {
			return time.Time{}, false, nil
		}

		slot, ok := stepSlotAfter(dayCandidate, r.BetweenTime, r.Step, probe)
		if !ok {
			// No slot left on this day: resume at the next day's 00:00.
			probe = endOfDay(dayCandidate).Add(time.Second)
			continue
		}

		shifted := applyWeekendShift(r.WeekendShift, slot)

		if wEnd != nil && shifted.After(*wEnd) {
			return time.Time{}, false, nil
		}

		excluded, err := e.isExcluded(r, shifted)
		if err != nil {
			return time.Time{}, false, err
		}
		if excluded {
			probe = shifted.Add(time.Second)
			continue
		}
		return shifted, true, nil
	}

	return time.Time{}, false, aerr.NewNoOccurrenceError("exhausted %d probes without a surviving candidate", maxProbes)
}

func stepSlotAfter(day time.Time, bt *arecur.BetweenTime, step *arecur.Step, after time.Time) (time.Time, bool) {
	stride := step.Duration()
	if stride <= 0 {
		return time.Time{}, false
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), bt.Start.Hour, bt.Start.Minute, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), bt.End.Hour, bt.End.Minute, 0, 0, day.Location())

	for slot := start; !slot.After(end); slot = slot.Add(stride) {
		if slot.After(after) {
			return slot, true
		}
	}
	return time.Time{}, false
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// isExcluded reports whether t is blocked by r's except clause, or (for an
// hourly rule carrying a between_time with no step) falls outside the
// allowed time-of-day window.
func (e *Engine) isExcluded(r *arecur.Rule, t time.Time) (bool, error) {
	if r.Except != nil {
		for _, wd := range r.Except.Weekdays {
			if t.Weekday() == wd {
				return true, nil
			}
		}
		for _, d := range r.Except.Dates {
			if sameDate(d, t) {
				return true, nil
			}
		}
		if r.Except.Holidays.Enabled {
			if e.provider == nil {
				return false, aerr.NewUnsupportedFeatureError("holidays", "rule excludes holidays but no holiday Provider was configured")
			}
			if actual, _, _ := e.provider.IsHoliday(t); actual {
				return true, nil
			}
		}
	}

	if r.Freq == "hourly" && r.BetweenTime != nil && r.Step == nil {
		tod := arecur.NewTimeOfDay(t.Hour(), t.Minute())
		if tod.Before(r.BetweenTime.Start) || tod.After(r.BetweenTime.End) {
			return true, nil
		}
	}

	return false, nil
}

func earliestAfter(rules []*rrule.RRule, probe time.Time) (time.Time, bool) {
	var best time.Time
	found := false
	for _, rl := range rules {
		t := rl.After(probe, false)
		if t.IsZero() {
			continue
		}
		if !found || t.Before(best) {
			best = t
			found = true
		}
	}
	return best, found
}
