package aschedule

import (
	"fmt"
	"time"

	"github.com/jpfluger/schedtext/aerr"
	"github.com/jpfluger/schedtext/arecur"
)

// ValidationReport is returned for a Schedule that passes validation. It
// carries the first occurrence found within the horizon so a caller doesn't
// need a second NextOccurrence call just to show the user something useful.
type ValidationReport struct {
	Schedule    *arecur.Schedule
	FirstOccurs time.Time
	Description string
}

// Validator checks a Schedule for internal consistency beyond what
// arecur.Rule.Validate's struct tags can express: window ordering,
// self-excluding one-shots, and rules that never actually fire within a
// horizon.
type Validator struct {
	engine *Engine
}

// NewValidator builds a Validator backed by the given holiday provider
// (nil is fine if no rule needs one).
func NewValidator(provider arecur.Provider) *Validator {
	return &Validator{engine: NewEngine(provider)}
}

// Validate checks each rule in sched for internal consistency and, for
// recurring rules, confirms a scan out to horizon actually produces an
// occurrence. now is the reference instant validation runs relative to.
// horizon, when non-zero, overrides the default horizon for every rule;
// when zero, each rule gets its own horizon: its window's end/until if it
// has one, otherwise now plus one year and one day.
func (v *Validator) Validate(sched *arecur.Schedule, now time.Time, horizon time.Time) (*ValidationReport, error) {
	for i, r := range sched.Rules {
		if ves := r.Validate(); len(ves) > 0 {
			return nil, aerr.NewInvalidRuleError(i, "%s", ves.Error())
		}

		if err := validateRuleShape(r); err != nil {
			return nil, aerr.NewInvalidRuleError(i, "%s", err.Error())
		}

		if r.IsOneShot {
			if r.WindowDate != nil && !windowContains(r.WindowDate, r.At) {
				return nil, aerr.NewInvalidRuleError(i, "oneshot instant %s falls outside its own window", r.At.Format(time.RFC3339))
			}
			excluded, err := v.engine.isExcluded(r, r.At)
			if err != nil {
				return nil, err
			}
			if excluded {
				return nil, aerr.NewInvalidRuleError(i, "oneshot instant %s is excluded by its own rule", r.At.Format(time.RFC3339))
			}
			continue
		}

		ruleHorizon := horizon
		if ruleHorizon.IsZero() {
			ruleHorizon = defaultHorizon(r, now)
		}

		t, ok, err := v.engine.nextForRule(r, now)
		if err != nil {
			return nil, err
		}
		if !ok || t.After(ruleHorizon) {
			return nil, aerr.NewInvalidRuleError(i, "rule produces no occurrence within the horizon ending %s", ruleHorizon.Format(time.RFC3339))
		}
	}

	first, err := v.engine.NextOccurrence(sched, now)
	if err != nil {
		return nil, err
	}

	return &ValidationReport{
		Schedule:    sched,
		FirstOccurs: first,
		Description: sched.Describe(),
	}, nil
}

// defaultHorizon returns r's own window end/until as its validation
// horizon; a rule with no window is scanned out to now plus one year and
// one day.
func defaultHorizon(r *arecur.Rule, now time.Time) time.Time {
	if _, wEnd := windowBounds(r.WindowDate, now.Location()); wEnd != nil {
		return *wEnd
	}
	return now.AddDate(1, 0, 1)
}

func validateRuleShape(r *arecur.Rule) error {
	if r.WindowDate != nil && r.WindowDate.Start != nil && r.WindowDate.End != nil && r.WindowDate.End.Before(*r.WindowDate.Start) {
		return fmt.Errorf("window end is before window start")
	}
	if r.IsStepWithinDay() && r.BetweenTime.End.Before(r.BetweenTime.Start) {
		return fmt.Errorf("step-within-day between_time end is before its start")
	}
	return nil
}
