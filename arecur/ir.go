package arecur

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// TimeOfDay is a wall-clock time with no date component, minute resolution.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay builds a TimeOfDay from hour/minute components.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes() < other.minutes()
}

// After reports whether t is later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes() > other.minutes()
}

// HolidaySpec reserves a holiday exclusion, resolved against a Provider at
// evaluation time rather than baked into the IR at parse time.
type HolidaySpec struct {
	Enabled bool
	Country string
}

// Except names instants a Recurring rule's candidates must not fall on.
type Except struct {
	Weekdays []time.Weekday // stdlib convention (Sunday=0)
	Dates    []time.Time    // compared by calendar date only
	Holidays HolidaySpec
}

// WindowDate bounds which calendar dates a rule's occurrences may fall in.
// End and Until both cap the window; the earlier of the two applies.
type WindowDate struct {
	Start *time.Time
	End   *time.Time
	Until *time.Time
}

// BetweenTime bounds which times of day a rule's occurrences may fall in,
// or (paired with Step) the stride a step-within-day rule walks.
type BetweenTime struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Step describes a step-within-day re-probe stride, e.g. "every 15 minutes
// between 09:00 and 17:00".
type Step struct {
	Minutes int
	Hours   int
}

// Duration returns the stride as a time.Duration.
func (s Step) Duration() time.Duration {
	return time.Duration(s.Hours)*time.Hour + time.Duration(s.Minutes)*time.Minute
}

// WeekendShift names the post-processing applied when a computed candidate
// lands on a weekend.
type WeekendShift string

const (
	WeekendShiftNone          WeekendShift = ""
	WeekendShiftNextMonday    WeekendShift = "next_monday"
	WeekendShiftNextBusiness  WeekendShift = "next_business_day"
)

// Rule is a single recurrence selector within a Schedule. Exactly one of
// the oneshot instant (At) or the recurring fields (Freq and friends)
// applies, discriminated by IsOneShot.
type Rule struct {
	ID uuid.UUID

	IsOneShot bool
	At        time.Time

	Freq       string `validate:"required_without=IsOneShot"`
	Interval   int    `validate:"omitempty,min=1"`
	ByMonth    []int  `validate:"omitempty,dive,min=1,max=12"`
	ByWeekday  []int  `validate:"omitempty,dive,min=0,max=6"`
	ByMonthDay []int  `validate:"omitempty,dive,min=-1,max=31"`
	BySetPos   []int  `validate:"omitempty,dive,min=-53,max=53"`
	Times      []TimeOfDay

	BetweenTime *BetweenTime
	Step        *Step
	WindowDate  *WindowDate
	Except      *Except

	WeekendShift WeekendShift
}

// IsStepWithinDay reports whether r uses a sub-day stepping stride rather
// than a fixed list of times.
func (r *Rule) IsStepWithinDay() bool {
	return r.Step != nil && r.BetweenTime != nil
}

// Schedule is a parsed, composed set of Rules sharing a default timezone.
// Rule order has no semantic effect on NextOccurrence; each Rule's ID
// exists purely for diagnostics.
type Schedule struct {
	TZ      string
	Rules   []*Rule
	Version string
}
