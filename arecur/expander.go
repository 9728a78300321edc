package arecur

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jpfluger/schedtext/atime"
)

// weekdayByIndex maps the IR's Monday=0 weekday convention onto rrule-go's
// Weekday constants, which use the same convention.
var weekdayByIndex = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Expander turns a Rule into one or more *rrule.RRule candidate generators.
// It owns frequency mapping and the positional-anchor fix for
// bysetpos+byweekday monthly/yearly rules; window bounds, exceptions,
// weekend shift and step-within-day re-probing are the occurrence engine's
// job, not the expander's.
type Expander struct{}

// NewExpander returns a ready-to-use Expander. It holds no state.
func NewExpander() *Expander {
	return &Expander{}
}

// Build returns one rrule.RRule per entry in r.Times (or one at dtstart's
// clock time when r.Times is empty), anchored at dtstart. A step-within-day
// rule yields a single rule fixed at BetweenTime.Start, and an hourly rule
// with a between_time and no times yields a single rule with no fixed
// clock time.
//
// Monthly/yearly rules that combine BySetPos with ByWeekday ("the second
// Tuesday of the month") are anchored to the start of the month/year
// containing dtstart rather than dtstart itself. Anchoring to dtstart
// directly would let rrule-go silently skip the current period whenever
// dtstart's day-of-month already falls after the target occurrence,
// producing a next-period candidate a full cycle too late.
func (e *Expander) Build(r *Rule, dtstart time.Time) ([]*rrule.RRule, error) {
	freq := atime.TimeUnit(r.Freq).ToFrequency()
	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}

	anchor := dtstart
	if (freq == rrule.MONTHLY || freq == rrule.YEARLY) && len(r.BySetPos) > 0 && len(r.ByWeekday) > 0 {
		anchor = periodStart(freq, dtstart)
	}

	base := rrule.ROption{
		Freq:       freq,
		Interval:   interval,
		Dtstart:    anchor,
		Bymonth:    r.ByMonth,
		Byweekday:  toRRuleWeekdays(r.ByWeekday),
		Bymonthday: r.ByMonthDay,
		Bysetpos:   r.BySetPos,
	}

	if r.IsStepWithinDay() {
		opt := base
		opt.Byhour = []int{r.BetweenTime.Start.Hour}
		opt.Byminute = []int{r.BetweenTime.Start.Minute}
		rl, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{rl}, nil
	}

	// An hourly rule carrying a between_time window but no explicit times
	// (e.g. "every 2 hours between 09:00 and 17:00") has no fixed clock
	// time at all: it steps naturally from dtstart at the given interval,
	// and the engine's exclusion check trims candidates outside the
	// window. Forcing a single byhour here would collapse it to one
	// occurrence per day instead of one every N hours.
	if freq == rrule.HOURLY && r.BetweenTime != nil && len(r.Times) == 0 {
		rl, err := rrule.NewRRule(base)
		if err != nil {
			return nil, err
		}
		return []*rrule.RRule{rl}, nil
	}

	times := r.Times
	if len(times) == 0 {
		times = []TimeOfDay{{Hour: anchor.Hour(), Minute: anchor.Minute()}}
	}

	rules := make([]*rrule.RRule, 0, len(times))
	for _, t := range times {
		opt := base
		opt.Byhour = []int{t.Hour}
		opt.Byminute = []int{t.Minute}
		rl, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rl)
	}
	return rules, nil
}

func periodStart(freq rrule.Frequency, t time.Time) time.Time {
	if freq == rrule.YEARLY {
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func toRRuleWeekdays(days []int) []rrule.Weekday {
	if len(days) == 0 {
		return nil
	}
	out := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, weekdayByIndex[((d%7)+7)%7])
	}
	return out
}
