package atime

import (
	"strings"

	"github.com/teambition/rrule-go"
)

const (
	TIMEUNIT_SECONDLY TimeUnit = "secondly"
	TIMEUNIT_MINUTELY TimeUnit = "minutely"
	TIMEUNIT_HOURLY   TimeUnit = "hourly"
	TIMEUNIT_DAILY    TimeUnit = "daily"
	TIMEUNIT_WEEKLY   TimeUnit = "weekly"
	TIMEUNIT_MONTHLY  TimeUnit = "monthly"
	TIMEUNIT_YEARLY   TimeUnit = "yearly"
)

// TimeUnit defines the unit of recurrence for the time ranges.
type TimeUnit string

func (t TimeUnit) IsEmpty() bool { return string(t) == "" }

func (t TimeUnit) String() string {
	return strings.ToLower(string(t))
}

func (t TimeUnit) IsValid() bool {
	switch t {
	case TIMEUNIT_SECONDLY, TIMEUNIT_MINUTELY, TIMEUNIT_HOURLY, TIMEUNIT_DAILY, TIMEUNIT_WEEKLY, TIMEUNIT_MONTHLY, TIMEUNIT_YEARLY:
		return true
	default:
		return false
	}
}

func (t TimeUnit) Default() TimeUnit {
	if t.IsEmpty() {
		return TIMEUNIT_DAILY // Assume daily is the default
	}
	return t
}

// ToFrequency maps a TimeUnit onto the equivalent rrule.Frequency constant.
// Unknown or empty units fall back to rrule.DAILY.
func (t TimeUnit) ToFrequency() rrule.Frequency {
	switch t.Default() {
	case TIMEUNIT_SECONDLY:
		return rrule.SECONDLY
	case TIMEUNIT_MINUTELY:
		return rrule.MINUTELY
	case TIMEUNIT_HOURLY:
		return rrule.HOURLY
	case TIMEUNIT_WEEKLY:
		return rrule.WEEKLY
	case TIMEUNIT_MONTHLY:
		return rrule.MONTHLY
	case TIMEUNIT_YEARLY:
		return rrule.YEARLY
	default:
		return rrule.DAILY
	}
}

// FromFrequency maps an rrule.Frequency (passed as int so callers don't need
// the rrule import just to round-trip a value) back onto a TimeUnit. Unknown
// values fall back to TIMEUNIT_DAILY.
func FromFrequency(freq int) TimeUnit {
	switch rrule.Frequency(freq) {
	case rrule.SECONDLY:
		return TIMEUNIT_SECONDLY
	case rrule.MINUTELY:
		return TIMEUNIT_MINUTELY
	case rrule.HOURLY:
		return TIMEUNIT_HOURLY
	case rrule.DAILY:
		return TIMEUNIT_DAILY
	case rrule.WEEKLY:
		return TIMEUNIT_WEEKLY
	case rrule.MONTHLY:
		return TIMEUNIT_MONTHLY
	case rrule.YEARLY:
		return TIMEUNIT_YEARLY
	default:
		return TIMEUNIT_DAILY
	}
}
