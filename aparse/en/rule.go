package en

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/jpfluger/schedtext/aerr"
	"github.com/jpfluger/schedtext/alog"
	"github.com/jpfluger/schedtext/arecur"
)

var (
	reOneShot               = regexp.MustCompile(`(?i)^(\d{4}-\d{2}-\d{2})\s+at\s+(.+)$`)
	reYearlyFixed           = regexp.MustCompile(`(?i)^every year on (\d{2})-(\d{2}) at (.+)$`)
	reStepWithinDay         = regexp.MustCompile(`(?i)^every (day|weekday) every (\d+) (hours|minutes) between (.+) and (.+)$`)
	reHourlyIntervalBetween = regexp.MustCompile(`(?i)^every (\d+) hours between (.+) and (.+)$`)
	reHourlyBetween         = regexp.MustCompile(`(?i)^every hour between (.+) and (.+)$`)
	reEveryNUnit            = regexp.MustCompile(`(?i)^every (\d+) (minutes|hours|days|weeks)(?: on (.+?))?(?: at (.+))?$`)
	reEveryWeekdayAt        = regexp.MustCompile(`(?i)^every weekday at (.+)$`)
	reEveryDayAt            = regexp.MustCompile(`(?i)^every day at (.+)$`)
	reYearlyNth             = regexp.MustCompile(`(?i)^every year on the (\S+) (\S+) of (\S+) at (.+)$`)
	reMonthlySpec           = regexp.MustCompile(`(?i)^every month on the (.+?) at (.+)$`)
	reEveryWeekdayListAt    = regexp.MustCompile(`(?i)^every ([a-z, ]+?) at (.+)$`)
)

// ParseRule parses a single rule clause (already split from a schedule, or
// a standalone rule) into an *arecur.Rule.
func ParseRule(text string) (*arecur.Rule, error) {
	norm := strings.ToLower(strings.Join(strings.Fields(text), " "))

	body, sfx, err := stripSuffixes(norm)
	if err != nil {
		return nil, aerr.NewParseError(text, "failed to parse rule suffixes: %v", err)
	}

	r, err := matchBody(body)
	if err != nil {
		return nil, err
	}

	id, genErr := uuid.NewV7()
	if genErr == nil {
		r.ID = id
	}
	r.WeekendShift = sfx.weekendShift
	r.Except = sfx.except
	if sfx.windowStart != nil || sfx.windowEnd != nil || sfx.windowUntil != nil {
		r.WindowDate = &arecur.WindowDate{Start: sfx.windowStart, End: sfx.windowEnd, Until: sfx.windowUntil}
	}

	alog.LOGGER(alog.LOGGER_PARSE).Debug().Str("rule", text).Msg("parsed rule")
	return r, nil
}

func matchBody(body string) (*arecur.Rule, error) {
	switch {
	case reOneShot.MatchString(body):
		return matchOneShot(body)
	case reYearlyFixed.MatchString(body):
		return matchYearlyFixed(body)
	case reStepWithinDay.MatchString(body):
		return matchStepWithinDay(body)
	case reHourlyIntervalBetween.MatchString(body):
		return matchHourlyIntervalBetween(body)
	case reHourlyBetween.MatchString(body):
		return matchHourlyBetween(body)
	case reEveryNUnit.MatchString(body):
		return matchEveryNUnit(body)
	case reEveryWeekdayAt.MatchString(body):
		return matchEveryWeekdayAt(body)
	case reEveryDayAt.MatchString(body):
		return matchEveryDayAt(body)
	case reYearlyNth.MatchString(body):
		return matchYearlyNth(body)
	case reMonthlySpec.MatchString(body):
		return matchMonthlySpec(body)
	case reEveryWeekdayListAt.MatchString(body):
		return matchEveryWeekdayListAt(body)
	default:
		return nil, aerr.NewParseError(body, "unsupported rule: %q", body)
	}
}

func matchOneShot(body string) (*arecur.Rule, error) {
	m := reOneShot.FindStringSubmatch(body)
	d, err := parseDate(m[1])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	t, err := parseTime(m[2])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	at := time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, time.UTC)
	return &arecur.Rule{IsOneShot: true, At: at}, nil
}

func matchYearlyFixed(body string) (*arecur.Rule, error) {
	m := reYearlyFixed.FindStringSubmatch(body)
	mo, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	t, err := parseTime(m[3])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "yearly", Interval: 1, ByMonth: []int{mo}, ByMonthDay: []int{day}, Times: []arecur.TimeOfDay{t}}, nil
}

func matchStepWithinDay(body string) (*arecur.Rule, error) {
	m := reStepWithinDay.FindStringSubmatch(body)
	n, _ := strconv.Atoi(m[2])
	start, err := parseTime(m[4])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	end, err := parseTime(m[5])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	step := &arecur.Step{}
	if strings.EqualFold(m[3], "hours") {
		step.Hours = n
	} else {
		step.Minutes = n
	}
	r := &arecur.Rule{Freq: "daily", Interval: 1, BetweenTime: &arecur.BetweenTime{Start: start, End: end}, Step: step}
	if strings.EqualFold(m[1], "weekday") {
		r.ByWeekday = []int{0, 1, 2, 3, 4}
	}
	return r, nil
}

func matchHourlyIntervalBetween(body string) (*arecur.Rule, error) {
	m := reHourlyIntervalBetween.FindStringSubmatch(body)
	n, _ := strconv.Atoi(m[1])
	start, err := parseTime(m[2])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	end, err := parseTime(m[3])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "hourly", Interval: n, BetweenTime: &arecur.BetweenTime{Start: start, End: end}}, nil
}

func matchHourlyBetween(body string) (*arecur.Rule, error) {
	m := reHourlyBetween.FindStringSubmatch(body)
	start, err := parseTime(m[1])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	end, err := parseTime(m[2])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "hourly", Interval: 1, BetweenTime: &arecur.BetweenTime{Start: start, End: end}}, nil
}

func matchEveryNUnit(body string) (*arecur.Rule, error) {
	m := reEveryNUnit.FindStringSubmatch(body)
	n, _ := strconv.Atoi(m[1])
	freq := map[string]string{"minutes": "minutely", "hours": "hourly", "days": "daily", "weeks": "weekly"}[strings.ToLower(m[2])]
	r := &arecur.Rule{Freq: freq, Interval: n}
	if m[3] != "" {
		wds, ok := parseWeekdayList(m[3])
		if !ok {
			return nil, aerr.NewParseError(body, "unrecognized weekday list: %q", m[3])
		}
		r.ByWeekday = wds
	}
	if m[4] != "" {
		times, err := parseTimeList(m[4])
		if err != nil {
			return nil, aerr.NewParseError(body, "%v", err)
		}
		r.Times = times
	}
	return r, nil
}

func matchEveryWeekdayAt(body string) (*arecur.Rule, error) {
	m := reEveryWeekdayAt.FindStringSubmatch(body)
	times, err := parseTimeList(m[1])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "weekly", Interval: 1, ByWeekday: []int{0, 1, 2, 3, 4}, Times: times}, nil
}

func matchEveryDayAt(body string) (*arecur.Rule, error) {
	m := reEveryDayAt.FindStringSubmatch(body)
	times, err := parseTimeList(m[1])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "daily", Interval: 1, Times: times}, nil
}

func matchYearlyNth(body string) (*arecur.Rule, error) {
	m := reYearlyNth.FindStringSubmatch(body)
	ord, ok := ordinalMap[strings.ToLower(m[1])]
	if !ok {
		return nil, aerr.NewParseError(body, "unrecognized ordinal: %q", m[1])
	}
	wd, ok := weekdayMap[strings.ToLower(m[2])]
	if !ok {
		return nil, aerr.NewParseError(body, "unrecognized weekday: %q", m[2])
	}
	mo, ok := monthMap[strings.ToLower(m[3])]
	if !ok {
		return nil, aerr.NewParseError(body, "unrecognized month: %q", m[3])
	}
	t, err := parseTime(m[4])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "yearly", Interval: 1, ByMonth: []int{mo}, ByWeekday: []int{wd}, BySetPos: []int{ord}, Times: []arecur.TimeOfDay{t}}, nil
}

func matchMonthlySpec(body string) (*arecur.Rule, error) {
	m := reMonthlySpec.FindStringSubmatch(body)
	t, err := parseTime(m[2])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	r := &arecur.Rule{Freq: "monthly", Interval: 1, Times: []arecur.TimeOfDay{t}}

	spec := strings.TrimSpace(m[1])
	switch {
	case strings.EqualFold(spec, "last day"):
		r.ByMonthDay = []int{-1}
	default:
		if ord, wd, ok := parseOrdinalWeekday(spec); ok {
			r.ByWeekday = []int{wd}
			r.BySetPos = []int{ord}
		} else if days, ok := parseDayNumberList(spec); ok {
			r.ByMonthDay = days
		} else {
			return nil, aerr.NewParseError(body, "unrecognized monthly spec: %q", spec)
		}
	}
	return r, nil
}

func matchEveryWeekdayListAt(body string) (*arecur.Rule, error) {
	m := reEveryWeekdayListAt.FindStringSubmatch(body)
	wds, ok := parseWeekdayList(m[1])
	if !ok {
		return nil, aerr.NewParseError(body, "unrecognized rule: %q", body)
	}
	times, err := parseTimeList(m[2])
	if err != nil {
		return nil, aerr.NewParseError(body, "%v", err)
	}
	return &arecur.Rule{Freq: "weekly", Interval: 1, ByWeekday: wds, Times: times}, nil
}
