package en

import (
	"regexp"
	"strings"
	"time"

	"github.com/jpfluger/schedtext/arecur"
)

var (
	reWeekendShift = regexp.MustCompile(`(?i)\s*if weekend then next (monday|business day)\s*$`)
	reBetweenDates = regexp.MustCompile(`(?i)\s*between (\d{4}-\d{2}-\d{2}) and (\d{4}-\d{2}-\d{2})\s*$`)
	reUntil        = regexp.MustCompile(`(?i)\s*until (\d{4}-\d{2}-\d{2})\s*$`)
	reExceptMidAt  = regexp.MustCompile(`(?i)\s*except ([^,]*?) at\s*$`)
	reExceptTail   = regexp.MustCompile(`(?i)\s*except (.+)$`)
)

// suffixes accumulates the clauses that can trail a rule body in any order:
// weekend shift, a date window, and exceptions.
type suffixes struct {
	weekendShift arecur.WeekendShift
	windowStart  *time.Time
	windowEnd    *time.Time
	windowUntil  *time.Time
	except       *arecur.Except
}

// stripSuffixes repeatedly peels trailing clauses off text until none
// remain, returning the bare rule body and whatever it collected.
func stripSuffixes(text string) (string, suffixes, error) {
	var sfx suffixes

	for {
		if m := reWeekendShift.FindStringSubmatch(text); m != nil {
			if strings.EqualFold(m[1], "monday") {
				sfx.weekendShift = arecur.WeekendShiftNextMonday
			} else {
				sfx.weekendShift = arecur.WeekendShiftNextBusiness
			}
			text = reWeekendShift.ReplaceAllString(text, "")
			continue
		}
		if m := reBetweenDates.FindStringSubmatch(text); m != nil {
			start, err := parseDate(m[1])
			if err != nil {
				return "", sfx, err
			}
			end, err := parseDate(m[2])
			if err != nil {
				return "", sfx, err
			}
			sfx.windowStart, sfx.windowEnd = &start, &end
			text = reBetweenDates.ReplaceAllString(text, "")
			continue
		}
		if m := reUntil.FindStringSubmatch(text); m != nil {
			until, err := parseDate(m[1])
			if err != nil {
				return "", sfx, err
			}
			sfx.windowUntil = &until
			text = reUntil.ReplaceAllString(text, "")
			continue
		}
		if m := reExceptMidAt.FindStringSubmatch(text); m != nil {
			applyExcept(&sfx, m[1])
			text = reExceptMidAt.ReplaceAllString(text, " at")
			continue
		}
		if m := reExceptTail.FindStringSubmatch(text); m != nil && !strings.Contains(m[1], " at ") {
			applyExcept(&sfx, m[1])
			text = reExceptTail.ReplaceAllString(text, "")
			continue
		}
		break
	}

	return strings.TrimSpace(text), sfx, nil
}

func applyExcept(sfx *suffixes, clause string) {
	if sfx.except == nil {
		sfx.except = &arecur.Except{}
	}
	for _, part := range strings.Split(strings.TrimSpace(clause), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if isPublicHolidaysLiteral(part) {
			sfx.except.Holidays.Enabled = true
			continue
		}
		if d, err := parseDate(part); err == nil {
			sfx.except.Dates = append(sfx.except.Dates, d)
			continue
		}
		if wds, ok := parseWeekdayList(part); ok {
			for _, wd := range wds {
				sfx.except.Weekdays = append(sfx.except.Weekdays, time.Weekday((wd+1)%7))
			}
		}
	}
}

// isPublicHolidaysLiteral matches the spec-documented "public holidays"
// exception literal, with "on " optionally prefixed, and the bare
// "holidays" shorthand.
func isPublicHolidaysLiteral(part string) bool {
	part = strings.ToLower(strings.TrimSpace(part))
	part = strings.TrimPrefix(part, "on ")
	return part == "holidays" || part == "public holidays"
}
