// Package en parses English recurrence rule text into arecur IR values.
package en

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jpfluger/schedtext/arecur"
)

var (
	timeRe = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*$`)
	dateRe = regexp.MustCompile(`^\s*(\d{4})-(\d{2})-(\d{2})\s*$`)

	weekdayMap = map[string]int{
		"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
		"friday": 4, "saturday": 5, "sunday": 6,
	}

	ordinalMap = map[string]int{
		"first": 1, "1st": 1,
		"second": 2, "2nd": 2,
		"third": 3, "3rd": 3,
		"fourth": 4, "4th": 4,
		"fifth": 5, "5th": 5,
		"last": -1,
	}

	monthMap = map[string]int{
		"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
		"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	}
)

func parseTime(s string) (arecur.TimeOfDay, error) {
	m := timeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return arecur.TimeOfDay{}, fmt.Errorf("bad time: %q", s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return arecur.TimeOfDay{}, fmt.Errorf("time out of range: %q", s)
	}
	return arecur.NewTimeOfDay(hour, minute), nil
}

func parseDate(s string) (time.Time, error) {
	m := dateRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, fmt.Errorf("bad date: %q", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC), nil
}

func parseTimeList(s string) ([]arecur.TimeOfDay, error) {
	parts := strings.Split(s, ",")
	out := make([]arecur.TimeOfDay, 0, len(parts))
	for _, p := range parts {
		t, err := parseTime(p)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseWeekdayList(s string) ([]int, bool) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		if strings.EqualFold(f, "and") {
			continue
		}
		d, ok := weekdayMap[strings.ToLower(f)]
		if !ok {
			return nil, false
		}
		out = append(out, d)
	}
	return out, len(out) > 0
}

func parseOrdinalWeekday(spec string) (int, int, bool) {
	fields := strings.Fields(spec)
	if len(fields) != 2 {
		return 0, 0, false
	}
	ord, ok := ordinalMap[strings.ToLower(fields[0])]
	if !ok {
		return 0, 0, false
	}
	wd, ok := weekdayMap[strings.ToLower(fields[1])]
	if !ok {
		return 0, 0, false
	}
	return ord, wd, true
}

func parseDayNumberList(spec string) ([]int, bool) {
	parts := strings.Split(strings.ReplaceAll(spec, " ", ","), ",")
	var out []int
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = strings.TrimRight(p, "stndrh")
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	return out, len(out) > 0
}
