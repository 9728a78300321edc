package en

import (
	"regexp"
	"strings"

	"github.com/jpfluger/schedtext/arecur"
)

var (
	reTrailingTZ = regexp.MustCompile(`(?i)\s+in\s+([A-Za-z]+/[A-Za-z_]+)\s*$`)
	reRuleSplit  = regexp.MustCompile(`(?i),\s*and\s+`)
)

// ParseSchedule splits composed schedule text on ", and " into individual
// rule clauses and parses each. A trailing "in <Area/Zone>" overrides
// defaultTZ for the whole schedule.
func ParseSchedule(text string, defaultTZ string) (*arecur.Schedule, error) {
	tz := defaultTZ
	body := text
	if m := reTrailingTZ.FindStringSubmatch(body); m != nil {
		tz = m[1]
		body = reTrailingTZ.ReplaceAllString(body, "")
	}

	clauses := reRuleSplit.Split(strings.TrimSpace(body), -1)
	sched := &arecur.Schedule{TZ: tz}
	for _, clause := range clauses {
		r, err := ParseRule(clause)
		if err != nil {
			return nil, err
		}
		sched.Rules = append(sched.Rules, r)
	}
	return sched, nil
}
