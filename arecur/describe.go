package arecur

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Describe renders r back into human-readable fragments, one per clause the
// rule carries. It is diagnostic, not a grammar round-trip: the EN/FR
// parsers do not read this output back.
func (r *Rule) Describe() []string {
	if r.IsOneShot {
		return []string{fmt.Sprintf("Once at %s", r.At.Format("2006-01-02 15:04"))}
	}

	var parts []string

	interval := r.Interval
	if interval <= 0 {
		interval = 1
	}
	if interval == 1 {
		parts = append(parts, fmt.Sprintf("Every %s", r.Freq))
	} else {
		parts = append(parts, fmt.Sprintf("Every %d %ss", interval, r.Freq))
	}

	if len(r.ByWeekday) > 0 {
		sorted := append([]int(nil), r.ByWeekday...)
		sort.Ints(sorted)
		names := make([]string, 0, len(sorted))
		for _, d := range sorted {
			names = append(names, weekdayNames[((d%7)+7)%7])
		}
		parts = append(parts, "On days: "+strings.Join(names, ", "))
	}

	if len(r.BySetPos) > 0 {
		positions := make([]string, 0, len(r.BySetPos))
		for _, p := range r.BySetPos {
			positions = append(positions, humanize.Ordinal(p))
		}
		parts = append(parts, "Position: "+strings.Join(positions, ", "))
	}

	if len(r.Times) > 0 {
		times := make([]string, 0, len(r.Times))
		for _, t := range r.Times {
			times = append(times, t.String())
		}
		parts = append(parts, "At "+strings.Join(times, ", "))
	}

	if r.BetweenTime != nil {
		parts = append(parts, fmt.Sprintf("Between %s and %s", r.BetweenTime.Start, r.BetweenTime.End))
	}

	if r.Step != nil {
		parts = append(parts, fmt.Sprintf("Stepping every %s", r.Step.Duration()))
	}

	if r.WindowDate != nil {
		parts = append(parts, describeWindow(r.WindowDate))
	}

	if r.WeekendShift != WeekendShiftNone {
		parts = append(parts, "Shift off weekend: "+string(r.WeekendShift))
	}

	if r.Except != nil {
		if ex := describeExcept(r.Except); ex != "" {
			parts = append(parts, ex)
		}
	}

	return parts
}

func describeWindow(w *WindowDate) string {
	var bits []string
	if w.Start != nil {
		bits = append(bits, "from "+w.Start.Format("2006-01-02"))
	}
	if w.End != nil {
		bits = append(bits, "to "+w.End.Format("2006-01-02"))
	}
	if w.Until != nil {
		bits = append(bits, "until "+w.Until.Format("2006-01-02"))
	}
	return "Window: " + strings.Join(bits, " ")
}

func describeExcept(ex *Except) string {
	var bits []string
	if len(ex.Weekdays) > 0 {
		names := make([]string, 0, len(ex.Weekdays))
		for _, wd := range ex.Weekdays {
			names = append(names, wd.String())
		}
		bits = append(bits, strings.Join(names, ", "))
	}
	for _, d := range ex.Dates {
		bits = append(bits, d.Format("2006-01-02"))
	}
	if ex.Holidays.Enabled {
		bits = append(bits, "holidays")
	}
	if len(bits) == 0 {
		return ""
	}
	return "Except: " + strings.Join(bits, ", ")
}

// DescribeRelative pairs an exact timestamp with a humanized relative
// fragment ("in 3 days"), e.g. for surfacing a ValidationReport's first
// occurrence to a user.
func DescribeRelative(at, now time.Time) string {
	return fmt.Sprintf("%s (%s)", at.Format("2006-01-02 15:04"), humanize.RelTime(now, at, "from now", "ago"))
}

// Describe concatenates each Rule's description, tagged by its stable ID.
func (s *Schedule) Describe() string {
	lines := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		lines = append(lines, fmt.Sprintf("[%s] %s", r.ID.String(), strings.Join(r.Describe(), "; ")))
	}
	return strings.Join(lines, "\n")
}
