package aschedule

import (
	"time"

	"github.com/jpfluger/schedtext/arecur"
	"github.com/jpfluger/schedtext/atime"
)

// windowBounds resolves a WindowDate into concrete start/end instants in
// loc. End and Until both cap the window; the earlier of the two wins.
func windowBounds(w *arecur.WindowDate, loc *time.Location) (*time.Time, *time.Time) {
	if w == nil {
		return nil, nil
	}

	var start *time.Time
	if w.Start != nil {
		t := time.Date(w.Start.Year(), w.Start.Month(), w.Start.Day(), 0, 0, 0, 0, loc)
		start = &t
	}

	var end *time.Time
	consider := func(d *time.Time) {
		if d == nil {
			return
		}
		t := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc)
		if end == nil || t.Before(*end) {
			end = &t
		}
	}
	consider(w.End)
	consider(w.Until)

	return start, end
}

// windowContains reports whether t falls within w (a nil w contains
// everything).
func windowContains(w *arecur.WindowDate, t time.Time) bool {
	start, end := windowBounds(w, t.Location())
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

// applyWeekendShift nudges t forward, a day at a time, until it no longer
// falls on a weekend. next_monday and next_business_day land on the same
// instant for a pure weekend shift with no holiday awareness layered in.
func applyWeekendShift(mode arecur.WeekendShift, t time.Time) time.Time {
	switch mode {
	case arecur.WeekendShiftNextMonday, arecur.WeekendShiftNextBusiness:
		for atime.IsWeekendByTime(t) {
			t = t.AddDate(0, 0, 1)
		}
		return t
	default:
		return t
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
