package arecur

import "github.com/jpfluger/schedtext/atime/rruleplus"

// Provider resolves whether a given instant falls on a public holiday. It
// is the same shape as rruleplus.ICalendar, so a caller can hand in
// rruleplus.NewCalendar("fr") directly without an adapter.
type Provider = rruleplus.ICalendar

// NewProvider builds a Provider for the given ISO region code ("us", "fr").
func NewProvider(iso string) (Provider, error) {
	return rruleplus.NewCalendar(iso)
}
