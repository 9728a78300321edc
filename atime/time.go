package atime

import (
	"time"
)

// IsWeekendByTime returns a true if the date falls on a Saturday or Sunday.
func IsWeekendByTime(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
