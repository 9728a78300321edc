package atime

import (
	"time"
)

// GetLocation returns the time.Location for a given timezone ID.
func GetLocation(timeZoneID string) (*time.Location, error) {
	return time.LoadLocation(timeZoneID)
}
