package atime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsWeekendByTime(t *testing.T) {
	assert.True(t, IsWeekendByTime(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)))  // Saturday
	assert.True(t, IsWeekendByTime(time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)))  // Sunday
	assert.False(t, IsWeekendByTime(time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC))) // Monday
}
