package schedtext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceNow(t *testing.T) time.Time {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return time.Date(2026, 3, 12, 12, 0, 0, 0, loc)
}

func TestParseSchedule_DefaultsTimeZone(t *testing.T) {
	sched, err := ParseSchedule("every day at 09:00", "Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", sched.TZ)
}

func TestParseRule_Simple(t *testing.T) {
	r, err := ParseRule("every weekday at 09:00")
	require.NoError(t, err)
	assert.Equal(t, "weekly", r.Freq)
}

func TestNextOccurrence_ReferenceScenario(t *testing.T) {
	now := referenceNow(t)
	got, err := NextOccurrence("every sunday at 10:00 in Europe/Paris", now, "", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_UsesDefaultTZWhenTextHasNone(t *testing.T) {
	now := referenceNow(t)
	got, err := NextOccurrence("every sunday at 10:00", now, "Europe/Paris", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ZeroNowDefaultsToTimeNow(t *testing.T) {
	got, err := NextOccurrence("every day at 09:00", time.Time{}, "UTC", nil)
	require.NoError(t, err)
	assert.True(t, got.After(time.Now().Add(-24*time.Hour)))
}

func TestValidate_ReturnsFirstOccurrenceAndDescription(t *testing.T) {
	now := referenceNow(t)
	report, err := Validate("every sunday at 10:00", now, "Europe/Paris", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, now.Location()), report.FirstOccurs)
	assert.NotEmpty(t, report.Description)
}

func TestValidate_InvalidScheduleReturnsError(t *testing.T) {
	now := referenceNow(t)
	_, err := Validate("every day at 10:00 until 2026-03-13 except 2026-03-13", now, "Europe/Paris", nil)
	require.Error(t, err)
}
