package aschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpfluger/schedtext/aerr"
	"github.com/jpfluger/schedtext/aparse/en"
)

func TestValidate_InvalidScenario_OnlyFiringExcludedByUntil(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every day at 10:00 until 2026-03-13 except 2026-03-13", "")
	require.NoError(t, err)

	v := NewValidator(nil)
	_, err = v.Validate(sched, now, time.Time{})
	require.Error(t, err)
	_, ok := aerr.AsInvalidRuleError(err)
	require.True(t, ok)
}

func TestValidate_InvalidScenario_SingleDayWindowExcluded(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every day at 18:00 between 2026-03-12 and 2026-03-12 except 2026-03-12", "")
	require.NoError(t, err)

	v := NewValidator(nil)
	_, err = v.Validate(sched, now, time.Time{})
	require.Error(t, err)
	_, ok := aerr.AsInvalidRuleError(err)
	require.True(t, ok)
}

func TestValidate_ValidScheduleReturnsFirstOccurrence(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every sunday at 10am", "")
	require.NoError(t, err)

	v := NewValidator(nil)
	report, err := v.Validate(sched, now, time.Time{})
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, now.Location()), report.FirstOccurs)
	require.NotEmpty(t, report.Description)
}

func TestValidate_HolidayExceptionWithoutProviderIsUnsupported(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every day at 09:00 except holidays", "")
	require.NoError(t, err)

	v := NewValidator(nil)
	_, err = v.Validate(sched, now, time.Time{})
	require.Error(t, err)
	_, ok := aerr.AsUnsupportedFeatureError(err)
	require.True(t, ok)
}
