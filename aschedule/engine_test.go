package aschedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jpfluger/schedtext/aparse/en"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func referenceNow(t *testing.T) time.Time {
	loc := mustLoc(t, "Europe/Paris")
	return time.Date(2026, 3, 12, 12, 0, 0, 0, loc)
}

func TestNextOccurrence_ReferenceScenario1_EveryWeekday(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every sunday at 10am", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ReferenceScenario2_StepWithinDay(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every day every 2 hours between 09:00 and 17:00", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 12, 13, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ReferenceScenario3_HourlyFilter(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every 2 hours between 09:00 and 17:00", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 3, 12, 14, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ReferenceScenario4_MonthlyExcept(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every month on the first monday at 09:00 except 2026-04-06", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 5, 4, 9, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ReferenceScenario5_WindowAndWeekendShift(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every month on the 1st at 09:00 between 2026-08-01 and 2026-08-31 if weekend then next monday", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 8, 3, 9, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_ReferenceScenario6_YearlyLastWeekday(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("every year on the last sunday of october at 23:00", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	got, err := engine.NextOccurrence(sched, now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 10, 25, 23, 0, 0, 0, now.Location()), got)
}

func TestNextOccurrence_NoRuleFiresReturnsNoOccurrenceError(t *testing.T) {
	now := referenceNow(t)
	sched, err := en.ParseSchedule("2020-01-01 at 09:00", "")
	require.NoError(t, err)

	engine := NewEngine(nil)
	_, err = engine.NextOccurrence(sched, now)
	require.Error(t, err)
}
