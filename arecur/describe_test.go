package arecur

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestRule_Describe_OneShot(t *testing.T) {
	r := &Rule{IsOneShot: true, At: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
	desc := r.Describe()
	assert.Len(t, desc, 1)
	assert.Contains(t, desc[0], "2026-04-01 09:00")
}

func TestRule_Describe_Recurring(t *testing.T) {
	r := &Rule{
		Freq:        "weekly",
		Interval:    2,
		ByWeekday:   []int{0, 3},
		Times:       []TimeOfDay{{Hour: 9, Minute: 0}},
		Except:      &Except{Holidays: HolidaySpec{Enabled: true}},
		WeekendShift: WeekendShiftNextMonday,
	}
	desc := r.Describe()
	joined := ""
	for _, d := range desc {
		joined += d + "\n"
	}
	assert.Contains(t, joined, "Every 2 weeklys")
	assert.Contains(t, joined, "Monday")
	assert.Contains(t, joined, "Thursday")
	assert.Contains(t, joined, "09:00")
	assert.Contains(t, joined, "next_monday")
	assert.Contains(t, joined, "holidays")
}

func TestSchedule_Describe_IncludesRuleID(t *testing.T) {
	id, _ := uuid.NewV7()
	s := &Schedule{Rules: []*Rule{{ID: id, Freq: "daily", Interval: 1}}}
	out := s.Describe()
	assert.Contains(t, out, id.String())
}
