package arecur

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRule_Validate_OneShotSkipsRecurringTags(t *testing.T) {
	r := &Rule{IsOneShot: true}
	assert.Empty(t, r.Validate())
}

func TestRule_Validate_MissingFreq(t *testing.T) {
	r := &Rule{Interval: 1}
	ves := r.Validate()
	assert.NotEmpty(t, ves)
}

func TestRule_Validate_OutOfRangeByMonth(t *testing.T) {
	r := &Rule{Freq: "monthly", Interval: 1, ByMonth: []int{13}}
	ves := r.Validate()
	assert.NotEmpty(t, ves)
	found := false
	for _, ve := range ves {
		if strings.Contains(ve.Field, "ByMonth") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRule_Validate_ValidRule(t *testing.T) {
	r := &Rule{Freq: "weekly", Interval: 1, ByWeekday: []int{0, 2}}
	assert.Empty(t, r.Validate())
}
