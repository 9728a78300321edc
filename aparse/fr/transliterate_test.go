package fr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToEN_EveryDayAt(t *testing.T) {
	assert.Equal(t, "every day at 09:00", ToEN("tous les jours à 09:00"))
}

func TestToEN_EveryWeekdayAt(t *testing.T) {
	assert.Equal(t, "every monday at 09:00", ToEN("tous les lundis à 09h00"))
}

func TestToEN_MonthlyOrdinal(t *testing.T) {
	assert.Equal(t, "every month on the 1st at 09:00", ToEN("tous les mois le 1er à 09:00"))
}

func TestToEN_HourlyIntervalBetween(t *testing.T) {
	assert.Equal(t, "every 2 hours between 09:00 and 17:00", ToEN("toutes les 2 heures entre 09:00 et 17:00"))
}

func TestToEN_Until(t *testing.T) {
	assert.Equal(t, "every day at 10:00 until 2026-03-13", ToEN("tous les jours à 10:00 jusqu'au 2026-03-13"))
}

func TestToEN_ExceptDate(t *testing.T) {
	assert.Equal(t, "every day at 09:00 except 2026-04-06", ToEN("tous les jours à 09:00 sauf 2026-04-06"))
}

func TestToEN_WeekendShiftNextMonday(t *testing.T) {
	assert.Equal(t, "every month on the 1st at 09:00 if weekend then next monday",
		ToEN("tous les mois le 1er à 09:00 si week-end alors lundi suivant"))
}

func TestToEN_TrailingTimeZone(t *testing.T) {
	assert.Equal(t, "every day at 09:00 in Europe/Paris", ToEN("tous les jours à 09:00 (Europe/Paris)"))
}
