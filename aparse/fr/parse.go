package fr

import (
	"github.com/jpfluger/schedtext/aparse/en"
	"github.com/jpfluger/schedtext/arecur"
)

// ParseSchedule transliterates French schedule text into the English
// grammar and delegates to en.ParseSchedule.
func ParseSchedule(text string, defaultTZ string) (*arecur.Schedule, error) {
	return en.ParseSchedule(ToEN(text), defaultTZ)
}

// ParseRule transliterates a single French rule clause and delegates to
// en.ParseRule.
func ParseRule(text string) (*arecur.Rule, error) {
	return en.ParseRule(ToEN(text))
}
