package alang

import (
	"golang.org/x/text/language"

	"github.com/jpfluger/schedtext/aerr"
	"github.com/jpfluger/schedtext/aparse/en"
	"github.com/jpfluger/schedtext/aparse/fr"
	"github.com/jpfluger/schedtext/arecur"
)

// ParseSchedule detects the dominant language of text and parses it with
// that grammar, falling back to the other grammar if the primary attempt
// fails with a ParseError. A rule occasionally reads as grammatical
// vocabulary in both languages; the fallback catches the case where the
// marker count guessed wrong.
func ParseSchedule(text string, defaultTZ string) (*arecur.Schedule, error) {
	if Detect(text) == language.French {
		return parseScheduleWithFallback(text, defaultTZ, fr.ParseSchedule, en.ParseSchedule)
	}
	return parseScheduleWithFallback(text, defaultTZ, en.ParseSchedule, fr.ParseSchedule)
}

// ParseRule detects the dominant language of a single rule clause and
// parses it, with the same language fallback as ParseSchedule.
func ParseRule(text string) (*arecur.Rule, error) {
	if Detect(text) == language.French {
		return parseRuleWithFallback(text, fr.ParseRule, en.ParseRule)
	}
	return parseRuleWithFallback(text, en.ParseRule, fr.ParseRule)
}

func parseScheduleWithFallback(text, tz string, primary, secondary func(string, string) (*arecur.Schedule, error)) (*arecur.Schedule, error) {
	sched, err := primary(text, tz)
	if err == nil {
		return sched, nil
	}
	if _, ok := aerr.AsParseError(err); !ok {
		return nil, err
	}
	return secondary(text, tz)
}

func parseRuleWithFallback(text string, primary, secondary func(string) (*arecur.Rule, error)) (*arecur.Rule, error) {
	r, err := primary(text)
	if err == nil {
		return r, nil
	}
	if _, ok := aerr.AsParseError(err); !ok {
		return nil, err
	}
	return secondary(text)
}
