// Package fr transliterates French recurrence rule text into the English
// grammar aparse/en understands, rather than parsing French directly. This
// mirrors the teacher stack's preference for reusing an existing engine
// over duplicating one: the English grammar stays the single source of
// truth, and this package is a text-level adapter in front of it.
package fr

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reTrailingTZ = regexp.MustCompile(`(?i)\(([A-Za-z]+/[A-Za-z_]+)\)\s*$`)
	reFrTime     = regexp.MustCompile(`\b(\d{1,2})h(\d{2})?\b`)
	reEntreDates = regexp.MustCompile(`(?i)entre le (\d{4}-\d{2}-\d{2}) et le (\d{4}-\d{2}-\d{2})`)
	reEntreTimes = regexp.MustCompile(`(?i)entre (\d{1,2}:\d{2}) et (\d{1,2}:\d{2})`)
	reJusquAu    = regexp.MustCompile(`(?i)jusqu'au (\d{4}-\d{2}-\d{2})`)
	reWeekendMon = regexp.MustCompile(`(?i)si week-end alors lundi suivant`)
	reWeekendBiz = regexp.MustCompile(`(?i)si week-end alors prochain jour ouvre`)
	reToutesLes  = regexp.MustCompile(`(?i)\b(tous les|toutes les)\b`)
	reJourOuvre  = regexp.MustCompile(`(?i)\bjours? ouvres?\b`)
	reEtComma    = regexp.MustCompile(`(?i),\s*et\s+`)
	reEt         = regexp.MustCompile(`(?i)\bet\b`)
	reSauf       = regexp.MustCompile(`(?i)\bsauf\b`)
	reA          = regexp.MustCompile(`\ba\b`)
	rePremier    = regexp.MustCompile(`(?i)\b1er\b`)
	reDernierJr  = regexp.MustCompile(`(?i)dernier jour`)
	reLeWeekday  = regexp.MustCompile(`(?i)\ble (lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)\b`)
	reLeDateAt   = regexp.MustCompile(`(?i)\ble (\d{4}-\d{2}-\d{2}) a\b`)
	reAtHHMM     = regexp.MustCompile(`(?i)\ba\s+(\d{1,2}:\d{2})\b`)
	reMonthLe    = regexp.MustCompile(`(?i)every month le\b`)
	reYearLe     = regexp.MustCompile(`(?i)every year le\b`)

	pluralNouns = []struct{ fr, en string }{
		{"jours", "days"}, {"jour", "day"},
		{"semaines", "weeks"}, {"semaine", "week"},
		{"heures", "hours"}, {"heure", "hour"},
		{"minutes", "minutes"}, {"minute", "minute"},
		{"mois", "month"},
		{"ans", "years"}, {"an", "year"},
	}

	ordinalWords = []struct{ fr, en string }{
		{"premiere", "first"}, {"premier", "first"},
		{"deuxieme", "second"},
		{"troisieme", "third"},
		{"quatrieme", "fourth"},
		{"cinquieme", "fifth"},
		{"derniere", "last"}, {"dernier", "last"},
	}

	weekdayWords = []struct{ fr, en string }{
		{"lundi", "monday"}, {"mardi", "tuesday"}, {"mercredi", "wednesday"},
		{"jeudi", "thursday"}, {"vendredi", "friday"}, {"samedi", "saturday"}, {"dimanche", "sunday"},
	}

	monthWords = []struct{ fr, en string }{
		{"janvier", "january"}, {"fevrier", "february"}, {"mars", "march"},
		{"avril", "april"}, {"mai", "may"}, {"juin", "june"},
		{"juillet", "july"}, {"aout", "august"}, {"septembre", "september"},
		{"octobre", "october"}, {"novembre", "november"}, {"decembre", "december"},
	}
)

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ToEN transliterates a single French rule or schedule clause into the
// equivalent English grammar text. It follows the shape of the clause
// rather than its structure: vocabulary and markers are swapped word by
// word, in a fixed order, so the result reads as an EN grammar string the
// aparse/en patterns already understand.
func ToEN(frText string) string {
	tzSuffix := ""
	if m := reTrailingTZ.FindStringSubmatch(frText); m != nil {
		tzSuffix = " in " + m[1]
		frText = reTrailingTZ.ReplaceAllString(frText, "")
	}

	s := strings.ToLower(strings.TrimSpace(frText))
	s = stripDiacritics(s)

	s = reFrTime.ReplaceAllStringFunc(s, func(m string) string {
		sub := reFrTime.FindStringSubmatch(m)
		h := sub[1]
		if len(h) == 1 {
			h = "0" + h
		}
		mi := sub[2]
		if mi == "" {
			mi = "00"
		}
		return h + ":" + mi
	})

	s = reEtComma.ReplaceAllString(s, ", and ")
	s = reEntreDates.ReplaceAllString(s, "between $1 and $2")
	s = reEntreTimes.ReplaceAllString(s, "between $1 and $2")
	s = reJusquAu.ReplaceAllString(s, "until $1")
	s = reWeekendMon.ReplaceAllString(s, "if weekend then next monday")
	s = reWeekendBiz.ReplaceAllString(s, "if weekend then next business day")

	s = reToutesLes.ReplaceAllString(s, "every")
	s = reJourOuvre.ReplaceAllString(s, "weekday")

	for _, pn := range pluralNouns {
		s = regexp.MustCompile(`\b`+pn.fr+`\b`).ReplaceAllString(s, pn.en)
	}
	s = regexp.MustCompile(`\bevery days\b`).ReplaceAllString(s, "every day")
	s = regexp.MustCompile(`\bevery weeks\b`).ReplaceAllString(s, "every week")

	s = rePremier.ReplaceAllString(s, "1st")
	s = reDernierJr.ReplaceAllString(s, "last day")

	for _, ow := range ordinalWords {
		s = regexp.MustCompile(`\b`+ow.fr+`\b`).ReplaceAllString(s, ow.en)
	}
	for _, ww := range weekdayWords {
		s = regexp.MustCompile(`\b`+ww.fr+`s?\b`).ReplaceAllString(s, ww.en)
	}
	for _, mw := range monthWords {
		s = regexp.MustCompile(`\bd['e]\s*`+mw.fr+`\b`).ReplaceAllString(s, "of "+mw.en)
		s = regexp.MustCompile(`\b`+mw.fr+`\b`).ReplaceAllString(s, mw.en)
	}

	s = reLeDateAt.ReplaceAllString(s, "$1 at")
	s = reAtHHMM.ReplaceAllString(s, "at $1")
	s = reLeWeekday.ReplaceAllString(s, "$1")
	s = reMonthLe.ReplaceAllString(s, "every month on the")
	s = reYearLe.ReplaceAllString(s, "every year on")

	s = reSauf.ReplaceAllString(s, "except")
	s = reEt.ReplaceAllString(s, "and")
	s = reA.ReplaceAllString(s, "at")

	return strings.Join(strings.Fields(s), " ") + tzSuffix
}
