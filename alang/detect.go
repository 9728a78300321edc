// Package alang detects which of the supported grammars a piece of
// schedule text is written in, and dispatches parsing to it.
package alang

import (
	"regexp"

	"golang.org/x/text/language"
)

var (
	frMarkers = regexp.MustCompile(`(?i)\b(tous|toutes|chaque|semaine|semaines|jour|jours|mois|annee|annees|ans|heure|heures|minute|minutes|sauf|entre|jusqu'au|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|ouvre)\b`)
	enMarkers = regexp.MustCompile(`(?i)\b(every|day|days|week|weeks|month|year|years|hour|hours|minute|minutes|except|between|until|weekday|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

// Detect returns language.French when French markers strictly outnumber
// English ones in text; any tie, including zero markers on both sides,
// defaults to language.English.
func Detect(text string) language.Tag {
	frHits := len(frMarkers.FindAllString(text, -1))
	enHits := len(enMarkers.FindAllString(text, -1))
	if frHits > enHits {
		return language.French
	}
	return language.English
}
