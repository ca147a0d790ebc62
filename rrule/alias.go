package rrule

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hijri-rrule/rrule-go/hijri"
)

var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldToken normalizes a CALENDAR/BYDAY-style token for alias lookup:
// trims whitespace, lowercases, strips diacritics, and removes the
// hyphen/underscore/space punctuation that separates alias variants
// (HIJRI-UM-AL-QURA, hijri_um_al_qura, "Hijri Um Al Qura" all fold to the
// same key). NFD decompose, drop combining marks, NFC recompose, then
// strip the token's own punctuation.
func foldToken(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	folded, _, err := transform.String(diacriticFold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if r == '-' || r == '_' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveCalendarAlias resolves a CALENDAR parameter value (any casing,
// punctuation, or diacritic variant of a known calendar name) to a
// hijri.CalendarKind.
func ResolveCalendarAlias(name string) (hijri.CalendarKind, bool) {
	return hijri.CalendarKindFromFoldedName(foldToken(name))
}
