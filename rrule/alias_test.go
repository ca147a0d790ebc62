package rrule

import (
	"testing"

	"github.com/hijri-rrule/rrule-go/hijri"
)

func TestResolveCalendarAlias(t *testing.T) {
	cases := []struct {
		in   string
		want hijri.CalendarKind
	}{
		{"HIJRI-UM-AL-QURA", hijri.UmmAlQura},
		{"  Umm Al Qura  ", hijri.UmmAlQura},
		{"UMALQURA", hijri.UmmAlQura},
		{"hijri-tabular", hijri.Tabular},
		{"Tbla", hijri.Tabular},
	}
	for _, c := range cases {
		got, ok := ResolveCalendarAlias(c.in)
		if !ok {
			t.Errorf("ResolveCalendarAlias(%q): not found", c.in)
			continue
		}
		if got != c.want {
			t.Errorf("ResolveCalendarAlias(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestResolveCalendarAliasUnknown(t *testing.T) {
	if _, ok := ResolveCalendarAlias("gregorian"); ok {
		t.Error("expected not-ok for unknown calendar")
	}
}

func TestFoldTokenStripsDiacriticsAndPunctuation(t *testing.T) {
	if got := foldToken("Umm-Al-Qurá"); got != "ummalqura" {
		t.Errorf("foldToken = %q, want ummalqura", got)
	}
}
