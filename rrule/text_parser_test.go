package rrule

import (
	"testing"

	"github.com/hijri-rrule/rrule-go/hijri"
)

func TestParseTextBasic(t *testing.T) {
	text := "DTSTART;CALENDAR=HIJRI-UM-AL-QURA:14460901\nRRULE:FREQ=YEARLY;BYMONTH=9;BYMONTHDAY=1;COUNT=3"
	p, err := ParseText(text)
	if err != nil {
		t.Fatal(err)
	}
	if p.Freq != Yearly {
		t.Errorf("Freq = %v, want Yearly", p.Freq)
	}
	if p.Count == nil || *p.Count != 3 {
		t.Errorf("Count = %v, want 3", p.Count)
	}
	if len(p.ByMonth) != 1 || p.ByMonth[0] != 9 {
		t.Errorf("ByMonth = %v, want [9]", p.ByMonth)
	}
	if !p.CalendarSet || p.Calendar != hijri.UmmAlQura {
		t.Errorf("Calendar = %v (set=%v), want UmmAlQura", p.Calendar, p.CalendarSet)
	}
}

func TestParseTextCalendarAliases(t *testing.T) {
	cases := []string{"umm-al-qura", "umalqura", "HIJRI-TABULAR", "tbla"}
	for _, alias := range cases {
		text := "DTSTART;CALENDAR=" + alias + ":14460101\nRRULE:FREQ=DAILY;COUNT=1"
		if _, err := ParseText(text); err != nil {
			t.Errorf("ParseText with CALENDAR=%s: %v", alias, err)
		}
	}
}

func TestParseTextUnknownCalendar(t *testing.T) {
	text := "DTSTART;CALENDAR=GREGORIAN:14460101\nRRULE:FREQ=DAILY;COUNT=1"
	if _, err := ParseText(text); err == nil {
		t.Error("expected error for unknown calendar")
	}
}

func TestParseTextByDayTokens(t *testing.T) {
	text := "DTSTART:14460101\nRRULE:FREQ=MONTHLY;COUNT=1;BYDAY=1FR,-1MO"
	p, err := ParseText(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.ByWeekday) != 2 {
		t.Fatalf("ByWeekday len = %d, want 2", len(p.ByWeekday))
	}
	if p.ByWeekday[0].Day != hijri.Friday || p.ByWeekday[0].N != 1 {
		t.Errorf("first token = %+v, want {Friday 1}", p.ByWeekday[0])
	}
	if p.ByWeekday[1].Day != hijri.Monday || p.ByWeekday[1].N != -1 {
		t.Errorf("second token = %+v, want {Monday -1}", p.ByWeekday[1])
	}
}

func TestParseTextMalformedByDay(t *testing.T) {
	text := "RRULE:FREQ=MONTHLY;BYDAY=XX9"
	if _, err := ParseText(text); err == nil {
		t.Error("expected error for malformed BYDAY token")
	}
}

func TestParseTextMissingFreqIsFreqRequired(t *testing.T) {
	_, err := ParseText("RRULE:FOO=BAR")
	if err == nil {
		t.Fatal("expected error")
	}
	ii, ok := err.(*InvalidInputError)
	if !ok || ii.Field != "FREQ" {
		t.Errorf("error = %v, want InvalidInputError{Field: FREQ}", err)
	}
}

func TestParseTextWithTimeAndZ(t *testing.T) {
	text := "DTSTART:14460101T123045Z\nRRULE:FREQ=DAILY;COUNT=1"
	p, err := ParseText(text)
	if err != nil {
		t.Fatal(err)
	}
	d, err := p.DTStart.resolve(hijri.DefaultProvider())
	if err != nil {
		t.Fatal(err)
	}
	if d.Hour != 12 || d.Minute != 30 || d.Second != 45 {
		t.Errorf("time = %02d:%02d:%02d, want 12:30:45", d.Hour, d.Minute, d.Second)
	}
}
