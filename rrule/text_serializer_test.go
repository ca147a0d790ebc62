package rrule

import (
	"strings"
	"testing"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// TestRoundTripTextProperty checks that serializing a rule built from
// partial options and re-parsing it reproduces the same occurrence
// sequence.
func TestRoundTripTextProperty(t *testing.T) {
	count := 4
	dv := HijriDateValue(hijri.Date{Year: 1446, Month: 1, Day: 1})
	r1, err := NewRule(PartialOptions{
		Freq:       Monthly,
		DTStart:    &dv,
		Count:      &count,
		ByMonthDay: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}
	text := r1.String()

	r2, err := NewRuleFromText(text)
	if err != nil {
		t.Fatalf("re-parse %q: %v", text, err)
	}

	got1, err := r1.All(nil)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := r2.All(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !datesEqual(got1, got2) {
		t.Errorf("round trip sequences differ: %+v vs %+v", got1, got2)
	}
}

func TestSerializeOmitsDefaults(t *testing.T) {
	dv := HijriDateValue(hijri.Date{Year: 1446, Month: 9, Day: 1})
	count := 3
	r, err := NewRule(PartialOptions{
		Freq:       Yearly,
		DTStart:    &dv,
		Count:      &count,
		ByMonth:    []int{9},
		ByMonthDay: []int{1},
	})
	if err != nil {
		t.Fatal(err)
	}
	text := r.String()
	if strings.Contains(text, "INTERVAL=") {
		t.Errorf("default INTERVAL should be omitted: %q", text)
	}
	if strings.Contains(text, "WKST=") {
		t.Errorf("default WKST should be omitted: %q", text)
	}
	if strings.Contains(text, "SKIP=") {
		t.Errorf("default SKIP should be omitted: %q", text)
	}
	if !strings.Contains(text, "FREQ=YEARLY") {
		t.Errorf("FREQ must be present: %q", text)
	}
}

func TestWeekdayStringForm(t *testing.T) {
	got := mergeWeekday(nil, []WeekdaySpec{{Day: hijri.Friday, N: 1}})
	if got != "1FR" {
		t.Errorf("Friday.nth(1) form = %q, want 1FR", got)
	}
	got2 := mergeWeekday(nil, []WeekdaySpec{{Day: hijri.Monday, N: -1}})
	if got2 != "-1MO" {
		t.Errorf("Monday.nth(-1) form = %q, want -1MO", got2)
	}
}
