package hijri

import "testing"

func TestNewRejectsInvalidDay(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	if _, err := New(p, 1446, 13, 1, 0, 0, 0); err == nil {
		t.Error("expected error for month 13")
	} else if _, ok := err.(*InvalidDateError); !ok {
		t.Errorf("expected *InvalidDateError, got %T", err)
	}
	if _, err := New(p, 1446, 9, 31, 0, 0, 0); err == nil {
		t.Error("expected error for Ramadan 31 (30-day month)")
	}
}

func TestNewRejectsInvalidTime(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	if _, err := New(p, 1446, 1, 1, 24, 0, 0); err == nil {
		t.Error("expected error for hour 24")
	}
	if _, err := New(p, 1446, 1, 1, 0, 60, 0); err == nil {
		t.Error("expected error for minute 60")
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 1446, Month: 9, Day: 1}
	if got := d.String(); got != "1446-09-01" {
		t.Errorf("String() = %q, want %q", got, "1446-09-01")
	}
	d2 := Date{Year: 1446, Month: 9, Day: 1, Hour: 14, Minute: 30, Second: 5}
	if got := d2.String(); got != "1446-09-01T14:30:05" {
		t.Errorf("String() = %q, want %q", got, "1446-09-01T14:30:05")
	}
}

func TestCompareAndEqual(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	a := Date{Year: 1446, Month: 1, Day: 1}
	b := Date{Year: 1446, Month: 1, Day: 2}

	if lt, err := Before(p, a, b); err != nil || !lt {
		t.Errorf("Before(a,b) = %v, %v; want true, nil", lt, err)
	}
	if gt, err := After(p, b, a); err != nil || !gt {
		t.Errorf("After(b,a) = %v, %v; want true, nil", gt, err)
	}
	if eq, err := Equal(p, a, a); err != nil || !eq {
		t.Errorf("Equal(a,a) = %v, %v; want true, nil", eq, err)
	}
}

func TestCompareIgnoresTimeWhenDaysDiffer(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	a := Date{Year: 1446, Month: 1, Day: 1, Hour: 23, Minute: 59, Second: 59}
	b := Date{Year: 1446, Month: 1, Day: 2, Hour: 0, Minute: 0, Second: 0}
	if lt, err := Before(p, a, b); err != nil || !lt {
		t.Errorf("Before(a,b) = %v, %v; want true, nil", lt, err)
	}
}

func TestEqualIgnoresTimeOfDay(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	a := Date{Year: 1446, Month: 1, Day: 1, Hour: 0, Minute: 0, Second: 0}
	b := Date{Year: 1446, Month: 1, Day: 1, Hour: 23, Minute: 59, Second: 59}
	if eq, err := Equal(p, a, b); err != nil || !eq {
		t.Errorf("Equal(a,b) = %v, %v; want true, nil for dates sharing (year,month,day)", eq, err)
	}
	if c, err := Compare(p, a, b); err != nil || c != 0 {
		t.Errorf("Compare(a,b) = %d, %v; want 0, nil", c, err)
	}
}

// TestWeekdayOfFormatting checks the FR/MO two-letter weekday codes, at the
// Weekday level (the nth-ordinal RRULE string form itself is exercised in
// the rrule package).
func TestWeekdayOfFormatting(t *testing.T) {
	if Friday.String() != "FR" {
		t.Errorf("Friday.String() = %q, want FR", Friday.String())
	}
	if Monday.String() != "MO" {
		t.Errorf("Monday.String() = %q, want MO", Monday.String())
	}
}

// TestDateRoundTrip checks that converting a Hijri date to Gregorian and
// back recovers the original year/month/day.
func TestDateRoundTrip(t *testing.T) {
	p := ProviderFor(UmmAlQura)
	d, err := New(p, 1446, 5, 15, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	gy, gm, gd, _, _, _, err := ToGregorian(p, d)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromGregorian(p, gy, gm, gd, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if back.Year != 1446 || back.Month != 5 || back.Day != 15 {
		t.Errorf("round trip = (%d,%d,%d), want (1446,5,15)", back.Year, back.Month, back.Day)
	}
}
