package hijri

import "testing"

func TestTabularRoundTrip(t *testing.T) {
	p := ProviderFor(Tabular)
	cases := []struct{ y, m, d int }{
		{1, 1, 1},
		{1, 12, 1},
		{2, 12, 30}, // leap year, position 2 in cycle
		{30, 12, 29},
		{1446, 9, 1},
		{1446, 1, 15},
	}
	for _, c := range cases {
		gy, gm, gd, hh, mm, ss, err := ToGregorian(p, Date{Year: c.y, Month: c.m, Day: c.d})
		if err != nil {
			t.Fatalf("ToGregorian(%d,%d,%d): %v", c.y, c.m, c.d, err)
		}
		_ = hh
		_ = mm
		_ = ss
		back, err := FromGregorian(p, gy, gm, gd, 0, 0, 0)
		if err != nil {
			t.Fatalf("FromGregorian: %v", err)
		}
		if back.Year != c.y || back.Month != c.m || back.Day != c.d {
			t.Errorf("round trip (%d,%d,%d) -> (%d,%d,%d) -> (%d,%d,%d)",
				c.y, c.m, c.d, gy, gm, gd, back.Year, back.Month, back.Day)
		}
	}
}

func TestTabularLeapYears(t *testing.T) {
	p := ProviderFor(Tabular)
	leapPositions := map[int]bool{2: true, 5: true, 7: true, 10: true, 13: true, 16: true, 18: true, 21: true, 24: true, 26: true, 29: true}
	for pos := 1; pos <= 30; pos++ {
		leap, err := p.IsLeap(pos)
		if err != nil {
			t.Fatalf("IsLeap(%d): %v", pos, err)
		}
		if leap != leapPositions[pos] {
			t.Errorf("IsLeap(%d) = %v, want %v", pos, leap, leapPositions[pos])
		}
		length, err := p.YearLength(pos)
		if err != nil {
			t.Fatalf("YearLength(%d): %v", pos, err)
		}
		wantLen := 354
		if leapPositions[pos] {
			wantLen = 355
		}
		if length != wantLen {
			t.Errorf("YearLength(%d) = %d, want %d", pos, length, wantLen)
		}
	}
}

func TestTabularMonthLength(t *testing.T) {
	p := ProviderFor(Tabular)
	for m := 1; m <= 11; m++ {
		l, err := p.MonthLength(1, m)
		if err != nil {
			t.Fatalf("MonthLength(1,%d): %v", m, err)
		}
		want := 29
		if m%2 == 1 {
			want = 30
		}
		if l != want {
			t.Errorf("MonthLength(1,%d) = %d, want %d", m, l, want)
		}
	}
	// Year 2 is leap (position 2), so month 12 has 30 days.
	l, err := p.MonthLength(2, 12)
	if err != nil {
		t.Fatal(err)
	}
	if l != 30 {
		t.Errorf("MonthLength(2,12) = %d, want 30 (leap year)", l)
	}
	// Year 1 is common, month 12 has 29 days.
	l, err = p.MonthLength(1, 12)
	if err != nil {
		t.Fatal(err)
	}
	if l != 29 {
		t.Errorf("MonthLength(1,12) = %d, want 29 (common year)", l)
	}
}

func TestTabularIsValid(t *testing.T) {
	p := ProviderFor(Tabular)
	if p.IsValid(1446, 13, 1) {
		t.Error("month 13 should be invalid")
	}
	if p.IsValid(1446, 9, 31) {
		t.Error("day 31 of a 30-day month should be invalid")
	}
	if !p.IsValid(1446, 9, 30) {
		t.Error("day 30 of Ramadan (odd month, 30 days) should be valid")
	}
}
