package rrule

import (
	"testing"

	"github.com/hijri-rrule/rrule-go/hijri"
)

func TestRuleSetCacheInvalidatedOnMutation(t *testing.T) {
	rs := NewRuleSet(hijri.UmmAlQura)
	rs.RDate(hijri.Date{Year: 1446, Month: 1, Day: 1})

	first, err := rs.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 date, got %d", len(first))
	}

	rs.RDate(hijri.Date{Year: 1446, Month: 2, Day: 1})
	second, err := rs.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 2 {
		t.Errorf("expected cache invalidation to reflect new RDATE, got %d dates", len(second))
	}
}

func TestRuleSetAfterBefore(t *testing.T) {
	rs := NewRuleSet(hijri.UmmAlQura)
	rs.RDate(hijri.Date{Year: 1446, Month: 1, Day: 1})
	rs.RDate(hijri.Date{Year: 1446, Month: 3, Day: 1})
	rs.RDate(hijri.Date{Year: 1446, Month: 6, Day: 15})

	after, ok, err := rs.After(hijri.Date{Year: 1446, Month: 2, Day: 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || after.Month != 3 {
		t.Errorf("After(1446-02-01) = %+v, ok=%v; want month 3", after, ok)
	}

	before, ok, err := rs.Before(hijri.Date{Year: 1446, Month: 6, Day: 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || before.Month != 3 {
		t.Errorf("Before(1446-06-01) = %+v, ok=%v; want month 3", before, ok)
	}
}
