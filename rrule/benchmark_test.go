package rrule

import (
	"testing"

	"github.com/hijri-rrule/rrule-go/hijri"
)

func BenchmarkExpandMonthly(b *testing.B) {
	count := 1000
	dv := HijriDateValue(hijri.Date{Year: 1356, Month: 1, Day: 1})
	r, err := NewRule(PartialOptions{Freq: Monthly, DTStart: &dv, Count: &count})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.cache.invalidate()
		if _, err := r.All(nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpandYearlyWithBySetPos(b *testing.B) {
	count := 500
	dv := HijriDateValue(hijri.Date{Year: 1356, Month: 1, Day: 1})
	r, err := NewRule(PartialOptions{
		Freq:      Yearly,
		DTStart:   &dv,
		Count:     &count,
		ByMonth:   []int{1, 4, 7, 10},
		ByWeekday: []WeekdaySpec{{Day: hijri.Friday}},
		BySetPos:  []int{1, -1},
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.cache.invalidate()
		if _, err := r.All(nil); err != nil {
			b.Fatal(err)
		}
	}
}
