package rrule

import (
	"time"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// WeekdaySpec is a BYDAY entry: a weekday, plus an optional nonzero ordinal
// selecting the n-th occurrence of that weekday within the enclosing
// period (counted from the end when n<0). N==0 means "every occurrence",
// i.e. a simple (non-nth) weekday spec.
type WeekdaySpec struct {
	Day hijri.Weekday
	N   int
}

// DateValue is a DTSTART/UNTIL input that can be supplied either as a
// Hijri tuple or as a Gregorian civil time; Normalize converts either form
// to Hijri through the options' configured calendar.
type DateValue struct {
	hijriDate hijri.Date
	civil     time.Time
	isCivil   bool
}

// HijriDateValue wraps an already-Hijri date/time as a DateValue.
func HijriDateValue(d hijri.Date) DateValue {
	return DateValue{hijriDate: d}
}

// CivilDateValue wraps a Gregorian civil time as a DateValue; it is
// converted to Hijri at normalization time via the resolved calendar
// provider.
func CivilDateValue(t time.Time) DateValue {
	return DateValue{civil: t, isCivil: true}
}

func (v DateValue) resolve(cal hijri.Provider) (hijri.Date, error) {
	if !v.isCivil {
		return v.hijriDate, nil
	}
	return hijri.FromGregorian(cal, v.civil.Year(), int(v.civil.Month()), v.civil.Day(),
		v.civil.Hour(), v.civil.Minute(), v.civil.Second())
}

// PartialOptions holds the fields as accepted directly from a caller,
// before normalization. Only Freq is required; every other field is
// optional and left at its zero value (nil/empty) when absent, so
// normalization can tell "absent" from "explicitly zero".
type PartialOptions struct {
	Freq     Frequency
	DTStart  *DateValue
	Interval *int
	WKST     *hijri.Weekday
	Count    *int
	Until    *DateValue
	TZID     string

	CalendarSet bool
	Calendar    hijri.CalendarKind

	SkipSet bool
	Skip    SkipPolicy

	BySetPos   []int
	ByMonth    []int
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByWeekday  []WeekdaySpec
	ByHour     []int
	ByMinute   []int
	BySecond   []int
}

// Options is the canonicalized, validated form of PartialOptions that the
// expansion engine consumes.
type Options struct {
	Freq     Frequency
	DTStart  hijri.Date
	Interval int
	WKST     hijri.Weekday
	HasCount bool
	Count    int
	Until    *hijri.Date
	TZID     string
	Calendar hijri.CalendarKind
	Skip     SkipPolicy

	BySetPos    []int
	ByMonth     []int
	ByMonthDay  []int // strictly positive, per §4.4 step 2
	ByNMonthDay []int // strictly negative
	ByYearDay   []int
	ByWeekNo    []int
	ByWeekday   []hijri.Weekday // n absent
	ByNWeekday  []WeekdaySpec   // n present
	ByHour      []int
	ByMinute    []int
	BySecond    []int
}

// Clone returns a deep copy of o; the engine and cache never mutate shared
// slice backing arrays, but callers building variant rules from a common
// base need an independent copy to safely modify.
func (o Options) Clone() Options {
	c := o
	c.BySetPos = append([]int(nil), o.BySetPos...)
	c.ByMonth = append([]int(nil), o.ByMonth...)
	c.ByMonthDay = append([]int(nil), o.ByMonthDay...)
	c.ByNMonthDay = append([]int(nil), o.ByNMonthDay...)
	c.ByYearDay = append([]int(nil), o.ByYearDay...)
	c.ByWeekNo = append([]int(nil), o.ByWeekNo...)
	c.ByWeekday = append([]hijri.Weekday(nil), o.ByWeekday...)
	c.ByNWeekday = append([]WeekdaySpec(nil), o.ByNWeekday...)
	c.ByHour = append([]int(nil), o.ByHour...)
	c.ByMinute = append([]int(nil), o.ByMinute...)
	c.BySecond = append([]int(nil), o.BySecond...)
	if o.Until != nil {
		u := *o.Until
		c.Until = &u
	}
	return c
}

func inIntList(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
