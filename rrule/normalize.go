package rrule

import (
	"time"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// Normalize runs the §4.4 pipeline, turning a PartialOptions into a
// validated Options. It is a total function on well-formed input: every
// rejection path returns an *InvalidInputError or a *hijri.InvalidDateError
// rather than panicking.
func Normalize(p PartialOptions) (Options, error) {
	var o Options
	o.Freq = p.Freq

	// Step 4 (defaults) is applied before step 1 resolves dates, since
	// date resolution needs the calendar.
	if p.CalendarSet {
		o.Calendar = p.Calendar
	} else {
		o.Calendar = hijri.CurrentConfig().Default
	}
	cal := hijri.ProviderFor(o.Calendar)

	if p.Interval != nil {
		if *p.Interval < 1 {
			return Options{}, newInvalidInput("INTERVAL", "interval %d must be >= 1", *p.Interval)
		}
		o.Interval = *p.Interval
	} else {
		o.Interval = 1
	}

	if p.WKST != nil {
		o.WKST = *p.WKST
	} else {
		o.WKST = hijri.Sunday
	}

	if p.SkipSet {
		o.Skip = p.Skip
	} else {
		o.Skip = SkipOmit
	}

	// Step 1: dates.
	if p.DTStart != nil {
		d, err := p.DTStart.resolve(cal)
		if err != nil {
			return Options{}, err
		}
		o.DTStart = d
	} else {
		now := time.Now()
		d, err := hijri.FromGregorian(cal, now.Year(), int(now.Month()), now.Day(), now.Hour(), now.Minute(), now.Second())
		if err != nil {
			return Options{}, err
		}
		o.DTStart = d
	}
	if p.Until != nil {
		u, err := p.Until.resolve(cal)
		if err != nil {
			return Options{}, err
		}
		o.Until = &u
	}

	if p.Count != nil {
		if *p.Count < 0 {
			return Options{}, newInvalidInput("COUNT", "count %d must be >= 0", *p.Count)
		}
		o.HasCount = true
		o.Count = *p.Count
	}

	o.TZID = p.TZID

	// Step 5 range validation + step 2 (by-month-day split).
	for _, m := range p.ByMonth {
		if m < 1 || m > 12 {
			return Options{}, newInvalidInput("BYMONTH", "%d out of range [1,12]", m)
		}
	}
	o.ByMonth = append([]int(nil), p.ByMonth...)

	for _, d := range p.ByMonthDay {
		if d == 0 || d < -30 || d > 30 {
			return Options{}, newInvalidInput("BYMONTHDAY", "%d out of range [-30,-1] union [1,30]", d)
		}
		if d > 0 {
			o.ByMonthDay = append(o.ByMonthDay, d)
		} else {
			o.ByNMonthDay = append(o.ByNMonthDay, d)
		}
	}

	for _, d := range p.ByYearDay {
		if d == 0 || d < -355 || d > 355 {
			return Options{}, newInvalidInput("BYYEARDAY", "%d out of range [-355,-1] union [1,355]", d)
		}
	}
	o.ByYearDay = append([]int(nil), p.ByYearDay...)

	o.ByWeekNo = append([]int(nil), p.ByWeekNo...)

	for _, pos := range p.BySetPos {
		if pos == 0 || pos < -366 || pos > 366 {
			return Options{}, newInvalidInput("BYSETPOS", "%d out of range [-366,-1] union [1,366]", pos)
		}
	}
	o.BySetPos = append([]int(nil), p.BySetPos...)

	// Step 3: weekday split by presence of n.
	for _, w := range p.ByWeekday {
		if w.Day < hijri.Saturday || w.Day > hijri.Friday {
			return Options{}, newInvalidInput("BYDAY", "unknown weekday %v", w.Day)
		}
		if w.N == 0 {
			o.ByWeekday = append(o.ByWeekday, w.Day)
		} else {
			o.ByNWeekday = append(o.ByNWeekday, w)
		}
	}

	for _, h := range p.ByHour {
		if h < 0 || h > 23 {
			return Options{}, newInvalidInput("BYHOUR", "%d out of range [0,23]", h)
		}
	}
	o.ByHour = append([]int(nil), p.ByHour...)

	for _, m := range p.ByMinute {
		if m < 0 || m > 59 {
			return Options{}, newInvalidInput("BYMINUTE", "%d out of range [0,59]", m)
		}
	}
	o.ByMinute = append([]int(nil), p.ByMinute...)

	for _, s := range p.BySecond {
		if s < 0 || s > 59 {
			return Options{}, newInvalidInput("BYSECOND", "%d out of range [0,59]", s)
		}
	}
	o.BySecond = append([]int(nil), p.BySecond...)

	return o, nil
}
