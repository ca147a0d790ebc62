package rrule

import (
	"iter"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// dayKey is the (year,month,day) granularity the engine orders and
// deduplicates candidates on.
type dayKey struct {
	Year, Month, Day int
}

func (a dayKey) less(b dayKey) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

func (k dayKey) toDate(hour, minute, second int) hijri.Date {
	return hijri.Date{Year: k.Year, Month: k.Month, Day: k.Day, Hour: hour, Minute: minute, Second: second}
}

func clampDay(d, lo, hi int) int {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}

// engine implements the §4.5 pull-based candidate generator. It holds the
// calendar and options only; the mutable cursor state lives inside the
// lazy iter.Seq2 stream that Expand builds for a Rule's query operations.
type engine struct {
	cal hijri.Provider
	o   Options
}

func newEngine(o Options) *engine {
	return &engine{cal: hijri.ProviderFor(o.Calendar), o: o}
}

// Expand returns a strictly ascending, duplicate-free stream of Dates
// satisfying o, honoring COUNT/UNTIL and the safety iteration ceiling.
// The error element of the returned sequence is non-nil only when a
// calendar lookup fails while building or advancing a period (for example
// a DTSTART that is not a valid date under the rule's calendar); the
// sequence stops at that point.
func (e *engine) Expand() iter.Seq2[hijri.Date, error] {
	return func(yield func(hijri.Date, error) bool) {
		o := e.o

		cursor := dayKey{o.DTStart.Year, o.DTStart.Month, o.DTStart.Day}
		emitted := 0
		ceiling := 100_000
		if o.HasCount && 100*o.Count > ceiling {
			ceiling = 100 * o.Count
		}

		var untilKey *dayKey
		if o.Until != nil {
			untilKey = &dayKey{o.Until.Year, o.Until.Month, o.Until.Day}
		}
		dtstartKey := cursor
		var lastKey dayKey
		haveLast := false

		for iterCount := 0; iterCount < ceiling; iterCount++ {
			candidates, err := e.candidatesForPeriod(cursor)
			if err != nil {
				yield(hijri.Date{}, err)
				return
			}
			candidates = dedupSortDayKeys(candidates)
			if len(o.BySetPos) > 0 {
				candidates = applySetPos(candidates, o.BySetPos)
			}

			pastUntil := false
			for _, c := range candidates {
				if c.less(dtstartKey) {
					continue
				}
				if haveLast && !lastKey.less(c) {
					// Already emitted by an earlier period (SKIP=FORWARD
					// can push a candidate into the next period's month).
					continue
				}
				if untilKey != nil && untilKey.less(c) {
					pastUntil = true
					break
				}
				d := c.toDate(o.DTStart.Hour, o.DTStart.Minute, o.DTStart.Second)
				if !yield(d, nil) {
					return
				}
				emitted++
				lastKey, haveLast = c, true
				if o.HasCount && emitted >= o.Count {
					return
				}
			}
			if pastUntil {
				return
			}

			next, err := e.advance(cursor)
			if err != nil {
				yield(hijri.Date{}, err)
				return
			}
			cursor = next
		}
	}
}

func (e *engine) advance(cursor dayKey) (dayKey, error) {
	cal := e.cal
	o := e.o
	cur := hijri.Date{Year: cursor.Year, Month: cursor.Month, Day: cursor.Day}
	switch o.Freq {
	case Yearly:
		d, err := hijri.AddYears(cal, cur, o.Interval, true)
		if err != nil {
			return dayKey{}, err
		}
		return dayKey{d.Year, d.Month, d.Day}, nil
	case Monthly:
		d, err := hijri.AddMonths(cal, cur, o.Interval, true)
		if err != nil {
			return dayKey{}, err
		}
		return dayKey{d.Year, d.Month, d.Day}, nil
	case Weekly:
		d, err := hijri.AddDays(cal, cur, 7*o.Interval)
		if err != nil {
			return dayKey{}, err
		}
		return dayKey{d.Year, d.Month, d.Day}, nil
	default: // Daily and the degenerate sub-day frequencies.
		d, err := hijri.AddDays(cal, cur, o.Interval)
		if err != nil {
			return dayKey{}, err
		}
		return dayKey{d.Year, d.Month, d.Day}, nil
	}
}

func (e *engine) candidatesForPeriod(cursor dayKey) ([]dayKey, error) {
	switch e.o.Freq {
	case Yearly:
		return e.yearlyCandidates(cursor)
	case Monthly:
		return e.monthlyCandidates(cursor)
	case Weekly:
		return e.weeklyCandidates(cursor)
	default: // Daily, Hourly, Minutely, Secondly: one candidate per advance.
		return e.dailyCandidates(cursor)
	}
}

func (e *engine) yearlyCandidates(cursor dayKey) ([]dayKey, error) {
	cal := e.cal
	o := e.o
	y := cursor.Year

	if len(o.ByMonth) > 0 {
		var all []dayKey
		for _, m := range o.ByMonth {
			c, err := e.perMonthSuite(y, m, o.DTStart.Day)
			if err != nil {
				return nil, err
			}
			all = append(all, c...)
		}
		return all, nil
	}

	var candidates []dayKey
	switch {
	case len(o.ByMonthDay) > 0 || len(o.ByNMonthDay) > 0:
		c, err := e.monthDayRule(y, cursor.Month)
		if err != nil {
			return nil, err
		}
		candidates = c
	case len(o.ByYearDay) > 0:
		c, err := e.yearDayRule(y)
		if err != nil {
			return nil, err
		}
		candidates = c
	default:
		length, err := cal.MonthLength(y, cursor.Month)
		if err != nil {
			return nil, err
		}
		candidates = []dayKey{{y, cursor.Month, clampDay(cursor.Day, 1, length)}}
	}

	if len(o.ByWeekday) > 0 {
		filtered, err := e.filterSimpleWeekday(candidates)
		if err != nil {
			return nil, err
		}
		candidates = filtered
	}
	return candidates, nil
}

func (e *engine) monthlyCandidates(cursor dayKey) ([]dayKey, error) {
	return e.perMonthSuite(cursor.Year, cursor.Month, e.o.DTStart.Day)
}

// perMonthSuite implements the per-month candidate rules shared by YEARLY's
// BYMONTH loop and MONTHLY.
func (e *engine) perMonthSuite(y, m, defaultDay int) ([]dayKey, error) {
	cal := e.cal
	o := e.o

	if len(o.ByMonthDay) > 0 || len(o.ByNMonthDay) > 0 {
		return e.monthDayRule(y, m)
	}
	if len(o.ByNWeekday) > 0 {
		var out []dayKey
		for _, spec := range o.ByNWeekday {
			d, ok, err := hijri.NthWeekdayOfMonth(cal, y, m, spec.Day, spec.N)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, dayKey{d.Year, d.Month, d.Day})
			}
		}
		return out, nil
	}
	if len(o.ByWeekday) > 0 {
		length, err := cal.MonthLength(y, m)
		if err != nil {
			return nil, err
		}
		var out []dayKey
		for d := 1; d <= length; d++ {
			wd, err := hijri.WeekdayOf(cal, hijri.Date{Year: y, Month: m, Day: d})
			if err != nil {
				return nil, err
			}
			if weekdayIn(o.ByWeekday, wd) {
				out = append(out, dayKey{y, m, d})
			}
		}
		return out, nil
	}
	length, err := cal.MonthLength(y, m)
	if err != nil {
		return nil, err
	}
	return []dayKey{{y, m, clampDay(defaultDay, 1, length)}}, nil
}

// monthDayRule applies the BYMONTHDAY rule (positive list with SKIP, and
// negative list) to a single (y,m).
func (e *engine) monthDayRule(y, m int) ([]dayKey, error) {
	cal := e.cal
	o := e.o
	length, err := cal.MonthLength(y, m)
	if err != nil {
		return nil, err
	}

	var out []dayKey
	for _, d := range o.ByMonthDay {
		if d <= length {
			out = append(out, dayKey{y, m, d})
			continue
		}
		switch o.Skip {
		case SkipOmit:
			// drop
		case SkipBackward:
			out = append(out, dayKey{y, m, length})
		case SkipForward:
			nm, ny := m+1, y
			if nm > 12 {
				nm, ny = 1, y+1
			}
			if _, err := cal.MonthLength(ny, 1); err != nil {
				return nil, err
			}
			out = append(out, dayKey{ny, nm, 1})
		}
	}
	for _, n := range o.ByNMonthDay {
		d := length + n + 1
		if d >= 1 {
			out = append(out, dayKey{y, m, d})
		}
	}
	return out, nil
}

func (e *engine) yearDayRule(y int) ([]dayKey, error) {
	cal := e.cal
	o := e.o
	yearLen, err := cal.YearLength(y)
	if err != nil {
		return nil, err
	}
	var out []dayKey
	for _, k := range o.ByYearDay {
		doy := k
		if k < 0 {
			doy = yearLen + k + 1
		}
		if doy < 1 || doy > yearLen {
			continue // e.g. BYYEARDAY=355 in a 354-day year
		}
		m, d, err := dayOfYearToMonthDay(cal, y, doy)
		if err != nil {
			return nil, err
		}
		out = append(out, dayKey{y, m, d})
	}
	return out, nil
}

func dayOfYearToMonthDay(cal hijri.Provider, y, doy int) (month, day int, err error) {
	remaining := doy
	for m := 1; m <= 12; m++ {
		length, err := cal.MonthLength(y, m)
		if err != nil {
			return 0, 0, err
		}
		if remaining <= length {
			return m, remaining, nil
		}
		remaining -= length
	}
	return 0, 0, newInvalidInput("BYYEARDAY", "day-of-year %d out of range for year %d", doy, y)
}

func (e *engine) filterSimpleWeekday(candidates []dayKey) ([]dayKey, error) {
	cal := e.cal
	var out []dayKey
	for _, c := range candidates {
		wd, err := hijri.WeekdayOf(cal, hijri.Date{Year: c.Year, Month: c.Month, Day: c.Day})
		if err != nil {
			return nil, err
		}
		if weekdayIn(e.o.ByWeekday, wd) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *engine) weeklyCandidates(cursor dayKey) ([]dayKey, error) {
	cal := e.cal
	o := e.o
	anchor := hijri.Date{Year: cursor.Year, Month: cursor.Month, Day: cursor.Day}

	if len(o.ByWeekday) == 0 {
		return []dayKey{cursor}, nil
	}

	var out []dayKey
	for i := 0; i < 7; i++ {
		d, err := hijri.AddDays(cal, anchor, i)
		if err != nil {
			return nil, err
		}
		wd, err := hijri.WeekdayOf(cal, d)
		if err != nil {
			return nil, err
		}
		if weekdayIn(o.ByWeekday, wd) {
			out = append(out, dayKey{d.Year, d.Month, d.Day})
		}
	}
	return out, nil
}

func (e *engine) dailyCandidates(cursor dayKey) ([]dayKey, error) {
	cal := e.cal
	o := e.o

	if len(o.ByMonth) > 0 && !inIntList(o.ByMonth, cursor.Month) {
		return nil, nil
	}
	if len(o.ByMonthDay) > 0 || len(o.ByNMonthDay) > 0 {
		matched := inIntList(o.ByMonthDay, cursor.Day)
		if !matched && len(o.ByNMonthDay) > 0 {
			length, err := cal.MonthLength(cursor.Year, cursor.Month)
			if err != nil {
				return nil, err
			}
			for _, n := range o.ByNMonthDay {
				if cursor.Day == length+n+1 {
					matched = true
					break
				}
			}
		}
		if !matched {
			return nil, nil
		}
	}
	if len(o.ByWeekday) > 0 {
		wd, err := hijri.WeekdayOf(cal, hijri.Date{Year: cursor.Year, Month: cursor.Month, Day: cursor.Day})
		if err != nil {
			return nil, err
		}
		if !weekdayIn(o.ByWeekday, wd) {
			return nil, nil
		}
	}
	return []dayKey{cursor}, nil
}

func weekdayIn(xs []hijri.Weekday, v hijri.Weekday) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
