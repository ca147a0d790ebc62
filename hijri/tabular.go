package hijri

import "time"

// TabularProvider implements the purely arithmetic "tabular Islamic
// calendar": a 30-year leap cycle of 10631 days, odd months of 30 days,
// even months of 29, with month 12 extended to 30 days in leap years.
type TabularProvider struct {
	// cumulativeDays[i] is the number of days elapsed since the start of
	// the 30-year cycle before year-in-cycle i+1 (i in [0,30]).
	cumulativeDays [31]int
}

// hijriEpochJDN is the Julian Day Number of 1 Muharram 1 AH, in the integer
// day count GregorianToJDN/JDNToGregorian use, verified against the known
// anchor 2000-01-01 = Saturday.
const hijriEpochJDN = 1948439

// leapYearsInCycle are the 1-indexed positions within a 30-year cycle that
// are leap (355-day) years.
var leapYearsInCycle = map[int]bool{
	2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
	18: true, 21: true, 24: true, 26: true, 29: true,
}

const cycleLength = 30
const cycleDays = 10631

func newTabularProvider() *TabularProvider {
	p := &TabularProvider{}
	days := 0
	for i := 0; i < cycleLength; i++ {
		p.cumulativeDays[i] = days
		if leapYearsInCycle[i+1] {
			days += 355
		} else {
			days += 354
		}
	}
	p.cumulativeDays[cycleLength] = days // == cycleDays
	return p
}

func (p *TabularProvider) Name() string { return "tabular" }

// yearInCycle returns the 30-year cycle index and the 1-indexed position of
// year within that cycle.
func yearInCycle(year int) (cycle, pos int) {
	cycle = (year - 1) / cycleLength
	pos = (year-1)%cycleLength + 1
	return cycle, pos
}

func (p *TabularProvider) IsLeap(year int) (bool, error) {
	if year < 1 {
		return false, newOutOfEpoch("year %d is before 1 AH", year)
	}
	_, pos := yearInCycle(year)
	return leapYearsInCycle[pos], nil
}

func (p *TabularProvider) YearLength(year int) (int, error) {
	leap, err := p.IsLeap(year)
	if err != nil {
		return 0, err
	}
	if leap {
		return 355, nil
	}
	return 354, nil
}

func (p *TabularProvider) MonthLength(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, newInvalidInput("month", "month %d out of range [1,12]", month)
	}
	if month == 12 {
		leap, err := p.IsLeap(year)
		if err != nil {
			return 0, err
		}
		if leap {
			return 30, nil
		}
		return 29, nil
	}
	if month%2 == 1 {
		return 30, nil
	}
	return 29, nil
}

// daysBeforeYear returns the number of Hijri days elapsed since the epoch
// before the first day of the given year.
func (p *TabularProvider) daysBeforeYear(year int) (int, error) {
	if year < 1 {
		return 0, newOutOfEpoch("year %d is before 1 AH", year)
	}
	cycle, pos := yearInCycle(year)
	return cycle*cycleDays + p.cumulativeDays[pos-1], nil
}

func (p *TabularProvider) daysBeforeMonth(year, month int) (int, error) {
	total := 0
	for m := 1; m < month; m++ {
		l, err := p.MonthLength(year, m)
		if err != nil {
			return 0, err
		}
		total += l
	}
	return total, nil
}

func (p *TabularProvider) toJDN(year, month, day int) (int, error) {
	if !p.IsValid(year, month, day) {
		return 0, newInvalidDate(p.Name(), year, month, day, "day out of range for month")
	}
	beforeYear, err := p.daysBeforeYear(year)
	if err != nil {
		return 0, err
	}
	beforeMonth, err := p.daysBeforeMonth(year, month)
	if err != nil {
		return 0, err
	}
	return hijriEpochJDN + beforeYear + beforeMonth + (day - 1), nil
}

func (p *TabularProvider) fromJDN(jdn int) (year, month, day int) {
	days := jdn - hijriEpochJDN
	if days < 0 {
		days = 0
	}
	cycles := days / cycleDays
	rem := days % cycleDays

	pos := 1
	for pos <= cycleLength && p.cumulativeDays[pos] <= rem {
		pos++
	}
	year = cycles*cycleLength + pos
	dayOfYear := rem - p.cumulativeDays[pos-1]

	month = 1
	for month <= 12 {
		l, _ := p.MonthLength(year, month)
		if dayOfYear < l {
			break
		}
		dayOfYear -= l
		month++
	}
	day = dayOfYear + 1
	return year, month, day
}

func (p *TabularProvider) IsValid(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	l, err := p.MonthLength(year, month)
	if err != nil {
		return false
	}
	return day <= l
}

func (p *TabularProvider) ToGregorian(year, month, day int) (time.Time, error) {
	jdn, err := p.toJDN(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	gy, gm, gd := JDNToGregorian(jdn)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC), nil
}

func (p *TabularProvider) FromGregorian(t time.Time) (year, month, day int, err error) {
	jdn := GregorianToJDN(t.Year(), int(t.Month()), t.Day())
	y, m, d := p.fromJDN(jdn)
	return y, m, d, nil
}
