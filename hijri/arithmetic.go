package hijri

// AddDays returns the Date n calendar days after d under cal. n may be
// negative. Time-of-day fields are preserved unchanged.
func AddDays(cal Provider, d Date, n int) (Date, error) {
	jdn, err := d.toJDN(cal)
	if err != nil {
		return Date{}, err
	}
	return dateFromJDN(cal, jdn+n, d.Hour, d.Minute, d.Second), nil
}

// AddMonths returns the Date n months after d under cal. If clamp is true
// and the target month is shorter than d.Day, the result clamps to the
// target month's last day (spec's clamped-advance behavior); if clamp is
// false, a day that does not exist in the target month yields
// InvalidDateError.
func AddMonths(cal Provider, d Date, n int, clamp bool) (Date, error) {
	total := (d.Year-1)*12 + (d.Month - 1) + n
	year := total/12 + 1
	month := total%12 + 1
	if month < 1 {
		month += 12
		year--
	}
	day := d.Day
	length, err := cal.MonthLength(year, month)
	if err != nil {
		return Date{}, err
	}
	if day > length {
		if !clamp {
			return Date{}, newInvalidDate(cal.Name(), year, month, day, "day out of range for month")
		}
		day = length
	}
	return Date{Year: year, Month: month, Day: day, Hour: d.Hour, Minute: d.Minute, Second: d.Second}, nil
}

// AddYears returns the Date n years after d under cal, with the same
// clamping behavior as AddMonths for a day 30 collapsing into a 29-day
// month 12 (e.g. a leap year's day 30 landing on a common year).
func AddYears(cal Provider, d Date, n int, clamp bool) (Date, error) {
	return AddMonths(cal, d, n*12, clamp)
}

// StartOfMonth returns the first day of d's Hijri month, at midnight.
func StartOfMonth(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's Hijri month under cal, at midnight.
func EndOfMonth(cal Provider, d Date) (Date, error) {
	length, err := cal.MonthLength(d.Year, d.Month)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: d.Year, Month: d.Month, Day: length}, nil
}

// StartOfYear returns 1 Muharram of d's Hijri year, at midnight.
func StartOfYear(d Date) Date {
	return Date{Year: d.Year, Month: 1, Day: 1}
}

// EndOfYear returns the last day of d's Hijri year under cal, at midnight.
func EndOfYear(cal Provider, d Date) (Date, error) {
	length, err := cal.MonthLength(d.Year, 12)
	if err != nil {
		return Date{}, err
	}
	return Date{Year: d.Year, Month: 12, Day: length}, nil
}

// StartOfWeek returns the Date of the most recent day whose weekday is wkst
// (searching backward through and including d itself) under cal.
func StartOfWeek(cal Provider, d Date, wkst Weekday) (Date, error) {
	wd, err := WeekdayOf(cal, d)
	if err != nil {
		return Date{}, err
	}
	delta := int(wd) - int(wkst)
	if delta < 0 {
		delta += 7
	}
	return AddDays(cal, d, -delta)
}

// NthWeekdayOfMonth returns the nth occurrence of weekday wd within
// (year, month) under cal. n counts forward from 1 when positive, backward
// from -1 (the last such weekday in the month) when negative. ok is false
// if the month does not have an nth occurrence of wd (e.g. a 5th Friday in
// a month with only four).
func NthWeekdayOfMonth(cal Provider, year, month int, wd Weekday, n int) (Date, bool, error) {
	if n == 0 {
		return Date{}, false, newInvalidInput("BYDAY", "ordinal 0 is not a valid weekday occurrence")
	}
	length, err := cal.MonthLength(year, month)
	if err != nil {
		return Date{}, false, err
	}
	first := Date{Year: year, Month: month, Day: 1}
	firstJDN, err := first.toJDN(cal)
	if err != nil {
		return Date{}, false, err
	}
	firstWD := weekdayFromJDN(firstJDN)

	offset := int(wd) - int(firstWD)
	if offset < 0 {
		offset += 7
	}
	firstOccurrenceDay := offset + 1

	if n > 0 {
		day := firstOccurrenceDay + (n-1)*7
		if day > length {
			return Date{}, false, nil
		}
		return Date{Year: year, Month: month, Day: day}, true, nil
	}

	lastOccurrenceDay := firstOccurrenceDay
	for lastOccurrenceDay+7 <= length {
		lastOccurrenceDay += 7
	}
	day := lastOccurrenceDay + (n+1)*7
	if day < 1 {
		return Date{}, false, nil
	}
	return Date{Year: year, Month: month, Day: day}, true, nil
}
