package hijri

// Julian Day Number conversions for the proleptic Gregorian calendar, using
// astronomical year numbering (year 0 exists).
//
// Reference: Dershowitz & Reingold, "Calendrical Calculations". These are
// the same formulae used for the Gregorian leg of every calendar back-end
// in this package; the Hijri-specific legs (tabular.go, umalqura.go) build
// on top of the integer JDN these return.

// GregorianToJDN converts a Gregorian civil date to a Julian Day Number.
func GregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian converts a Julian Day Number to a Gregorian civil date.
func JDNToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (146097*b)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// weekdayFromJDN computes the Saturday-origin weekday of a Julian Day
// Number: day_of_week = (floor(JDN + 0.5) + 2) mod 7, 0 = Saturday.
func weekdayFromJDN(jdn int) Weekday {
	w := (jdn + 2) % 7
	if w < 0 {
		w += 7
	}
	return Weekday(w)
}
