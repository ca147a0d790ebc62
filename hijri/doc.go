// Package hijri implements the Hijri (Islamic lunar) calendar model used
// by the rrule package: two pluggable calendar back-ends (a fixed tabular
// arithmetic calendar and a table-driven Umm al-Qura calendar), bidirectional
// Hijri<->Gregorian conversion via Julian Day Numbers, an immutable date
// value object, and day/month/year arithmetic.
//
// The package treats times as local wall-clock: there is no timezone
// handling here, and none of the arithmetic below touches leap seconds or
// astronomical sighting data. Both are explicitly out of scope.
//
// Example usage:
//
//	cal := hijri.ProviderFor(hijri.UmmAlQura)
//	d, err := hijri.New(cal, 1446, 9, 1, 0, 0, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, m, day, _, _, _, _ := hijri.ToGregorian(cal, d)
//	fmt.Println(y, m, day)
package hijri
