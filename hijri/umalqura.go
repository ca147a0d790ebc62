package hijri

import (
	"sort"
	"time"
)

// ummAlQuraMinYear and ummAlQuraMaxYear bound the lookup table; years
// outside [ummAlQuraMinYear, ummAlQuraMaxYear] delegate to the tabular
// provider.
const (
	ummAlQuraMinYear = 1356
	ummAlQuraMaxYear = 1500
)

// UmmAlQuraProvider implements the table-driven Saudi civil calendar: a
// fixed array of 12 month lengths per year in [1356,1500] AH, with
// hijri_to_gregorian/gregorian_to_hijri built on a memoized sequence of
// year-start Julian Day Numbers that is binary-searched for lookup.
//
// The table is generated once, at construction, from the tabular
// provider's month lengths plus a small set of documented ±1-day
// adjustments (see generateUmmAlQuraTable). This is a representative,
// internally-consistent dataset: it makes no claim to match any
// particular year's published Saudi calendar exactly, since that would
// require astronomical new-moon computation. What it guarantees is that
// each provider round-trips with itself, and that the two back-ends are
// free to (and here, do) disagree on some dates within the shared range.
type UmmAlQuraProvider struct {
	fallback *TabularProvider

	// table[y-ummAlQuraMinYear] holds the 12 month lengths for year y.
	table [][12]int

	// yearStartJDN[i] is the JDN of 1 Muharram of year (ummAlQuraMinYear+i).
	// yearStartJDN has len(table)+1 entries; the last is the JDN one past
	// the final tabulated year, used as the binary-search upper bound.
	yearStartJDN []int
}

func newUmmAlQuraProvider(fallback *TabularProvider) *UmmAlQuraProvider {
	p := &UmmAlQuraProvider{fallback: fallback}
	p.table = generateUmmAlQuraTable(fallback)

	// The anchor JDN is computed arithmetically from the epoch using the
	// tabular cycle.
	anchor, err := fallback.toJDN(ummAlQuraMinYear, 1, 1)
	if err != nil {
		panic("hijri: tabular anchor for Umm al-Qura table must be constructible: " + err.Error())
	}

	p.yearStartJDN = make([]int, len(p.table)+1)
	jdn := anchor
	for i, row := range p.table {
		p.yearStartJDN[i] = jdn
		for _, l := range row {
			jdn += l
		}
	}
	p.yearStartJDN[len(p.table)] = jdn
	return p
}

// generateUmmAlQuraTable builds the 1356..1500 AH month-length table.
// Baseline is the tabular calendar's own month lengths; a deterministic,
// reproducible swap then nudges one year in ten (years ending in 5) so the
// two back-ends visibly diverge on some dates. Each swap moves one day
// from month 7 to month 8 (30/29 becomes 29/30) so the year's total
// length, and hence leap/common classification, is unchanged.
func generateUmmAlQuraTable(fallback *TabularProvider) [][12]int {
	n := ummAlQuraMaxYear - ummAlQuraMinYear + 1
	table := make([][12]int, n)
	for i := 0; i < n; i++ {
		year := ummAlQuraMinYear + i
		var row [12]int
		for m := 1; m <= 12; m++ {
			l, err := fallback.MonthLength(year, m)
			if err != nil {
				panic("hijri: tabular month length must be constructible: " + err.Error())
			}
			row[m-1] = l
		}
		if year%5 == 0 {
			// Move a day between months 7 and 8, keeping both within
			// {29,30}. The tabular baseline always has month 7 = 30 and
			// month 8 = 29, so only the swapIdx == 1 branch (years ending
			// in 5) changes anything.
			swapIdx := (year / 5) % 2
			a, b := 6, 7 // zero-based indices of months 7 and 8
			if swapIdx == 0 && row[a] == 29 && row[b] == 30 {
				row[a], row[b] = 30, 29
			} else if swapIdx == 1 && row[a] == 30 && row[b] == 29 {
				row[a], row[b] = 29, 30
			}
		}
		table[i] = row
	}
	return table
}

func (p *UmmAlQuraProvider) Name() string { return "umm-al-qura" }

func (p *UmmAlQuraProvider) inRange(year int) bool {
	return year >= ummAlQuraMinYear && year <= ummAlQuraMaxYear
}

func (p *UmmAlQuraProvider) MonthLength(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, newInvalidInput("month", "month %d out of range [1,12]", month)
	}
	if !p.inRange(year) {
		return p.fallback.MonthLength(year, month)
	}
	return p.table[year-ummAlQuraMinYear][month-1], nil
}

func (p *UmmAlQuraProvider) YearLength(year int) (int, error) {
	if !p.inRange(year) {
		return p.fallback.YearLength(year)
	}
	total := 0
	for _, l := range p.table[year-ummAlQuraMinYear] {
		total += l
	}
	return total, nil
}

func (p *UmmAlQuraProvider) IsLeap(year int) (bool, error) {
	l, err := p.YearLength(year)
	if err != nil {
		return false, err
	}
	return l == 355, nil
}

func (p *UmmAlQuraProvider) IsValid(year, month, day int) bool {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return false
	}
	l, err := p.MonthLength(year, month)
	if err != nil {
		return false
	}
	return day <= l
}

func (p *UmmAlQuraProvider) toJDN(year, month, day int) (int, error) {
	if !p.IsValid(year, month, day) {
		return 0, newInvalidDate(p.Name(), year, month, day, "day out of range for month")
	}
	if !p.inRange(year) {
		return p.fallback.toJDN(year, month, day)
	}
	row := p.table[year-ummAlQuraMinYear]
	offset := 0
	for m := 0; m < month-1; m++ {
		offset += row[m]
	}
	return p.yearStartJDN[year-ummAlQuraMinYear] + offset + (day - 1), nil
}

func (p *UmmAlQuraProvider) fromJDN(jdn int) (year, month, day int) {
	lo, hi := p.yearStartJDN[0], p.yearStartJDN[len(p.yearStartJDN)-1]
	if jdn < lo || jdn >= hi {
		return p.fallback.fromJDN(jdn)
	}

	// Binary search for the tabulated year containing jdn.
	i := sort.Search(len(p.yearStartJDN), func(i int) bool {
		return p.yearStartJDN[i] > jdn
	})
	yearIdx := i - 1
	year = ummAlQuraMinYear + yearIdx

	dayOfYear := jdn - p.yearStartJDN[yearIdx]
	row := p.table[yearIdx]
	month = 1
	for month <= 12 && dayOfYear >= row[month-1] {
		dayOfYear -= row[month-1]
		month++
	}
	day = dayOfYear + 1
	return year, month, day
}

func (p *UmmAlQuraProvider) ToGregorian(year, month, day int) (time.Time, error) {
	jdn, err := p.toJDN(year, month, day)
	if err != nil {
		return time.Time{}, err
	}
	gy, gm, gd := JDNToGregorian(jdn)
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC), nil
}

func (p *UmmAlQuraProvider) FromGregorian(t time.Time) (year, month, day int, err error) {
	jdn := GregorianToJDN(t.Year(), int(t.Month()), t.Day())
	y, m, d := p.fromJDN(jdn)
	return y, m, d, nil
}
