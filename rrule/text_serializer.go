package rrule

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// SerializeText renders o back to the two-line DTSTART/RRULE textual form.
// DTSTART is always written (normalized Options always carry one); every
// default-valued property (default INTERVAL=1, default WKST, default
// SKIP=OMIT) is omitted.
func SerializeText(o Options) string {
	var lines []string

	dtLine := "DTSTART"
	if o.Calendar != hijri.UmmAlQura {
		dtLine += ";CALENDAR=" + o.Calendar.String()
	}
	dtLine += ":" + formatDateToken(o.DTStart)
	lines = append(lines, dtLine)

	var props []string
	props = append(props, "FREQ="+o.Freq.String())
	if o.Interval != 1 {
		props = append(props, "INTERVAL="+strconv.Itoa(o.Interval))
	}
	if o.WKST != hijri.Sunday {
		props = append(props, "WKST="+o.WKST.String())
	}
	if o.HasCount {
		props = append(props, "COUNT="+strconv.Itoa(o.Count))
	}
	if o.Until != nil {
		props = append(props, "UNTIL="+formatDateToken(*o.Until))
	}
	if len(o.BySetPos) > 0 {
		props = append(props, "BYSETPOS="+formatIntList(o.BySetPos))
	}
	if len(o.ByMonth) > 0 {
		props = append(props, "BYMONTH="+formatIntList(o.ByMonth))
	}
	if byMonthDay := mergeMonthDay(o.ByMonthDay, o.ByNMonthDay); byMonthDay != "" {
		props = append(props, "BYMONTHDAY="+byMonthDay)
	}
	if len(o.ByYearDay) > 0 {
		props = append(props, "BYYEARDAY="+formatIntList(o.ByYearDay))
	}
	if len(o.ByWeekNo) > 0 {
		props = append(props, "BYWEEKNO="+formatIntList(o.ByWeekNo))
	}
	if byDay := mergeWeekday(o.ByWeekday, o.ByNWeekday); byDay != "" {
		props = append(props, "BYDAY="+byDay)
	}
	if len(o.ByHour) > 0 {
		props = append(props, "BYHOUR="+formatIntList(o.ByHour))
	}
	if len(o.ByMinute) > 0 {
		props = append(props, "BYMINUTE="+formatIntList(o.ByMinute))
	}
	if len(o.BySecond) > 0 {
		props = append(props, "BYSECOND="+formatIntList(o.BySecond))
	}
	if o.Skip != SkipOmit {
		props = append(props, "SKIP="+o.Skip.String())
	}
	if o.TZID != "" {
		props = append(props, "TZID="+o.TZID)
	}

	lines = append(lines, "RRULE:"+strings.Join(props, ";"))
	return strings.Join(lines, "\n")
}

func formatDateToken(d hijri.Date) string {
	if d.Hour == 0 && d.Minute == 0 && d.Second == 0 {
		return fmt.Sprintf("%04d%02d%02d", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d%02d%02dT%02d%02d%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

func formatIntList(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

// mergeMonthDay merges the positive and negative BYMONTHDAY lists back into
// one comma-separated list, positives first then negatives, matching the
// order the parser would naturally split them from.
func mergeMonthDay(pos, neg []int) string {
	if len(pos) == 0 && len(neg) == 0 {
		return ""
	}
	all := append(append([]int(nil), pos...), neg...)
	return formatIntList(all)
}

// mergeWeekday merges simple and nth BYDAY entries into one canonical list,
// sorted for determinism: simple weekdays first (in weekday order), then
// nth entries (in weekday, then ordinal order).
func mergeWeekday(simple []hijri.Weekday, nth []WeekdaySpec) string {
	if len(simple) == 0 && len(nth) == 0 {
		return ""
	}
	sortedSimple := append([]hijri.Weekday(nil), simple...)
	sort.Slice(sortedSimple, func(i, j int) bool { return sortedSimple[i] < sortedSimple[j] })

	sortedNth := append([]WeekdaySpec(nil), nth...)
	sort.Slice(sortedNth, func(i, j int) bool {
		if sortedNth[i].Day != sortedNth[j].Day {
			return sortedNth[i].Day < sortedNth[j].Day
		}
		return sortedNth[i].N < sortedNth[j].N
	})

	parts := make([]string, 0, len(sortedSimple)+len(sortedNth))
	for _, w := range sortedSimple {
		parts = append(parts, w.String())
	}
	for _, w := range sortedNth {
		parts = append(parts, strconv.Itoa(w.N)+w.Day.String())
	}
	return strings.Join(parts, ",")
}
