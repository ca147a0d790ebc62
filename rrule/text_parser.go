package rrule

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hijri-rrule/rrule-go/hijri"
)

var byDayPattern = regexp.MustCompile(`^(-?\d+)?([A-Za-z]{2})$`)

var weekdayTokens = map[string]hijri.Weekday{
	"SA": hijri.Saturday,
	"SU": hijri.Sunday,
	"MO": hijri.Monday,
	"TU": hijri.Tuesday,
	"WE": hijri.Wednesday,
	"TH": hijri.Thursday,
	"FR": hijri.Friday,
}

// ParseText parses the two-line DTSTART/RRULE textual form into a
// PartialOptions. Either line may be absent except RRULE's FREQ
// property, which is required.
func ParseText(text string) (PartialOptions, error) {
	raw, err := stripBOM([]byte(text))
	if err != nil {
		return PartialOptions{}, wrapInvalidInput("text", err)
	}
	text = string(raw)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var p PartialOptions
	sawFreq := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "DTSTART"):
			if err := parseDTStartLine(line, &p); err != nil {
				return PartialOptions{}, err
			}
		case strings.HasPrefix(upper, "RRULE:"):
			ok, err := parseRRuleLine(line[len("RRULE:"):], &p)
			if err != nil {
				return PartialOptions{}, err
			}
			sawFreq = sawFreq || ok
		default:
			return PartialOptions{}, newInvalidInput("text", "unrecognized line %q", line)
		}
	}

	if !sawFreq {
		return PartialOptions{}, newInvalidInput("FREQ", "FREQ is required")
	}
	return p, nil
}

// parseDTStartLine handles `DTSTART[;CALENDAR=<cal>]:<date>`.
func parseDTStartLine(line string, p *PartialOptions) error {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return newInvalidInput("DTSTART", "missing ':' in %q", line)
	}
	head, dateToken := line[:colon], line[colon+1:]

	if semi := strings.IndexByte(head, ';'); semi >= 0 {
		param := head[semi+1:]
		name, value, ok := strings.Cut(param, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "CALENDAR") {
			return newInvalidInput("DTSTART", "unknown DTSTART parameter %q", param)
		}
		kind, ok := ResolveCalendarAlias(value)
		if !ok {
			return newInvalidInput("CALENDAR", "unknown calendar %q", value)
		}
		p.CalendarSet = true
		p.Calendar = kind
	}

	cal := hijri.DefaultProvider()
	if p.CalendarSet {
		cal = hijri.ProviderFor(p.Calendar)
	}
	d, err := parseDateToken(dateToken)
	if err != nil {
		return err
	}
	if !cal.IsValid(d.Year, d.Month, d.Day) {
		return newInvalidInput("DTSTART", "date %04d-%02d-%02d is invalid under %s", d.Year, d.Month, d.Day, cal.Name())
	}
	dv := HijriDateValue(d)
	p.DTStart = &dv
	return nil
}

// parseDateToken parses `YYYYMMDD` or `YYYYMMDDTHHMMSS`, with an optional
// trailing `Z` (ignored, since these values are already Hijri wall-clock
// times, not civil timestamps needing zone conversion).
func parseDateToken(tok string) (hijri.Date, error) {
	tok = strings.TrimSuffix(tok, "Z")
	var datePart, timePart string
	if t := strings.IndexByte(tok, 'T'); t >= 0 {
		datePart, timePart = tok[:t], tok[t+1:]
	} else {
		datePart = tok
	}
	if len(datePart) != 8 {
		return hijri.Date{}, newInvalidInput("date", "malformed date token %q", tok)
	}
	year, err1 := strconv.Atoi(datePart[0:4])
	month, err2 := strconv.Atoi(datePart[4:6])
	day, err3 := strconv.Atoi(datePart[6:8])
	if err1 != nil || err2 != nil || err3 != nil {
		return hijri.Date{}, newInvalidInput("date", "malformed date token %q", tok)
	}
	hour, minute, second := 0, 0, 0
	if timePart != "" {
		if len(timePart) != 6 {
			return hijri.Date{}, newInvalidInput("date", "malformed time token %q", timePart)
		}
		var e1, e2, e3 error
		hour, e1 = strconv.Atoi(timePart[0:2])
		minute, e2 = strconv.Atoi(timePart[2:4])
		second, e3 = strconv.Atoi(timePart[4:6])
		if e1 != nil || e2 != nil || e3 != nil {
			return hijri.Date{}, newInvalidInput("date", "malformed time token %q", timePart)
		}
	}
	return hijri.Date{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}, nil
}

// parseRRuleLine parses the semicolon-separated name=value property list.
// It reports whether FREQ was present.
func parseRRuleLine(body string, p *PartialOptions) (sawFreq bool, err error) {
	for _, pair := range strings.Split(body, ";") {
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return sawFreq, newInvalidInput("RRULE", "malformed property %q", pair)
		}
		name = strings.ToUpper(strings.TrimSpace(name))
		value = strings.TrimSpace(value)

		switch name {
		case "FREQ":
			f, err := parseFrequency(strings.ToUpper(value))
			if err != nil {
				return sawFreq, err
			}
			p.Freq = f
			sawFreq = true
		case "INTERVAL":
			n, err := strconv.Atoi(value)
			if err != nil {
				return sawFreq, newInvalidInput("INTERVAL", "not an integer: %q", value)
			}
			p.Interval = &n
		case "WKST":
			w, err := parseWeekdayToken(value)
			if err != nil {
				return sawFreq, err
			}
			wd := w.Day
			p.WKST = &wd
		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil {
				return sawFreq, newInvalidInput("COUNT", "not an integer: %q", value)
			}
			p.Count = &n
		case "UNTIL":
			d, err := parseDateToken(value)
			if err != nil {
				return sawFreq, err
			}
			dv := HijriDateValue(d)
			p.Until = &dv
		case "TZID":
			p.TZID = value
		case "BYSETPOS":
			ints, err := parseIntList("BYSETPOS", value)
			if err != nil {
				return sawFreq, err
			}
			p.BySetPos = ints
		case "BYMONTH":
			ints, err := parseIntList("BYMONTH", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByMonth = ints
		case "BYMONTHDAY":
			ints, err := parseIntList("BYMONTHDAY", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByMonthDay = ints
		case "BYYEARDAY":
			ints, err := parseIntList("BYYEARDAY", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByYearDay = ints
		case "BYWEEKNO":
			ints, err := parseIntList("BYWEEKNO", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByWeekNo = ints
		case "BYDAY", "BYWEEKDAY":
			specs, err := parseWeekdayList(value)
			if err != nil {
				return sawFreq, err
			}
			p.ByWeekday = specs
		case "BYHOUR":
			ints, err := parseIntList("BYHOUR", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByHour = ints
		case "BYMINUTE":
			ints, err := parseIntList("BYMINUTE", value)
			if err != nil {
				return sawFreq, err
			}
			p.ByMinute = ints
		case "BYSECOND":
			ints, err := parseIntList("BYSECOND", value)
			if err != nil {
				return sawFreq, err
			}
			p.BySecond = ints
		case "SKIP":
			s, err := parseSkipPolicy(strings.ToUpper(value))
			if err != nil {
				return sawFreq, err
			}
			p.SkipSet = true
			p.Skip = s
		case "CALENDAR":
			kind, ok := ResolveCalendarAlias(value)
			if !ok {
				return sawFreq, newInvalidInput("CALENDAR", "unknown calendar %q", value)
			}
			p.CalendarSet = true
			p.Calendar = kind
		default:
			// Unrecognized property names are ignored rather than
			// rejected outright: a rule with no recognized FREQ still
			// surfaces as the more specific "FREQ is required" error
			// once the whole line has been scanned.
		}
	}
	return sawFreq, nil
}

func parseIntList(field, value string) ([]int, error) {
	parts := strings.Split(value, ",")
	out := make([]int, 0, len(parts))
	for _, s := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, newInvalidInput(field, "not an integer: %q", s)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseWeekdayToken parses a single BYDAY mini-grammar token:
// /^(-?\d+)?([A-Z]{2})$/, with the two letters matched case-insensitively.
func parseWeekdayToken(tok string) (WeekdaySpec, error) {
	m := byDayPattern.FindStringSubmatch(tok)
	if m == nil {
		return WeekdaySpec{}, newInvalidInput("BYDAY", "malformed weekday token %q", tok)
	}
	wd, ok := weekdayTokens[strings.ToUpper(m[2])]
	if !ok {
		return WeekdaySpec{}, newInvalidInput("BYDAY", "unknown weekday code %q", m[2])
	}
	n := 0
	if m[1] != "" {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return WeekdaySpec{}, newInvalidInput("BYDAY", "malformed ordinal in %q", tok)
		}
		n = v
	}
	return WeekdaySpec{Day: wd, N: n}, nil
}

func parseWeekdayList(value string) ([]WeekdaySpec, error) {
	parts := strings.Split(value, ",")
	out := make([]WeekdaySpec, 0, len(parts))
	for _, s := range parts {
		spec, err := parseWeekdayToken(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	return out, nil
}
