package rrule

import "fmt"

// Severity classifies a Lint advisory as graded feedback rather than a
// flat pass/fail.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Advisory is a single Lint finding: informational or cautionary feedback
// about an Options value that is valid but may not behave as the caller
// expects.
type Advisory struct {
	Severity Severity
	Code     string
	Message  string
}

func (a Advisory) String() string {
	return fmt.Sprintf("[%s] %s: %s", a.Severity, a.Code, a.Message)
}

// Lint inspects o for constructs that are valid but easy to misuse, and
// returns advisories describing them. Lint never rejects o; it is purely
// informational, unlike Normalize's validation errors.
func Lint(o Options) []Advisory {
	var out []Advisory

	if len(o.ByWeekNo) > 0 {
		out = append(out, Advisory{
			Severity: SeverityWarning,
			Code:     "byweekno-ignored",
			Message:  "BYWEEKNO is accepted syntactically but ignored by the expansion engine",
		})
	}

	if o.Freq.SubDaily() {
		out = append(out, Advisory{
			Severity: SeverityWarning,
			Code:     "sub-day-frequency",
			Message:  fmt.Sprintf("%s produces one candidate per advance at day granularity, not sub-day occurrences", o.Freq),
		})
	}

	if o.HasCount && o.Until != nil {
		out = append(out, Advisory{
			Severity: SeverityInfo,
			Code:     "count-and-until",
			Message:  "both COUNT and UNTIL are set; the stream stops at whichever is reached first",
		})
	}

	if o.Skip == SkipForward && (o.Freq == Yearly || o.Freq == Monthly) && len(o.ByMonthDay) > 0 {
		out = append(out, Advisory{
			Severity: SeverityInfo,
			Code:     "skip-forward-rollover",
			Message:  "SKIP=FORWARD can roll a candidate into the following year; this raises OutOfEpoch if that year is unrepresentable",
		})
	}

	if len(o.ByNWeekday) > 0 && len(o.ByMonth) == 0 && o.Freq == Yearly {
		out = append(out, Advisory{
			Severity: SeverityInfo,
			Code:     "nth-weekday-needs-bymonth",
			Message:  "a BYDAY ordinal (e.g. 1FR) on a YEARLY rule without BYMONTH is not evaluated by the engine",
		})
	}

	if o.Interval > 1000 {
		out = append(out, Advisory{
			Severity: SeverityWarning,
			Code:     "large-interval",
			Message:  fmt.Sprintf("INTERVAL=%d is unusually large; the rule may take many periods to produce its first occurrence", o.Interval),
		})
	}

	return out
}
