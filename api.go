// Package hijrrule provides a unified API for evaluating RFC 5545 style
// recurrence rules against the Hijri (Islamic) calendar.
//
// This package is the recommended entry point for most users. It provides
// simple, high-level functions for common operations while re-exporting
// the most frequently used types for single-import convenience.
//
// # Quick Start
//
// Build a rule from partial options and enumerate its occurrences:
//
//	count := 3
//	dtstart := hijrrule.HijriDateValue(hijri.Date{Year: 1446, Month: 9, Day: 1})
//	r, err := hijrrule.NewRule(hijrrule.PartialOptions{
//	    Freq: hijrrule.Yearly, DTStart: &dtstart, Count: &count,
//	    ByMonth: []int{9}, ByMonthDay: []int{1},
//	})
//	dates, err := r.All(nil)
//
// Or parse the textual RRULE form:
//
//	r, err := hijrrule.NewRuleFromText(
//	    "DTSTART;CALENDAR=HIJRI-UM-AL-QURA:14460901\nRRULE:FREQ=YEARLY;BYMONTH=9;BYMONTHDAY=1;COUNT=3")
//
// # Power Users
//
// For advanced use cases, import the underlying packages directly:
//
//   - github.com/hijri-rrule/rrule-go/hijri - calendar providers, Hijri
//     date value type, date arithmetic
//   - github.com/hijri-rrule/rrule-go/rrule - options model, text
//     grammar, expansion engine, rule sets
package hijrrule

import (
	"time"

	"github.com/hijri-rrule/rrule-go/hijri"
	"github.com/hijri-rrule/rrule-go/rrule"
)

// Type re-exports for single-import convenience.
type (
	// Date is an immutable Hijri calendar date-time value.
	Date = hijri.Date

	// Weekday identifies a day of the week, Saturday-origin.
	Weekday = hijri.Weekday

	// CalendarKind names a Hijri calendar back-end.
	CalendarKind = hijri.CalendarKind

	// Frequency is a recurrence rule's step unit.
	Frequency = rrule.Frequency

	// SkipPolicy governs invalid-day handling for BYMONTHDAY.
	SkipPolicy = rrule.SkipPolicy

	// WeekdaySpec is a BYDAY entry: a weekday plus an optional ordinal.
	WeekdaySpec = rrule.WeekdaySpec

	// DateValue is a DTSTART/UNTIL input, Hijri or Gregorian.
	DateValue = rrule.DateValue

	// PartialOptions holds the fields as accepted directly from a caller.
	PartialOptions = rrule.PartialOptions

	// Options is the canonicalized, validated rule configuration.
	Options = rrule.Options

	// Rule is a single immutable recurrence rule.
	Rule = rrule.Rule

	// RuleSet composes multiple rules and explicit dates.
	RuleSet = rrule.RuleSet

	// Advisory is a Lint finding about an otherwise-valid Options value.
	Advisory = rrule.Advisory
)

// Calendar constants for convenience.
const (
	UmmAlQura = hijri.UmmAlQura
	Tabular   = hijri.Tabular
)

// Weekday constants for convenience.
const (
	Saturday  = hijri.Saturday
	Sunday    = hijri.Sunday
	Monday    = hijri.Monday
	Tuesday   = hijri.Tuesday
	Wednesday = hijri.Wednesday
	Thursday  = hijri.Thursday
	Friday    = hijri.Friday
)

// Frequency constants for convenience.
const (
	Yearly   = rrule.Yearly
	Monthly  = rrule.Monthly
	Weekly   = rrule.Weekly
	Daily    = rrule.Daily
	Hourly   = rrule.Hourly
	Minutely = rrule.Minutely
	Secondly = rrule.Secondly
)

// SkipPolicy constants for convenience.
const (
	SkipOmit     = rrule.SkipOmit
	SkipForward  = rrule.SkipForward
	SkipBackward = rrule.SkipBackward
)

// HijriDateValue wraps an already-Hijri date/time as a DateValue.
func HijriDateValue(d Date) DateValue { return rrule.HijriDateValue(d) }

// CivilDateValue wraps a Gregorian civil time as a DateValue; it is
// converted to Hijri at normalization time through the resolved calendar
// provider.
func CivilDateValue(t time.Time) DateValue { return rrule.CivilDateValue(t) }

// NewRule validates and normalizes p into a Rule.
//
// For custom calendar configuration, call hijri.Configure before
// constructing rules.
func NewRule(p PartialOptions) (*Rule, error) {
	return rrule.NewRule(p)
}

// NewRuleFromText parses text (the DTSTART/RRULE two-line form of the
// RRULE textual syntax) and constructs a Rule from it.
func NewRuleFromText(text string) (*Rule, error) {
	return rrule.NewRuleFromText(text)
}

// NewRuleSet constructs an empty RuleSet under the given default calendar.
func NewRuleSet(calendar CalendarKind) *RuleSet {
	return rrule.NewRuleSet(calendar)
}

// Lint inspects o for valid-but-surprising constructs.
func Lint(o Options) []Advisory {
	return rrule.Lint(o)
}
