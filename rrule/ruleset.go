package rrule

import (
	"sort"
	"sync"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// RuleSet composes multiple inclusion/exclusion rules and explicit dates
// into one ordered occurrence sequence. Unlike Rule, RuleSet is mutable:
// every mutator clears its own cache.
type RuleSet struct {
	mu sync.Mutex

	calendar hijri.CalendarKind
	tzid     string

	inclusionRules []*Rule
	inclusionDates []hijri.Date
	exclusionRules []*Rule
	exclusionDates []hijri.Date

	cache *resultCache
}

// NewRuleSet constructs an empty RuleSet under the given default calendar.
func NewRuleSet(calendar hijri.CalendarKind) *RuleSet {
	return &RuleSet{calendar: calendar, cache: newResultCache()}
}

// RRule adds an inclusion rule.
func (rs *RuleSet) RRule(r *Rule) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.inclusionRules = append(rs.inclusionRules, r)
	rs.cache.invalidate()
}

// RDate adds an explicit inclusion date.
func (rs *RuleSet) RDate(d hijri.Date) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.inclusionDates = append(rs.inclusionDates, d)
	rs.cache.invalidate()
}

// ExRule adds an exclusion rule.
func (rs *RuleSet) ExRule(r *Rule) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.exclusionRules = append(rs.exclusionRules, r)
	rs.cache.invalidate()
}

// ExDate adds an explicit exclusion date.
func (rs *RuleSet) ExDate(d hijri.Date) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.exclusionDates = append(rs.exclusionDates, d)
	rs.cache.invalidate()
}

// All materializes the rule set's result: union of inclusion rule streams
// and inclusion dates, keyed by (y,m,d), minus the union of exclusion rule
// streams and exclusion dates, sorted ascending.
func (rs *RuleSet) All() ([]hijri.Date, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if cached, ok := rs.cache.getAll(); ok {
		return cached, nil
	}

	included := make(map[dayKey]hijri.Date)
	for _, r := range rs.inclusionRules {
		dates, err := r.drain()
		if err != nil {
			return nil, err
		}
		for _, d := range dates {
			included[dayKey{d.Year, d.Month, d.Day}] = d
		}
	}
	for _, d := range rs.inclusionDates {
		included[dayKey{d.Year, d.Month, d.Day}] = d
	}

	excluded := make(map[dayKey]bool)
	for _, r := range rs.exclusionRules {
		dates, err := r.drain()
		if err != nil {
			return nil, err
		}
		for _, d := range dates {
			excluded[dayKey{d.Year, d.Month, d.Day}] = true
		}
	}
	for _, d := range rs.exclusionDates {
		excluded[dayKey{d.Year, d.Month, d.Day}] = true
	}

	keys := make([]dayKey, 0, len(included))
	for k := range included {
		if !excluded[k] {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	out := make([]hijri.Date, len(keys))
	for i, k := range keys {
		out[i] = included[k]
	}
	rs.cache.putAll(out)
	return out, nil
}

// Calendar reports the provider all query operations compare dates under.
func (rs *RuleSet) Calendar() hijri.CalendarKind { return rs.calendar }

// After returns the first materialized occurrence satisfying its
// comparison with d.
func (rs *RuleSet) After(d hijri.Date, inclusive bool) (hijri.Date, bool, error) {
	all, err := rs.All()
	if err != nil {
		return hijri.Date{}, false, err
	}
	cal := hijri.ProviderFor(rs.calendar)
	for _, cand := range all {
		cmp, err := hijri.Compare(cal, cand, d)
		if err != nil {
			return hijri.Date{}, false, err
		}
		if cmp > 0 || (inclusive && cmp == 0) {
			return cand, true, nil
		}
	}
	return hijri.Date{}, false, nil
}

// Before returns the last materialized occurrence satisfying its
// comparison with d.
func (rs *RuleSet) Before(d hijri.Date, inclusive bool) (hijri.Date, bool, error) {
	all, err := rs.All()
	if err != nil {
		return hijri.Date{}, false, err
	}
	cal := hijri.ProviderFor(rs.calendar)
	var best hijri.Date
	found := false
	for _, cand := range all {
		cmp, err := hijri.Compare(cal, cand, d)
		if err != nil {
			return hijri.Date{}, false, err
		}
		if cmp < 0 || (inclusive && cmp == 0) {
			best, found = cand, true
			continue
		}
		break
	}
	return best, found, nil
}

// Between collects materialized occurrences in [a,b].
func (rs *RuleSet) Between(a, b hijri.Date, inclusive bool) ([]hijri.Date, error) {
	all, err := rs.All()
	if err != nil {
		return nil, err
	}
	cal := hijri.ProviderFor(rs.calendar)
	var out []hijri.Date
	for _, cand := range all {
		cmpA, err := hijri.Compare(cal, cand, a)
		if err != nil {
			return nil, err
		}
		if cmpA < 0 || (!inclusive && cmpA == 0) {
			continue
		}
		cmpB, err := hijri.Compare(cal, cand, b)
		if err != nil {
			return nil, err
		}
		if cmpB > 0 || (!inclusive && cmpB == 0) {
			continue
		}
		out = append(out, cand)
	}
	return out, nil
}
