package rrule

import (
	"github.com/hijri-rrule/rrule-go/hijri"
)

// Rule is a single immutable recurrence rule with its own exclusive result
// cache.
type Rule struct {
	o     Options
	cache *resultCache
}

// NewRule validates and normalizes p into a Rule.
func NewRule(p PartialOptions) (*Rule, error) {
	o, err := Normalize(p)
	if err != nil {
		return nil, err
	}
	return &Rule{o: o, cache: newResultCache()}, nil
}

// NewRuleFromText parses text (the DTSTART/RRULE two-line form) and
// constructs a Rule from it.
func NewRuleFromText(text string) (*Rule, error) {
	p, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	return NewRule(p)
}

// Options returns a copy of the rule's normalized options.
func (r *Rule) Options() Options {
	return r.o.Clone()
}

// String renders the rule back to its canonical textual form.
func (r *Rule) String() string {
	return SerializeText(r.o)
}

func (r *Rule) drain() ([]hijri.Date, error) {
	var out []hijri.Date
	for d, err := range newEngine(r.o).Expand() {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// All materializes the full occurrence sequence. If cb is non-nil, it is
// invoked for each date in order and iteration stops early the first time
// cb returns false; the result is cached only when cb is nil.
func (r *Rule) All(cb func(hijri.Date) bool) ([]hijri.Date, error) {
	if cb == nil {
		if cached, ok := r.cache.getAll(); ok {
			return cached, nil
		}
		dates, err := r.drain()
		if err != nil {
			return nil, err
		}
		r.cache.putAll(dates)
		return dates, nil
	}

	var out []hijri.Date
	for d, err := range newEngine(r.o).Expand() {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
		if !cb(d) {
			break
		}
	}
	return out, nil
}

// After returns the first occurrence satisfying its comparison with d
// (strictly after, or on-or-after when inclusive), or ok=false if the
// stream is exhausted first.
func (r *Rule) After(d hijri.Date, inclusive bool) (result hijri.Date, ok bool, err error) {
	if cached, hit := r.cache.getAfter(d, inclusive); hit {
		if len(cached) == 0 {
			return hijri.Date{}, false, nil
		}
		return cached[0], true, nil
	}
	cal := hijri.ProviderFor(r.o.Calendar)
	for cand, err := range newEngine(r.o).Expand() {
		if err != nil {
			return hijri.Date{}, false, err
		}
		cmp, cerr := hijri.Compare(cal, cand, d)
		if cerr != nil {
			return hijri.Date{}, false, cerr
		}
		if cmp > 0 || (inclusive && cmp == 0) {
			r.cache.putAfter(d, inclusive, []hijri.Date{cand})
			return cand, true, nil
		}
	}
	r.cache.putAfter(d, inclusive, nil)
	return hijri.Date{}, false, nil
}

// Before returns the last occurrence satisfying its comparison with d
// (strictly before, or on-or-before when inclusive); requires full
// consumption up to d.
func (r *Rule) Before(d hijri.Date, inclusive bool) (result hijri.Date, ok bool, err error) {
	if cached, hit := r.cache.getBefore(d, inclusive); hit {
		if len(cached) == 0 {
			return hijri.Date{}, false, nil
		}
		return cached[0], true, nil
	}
	cal := hijri.ProviderFor(r.o.Calendar)
	var best hijri.Date
	found := false
	for cand, err := range newEngine(r.o).Expand() {
		if err != nil {
			return hijri.Date{}, false, err
		}
		cmp, cerr := hijri.Compare(cal, cand, d)
		if cerr != nil {
			return hijri.Date{}, false, cerr
		}
		if cmp < 0 || (inclusive && cmp == 0) {
			best, found = cand, true
			continue
		}
		break
	}
	if found {
		r.cache.putBefore(d, inclusive, []hijri.Date{best})
		return best, true, nil
	}
	r.cache.putBefore(d, inclusive, nil)
	return hijri.Date{}, false, nil
}

// Between collects occurrences in [a,b] (bounds exclusive unless inclusive
// is true).
func (r *Rule) Between(a, b hijri.Date, inclusive bool) ([]hijri.Date, error) {
	if cached, hit := r.cache.getBetween(a, b, inclusive); hit {
		return cached, nil
	}
	cal := hijri.ProviderFor(r.o.Calendar)
	var out []hijri.Date
	for cand, err := range newEngine(r.o).Expand() {
		if err != nil {
			return nil, err
		}
		cmpA, cerr := hijri.Compare(cal, cand, a)
		if cerr != nil {
			return nil, cerr
		}
		if cmpA < 0 || (!inclusive && cmpA == 0) {
			continue
		}
		cmpB, cerr := hijri.Compare(cal, cand, b)
		if cerr != nil {
			return nil, cerr
		}
		if cmpB > 0 || (!inclusive && cmpB == 0) {
			break
		}
		out = append(out, cand)
	}
	r.cache.putBetween(a, b, inclusive, out)
	return out, nil
}
