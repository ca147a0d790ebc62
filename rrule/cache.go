package rrule

import (
	"fmt"
	"sync"

	"github.com/hijri-rrule/rrule-go/hijri"
)

// resultCache memoizes a rule's materialized occurrence sequence and its
// keyed query results. Keys are canonical day-granularity strings of the
// query inputs; any mutation of the owning collection calls invalidate.
type resultCache struct {
	mu sync.Mutex

	all      []hijri.Date
	haveAll  bool
	after    map[string][]hijri.Date
	before   map[string][]hijri.Date
	between  map[string][]hijri.Date
}

func newResultCache() *resultCache {
	return &resultCache{
		after:   make(map[string][]hijri.Date),
		before:  make(map[string][]hijri.Date),
		between: make(map[string][]hijri.Date),
	}
}

func (c *resultCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all = nil
	c.haveAll = false
	c.after = make(map[string][]hijri.Date)
	c.before = make(map[string][]hijri.Date)
	c.between = make(map[string][]hijri.Date)
}

func (c *resultCache) getAll() ([]hijri.Date, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.all, c.haveAll
}

func (c *resultCache) putAll(dates []hijri.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all = dates
	c.haveAll = true
}

func dateKey(d hijri.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func afterKey(d hijri.Date, inclusive bool) string {
	return fmt.Sprintf("%s|%v", dateKey(d), inclusive)
}

func (c *resultCache) getAfter(d hijri.Date, inclusive bool) ([]hijri.Date, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.after[afterKey(d, inclusive)]
	return v, ok
}

func (c *resultCache) putAfter(d hijri.Date, inclusive bool, dates []hijri.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.after[afterKey(d, inclusive)] = dates
}

func (c *resultCache) getBefore(d hijri.Date, inclusive bool) ([]hijri.Date, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.before[afterKey(d, inclusive)]
	return v, ok
}

func (c *resultCache) putBefore(d hijri.Date, inclusive bool, dates []hijri.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.before[afterKey(d, inclusive)] = dates
}

func betweenKey(a, b hijri.Date, inclusive bool) string {
	return fmt.Sprintf("%s..%s|%v", dateKey(a), dateKey(b), inclusive)
}

func (c *resultCache) getBetween(a, b hijri.Date, inclusive bool) ([]hijri.Date, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.between[betweenKey(a, b, inclusive)]
	return v, ok
}

func (c *resultCache) putBetween(a, b hijri.Date, inclusive bool, dates []hijri.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.between[betweenKey(a, b, inclusive)] = dates
}
