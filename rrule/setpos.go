package rrule

import "sort"

// applySetPos narrows a sorted candidate list to the values named by a
// BYSETPOS list: for 1-based position p>0, selects candidates[p-1]; for
// p<0, selects candidates[len+p]. Out-of-range positions are silently
// dropped. The result is re-sorted and deduplicated on (year,month,day).
func applySetPos(candidates []dayKey, positions []int) []dayKey {
	if len(positions) == 0 {
		return candidates
	}
	k := len(candidates)
	selected := make([]dayKey, 0, len(positions))
	for _, p := range positions {
		var idx int
		switch {
		case p > 0:
			idx = p - 1
		case p < 0:
			idx = k + p
		default:
			continue
		}
		if idx < 0 || idx >= k {
			continue
		}
		selected = append(selected, candidates[idx])
	}
	return dedupSortDayKeys(selected)
}

func dedupSortDayKeys(xs []dayKey) []dayKey {
	sort.Slice(xs, func(i, j int) bool { return xs[i].less(xs[j]) })
	out := xs[:0]
	var last dayKey
	haveLast := false
	for _, x := range xs {
		if haveLast && x == last {
			continue
		}
		out = append(out, x)
		last = x
		haveLast = true
	}
	return out
}
