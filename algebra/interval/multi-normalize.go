package interval

import (
	"sort"

	"github.com/cs-au-dk/intervals/utils"
	"github.com/cs-au-dk/intervals/utils/pq"

	uf "github.com/spakin/disjoint"
)

// Normalize replaces the members of m with the hulls of its groups of
// transitively intersecting or touching members, sorted by lower bound.
//
// It computes the same regions as MergeTouchingAndIntersecting, but with a
// single sweep over the member bounds in bound order instead of repeated
// pairwise scans. Bounds at the same cut are visited lower-first, so members
// meeting at a shared inclusive point are grouped.
func (m *Multi) Normalize() *Multi {
	if len(m.intervals) < 2 {
		return m
	}

	elements := make([]*uf.Element, len(m.intervals))
	for i := range m.intervals {
		el := uf.NewElement()
		el.Data = i
		elements[i] = el
	}

	// Members of the group being swept. Once every member of the group has
	// ended, it is kept around to check whether the next member touches it.
	var group []int
	depth := 0

	queue := pq.From(sweepLess, m.LinkedBounds()...)
	for !queue.IsEmpty() {
		lb := queue.GetNext()
		if !lb.IsLower {
			depth--
			continue
		}

		if depth == 0 && !m.touchesAny(group, lb.Slot) {
			group = nil
		}
		if len(group) > 0 {
			uf.Union(elements[group[0]], elements[lb.Slot])
		}
		group = append(group, lb.Slot)
		depth++
	}

	hulls := make(map[*uf.Element]Interval)
	for i, el := range elements {
		rep := el.Find()
		if h, found := hulls[rep]; found {
			hulls[rep] = hullPair(h, m.intervals[i])
		} else {
			hulls[rep] = m.intervals[i]
		}
	}

	res := make([]Interval, 0, len(hulls))
	for _, h := range hulls {
		res = append(res, h)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Compare(res[j]) < 0
	})

	utils.VerbosePrint("Normalized %d members into %d\n", len(m.intervals), len(res))
	m.intervals = res
	return m
}

func (m *Multi) touchesAny(group []int, slot int) bool {
	for _, i := range group {
		if touchesPair(m.intervals[i], m.intervals[slot]) {
			return true
		}
	}
	return false
}
