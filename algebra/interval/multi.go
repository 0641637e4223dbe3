package interval

import (
	"strings"

	"github.com/cs-au-dk/intervals/utils"
	"github.com/cs-au-dk/intervals/utils/slices"
	"github.com/cs-au-dk/intervals/utils/worklist"
)

// Multi is an ordered collection of intervals, describing a possibly
// non-normalized subset of the real line. Members may overlap unless an
// operation establishes otherwise.
//
// Insertion methods mutate the receiver and return it for chaining:
//
//	m := new(Multi).AddMerge(a).AddMerge(b)
//
// A Multi is not safe for concurrent mutation. The zero value is an empty Multi.
type Multi struct {
	intervals []Interval
}

// NewMulti creates a Multi holding copies of the given intervals, in order.
func NewMulti(ivs ...Interval) *Multi {
	return &Multi{intervals: append([]Interval(nil), ivs...)}
}

// Members returns a copy of the member list.
func (m *Multi) Members() []Interval {
	return append([]Interval(nil), m.intervals...)
}

// Len returns the number of members.
func (m *Multi) Len() int {
	return len(m.intervals)
}

// IsEmpty checks whether m has no members.
func (m *Multi) IsEmpty() bool {
	return len(m.intervals) == 0
}

// Clone creates an independent copy of m.
func (m *Multi) Clone() *Multi {
	return NewMulti(m.intervals...)
}

// LinkedBounds returns the bounds of every member, linked to the member's position.
func (m *Multi) LinkedBounds() []LinkedBound {
	res := make([]LinkedBound, 0, 2*len(m.intervals))
	for i, iv := range m.intervals {
		lower, upper := iv.LinkedBounds(i)
		res = append(res, lower, upper)
	}
	return res
}

// AddOverlapping appends the members of r verbatim. Overlaps are preserved.
func (m *Multi) AddOverlapping(r Region) *Multi {
	checkOperand(r, "AddOverlapping")
	m.intervals = append(m.intervals, members(r)...)
	return m
}

// AddHard inserts iv, truncating or deleting existing members so that they
// no longer overlap it. Touching members are kept.
func (m *Multi) AddHard(iv Interval) *Multi {
	m.Subtract(iv)
	m.intervals = append(m.intervals, iv)
	return m
}

// AddSoft inserts whatever part of iv does not overlap existing members.
// Existing members are left untouched.
func (m *Multi) AddSoft(iv Interval) *Multi {
	candidate := NewMulti(iv)
	for _, existing := range m.intervals {
		if candidate.IsEmpty() {
			break
		}
		if Intersects(existing, candidate) {
			candidate = Subtract(candidate, existing)
		}
	}
	m.intervals = append(m.intervals, candidate.intervals...)
	return m
}

// AddMerge inserts iv, folding into it every member that intersects or
// touches it (transitively, as the candidate grows). Members that do not
// interact with the candidate are left exactly as they were.
func (m *Multi) AddMerge(iv Interval) *Multi {
	candidate := iv
	for {
		i := slices.Index(m.intervals, func(existing Interval) bool {
			return mergeable(existing, candidate)
		})
		if i < 0 {
			break
		}
		utils.VerbosePrint("Merging %s into %s\n", m.intervals[i], candidate)
		candidate = hullPair(candidate, m.intervals[i])
		m.intervals = slices.Remove(m.intervals, i)
	}
	m.intervals = append(m.intervals, candidate)
	return m
}

// MergeTouchingAndIntersecting merges members until no two of them intersect
// or touch. Members that need no merging keep their relative order, and
// merged hulls are appended after them.
func (m *Multi) MergeTouchingAndIntersecting() *Multi {
	var merged []Interval
	worklist.StartV(m.intervals, func(next Interval, add func(Interval)) {
		i := slices.Index(merged, func(existing Interval) bool {
			return mergeable(existing, next)
		})
		if i < 0 {
			merged = append(merged, next)
			return
		}
		utils.VerbosePrint("Merging %s and %s\n", merged[i], next)
		h := hullPair(merged[i], next)
		merged = slices.Remove(merged, i)
		add(h)
	})
	m.intervals = merged
	return m
}

// Subtract removes iv from every member, splitting members where needed.
// Members wholly covered by iv are dropped.
func (m *Multi) Subtract(iv Interval) *Multi {
	res := make([]Interval, 0, len(m.intervals))
	for _, existing := range m.intervals {
		if _, ok := intersectPair(existing, iv); ok {
			res = append(res, subtractPair(existing, iv)...)
		} else {
			res = append(res, existing)
		}
	}
	m.intervals = res
	return m
}

// DeleteInfinitesimal drops every member that is infinitesimal under the
// current tolerance. Degenerate points are kept.
func (m *Multi) DeleteInfinitesimal() *Multi {
	res := m.intervals[:0]
	for _, iv := range m.intervals {
		if !iv.IsInfinitesimal() {
			res = append(res, iv)
		}
	}
	m.intervals = res
	return m
}

// MakeAllPositive is a no-op: members are never stored with reversed bounds.
func (m *Multi) MakeAllPositive() *Multi {
	return m
}

// Intersect computes the pairwise intersections of the members of m and r.
func (m *Multi) Intersect(r Region) *Multi {
	return Intersect(m, r)
}

// Exterior computes the complement of m within the complete interval.
func (m *Multi) Exterior() *Multi {
	return Exterior(m)
}

// ContainsValue checks whether some member contains v.
func (m *Multi) ContainsValue(v float64) bool {
	return ContainsValue(m, v)
}

// Hull computes the smallest interval covering every member.
// It reports false for an empty Multi.
func (m *Multi) Hull() (Interval, bool) {
	return Hull(m)
}

// Start returns the least lower bound among the members.
func (m *Multi) Start() (Bound, bool) {
	h, ok := m.Hull()
	return h.lower, ok
}

// End returns the greatest upper bound among the members.
func (m *Multi) End() (Bound, bool) {
	h, ok := m.Hull()
	return h.upper, ok
}

// IsValid checks that every member still satisfies the interval invariants
// under the current tolerance. The second result is false for an empty Multi.
func (m *Multi) IsValid() (valid bool, defined bool) {
	if m.IsEmpty() {
		return false, false
	}
	for _, iv := range m.intervals {
		if _, err := New(iv.lower, iv.upper); err != nil {
			return false, true
		}
	}
	return true, true
}

// SameMembers checks whether m and o hold the same intervals with the same
// multiplicities, in any order.
func (m *Multi) SameMembers(o *Multi) bool {
	if m.Len() != o.Len() {
		return false
	}
	counts := utils.NewImmMap[Interval, int]()
	for _, iv := range m.intervals {
		n, _ := counts.Get(iv)
		counts = counts.Set(iv, n+1)
	}
	for _, iv := range o.intervals {
		n, found := counts.Get(iv)
		if !found || n == 0 {
			return false
		}
		counts = counts.Set(iv, n-1)
	}
	return true
}

// SetEqual checks whether a and b cover exactly the same points.
func SetEqual(a, b Region) bool {
	checkOperand(a, "SetEqual")
	checkOperand(b, "SetEqual")
	na := NewMulti(members(a)...).Normalize()
	nb := NewMulti(members(b)...).Normalize()
	if na.Len() != nb.Len() {
		return false
	}
	for i := range na.intervals {
		if na.intervals[i] != nb.intervals[i] {
			return false
		}
	}
	return true
}

func (m *Multi) String() string {
	if m.IsEmpty() {
		return colorize.Empty("∅")
	}
	strs := make([]string, 0, len(m.intervals))
	for _, iv := range m.intervals {
		strs = append(strs, iv.String())
	}
	return "{" + strings.Join(strs, ", ") + "}"
}
