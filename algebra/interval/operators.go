package interval

import (
	"fmt"
	"math"

	"github.com/cs-au-dk/intervals/utils"
	"github.com/cs-au-dk/intervals/utils/slices"

	"github.com/pkg/errors"
)

// members exposes the intervals of a region without copying.
// Callers must not mutate the result.
func members(r Region) []Interval {
	switch r := r.(type) {
	case Interval:
		return []Interval{r}
	case *Multi:
		return r.intervals
	}
	panic(fmt.Errorf("%w: %T", ErrUnsupportedOperand, r))
}

// span creates the interval between two cuts. It reports false when the cuts
// delimit nothing, or when the result would be infinitesimal.
func span(lower, upper Bound) (Interval, bool) {
	if !lower.Lt(upper) {
		return Interval{}, false
	}
	iv, err := New(lower, upper)
	switch {
	case err == nil:
		return iv, true
	case errors.Is(err, ErrInfinitesimal):
		return Interval{}, false
	}
	// Ordered cuts can only fail construction by being infinitesimal.
	panic(fmt.Errorf("%w: span %s, %s: %v", errInternal, lower, upper, err))
}

func containsValue(iv Interval, v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return iv.lower.Leq(Bound{value: v, side: BelongsRight}) &&
		Bound{value: v, side: BelongsLeft}.Leq(iv.upper)
}

func containsLowerBound(iv Interval, b Bound) bool {
	return iv.lower.Leq(b) && b.Lt(iv.upper)
}

func containsUpperBound(iv Interval, b Bound) bool {
	return iv.lower.Lt(b) && b.Leq(iv.upper)
}

func containsInterval(iv, o Interval) bool {
	return iv.lower.Leq(o.lower) && o.upper.Leq(iv.upper)
}

// intersectPair computes a ∩ b.
func intersectPair(a, b Interval) (Interval, bool) {
	return span(a.lower.Max(b.lower), a.upper.Min(b.upper))
}

// touchesPair checks that a and b share an endpoint value (within tolerance)
// with matching inclusion, i.e. one picks up exactly where the other stops.
func touchesPair(a, b Interval) bool {
	return (a.lower.side == b.upper.side && utils.IsClose(a.lower.value, b.upper.value)) ||
		(a.upper.side == b.lower.side && utils.IsClose(a.upper.value, b.lower.value))
}

// mergeable checks whether a and b would be folded into one by a merge.
func mergeable(a, b Interval) bool {
	_, ok := intersectPair(a, b)
	return ok || touchesPair(a, b)
}

func hullPair(a, b Interval) Interval {
	return Interval{lower: a.lower.Min(b.lower), upper: a.upper.Max(b.upper)}
}

// subtractPair computes self \ other.
func subtractPair(self, other Interval) []Interval {
	otherHasLower := containsLowerBound(other, self.lower)
	otherHasUpper := containsUpperBound(other, self.upper)

	switch {
	//   self:        ╠════╣
	//  other:  ╠════════════╣
	// result:
	case otherHasLower && otherHasUpper:
		return nil

	//   self:  ╠════════════╣
	//  other:        ╠════╣
	// result:  ╠═════╡    ╞═╣
	case containsLowerBound(self, other.lower) && containsUpperBound(self, other.upper):
		res := make([]Interval, 0, 2)
		if iv, ok := span(self.lower, other.lower); ok {
			res = append(res, iv)
		}
		if iv, ok := span(other.upper, self.upper); ok {
			res = append(res, iv)
		}
		return res

	//   self:        ╠══════════╣
	//  other:  ╠════════════╣
	// result:               ╞═══╣
	case otherHasLower:
		if iv, ok := span(other.upper, self.upper); ok {
			return []Interval{iv}
		}
		return nil

	//   self:    ╠══════════╣
	//  other:        ╠════════════╣
	// result:    ╠═══╡
	case otherHasUpper:
		if iv, ok := span(self.lower, other.lower); ok {
			return []Interval{iv}
		}
		return nil
	}

	// The intervals are disjoint.
	return []Interval{self}
}

// ContainsValue checks whether some member of r contains v.
func ContainsValue(r Region, v float64) bool {
	checkOperand(r, "ContainsValue")
	for _, iv := range members(r) {
		if containsValue(iv, v) {
			return true
		}
	}
	return false
}

// ContainsLowerBound checks whether an interval starting at b would start inside some member of r.
func ContainsLowerBound(r Region, b Bound) bool {
	checkOperand(r, "ContainsLowerBound")
	for _, iv := range members(r) {
		if containsLowerBound(iv, b) {
			return true
		}
	}
	return false
}

// ContainsUpperBound checks whether an interval ending at b would end inside some member of r.
func ContainsUpperBound(r Region, b Bound) bool {
	checkOperand(r, "ContainsUpperBound")
	for _, iv := range members(r) {
		if containsUpperBound(iv, b) {
			return true
		}
	}
	return false
}

// Contains checks that every member of b lies within a single member of a.
// An empty b is not contained in anything.
func Contains(a, b Region) bool {
	checkOperand(a, "Contains")
	checkOperand(b, "Contains")
	bs := members(b)
	if len(bs) == 0 {
		return false
	}
	as := members(a)
	for _, o := range bs {
		if _, found := slices.Find(as, func(iv Interval) bool {
			return containsInterval(iv, o)
		}); !found {
			return false
		}
	}
	return true
}

// Intersects checks whether some member of a shares a point with some member of b.
func Intersects(a, b Region) bool {
	checkOperand(a, "Intersects")
	checkOperand(b, "Intersects")
	for _, x := range members(a) {
		for _, y := range members(b) {
			if _, ok := intersectPair(x, y); ok {
				return true
			}
		}
	}
	return false
}

// Touches checks whether some member of a is adjacent to some member of b.
func Touches(a, b Region) bool {
	checkOperand(a, "Touches")
	checkOperand(b, "Touches")
	for _, x := range members(a) {
		for _, y := range members(b) {
			if touchesPair(x, y) {
				return true
			}
		}
	}
	return false
}

// Intersect computes the non-empty pairwise intersections between the members
// of a and b, ordered by member of a first. Member structure is preserved:
// nothing is merged.
func Intersect(a, b Region) *Multi {
	checkOperand(a, "Intersect")
	checkOperand(b, "Intersect")
	res := &Multi{}
	for _, x := range members(a) {
		for _, y := range members(b) {
			if iv, ok := intersectPair(x, y); ok {
				res.intervals = append(res.intervals, iv)
			}
		}
	}
	return res
}

// Subtract removes each member of b, in sequence, from the members of a.
func Subtract(a, b Region) *Multi {
	checkOperand(a, "Subtract")
	checkOperand(b, "Subtract")
	res := append([]Interval(nil), members(a)...)
	for _, other := range members(b) {
		var interim []Interval
		for _, self := range res {
			interim = append(interim, subtractPair(self, other)...)
		}
		res = interim
	}
	return &Multi{intervals: res}
}

// Hull computes the smallest interval covering every member of the given
// regions. It reports false if there are no members at all.
func Hull(rs ...Region) (Interval, bool) {
	var (
		res   Interval
		found bool
	)
	for _, r := range rs {
		checkOperand(r, "Hull")
		for _, iv := range members(r) {
			if !found {
				res, found = iv, true
				continue
			}
			res = hullPair(res, iv)
		}
	}
	return res, found
}

// Exterior computes the complement of r within the complete interval.
// The result is normalized: sorted, pairwise disjoint and non-touching.
func Exterior(r Region) *Multi {
	checkOperand(r, "Exterior")
	norm := NewMulti(members(r)...).Normalize()

	res := &Multi{}
	if norm.Len() == 0 {
		res.intervals = append(res.intervals, Complete())
		return res
	}

	gaps := slices.Windows(norm.intervals, Interval{})
	for gaps.Next() {
		w := gaps.Window()
		if !w.HasPrev {
			if iv, ok := span(NegativeInfinity, w.Cur.lower); ok {
				res.intervals = append(res.intervals, iv)
			}
		}
		next := PositiveInfinity
		if w.HasNext {
			next = w.Next.lower
		}
		if iv, ok := span(w.Cur.upper, next); ok {
			res.intervals = append(res.intervals, iv)
		}
	}
	return res
}
