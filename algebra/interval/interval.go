package interval

import (
	"math"
	"strings"

	"github.com/cs-au-dk/intervals/utils"

	"github.com/pkg/errors"
)

// Interval is an immutable, contiguous range of the extended real line,
// delimited by a lower and an upper Bound.
//
// Every Interval obtained from New or one of the named constructors satisfies:
//
//	lower.value <= upper.value
//	lower.value == upper.value  =>  both bounds are inclusive (degenerate point)
//	lower.value != upper.value  =>  the values are not within tolerance of each other
type Interval struct {
	lower Bound
	upper Bound
}

// Region is a sum type over a single Interval and an ordered collection of
// intervals (*Multi). A single Interval behaves as a one-element collection.
type Region interface {
	// Members returns the intervals of the region. The slice is owned by the caller.
	Members() []Interval

	region()
}

func (Interval) region() {}
func (*Multi) region()   {}

// New creates an interval from two bounds, enforcing the interval invariants.
func New(lower, upper Bound) (Interval, error) {
	switch {
	case lower.value > upper.value:
		return Interval{}, errors.Wrapf(ErrReversed, "%s > %s", lower.valueString(), upper.valueString())
	case lower.value == upper.value:
		if lower.side != BelongsRight || upper.side != BelongsLeft {
			return Interval{}, errors.Wrapf(ErrDegenerateNotClosed, "at %s", lower.valueString())
		}
	case utils.IsClose(lower.value, upper.value):
		return Interval{}, errors.Wrapf(ErrInfinitesimal, "%s ≈ %s", lower.valueString(), upper.valueString())
	}
	return Interval{lower: lower, upper: upper}, nil
}

// Must panics if err is not nil, and returns iv otherwise.
//
//	iv := interval.Must(interval.Closed(0, 10))
func Must(iv Interval, err error) Interval {
	if err != nil {
		panic(err)
	}
	return iv
}

// Lower returns the lower bound.
func (iv Interval) Lower() Bound {
	return iv.lower
}

// Upper returns the upper bound.
func (iv Interval) Upper() Bound {
	return iv.upper
}

// Index returns the lower bound for 0 and the upper bound for 1.
func (iv Interval) Index(i int) (Bound, error) {
	switch i {
	case 0:
		return iv.lower, nil
	case 1:
		return iv.upper, nil
	}
	return Bound{}, errors.Wrapf(ErrIndexOutOfRange, "interval has only index 0 and 1, tried to access %d", i)
}

// Members returns iv as a one-element collection.
func (iv Interval) Members() []Interval {
	return []Interval{iv}
}

// IsDegenerate checks whether iv is a single, closed point.
func (iv Interval) IsDegenerate() bool {
	return iv.lower.value == iv.upper.value
}

// IsInfinitesimal checks whether the bound values of iv differ, but are
// within the current tolerance of each other. Construction rejects such
// intervals, so this only becomes true if the tolerance is widened later.
func (iv Interval) IsInfinitesimal() bool {
	return iv.lower.value != iv.upper.value && utils.IsClose(iv.lower.value, iv.upper.value)
}

// IsComplete checks whether iv spans the whole extended real line.
func (iv Interval) IsComplete() bool {
	return math.IsInf(iv.lower.value, -1) && math.IsInf(iv.upper.value, 1)
}

// Length computes upper - lower.
func (iv Interval) Length() float64 {
	return iv.upper.value - iv.lower.value
}

// Interpolate linearly maps ratio onto the bound values of iv.
// Ratios outside [0, 1] extrapolate.
func (iv Interval) Interpolate(ratio float64) float64 {
	return iv.lower.value + (iv.upper.value-iv.lower.value)*ratio
}

// ContainsValue checks whether v lies within iv.
func (iv Interval) ContainsValue(v float64) bool {
	return containsValue(iv, v)
}

// ContainsLowerBound checks whether an interval starting at b would start inside iv.
func (iv Interval) ContainsLowerBound(b Bound) bool {
	return containsLowerBound(iv, b)
}

// ContainsUpperBound checks whether an interval ending at b would end inside iv.
func (iv Interval) ContainsUpperBound(b Bound) bool {
	return containsUpperBound(iv, b)
}

// ContainsInterval checks that every member of other lies within iv.
// It is false for an empty collection.
func (iv Interval) ContainsInterval(other Region) bool {
	return Contains(iv, other)
}

// Touches checks whether iv is adjacent to a member of other: one ends where
// the other begins, with matching inclusion, so that they do not overlap.
func (iv Interval) Touches(other Region) bool {
	return Touches(iv, other)
}

// Intersects checks whether iv shares at least one point with a member of other.
func (iv Interval) Intersects(other Region) bool {
	return Intersects(iv, other)
}

// Disjoint is the negation of Intersects.
func (iv Interval) Disjoint(other Region) bool {
	return !Intersects(iv, other)
}

// Intersect computes the non-empty intersections of iv with every member of other.
func (iv Interval) Intersect(other Region) *Multi {
	return Intersect(iv, other)
}

// Subtract removes every member of other from iv in turn.
func (iv Interval) Subtract(other Region) *Multi {
	return Subtract(iv, other)
}

// Hull computes the smallest interval covering iv and every member of other.
func (iv Interval) Hull(other Region) Interval {
	h, _ := Hull(iv, other)
	return h
}

// Union collects iv and the members of other, without merging them.
func (iv Interval) Union(other Region) *Multi {
	return NewMulti(iv).AddOverlapping(other)
}

// Exterior computes the complement of iv within the complete interval.
func (iv Interval) Exterior() *Multi {
	return Exterior(iv)
}

// Eq checks for interval equality.
func (iv Interval) Eq(o Interval) bool {
	return iv == o
}

// Equal is Eq, named for use with hashers.
func (iv Interval) Equal(o Interval) bool {
	return iv == o
}

// Hash computes a 32-bit hash of the interval.
func (iv Interval) Hash() uint32 {
	return utils.HashCombine(iv.lower.Hash(), iv.upper.Hash())
}

// Compare orders intervals by lower bound, then by upper bound.
func (iv Interval) Compare(o Interval) int {
	if c := iv.lower.Compare(o.lower); c != 0 {
		return c
	}
	return iv.upper.Compare(o.upper)
}

func (iv Interval) String() string {
	var sb strings.Builder
	if iv.lower.side == BelongsRight {
		sb.WriteString(colorize.Bracket("["))
	} else {
		sb.WriteString(colorize.Bracket("("))
	}
	sb.WriteString(iv.lower.valueString())
	sb.WriteString(", ")
	sb.WriteString(iv.upper.valueString())
	if iv.upper.side == BelongsLeft {
		sb.WriteString(colorize.Bracket("]"))
	} else {
		sb.WriteString(colorize.Bracket(")"))
	}
	return sb.String()
}
