// Package legacy implements the superseded float-only interval type.
//
// Intervals here carry no open/closed distinction. Adjacency and zero length
// are approximated with the shared closeness tolerance, and zero-length,
// infinitesimal or reversed intervals are accepted as-is. The type does not
// interoperate with package interval.
package legacy

import (
	"fmt"
	"math"

	"github.com/cs-au-dk/intervals/utils"

	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("interval has only index 0 and 1")

type Interval struct {
	Start, End float64
}

// MakeInfiniteFull creates the interval spanning the whole real line.
func MakeInfiniteFull() Interval {
	return Interval{math.Inf(-1), math.Inf(1)}
}

// MakeInfiniteEmpty creates the reversed interval from +∞ to -∞, which is
// the identity for Hull.
func MakeInfiniteEmpty() Interval {
	return Interval{math.Inf(1), math.Inf(-1)}
}

func (iv Interval) Index(i int) (float64, error) {
	switch i {
	case 0:
		return iv.Start, nil
	case 1:
		return iv.End, nil
	}
	return 0, errors.Wrapf(ErrIndexOutOfRange, "tried to access %d", i)
}

func (iv Interval) Interpolate(ratio float64) float64 {
	return (iv.End-iv.Start)*ratio + iv.Start
}

// IsValid checks that the interval is not reversed.
func (iv Interval) IsValid() bool {
	return iv.Start <= iv.End
}

func (iv Interval) IsInfinitesimal() bool {
	return utils.IsClose(iv.Start, iv.End)
}

func (iv Interval) Length() float64 {
	return iv.End - iv.Start
}

// PointIsWithin checks whether p lies strictly inside the interval.
func (iv Interval) PointIsWithin(p float64) bool {
	return iv.Start < p && p < iv.End
}

// PointTouches checks whether p is not within the interval, but close to one of its ends.
func (iv Interval) PointTouches(p float64) bool {
	return !iv.PointIsWithin(p) && (utils.IsClose(iv.Start, p) || utils.IsClose(iv.End, p))
}

// Positive orders the ends of the interval.
func (iv Interval) Positive() Interval {
	return Interval{math.Min(iv.Start, iv.End), math.Max(iv.Start, iv.End)}
}

// Intersect computes the overlap of iv and o. Zero-length overlaps are
// reported, since ends are compared without tolerance.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	//  |---|
	//        |---|
	if iv.End < o.Start || iv.Start > o.End {
		return Interval{}, false
	}

	if iv.Start <= o.Start {
		//  |---|
		//    |---|
		if iv.End < o.End {
			return Interval{o.Start, iv.End}, true
		}
		//  |-------|
		//    |---|
		return o, true
	}

	//    |---|
	//  |-------|
	if iv.End < o.End {
		return iv, true
	}
	//    |---|
	//  |---|
	return Interval{iv.Start, o.End}, true
}

// IntersectMulti intersects iv with every member of m, preserving the
// structure of m. It reports false if no member intersects.
func (iv Interval) IntersectMulti(m *Multi) (*Multi, bool) {
	res := new(Multi)
	for _, sub := range m.intervals {
		if x, ok := iv.Intersect(sub); ok {
			res.AddOverlapping(x)
		}
	}
	return res, !res.IsEmpty()
}

func (iv Interval) Intersects(o Interval) bool {
	_, ok := iv.Intersect(o)
	return ok
}

// Touches checks whether iv starts where o ends, or ends where o starts,
// within tolerance.
func (iv Interval) Touches(o Interval) bool {
	return (iv.Start >= o.End && utils.IsClose(iv.Start, o.End)) ||
		(iv.End <= o.Start && utils.IsClose(iv.End, o.Start))
}

// Union merges intersecting intervals into their hull.
func (iv Interval) Union(o Interval) *Multi {
	if iv.Intersects(o) {
		return NewMulti(iv.Hull(o))
	}
	return NewMulti(iv, o)
}

func (iv Interval) Hull(o Interval) Interval {
	return Interval{math.Min(iv.Start, o.Start), math.Max(iv.End, o.End)}
}

// Subtract removes o from iv. Pieces may have zero length.
func (iv Interval) Subtract(o Interval) []Interval {
	//  |---|
	//        |---|
	if iv.End <= o.Start || iv.Start >= o.End {
		return []Interval{iv}
	}

	if iv.Start <= o.Start {
		//  |---|
		//    |---|
		if iv.End < o.End {
			return []Interval{{iv.Start, o.Start}}
		}
		//  |-------|
		//    |---|
		return []Interval{{iv.Start, o.Start}, {o.End, iv.End}}
	}

	//    |---|
	//  |-------|
	if iv.End < o.End {
		return nil
	}
	//    |---|
	//  |---|
	return []Interval{{o.End, iv.End}}
}

// SubtractMulti removes every member of m from iv, in order.
func (iv Interval) SubtractMulti(m *Multi) []Interval {
	res := NewMulti(iv)
	for _, sub := range m.intervals {
		res.Subtract(sub)
	}
	return res.intervals
}

func (iv Interval) String() string {
	return fmt.Sprintf("Interval(%.2f, %.2f)", iv.Start, iv.End)
}
