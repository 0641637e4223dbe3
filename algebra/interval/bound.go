package interval

import (
	"math"
	"strconv"

	"github.com/cs-au-dk/intervals/utils"

	"github.com/pkg/errors"
)

// Side encodes which neighbouring region the value of a bound belongs to.
//
// A bound is a cut in the real line at its value. BelongsRight places the
// value itself on the right of the cut, making the bound an inclusive start
// (or an exclusive end). BelongsLeft places the value on the left, making the
// bound an inclusive end (or an exclusive start).
type Side uint8

const (
	// BelongsRight marks a cut just before its value.
	BelongsRight Side = iota
	// BelongsLeft marks a cut just after its value.
	BelongsLeft
)

func (s Side) String() string {
	switch s {
	case BelongsRight:
		return "right"
	case BelongsLeft:
		return "left"
	}
	return "side(" + strconv.Itoa(int(s)) + ")"
}

// Bound is an immutable interval endpoint: a value plus the side the value belongs to.
type Bound struct {
	value float64
	side  Side
}

var (
	// NegativeInfinity is the lower bound of the complete interval.
	NegativeInfinity = Bound{value: math.Inf(-1), side: BelongsRight}
	// PositiveInfinity is the upper bound of the complete interval.
	PositiveInfinity = Bound{value: math.Inf(1), side: BelongsLeft}
)

// NewBound creates a bound at value v. NaN values and unknown sides are rejected.
func NewBound(v float64, side Side) (Bound, error) {
	if math.IsNaN(v) {
		return Bound{}, errors.WithStack(ErrNaN)
	}
	if side != BelongsLeft && side != BelongsRight {
		return Bound{}, errors.Wrapf(ErrInvalidSide, "%d", side)
	}
	if v == 0 {
		// Fold -0 into 0 so that equal bounds hash equally.
		v = 0
	}
	return Bound{value: v, side: side}, nil
}

// Value returns the numeric value of the bound.
func (b Bound) Value() float64 {
	return b.value
}

// Side returns the side the value of the bound belongs to.
func (b Bound) Side() Side {
	return b.side
}

// IsNegativeInfinity checks whether b is the -∞ sentinel.
func (b Bound) IsNegativeInfinity() bool {
	return b == NegativeInfinity
}

// IsPositiveInfinity checks whether b is the +∞ sentinel.
func (b Bound) IsPositiveInfinity() bool {
	return b == PositiveInfinity
}

// IsInfinite is true for any bound at ±∞, sentinel or not.
func (b Bound) IsInfinite() bool {
	return math.IsInf(b.value, 0)
}

// Compare orders bounds by value, breaking ties by side: at the same value,
// a BelongsRight cut sits before a BelongsLeft cut.
// The result is -1, 0 or 1.
func (b1 Bound) Compare(b2 Bound) int {
	switch {
	case b1.value < b2.value:
		return -1
	case b1.value > b2.value:
		return 1
	case b1.side == b2.side:
		return 0
	case b1.side == BelongsRight:
		return -1
	}
	return 1
}

// Eq checks for bound equality.
func (b1 Bound) Eq(b2 Bound) bool {
	return b1 == b2
}

// Leq computes b1 ≤ b2.
func (b1 Bound) Leq(b2 Bound) bool {
	return b1.Compare(b2) <= 0
}

// Geq computes b1 ≥ b2.
func (b1 Bound) Geq(b2 Bound) bool {
	return b1.Compare(b2) >= 0
}

// Lt computes b1 < b2.
func (b1 Bound) Lt(b2 Bound) bool {
	return b1.Compare(b2) < 0
}

// Gt computes b1 > b2.
func (b1 Bound) Gt(b2 Bound) bool {
	return b1.Compare(b2) > 0
}

// Max computes max(b1, b2).
func (b1 Bound) Max(b2 Bound) Bound {
	if b1.Lt(b2) {
		return b2
	}
	return b1
}

// Min computes min(b1, b2).
func (b1 Bound) Min(b2 Bound) Bound {
	if b2.Lt(b1) {
		return b2
	}
	return b1
}

// Hash computes a 32-bit hash of the bound.
func (b Bound) Hash() uint32 {
	return utils.HashCombine(utils.HashFloat(b.value), uint32(b.side))
}

// Equal is Eq, named for use with hashers.
func (b Bound) Equal(o Bound) bool {
	return b == o
}

// valueString renders the bound value, using ∞ notation at infinity.
func (b Bound) valueString() string {
	switch {
	case math.IsInf(b.value, -1):
		return colorize.Infinity("-∞")
	case math.IsInf(b.value, 1):
		return colorize.Infinity("+∞")
	}
	return colorize.Bound(strconv.FormatFloat(b.value, 'g', -1, 64))
}

func (b Bound) String() string {
	if b.side == BelongsRight {
		return colorize.Bracket("|") + b.valueString()
	}
	return b.valueString() + colorize.Bracket("|")
}
