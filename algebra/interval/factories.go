package interval

import "math"

// Named constructors for every combination of open, closed and infinite bounds.
//
//	Notation      Definition          Constructor
//	[-∞, +∞]      {x}                 Complete
//	[a, a]        {a}                 Degenerate
//	[a, b]        {x | a <= x <= b}   Closed
//	(a, b)        {x | a < x < b}     Open
//	[a, b)        {x | a <= x < b}    ClosedOpen
//	(a, b]        {x | a < x <= b}    OpenClosed
//	[-∞, b)       {x | x < b}         InfOpen
//	[-∞, b]       {x | x <= b}        InfClosed
//	(a, +∞]       {x | x > a}         OpenInf
//	[a, +∞]       {x | x >= a}        ClosedInf
//
// Each fails if the resulting bounds violate the interval invariants.

// Complete yields the interval spanning the whole extended real line.
func Complete() Interval {
	return Interval{lower: NegativeInfinity, upper: PositiveInfinity}
}

// Degenerate yields the single point v.
func Degenerate(v float64) (Interval, error) {
	return build(v, BelongsRight, v, BelongsLeft)
}

// Closed yields [a, b].
func Closed(a, b float64) (Interval, error) {
	return build(a, BelongsRight, b, BelongsLeft)
}

// Open yields (a, b).
func Open(a, b float64) (Interval, error) {
	return build(a, BelongsLeft, b, BelongsRight)
}

// ClosedOpen yields [a, b).
func ClosedOpen(a, b float64) (Interval, error) {
	return build(a, BelongsRight, b, BelongsRight)
}

// OpenClosed yields (a, b].
func OpenClosed(a, b float64) (Interval, error) {
	return build(a, BelongsLeft, b, BelongsLeft)
}

// InfOpen yields everything below b.
func InfOpen(b float64) (Interval, error) {
	upper, err := NewBound(b, BelongsRight)
	if err != nil {
		return Interval{}, err
	}
	return New(NegativeInfinity, upper)
}

// InfClosed yields everything up to and including b.
func InfClosed(b float64) (Interval, error) {
	upper, err := NewBound(b, BelongsLeft)
	if err != nil {
		return Interval{}, err
	}
	return New(NegativeInfinity, upper)
}

// OpenInf yields everything above a.
func OpenInf(a float64) (Interval, error) {
	lower, err := NewBound(a, BelongsLeft)
	if err != nil {
		return Interval{}, err
	}
	return New(lower, PositiveInfinity)
}

// ClosedInf yields everything from a onwards.
func ClosedInf(a float64) (Interval, error) {
	lower, err := NewBound(a, BelongsRight)
	if err != nil {
		return Interval{}, err
	}
	return New(lower, PositiveInfinity)
}

// build creates an interval from raw values and sides. An infinite lower
// value of -∞ or upper value of +∞ always maps onto the matching sentinel,
// since no real number sits at either end to be included or excluded.
func build(a float64, as Side, b float64, bs Side) (Interval, error) {
	lower, err := NewBound(a, as)
	if err != nil {
		return Interval{}, err
	}
	upper, err := NewBound(b, bs)
	if err != nil {
		return Interval{}, err
	}
	if math.IsInf(a, -1) {
		lower = NegativeInfinity
	}
	if math.IsInf(b, 1) {
		upper = PositiveInfinity
	}
	return New(lower, upper)
}
