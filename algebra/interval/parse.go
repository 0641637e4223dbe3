package interval

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse reads an interval written in bracket notation, e.g.
//
//	[0, 10)   (-inf, 5]   [2.5, +∞]   [3, 3]
//
// Infinite ends map onto the ±∞ sentinels regardless of the bracket used.
func Parse(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Interval{}, errors.Wrapf(ErrSyntax, "%q", s)
	}

	var lowerSide, upperSide Side
	switch s[0] {
	case '[':
		lowerSide = BelongsRight
	case '(':
		lowerSide = BelongsLeft
	default:
		return Interval{}, errors.Wrapf(ErrSyntax, "%q: expected '[' or '('", s)
	}
	switch s[len(s)-1] {
	case ']':
		upperSide = BelongsLeft
	case ')':
		upperSide = BelongsRight
	default:
		return Interval{}, errors.Wrapf(ErrSyntax, "%q: expected ']' or ')'", s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Interval{}, errors.Wrapf(ErrSyntax, "%q: expected two comma separated values", s)
	}
	a, err := parseValue(parts[0])
	if err != nil {
		return Interval{}, errors.Wrapf(err, "%q", s)
	}
	b, err := parseValue(parts[1])
	if err != nil {
		return Interval{}, errors.Wrapf(err, "%q", s)
	}
	return build(a, lowerSide, b, upperSide)
}

func parseValue(s string) (float64, error) {
	switch s = strings.TrimSpace(s); s {
	case "-inf", "-∞":
		return math.Inf(-1), nil
	case "inf", "+inf", "∞", "+∞":
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, errors.Wrapf(ErrSyntax, "bad value %q", s)
	}
	return v, nil
}
