package interval

import (
	"fmt"

	"github.com/cs-au-dk/intervals/utils"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var opts = utils.Opts()

var colorize = struct {
	Bound    func(...interface{}) string
	Infinity func(...interface{}) string
	Bracket  func(...interface{}) string
	Empty    func(...interface{}) string
}{
	Bound: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Infinity: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Bracket: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Empty: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgMagenta).SprintFunc())(is...)
	},
}

var (
	// ErrNaN is returned when a bound is built from NaN.
	ErrNaN = errors.New("bound value is NaN")
	// ErrInvalidSide is returned for a side that is neither BelongsLeft nor BelongsRight.
	ErrInvalidSide = errors.New("invalid bound side")
	// ErrReversed is returned when the lower bound value exceeds the upper bound value.
	ErrReversed = errors.New("reversed interval")
	// ErrDegenerateNotClosed is returned for equal bound values where either side is exclusive.
	ErrDegenerateNotClosed = errors.New("degenerate interval must be closed on both sides")
	// ErrInfinitesimal is returned for distinct bound values that are within tolerance of each other.
	ErrInfinitesimal = errors.New("infinitesimal interval")
	// ErrIndexOutOfRange is returned when indexing an interval with anything but 0 or 1,
	// or when resolving a linked bound against an arena that lacks its slot.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnsupportedOperand is raised when a nil region is passed to an operator.
	ErrUnsupportedOperand = errors.New("unsupported operand")
	// ErrSyntax is returned by Parse for malformed interval notation.
	ErrSyntax = errors.New("invalid interval syntax")

	errInternal = errors.New("internal error")
)

// checkOperand panics on nil regions. Operators never coerce a missing operand
// into an empty one.
func checkOperand(r Region, op string) {
	if r == nil {
		panic(fmt.Errorf("%w: nil region passed to %s", ErrUnsupportedOperand, op))
	}
	if m, ok := r.(*Multi); ok && m == nil {
		panic(fmt.Errorf("%w: nil *Multi passed to %s", ErrUnsupportedOperand, op))
	}
}
