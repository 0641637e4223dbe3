package interval

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Stand-ins for ±∞ when drawing on the integer number line.
const (
	renderNegInf = -999
	renderPosInf = 999
)

func renderValue(v float64) int {
	switch {
	case math.IsInf(v, -1):
		return renderNegInf
	case math.IsInf(v, 1):
		return renderPosInf
	}
	return int(math.Round(v))
}

// glyphs draws iv on an integer number line starting at 0, using at most
// width+1 columns:
//
//	╠═════╣   [a, b]
//	╞═════╡   (a, b)
//	║         [a, a]
func (iv Interval) glyphs(width int) string {
	lo, hi := renderValue(iv.lower.value), renderValue(iv.upper.value)
	last := hi
	if width < last {
		last = width
	}

	var sb strings.Builder
	for i := 0; i <= last; i++ {
		switch {
		case i < lo:
			sb.WriteRune(' ')
		case i == lo && i == hi:
			sb.WriteRune('║')
		case i == lo && iv.lower.side == BelongsRight:
			sb.WriteRune('╠')
		case i == lo:
			sb.WriteRune('╞')
		case i == hi && iv.upper.side == BelongsLeft:
			sb.WriteRune('╣')
		case i == hi:
			sb.WriteRune('╡')
		default:
			sb.WriteRune('═')
		}
	}
	return sb.String()
}

// Render writes a one-line debugging picture of iv to w.
// Only the non-negative part of the number line is drawn.
func (iv Interval) Render(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s :%s\n", iv, iv.glyphs(opts.RenderWidth()))
	return err
}

// Render writes a debugging picture of every member of m to w,
// one member per line.
func (m *Multi) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Multi:"); err != nil {
		return err
	}
	for _, iv := range m.intervals {
		if err := iv.Render(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
