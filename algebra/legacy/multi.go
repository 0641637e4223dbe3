package legacy

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cs-au-dk/intervals/utils"
	"github.com/cs-au-dk/intervals/utils/slices"
)

// Multi is a list of possibly overlapping intervals.
type Multi struct {
	intervals []Interval
}

func NewMulti(ivs ...Interval) *Multi {
	return &Multi{intervals: append([]Interval(nil), ivs...)}
}

func (m *Multi) Members() []Interval {
	return append([]Interval(nil), m.intervals...)
}

func (m *Multi) IsEmpty() bool {
	return len(m.intervals) == 0
}

// Start is the least start among the members. It reports false for an empty Multi.
func (m *Multi) Start() (float64, bool) {
	if m.IsEmpty() {
		return 0, false
	}
	res := m.intervals[0].Start
	for _, iv := range m.intervals[1:] {
		res = math.Min(res, iv.Start)
	}
	return res, true
}

// End is the greatest end among the members. It reports false for an empty Multi.
func (m *Multi) End() (float64, bool) {
	if m.IsEmpty() {
		return 0, false
	}
	res := m.intervals[0].End
	for _, iv := range m.intervals[1:] {
		res = math.Max(res, iv.End)
	}
	return res, true
}

func (m *Multi) IsValid() (valid bool, defined bool) {
	if m.IsEmpty() {
		return false, false
	}
	for _, iv := range m.intervals {
		if !iv.IsValid() {
			return false, true
		}
	}
	return true, true
}

// Subtract removes o from every member it intersects.
func (m *Multi) Subtract(o Interval) *Multi {
	res := make([]Interval, 0, len(m.intervals))
	for _, iv := range m.intervals {
		if iv.Intersects(o) {
			res = append(res, iv.Subtract(o)...)
		} else {
			res = append(res, iv)
		}
	}
	m.intervals = res
	return m
}

// AddOverlapping appends the given intervals without further processing.
func (m *Multi) AddOverlapping(ivs ...Interval) *Multi {
	m.intervals = append(m.intervals, ivs...)
	return m
}

// AddHard truncates or deletes existing members to make room for iv.
// Touching members are kept, and infinitesimal members may result.
func (m *Multi) AddHard(iv Interval) *Multi {
	return m.Subtract(iv).AddOverlapping(iv)
}

// AddSoft truncates or drops iv to avoid overlapping existing members.
func (m *Multi) AddSoft(iv Interval) *Multi {
	candidate := []Interval{iv}
	for _, existing := range m.intervals {
		if len(candidate) == 0 {
			break
		}
		if NewMulti(existing).intersectsAny(candidate) {
			candidate = NewMulti(candidate...).Subtract(existing).intervals
		}
	}
	return m.AddOverlapping(candidate...)
}

func (m *Multi) intersectsAny(ivs []Interval) bool {
	for _, a := range m.intervals {
		for _, b := range ivs {
			if a.Intersects(b) {
				return true
			}
		}
	}
	return false
}

// AddMerge folds every member intersecting or touching iv into it.
// Only members interacting with iv itself are merged; members that would
// merely interact with the growing hull are kept.
func (m *Multi) AddMerge(iv Interval) *Multi {
	candidate := iv
	for {
		i := slices.Index(m.intervals, func(existing Interval) bool {
			return existing.Intersects(iv) || existing.Touches(iv)
		})
		if i < 0 {
			break
		}
		candidate = candidate.Hull(m.intervals[i])
		m.intervals = slices.Remove(m.intervals, i)
	}
	return m.AddOverlapping(candidate)
}

// MergeTouchingAndIntersecting merges pairs of members until none intersect or touch.
func (m *Multi) MergeTouchingAndIntersecting() *Multi {
	for m.mergeOnePair() {
	}
	return m
}

func (m *Multi) mergeOnePair() bool {
	for i, a := range m.intervals {
		for j := i + 1; j < len(m.intervals); j++ {
			b := m.intervals[j]
			if a.Intersects(b) || a.Touches(b) {
				utils.VerbosePrint("Merging %s and %s\n", a, b)
				m.intervals = slices.Remove(m.intervals, j)
				m.intervals = slices.Remove(m.intervals, i)
				m.intervals = append(m.intervals, a.Hull(b))
				return true
			}
		}
	}
	return false
}

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

// MakeAllPositive reorders the ends of reversed members.
func (m *Multi) MakeAllPositive() *Multi {
	for i, iv := range m.intervals {
		m.intervals[i] = iv.Positive()
	}
	return m
}

// Hull covers every member. It reports false for an empty Multi.
func (m *Multi) Hull() (Interval, bool) {
	if m.IsEmpty() {
		return Interval{}, false
	}
	res := MakeInfiniteEmpty()
	for _, iv := range m.intervals {
		res = res.Hull(iv)
	}
	return res, true
}

func (m *Multi) String() string {
	strs := make([]string, 0, len(m.intervals))
	for _, iv := range m.intervals {
		strs = append(strs, iv.String())
	}
	return "Multi_Interval([" + strings.Join(strs, ", ") + "])"
}

// Render draws iv on an integer number line starting at 0:
//
//	├─────┤
func (iv Interval) Render(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "% 5.0f % 5.0f :", iv.Start, iv.End)
	for i := 0; float64(i) <= iv.End && i <= utils.Opts().RenderWidth(); i++ {
		x := float64(i)
		switch {
		case x < iv.Start:
			sb.WriteRune(' ')
		case x == iv.Start && x == iv.End:
			sb.WriteRune('│')
		case x == iv.Start:
			sb.WriteRune('├')
		case x == iv.End:
			sb.WriteRune('┤')
		default:
			sb.WriteRune('─')
		}
	}
	sb.WriteRune('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func (m *Multi) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Multi_Interval:"); err != nil {
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
