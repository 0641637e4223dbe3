package interval

import (
	"strconv"

	"github.com/pkg/errors"
)

// LinkedBound associates a bound with the interval it was taken from.
// The interval is identified by its slot in an arena (usually the member
// list of a Multi) rather than referenced directly.
type LinkedBound struct {
	Bound   Bound
	Slot    int
	IsLower bool
}

// LinkedBounds returns the lower and upper bounds of iv, linked to the given slot.
func (iv Interval) LinkedBounds(slot int) (lower, upper LinkedBound) {
	return LinkedBound{Bound: iv.lower, Slot: slot, IsLower: true},
		LinkedBound{Bound: iv.upper, Slot: slot, IsLower: false}
}

// Resolve retrieves the owning interval from the arena.
func (lb LinkedBound) Resolve(arena []Interval) (Interval, error) {
	if lb.Slot < 0 || lb.Slot >= len(arena) {
		return Interval{}, errors.Wrapf(ErrIndexOutOfRange, "slot %d in arena of %d", lb.Slot, len(arena))
	}
	return arena[lb.Slot], nil
}

func (lb LinkedBound) String() string {
	kind := "upper"
	if lb.IsLower {
		kind = "lower"
	}
	return lb.Bound.String() + " (" + kind + " of #" + strconv.Itoa(lb.Slot) + ")"
}

// sweepLess orders linked bounds for a left-to-right sweep. On equal cuts,
// lower bounds come first so that members meeting at a shared cut overlap.
func sweepLess(a, b LinkedBound) bool {
	if c := a.Bound.Compare(b.Bound); c != 0 {
		return c < 0
	}
	if a.IsLower != b.IsLower {
		return a.IsLower
	}
	return a.Slot < b.Slot
}
