package utils

import (
	"fmt"
	"math"
)

func VerbosePrint(format string, a ...interface{}) (n int, err error) {
	if Opts().Verbose() {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}

// IsClose reports whether a and b are equal within the configured tolerances:
//
//	|a - b| <= max(rel * max(|a|, |b|), abs)
//
// Infinities are only close to themselves. NaN is close to nothing.
func IsClose(a, b float64) bool {
	rel, abs := Opts().Tolerance()
	return IsCloseTol(a, b, rel, abs)
}

// IsCloseTol is IsClose with explicit tolerances.
func IsCloseTol(a, b, rel, abs float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	return diff <= math.Max(rel*math.Max(math.Abs(a), math.Abs(b)), abs)
}
