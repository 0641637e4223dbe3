package set

// subsets enumerates every subset of a finite list of entries.
type subsets[T any] []T

func Subsets[T any](entries []T) subsets[T] {
	return entries
}

func SubsetsV[T any](entries ...T) subsets[T] {
	return entries
}

// ForEach calls do once per subset, in lexicographic order of entry indices,
// starting with the empty subset. The slice passed to do is fresh on every call.
func (S subsets[T]) ForEach(do func([]T)) {
	last := len(S) - 1

	ss := []int{}

	for ss != nil {
		subset := make([]T, 0, len(S))

		for _, i := range ss {
			subset = append(subset, S[i])
		}

		do(subset)

		switch {
		// Initial set is empty
		case len(S) == 0:
			ss = nil
		// Process the empty subset
		case len(ss) == 0:
			ss = append(ss, 0)
		// A singleton holding the last entry closes the enumeration.
		case len(ss) == 1 && ss[0] == last:
			ss = nil
		// Drop the last entry and advance the one before it.
		case ss[len(ss)-1] == last:
			ss = append(ss[:len(ss)-2], ss[len(ss)-2]+1)
		// Otherwise, add the next element to the list so far.
		default:
			ss = append(ss, ss[len(ss)-1]+1)
		}
	}
}

// NonEmpty is ForEach restricted to subsets with at least one entry.
func (S subsets[T]) NonEmpty(do func([]T)) {
	S.ForEach(func(sub []T) {
		if len(sub) > 0 {
			do(sub)
		}
	})
}
