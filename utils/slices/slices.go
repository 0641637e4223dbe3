package slices

// Find searches for a given element in a slice of elements of the same type.
// It relaxes comparison between primitives with underlying types.
func Find[E ~[]T, T any](l E, pred func(T) bool) (T, bool) {
	if i := Index(l, pred); i >= 0 {
		return l[i], true
	}
	var x T
	return x, false
}

// Index returns the position of the first element satisfying pred, or -1.
func Index[E ~[]T, T any](l E, pred func(T) bool) int {
	for i, x := range l {
		if pred(x) {
			return i
		}
	}
	return -1
}

// Remove deletes the element at position i, preserving the order of the rest.
// The backing array of l is reused.
func Remove[E ~[]T, T any](l E, i int) E {
	copy(l[i:], l[i+1:])
	var zero T
	l[len(l)-1] = zero
	return l[:len(l)-1]
}

func OneOf[T comparable](x T, xs ...T) bool {
	for _, x2 := range xs {
		if x == x2 {
			return true
		}
	}

	return false
}
