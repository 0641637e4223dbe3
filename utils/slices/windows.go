package slices

// Window is a (previous, current, next) view of a position in a sequence.
type Window[T any] struct {
	Prev, Cur, Next T
	// HasPrev and HasNext are false where Prev and Next hold the sentinel.
	HasPrev, HasNext bool
}

// WindowIter lazily walks a slice, yielding a Window per element.
// Missing neighbours at either end are filled in with the sentinel.
//
//	it := Windows(xs, none)
//	for it.Next() {
//		w := it.Window()
//		...
//	}
type WindowIter[T any] struct {
	xs   []T
	none T
	pos  int
}

// Windows creates an iterator over the windows of xs, using none for
// missing neighbours.
func Windows[T any](xs []T, none T) *WindowIter[T] {
	return &WindowIter[T]{xs: xs, none: none, pos: -1}
}

// Next advances the iterator. It returns false once the sequence is exhausted.
func (it *WindowIter[T]) Next() bool {
	if it.pos < len(it.xs) {
		it.pos++
	}
	return it.pos < len(it.xs)
}

// Window returns the window at the current position.
// It panics if called before Next or after exhaustion.
func (it *WindowIter[T]) Window() Window[T] {
	if it.pos < 0 || it.pos >= len(it.xs) {
		panic("slices: Window called outside of iteration")
	}
	w := Window[T]{Prev: it.none, Cur: it.xs[it.pos], Next: it.none}
	if it.pos > 0 {
		w.Prev, w.HasPrev = it.xs[it.pos-1], true
	}
	if it.pos < len(it.xs)-1 {
		w.Next, w.HasNext = it.xs[it.pos+1], true
	}
	return w
}

// Reset rewinds the iterator to before the first element.
func (it *WindowIter[T]) Reset() {
	it.pos = -1
}

// Collect drains the iterator from its current position.
func (it *WindowIter[T]) Collect() (res []Window[T]) {
	for it.Next() {
		res = append(res, it.Window())
	}
	return
}
