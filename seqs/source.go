package seqs

import "iter"

// SliceIterator pulls the elements of a slice in order.
type SliceIterator[T any] struct {
	s   []T
	pos int
}

func FromSlice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s}
}

func (it *SliceIterator[T]) Next() (T, bool) {
	if it.pos >= len(it.s) {
		var zero T
		return zero, false
	}
	v := it.s[it.pos]
	it.pos++
	return v, true
}

func (it *SliceIterator[T]) Len() int {
	return len(it.s) - it.pos
}

// RangeIterator pulls start, start+step, ... up to but excluding end.
// A zero step yields nothing.
type RangeIterator struct {
	next, end, step int
}

func Range(start, end, step int) *RangeIterator {
	return &RangeIterator{next: start, end: end, step: step}
}

func (r *RangeIterator) Next() (int, bool) {
	if r.Len() == 0 {
		return 0, false
	}
	v := r.next
	r.next += r.step
	return v, true
}

func (r *RangeIterator) Len() int {
	switch {
	case r.step > 0 && r.next < r.end:
		return (r.end - r.next + r.step - 1) / r.step
	case r.step < 0 && r.next > r.end:
		return (r.next - r.end - r.step - 1) / -r.step
	}
	return 0
}

// RepeatIterator pulls the same value a fixed number of times.
type RepeatIterator[T any] struct {
	value T
	left  int
}

func Repeat[T any](value T, count int) *RepeatIterator[T] {
	return &RepeatIterator[T]{value: value, left: max(count, 0)}
}

func (r *RepeatIterator[T]) Next() (T, bool) {
	if r.left == 0 {
		var zero T
		return zero, false
	}
	r.left--
	return r.value, true
}

func (r *RepeatIterator[T]) Len() int {
	return r.left
}

// SeqIterator pulls from a push sequence through iter.Pull.
// Its length is unknown. Call Stop if the sequence is abandoned before it is exhausted.
type SeqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

func FromSeq[T any](seq iter.Seq[T]) *SeqIterator[T] {
	next, stop := iter.Pull(seq)
	return &SeqIterator[T]{next: next, stop: stop}
}

func (s *SeqIterator[T]) Next() (T, bool) {
	return s.next()
}

// Stop releases the underlying sequence. Next reports exhaustion afterwards.
func (s *SeqIterator[T]) Stop() {
	s.stop()
}
