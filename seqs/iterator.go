package seqs

import "iter"

// Iterator is a pull-based sequence. Next returns the next element and true,
// or the zero value and false once the sequence is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizeHinter reports bounds on the number of elements an iterator has left.
// lower is always a valid lower bound. upper is only meaningful when bounded is true.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// ExactSizeIterator is an Iterator that knows exactly how many elements remain.
type ExactSizeIterator[T any] interface {
	Iterator[T]
	Len() int
}

type lener interface {
	Len() int
}

// SizeHintOf returns the remaining-count bounds of v.
// A SizeHinter is asked directly, a type with Len reports (n, n, true),
// anything else reports (0, 0, false).
func SizeHintOf(v any) (lower, upper int, bounded bool) {
	switch s := v.(type) {
	case SizeHinter:
		return s.SizeHint()
	case lener:
		n := s.Len()
		return n, n, true
	}
	return 0, 0, false
}

// ExactLen reports the exact remaining count of v if v can provide one,
// either through Len or through a size hint whose bounds coincide.
func ExactLen(v any) (int, bool) {
	if s, ok := v.(lener); ok {
		return s.Len(), true
	}
	if s, ok := v.(SizeHinter); ok {
		if lower, upper, bounded := s.SizeHint(); bounded && lower == upper {
			return lower, true
		}
	}
	return 0, false
}

// Collect drains it into a slice, pre-sized from its lower size bound.
func Collect[T any](it Iterator[T]) []T {
	lower, _, _ := SizeHintOf(it)
	out := make([]T, 0, lower)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// ToSeq exposes it as a push sequence. Ranging consumes it; a second range
// continues where the first one stopped.
func ToSeq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
