package seqs

// Pull adapters for composing with IntoGridEnumerate. Each one forwards size
// hints so an exact upstream length survives wherever the adapter keeps it exact.

type mapIterator[T, R any] struct {
	src       Iterator[T]
	transform func(T) R
	done      bool
}

// Map applies transform to each element pulled from it.
func Map[T, R any](it Iterator[T], transform func(T) R) Iterator[R] {
	return &mapIterator[T, R]{src: it, transform: transform}
}

func (m *mapIterator[T, R]) Next() (R, bool) {
	if !m.done {
		if v, ok := m.src.Next(); ok {
			return m.transform(v), true
		}
		m.done = true
	}
	var zero R
	return zero, false
}

func (m *mapIterator[T, R]) SizeHint() (int, int, bool) {
	if m.done {
		return 0, 0, true
	}
	return SizeHintOf(m.src)
}

type filterIterator[T any] struct {
	src       Iterator[T]
	predicate func(T) bool
	done      bool
}

// Filter pulls only the elements of it that satisfy predicate.
func Filter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return &filterIterator[T]{src: it, predicate: predicate}
}

func (f *filterIterator[T]) Next() (T, bool) {
	for !f.done {
		v, ok := f.src.Next()
		if !ok {
			f.done = true
			break
		}
		if f.predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (f *filterIterator[T]) SizeHint() (int, int, bool) {
	if f.done {
		return 0, 0, true
	}
	_, upper, bounded := SizeHintOf(f.src)
	return 0, upper, bounded
}

type takeIterator[T any] struct {
	src  Iterator[T]
	left int
}

// Take pulls at most n elements from it.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	return &takeIterator[T]{src: it, left: max(n, 0)}
}

func (t *takeIterator[T]) Next() (T, bool) {
	if t.left > 0 {
		if v, ok := t.src.Next(); ok {
			t.left--
			return v, true
		}
		t.left = 0
	}
	var zero T
	return zero, false
}

func (t *takeIterator[T]) SizeHint() (int, int, bool) {
	if t.left == 0 {
		return 0, 0, true
	}
	lower, upper, bounded := SizeHintOf(t.src)
	if !bounded {
		upper = t.left
	}
	return min(lower, t.left), min(upper, t.left), true
}

type skipIterator[T any] struct {
	src  Iterator[T]
	skip int
	done bool
}

// Skip drops the first n elements of it.
func Skip[T any](it Iterator[T], n int) Iterator[T] {
	return &skipIterator[T]{src: it, skip: max(n, 0)}
}

func (s *skipIterator[T]) Next() (T, bool) {
	for !s.done {
		v, ok := s.src.Next()
		if !ok {
			s.done = true
			break
		}
		if s.skip > 0 {
			s.skip--
			continue
		}
		return v, true
	}
	var zero T
	return zero, false
}

func (s *skipIterator[T]) SizeHint() (int, int, bool) {
	if s.done {
		return 0, 0, true
	}
	lower, upper, bounded := SizeHintOf(s.src)
	return max(lower-s.skip, 0), max(upper-s.skip, 0), bounded
}
