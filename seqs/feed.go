package seqs

import "sync"

// Feed is a bounded FIFO hand-off from producer goroutines to a single puller.
// Next blocks until a value is sent or the feed is closed; after Close the
// buffered values are still delivered before Next reports exhaustion.
type Feed[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	buf      []T
	head     int
	size     int
	closed   bool
}

// NewFeed creates a Feed holding at most limit unread values. limit < 1 means 1.
func NewFeed[T any](limit int) *Feed[T] {
	f := &Feed[T]{buf: make([]T, max(limit, 1))}
	f.notEmpty = sync.NewCond(&f.mu)
	f.notFull = sync.NewCond(&f.mu)
	return f
}

// Send blocks while the feed is full. It returns ErrFeedClosed if the feed is
// or becomes closed before the value is stored.
func (f *Feed[T]) Send(v T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for !f.closed && f.size == len(f.buf) {
		f.notFull.Wait()
	}
	if f.closed {
		return ErrFeedClosed
	}
	f.push(v)
	return nil
}

// TrySend stores v if there is room and reports whether it did.
func (f *Feed[T]) TrySend(v T) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false, ErrFeedClosed
	}
	if f.size == len(f.buf) {
		return false, nil
	}
	f.push(v)
	return true, nil
}

func (f *Feed[T]) push(v T) {
	f.buf[(f.head+f.size)%len(f.buf)] = v
	f.size++
	f.notEmpty.Signal()
}

// Close ends the sequence. Closing twice is a no-op.
func (f *Feed[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.notEmpty.Broadcast()
	f.notFull.Broadcast()
}

func (f *Feed[T]) Next() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for !f.closed && f.size == 0 {
		f.notEmpty.Wait()
	}
	var zero T
	if f.size == 0 {
		return zero, false
	}
	v := f.buf[f.head]
	f.buf[f.head] = zero
	f.head = (f.head + 1) % len(f.buf)
	f.size--
	f.notFull.Signal()
	return v, true
}

// SizeHint reports the buffered count as a lower bound. Once closed that count is exact.
func (f *Feed[T]) SizeHint() (lower, upper int, bounded bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return f.size, f.size, true
	}
	return f.size, 0, false
}
