package seqs

import "errors"

var (
	// ErrZeroColumns is the panic value (wrapped) raised when a grid enumerator
	// with fewer than one column is pulled.
	ErrZeroColumns = errors.New("seqs: grid enumerator needs at least one column")
	// ErrFeedClosed is returned when sending to a closed Feed.
	ErrFeedClosed = errors.New("seqs: feed is closed")
)
