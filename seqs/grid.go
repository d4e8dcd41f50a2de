package seqs

import (
	"fmt"
	"iter"
	"strconv"

	"go.uber.org/zap"
)

// Coord is a row-major grid position.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Cell pairs an element with the grid position it was produced at.
type Cell[T any] struct {
	Coord
	Value T
}

// GridEnumerator is like Enumerate, except it yields (row, column) positions
// assuming the source is laid out in row-major order with a fixed number of columns.
//
// The cursor always holds the position of the next element, never the last one.
// Once the source reports exhaustion the enumerator stays exhausted.
// A GridEnumerator is not safe for concurrent use.
type GridEnumerator[T any] struct {
	source  Iterator[T]
	columns int
	row     int
	col     int
	done    bool
	log     *zap.Logger
}

// IntoGridEnumerate wraps source so every element is paired with its grid position.
// columns is not validated here; pulling from an enumerator with columns < 1 panics
// with an error wrapping ErrZeroColumns.
func IntoGridEnumerate[T any](source Iterator[T], columns int, opts ...GridOption) *GridEnumerator[T] {
	cfg := newGridConfig(opts)
	return &GridEnumerator[T]{
		source:  source,
		columns: columns,
		log:     cfg.log,
	}
}

// Next returns the next element together with its position.
func (g *GridEnumerator[T]) Next() (Cell[T], bool) {
	if g.done {
		return Cell[T]{}, false
	}
	if g.columns <= 0 {
		err := fmt.Errorf("%w: got %d", ErrZeroColumns, g.columns)
		g.log.Error("grid enumerator pulled without columns", zap.Int("columns", g.columns))
		panic(err)
	}

	v, ok := g.source.Next()
	if !ok {
		g.done = true
		g.log.Debug("grid source exhausted",
			zap.Int("columns", g.columns),
			zap.Int("rows", g.rowsTouched()),
			zap.Int("produced", g.row*g.columns+g.col),
		)
		return Cell[T]{}, false
	}

	pos := Coord{Row: g.row, Col: g.col}
	g.col = (g.col + 1) % g.columns
	if g.col == 0 {
		g.row++
	}
	return Cell[T]{Coord: pos, Value: v}, true
}

// SizeHint forwards the source's bounds; the enumerator adds and drops nothing.
func (g *GridEnumerator[T]) SizeHint() (lower, upper int, bounded bool) {
	return SizeHintOf(g.source)
}

// Position returns the coordinate the next element will be produced at.
func (g *GridEnumerator[T]) Position() Coord {
	return Coord{Row: g.row, Col: g.col}
}

// Columns returns the fixed column count.
func (g *GridEnumerator[T]) Columns() int {
	return g.columns
}

// All returns a push view over the remaining cells.
func (g *GridEnumerator[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for {
			c, ok := g.Next()
			if !ok || !yield(c.Coord, c.Value) {
				return
			}
		}
	}
}

// rowsTouched counts the rows that received at least one element.
func (g *GridEnumerator[T]) rowsTouched() int {
	if g.col > 0 {
		return g.row + 1
	}
	return g.row
}

// ExactGridEnumerator is a GridEnumerator over a source of known length.
// It reports the same exact remaining count as its source.
type ExactGridEnumerator[T any] struct {
	*GridEnumerator[T]
	exact ExactSizeIterator[T]
}

// IntoExactGridEnumerate is IntoGridEnumerate for sources that report an exact length.
func IntoExactGridEnumerate[T any](source ExactSizeIterator[T], columns int, opts ...GridOption) *ExactGridEnumerator[T] {
	return &ExactGridEnumerator[T]{
		GridEnumerator: IntoGridEnumerate[T](source, columns, opts...),
		exact:          source,
	}
}

// Len returns the exact number of cells left.
func (g *ExactGridEnumerator[T]) Len() int {
	return g.exact.Len()
}

// GridEnumerate is the push counterpart of IntoGridEnumerate. Each range over the
// result starts at (0,0). It panics with ErrZeroColumns on range if columns < 1.
func GridEnumerate[T any](seq iter.Seq[T], columns int) iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		if columns <= 0 {
			panic(fmt.Errorf("%w: got %d", ErrZeroColumns, columns))
		}
		row, col := 0, 0
		for v := range seq {
			if !yield(Coord{Row: row, Col: col}, v) {
				return
			}
			col++
			if col == columns {
				col = 0
				row++
			}
		}
	}
}
