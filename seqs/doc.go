/*
Package seqs annotates flat sequences with two-dimensional grid positions.

A flat sequence often stands for a grid laid out row by row: pixels, cells,
tiles. [IntoGridEnumerate] wraps any pull [Iterator] with a fixed column count
and yields each element as a [Cell] carrying its (row, column) position:

  - **Pull iterators**: [Iterator], [SizeHinter] and [ExactSizeIterator] describe
    what a source can do. Sources include [FromSlice], [Range], [Repeat],
    [FromSeq] and the blocking [Feed].
  - **Grid positions**: [GridEnumerator] for any source and
    [ExactGridEnumerator] for sources of known length.
    [GridEnumerate] does the same for a push iter.Seq.
  - **Composition**: [Map], [Filter], [Take] and [Skip] keep size hints intact so
    an exact length survives a chain of adapters.

# Example

	cells := seqs.IntoGridEnumerate(seqs.FromSlice(pixels), width)
	for pos, px := range cells.All() {
		img.Set(pos.Col, pos.Row, px)
	}

# Size hints

A [GridEnumerator] forwards the bounds of its source unchanged. When the source
reports an exact length, [IntoExactGridEnumerate] returns an enumerator that
reports it too; [ExactLen] performs the same check at runtime.

# Errors

Exhaustion is not an error: Next returns false, and keeps returning false.
Pulling from an enumerator with fewer than one column is a programming error and
panics with an error wrapping [ErrZeroColumns]. Constructing one does not.

# Concurrency

Enumerators and adapters are meant for a single consumer and do no locking.
[Feed] is the exception: producers may Send from other goroutines while the
consumer pulls.
*/
package seqs
