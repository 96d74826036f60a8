// SPDX-License-Identifier: MIT

package timeline

import "github.com/cockroachdb/errors"

// Cursor is a random-access locator into a Model.
//
// Cursors are plain values: stepping methods return a new Cursor and leave
// the receiver untouched. Two Cursors are Equal only if they refer to the
// same *Model and hold the same Position. The Model must outlive every
// Cursor derived from it and must not be appended to while they are in use.
type Cursor[T Scalar] struct {
	model *Model[T]
	pos   Position
}

// Begin returns a Cursor at the first point, or End(m) if m has no segments.
func Begin[T Scalar](m *Model[T]) Cursor[T] {
	if m.Len() == 0 {
		return End(m)
	}

	return Cursor[T]{model: m}
}

// End returns the one-past-the-last sentinel (len(segments), 1).
func End[T Scalar](m *Model[T]) Cursor[T] {
	return Cursor[T]{model: m, pos: m.endPosition()}
}

// At returns a Cursor at p after validating and normalizing it.
// Accepted positions are (s, o) with 0 ≤ s < Len(), 0 ≤ o ≤ Count_s, and the
// End sentinel (Len(), 1).
//
// Errors: ErrOutOfRange for anything else.
func At[T Scalar](m *Model[T], p Position) (Cursor[T], error) {
	last := m.Len()
	if p.Segment == last && p.Offset == 1 {
		return End(m), nil
	}
	if p.Segment < 0 || p.Segment >= last || p.Offset < 0 || p.Offset > m.segments[p.Segment].Count {
		return Cursor[T]{}, errors.Wrapf(ErrOutOfRange, "position %v", p)
	}

	return Cursor[T]{model: m, pos: m.shift(p, 0)}, nil
}

// Model returns the model the cursor points into.
func (c Cursor[T]) Model() *Model[T] { return c.model }

// Position returns the canonical (segment, offset) pair.
func (c Cursor[T]) Position() Position { return c.pos }

// IsEnd reports whether c is the End sentinel.
func (c Cursor[T]) IsEnd() bool { return c.pos.Segment >= c.model.Len() }

// Value returns the time at the cursor:
//
//	Start + Σ_{j<s} Step_j·Count_j + Step_s·o
//
// The value is recomputed from the position on each call.
// Errors: ErrOutOfRange at End.
func (c Cursor[T]) Value() (T, error) {
	if c.IsEnd() {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "dereference of end position %v", c.pos)
	}
	seg := c.model.segments[c.pos.Segment]

	return c.model.segmentStart(c.pos.Segment) + seg.Step*T(c.pos.Offset), nil
}

// Delta returns the step Next would add: the current segment's step, or the
// step of the next non-empty segment when c sits on a segment boundary.
// It is zero at the last point and at End.
func (c Cursor[T]) Delta() T {
	var zero T
	if c.IsEnd() {
		return zero
	}
	segs := c.model.segments
	if c.pos.Offset < segs[c.pos.Segment].Count {
		return segs[c.pos.Segment].Step
	}
	for s := c.pos.Segment + 1; s < len(segs); s++ {
		if segs[s].Count > 0 {
			return segs[s].Step
		}
	}

	return zero
}

// Next moves one step forward. Next of the last point is End; Next of End
// is End.
func (c Cursor[T]) Next() Cursor[T] { return c.Advance(1) }

// Prev moves one step backward. Prev of End is the last point; Prev of
// Begin is Begin.
func (c Cursor[T]) Prev() Cursor[T] { return c.Advance(-1) }

// Advance moves n steps (n may be negative), carrying across as many
// segment boundaries as needed. The result saturates at Begin and End.
// Complexity: O(S), independent of |n|.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	c.pos = c.model.shift(c.pos, n)
	return c
}

// Index returns the global step index of c: 0 at Begin, Steps() at the last
// point and Steps()+1 at End.
func (c Cursor[T]) Index() int {
	return c.model.index(c.pos)
}

// Distance returns o.Index() - c.Index(). It is only meaningful for cursors
// of the same model.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	return o.Index() - c.Index()
}

// Equal reports whether c and o refer to the same model and position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.model == o.model && c.pos == o.pos
}

// Compare orders cursors lexicographically by (Segment, Offset) and returns
// -1, 0 or +1. The model is not consulted.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	switch {
	case c.pos.Segment < o.pos.Segment:
		return -1
	case c.pos.Segment > o.pos.Segment:
		return 1
	case c.pos.Offset < o.pos.Offset:
		return -1
	case c.pos.Offset > o.pos.Offset:
		return 1
	default:
		return 0
	}
}

// Less reports whether c orders before o.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.Compare(o) < 0 }
