// SPDX-License-Identifier: MIT

package timeline

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Model is a start time plus an ordered list of segments.
//
// A Model is read-only for the Cursors derived from it; Append is the only
// mutator and must not be called while Cursors are in use.
// For the read-only methods a nil *Model behaves as an empty timeline
// starting at zero; Append on a nil *Model returns ErrNilModel.
type Model[T Scalar] struct {
	start    T
	segments []Segment[T]
}

// NewModel builds a Model from a start time and segments, validating each.
//
// Errors: ErrInvalidSegment (wrapped with the offending index).
// Complexity: O(S).
func NewModel[T Scalar](start T, segments ...Segment[T]) (*Model[T], error) {
	m := &Model[T]{start: start, segments: make([]Segment[T], 0, len(segments))}
	for i, seg := range segments {
		if err := seg.Validate(); err != nil {
			return nil, errors.Wrapf(err, "segment %d", i)
		}
		m.segments = append(m.segments, seg)
	}

	return m, nil
}

// Start returns the time of the first point.
func (m *Model[T]) Start() T {
	if m == nil {
		var zero T
		return zero
	}

	return m.start
}

// Len returns the number of segments.
func (m *Model[T]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.segments)
}

// Segment returns the segment at index i.
// Errors: ErrOutOfRange if i ∉ [0, Len()).
func (m *Model[T]) Segment(i int) (Segment[T], error) {
	if i < 0 || i >= m.Len() {
		return Segment[T]{}, errors.Wrapf(ErrOutOfRange, "segment index %d, len %d", i, m.Len())
	}

	return m.segments[i], nil
}

// Segments returns a copy of the segment list.
func (m *Model[T]) Segments() []Segment[T] {
	out := make([]Segment[T], m.Len())
	if m != nil {
		copy(out, m.segments)
	}

	return out
}

// Append adds a segment at the tail.
// Errors: ErrNilModel, ErrInvalidSegment.
func (m *Model[T]) Append(step T, count int) error {
	if m == nil {
		return errors.Wrapf(ErrNilModel, "append %d×%v", count, step)
	}
	seg, err := NewSegment(step, count)
	if err != nil {
		return err
	}
	m.segments = append(m.segments, seg)

	return nil
}

// TotalDuration returns Σ Step·Count, zero for an empty model.
func (m *Model[T]) TotalDuration() T {
	var total T
	for i := 0; i < m.Len(); i++ {
		total += m.segments[i].Duration()
	}

	return total
}

// EndTime returns Start() + TotalDuration().
func (m *Model[T]) EndTime() T {
	return m.Start() + m.TotalDuration()
}

// Steps returns Σ Count.
func (m *Model[T]) Steps() int {
	n := 0
	for i := 0; i < m.Len(); i++ {
		n += m.segments[i].Count
	}

	return n
}

// Points returns the number of points a Cursor visits from Begin to End:
// Steps()+1 for a model with segments, 0 otherwise.
func (m *Model[T]) Points() int {
	if m.Len() == 0 {
		return 0
	}

	return m.Steps() + 1
}

// segmentStart returns the time at which segment s begins.
// The accumulation order matches Seek so both produce identical values.
func (m *Model[T]) segmentStart(s int) T {
	t := m.start
	for j := 0; j < s; j++ {
		t += m.segments[j].Duration()
	}

	return t
}

// endPosition is the canonical End sentinel.
func (m *Model[T]) endPosition() Position {
	return Position{Segment: m.Len(), Offset: 1}
}

// shift moves p by n steps and returns the canonical result.
//
// Forward, any offset beyond the current segment's Count is carried into the
// next segment; backward, an offset below 1 borrows the previous segment's
// Count. Each loop iteration consumes a whole segment, so the cost is O(S)
// regardless of |n|. Results saturate at (0,0) and at the End sentinel.
// shift(p, 0) normalizes p.
func (m *Model[T]) shift(p Position, n int) Position {
	last := m.Len()
	if last == 0 {
		return m.endPosition()
	}

	s, o := p.Segment, p.Offset
	if s >= last {
		s, o = last, 1
	}
	// o ≥ 0, so only a forward move can overflow.
	if n > 0 && o > math.MaxInt-n {
		return m.endPosition()
	}
	o += n

	for s < last && o > m.segments[s].Count {
		o -= m.segments[s].Count
		s++
	}
	for s > 0 && o < 1 {
		s--
		o += m.segments[s].Count
	}

	if s >= last {
		return m.endPosition()
	}
	if o < 0 {
		o = 0
	}

	return Position{Segment: s, Offset: o}
}

// index returns the global step index of a canonical position.
func (m *Model[T]) index(p Position) int {
	if p.Segment >= m.Len() {
		return m.Steps() + 1
	}
	n := p.Offset
	for j := 0; j < p.Segment; j++ {
		n += m.segments[j].Count
	}

	return n
}
