// SPDX-License-Identifier: MIT

package timetable

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/steptime/timeline"
)

// Table is an owning, single-step cursor over its own timeline.
//
// segments[0] is a zero-length bootstrap segment; pos == 0 means "at start,
// not moved yet". For 1 ≤ pos < len(segments) the invariant
// segStartN ≤ n < segEndN holds: the step leading from point n to n+1
// belongs to segments[pos]. pos == len(segments) means Finished.
type Table[T timeline.Scalar] struct {
	start   T
	current T

	segments  []timeline.Segment[T]
	pos       int
	segStartN int // global step index at which segments[pos] begins
	segEndN   int // global step index at which segments[pos] ends
	n         int // global step index of the current point

	epsilon T
	logger  *zap.Logger
}

// New returns a Table at start with no segments besides the bootstrap one.
func New[T timeline.Scalar](start T, opts ...Option) *Table[T] {
	cfg := gatherOptions(opts...)

	return &Table[T]{
		start:    start,
		current:  start,
		segments: []timeline.Segment[T]{{}},
		epsilon:  resolveEpsilon[T](cfg.epsilon),
		logger:   cfg.logger,
	}
}

// NewWithSegments returns a Table at start with segs appended in order.
// Errors: ErrInvalidSegment (wrapped with the offending index).
func NewWithSegments[T timeline.Scalar](start T, segs []timeline.Segment[T], opts ...Option) (*Table[T], error) {
	t := New(start, opts...)
	if err := t.AppendSegments(segs...); err != nil {
		return nil, err
	}

	return t, nil
}

// Append adds a segment of count steps of size step at the tail. It is legal
// at any time; appending to a Finished table resumes it at the old end time.
// Errors: ErrInvalidSegment.
func (t *Table[T]) Append(count int, step T) error {
	seg, err := timeline.NewSegment(step, count)
	if err != nil {
		return err
	}
	wasFinished := t.Finished()
	t.segments = append(t.segments, seg)
	if wasFinished {
		t.settle()
		t.logger.Debug("finished table resumed by append",
			zap.Int("segment", t.pos),
			zap.Int("step_index", t.n),
		)
	}

	return nil
}

// AppendSegments appends segs in order, stopping at the first invalid one.
// Errors: ErrInvalidSegment (wrapped with the offending index).
func (t *Table[T]) AppendSegments(segs ...timeline.Segment[T]) error {
	for i, seg := range segs {
		if err := t.Append(seg.Count, seg.Step); err != nil {
			return errors.Wrapf(err, "segment %d", i)
		}
	}

	return nil
}

// StartTime returns the start time.
func (t *Table[T]) StartTime() T { return t.start }

// EndTime returns StartTime + Σ Step·Count.
func (t *Table[T]) EndTime() T {
	end := t.start
	for _, seg := range t.segments {
		end += seg.Duration()
	}

	return end
}

// Finished reports whether every step has been taken.
func (t *Table[T]) Finished() bool { return t.pos >= len(t.segments) }

// Started reports whether the current time is past the start time.
func (t *Table[T]) Started() bool { return t.current > t.start }

// AtStart reports whether the current time equals the start time.
func (t *Table[T]) AtStart() bool { return t.current == t.start }

// Time returns the current time, or the maximum value of T once Finished.
// Callers are expected to check Finished first.
func (t *Table[T]) Time() T {
	if t.Finished() {
		return timeline.MaxValue[T]()
	}

	return t.current
}

// Delta returns the step the next Advance applies: zero once Finished, the
// first appended segment's step (or zero) before the first Advance, and the
// current segment's step otherwise.
func (t *Table[T]) Delta() T {
	var zero T
	switch {
	case t.Finished():
		return zero
	case t.pos == 0:
		if len(t.segments) > 1 {
			return t.segments[1].Step
		}
		return zero
	default:
		return t.segments[t.pos].Step
	}
}

// StepIndex returns the number of steps between the start and the current
// point.
func (t *Table[T]) StepIndex() int { return t.n }

// Epsilon returns the tolerance used by the range predicates.
func (t *Table[T]) Epsilon() T { return t.epsilon }

// Data returns a copy of the segment list, bootstrap segment included.
func (t *Table[T]) Data() []timeline.Segment[T] {
	out := make([]timeline.Segment[T], len(t.segments))
	copy(out, t.segments)

	return out
}

// Advance moves to the next point. It is a no-op once Finished.
func (t *Table[T]) Advance() {
	if t.Finished() {
		return
	}
	if t.pos == 0 {
		t.nextSegment()
		if t.Finished() {
			return
		}
	}

	t.current += t.segments[t.pos].Step
	t.n++
	if t.n >= t.segEndN {
		t.nextSegment()
	}
}

// Retreat moves to the previous point. It is a no-op at the start point
// (step index 0), including inside a leading run of zero steps.
// Retreating from Finished lands on the last point, EndTime minus the last
// step; reaching step index 0 snaps the current time to StartTime.
func (t *Table[T]) Retreat() {
	if t.pos == 0 || t.n == 0 {
		t.logger.Debug("retreat clamped at start", zap.Any("time", t.current))
		return
	}

	fromEnd := t.Finished()
	if fromEnd {
		t.prevSegment()
		t.n = t.segEndN
	}
	t.n--
	for t.pos > 1 && t.n < t.segStartN {
		t.prevSegment()
	}
	if t.n <= 0 {
		t.Reset()
		return
	}

	step := t.segments[t.pos].Step
	if fromEnd {
		t.current = t.EndTime() - step
	} else {
		t.current -= step
	}
}

// Reset returns to the start time. Segments are kept.
func (t *Table[T]) Reset() {
	t.current = t.start
	t.pos = 0
	t.n = 0
	t.segStartN = 0
	t.segEndN = 0
}

// Clear drops every appended segment, keeps the bootstrap one and resets the
// start time to zero. Callers usually follow with SetStartTime.
func (t *Table[T]) Clear() {
	var zero T
	t.segments = t.segments[:1]
	t.start = zero
	t.Reset()
	t.logger.Debug("table cleared")
}

// SetStartTime moves the start time to start, keeping the elapsed offset of
// the current time.
func (t *Table[T]) SetStartTime(start T) {
	t.current += start - t.start
	t.start = start
	t.logger.Debug("start time changed", zap.Any("start", start), zap.Any("time", t.current))
}

// Clone returns an independent copy sharing no segment storage.
func (t *Table[T]) Clone() *Table[T] {
	c := *t
	c.segments = t.Data()

	return &c
}

// Model returns a snapshot of the table's timeline, bootstrap segment
// excluded, for random access with a timeline.Cursor. Note that a Cursor
// also visits the end time as a point.
func (t *Table[T]) Model() (*timeline.Model[T], error) {
	return timeline.NewModel(t.start, t.segments[1:]...)
}

// Cursor returns a Cursor over Model() positioned at the current point, or
// at End once Finished.
func (t *Table[T]) Cursor() (timeline.Cursor[T], error) {
	m, err := t.Model()
	if err != nil {
		return timeline.Cursor[T]{}, err
	}
	if t.Finished() {
		return timeline.End(m), nil
	}

	return timeline.Begin(m).Advance(t.n), nil
}

// nextSegment leaves segments[pos] and enters the next one that still has
// steps ahead of n.
func (t *Table[T]) nextSegment() {
	t.pos++
	t.segStartN = t.segEndN
	t.settle()
	t.logger.Debug("segment advanced",
		zap.Int("segment", t.pos),
		zap.Int("step_index", t.n),
		zap.Bool("finished", t.Finished()),
	)
}

// settle computes the bounds of segments[pos] and skips segments that end
// at or before n.
func (t *Table[T]) settle() {
	for !t.Finished() {
		t.segEndN = t.segStartN + t.segments[t.pos].Count
		if t.n < t.segEndN {
			return
		}
		t.pos++
		t.segStartN = t.segEndN
	}
}

// prevSegment steps pos back by one and restores its bounds.
func (t *Table[T]) prevSegment() {
	if t.pos == 0 {
		return
	}
	t.pos--
	t.segEndN = t.segStartN
	t.segStartN -= t.segments[t.pos].Count
	t.logger.Debug("segment retreated",
		zap.Int("segment", t.pos),
		zap.Int("step_index", t.n),
	)
}
