// SPDX-License-Identifier: MIT

package timeline

// Seek returns a Cursor at the greatest point ≤ t.
//
// Algorithm:
//  1. If t < Start (or the model is empty) return End.
//  2. Walk segments left to right with a running segment start cs.
//     The first segment whose closed interval [cs, cs+Step·Count] contains t
//     is selected; on a boundary shared by two segments the earlier wins.
//  3. offset = ⌊(t-cs)/Step⌋ clamped to [0, Count], then nudged by at most
//     one step so that cs+Step·offset is the greatest computed point ≤ t.
//     This absorbs floating division error and guarantees
//     Seek(m, c.Value()) equals c for every non-End cursor c.
//  4. A zero-step segment yields offset 0.
//  5. No containing segment (t > EndTime) returns End.
//
// Complexity: O(S).
func Seek[T Scalar](m *Model[T], t T) Cursor[T] {
	if m.Len() == 0 || t < m.start {
		return End(m)
	}

	cs := m.start
	for s, seg := range m.segments {
		ce := cs + seg.Duration()
		if cs <= t && t <= ce {
			o := offsetWithin(cs, t, seg)
			return Cursor[T]{model: m, pos: m.shift(Position{Segment: s, Offset: o}, 0)}
		}
		cs = ce
	}

	return End(m)
}

// offsetWithin returns the in-segment offset of the greatest point ≤ t,
// given cs ≤ t ≤ cs+seg.Duration().
func offsetWithin[T Scalar](cs, t T, seg Segment[T]) int {
	if seg.Step == 0 {
		return 0
	}

	o := stepsWithin(t-cs, seg.Step)
	if o < 0 {
		o = 0
	}
	if o > seg.Count {
		o = seg.Count
	}
	if o < seg.Count && cs+seg.Step*T(o+1) <= t {
		o++
	}
	if o > 0 && cs+seg.Step*T(o) > t {
		o--
	}

	return o
}
