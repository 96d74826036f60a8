// SPDX-License-Identifier: MIT

// Package timetable provides Table, a self-advancing cursor that owns its
// timeline and walks it one step at a time, answering epsilon-tolerant
// temporal range queries along the way.
//
// What:
//
//   - A Table holds a start time, an append-only list of segments (count ×
//     step) and a current position that moves by single steps only.
//   - It caches the current time and the cumulative step indices bounding the
//     current segment, so Advance, Retreat, Time and Delta are O(1)
//     (amortized over empty segments).
//   - Range predicates (Between, InPast, InFuture, ...) widen their bounds by
//     an epsilon for floating scalar types and are exact for integer types.
//
// Typical loop:
//
//	tbl, _ := timetable.NewWithSegments(0.0, []timeline.Segment[float64]{
//		{Step: 0.1, Count: 10},
//		{Step: 0.2, Count: 5},
//	})
//	for !tbl.Finished() {
//		simulate(tbl.Time(), tbl.Delta())
//		tbl.Advance()
//	}
//
// Points:
//
//	The table visits Σ Count points: the start time and every point strictly
//	before EndTime. Each visited point carries the Delta that leads to the
//	next one, so the steps of a full walk cover [Start, End] exactly once.
//	After Σ Count advances the table is Finished; Time then returns the
//	scalar type's maximum value and Delta returns zero.
//
// Bootstrap segment:
//
//	Index 0 of Data() is a zero-length segment that exists before anything
//	is appended; Clear keeps it. While the table has not moved (position 0),
//	Delta reports the step of the first appended segment.
//
// Epsilon policy:
//
//   - float32 kinds: at least 1e-5; float64 kinds: at least 1e-14.
//   - integer kinds: always 0.
//   - WithEpsilon raises the tolerance; values below the minimum are ignored.
//
// Errors:
//
//   - ErrInvalidSegment: Append with a negative count or bad step.
//
// Concurrency:
//
//	A Table is a single mutable cursor and is not safe for concurrent use.
//	Guard it externally if it is shared.
package timetable
