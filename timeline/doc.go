// SPDX-License-Identifier: MIT

// Package timeline models a discretized timeline: an ordered list of uniform
// segments (step size × step count) anchored at a start time, and a
// random-access Cursor that walks, seeks and offsets over it.
//
// What:
//
//   - Segment[T] is a run of Count increments of size Step.
//   - Model[T] is a start time plus an ordered list of segments. Segment i
//     begins exactly where segment i-1 ends; EndTime = Start + Σ Step·Count.
//   - Cursor[T] is a value-type locator (segment, offset) into a *Model[T].
//     It never mutates the model and never caches time values: Value()
//     recomputes the time from the position on every call.
//
// Points & positions:
//
//	segments: [(step=1, count=5), (step=2, count=5)], start=10
//
//	  10  11  12  13  14  15  17  19  21  23  25
//	 (0,0)(0,1)        ...(0,5)(1,1)        ...(1,5)  end=(2,1)
//
//   - Begin is (0,0). The point shared by two adjacent segments is stored as
//     (s, Count_s), the end of the earlier one.
//   - End is the sentinel (len(segments), 1); dereferencing it fails with
//     ErrOutOfRange.
//   - A model with N total steps has N+1 points; an empty model has none.
//
// Stepping:
//
//   - Next / Prev / Advance(n) return a new Cursor. Offsets are carried or
//     borrowed one segment at a time, so a jump costs O(segments), not O(n).
//   - Moving past either boundary saturates: before Begin stays at Begin,
//     past the last point becomes End.
//
// Seeking:
//
//   - Seek(m, t) picks the first segment whose closed interval
//     [segStart, segStart+Step·Count] contains t, so the earlier segment wins
//     on a shared boundary, and returns the greatest point ≤ t inside it.
//     t before Start or after EndTime yields End.
//
// Complexity:
//
//   - Value, Advance, Seek, Index: O(S) where S = number of segments.
//   - Compare, Equal, IsEnd:       O(1).
//
// Errors:
//
//   - ErrInvalidSegment: negative count, negative or non-finite step.
//   - ErrOutOfRange:     dereference of End, bad segment index or position.
//
// Concurrency:
//
//	A Model is safe for concurrent read-only traversal by any number of
//	Cursors. Append must not race with traversal.
package timeline
