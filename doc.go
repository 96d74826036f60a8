// Package steptime is a small toolkit for discretized, piecewise-uniform
// timelines: a start time followed by segments of equally spaced steps,
// where each segment may use a different step size.
//
// What is in the box?
//
//	A generic library over any integer or floating scalar that brings together:
//		• timeline:  Segment, Model and a value-type Cursor with stepping,
//		             multi-step Advance, Seek and range-over-func iterators
//		• timetable: Table, a single-step traversal state machine with
//		             cached segment bounds and epsilon-tolerant range checks
//		• cmd/timewalk: a CLI that walks or seeks a timeline described by
//		             flags, a config file or TIMEWALK_* variables
//
// Why?
//
//   - Simulation loops that switch step size per phase need no manual
//     phase bookkeeping: Advance carries across segment boundaries.
//   - Replay and lookup code gets O(S) random access by time (Seek) and by
//     step count (Advance), S = number of segments.
//   - Floating timelines compare with a per-kind tolerance (1e-5 for
//     float32, 1e-14 for float64); integer timelines compare exactly.
//
// Layout:
//
//	timeline/       Segment, Model, Cursor, Seek, iterators
//	timetable/      Table, options (WithEpsilon, WithLogger), range predicates
//	cmd/timewalk/   cobra/viper CLI
//	examples/       runnable scenarios
//
// Quick example:
//
//	start=0, segments (3×10), (2×1)
//
//	  0 ── 10 ── 20 ── 30 ─ 31 ─ 32
//	  └──── step 10 ────┘└ step 1 ┘
//
//	tbl := timetable.New(0)
//	_ = tbl.Append(3, 10)
//	_ = tbl.Append(2, 1)
//	for ; !tbl.Finished(); tbl.Advance() {
//		simulate(tbl.Time(), tbl.Delta())
//	}
//
// See the package docs of timeline and timetable for details.
package steptime
