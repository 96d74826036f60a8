// SPDX-License-Identifier: MIT

package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steptime/timeline"
	"github.com/katalvlaran/steptime/timetable"
)

type rangeCase[T timeline.Scalar] struct {
	name string
	pred func(*timetable.Table[T], T) bool
	v    T
	want bool
}

func runRangeCases[T timeline.Scalar](t *testing.T, tbl *timetable.Table[T], cases []rangeCase[T]) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pred(tbl, tc.v), "%s(%v)", tc.name, tc.v)
		})
	}
}

// TestRanges_Float64 checks closed ranges widened by the float64 minimum.
func TestRanges_Float64(t *testing.T) {
	tbl := single(t)
	startEnd := (*timetable.Table[float64]).BetweenStartEnd
	startNow := (*timetable.Table[float64]).BetweenStartNow
	nowEnd := (*timetable.Table[float64]).BetweenNowEnd

	runRangeCases(t, tbl, []rangeCase[float64]{
		{"StartEnd/BeforeStart", startEnd, 0.99999, false},
		{"StartEnd/Start", startEnd, 1.0, true},
		{"StartEnd/End", startEnd, 2.0, true},
		{"StartEnd/AfterEnd", startEnd, 2.000001, false},
	})

	tbl.Advance()
	tbl.Advance()
	runRangeCases(t, tbl, []rangeCase[float64]{
		{"StartNow/JustBeforeNow", startNow, 1.1999999, true},
		{"StartNow/Now", startNow, 1.2, true},
		{"StartNow/JustAfterNow", startNow, 1.200001, false},
		{"StartNow/End", startNow, 2.0, false},
		{"NowEnd/JustBeforeNow", nowEnd, 1.1999999, false},
		{"NowEnd/Now", nowEnd, 1.2, true},
		{"NowEnd/End", nowEnd, 2.0, true},
		{"NowEnd/AfterEnd", nowEnd, 2.0000001, false},
	})
}

// TestRanges_Float32 checks the coarser float32 tolerance.
func TestRanges_Float32(t *testing.T) {
	tbl, err := timetable.NewWithSegments[float32](1.0, []timeline.Segment[float32]{{Step: 0.1, Count: 10}})
	require.NoError(t, err)
	assert.Equal(t, float32(timetable.MinEpsilonFloat32), tbl.Epsilon())

	startEnd := (*timetable.Table[float32]).BetweenStartEnd
	startNow := (*timetable.Table[float32]).BetweenStartNow
	nowEnd := (*timetable.Table[float32]).BetweenNowEnd

	runRangeCases(t, tbl, []rangeCase[float32]{
		{"StartEnd/BeforeStart", startEnd, 0.9999, false},
		{"StartEnd/Start", startEnd, 1.0, true},
		{"StartEnd/End", startEnd, 2.0, true},
		{"StartEnd/AfterEnd", startEnd, 2.0001, false},
	})

	tbl.Advance()
	tbl.Advance()
	runRangeCases(t, tbl, []rangeCase[float32]{
		{"StartNow/BeforeNow", startNow, 1.1999, true},
		{"StartNow/Now", startNow, 1.2, true},
		{"StartNow/AfterNow", startNow, 1.2001, false},
		{"StartNow/End", startNow, 2.0, false},
		{"NowEnd/BeforeNow", nowEnd, 1.1999, false},
		{"NowEnd/Now", nowEnd, 1.2, true},
		{"NowEnd/End", nowEnd, 2.0, true},
		{"NowEnd/AfterEnd", nowEnd, 2.0001, false},
	})
}

// TestRanges_Int checks exact comparisons for integer tables.
func TestRanges_Int(t *testing.T) {
	tbl, err := timetable.NewWithSegments(1, []timeline.Segment[int]{{Step: 1, Count: 10}})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Epsilon())

	startEnd := (*timetable.Table[int]).BetweenStartEnd
	startNow := (*timetable.Table[int]).BetweenStartNow
	nowEnd := (*timetable.Table[int]).BetweenNowEnd

	runRangeCases(t, tbl, []rangeCase[int]{
		{"StartEnd/BeforeStart", startEnd, 0, false},
		{"StartEnd/Start", startEnd, 1, true},
		{"StartEnd/End", startEnd, 11, true},
		{"StartEnd/AfterEnd", startEnd, 12, false},
	})

	tbl.Advance()
	tbl.Advance()
	runRangeCases(t, tbl, []rangeCase[int]{
		{"StartNow/BeforeNow", startNow, 2, true},
		{"StartNow/Now", startNow, 3, true},
		{"StartNow/AfterNow", startNow, 4, false},
		{"StartNow/AfterEnd", startNow, 12, false},
		{"NowEnd/BeforeNow", nowEnd, 2, false},
		{"NowEnd/Now", nowEnd, 3, true},
		{"NowEnd/End", nowEnd, 11, true},
		{"NowEnd/AfterEnd", nowEnd, 12, false},
	})
}

// TestRanges_PastFuture checks the half-open predicates around the current
// time.
func TestRanges_PastFuture(t *testing.T) {
	tbl, err := timetable.NewWithSegments(1, []timeline.Segment[int]{{Step: 1, Count: 10}})
	require.NoError(t, err)
	tbl.Advance()
	tbl.Advance()

	inPast := (*timetable.Table[int]).InPast
	inFuture := (*timetable.Table[int]).InFuture
	runRangeCases(t, tbl, []rangeCase[int]{
		{"Past/BeforeStart", inPast, 0, false},
		{"Past/Start", inPast, 1, true},
		{"Past/BeforeNow", inPast, 2, true},
		{"Past/Now", inPast, 3, false},
		{"Future/Now", inFuture, 3, false},
		{"Future/AfterNow", inFuture, 4, true},
		{"Future/End", inFuture, 11, true},
		{"Future/AfterEnd", inFuture, 12, false},
	})
}

// TestRanges_FloatTolerance checks that the start and end bounds are
// widened by epsilon while the current time stays exact.
func TestRanges_FloatTolerance(t *testing.T) {
	const eps = 1e-3
	tbl := single(t, timetable.WithEpsilon(eps))
	tbl.Advance()
	tbl.Advance()
	now, start, end := tbl.Time(), tbl.StartTime(), tbl.EndTime()

	assert.True(t, tbl.InPast(start-eps/2))
	assert.False(t, tbl.InPast(start-2*eps))
	assert.False(t, tbl.InPast(now))
	assert.True(t, tbl.InPast(now-eps/2), "now is not widened")

	assert.True(t, tbl.InFuture(end+eps/2))
	assert.False(t, tbl.InFuture(end+2*eps))
	assert.False(t, tbl.InFuture(now))
	assert.True(t, tbl.InFuture(now+eps/2), "now is not widened")

	assert.True(t, tbl.BetweenStartEnd(end+eps/2))
	assert.False(t, tbl.BetweenStartEnd(end+2*eps))
	assert.False(t, tbl.BetweenStartEnd(start-2*eps))
}

// TestRanges_DefaultFloat64Tolerance checks the 1e-14 minimum at both ends.
func TestRanges_DefaultFloat64Tolerance(t *testing.T) {
	tbl := single(t)
	eps := timetable.MinEpsilonFloat64
	start, end := tbl.StartTime(), tbl.EndTime()

	assert.True(t, tbl.BetweenStartEnd(start))
	assert.True(t, tbl.BetweenStartEnd(end))
	assert.False(t, tbl.BetweenStartEnd(start-2*eps))
	assert.False(t, tbl.BetweenStartEnd(end+2*eps))
}

// TestRanges_Between checks the generic predicate with a custom tolerance.
func TestRanges_Between(t *testing.T) {
	tbl := timetable.New(0.0, timetable.WithEpsilon(0.5))
	assert.Equal(t, 0.5, tbl.Epsilon())
	assert.True(t, tbl.Between(-0.5, 0, 1))
	assert.True(t, tbl.Between(1.5, 0, 1))
	assert.False(t, tbl.Between(1.6, 0, 1))
}
