// SPDX-License-Identifier: MIT

package timeline_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/steptime/timeline"
)

// mustModel builds a float64 model or fails the test.
func mustModel(t *testing.T, start float64, segs ...timeline.Segment[float64]) *timeline.Model[float64] {
	t.Helper()
	m, err := timeline.NewModel(start, segs...)
	require.NoError(t, err)

	return m
}

// TestNewSegment_Validation verifies that invalid counts and steps are rejected.
func TestNewSegment_Validation(t *testing.T) {
	cases := []struct {
		name  string
		step  float64
		count int
		err   error
	}{
		{"Valid", 0.5, 10, nil},
		{"ZeroCount", 0.5, 0, nil},
		{"ZeroStep", 0, 3, nil},
		{"NegativeCount", 0.5, -1, timeline.ErrInvalidSegment},
		{"NegativeStep", -0.5, 1, timeline.ErrInvalidSegment},
		{"NaNStep", math.NaN(), 1, timeline.ErrInvalidSegment},
		{"InfStep", math.Inf(1), 1, timeline.ErrInvalidSegment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seg, err := timeline.NewSegment(tc.step, tc.count)
			if tc.err == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.count, seg.Count)
				return
			}
			assert.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestNewModel_RejectsBadSegment checks that the offending index is reported
// and the sentinel survives wrapping.
func TestNewModel_RejectsBadSegment(t *testing.T) {
	_, err := timeline.NewModel(0.0,
		timeline.Segment[float64]{Step: 1, Count: 2},
		timeline.Segment[float64]{Step: 1, Count: -2},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, timeline.ErrInvalidSegment))
	assert.Contains(t, err.Error(), "segment 1")
}

// TestModel_Durations covers TotalDuration, EndTime, Steps and Points.
func TestModel_Durations(t *testing.T) {
	m := mustModel(t, 10,
		timeline.Segment[float64]{Step: 1, Count: 5},
		timeline.Segment[float64]{Step: 2, Count: 5},
	)
	assert.Equal(t, 15.0, m.TotalDuration())
	assert.Equal(t, 25.0, m.EndTime())
	assert.Equal(t, 10, m.Steps())
	assert.Equal(t, 11, m.Points())
	assert.Equal(t, 2, m.Len())

	empty := mustModel(t, 3)
	assert.Equal(t, 0.0, empty.TotalDuration())
	assert.Equal(t, 3.0, empty.EndTime())
	assert.Equal(t, 0, empty.Points())
}

// TestModel_Append verifies tail appends and validation.
func TestModel_Append(t *testing.T) {
	m, err := timeline.NewModel[int](0)
	require.NoError(t, err)

	require.NoError(t, m.Append(2, 3))
	require.NoError(t, m.Append(5, 1))
	assert.Equal(t, 11, m.EndTime())

	err = m.Append(1, -4)
	assert.True(t, errors.Is(err, timeline.ErrInvalidSegment))
	assert.Equal(t, 2, m.Len(), "failed append must not modify the model")
}

// TestModel_SegmentAccess checks bounds and that Segments returns a copy.
func TestModel_SegmentAccess(t *testing.T) {
	m := mustModel(t, 0, timeline.Segment[float64]{Step: 0.5, Count: 4})

	seg, err := m.Segment(0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, seg.Step)

	_, err = m.Segment(1)
	assert.True(t, errors.Is(err, timeline.ErrOutOfRange))
	_, err = m.Segment(-1)
	assert.True(t, errors.Is(err, timeline.ErrOutOfRange))

	segs := m.Segments()
	segs[0].Count = 99
	again, _ := m.Segment(0)
	assert.Equal(t, 4, again.Count)
}

// TestModel_Nil verifies a nil model behaves as an empty timeline.
func TestModel_Nil(t *testing.T) {
	var m *timeline.Model[float64]
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0.0, m.EndTime())
	assert.True(t, timeline.Begin(m).IsEnd())
	assert.True(t, timeline.Seek(m, 1).IsEnd())

	var err error
	assert.NotPanics(t, func() { err = m.Append(1, 2) })
	assert.True(t, errors.Is(err, timeline.ErrNilModel))
}

// TestModel_Iterators checks All and Backward against each other.
func TestModel_Iterators(t *testing.T) {
	m := mustModel(t, 10,
		timeline.Segment[float64]{Step: 1, Count: 5},
		timeline.Segment[float64]{Step: 2, Count: 5},
	)

	var fwd []float64
	for i, v := range m.All() {
		assert.Equal(t, len(fwd), i)
		fwd = append(fwd, v)
	}
	require.Len(t, fwd, 11)

	var bwd []float64
	for _, v := range m.Backward() {
		bwd = append(bwd, v)
	}
	require.Len(t, bwd, 11)
	for i := range fwd {
		assert.Equal(t, fwd[i], bwd[len(bwd)-1-i])
	}

	// early break
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

// TestMaxValue spot-checks the per-kind maxima used as sentinels.
func TestMaxValue(t *testing.T) {
	assert.Equal(t, math.MaxFloat64, timeline.MaxValue[float64]())
	assert.Equal(t, float32(math.MaxFloat32), timeline.MaxValue[float32]())
	assert.Equal(t, math.MaxInt, timeline.MaxValue[int]())
	assert.Equal(t, int8(math.MaxInt8), timeline.MaxValue[int8]())
	assert.Equal(t, uint16(math.MaxUint16), timeline.MaxValue[uint16]())
	assert.Equal(t, uint64(math.MaxUint64), timeline.MaxValue[uint64]())

	type ticks int32
	assert.Equal(t, ticks(math.MaxInt32), timeline.MaxValue[ticks]())

	assert.True(t, timeline.IsFloating[float32]())
	assert.False(t, timeline.IsFloating[ticks]())
}
