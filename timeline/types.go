// SPDX-License-Identifier: MIT

package timeline

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
)

// Scalar is the ordered numeric type a timeline is measured in.
// Integer kinds step exactly; floating kinds accumulate rounding error and
// are compared with a tolerance by the timetable package.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Segment is a run of Count consecutive increments of size Step.
type Segment[T Scalar] struct {
	Step  T   // size of one increment
	Count int // number of increments, ≥ 0
}

// NewSegment returns a validated Segment.
// Errors: ErrInvalidSegment if count < 0 or step is negative or non-finite.
func NewSegment[T Scalar](step T, count int) (Segment[T], error) {
	s := Segment[T]{Step: step, Count: count}
	if err := s.Validate(); err != nil {
		return Segment[T]{}, err
	}

	return s, nil
}

// Validate reports whether the segment can be part of a timeline.
func (s Segment[T]) Validate() error {
	if s.Count < 0 {
		return errors.Wrapf(ErrInvalidSegment, "count %d is negative", s.Count)
	}
	if !isFinite(s.Step) {
		return errors.Wrapf(ErrInvalidSegment, "step %v is not finite", s.Step)
	}
	if s.Step < 0 {
		return errors.Wrapf(ErrInvalidSegment, "step %v is negative", s.Step)
	}

	return nil
}

// Duration returns Step·Count.
func (s Segment[T]) Duration() T {
	return s.Step * T(s.Count)
}

// String implements fmt.Stringer as "count×step".
func (s Segment[T]) String() string {
	return fmt.Sprintf("%d×%v", s.Count, s.Step)
}

// Position locates a point on a timeline: Offset completed steps inside the
// segment at index Segment.
type Position struct {
	Segment int
	Offset  int
}

// String implements fmt.Stringer as "(segment,offset)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Segment, p.Offset)
}

// IsFloating reports whether T has a floating-point underlying kind.
func IsFloating[T Scalar]() bool {
	switch kindOf[T]() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// MaxValue returns the largest value representable by T.
func MaxValue[T Scalar]() T {
	switch kindOf[T]() {
	case reflect.Float32:
		v := float64(math.MaxFloat32)
		return T(v)
	case reflect.Float64:
		v := math.MaxFloat64
		return T(v)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return T(v)
	case reflect.Int:
		v := math.MaxInt
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default: // Uint, Uint64
		v := uint64(math.MaxUint64)
		return T(v)
	}
}

func kindOf[T Scalar]() reflect.Kind {
	var zero T
	return reflect.TypeOf(zero).Kind()
}

// isFinite is always true for integer kinds.
func isFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// stepsWithin returns ⌊span/step⌋, or 0 for a zero step.
func stepsWithin[T Scalar](span, step T) int {
	if step == 0 {
		return 0
	}
	q := span / step
	if IsFloating[T]() {
		return int(math.Floor(float64(q)))
	}

	return int(q)
}
