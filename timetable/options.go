// SPDX-License-Identifier: MIT
// Package: steptime/timetable
//
// options.go: functional options for Table construction.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     Table methods never panic.
//   • Defaults live in the DefaultX constants below.

package timetable

import (
	"math"
	"reflect"

	"go.uber.org/zap"

	"github.com/katalvlaran/steptime/timeline"
)

// Epsilon minima per scalar kind.
const (
	// MinEpsilonFloat32 is the smallest tolerance used for float32 kinds.
	MinEpsilonFloat32 = 1e-5

	// MinEpsilonFloat64 is the smallest tolerance used for float64 kinds.
	MinEpsilonFloat64 = 1e-14

	// DefaultEpsilon requests the per-kind minimum.
	DefaultEpsilon = 0.0
)

// Option customizes a Table before construction.
type Option func(*config)

type config struct {
	epsilon float64
	logger  *zap.Logger
}

// WithEpsilon sets the tolerance used by the range predicates of floating
// tables. Values below the kind's minimum are raised to it; integer tables
// ignore it. Panics on negative or non-finite eps.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("timetable: WithEpsilon requires a finite, non-negative tolerance")
	}
	return func(c *config) {
		c.epsilon = eps
	}
}

// WithLogger attaches a logger that receives Debug entries on segment
// transitions, clamped retreats, Clear and SetStartTime. Panics on nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic("timetable: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = logger
	}
}

func gatherOptions(opts ...Option) config {
	c := config{
		epsilon: DefaultEpsilon,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// MinEpsilon returns the smallest tolerance applied to T: 1e-5 for float32
// kinds, 1e-14 for float64 kinds and 0 for integer kinds.
func MinEpsilon[T timeline.Scalar]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32:
		v := MinEpsilonFloat32
		return T(v)
	case reflect.Float64:
		v := MinEpsilonFloat64
		return T(v)
	default:
		return zero
	}
}

// resolveEpsilon clamps the requested tolerance to the kind's minimum.
func resolveEpsilon[T timeline.Scalar](requested float64) T {
	minimum := MinEpsilon[T]()
	if !timeline.IsFloating[T]() {
		return minimum
	}
	if eps := T(requested); eps > minimum {
		return eps
	}

	return minimum
}
