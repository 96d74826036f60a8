// SPDX-License-Identifier: MIT

package timeline

import "github.com/cockroachdb/errors"

// Sentinel errors for timeline operations. Call sites attach context with
// errors.Wrapf; callers match with errors.Is.
var (
	// ErrInvalidSegment indicates a segment with a negative step count, or a
	// negative / NaN / ±Inf step size.
	ErrInvalidSegment = errors.New("timeline: invalid segment")

	// ErrOutOfRange indicates a dereference of the End sentinel, or a segment
	// index / position outside the model.
	ErrOutOfRange = errors.New("timeline: position out of range")

	// ErrNilModel indicates a mutation of a nil *Model.
	ErrNilModel = errors.New("timeline: nil model")
)
