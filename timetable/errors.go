// SPDX-License-Identifier: MIT

package timetable

import "github.com/katalvlaran/steptime/timeline"

// Sentinels shared with the timeline package so callers of either package
// can match with errors.Is.
var (
	// ErrInvalidSegment indicates a negative count or a negative / non-finite step.
	ErrInvalidSegment = timeline.ErrInvalidSegment

	// ErrOutOfRange indicates a position outside the timeline.
	ErrOutOfRange = timeline.ErrOutOfRange
)
