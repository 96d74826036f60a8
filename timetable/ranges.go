// SPDX-License-Identifier: MIT

package timetable

// Range predicates. Closed bounds are widened by the table's epsilon; open
// bounds are exact. With integer scalars epsilon is 0 and every check is
// exact.

// Between reports whether lo-ε ≤ v ≤ hi+ε.
func (t *Table[T]) Between(v, lo, hi T) bool {
	return v >= lo-t.epsilon && v <= hi+t.epsilon
}

// BetweenStartEnd reports whether v lies in [StartTime, EndTime].
func (t *Table[T]) BetweenStartEnd(v T) bool {
	return t.Between(v, t.start, t.EndTime())
}

// BetweenStartNow reports whether v lies in [StartTime, Time].
func (t *Table[T]) BetweenStartNow(v T) bool {
	return t.Between(v, t.start, t.Time())
}

// BetweenNowEnd reports whether v lies in [Time, EndTime].
func (t *Table[T]) BetweenNowEnd(v T) bool {
	return t.Between(v, t.Time(), t.EndTime())
}

// InPast reports whether v lies in [StartTime, Time): start is widened by ε,
// the current time is excluded.
func (t *Table[T]) InPast(v T) bool {
	return v >= t.start-t.epsilon && v < t.Time()
}

// InFuture reports whether v lies in (Time, EndTime]: the current time is
// excluded, the end is widened by ε.
func (t *Table[T]) InFuture(v T) bool {
	return v > t.Time() && v <= t.EndTime()+t.epsilon
}
