// SPDX-License-Identifier: MIT

package timeline

import "iter"

// All yields (index, time) for every point from Begin to the last point.
//
//	for i, t := range m.All() { ... }
func (m *Model[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := Begin(m); !c.IsEnd(); c = c.Next() {
			v, _ := c.Value() // cannot fail before End
			if !yield(c.Index(), v) {
				return
			}
		}
	}
}

// Backward yields (index, time) from the last point down to Begin.
func (m *Model[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if m.Len() == 0 {
			return
		}
		c := End(m).Prev()
		for {
			v, _ := c.Value()
			i := c.Index()
			if !yield(i, v) || i == 0 {
				return
			}
			c = c.Prev()
		}
	}
}
