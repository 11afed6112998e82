// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package linkedlist

import "iter"

// -----------------------------------------------------------------------------
// Iterator
// -----------------------------------------------------------------------------

// Iterator walks a list front to back, one value per Next call. It is
// forward-only and cannot be restarted; take a fresh one from Iterator()
// to walk again.
//
// The iterator follows raw node links, so on a cyclic chain it never runs
// out: it keeps circling the loop. Use All or ToSlice when a bounded
// traversal of a possibly cyclic list is needed.
//
// Thread Safety: Not safe for concurrent use.
type Iterator[T any] struct {
	current *Node[T]
}

// Iterator returns a fresh iterator positioned at the head.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{current: l.head()}
}

// Next returns the value at the current position and advances. The second
// return is false once the iterator has moved past the last node.
func (it *Iterator[T]) Next() (T, bool) {
	if it.current == nil {
		var zero T
		return zero, false
	}
	v := it.current.Value
	it.current = it.current.Next
	return v, true
}

// -----------------------------------------------------------------------------
// Range Support
// -----------------------------------------------------------------------------

// All returns a sequence of the list's values, oldest-first, for use with
// range. The sequence is bounded by the distinct-node count, so ranging over
// a cyclic chain visits each node once and stops.
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := l.Count()
		cur := l.head()
		for i := 0; i < n; i++ {
			if !yield(cur.Value) {
				return
			}
			cur = cur.Next
		}
	}
}
