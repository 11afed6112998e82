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

// -----------------------------------------------------------------------------
// Index
// -----------------------------------------------------------------------------

// Index is an immutable position marker into a list: a node reference paired
// with an ordinal tag. Advancing never mutates an index, it produces a new
// one with the successor node and an incremented tag.
//
// Comparisons use the tag alone. Node identity is deliberately ignored, which
// keeps ordering O(1) but means indices taken from two lists that have
// diverged through copy-on-write still compare equal when their ordinals
// match, even though they reference unrelated nodes. Callers must only
// compare indices drawn from the same list value.
//
// Thread Safety: Individual Index values are immutable and safe to share;
// the list they point into is not.
type Index[T any] struct {
	node *Node[T]
	tag  int
}

// StartIndex returns the index of the first element: the head node, tag 0.
// For an empty list the start and end indices are equal.
func (l *List[T]) StartIndex() Index[T] {
	return Index[T]{node: l.head(), tag: 0}
}

// EndIndex returns the past-the-end index: tag Count(). Its node reference is
// the head, not a real past-the-end node, so the end index must never be
// dereferenced. It exists only as the comparison sentinel that stops an
// advancing walk.
func (l *List[T]) EndIndex() Index[T] {
	return Index[T]{node: l.head(), tag: l.Count()}
}

// IndexAfter returns the position after i: the successor node, tag plus one.
// Advancing past the physical end keeps a nil node while the tag keeps
// counting, so the arithmetic stays total.
func (l *List[T]) IndexAfter(i Index[T]) Index[T] {
	next := Index[T]{tag: i.tag + 1}
	if i.node != nil {
		next.node = i.node.Next
	}
	return next
}

// Value returns the element at this index.
//
// Dereferencing an index at or past the end is undefined: on a non-empty
// list the end index silently yields the head's value (its node reference is
// the head), and an index walked past the physical end panics on its nil
// node. Bounded iteration against EndIndex never reaches either case.
func (i Index[T]) Value() T {
	if i.node == nil {
		panic("index dereference past the end of the list")
	}
	return i.node.Value
}

// Equal reports whether two indices mark the same ordinal position. Tags
// only; see the type comment for the cross-list caveat.
func (i Index[T]) Equal(o Index[T]) bool {
	return i.tag == o.tag
}

// Less reports whether i precedes o. Tags only.
func (i Index[T]) Less(o Index[T]) bool {
	return i.tag < o.tag
}
