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
// Backing Storage
// -----------------------------------------------------------------------------

// storage is the shared backing store behind one or more List values. It owns
// the head/tail bookkeeping for a node chain plus the share count that drives
// copy-on-write.
//
// Invariants (hold at every point lists observe the storage):
//   - tail is nil if and only if head is nil or the chain from head contains
//     a cycle. A cached tail on a cyclic chain would be meaningless, so cycle
//     producing operations invalidate it deliberately.
//   - When head is non-nil and the chain is acyclic, tail references the last
//     reachable node and tail.Next is nil.
//   - refs counts the List values currently sharing this storage. It starts
//     at 1 and only ever grows via Clone; a writer that finds refs > 1 copies
//     the chain and decrements the count on the storage it abandons.
//
// Thread Safety: Not safe for concurrent use.
type storage[T any] struct {
	head *Node[T]
	tail *Node[T]
	refs int
}

// newStorage creates a storage owning the chain rooted at head with the given
// cached tail, shared by exactly one list.
func newStorage[T any](head, tail *Node[T]) *storage[T] {
	return &storage[T]{head: head, tail: tail, refs: 1}
}

// clone duplicates the storage into a fresh, unshared one. Every distinct
// reachable node is copied exactly once and the copies are relinked to mirror
// the original graph, so cyclic chains keep their cycle shape. Cloning an
// empty storage yields a fresh empty storage, never a shared sentinel: a
// later append through one empty copy must stay invisible to the other.
func (s *storage[T]) clone() *storage[T] {
	if s.head == nil {
		return newStorage[T](nil, nil)
	}

	dup := make(map[*Node[T]]*Node[T])
	for cur := s.head; cur != nil; cur = cur.Next {
		if _, seen := dup[cur]; seen {
			break
		}
		dup[cur] = &Node[T]{Value: cur.Value}
	}
	for orig, copied := range dup {
		if orig.Next != nil {
			copied.Next = dup[orig.Next]
		}
	}

	var tail *Node[T]
	if s.tail != nil {
		tail = dup[s.tail]
	}
	return newStorage(dup[s.head], tail)
}
