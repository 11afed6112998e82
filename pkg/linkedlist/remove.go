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

import "fmt"

// =============================================================================
// Removal
// =============================================================================

// DeleteAt removes the node at position i (zero-based) and returns its value.
//
// # Description
//
// Walks to the predecessor, relinks it past the removed node, and fixes the
// cached head/tail when the removed node was an endpoint. The removed node's
// successor reference is severed so a caller still holding it cannot dangle
// into the live chain. O(n).
//
// Chains that loop are handled best-effort: the walk is bounded and the tail
// invariant is restored afterward, but a node inside a cycle can stay
// reachable through the nodes that pointed at it.
//
// # Inputs
//
//   - i: Position to remove, 0 <= i < Count()
//
// # Outputs
//
//   - T: The removed value
//
// # Panics
//
// Panics if i is negative or not less than Count(). Asking to delete a
// position that does not exist is a caller bug, not a recoverable condition.
func (l *List[T]) DeleteAt(i int) T {
	count := l.Count()
	if i < 0 || i >= count {
		panic(fmt.Sprintf("delete index %d out of bounds for count %d", i, count))
	}
	l.ensureUnique()

	var removed *Node[T]
	if i == 0 {
		removed = l.storage.head
		l.storage.head = removed.Next
		if l.storage.tail == removed {
			l.storage.tail = nil
		}
	} else {
		prev := l.storage.head
		for step := 0; step < i-1; step++ {
			prev = prev.Next
		}
		removed = prev.Next
		prev.Next = removed.Next
		if l.storage.tail == removed {
			l.storage.tail = prev
		}
	}

	removed.Next = nil
	l.rederiveTail()
	return removed.Value
}

// DeleteValue removes the first node whose value equals v and reports whether
// one was found.
//
// # Description
//
// Scans from the head and unlinks the first match, fixing head/tail
// bookkeeping and severing the removed node's successor reference. The scan
// is bounded by the distinct-node count, so it terminates on cyclic chains.
// Copy-on-write triggers before the scan, so even a delete that finds nothing
// pays the copy when the storage is shared.
//
// This is a package function rather than a method because it needs T to be
// comparable while List itself accepts any T.
func DeleteValue[T comparable](l *List[T], v T) bool {
	l.ensureUnique()
	head := l.storage.head
	if head == nil {
		return false
	}

	if head.Value == v {
		l.storage.head = head.Next
		if l.storage.tail == head {
			l.storage.tail = nil
		}
		head.Next = nil
		l.rederiveTail()
		return true
	}

	bound := chainCount(head)
	prev := head
	for step := 0; prev.Next != nil && step < bound; step++ {
		if prev.Next.Value == v {
			removed := prev.Next
			prev.Next = removed.Next
			if l.storage.tail == removed {
				l.storage.tail = prev
			}
			removed.Next = nil
			l.rederiveTail()
			return true
		}
		prev = prev.Next
	}
	return false
}

// DeleteDuplicates removes every node whose value already occurred earlier in
// the list, keeping first occurrences in their original order.
//
// # Description
//
// Runs the classic two-pointer scan: for each node, a runner walks the rest
// of the chain and unlinks equal values as it finds them. No auxiliary set is
// allocated, which costs O(n^2) comparisons in exchange for O(1) extra space.
// Both pointers are bounded by the distinct-node count taken before surgery,
// so the scan terminates even on chains that loop.
//
// A duplicate is a distinct node carrying an equal value. On a cyclic chain
// the runner wraps and re-encounters nodes it has already passed; a node is
// never a duplicate of itself, so a loop made of first occurrences survives
// intact (a self-loop in particular stays a self-loop).
//
// This is a package function rather than a method because it needs T to be
// comparable while List itself accepts any T.
//
// # Example
//
//	l := linkedlist.Of(1, 2, 2, 3, 3, 3, 4)
//	linkedlist.DeleteDuplicates(&l)
//	// l.ToSlice() == []int{1, 2, 3, 4}
func DeleteDuplicates[T comparable](l *List[T]) {
	l.ensureUnique()
	head := l.storage.head
	if head == nil {
		return
	}

	bound := chainCount(head)
	current := head
	for outer := 0; current != nil && outer < bound; outer++ {
		runner := current
		for inner := 0; runner.Next != nil && inner < bound; inner++ {
			if runner.Next.Value == current.Value && runner.Next != current {
				removed := runner.Next
				runner.Next = removed.Next
				if l.storage.tail == removed {
					l.storage.tail = runner
				}
				removed.Next = nil
			} else {
				runner = runner.Next
			}
		}
		current = current.Next
	}
	l.rederiveTail()
}
