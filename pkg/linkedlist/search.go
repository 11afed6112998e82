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

// =============================================================================
// Search
// =============================================================================

// KthToLast returns the k-th node counting from the end, where k == 1 is the
// last node and k == Count() is the head.
//
// # Description
//
// Precomputes the distinct-node count, then walks forward recursively,
// counting down until the remaining length equals k. Positions outside
// 1..Count() return nil rather than failing: asking for the seventh-from-last
// of a six element list is an ordinary no-answer, not an error. The walk is
// bounded by the count, so cyclic chains terminate.
//
// # Example
//
//	l := linkedlist.Of(5, 3, 4, 6, 8, 1)
//	l.KthToLast(1).Value // 1 (the last element)
//	l.KthToLast(6).Value // 5 (the head)
//	l.KthToLast(7)       // nil
func (l *List[T]) KthToLast(k int) *Node[T] {
	if k < 1 {
		return nil
	}
	return kthToLast(l.head(), k, l.Count())
}

// kthToLast counts down along the chain: when the remaining length equals k,
// the current node is the k-th from the end.
func kthToLast[T any](n *Node[T], k, remaining int) *Node[T] {
	if n == nil || k > remaining {
		return nil
	}
	if remaining == k {
		return n
	}
	return kthToLast(n.Next, k, remaining-1)
}

// ContainsLoop reports whether the chain closes on itself.
//
// # Description
//
// Floyd's two-pointer scan: a slow pointer advances one node per step while a
// fast pointer advances two. If they ever land on the identical node the
// chain is cyclic; if the fast pointer runs off the end the chain is acyclic.
// O(n) time, O(1) space, and the only routine in the package allowed to walk
// without a precomputed bound, because the scan itself terminates on any
// chain shape.
func (l *List[T]) ContainsLoop() bool {
	return loopMeetingNode(l.head()) != nil
}
