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
// Node
// -----------------------------------------------------------------------------

// Node is a single element of a singly linked chain. It carries one value and
// a reference to its successor (nil at the end of a chain).
//
// Nodes are reference types: two lists that share storage share the same nodes
// until one of them mutates. Callers may also build chains by hand (including
// deliberately cyclic ones for loop-detection work) and hand them to a List
// via the adoption paths.
//
// Thread Safety: Not safe for concurrent use.
type Node[T any] struct {
	// Value is the payload stored at this position.
	Value T

	// Next references the successor node, or nil at the end of the chain.
	Next *Node[T]
}

// NewNode creates a detached node holding v with no successor.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// -----------------------------------------------------------------------------
// Chain helpers
// -----------------------------------------------------------------------------
//
// These free functions operate on raw chains rather than lists. Every helper
// here tolerates cyclic chains: loopMeetingNode is the only routine permitted
// an unbounded walk (Floyd's two-pointer scan terminates on any chain), and
// the others derive their traversal bounds from it.

// loopMeetingNode runs Floyd's cycle detection from head. It returns the node
// where the slow and fast pointers first coincide, or nil when the chain is
// acyclic. The meeting node is inside the cycle but is not necessarily the
// cycle's first node.
func loopMeetingNode[T any](head *Node[T]) *Node[T] {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow = slow.Next
		fast = fast.Next.Next
		if slow == fast {
			return slow
		}
	}
	return nil
}

// chainEnd returns the last node of the chain rooted at head, or nil when the
// chain is empty or closes on itself (a cyclic chain has no end).
func chainEnd[T any](head *Node[T]) *Node[T] {
	if head == nil || loopMeetingNode(head) != nil {
		return nil
	}
	end := head
	for end.Next != nil {
		end = end.Next
	}
	return end
}

// chainCount returns the number of distinct nodes reachable from head. For an
// acyclic chain this is the ordinary length. For a cyclic chain it is the
// number of nodes before the cycle plus the cycle's length, derived from the
// Floyd meeting node: a pointer from head and a pointer from the meeting node
// advance in lockstep and first coincide at the cycle's entry.
func chainCount[T any](head *Node[T]) int {
	if head == nil {
		return 0
	}

	meet := loopMeetingNode(head)
	if meet == nil {
		n := 0
		for cur := head; cur != nil; cur = cur.Next {
			n++
		}
		return n
	}

	cycleLen := 1
	for cur := meet.Next; cur != meet; cur = cur.Next {
		cycleLen++
	}

	prefixLen := 0
	a, b := head, meet
	for a != b {
		a = a.Next
		b = b.Next
		prefixLen++
	}

	return prefixLen + cycleLen
}
