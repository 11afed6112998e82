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
// List
// =============================================================================

// List is a singly linked sequence with copy-on-write value semantics.
//
// # Description
//
// List stores its nodes in a reference-counted backing storage. Clone is the
// copy operation: it is O(1) and hands back a second List sharing the same
// storage. The first mutation through either list triggers an O(n) deep copy
// of the chain, after which the two lists are fully independent. Reads never
// copy.
//
// The zero value is an empty list ready to use.
//
// # Copy Semantics
//
// Use Clone to copy a List. Copying a non-zero List with plain assignment or
// by passing it by value bypasses the share count, so a later mutation through
// one alias can become visible through the other. Like strings.Builder, a List
// must not be duplicated by assignment after first use; lists travel by
// pointer or via Clone.
//
// # Cycle Tolerance
//
// A chain adopted via FromNode may close on itself. The list stays safe on
// such chains: ContainsLoop detects the cycle, Count reports the number of
// distinct reachable nodes, and every traversal except Iterator and All is
// bounded by that count. The cached tail is deliberately absent while the
// chain is cyclic (a looped chain has no end), so Last reports no value.
//
// # Thread Safety
//
// Not safe for concurrent use. Distinct lists that share storage through
// Clone must also not be accessed concurrently, because a mutation on one
// touches the shared share count.
//
// # Example
//
//	orders := linkedlist.Of(5, 3, 4)
//	backup := orders.Clone() // O(1), shares storage
//	orders.Append(6)         // deep copies here, backup unaffected
//
//	if v, ok := orders.Last(); ok {
//	    fmt.Println(v) // 6
//	}
type List[T any] struct {
	storage *storage[T]
}

// =============================================================================
// Constructors
// =============================================================================

// New creates an empty list. Equivalent to the zero value; provided for
// symmetry with the other constructors.
func New[T any]() List[T] {
	return List[T]{storage: newStorage[T](nil, nil)}
}

// NewSingle creates a list holding exactly one value.
func NewSingle[T any](v T) List[T] {
	n := NewNode(v)
	return List[T]{storage: newStorage(n, n)}
}

// Of builds a list from values in order. The chain is linked directly, so no
// per-element copy-on-write checks run; the last constructed node becomes the
// cached tail.
//
// # Example
//
//	l := linkedlist.Of(5, 3, 4, 6, 8, 1)
func Of[T any](values ...T) List[T] {
	if len(values) == 0 {
		return New[T]()
	}
	head := NewNode(values[0])
	cur := head
	for _, v := range values[1:] {
		cur.Next = NewNode(v)
		cur = cur.Next
	}
	return newFromNode(head)
}

// FromNode adopts a caller-built chain as a new list without copying it. The
// chain may already be linked many nodes deep and may even be cyclic; the
// list runs a cycle-safe scan to derive its tail, leaving the tail absent
// when the chain closes on itself.
//
// The list takes ownership of the chain. Callers that keep raw references
// into an adopted chain and mutate through them bypass copy-on-write.
func FromNode[T any](n *Node[T]) List[T] {
	return newFromNode(n)
}

// newFromNode is the adoption entry point shared by FromNode and the bulk
// constructor. Adoption reuses the append path so the cycle-check and tail
// bookkeeping live in exactly one place.
func newFromNode[T any](n *Node[T]) List[T] {
	l := New[T]()
	if n != nil {
		l.appendNode(n)
	}
	return l
}

// =============================================================================
// Copy-on-Write Internals
// =============================================================================

// head returns the first node, tolerating the zero-value list.
func (l *List[T]) head() *Node[T] {
	if l.storage == nil {
		return nil
	}
	return l.storage.head
}

// ensureUnique makes the list the sole owner of its storage. Mutators call it
// before any write. When the storage is shared the chain is deep copied, the
// abandoned storage's share count drops, and the fresh copy starts at one.
// A zero-value list allocates its storage here.
func (l *List[T]) ensureUnique() {
	if l.storage == nil {
		l.storage = newStorage[T](nil, nil)
		return
	}
	if l.storage.refs > 1 {
		l.storage.refs--
		l.storage = l.storage.clone()
	}
}

// rederiveTail recomputes the cached tail from scratch. Structural surgery on
// a chain whose tail was invalidated by a cycle can silently break the cycle,
// so the mutators that unlink nodes call this to restore the tail invariant.
// Chains that still carry a valid tail return immediately.
func (l *List[T]) rederiveTail() {
	if l.storage.tail != nil || l.storage.head == nil {
		return
	}
	l.storage.tail = chainEnd(l.storage.head)
}

// Clone returns a list sharing this list's storage. The share is O(1); the
// price of the copy is deferred to whichever list writes first.
//
// Cloning a zero-value list yields an independent zero-value list.
func (l *List[T]) Clone() List[T] {
	if l.storage == nil {
		return List[T]{}
	}
	l.storage.refs++
	return List[T]{storage: l.storage}
}

// =============================================================================
// Growth
// =============================================================================

// Append adds v at the end of the list.
//
// # Description
//
// Triggers copy-on-write if the storage is shared, then links a fresh node
// after the cached tail (or installs it as head when the list is empty) and
// advances the tail. O(1) after the uniqueness check for ordinary lists.
//
// When the cached tail is absent because the chain is cyclic, there is no end
// to link from: the new node replaces the chain instead, and the old looped
// chain is dropped.
func (l *List[T]) Append(v T) {
	l.appendNode(NewNode(v))
}

// appendNode links the chain rooted at n at the end of the list. The chain
// may be many nodes long (the adoption path passes whole chains through
// here). After linking, the tail is re-derived from n with a cycle check:
// the true end of whatever was appended, or absent if the chain now loops.
func (l *List[T]) appendNode(n *Node[T]) {
	l.ensureUnique()
	if l.storage.tail != nil {
		l.storage.tail.Next = n
	} else {
		l.storage.head = n
	}
	l.storage.tail = chainEnd(n)
}

// Prepend adds v at the front of the list.
//
// # Description
//
// Triggers copy-on-write if the storage is shared, then links the new node
// ahead of the current head. O(1) after the uniqueness check. The cached
// tail is untouched unless the list was empty, in which case the new node is
// also the tail.
func (l *List[T]) Prepend(v T) {
	l.prependNode(NewNode(v))
}

// prependNode links the chain rooted at n ahead of the current head. The
// chain's own end is found with a cycle-safe scan; a chain that closes on
// itself has no end to attach the current contents to, so it replaces them
// and the tail stays absent.
func (l *List[T]) prependNode(n *Node[T]) {
	l.ensureUnique()

	end := chainEnd(n)
	if end == nil {
		l.storage.head = n
		l.storage.tail = nil
		return
	}

	wasEmpty := l.storage.head == nil
	end.Next = l.storage.head
	l.storage.head = n
	if wasEmpty {
		l.storage.tail = end
	}
}

// =============================================================================
// Accessors
// =============================================================================

// Count returns the number of distinct reachable nodes. For ordinary chains
// this is the length; for cyclic chains it counts every node exactly once,
// so it terminates regardless of shape. O(n).
func (l *List[T]) Count() int {
	return chainCount(l.head())
}

// IsEmpty reports whether the list holds no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head() == nil
}

// First returns the head value. The second return is false when the list is
// empty.
func (l *List[T]) First() (T, bool) {
	if h := l.head(); h != nil {
		return h.Value, true
	}
	var zero T
	return zero, false
}

// Last returns the cached tail value in O(1). The second return is false when
// the list is empty or when the chain is cyclic, since a looped chain has no
// meaningful last element.
func (l *List[T]) Last() (T, bool) {
	if l.storage == nil || l.storage.tail == nil {
		var zero T
		return zero, false
	}
	return l.storage.tail.Value, true
}

// ToSlice copies the values into a fresh slice, oldest-first. On a cyclic
// chain the walk is bounded by Count, so each distinct node contributes its
// value exactly once. Returns nil for an empty list.
func (l *List[T]) ToSlice() []T {
	n := l.Count()
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	cur := l.head()
	for i := 0; i < n; i++ {
		out = append(out, cur.Value)
		cur = cur.Next
	}
	return out
}

// String renders the contents oldest-first, e.g. "[5 3 4]". Safe on cyclic
// chains because it goes through ToSlice.
func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}
