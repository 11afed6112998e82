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
// Queue Interface
// =============================================================================

// Queueable defines the interface for FIFO queue operations.
//
// # Description
//
// Queueable provides first-in-first-out access on top of an unbounded store.
// Enqueue returns an error to keep the contract open for bounded or remote
// implementations that can refuse work; the list-backed implementation in
// this package never does.
//
// # Thread Safety
//
// Implementations in this package are not safe for concurrent use.
//
// # Example
//
//	var q linkedlist.Queueable[int] = linkedlist.NewQueuePtr[int]()
//	_ = q.Enqueue(10)
//	v, ok := q.Dequeue()
type Queueable[T any] interface {
	// Enqueue adds an item at the back of the queue.
	Enqueue(item T) error

	// Dequeue removes and returns the oldest item. Returns zero value and
	// false if empty.
	Dequeue() (T, bool)

	// Peek returns the oldest item without removing it.
	Peek() (T, bool)

	// Len returns the current number of items.
	Len() int

	// IsEmpty returns true if the queue has no items.
	IsEmpty() bool
}

// =============================================================================
// Queue Struct
// =============================================================================

// Queue is an unbounded FIFO queue backed by a List.
//
// # Description
//
// Queue adapts the list's primitives to queue vocabulary: Enqueue appends at
// the cached tail in O(1), Dequeue unlinks the head in O(1), Peek reads the
// head without unlinking. The backing list brings copy-on-write with it, so
// Clone snapshots a queue in O(1) and the first mutation on either side pays
// the copy.
//
// The zero value is an empty queue ready to use.
//
// # Thread Safety
//
// Not safe for concurrent use.
//
// # Example
//
//	var q linkedlist.Queue[int]
//	_ = q.Enqueue(10)
//	_ = q.Enqueue(20)
//	_ = q.Enqueue(30)
//
//	v, _ := q.Dequeue() // 10
//	v, _ = q.Dequeue()  // 20
//	v, _ = q.Peek()     // 30
type Queue[T any] struct {
	list List[T]
}

// Compile-time interface satisfaction check
var _ Queueable[int] = (*Queue[int])(nil)

// =============================================================================
// Constructor Functions
// =============================================================================

// NewQueue creates an empty queue. Equivalent to the zero value.
func NewQueue[T any]() Queue[T] {
	return Queue[T]{list: New[T]()}
}

// NewQueuePtr creates an empty queue on the heap, for callers that want to
// pass the Queueable interface around directly.
func NewQueuePtr[T any]() *Queue[T] {
	q := NewQueue[T]()
	return &q
}

// =============================================================================
// Queue Methods
// =============================================================================

// Enqueue adds an item at the back of the queue. The error is always nil for
// this unbounded in-memory implementation; it exists to satisfy Queueable.
func (q *Queue[T]) Enqueue(item T) error {
	q.list.Append(item)
	return nil
}

// Dequeue removes and returns the oldest item. Returns the zero value and
// false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.list.IsEmpty() {
		var zero T
		return zero, false
	}
	return q.list.DeleteAt(0), true
}

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	return q.list.First()
}

// Last returns the newest item without removing it. The second return is
// false when the queue is empty.
func (q *Queue[T]) Last() (T, bool) {
	return q.list.Last()
}

// Len returns the current number of items.
func (q *Queue[T]) Len() int {
	return q.list.Count()
}

// IsEmpty returns true if the queue has no items.
func (q *Queue[T]) IsEmpty() bool {
	return q.list.IsEmpty()
}

// ToSlice returns the queued items oldest-first without removing them.
func (q *Queue[T]) ToSlice() []T {
	return q.list.ToSlice()
}

// Clone returns a queue sharing this queue's storage, O(1). The first
// mutation through either queue deep copies, leaving the two independent.
func (q *Queue[T]) Clone() Queue[T] {
	return Queue[T]{list: q.list.Clone()}
}
