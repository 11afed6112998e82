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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test FIFO ordering through enqueue and dequeue
func TestQueue_FIFO(t *testing.T) {
	var q Queue[int]

	require.NoError(t, q.Enqueue(10))
	require.NoError(t, q.Enqueue(20))
	require.NoError(t, q.Enqueue(30))
	assert.Equal(t, 3, q.Len())

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 10, v)

	v, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 20, v)

	// The remaining element is both the oldest and the newest.
	peek, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 30, peek)

	last, ok := q.Last()
	require.True(t, ok)
	assert.Equal(t, 30, last)

	assert.Equal(t, 1, q.Len())
}

// Test the zero value is an empty, usable queue
func TestQueue_ZeroValue(t *testing.T) {
	var q Queue[string]

	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())

	_, ok := q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	require.NoError(t, q.Enqueue("job"))
	assert.False(t, q.IsEmpty())
}

// Test dequeue and peek absence reporting on an emptied queue
func TestQueue_DrainToEmpty(t *testing.T) {
	q := NewQueue[int]()
	require.NoError(t, q.Enqueue(1))

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, q.IsEmpty())

	_, ok = q.Dequeue()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
	_, ok = q.Last()
	assert.False(t, ok)
}

// Test peek does not consume
func TestQueue_PeekDoesNotConsume(t *testing.T) {
	var q Queue[int]
	require.NoError(t, q.Enqueue(5))

	for i := 0; i < 3; i++ {
		v, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 5, v)
	}
	assert.Equal(t, 1, q.Len())
}

// Test interleaved enqueue and dequeue keep arrival order
func TestQueue_Interleaved(t *testing.T) {
	var q Queue[int]

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	v, _ := q.Dequeue()
	assert.Equal(t, 1, v)

	require.NoError(t, q.Enqueue(3))

	v, _ = q.Dequeue()
	assert.Equal(t, 2, v)
	v, _ = q.Dequeue()
	assert.Equal(t, 3, v)
	assert.True(t, q.IsEmpty())
}

// Test snapshot export without consuming
func TestQueue_ToSlice(t *testing.T) {
	var q Queue[int]
	for _, v := range []int{10, 20, 30} {
		require.NoError(t, q.Enqueue(v))
	}

	assert.Equal(t, []int{10, 20, 30}, q.ToSlice())
	assert.Equal(t, 3, q.Len())
}

// Test cloned queues diverge on first write
func TestQueue_Clone(t *testing.T) {
	var q Queue[int]
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	snapshot := q.Clone()

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// The snapshot still holds the full queue.
	assert.Equal(t, []int{1, 2}, snapshot.ToSlice())
	assert.Equal(t, []int{2}, q.ToSlice())
}

// Test the adapter satisfies the interface through a plain variable
func TestQueue_Queueable(t *testing.T) {
	var q Queueable[int] = NewQueuePtr[int]()

	require.NoError(t, q.Enqueue(7))
	assert.Equal(t, 1, q.Len())

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, q.IsEmpty())
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkQueue_EnqueueDequeue(b *testing.B) {
	var q Queue[int]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.Enqueue(i)
		q.Dequeue()
	}
}
