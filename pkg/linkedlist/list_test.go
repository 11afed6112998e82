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

// Test that the zero value is an empty, usable list
func TestList_ZeroValue(t *testing.T) {
	var l List[int]

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())

	_, ok := l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
	assert.Nil(t, l.ToSlice())

	l.Append(1)
	assert.Equal(t, []int{1}, l.ToSlice())
}

// Test the empty constructor
func TestNew_Empty(t *testing.T) {
	l := New[string]()
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Count())
	assert.False(t, l.ContainsLoop())
}

// Test the single-value constructor
func TestNewSingle(t *testing.T) {
	l := NewSingle(42)
	assert.Equal(t, 1, l.Count())

	first, ok := l.First()
	require.True(t, ok)
	last, ok2 := l.Last()
	require.True(t, ok2)
	assert.Equal(t, 42, first)
	assert.Equal(t, 42, last)
}

// Test bulk construction preserves order and caches the tail
func TestOf(t *testing.T) {
	t.Run("no values", func(t *testing.T) {
		l := Of[int]()
		assert.True(t, l.IsEmpty())
	})

	t.Run("preserves order", func(t *testing.T) {
		l := Of(5, 3, 4, 6, 8, 1)
		assert.Equal(t, []int{5, 3, 4, 6, 8, 1}, l.ToSlice())
		assert.Equal(t, 6, l.Count())
	})

	t.Run("tail is last value", func(t *testing.T) {
		l := Of("a", "b", "c")
		last, ok := l.Last()
		require.True(t, ok)
		assert.Equal(t, "c", last)
	})
}

// Test chain adoption without copying
func TestFromNode(t *testing.T) {
	t.Run("nil chain yields empty list", func(t *testing.T) {
		l := FromNode[int](nil)
		assert.True(t, l.IsEmpty())
	})

	t.Run("adopts linked chain", func(t *testing.T) {
		l := FromNode(buildChain(1, 2, 3))
		assert.Equal(t, []int{1, 2, 3}, l.ToSlice())

		last, ok := l.Last()
		require.True(t, ok)
		assert.Equal(t, 3, last)
	})

	t.Run("adopts without copying", func(t *testing.T) {
		n := NewNode(1)
		l := FromNode(n)

		// The list owns the caller's node, not a copy of it.
		n.Value = 5
		first, ok := l.First()
		require.True(t, ok)
		assert.Equal(t, 5, first)
	})

	t.Run("adopts cyclic chain with tail absent", func(t *testing.T) {
		l := FromNode(buildCycle(3, 0))
		assert.True(t, l.ContainsLoop())
		assert.Equal(t, 3, l.Count())

		_, ok := l.Last()
		assert.False(t, ok)
	})
}

// Test that Clone shares storage until the first write
func TestList_Clone_SharesUntilWrite(t *testing.T) {
	l1 := Of(1, 2, 3)
	l2 := l1.Clone()

	// Before any write both lists resolve searches to the identical nodes.
	assert.Same(t, l1.KthToLast(1), l2.KthToLast(1))
	assert.Same(t, l1.KthToLast(3), l2.KthToLast(3))

	// The writer diverges; the reader keeps the original nodes.
	original := l1.KthToLast(1)
	l2.Append(4)

	assert.Same(t, original, l1.KthToLast(1))
	assert.NotSame(t, original, l2.KthToLast(2))

	assert.Equal(t, []int{1, 2, 3}, l1.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, l2.ToSlice())
}

// Test mutation isolation in both directions after cloning
func TestList_Clone_Isolation(t *testing.T) {
	l1 := Of(10, 20)
	l2 := l1.Clone()

	l1.Append(30)
	l2.Prepend(5)

	assert.Equal(t, []int{10, 20, 30}, l1.ToSlice())
	assert.Equal(t, []int{5, 10, 20}, l2.ToSlice())

	l1.Append(40)
	l2.Append(99)

	assert.Equal(t, []int{10, 20, 30, 40}, l1.ToSlice())
	assert.Equal(t, []int{5, 10, 20, 99}, l2.ToSlice())
}

// Test that one writer among three clones leaves the other two sharing
func TestList_Clone_MultiWay(t *testing.T) {
	l1 := Of(1)
	l2 := l1.Clone()
	l3 := l1.Clone()

	l3.Append(2)

	// l1 and l2 still share the original nodes.
	assert.Same(t, l1.KthToLast(1), l2.KthToLast(1))
	assert.NotSame(t, l1.KthToLast(1), l3.KthToLast(2))

	assert.Equal(t, []int{1}, l1.ToSlice())
	assert.Equal(t, []int{1}, l2.ToSlice())
	assert.Equal(t, []int{1, 2}, l3.ToSlice())
}

// Test that cloned empty lists never see each other's first append
func TestList_Clone_EmptyIndependence(t *testing.T) {
	l1 := New[int]()
	l2 := l1.Clone()

	l1.Append(1)
	assert.True(t, l2.IsEmpty())

	l2.Append(9)
	assert.Equal(t, []int{1}, l1.ToSlice())
	assert.Equal(t, []int{9}, l2.ToSlice())
}

// Test cloning the zero value
func TestList_Clone_ZeroValue(t *testing.T) {
	var l1 List[int]
	l2 := l1.Clone()

	l2.Append(7)
	assert.True(t, l1.IsEmpty())
	assert.Equal(t, []int{7}, l2.ToSlice())
}

// Test that cloning a cyclic list preserves the cycle shape in the copy
func TestList_Clone_PreservesCycle(t *testing.T) {
	l1 := FromNode(buildCycle(5, 2)) // prefix 0,1 then ring 2,3,4
	l2 := l1.Clone()

	// Prepend forces the deep copy on l2; the copied chain must still loop.
	l2.Prepend(9)

	assert.True(t, l1.ContainsLoop())
	assert.True(t, l2.ContainsLoop())
	assert.Equal(t, 5, l1.Count())
	assert.Equal(t, 6, l2.Count())

	first, ok := l2.First()
	require.True(t, ok)
	assert.Equal(t, 9, first)
}

// Test appending onto empty and non-empty lists
func TestList_Append(t *testing.T) {
	t.Run("append to empty sets head and tail", func(t *testing.T) {
		l := New[int]()
		l.Append(1)

		first, _ := l.First()
		last, _ := l.Last()
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, last)
		assert.Equal(t, 1, l.Count())
	})

	t.Run("append grows at the end", func(t *testing.T) {
		l := New[int]()
		for i := 1; i <= 5; i++ {
			l.Append(i)

			last, ok := l.Last()
			require.True(t, ok)
			assert.Equal(t, i, last)
			assert.Equal(t, i, l.Count())
		}
		assert.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
	})

	t.Run("append to cyclic chain starts fresh", func(t *testing.T) {
		l := FromNode(buildCycle(3, 0))
		require.True(t, l.ContainsLoop())

		// A looped chain has no end to link from, so the new node
		// replaces the chain.
		l.Append(9)

		assert.False(t, l.ContainsLoop())
		assert.Equal(t, []int{9}, l.ToSlice())

		last, ok := l.Last()
		require.True(t, ok)
		assert.Equal(t, 9, last)
	})
}

// Test prepending onto empty, non-empty, and cyclic lists
func TestList_Prepend(t *testing.T) {
	t.Run("prepend to empty sets head and tail", func(t *testing.T) {
		l := New[int]()
		l.Prepend(1)

		first, _ := l.First()
		last, _ := l.Last()
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, last)
	})

	t.Run("prepend grows at the front", func(t *testing.T) {
		l := New[int]()
		l.Prepend(3)
		l.Prepend(2)
		l.Prepend(1)

		assert.Equal(t, []int{1, 2, 3}, l.ToSlice())

		// Tail is untouched by front growth.
		last, ok := l.Last()
		require.True(t, ok)
		assert.Equal(t, 3, last)
	})

	t.Run("prepend to cyclic chain keeps the loop", func(t *testing.T) {
		l := FromNode(buildCycle(3, 0))
		l.Prepend(9)

		assert.True(t, l.ContainsLoop())
		assert.Equal(t, 4, l.Count())

		first, ok := l.First()
		require.True(t, ok)
		assert.Equal(t, 9, first)

		_, ok = l.Last()
		assert.False(t, ok, "cyclic chain must not expose a tail")
	})
}

// Test mixed growth from both ends
func TestList_AppendPrependMix(t *testing.T) {
	l := New[int]()
	l.Append(2)
	l.Prepend(1)
	l.Append(3)
	l.Prepend(0)

	assert.Equal(t, []int{0, 1, 2, 3}, l.ToSlice())
	assert.Equal(t, 4, l.Count())

	last, _ := l.Last()
	assert.Equal(t, 3, last)
}

// Test Count across list shapes
func TestList_Count(t *testing.T) {
	empty := New[int]()
	assert.Equal(t, 0, empty.Count())

	three := Of(1, 2, 3)
	assert.Equal(t, 3, three.Count())

	t.Run("pure ring counts distinct nodes", func(t *testing.T) {
		l := FromNode(buildCycle(4, 0))
		assert.Equal(t, 4, l.Count())
	})

	t.Run("rho shape counts prefix plus cycle", func(t *testing.T) {
		l := FromNode(buildCycle(10, 7))
		assert.Equal(t, 10, l.Count())
	})
}

// Test slice export on cyclic chains visits each node once
func TestList_ToSlice_Cyclic(t *testing.T) {
	l := FromNode(buildCycle(5, 2))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, l.ToSlice())
}

// Test string rendering
func TestList_String(t *testing.T) {
	l := Of(5, 3, 4)
	assert.Equal(t, "[5 3 4]", l.String())

	empty := New[int]()
	assert.Equal(t, "[]", empty.String())
}

// Test First and Last absence reporting
func TestList_FirstLast_Empty(t *testing.T) {
	l := New[int]()

	_, ok := l.First()
	assert.False(t, ok)
	_, ok = l.Last()
	assert.False(t, ok)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkList_Append(b *testing.B) {
	l := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Append(i)
	}
}

func BenchmarkList_Clone(b *testing.B) {
	l := Of(make([]int, 1000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Clone()
	}
}

func BenchmarkList_CloneThenWrite(b *testing.B) {
	l := Of(make([]int, 1000)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := l.Clone()
		c.Append(i) // pays the deferred deep copy
	}
}
