// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/collections/pkg/linkedlist"
	"github.com/AleutianAI/collections/pkg/ux"
)

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runDemoCommand walks the canonical container scenarios.
//
// # Description
//
// Each section builds small lists and prints before/after states through
// the ux helpers, so the same walkthrough works interactively and piped.
// Sections cover copy-on-write sharing, k-th-to-last search, the deletion
// family, FIFO queue behavior, cycle tolerance, and the two traversal
// surfaces (indexes and iterators).
//
// # Examples
//
//	listlab demo                        # Full styled walkthrough
//	listlab demo --personality machine  # Plain key=value lines
func runDemoCommand(cmd *cobra.Command, args []string) {
	log.Debug("demo starting")

	demoCopyOnWrite()
	demoSearch()
	demoDeletion()
	demoQueue()
	demoCycles()
	demoTraversal()
}

// demoCopyOnWrite shows clone sharing and write divergence.
func demoCopyOnWrite() {
	ux.Title("Copy-on-write sharing")

	original := linkedlist.Of(5, 3, 4)
	clone := original.Clone()
	ux.KeyValue("original", original.String())
	ux.KeyValue("clone (shares storage)", clone.String())

	// First writes on each side trigger the storage split.
	clone.Append(6)
	original.Prepend(9)
	ux.KeyValue("original after prepend 9", original.String())
	ux.KeyValue("clone after append 6", clone.String())
	ux.Success("clone diverged without disturbing the original")
}

// demoSearch shows k-th-to-last lookups, present and absent.
func demoSearch() {
	ux.Title("K-th to last")

	l := linkedlist.Of(5, 3, 4, 6, 8, 1)
	ux.KeyValue("list", l.String())
	for _, k := range []int{1, 2, 6, 7} {
		if n := l.KthToLast(k); n != nil {
			ux.KeyValue(fmt.Sprintf("k=%d", k), fmt.Sprintf("%d", n.Value))
		} else {
			ux.KeyValue(fmt.Sprintf("k=%d", k), "absent")
		}
	}
}

// demoDeletion shows duplicate removal and both delete operations.
func demoDeletion() {
	ux.Title("Deletion")

	l := linkedlist.Of(1, 2, 2, 3, 3, 3, 4)
	ux.KeyValue("list", l.String())
	linkedlist.DeleteDuplicates(&l)
	ux.KeyValue("after dedupe", l.String())

	removed := l.DeleteAt(1)
	ux.KeyValue(fmt.Sprintf("after delete index 1 (removed %d)", removed), l.String())

	if linkedlist.DeleteValue(&l, 4) {
		ux.KeyValue("after delete value 4", l.String())
	}
	if !linkedlist.DeleteValue(&l, 42) {
		ux.Info("delete value 42: not present, list unchanged")
	}
}

// demoQueue shows FIFO behavior and queue cloning.
func demoQueue() {
	ux.Title("FIFO queue")

	q := linkedlist.NewQueue[int]()
	for _, v := range []int{10, 20, 30} {
		_ = q.Enqueue(v)
	}
	snap := q.Clone()

	a, _ := q.Dequeue()
	b, _ := q.Dequeue()
	front, _ := q.Peek()
	back, _ := q.Last()
	ux.KeyValue("dequeued", fmt.Sprintf("%d, %d", a, b))
	ux.KeyValue("peek", fmt.Sprintf("%d", front))
	ux.KeyValue("last", fmt.Sprintf("%d", back))
	ux.KeyValue("remaining", fmt.Sprintf("%v (len %d)", q.ToSlice(), q.Len()))
	ux.KeyValue("snapshot taken before dequeues", fmt.Sprintf("%v", snap.ToSlice()))
}

// demoCycles shows loop detection and bounded traversal on a cyclic chain.
func demoCycles() {
	ux.Title("Cycle tolerance")

	// Hand-built rho shape: 0 -> 1 -> 2 -> back to 1.
	head := linkedlist.NewNode(0)
	n1 := linkedlist.NewNode(1)
	n2 := linkedlist.NewNode(2)
	head.Next = n1
	n1.Next = n2
	n2.Next = n1

	l := linkedlist.FromNode(head)
	ux.KeyValue("contains loop", fmt.Sprintf("%v", l.ContainsLoop()))
	ux.KeyValue("distinct nodes", fmt.Sprintf("%d", l.Count()))
	ux.KeyValue("one pass", fmt.Sprintf("%v", l.ToSlice()))

	// A cyclic chain has no end to link from, so append starts over.
	l.Append(7)
	ux.KeyValue("after append 7", l.String())
	ux.KeyValue("contains loop now", fmt.Sprintf("%v", l.ContainsLoop()))
}

// demoTraversal shows index walks, iterators, and range-over-func.
func demoTraversal() {
	ux.Title("Indexes and iteration")

	l := linkedlist.Of(5, 3, 4)
	single := linkedlist.NewSingle(41)
	ux.KeyValue("single-element list", single.String())

	var walked []string
	for idx := l.StartIndex(); !idx.Equal(l.EndIndex()); idx = l.IndexAfter(idx) {
		walked = append(walked, fmt.Sprintf("%d", idx.Value()))
	}
	ux.KeyValue("index walk", strings.Join(walked, ", "))

	it := l.Iterator()
	first, _ := it.Next()
	ux.KeyValue("iterator first", fmt.Sprintf("%d", first))

	total := 0
	for v := range l.All() {
		total += v
	}
	ux.KeyValue("sum via range", fmt.Sprintf("%d", total))

	f, _ := l.First()
	la, _ := l.Last()
	ux.KeyValue("first/last", fmt.Sprintf("%d/%d", f, la))
}
