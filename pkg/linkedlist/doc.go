// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package linkedlist provides a singly linked sequence with copy-on-write
// value semantics, plus a FIFO queue adapter built on top of it.
//
// The package enables:
//   - O(1) logical copies via Clone, with the deep copy deferred until the
//     first mutation on a shared chain
//   - O(1) append and prepend through a cached tail reference
//   - Cycle-tolerant traversal: loop detection, distinct-node counting, and
//     bounded scans on chains that close on themselves
//   - In-place duplicate elimination with no auxiliary allocation
//   - Position arithmetic through immutable ordinal-tagged indices
//   - FIFO access through Queue without exposing node surgery
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent use. Lists that share
// storage through Clone must be confined to a single goroutine, or handed
// off with proper synchronization, because a mutation on one touches the
// shared share count.
//
// # Example
//
//	// Build, copy cheaply, then diverge on first write
//	l := linkedlist.Of(5, 3, 4, 6, 8, 1)
//	snapshot := l.Clone()
//	l.Append(9) // deep copies; snapshot still sees six elements
//
//	// Search from the back
//	if n := l.KthToLast(2); n != nil {
//	    fmt.Println(n.Value)
//	}
//
//	// Queue vocabulary on the same storage discipline
//	var q linkedlist.Queue[string]
//	_ = q.Enqueue("job-a")
//	next, _ := q.Dequeue()
package linkedlist
