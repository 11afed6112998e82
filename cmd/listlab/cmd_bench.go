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
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/collections/cmd/listlab/config"
	"github.com/AleutianAI/collections/pkg/linkedlist"
	"github.com/AleutianAI/collections/pkg/ux"
)

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runBenchCommand times the container's core operations.
//
// Sizes come from the config unless overridden by flags. The quadratic
// operations (dedupe) run at a capped size so a default run stays fast.
func runBenchCommand(cmd *cobra.Command, args []string) {
	items := benchItems
	if items <= 0 {
		items = config.Global.Bench.Items
	}
	iters := benchIterations
	if iters <= 0 {
		iters = config.Global.Bench.Iterations
	}

	log.Info("bench starting", "items", items, "iterations", iters)
	ux.Title(fmt.Sprintf("Micro-benchmarks (%d items, %d iterations)", items, iters))

	timeOp("append build", iters, func() {
		l := linkedlist.New[int]()
		for i := 0; i < items; i++ {
			l.Append(i)
		}
	})

	timeOp("prepend build", iters, func() {
		l := linkedlist.New[int]()
		for i := 0; i < items; i++ {
			l.Prepend(i)
		}
	})

	base := buildList(items)

	timeOp("clone (shared)", iters, func() {
		_ = base.Clone()
	})

	timeOp("clone then first write", iters, func() {
		c := base.Clone()
		c.Append(1)
	})

	timeOp("kth-to-last (middle)", iters, func() {
		_ = base.KthToLast(items / 2)
	})

	timeOp("full iteration", iters, func() {
		total := 0
		for v := range base.All() {
			total += v
		}
		_ = total
	})

	quadItems := items
	if quadItems > 2000 {
		quadItems = 2000
		ux.Muted(fmt.Sprintf("dedupe capped at %d items", quadItems))
	}
	dupBase := buildDupList(quadItems)

	timeOp("dedupe", iters, func() {
		c := dupBase.Clone()
		linkedlist.DeleteDuplicates(&c)
	})

	timeOp("queue enqueue/dequeue", iters, func() {
		q := linkedlist.NewQueue[int]()
		for i := 0; i < items; i++ {
			_ = q.Enqueue(i)
		}
		for !q.IsEmpty() {
			q.Dequeue()
		}
	})
}

// timeOp runs fn iters times and prints total and per-run wall time.
func timeOp(name string, iters int, fn func()) {
	start := time.Now()
	for i := 0; i < iters; i++ {
		fn()
	}
	elapsed := time.Since(start)
	ux.KeyValue(name, fmt.Sprintf("%v total, %v per run", elapsed, elapsed/time.Duration(iters)))
}

// buildList returns a list of 0..n-1 in append order.
func buildList(n int) linkedlist.List[int] {
	l := linkedlist.New[int]()
	for i := 0; i < n; i++ {
		l.Append(i)
	}
	return l
}

// buildDupList returns a list of n values drawn from a small range, so
// dedupe has real work to do.
func buildDupList(n int) linkedlist.List[int] {
	distinct := n/4 + 1
	l := linkedlist.New[int]()
	for i := 0; i < n; i++ {
		l.Append(i % distinct)
	}
	return l
}
