// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package workload turns validated workload specs into executable runs
// against the linked list container and verifies the outcomes.
package workload

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/collections/cmd/listlab/config"
	"github.com/AleutianAI/collections/pkg/linkedlist"
)

// Op names a scripted operation. Values match the workload file syntax.
type Op string

const (
	OpAppend      Op = "append"
	OpPrepend     Op = "prepend"
	OpDeleteAt    Op = "delete_at"
	OpDeleteValue Op = "delete_value"
	OpDedupe      Op = "dedupe"
	OpClone       Op = "clone"
	OpEnqueue     Op = "enqueue"
	OpDequeue     Op = "dequeue"
)

// Step is a single scripted operation with its operands.
type Step struct {
	Op    Op
	Value int // append, prepend, delete_value, enqueue
	Index int // delete_at
}

// Workload is one executable run: a fresh list (and queue), a step
// script, and an optional expected final sequence.
//
// # Description
//
// List steps (append, prepend, delete_at, delete_value, dedupe, clone)
// drive a List[int]; queue steps (enqueue, dequeue) drive a separate
// Queue[int]. Each clone step snapshots the list and the snapshot is
// re-checked after the script finishes, so any copy-on-write isolation
// failure surfaces as a verification mismatch.
//
// Expect compares against the list's final sequence. A workload whose
// steps are all queue operations is compared against the queue's
// remaining sequence instead.
type Workload struct {
	RunID  string
	Name   string
	Steps  []Step
	Expect *[]int
}

// Result captures the outcome of one workload execution.
type Result struct {
	RunID    string
	Name     string
	Final    []int
	Passed   bool
	Mismatch string // verification failure detail, empty when none
	Err      string // step execution error, empty when none
	Steps    int    // steps applied before stopping
	Duration time.Duration
}

// snapshot records a clone and the sequence it held when taken.
type snapshot struct {
	step  int
	want  []int
	clone linkedlist.List[int]
}

// FromSpec builds an executable workload from a validated spec and
// assigns it a fresh run ID.
func FromSpec(spec config.WorkloadSpec) *Workload {
	w := &Workload{
		RunID:  uuid.New().String(),
		Name:   spec.Name,
		Steps:  make([]Step, 0, len(spec.Steps)),
		Expect: spec.Expect,
	}
	for _, s := range spec.Steps {
		w.Steps = append(w.Steps, Step{Op: Op(s.Op), Value: s.Value, Index: s.Index})
	}
	return w
}

// FromFile builds one executable workload per spec in the file.
func FromFile(wf *config.WorkloadFile) []*Workload {
	out := make([]*Workload, 0, len(wf.Workloads))
	for _, spec := range wf.Workloads {
		out = append(out, FromSpec(spec))
	}
	return out
}

// queueOnly reports whether every step is a queue operation.
func (w *Workload) queueOnly() bool {
	if len(w.Steps) == 0 {
		return false
	}
	for _, s := range w.Steps {
		if s.Op != OpEnqueue && s.Op != OpDequeue {
			return false
		}
	}
	return true
}

// Execute runs the script against fresh structures and verifies the
// result. Step errors stop the script; verification always reports
// against whatever state was reached.
func (w *Workload) Execute(ctx context.Context) Result {
	start := time.Now()
	res := Result{RunID: w.RunID, Name: w.Name}

	list := linkedlist.New[int]()
	queue := linkedlist.NewQueue[int]()
	var snaps []snapshot

	for i, step := range w.Steps {
		if err := ctx.Err(); err != nil {
			res.Err = fmt.Sprintf("cancelled before step %d: %v", i, err)
			break
		}
		if err := apply(step, i, &list, &queue, &snaps); err != nil {
			res.Err = fmt.Sprintf("step %d (%s): %v", i, step.Op, err)
			break
		}
		res.Steps++
	}

	if w.queueOnly() {
		res.Final = queue.ToSlice()
	} else {
		res.Final = list.ToSlice()
	}
	res.Mismatch = w.verify(res.Final, snaps)
	res.Passed = res.Err == "" && res.Mismatch == ""
	res.Duration = time.Since(start)
	return res
}

// apply dispatches one step against the workload state.
func apply(step Step, at int, list *linkedlist.List[int], queue *linkedlist.Queue[int], snaps *[]snapshot) error {
	switch step.Op {
	case OpAppend:
		list.Append(step.Value)
	case OpPrepend:
		list.Prepend(step.Value)
	case OpDeleteAt:
		// DeleteAt treats an out-of-range index as a caller bug and
		// panics; scripted input gets checked here instead.
		if n := list.Count(); step.Index < 0 || step.Index >= n {
			return fmt.Errorf("index %d out of bounds for count %d", step.Index, n)
		}
		list.DeleteAt(step.Index)
	case OpDeleteValue:
		// Absence is a valid outcome for scripted deletes.
		linkedlist.DeleteValue(list, step.Value)
	case OpDedupe:
		linkedlist.DeleteDuplicates(list)
	case OpClone:
		c := list.Clone()
		*snaps = append(*snaps, snapshot{step: at, want: c.ToSlice(), clone: c})
	case OpEnqueue:
		if err := queue.Enqueue(step.Value); err != nil {
			return err
		}
	case OpDequeue:
		if _, ok := queue.Dequeue(); !ok {
			return fmt.Errorf("dequeue from an empty queue")
		}
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}

// verify checks the expected final sequence and re-checks every clone
// snapshot taken during the run.
func (w *Workload) verify(final []int, snaps []snapshot) string {
	if w.Expect != nil && !slices.Equal(final, *w.Expect) {
		return fmt.Sprintf("final sequence %v, want %v", final, *w.Expect)
	}
	for i := range snaps {
		got := snaps[i].clone.ToSlice()
		if !slices.Equal(got, snaps[i].want) {
			return fmt.Sprintf("clone taken at step %d diverged: %v, want %v",
				snaps[i].step, got, snaps[i].want)
		}
	}
	return ""
}
