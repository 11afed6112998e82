// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package workload

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/AleutianAI/collections/cmd/listlab/config"
)

// seq builds an expected-sequence pointer for workload literals.
func seq(vals ...int) *[]int {
	return &vals
}

// TestFromSpec verifies spec-to-workload mapping and run ID assignment.
func TestFromSpec(t *testing.T) {
	spec := config.WorkloadSpec{
		Name: "mapped",
		Steps: []config.StepSpec{
			{Op: "append", Value: 5},
			{Op: "delete_at", Index: 0},
		},
		Expect: seq(),
	}

	w := FromSpec(spec)
	if w.Name != "mapped" {
		t.Errorf("Name = %q, want %q", w.Name, "mapped")
	}
	if w.RunID == "" {
		t.Error("RunID should be assigned")
	}
	if len(w.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(w.Steps))
	}
	if w.Steps[0].Op != OpAppend || w.Steps[0].Value != 5 {
		t.Errorf("Steps[0] = %+v, want append value=5", w.Steps[0])
	}
	if w.Steps[1].Op != OpDeleteAt || w.Steps[1].Index != 0 {
		t.Errorf("Steps[1] = %+v, want delete_at index=0", w.Steps[1])
	}

	// Distinct workloads get distinct IDs.
	w2 := FromSpec(spec)
	if w.RunID == w2.RunID {
		t.Error("two workloads share a RunID")
	}
}

// TestFromFile verifies one workload per spec.
func TestFromFile(t *testing.T) {
	wf := &config.WorkloadFile{Workloads: []config.WorkloadSpec{
		{Name: "a", Steps: []config.StepSpec{{Op: "append", Value: 1}}},
		{Name: "b", Steps: []config.StepSpec{{Op: "prepend", Value: 2}}},
	}}

	ws := FromFile(wf)
	if len(ws) != 2 {
		t.Fatalf("len = %d, want 2", len(ws))
	}
	if ws[0].Name != "a" || ws[1].Name != "b" {
		t.Errorf("names = %q, %q; want a, b", ws[0].Name, ws[1].Name)
	}
}

// TestWorkload_Execute_AppendSequence verifies a passing list script.
func TestWorkload_Execute_AppendSequence(t *testing.T) {
	w := &Workload{
		Name: "appends",
		Steps: []Step{
			{Op: OpAppend, Value: 5},
			{Op: OpAppend, Value: 3},
			{Op: OpPrepend, Value: 9},
		},
		Expect: seq(9, 5, 3),
	}

	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
	if res.Steps != 3 {
		t.Errorf("Steps = %d, want 3", res.Steps)
	}
	if !slices.Equal(res.Final, []int{9, 5, 3}) {
		t.Errorf("Final = %v, want [9 5 3]", res.Final)
	}
}

// TestWorkload_Execute_DedupeScenario verifies the duplicate-removal script.
func TestWorkload_Execute_DedupeScenario(t *testing.T) {
	steps := []Step{}
	for _, v := range []int{1, 2, 2, 3, 3, 3, 4} {
		steps = append(steps, Step{Op: OpAppend, Value: v})
	}
	steps = append(steps, Step{Op: OpDedupe})

	w := &Workload{Name: "dedupe", Steps: steps, Expect: seq(1, 2, 3, 4)}
	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
}

// TestWorkload_Execute_Mismatch verifies a wrong expectation is reported.
func TestWorkload_Execute_Mismatch(t *testing.T) {
	w := &Workload{
		Name:   "wrong",
		Steps:  []Step{{Op: OpAppend, Value: 1}},
		Expect: seq(2),
	}

	res := w.Execute(context.Background())
	if res.Passed {
		t.Fatal("Passed = true for a mismatched expectation")
	}
	if res.Err != "" {
		t.Errorf("Err = %q, want empty", res.Err)
	}
	if res.Mismatch == "" {
		t.Error("Mismatch should describe the failure")
	}
}

// TestWorkload_Execute_CloneIsolation verifies snapshots survive later writes.
func TestWorkload_Execute_CloneIsolation(t *testing.T) {
	w := &Workload{
		Name: "cow",
		Steps: []Step{
			{Op: OpAppend, Value: 1},
			{Op: OpAppend, Value: 2},
			{Op: OpClone},
			{Op: OpAppend, Value: 3},
			{Op: OpDeleteAt, Index: 0},
		},
		Expect: seq(2, 3),
	}

	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
}

// TestWorkload_Execute_DeleteAtOutOfBounds verifies scripted bounds are
// reported as step errors instead of panics.
func TestWorkload_Execute_DeleteAtOutOfBounds(t *testing.T) {
	w := &Workload{
		Name: "oob",
		Steps: []Step{
			{Op: OpAppend, Value: 1},
			{Op: OpDeleteAt, Index: 5},
			{Op: OpAppend, Value: 2}, // never reached
		},
	}

	res := w.Execute(context.Background())
	if res.Passed {
		t.Fatal("Passed = true for an out-of-bounds delete")
	}
	if res.Steps != 1 {
		t.Errorf("Steps = %d, want 1", res.Steps)
	}
	if !strings.Contains(res.Err, "out of bounds") {
		t.Errorf("Err = %q, want bounds detail", res.Err)
	}
	// State reached before the failure is still reported.
	if !slices.Equal(res.Final, []int{1}) {
		t.Errorf("Final = %v, want [1]", res.Final)
	}
}

// TestWorkload_Execute_DequeueEmpty verifies the empty-queue step error.
func TestWorkload_Execute_DequeueEmpty(t *testing.T) {
	w := &Workload{Name: "empty", Steps: []Step{{Op: OpDequeue}}}

	res := w.Execute(context.Background())
	if res.Passed {
		t.Fatal("Passed = true for a dequeue from empty")
	}
	if !strings.Contains(res.Err, "empty") {
		t.Errorf("Err = %q, want empty-queue detail", res.Err)
	}
}

// TestWorkload_Execute_QueueOnly verifies queue scripts compare the queue.
func TestWorkload_Execute_QueueOnly(t *testing.T) {
	w := &Workload{
		Name: "fifo",
		Steps: []Step{
			{Op: OpEnqueue, Value: 10},
			{Op: OpEnqueue, Value: 20},
			{Op: OpEnqueue, Value: 30},
			{Op: OpDequeue},
			{Op: OpDequeue},
		},
		Expect: seq(30),
	}

	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
	if !slices.Equal(res.Final, []int{30}) {
		t.Errorf("Final = %v, want [30]", res.Final)
	}
}

// TestWorkload_Execute_QueueDrainToEmpty verifies `expect: []` matches a
// fully drained queue.
func TestWorkload_Execute_QueueDrainToEmpty(t *testing.T) {
	w := &Workload{
		Name: "drain",
		Steps: []Step{
			{Op: OpEnqueue, Value: 1},
			{Op: OpDequeue},
		},
		Expect: seq(),
	}

	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
}

// TestWorkload_Execute_MixedComparesList verifies a mixed script is
// compared against the list, not the queue.
func TestWorkload_Execute_MixedComparesList(t *testing.T) {
	w := &Workload{
		Name: "mixed",
		Steps: []Step{
			{Op: OpEnqueue, Value: 99},
			{Op: OpAppend, Value: 1},
		},
		Expect: seq(1),
	}

	res := w.Execute(context.Background())
	if !res.Passed {
		t.Fatalf("Passed = false: err=%q mismatch=%q", res.Err, res.Mismatch)
	}
}

// TestWorkload_Execute_Cancelled verifies a cancelled context stops the run.
func TestWorkload_Execute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &Workload{Name: "cancelled", Steps: []Step{{Op: OpAppend, Value: 1}}}
	res := w.Execute(ctx)
	if res.Passed {
		t.Fatal("Passed = true under a cancelled context")
	}
	if res.Steps != 0 {
		t.Errorf("Steps = %d, want 0", res.Steps)
	}
	if !strings.Contains(res.Err, "cancelled") {
		t.Errorf("Err = %q, want cancellation detail", res.Err)
	}
}
