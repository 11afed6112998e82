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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	personalityLevel string // UX personality level (full/minimal/machine)
	benchItems       int    // bench: list size override, 0 = config value
	benchIterations  int    // bench: repetition override, 0 = config value
	runSequential    bool   // run: force sequential execution
	runMaxParallel   int    // run: goroutine cap override, 0 = config value

	rootCmd = &cobra.Command{
		Use:   "listlab",
		Short: "A workbench for the copy-on-write linked list container",
		Long: `Listlab exercises the linked list container end to end: canned
demonstrations of copy-on-write sharing and cycle handling, timed
micro-runs, and scripted workloads loaded from YAML files.`,
		PersistentPreRun: bootstrap, // Defined in main.go
	}

	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Walk the canonical container scenarios",
		Long: `Runs the canonical scenarios against the container: copy-on-write
clone isolation, k-th-to-last search, duplicate removal, FIFO queue
behavior, cycle detection, and index/iterator traversal.`,
		Run: runDemoCommand, // Defined in cmd_demo.go
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Run timed micro-benchmarks against the container",
		Run:   runBenchCommand, // Defined in cmd_bench.go
	}

	runCmd = &cobra.Command{
		Use:   "run [workload.yaml]",
		Short: "Execute scripted workloads from a YAML file",
		Long: `Loads a workload file, validates it, executes each workload against
a fresh container (in parallel unless disabled), and reports pass/fail
per workload. Exits non-zero when any workload fails.`,
		Args: cobra.ExactArgs(1),
		Run:  runRunCommand, // Defined in cmd_run.go
	}
)

// init runs when the Go program starts
func init() {
	// Global UX personality flag
	rootCmd.PersistentFlags().StringVar(&personalityLevel, "personality", "",
		"Output style: full (default), minimal, or machine (scripting)")

	rootCmd.AddCommand(demoCmd)

	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().IntVar(&benchItems, "items", 0,
		"List size per timed run (default: config bench.items)")
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 0,
		"Timed repetitions per operation (default: config bench.iterations)")

	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runSequential, "sequential", false,
		"Run workloads one at a time even when the config enables parallelism")
	runCmd.Flags().IntVar(&runMaxParallel, "max-parallel", 0,
		"Concurrent workload cap (default: config run.max_parallel)")
}
