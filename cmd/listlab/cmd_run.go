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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/collections/cmd/listlab/config"
	"github.com/AleutianAI/collections/cmd/listlab/internal/workload"
	"github.com/AleutianAI/collections/pkg/ux"
)

// =============================================================================
// COMMAND IMPLEMENTATION
// =============================================================================

// runRunCommand loads a workload file, executes it, and reports.
//
// # Description
//
// The file is validated before anything runs; a malformed script is an
// error, not a partial run. Workload failures (wrong final sequence, a
// step error) are reported per workload and turn into a non-zero exit
// code, so the command works in CI.
//
// # Examples
//
//	listlab run workloads.yaml
//	listlab run workloads.yaml --sequential
//	listlab run workloads.yaml --max-parallel 2
func runRunCommand(cmd *cobra.Command, args []string) {
	path := args[0]

	wf, err := config.LoadWorkloadFile(path)
	if err != nil {
		ux.Error(fmt.Sprintf("Failed to load workloads: %v", err))
		os.Exit(1)
	}
	workloads := workload.FromFile(wf)
	log.Info("workloads loaded", "path", path, "count", len(workloads))

	parallel := config.Global.Run.Parallel && !runSequential
	maxParallel := runMaxParallel
	if maxParallel <= 0 {
		maxParallel = config.Global.Run.MaxParallel
	}

	runner := workload.NewRunner(parallel, maxParallel, log)
	results, err := runner.Run(context.Background(), workloads)
	if err != nil {
		ux.Error(fmt.Sprintf("Run aborted: %v", err))
		os.Exit(1)
	}

	workload.PrintReport(results)
	if workload.Failed(results) > 0 {
		os.Exit(1)
	}
}
