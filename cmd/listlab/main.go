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
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/collections/cmd/listlab/config"
	"github.com/AleutianAI/collections/pkg/logging"
	"github.com/AleutianAI/collections/pkg/ux"
)

// log is the process logger, built in bootstrap once the config is loaded.
var log *logging.Logger

func main() {
	defer func() {
		if log != nil {
			_ = log.Close()
		}
	}()
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads the workbench config, builds the logger, and resolves
// the output personality. Runs before every command.
func bootstrap(cmd *cobra.Command, args []string) {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Global

	log = logging.New(logging.Config{
		Level:   logging.ParseLevel(cfg.Log.Level),
		LogDir:  cfg.Log.Dir,
		Service: "listlab",
		JSON:    cfg.Log.JSON,
	})

	// Initialize UX personality from flag or environment
	if personalityLevel != "" {
		ux.SetPersonalityLevel(ux.ParsePersonalityLevel(personalityLevel))
	} else {
		ux.InitPersonality()
	}

	log.Debug("configuration loaded",
		"bench_items", cfg.Bench.Items,
		"bench_iterations", cfg.Bench.Iterations,
		"run_parallel", cfg.Run.Parallel)
}
