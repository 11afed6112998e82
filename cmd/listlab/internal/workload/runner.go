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

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/collections/pkg/logging"
)

// Runner executes workloads sequentially or in parallel.
//
// Workload failures are recorded in their Result, not propagated;
// Run only returns an error when the context is cancelled.
type Runner struct {
	Parallel    bool
	MaxParallel int
	Log         *logging.Logger
}

// NewRunner builds a runner. A nil logger falls back to the package
// default; MaxParallel below 1 is treated as 1.
func NewRunner(parallel bool, maxParallel int, log *logging.Logger) *Runner {
	if log == nil {
		log = logging.Default()
	}
	if maxParallel < 1 {
		maxParallel = 1
	}
	return &Runner{Parallel: parallel, MaxParallel: maxParallel, Log: log}
}

// Run executes the workloads and returns one result per workload, in
// input order regardless of execution order.
func (r *Runner) Run(ctx context.Context, workloads []*Workload) ([]Result, error) {
	results := make([]Result, len(workloads))
	if len(workloads) == 0 {
		return results, nil
	}

	if !r.Parallel || len(workloads) == 1 {
		for i, w := range workloads {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			results[i] = r.runOne(ctx, w)
		}
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.MaxParallel)

	for i, w := range workloads {
		i, w := i, w // Capture loop variables

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own slot.
			results[i] = r.runOne(gCtx, w)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, w *Workload) Result {
	r.Log.Debug("workload starting", "run_id", w.RunID, "name", w.Name, "steps", len(w.Steps))
	res := w.Execute(ctx)
	if res.Passed {
		r.Log.Info("workload passed",
			"run_id", res.RunID, "name", res.Name,
			"steps", res.Steps, "duration_ms", res.Duration.Milliseconds())
	} else {
		r.Log.Warn("workload failed",
			"run_id", res.RunID, "name", res.Name,
			"err", res.Err, "mismatch", res.Mismatch)
	}
	return res
}
