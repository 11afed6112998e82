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
	"fmt"

	"github.com/AleutianAI/collections/pkg/ux"
)

// PrintReport renders one line per workload plus a pass/fail summary
// through the ux helpers, so output degrades cleanly when piped.
func PrintReport(results []Result) {
	passed, failed := 0, 0
	for i := range results {
		r := &results[i]
		line := fmt.Sprintf("%s  steps=%d final=%v (%s)", r.Name, r.Steps, r.Final, r.Duration)
		switch {
		case r.Passed:
			passed++
			ux.Success(line)
		case r.Err != "":
			failed++
			ux.Error(fmt.Sprintf("%s  %s", line, r.Err))
		default:
			failed++
			ux.Error(fmt.Sprintf("%s  %s", line, r.Mismatch))
		}
		ux.KeyValue("run_id", r.RunID)
	}
	ux.Summary(passed, failed, len(results))
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for i := range results {
		if !results[i].Passed {
			n++
		}
	}
	return n
}
