// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"github.com/go-playground/validator/v10"
)

// CurrentConfigVersion is the schema version written by createDefault.
const CurrentConfigVersion = "1"

// configValidate is the package-level validator instance.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()
}

// WorkbenchConfig is the persisted listlab configuration.
//
// # Description
//
// Loaded once per process from ~/.listlab/listlab.yaml (created with
// defaults on first run). Controls logging, bench sizing, and workload
// execution. Workload scripts themselves live in separate YAML files
// passed to `listlab run`; see WorkloadFile.
type WorkbenchConfig struct {
	// Meta: config schema bookkeeping
	Meta MetaConfig `yaml:"meta"`

	// Log: logging destination and verbosity
	Log LogConfig `yaml:"log"`

	// Bench: sizing for the timed micro-runs
	Bench BenchConfig `yaml:"bench" validate:"required"`

	// Run: workload execution policy
	Run RunConfig `yaml:"run" validate:"required"`
}

type MetaConfig struct {
	Version string `yaml:"version"` // e.g. "1"
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir"`  // empty disables file logging
	JSON  bool   `yaml:"json"` // JSON lines on stderr instead of text
}

type BenchConfig struct {
	Items      int `yaml:"items" validate:"gte=1,lte=10000000"`      // list size per run
	Iterations int `yaml:"iterations" validate:"gte=1,lte=1000000"`  // timed repetitions
}

type RunConfig struct {
	Parallel    bool `yaml:"parallel"`                               // run workloads concurrently
	MaxParallel int  `yaml:"max_parallel" validate:"gte=1,lte=256"`  // goroutine cap when parallel
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() WorkbenchConfig {
	return WorkbenchConfig{
		Meta: MetaConfig{
			Version: CurrentConfigVersion,
		},
		Log: LogConfig{
			Level: "info",
		},
		Bench: BenchConfig{
			Items:      10000,
			Iterations: 100,
		},
		Run: RunConfig{
			Parallel:    true,
			MaxParallel: 8,
		},
	}
}

// Validate checks the config against its validation tags.
func (c *WorkbenchConfig) Validate() error {
	return configValidate.Struct(c)
}

// WorkloadFile is the top-level document accepted by `listlab run`.
//
// # Description
//
// A workload file scripts one or more named operation sequences, each
// applied to a fresh list. Example:
//
//	workloads:
//	  - name: dedupe-basic
//	    steps:
//	      - {op: append, value: 1}
//	      - {op: append, value: 2}
//	      - {op: append, value: 2}
//	      - {op: dedupe}
//	    expect: [1, 2]
//
// # Validation
//
// Uses go-playground/validator:
//   - Workloads: required, 1-64 elements, each element validated
//   - WorkloadSpec.Name: required, max 128 bytes
//   - WorkloadSpec.Steps: required, 1-100000 elements
//   - StepSpec.Op: required, one of the scripted operation names
//   - StepSpec.Index: must be >= 0
type WorkloadFile struct {
	Workloads []WorkloadSpec `yaml:"workloads" validate:"required,min=1,max=64,dive"`
}

// WorkloadSpec describes one scripted operation sequence.
type WorkloadSpec struct {
	Name  string     `yaml:"name" validate:"required,max=128"`
	Steps []StepSpec `yaml:"steps" validate:"required,min=1,max=100000,dive"`

	// Expect is the final sequence the list must match after all steps.
	// Nil (key absent) skips the check; an empty list is expressed as [].
	Expect *[]int `yaml:"expect"`
}

// StepSpec is a single scripted operation.
//
// Value is used by append/prepend/delete_value/enqueue; Index by
// delete_at. The other operations take no operands.
type StepSpec struct {
	Op    string `yaml:"op" validate:"required,oneof=append prepend delete_at delete_value dedupe clone enqueue dequeue"`
	Value int    `yaml:"value"`
	Index int    `yaml:"index" validate:"gte=0"`
}

// Validate checks the workload document against its validation tags.
func (f *WorkloadFile) Validate() error {
	return configValidate.Struct(f)
}
