// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package tasks

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/types/grids"
)

// Role tags which position a grid occupies within its task.
type Role int8

const (
	RoleTrainInput Role = iota
	RoleTrainOutput
	RoleTestInput
	RoleTestOutput
)

// String implements stringer, returning the snake_case tag used in records
// and reports.
func (r Role) String() string {
	switch r {
	case RoleTrainInput:
		return "train_input"
	case RoleTrainOutput:
		return "train_output"
	case RoleTestInput:
		return "test_input"
	case RoleTestOutput:
		return "test_output"
	}
	return "unknown"
}

// ParseRole converts the snake_case tag back to a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{RoleTrainInput, RoleTrainOutput, RoleTestInput, RoleTestOutput} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, errors.Errorf("unknown grid role %q", s)
}

// MarshalText implements encoding.TextMarshaler, so a Role serializes as its
// snake_case tag in JSON.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// GridRef locates one grid within a task: its role and, for training grids,
// the example it belongs to. ExampleIndex is 0 for the test grids.
type GridRef struct {
	Role         Role
	ExampleIndex int
}

// Grids enumerates every grid of the task with its GridRef: the training
// pairs in presentation order (input then output for each example), then the
// test input and, when present, the test output.
func (t *Task) Grids() iter.Seq2[GridRef, *grids.Grid] {
	return func(yield func(GridRef, *grids.Grid) bool) {
		for i, ex := range t.train {
			if !yield(GridRef{Role: RoleTrainInput, ExampleIndex: i}, ex.Input()) {
				return
			}
			if !yield(GridRef{Role: RoleTrainOutput, ExampleIndex: i}, ex.Output()) {
				return
			}
		}
		if !yield(GridRef{Role: RoleTestInput}, t.testInput) {
			return
		}
		if t.testOutput != nil {
			if !yield(GridRef{Role: RoleTestOutput}, t.testOutput) {
				return
			}
		}
	}
}
