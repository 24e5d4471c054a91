// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

// Package datasets owns the three ARC task collections -- training,
// evaluation and test -- and loads them from the corpus JSON sources.
//
// A Dataset starts empty and each split is populated independently with
// LoadSplit (or all at once with LoadAll / DownloadAndLoad). Loading is
// all-or-nothing per split: on any failure the split keeps whatever mapping
// it had before; on success the new mapping fully replaces the old one.
// Splits never affect each other and the same task id may appear in more
// than one split.
//
// The challenge sources map task ids to training pairs plus the test input;
// the solution sources carry the withheld test outputs for the training and
// evaluation splits. The test split has no solution source, so its tasks
// always answer false from Task.TestOutput.
package datasets

import (
	"iter"
	"sort"

	"github.com/pkg/errors"

	"github.com/arcscope/arcscope/tasks"
)

var (
	// ErrDataSource is the cause of all load failures: unreadable files,
	// JSON that does not parse, or sources that do not have the expected
	// challenge/solution shape.
	ErrDataSource = errors.New("bad data source")

	// ErrNotFound is returned by lookups when the task id is absent from
	// the searched scope.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidSplit is returned when a split selector is not one of
	// Training, Evaluation or Test.
	ErrInvalidSplit = errors.New("invalid split")
)

// Split selects one of the three independent task collections of the corpus.
type Split int

const (
	Training Split = iota
	Evaluation
	Test
	numSplits
)

// Splits returns the three splits in their canonical order, the same order
// Find searches them in.
func Splits() []Split {
	return []Split{Training, Evaluation, Test}
}

// String implements stringer.
func (s Split) String() string {
	switch s {
	case Training:
		return "training"
	case Evaluation:
		return "evaluation"
	case Test:
		return "test"
	}
	return "invalid"
}

// ParseSplit converts a split name ("training", "evaluation" or "test") to
// its Split value. It fails wrapping ErrInvalidSplit for anything else.
func ParseSplit(name string) (Split, error) {
	for _, s := range Splits() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSplit, "%q", name)
}

// MarshalText implements encoding.TextMarshaler, so a Split serializes as
// its name in JSON.
func (s Split) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Split) UnmarshalText(text []byte) error {
	parsed, err := ParseSplit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Valid reports whether s is one of Training, Evaluation or Test.
func (s Split) Valid() bool { return s >= 0 && s < numSplits }

// Dataset holds the three split mappings from task id to Task, and the data
// directory its loaders read from. Create one with New.
type Dataset struct {
	dataDir string
	splits  [numSplits]map[string]*tasks.Task
}

// New creates an empty Dataset. dataDir is only a source locator for the
// load and download operations; a leading "~" is expanded.
func New(dataDir string) *Dataset {
	ds := &Dataset{dataDir: ReplaceTildeInDir(dataDir)}
	for i := range ds.splits {
		ds.splits[i] = make(map[string]*tasks.Task)
	}
	return ds
}

// DataDir returns the directory the dataset loads from, after "~" expansion.
func (ds *Dataset) DataDir() string { return ds.dataDir }

// Get returns the task with the given id from one specific split.
// It fails wrapping ErrInvalidSplit for a bad selector and ErrNotFound when
// the id is not in that split.
func (ds *Dataset) Get(split Split, id string) (*tasks.Task, error) {
	if !split.Valid() {
		return nil, errors.Wrapf(ErrInvalidSplit, "split(%d)", int(split))
	}
	task, found := ds.splits[split][id]
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "task %q in the %s split", id, split)
	}
	return task, nil
}

// Find searches the splits in canonical order -- training, then evaluation,
// then test -- and returns the first task with the given id along with the
// split it was found in. It fails wrapping ErrNotFound when the id is absent
// from every split.
func (ds *Dataset) Find(id string) (*tasks.Task, Split, error) {
	for _, split := range Splits() {
		if task, found := ds.splits[split][id]; found {
			return task, split, nil
		}
	}
	return nil, 0, errors.Wrapf(ErrNotFound, "task %q in any split", id)
}

// NumTasks returns the number of tasks loaded in the split.
func (ds *Dataset) NumTasks(split Split) int {
	return len(ds.split(split))
}

// TaskIDs returns the ids of the split's tasks in ascending order.
func (ds *Dataset) TaskIDs(split Split) []string {
	m := ds.split(split)
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Tasks enumerates the split's tasks in ascending id order.
func (ds *Dataset) Tasks(split Split) iter.Seq2[string, *tasks.Task] {
	return func(yield func(string, *tasks.Task) bool) {
		m := ds.split(split)
		for _, id := range ds.TaskIDs(split) {
			if !yield(id, m[id]) {
				return
			}
		}
	}
}

// split returns the mapping for the given split, panicking on an invalid
// selector -- lookups that can legitimately receive a bad selector go
// through Get/SplitStats, which return ErrInvalidSplit instead.
func (ds *Dataset) split(split Split) map[string]*tasks.Task {
	if !split.Valid() {
		panic(errors.Wrapf(ErrInvalidSplit, "split(%d)", int(split)))
	}
	return ds.splits[split]
}
