// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"encoding/json"
	"os"
	"path"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/arcscope/arcscope/tasks"
	"github.com/arcscope/arcscope/types/grids"
)

// Standard file names of the public corpus distribution.
const (
	TrainingChallengesFile   = "arc-agi_training_challenges.json"
	TrainingSolutionsFile    = "arc-agi_training_solutions.json"
	EvaluationChallengesFile = "arc-agi_evaluation_challenges.json"
	EvaluationSolutionsFile  = "arc-agi_evaluation_solutions.json"
	TestChallengesFile       = "arc-agi_test_challenges.json"
)

// Files returns the standard challenge and solution file names for the
// split. The solutions name is empty for the test split, whose answers are
// withheld.
func (s Split) Files() (challenges, solutions string) {
	switch s {
	case Training:
		return TrainingChallengesFile, TrainingSolutionsFile
	case Evaluation:
		return EvaluationChallengesFile, EvaluationSolutionsFile
	case Test:
		return TestChallengesFile, ""
	}
	return "", ""
}

// challengeRecord is the wire form of one task in a challenge source.
// A nil Train distinguishes a missing "train" field from an empty list.
type challengeRecord struct {
	Train []pairRecord  `json:"train"`
	Test  []inputRecord `json:"test"`
}

type pairRecord struct {
	Input  [][]grids.Color `json:"input"`
	Output [][]grids.Color `json:"output"`
}

type inputRecord struct {
	Input [][]grids.Color `json:"input"`
}

// LoadSplit populates one split from a challenge source and, when the split
// has known answers, a parallel solution source. An empty solutionsPath
// means the answers are withheld and every task is loaded unsolved.
//
// The load is all-or-nothing: on success the newly built mapping fully
// replaces the split's previous one; on any failure the previous mapping is
// left untouched and the error wraps ErrDataSource.
func (ds *Dataset) LoadSplit(split Split, challengesPath, solutionsPath string) error {
	if !split.Valid() {
		return errors.Wrapf(ErrInvalidSplit, "split(%d)", int(split))
	}
	challengesPath = ReplaceTildeInDir(challengesPath)
	challenges, err := readChallenges(challengesPath)
	if err != nil {
		return err
	}
	var solutions map[string][][][]grids.Color
	if solutionsPath != "" {
		solutionsPath = ReplaceTildeInDir(solutionsPath)
		solutions, err = readSolutions(solutionsPath)
		if err != nil {
			return err
		}
	}

	newTasks := make(map[string]*tasks.Task, len(challenges))
	for id, record := range challenges {
		task, err := buildTask(id, record, solutions)
		if err != nil {
			return err
		}
		newTasks[id] = task
	}
	ds.splits[split] = newTasks
	klog.V(1).Infof("Loaded %d tasks into the %s split from %s", len(newTasks), split, challengesPath)
	return nil
}

// LoadAll loads the three splits from their standard file names under the
// dataset's data directory, in canonical order. Splits are loaded
// sequentially and earlier successful splits are kept if a later one fails.
func (ds *Dataset) LoadAll() error {
	for _, split := range Splits() {
		challengesFile, solutionsFile := split.Files()
		solutionsPath := ""
		if solutionsFile != "" {
			solutionsPath = path.Join(ds.dataDir, solutionsFile)
		}
		err := ds.LoadSplit(split, path.Join(ds.dataDir, challengesFile), solutionsPath)
		if err != nil {
			return errors.WithMessagef(err, "loading the %s split", split)
		}
	}
	return nil
}

func readChallenges(filePath string) (map[string]challengeRecord, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "reading challenges from %q: %v", filePath, err)
	}
	var challenges map[string]challengeRecord
	if err = json.Unmarshal(contents, &challenges); err != nil {
		return nil, errors.Wrapf(ErrDataSource, "parsing challenges from %q: %v", filePath, err)
	}
	return challenges, nil
}

// readSolutions parses a solution source: task id to the list of expected
// test outputs, one grid per test case.
func readSolutions(filePath string) (map[string][][][]grids.Color, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "reading solutions from %q: %v", filePath, err)
	}
	var solutions map[string][][][]grids.Color
	if err = json.Unmarshal(contents, &solutions); err != nil {
		return nil, errors.Wrapf(ErrDataSource, "parsing solutions from %q: %v", filePath, err)
	}
	return solutions, nil
}

// buildTask converts one challenge record (and its solutions entry, if any)
// into a Task. Only the first test case is taken; the corpus defines exactly
// one per task, and extra entries are ignored.
func buildTask(id string, record challengeRecord, solutions map[string][][][]grids.Color) (*tasks.Task, error) {
	if record.Train == nil {
		return nil, errors.Wrapf(ErrDataSource, "task %q has no \"train\" field", id)
	}
	if len(record.Test) == 0 {
		return nil, errors.Wrapf(ErrDataSource, "task %q has no test cases", id)
	}
	train := make([]grids.Example, 0, len(record.Train))
	for i, pair := range record.Train {
		if pair.Input == nil || pair.Output == nil {
			return nil, errors.Wrapf(ErrDataSource, "task %q training pair %d is missing its input or output grid", id, i)
		}
		example, err := grids.ExampleFromRows(pair.Input, pair.Output)
		if err != nil {
			return nil, errors.Wrapf(ErrDataSource, "task %q training pair %d: %v", id, i, err)
		}
		train = append(train, example)
	}
	if record.Test[0].Input == nil {
		return nil, errors.Wrapf(ErrDataSource, "task %q test case has no input grid", id)
	}
	testInput, err := grids.FromRows(record.Test[0].Input)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "task %q test input: %v", id, err)
	}

	solution, solved := solutions[id]
	if !solved {
		task, err := tasks.New(id, train, testInput)
		if err != nil {
			return nil, errors.Wrapf(ErrDataSource, "task %q: %v", id, err)
		}
		return task, nil
	}
	if len(solution) == 0 {
		return nil, errors.Wrapf(ErrDataSource, "task %q has an empty solutions entry", id)
	}
	testOutput, err := grids.FromRows(solution[0])
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "task %q test output: %v", id, err)
	}
	task, err := tasks.NewSolved(id, train, testInput, testOutput)
	if err != nil {
		return nil, errors.Wrapf(ErrDataSource, "task %q: %v", id, err)
	}
	return task, nil
}
