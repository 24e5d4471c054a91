// Copyright 2026 The ArcScope Authors. SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/arcscope/arcscope/types"
	"github.com/arcscope/arcscope/types/grids"
)

// SizeSummary is the cell-count overview of a record collection.
type SizeSummary struct {
	NumGrids int     `json:"num_grids"`
	MinSize  int     `json:"min_size"`
	MaxSize  int     `json:"max_size"`
	MeanSize float64 `json:"mean_size"`
}

// SummarizeSizes reduces the records to their cell-count extremes and mean.
func SummarizeSizes(records []GridRecord) (SizeSummary, error) {
	if len(records) == 0 {
		return SizeSummary{}, errors.Wrap(ErrEmptyDataset, "no grid records to summarize")
	}
	summary := SizeSummary{
		NumGrids: len(records),
		MinSize:  records[0].Size,
		MaxSize:  records[0].Size,
	}
	total := 0
	for _, r := range records {
		total += r.Size
		summary.MinSize = min(summary.MinSize, r.Size)
		summary.MaxSize = max(summary.MaxSize, r.Size)
	}
	summary.MeanSize = float64(total) / float64(len(records))
	return summary, nil
}

// rangeStats is the min/max/mean of one dimension of the records.
type rangeStats[T interface {
	constraints.Integer | constraints.Float
}] struct {
	Min  T       `json:"min"`
	Max  T       `json:"max"`
	Mean float64 `json:"mean"`
}

// DimensionStats is the min/max/mean of one integer dimension.
type DimensionStats = rangeStats[int]

// AspectStats is the min/max/mean of the width/height aspect ratio.
type AspectStats = rangeStats[float64]

// DetailedStats extends SizeSummary with per-dimension ranges, shape
// variety and squareness.
type DetailedStats struct {
	NumGrids       int            `json:"num_grids"`
	Height         DimensionStats `json:"height"`
	Width          DimensionStats `json:"width"`
	Size           DimensionStats `json:"size"`
	UniqueShapes   int            `json:"unique_shapes"`
	SquareCount    int            `json:"square_count"`
	SquareFraction float64        `json:"square_fraction"`
	Aspect         AspectStats    `json:"aspect_ratio"`
}

func statsOver[T interface {
	constraints.Integer | constraints.Float
}](records []GridRecord, dim func(GridRecord) T) rangeStats[T] {
	stats := rangeStats[T]{Min: dim(records[0]), Max: dim(records[0])}
	total := 0.0
	for _, r := range records {
		v := dim(r)
		total += float64(v)
		stats.Min = min(stats.Min, v)
		stats.Max = max(stats.Max, v)
	}
	stats.Mean = total / float64(len(records))
	return stats
}

// Detail computes the full dimensional breakdown of the records.
func Detail(records []GridRecord) (DetailedStats, error) {
	if len(records) == 0 {
		return DetailedStats{}, errors.Wrap(ErrEmptyDataset, "no grid records to detail")
	}
	stats := DetailedStats{
		NumGrids: len(records),
		Height:   statsOver(records, func(r GridRecord) int { return r.Height }),
		Width:    statsOver(records, func(r GridRecord) int { return r.Width }),
		Size:     statsOver(records, func(r GridRecord) int { return r.Size }),
		Aspect:   statsOver(records, func(r GridRecord) float64 { return r.AspectRatio }),
	}
	shapes := types.MakeSet[grids.Shape]()
	for _, r := range records {
		shapes.Insert(grids.Shape{Height: r.Height, Width: r.Width})
		if r.IsSquare {
			stats.SquareCount++
		}
	}
	stats.UniqueShapes = len(shapes)
	stats.SquareFraction = float64(stats.SquareCount) / float64(len(records))
	return stats, nil
}

// ShapeCount is one distinct shape with its frequency over a record
// collection.
type ShapeCount struct {
	Shape    grids.Shape `json:"shape"`
	Count    int         `json:"count"`
	Fraction float64     `json:"fraction"`
}

// ShapeFrequencies returns every distinct shape with its count and
// fraction, most frequent first. Ties order by ascending height then
// width, so the result is deterministic.
func ShapeFrequencies(records []GridRecord) ([]ShapeCount, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrEmptyDataset, "no grid records to count")
	}
	counts := make(map[grids.Shape]int)
	for _, r := range records {
		counts[grids.Shape{Height: r.Height, Width: r.Width}]++
	}
	frequencies := make([]ShapeCount, 0, len(counts))
	total := float64(len(records))
	for shape, count := range counts {
		frequencies = append(frequencies, ShapeCount{
			Shape:    shape,
			Count:    count,
			Fraction: float64(count) / total,
		})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count != frequencies[j].Count {
			return frequencies[i].Count > frequencies[j].Count
		}
		if frequencies[i].Shape.Height != frequencies[j].Shape.Height {
			return frequencies[i].Shape.Height < frequencies[j].Shape.Height
		}
		return frequencies[i].Shape.Width < frequencies[j].Shape.Width
	})
	return frequencies, nil
}

// SizeCategory is one of the five fixed cell-count bands grids are bucketed
// into for reporting.
type SizeCategory int8

const (
	Tiny SizeCategory = iota
	Small
	Medium
	Large
	ExtraLarge
)

// SizeCategories returns the five bands from smallest to largest.
func SizeCategories() []SizeCategory {
	return []SizeCategory{Tiny, Small, Medium, Large, ExtraLarge}
}

// Category returns the band the cell count falls in.
func Category(size int) SizeCategory {
	switch {
	case size <= 9:
		return Tiny
	case size <= 49:
		return Small
	case size <= 225:
		return Medium
	case size <= 400:
		return Large
	}
	return ExtraLarge
}

// Bounds returns the band's inclusive cell-count range. ExtraLarge is
// open-ended upwards, its hi is math.MaxInt.
func (c SizeCategory) Bounds() (lo, hi int) {
	switch c {
	case Tiny:
		return 1, 9
	case Small:
		return 10, 49
	case Medium:
		return 50, 225
	case Large:
		return 226, 400
	case ExtraLarge:
		return 401, math.MaxInt
	}
	return 0, 0
}

// String implements stringer, in the "Tiny (1-9)" report form.
func (c SizeCategory) String() string {
	switch c {
	case Tiny:
		return "Tiny (1-9)"
	case Small:
		return "Small (10-49)"
	case Medium:
		return "Medium (50-225)"
	case Large:
		return "Large (226-400)"
	case ExtraLarge:
		return "Extra Large (401+)"
	}
	return fmt.Sprintf("SizeCategory(%d)", int(c))
}

// CountByCategory buckets the records into the size bands. Only bands with
// at least one grid appear as keys.
func CountByCategory(records []GridRecord) (map[SizeCategory]int, error) {
	if len(records) == 0 {
		return nil, errors.Wrap(ErrEmptyDataset, "no grid records to bucket")
	}
	counts := make(map[SizeCategory]int)
	for _, r := range records {
		counts[Category(r.Size)]++
	}
	return counts, nil
}

// Extremes returns the records of the smallest and the largest grid by
// cell count. Ties resolve to the earliest record.
func Extremes(records []GridRecord) (smallest, largest GridRecord, err error) {
	if len(records) == 0 {
		err = errors.Wrap(ErrEmptyDataset, "no grid records to compare")
		return
	}
	smallest, largest = records[0], records[0]
	for _, r := range records[1:] {
		if r.Size < smallest.Size {
			smallest = r
		}
		if r.Size > largest.Size {
			largest = r
		}
	}
	return
}

// Outliers holds the records below the 5th and above the 95th size
// percentile of a collection.
type Outliers struct {
	NumGrids int          `json:"num_grids"`
	P5Size   int          `json:"p5_size"`
	P95Size  int          `json:"p95_size"`
	Small    []GridRecord `json:"small"`
	Large    []GridRecord `json:"large"`
}

// SizeOutliers ranks the records by cell count and splits off both tails.
// Percentiles are taken by index over the ascending sizes: with n records,
// p5 is sizes[int(n*0.05)] and p95 is sizes[int(n*0.95)]. Small holds the
// records with Size <= p5 in ascending size order, Large those with
// Size >= p95 in descending size order.
func SizeOutliers(records []GridRecord) (Outliers, error) {
	n := len(records)
	if n == 0 {
		return Outliers{}, errors.Wrap(ErrEmptyDataset, "no grid records to rank")
	}
	sizes := make([]int, n)
	for i, r := range records {
		sizes[i] = r.Size
	}
	sort.Ints(sizes)
	outliers := Outliers{
		NumGrids: n,
		P5Size:   sizes[int(float64(n)*0.05)],
		P95Size:  sizes[int(float64(n)*0.95)],
	}
	for _, r := range records {
		if r.Size <= outliers.P5Size {
			outliers.Small = append(outliers.Small, r)
		}
		if r.Size >= outliers.P95Size {
			outliers.Large = append(outliers.Large, r)
		}
	}
	sort.SliceStable(outliers.Small, func(i, j int) bool {
		return outliers.Small[i].Size < outliers.Small[j].Size
	})
	sort.SliceStable(outliers.Large, func(i, j int) bool {
		return outliers.Large[i].Size > outliers.Large[j].Size
	})
	return outliers, nil
}
