package sweep

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	table := &Table{
		Points: []Point{
			{
				ArrivalRate: 0.5,
				Fraction:    0.25,
				Priority:    ClassSummary{Samples: 2, Mean: 1.75, StdDev: 0.1},
				Regular:     ClassSummary{Samples: 2, Mean: 2.5, StdDev: 0.2},
			},
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, table.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, []string{
		"arrival_rate", "priority_fraction",
		"priority_mean", "priority_stddev", "priority_replications",
		"regular_mean", "regular_stddev", "regular_replications",
	}, records[0])

	assert.Equal(t, []string{"0.5", "0.25", "1.75", "0.1", "2", "2.5", "0.2", "2"}, records[1])
}

func TestWriteCSV_UndefinedMeanRendersNA(t *testing.T) {
	// GIVEN a point whose priority class has no samples (fraction 0)
	table := &Table{
		Points: []Point{
			{
				ArrivalRate: 0.5,
				Fraction:    0.0,
				Priority:    ClassSummary{},
				Regular:     ClassSummary{Samples: 1, Mean: 2.0},
			},
		},
	}

	var buf bytes.Buffer
	assert.NoError(t, table.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	assert.NoError(t, err)

	// THEN the undefined class renders NA, never 0
	assert.Equal(t, []string{"0.5", "0", "NA", "NA", "0", "2", "0", "1"}, records[1])
}

func TestPointsForRate_SortedByFraction(t *testing.T) {
	table := &Table{
		Points: []Point{
			{ArrivalRate: 0.9, Fraction: 0.6},
			{ArrivalRate: 0.5, Fraction: 0.3},
			{ArrivalRate: 0.9, Fraction: 0.2},
		},
	}

	points := table.PointsForRate(0.9)
	assert.Len(t, points, 2)
	assert.Equal(t, 0.2, points[0].Fraction)
	assert.Equal(t, 0.6, points[1].Fraction)
}
