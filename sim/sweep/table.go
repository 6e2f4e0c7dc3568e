package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvNA is the rendering of an undefined mean. Consumers (plotting,
// spreadsheets) must treat it as a missing value, not a zero.
const csvNA = "NA"

// WriteCSV renders the swept table, one row per (arrival rate, fraction)
// point, for downstream plotting and analysis.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{
		"arrival_rate", "priority_fraction",
		"priority_mean", "priority_stddev", "priority_replications",
		"regular_mean", "regular_stddev", "regular_replications",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range t.Points {
		row := []string{
			formatFloat(p.ArrivalRate),
			formatFloat(p.Fraction),
		}
		row = append(row, classColumns(p.Priority)...)
		row = append(row, classColumns(p.Regular)...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile renders the table into the named file.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	return t.WriteCSV(f)
}

func classColumns(cs ClassSummary) []string {
	if !cs.Defined() {
		return []string{csvNA, csvNA, "0"}
	}
	return []string{
		formatFloat(cs.Mean),
		formatFloat(cs.StdDev),
		fmt.Sprintf("%d", cs.Samples),
	}
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
