package export

import (
	"fmt"
	"io"

	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/parquet-go/parquet-go"
)

// TableRow is one percentage row flattened with its estimate, the shape
// written to Parquet files.
type TableRow struct {
	// Formula is the lowercase model key ("epley", "brzycki")
	Formula string `parquet:"formula,snappy"`

	// Unit is the weight label ("kg", "lbs")
	Unit string `parquet:"unit,snappy"`

	// OneRepMax is the rounded estimate the row was derived from
	OneRepMax float64 `parquet:"one_rep_max,snappy"`

	Percentage int32 `parquet:"percentage,snappy"`

	Weight float64 `parquet:"weight,snappy"`

	// SuggestedReps is text so the open-ended "30+" fits the same column
	SuggestedReps string `parquet:"suggested_reps,snappy"`
}

// TableRows flattens a result into Parquet rows.
func TableRows(result *models.Result) []TableRow {
	rows := make([]TableRow, 0, len(result.Table))
	for _, r := range result.Table {
		rows = append(rows, TableRow{
			Formula:       result.Formula.Key(),
			Unit:          string(result.Unit),
			OneRepMax:     result.Estimate,
			Percentage:    int32(r.Percentage),
			Weight:        r.Weight,
			SuggestedReps: r.SuggestedReps.String(),
		})
	}
	return rows
}

func writeParquet(w io.Writer, result *models.Result) error {
	// The schema is derived from the TableRow struct tags
	writer := parquet.NewGenericWriter[TableRow](w)

	if _, err := writer.Write(TableRows(result)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
