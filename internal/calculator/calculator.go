// Package calculator runs the full pipeline: validate, estimate, build the
// percentage table. Every function is pure and safe for concurrent use.
package calculator

import (
	"fmt"

	"github.com/misterclayt0n/repmax/internal/export"
	"github.com/misterclayt0n/repmax/internal/formula"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/misterclayt0n/repmax/internal/table"
	"github.com/misterclayt0n/repmax/internal/validation"
)

// Compute validates the set, estimates the 1RM and derives the table. On error
// no partial result is returned.
func Compute(weight float64, reps int, unit models.Unit, kind models.FormulaKind) (*models.Result, error) {
	m, r, err := validation.ValidateValues(weight, reps, unit)
	if err != nil {
		return nil, err
	}
	return compute(m, r, kind)
}

// ComputeInput is Compute for raw text input, as typed by a user.
func ComputeInput(weightInput, repsInput, unitInput, formulaInput string) (*models.Result, error) {
	unit, err := models.ParseUnit(unitInput)
	if err != nil {
		return nil, err
	}
	kind, err := models.ParseFormula(formulaInput)
	if err != nil {
		return nil, err
	}

	m, r, err := validation.Validate(weightInput, repsInput, unit)
	if err != nil {
		return nil, err
	}
	return compute(m, r, kind)
}

func compute(m models.Measurement, reps models.RepCount, kind models.FormulaKind) (*models.Result, error) {
	value, err := formula.Estimate(m.Value, int(reps), kind)
	if err != nil {
		return nil, err
	}

	estimate := models.OneRepMaxEstimate{Value: value, Unit: m.Unit, Formula: kind}
	return &models.Result{
		Estimate: estimate.Value,
		Unit:     estimate.Unit,
		Formula:  estimate.Formula,
		Table:    table.Generate(estimate),
	}, nil
}

// Compare computes the set under every formula, in models.Formulas order.
func Compare(weight float64, reps int, unit models.Unit) ([]*models.Result, error) {
	var results []*models.Result
	for _, kind := range models.Formulas() {
		result, err := Compute(weight, reps, unit, kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// ExportText is the shareable summary of a result.
func ExportText(result *models.Result) string {
	return export.FormatText(result.OneRepMax(), result.Table, result.Unit)
}
