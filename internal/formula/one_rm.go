// Package formula estimates a one-rep max from a sub-maximal set.
package formula

import (
	"fmt"
	"math"

	"github.com/misterclayt0n/repmax/internal/models"
)

const (
	brzyckiIntercept = 1.0278
	brzyckiSlope     = 0.0278
)

// DomainError reports a formula evaluated where the model has no physical
// meaning. Brzycki is undefined once its denominator reaches zero (37 reps).
type DomainError struct {
	Formula     models.FormulaKind
	Reps        int
	Denominator float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s formula is undefined for %d reps (denominator %.4f)", e.Formula, e.Reps, e.Denominator)
}

// Estimate returns the 1RM for weight x reps under the given model, rounded to
// one decimal place.
func Estimate(weight float64, reps int, kind models.FormulaKind) (float64, error) {
	raw, err := Raw(weight, reps, kind)
	if err != nil {
		return 0, err
	}
	return Round1(raw), nil
}

// Raw is Estimate without the rounding step.
func Raw(weight float64, reps int, kind models.FormulaKind) (float64, error) {
	switch kind {
	case models.Epley:
		return CalculateEpley1RM(weight, reps), nil
	case models.Brzycki:
		return CalculateBrzycki1RM(weight, reps)
	}
	return 0, fmt.Errorf("unsupported formula %s", kind)
}

// CalculateEpley1RM returns the unrounded Epley estimate, w * (1 + r/30).
func CalculateEpley1RM(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30)
}

// CalculateBrzycki1RM returns the unrounded Brzycki estimate,
// w / (1.0278 - 0.0278r), or a DomainError once the denominator reaches zero.
func CalculateBrzycki1RM(weight float64, reps int) (float64, error) {
	denominator := brzyckiIntercept - brzyckiSlope*float64(reps)
	if denominator <= 0 {
		return 0, &DomainError{Formula: models.Brzycki, Reps: reps, Denominator: denominator}
	}
	return weight / denominator, nil
}

// Round1 rounds to one decimal place, halves away from zero (0.05 -> 0.1,
// -0.25 -> -0.3).
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
