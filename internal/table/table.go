// Package table expands a one-rep max into a ladder of training weights.
package table

import (
	"github.com/misterclayt0n/repmax/internal/formula"
	"github.com/misterclayt0n/repmax/internal/models"
)

// Ladder is the fixed set of training percentages, heaviest first.
var Ladder = []int{95, 90, 85, 80, 75, 70, 65, 60, 55, 50}

// repBracket maps a minimum percentage to the reps usually achievable there.
type repBracket struct {
	minPercent int
	reps       int
}

// Ordered highest threshold first; the first match wins. A true max (exactly
// 100%) is a single and is handled before the brackets.
var repBrackets = []repBracket{
	{95, 2},
	{90, 4},
	{85, 6},
	{80, 8},
	{75, 10},
	{70, 12},
	{65, 15},
	{60, 20},
	{55, 25},
}

// openEndedReps is what anything under the last bracket gets: "30+".
var openEndedReps = models.SuggestedReps{Count: 30, OrMore: true}

// Generate returns one row per Ladder percentage, in Ladder order. Each call
// builds a fresh slice.
func Generate(estimate models.OneRepMaxEstimate) []models.PercentageRow {
	rows := make([]models.PercentageRow, 0, len(Ladder))
	for _, p := range Ladder {
		rows = append(rows, models.PercentageRow{
			Percentage:    p,
			Weight:        WeightAt(estimate.Value, p),
			SuggestedReps: SuggestedRepsFor(p),
		})
	}
	return rows
}

// WeightAt is the load for percent of oneRepMax, rounded to one decimal.
func WeightAt(oneRepMax float64, percent int) float64 {
	return formula.Round1(oneRepMax * float64(percent) / 100)
}

// SuggestedRepsFor looks up the rep target by percentage, not by weight.
func SuggestedRepsFor(percent int) models.SuggestedReps {
	if percent == 100 {
		return models.SuggestedReps{Count: 1}
	}
	for _, b := range repBrackets {
		if percent >= b.minPercent {
			return models.SuggestedReps{Count: b.reps}
		}
	}
	return openEndedReps
}
