// Package export turns a calculation result into shareable text and file
// formats.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/repmax/internal/models"
)

const (
	// ShareRows is how many of the heaviest table rows the share text includes.
	ShareRows   = 5
	Attribution = "Calculated via OneRepMaxCalculator.org"
)

// FormatText builds the plain-text summary behind the "copy results" action.
// It relies on rows being ordered heaviest first.
func FormatText(estimate models.OneRepMaxEstimate, rows []models.PercentageRow, unit models.Unit) string {
	lines := []string{
		fmt.Sprintf("🏋️ My 1RM Prediction: %s %s", FormatNumber(estimate.Value), unit),
		fmt.Sprintf("Formula: %s", estimate.Formula),
		"",
		"Training Logic:",
	}
	for _, row := range rows[:min(ShareRows, len(rows))] {
		lines = append(lines, fmt.Sprintf("%d%%: %s %s", row.Percentage, FormatNumber(row.Weight), unit))
	}
	lines = append(lines, "", Attribution)

	return strings.Join(lines, "\n")
}

// FormatNumber prints the shortest decimal form: 116.7, 105, 0.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
