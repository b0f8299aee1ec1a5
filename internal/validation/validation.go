// Package validation checks raw set input against the calculator's limits.
package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/misterclayt0n/repmax/internal/models"
)

// Kind identifies which check rejected the input.
type Kind int

const (
	MissingInput Kind = iota + 1
	NonPositiveValue
	WeightExceedsLimit
	RepsExceedLimit
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "MissingInput"
	case NonPositiveValue:
		return "NonPositiveValue"
	case WeightExceedsLimit:
		return "WeightExceedsLimit"
	case RepsExceedLimit:
		return "RepsExceedLimit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsKind reports whether err is a ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) && vErr.Kind == kind
}

// Validate parses the raw weight and reps text and runs the limit checks. The
// checks run in order and stop at the first failure.
func Validate(weightInput, repsInput string, unit models.Unit) (models.Measurement, models.RepCount, error) {
	weight, weightOK := parseWeight(weightInput)
	reps, repsOK := parseReps(repsInput)
	if !weightOK || !repsOK {
		return models.Measurement{}, 0, MissingInputError()
	}
	return ValidateValues(weight, reps, unit)
}

// ValidateValues runs the same checks on already numeric input.
func ValidateValues(weight float64, reps int, unit models.Unit) (models.Measurement, models.RepCount, error) {
	if !unit.Valid() {
		return models.Measurement{}, 0, fmt.Errorf("unknown unit %q", string(unit))
	}
	if math.IsNaN(weight) {
		return models.Measurement{}, 0, MissingInputError()
	}
	if weight <= 0 || reps <= 0 {
		return models.Measurement{}, 0, &ValidationError{
			Kind:    NonPositiveValue,
			Message: "Weight and reps must be greater than zero.",
		}
	}

	limit := unit.Limit()
	if weight > limit {
		return models.Measurement{}, 0, &ValidationError{
			Kind:    WeightExceedsLimit,
			Message: fmt.Sprintf("Whoa there, Hercules! Weight limit is %s%s.", strconv.FormatFloat(limit, 'f', -1, 64), unit),
		}
	}
	if reps > models.MaxReps {
		return models.Measurement{}, 0, &ValidationError{
			Kind:    RepsExceedLimit,
			Message: fmt.Sprintf("Max reps limited to %d for 1RM accuracy.", models.MaxReps),
		}
	}

	return models.Measurement{Value: weight, Unit: unit}, models.RepCount(reps), nil
}

// MissingInputError is the error for absent or non-numeric input.
func MissingInputError() error {
	return &ValidationError{Kind: MissingInput, Message: "Please enter both weight and reps."}
}

func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// Out-of-range input is still a number; ParseFloat hands back ±Inf and the
	// limit checks classify it.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// parseReps only accepts whole numbers; "5.5" reps is not a rep count. On
// overflow Atoi clamps to math.MaxInt or math.MinInt, which the limit checks
// then reject.
func parseReps(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
