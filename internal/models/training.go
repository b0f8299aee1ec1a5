package models

import (
	"encoding/json"
	"strconv"
)

// Measurement is a validated weight with its unit label.
type Measurement struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// RepCount is a validated number of repetitions, 1 through MaxReps.
type RepCount int

// OneRepMaxEstimate is the rounded output of a formula.
type OneRepMaxEstimate struct {
	Value   float64     `json:"value"`
	Unit    Unit        `json:"unit"`
	Formula FormulaKind `json:"formula"`
}

// SuggestedReps is the rep target for a training percentage. OrMore marks the
// open-ended bottom bracket, printed as "30+".
type SuggestedReps struct {
	Count  int
	OrMore bool
}

func (s SuggestedReps) String() string {
	if s.OrMore {
		return strconv.Itoa(s.Count) + "+"
	}
	return strconv.Itoa(s.Count)
}

// MarshalJSON encodes a plain count as a number and "30+" as a string.
func (s SuggestedReps) MarshalJSON() ([]byte, error) {
	if s.OrMore {
		return json.Marshal(s.String())
	}
	return json.Marshal(s.Count)
}

func (s SuggestedReps) MarshalYAML() (any, error) {
	if s.OrMore {
		return s.String(), nil
	}
	return s.Count, nil
}

func (s SuggestedReps) MarshalTOML() ([]byte, error) {
	if s.OrMore {
		return []byte(strconv.Quote(s.String())), nil
	}
	return []byte(strconv.Itoa(s.Count)), nil
}

type PercentageRow struct {
	Percentage    int           `json:"percentage" toml:"percentage" yaml:"percentage"`
	Weight        float64       `json:"weight" toml:"weight" yaml:"weight"`
	SuggestedReps SuggestedReps `json:"suggestedReps" toml:"suggested_reps" yaml:"suggested_reps"`
}

// Result is everything a single calculation produces.
type Result struct {
	Estimate float64         `json:"estimate" toml:"estimate" yaml:"estimate"`
	Unit     Unit            `json:"unit" toml:"unit" yaml:"unit"`
	Formula  FormulaKind     `json:"formula" toml:"formula" yaml:"formula"`
	Table    []PercentageRow `json:"table" toml:"table" yaml:"table"`
}

// OneRepMax returns the estimate part of the result.
func (r *Result) OneRepMax() OneRepMaxEstimate {
	return OneRepMaxEstimate{Value: r.Estimate, Unit: r.Unit, Formula: r.Formula}
}
