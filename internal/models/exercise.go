package models

import (
	"fmt"
	"strings"
)

// Lift names the barbell movement a set belongs to. It only titles the output;
// the math is the same for every lift.
type Lift string

const (
	LiftAny      Lift = ""
	LiftBench    Lift = "Bench Press"
	LiftSquat    Lift = "Squat"
	LiftDeadlift Lift = "Deadlift"
)

// AllLifts returns the lifts that have a dedicated calculator title.
func AllLifts() []Lift {
	return []Lift{LiftBench, LiftSquat, LiftDeadlift}
}

// ParseLift accepts the short names used on the command line ("bench", "squat",
// "deadlift") as well as the full display names. An empty string is LiftAny.
func ParseLift(s string) (Lift, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LiftAny, nil
	case "bench", "bench press", "bench-press":
		return LiftBench, nil
	case "squat":
		return LiftSquat, nil
	case "deadlift":
		return LiftDeadlift, nil
	}
	return LiftAny, fmt.Errorf("unknown lift %q", s)
}

// Title is the calculator heading for the lift.
func (l Lift) Title() string {
	if l == LiftAny {
		return "1RM Calculator"
	}
	return string(l) + " 1RM Calculator"
}

//
// For TOML parsing only
//

// SetTOML is one entry of a batch file. Weight and reps are pointers so a
// missing key can be told apart from an explicit zero.
type SetTOML struct {
	Lift    string   `toml:"lift"`
	Weight  *float64 `toml:"weight"`
	Reps    *int     `toml:"reps"`
	Unit    string   `toml:"unit,omitempty"`
	Formula string   `toml:"formula,omitempty"`
	Notes   string   `toml:"notes,omitempty"`
}

type SetImport struct {
	Unit    string    `toml:"unit,omitempty"`
	Formula string    `toml:"formula,omitempty"`
	Sets    []SetTOML `toml:"set"`
}
