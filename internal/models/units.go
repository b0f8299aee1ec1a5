package models

import (
	"fmt"
	"strings"
)

// Unit is a display label. Values are never converted between units.
type Unit string

const (
	Kg  Unit = "kg"
	Lbs Unit = "lbs"
)

const (
	MaxWeightKg  = 600
	MaxWeightLbs = 1300
	MaxReps      = 30
)

// Limit returns the heaviest weight accepted for the unit.
func (u Unit) Limit() float64 {
	switch u {
	case Kg:
		return MaxWeightKg
	case Lbs:
		return MaxWeightLbs
	}
	return 0
}

// Valid reports whether u is kg or lbs.
func (u Unit) Valid() bool {
	return u == Kg || u == Lbs
}

// ParseUnit accepts kg, kgs, lb and lbs in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs":
		return Kg, nil
	case "lb", "lbs":
		return Lbs, nil
	}
	return "", fmt.Errorf("unknown unit %q (want kg or lbs)", s)
}

// FormulaKind selects the predictive model used to estimate a 1RM.
type FormulaKind int

const (
	Epley FormulaKind = iota + 1
	Brzycki
)

// Formulas returns every supported model in display order.
func Formulas() []FormulaKind {
	return []FormulaKind{Epley, Brzycki}
}

// ParseFormula accepts a formula key, case-insensitively.
func ParseFormula(s string) (FormulaKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "epley":
		return Epley, nil
	case "brzycki":
		return Brzycki, nil
	}
	return 0, fmt.Errorf("unknown formula %q (want epley or brzycki)", s)
}

// String returns the display name used in exports.
func (f FormulaKind) String() string {
	switch f {
	case Epley:
		return "Epley"
	case Brzycki:
		return "Brzycki"
	}
	return fmt.Sprintf("FormulaKind(%d)", int(f))
}

// Key is the lowercase identifier accepted by ParseFormula.
func (f FormulaKind) Key() string {
	return strings.ToLower(f.String())
}

func (f FormulaKind) MarshalText() ([]byte, error) {
	if f != Epley && f != Brzycki {
		return nil, fmt.Errorf("cannot marshal %s", f)
	}
	return []byte(f.Key()), nil
}

func (f *FormulaKind) UnmarshalText(text []byte) error {
	kind, err := ParseFormula(string(text))
	if err != nil {
		return err
	}
	*f = kind
	return nil
}
