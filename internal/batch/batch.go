// Package batch evaluates every set listed in a TOML file.
package batch

import (
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/repmax/internal/calculator"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/misterclayt0n/repmax/internal/validation"
)

// Defaults fill in unit and formula for sets that do not name their own.
type Defaults struct {
	Unit    models.Unit
	Formula models.FormulaKind
}

// Entry is the outcome for one set: either Result or Err is set.
type Entry struct {
	Index  int
	Lift   models.Lift
	Notes  string
	Result *models.Result
	Err    error
}

func ParseSetsFromTOML(path string) (*models.SetImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var imp models.SetImport
	if err := toml.Unmarshal(data, &imp); err != nil {
		return nil, err
	}

	return &imp, nil
}

// Run computes every set concurrently. Entries come back in file order and a
// bad set never stops the others.
func Run(imp *models.SetImport, defaults Defaults) ([]Entry, error) {
	// File-level settings override the caller's defaults.
	if imp.Unit != "" {
		unit, err := models.ParseUnit(imp.Unit)
		if err != nil {
			return nil, err
		}
		defaults.Unit = unit
	}
	if imp.Formula != "" {
		kind, err := models.ParseFormula(imp.Formula)
		if err != nil {
			return nil, err
		}
		defaults.Formula = kind
	}

	entries := make([]Entry, len(imp.Sets))
	var wg sync.WaitGroup
	for i := range imp.Sets {
		wg.Go(func() {
			// Each goroutine owns entries[i].
			entries[i] = evaluate(i, imp.Sets[i], defaults)
		})
	}
	wg.Wait()

	return entries, nil
}

func evaluate(i int, set models.SetTOML, defaults Defaults) Entry {
	entry := Entry{Index: i + 1, Notes: set.Notes}
	entry.Lift, entry.Result, entry.Err = compute(set, defaults)
	if entry.Err != nil {
		entry.Err = fmt.Errorf("set %d: %w", entry.Index, entry.Err)
	}
	return entry
}

func compute(set models.SetTOML, defaults Defaults) (models.Lift, *models.Result, error) {
	lift, err := models.ParseLift(set.Lift)
	if err != nil {
		return models.LiftAny, nil, err
	}

	unit := defaults.Unit
	if set.Unit != "" {
		if unit, err = models.ParseUnit(set.Unit); err != nil {
			return lift, nil, err
		}
	}
	kind := defaults.Formula
	if set.Formula != "" {
		if kind, err = models.ParseFormula(set.Formula); err != nil {
			return lift, nil, err
		}
	}

	if set.Weight == nil || set.Reps == nil {
		return lift, nil, validation.MissingInputError()
	}

	result, err := calculator.Compute(*set.Weight, *set.Reps, unit, kind)
	return lift, result, err
}
