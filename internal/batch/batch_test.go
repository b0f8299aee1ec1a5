package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/misterclayt0n/repmax/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const setsTOML = `
unit = "kg"

[[set]]
lift = "bench"
weight = 100
reps = 5

[[set]]
lift = "squat"
weight = 140.5
reps = 3
formula = "brzycki"
notes = "belt"

[[set]]
lift = "deadlift"
weight = 700
reps = 1

[[set]]
lift = "deadlift"
reps = 5

[[set]]
weight = 225
reps = 8
unit = "lbs"
`

func writeSets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sets.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseSetsFromTOML(t *testing.T) {
	imp, err := ParseSetsFromTOML(writeSets(t, setsTOML))
	require.NoError(t, err)
	assert.Equal(t, "kg", imp.Unit)
	require.Len(t, imp.Sets, 5)

	assert.Equal(t, "bench", imp.Sets[0].Lift)
	require.NotNil(t, imp.Sets[0].Weight)
	assert.Equal(t, 100.0, *imp.Sets[0].Weight)
	assert.Equal(t, "belt", imp.Sets[1].Notes)
	assert.Nil(t, imp.Sets[3].Weight)
}

func TestParseSetsFromTOMLErrors(t *testing.T) {
	_, err := ParseSetsFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = ParseSetsFromTOML(writeSets(t, "[[set]\nweight = "))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	imp, err := ParseSetsFromTOML(writeSets(t, setsTOML))
	require.NoError(t, err)

	entries, err := Run(imp, Defaults{Unit: models.Lbs, Formula: models.Epley})
	require.NoError(t, err)
	require.Len(t, entries, 5)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Index)
	}

	bench := entries[0]
	require.NoError(t, bench.Err)
	assert.Equal(t, models.LiftBench, bench.Lift)
	assert.Equal(t, 116.7, bench.Result.Estimate)
	assert.Equal(t, models.Kg, bench.Result.Unit)

	squat := entries[1]
	require.NoError(t, squat.Err)
	assert.Equal(t, models.Brzycki, squat.Result.Formula)
	assert.Equal(t, "belt", squat.Notes)

	assert.True(t, validation.IsKind(entries[2].Err, validation.WeightExceedsLimit))
	assert.Nil(t, entries[2].Result)
	assert.Contains(t, entries[2].Err.Error(), "set 3")

	assert.True(t, validation.IsKind(entries[3].Err, validation.MissingInput))

	generic := entries[4]
	require.NoError(t, generic.Err)
	assert.Equal(t, models.LiftAny, generic.Lift)
	assert.Equal(t, models.Lbs, generic.Result.Unit)
}

func TestRunBadFileDefaults(t *testing.T) {
	_, err := Run(&models.SetImport{Unit: "stone"}, Defaults{Unit: models.Kg, Formula: models.Epley})
	assert.Error(t, err)

	_, err = Run(&models.SetImport{Formula: "lombardi"}, Defaults{Unit: models.Kg, Formula: models.Epley})
	assert.Error(t, err)
}

func TestRunBadSetFields(t *testing.T) {
	w, r := 100.0, 5
	imp := &models.SetImport{Sets: []models.SetTOML{
		{Lift: "curl", Weight: &w, Reps: &r},
		{Weight: &w, Reps: &r, Unit: "stone"},
		{Weight: &w, Reps: &r, Formula: "lombardi"},
	}}

	entries, err := Run(imp, Defaults{Unit: models.Kg, Formula: models.Epley})
	require.NoError(t, err)
	for _, e := range entries {
		assert.Error(t, e.Err)
		assert.Nil(t, e.Result)
	}
}
