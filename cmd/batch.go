package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repmax/internal/batch"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [sets.toml]",
	Short: "Estimate a 1RM for every set in a TOML file",
	Long: `Estimate a 1RM for every [[set]] listed in a TOML file.

Example file:

  unit = "kg"
  formula = "epley"

  [[set]]
  lift = "squat"
  weight = 140
  reps = 5

  [[set]]
  lift = "bench"
  weight = 225
  reps = 8
  unit = "lbs"
  formula = "brzycki"
  notes = "paused"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := batch.ParseSetsFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse sets file: %w", err)
		}

		entries, err := batch.Run(imp, batch.Defaults{Unit: cfg.Unit, Formula: cfg.Formula})
		if err != nil {
			return fmt.Errorf("failed to run batch: %w", err)
		}
		logger.Debug("batch evaluated", "file", args[0], "sets", len(entries))

		tbl := tablewriter.NewWriter(cmd.OutOrStdout())
		tbl.Header([]string{"#", "Lift", "Set", "Formula", "1RM", "Notes"})

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		failed := 0
		var data [][]string
		for _, e := range entries {
			row := []string{strconv.Itoa(e.Index), liftName(e.Lift), describeSet(imp.Sets[e.Index-1])}
			if e.Err != nil {
				failed++
				row = append(row, "-", red("error"), red(e.Err.Error()))
			} else {
				row = append(row, e.Result.Formula.String(), green(formatWeight(e.Result.Estimate, e.Result.Unit)), e.Notes)
			}
			data = append(data, row)
		}

		if err := tbl.Bulk(data); err != nil {
			return err
		}
		if err := tbl.Render(); err != nil {
			return err
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d sets failed", failed, len(entries))
		}
		return nil
	},
}

func liftName(l models.Lift) string {
	if l == models.LiftAny {
		return "-"
	}
	return string(l)
}

func describeSet(s models.SetTOML) string {
	weight, reps := "?", "?"
	if s.Weight != nil {
		weight = strconv.FormatFloat(*s.Weight, 'f', -1, 64)
	}
	if s.Reps != nil {
		reps = strconv.Itoa(*s.Reps)
	}
	return weight + " x " + reps
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
