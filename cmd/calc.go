package cmd

import (
	"fmt"

	"github.com/misterclayt0n/repmax/internal/calculator"
	"github.com/misterclayt0n/repmax/internal/config"
	"github.com/misterclayt0n/repmax/internal/export"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/spf13/cobra"
)

var calcCmd = &cobra.Command{
	Use:   "calc [weight] [reps]",
	Short: "Estimate a 1RM from a set and print the training percentage table",
	Example: `  repmax calc 100 5
  repmax calc 225 8 --unit lbs --formula brzycki --lift bench
  repmax calc 140 3 -o json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := computeArgs(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if cfg.Output == config.TableOutput {
			return printResult(out, cfg.Lift, result)
		}
		return export.Write(out, export.Format(cfg.Output), result)
	},
}

// computeArgs runs the calculator on the positional weight and reps.
func computeArgs(args []string) (*models.Result, error) {
	result, err := calculator.ComputeInput(args[0], args[1], string(cfg.Unit), cfg.Formula.Key())
	if err != nil {
		return nil, fmt.Errorf("failed to calculate 1RM: %w", err)
	}
	logger.Debug("calculated",
		"weight", args[0],
		"reps", args[1],
		"formula", result.Formula,
		"estimate", result.Estimate)
	return result, nil
}

func init() {
	rootCmd.AddCommand(calcCmd)
}
