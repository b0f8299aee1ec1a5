package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repmax/internal/calculator"
	"github.com/misterclayt0n/repmax/internal/validation"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [weight] [reps]",
	Short: "Show the Epley and Brzycki estimates for the same set side by side",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, reps, err := validation.Validate(args[0], args[1], cfg.Unit)
		if err != nil {
			return fmt.Errorf("failed to calculate 1RM: %w", err)
		}
		results, err := calculator.Compare(m.Value, int(reps), m.Unit)
		if err != nil {
			return fmt.Errorf("failed to calculate 1RM: %w", err)
		}

		out := cmd.OutOrStdout()
		printBoxedHeader(out, cfg.Lift.Title())
		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, r := range results {
			printMetric(out, r.Formula.String(), boldGreen(formatWeight(r.Estimate, r.Unit)))
		}
		fmt.Fprintln(out)

		headers := []string{"Intensity"}
		for _, r := range results {
			headers = append(headers, r.Formula.String())
		}
		headers = append(headers, "Reps")

		tbl := tablewriter.NewWriter(out)
		tbl.Header(headers)
		tbl.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})

		// Every result shares the same ladder, so rows line up by index.
		var data [][]string
		for i, row := range results[0].Table {
			line := []string{strconv.Itoa(row.Percentage) + "%"}
			for _, r := range results {
				line = append(line, formatWeight(r.Table[i].Weight, r.Unit))
			}
			line = append(line, row.SuggestedReps.String())
			data = append(data, line)
		}

		if err := tbl.Bulk(data); err != nil {
			return err
		}
		return tbl.Render()
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
