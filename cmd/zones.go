package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/repmax/internal/table"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var zonesCmd = &cobra.Command{
	Use:   "zones [one-rep-max]",
	Short: "List the training intensity zones, optionally with weight ranges for a known 1RM",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var oneRM float64
		if len(args) == 1 {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil || v <= 0 {
				return fmt.Errorf("invalid one-rep max %q: must be a positive number", args[0])
			}
			oneRM = v
		}

		headers := []string{"Zone", "Intensity", "Reps", "Goal"}
		if oneRM > 0 {
			headers = append(headers, "Weight")
		}

		tbl := tablewriter.NewWriter(cmd.OutOrStdout())
		tbl.Header(headers)

		var data [][]string
		for _, z := range table.Zones {
			row := []string{
				zoneLabel(z.MinPercent),
				fmt.Sprintf("%d-%d%%", z.MinPercent, z.MaxPercent),
				z.RepRange,
				z.Goal,
			}
			if oneRM > 0 {
				row = append(row, fmt.Sprintf("%s-%s",
					formatWeight(table.WeightAt(oneRM, z.MinPercent), cfg.Unit),
					formatWeight(table.WeightAt(oneRM, z.MaxPercent), cfg.Unit)))
			}
			data = append(data, row)
		}

		if err := tbl.Bulk(data); err != nil {
			return err
		}
		return tbl.Render()
	},
}

func init() {
	rootCmd.AddCommand(zonesCmd)
}
