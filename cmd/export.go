package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/repmax/internal/export"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [weight] [reps] [output-file]",
	Short: "Export the estimate and percentage table to a json, csv, toml, yaml, parquet or txt file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "one_rep_max.toml" // Default filename.
		if len(args) == 3 {
			outputFile = args[2]
		}

		var format export.Format
		var err error
		if exportFormat != "" {
			format, err = export.ParseFormat(exportFormat)
		} else {
			format, err = export.FormatFromPath(outputFile)
		}
		if err != nil {
			return err
		}

		result, err := computeArgs(args[:2])
		if err != nil {
			return err
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := export.Write(file, format, result); err != nil {
			_ = file.Close()
			return fmt.Errorf("error exporting result: %w", err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", outputFile, err)
		}

		logger.Debug("exported", "file", outputFile, "format", format)
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Result exported successfully to %s\n", outputFile)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (default: inferred from the file extension)")
	rootCmd.AddCommand(exportCmd)
}
