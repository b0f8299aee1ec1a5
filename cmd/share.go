package cmd

import (
	"fmt"
	"os"

	"github.com/misterclayt0n/repmax/internal/calculator"
	"github.com/spf13/cobra"
)

var shareFile string

var shareCmd = &cobra.Command{
	Use:   "share [weight] [reps]",
	Short: "Print a short shareable summary of the estimate and the top five percentages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := computeArgs(args)
		if err != nil {
			return err
		}

		text := calculator.ExportText(result)
		if shareFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}

		if err := os.WriteFile(shareFile, []byte(text+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", shareFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "💾 Wrote share text to %s\n", shareFile)
		return nil
	},
}

func init() {
	shareCmd.Flags().StringVar(&shareFile, "file", "", "Write the summary to this file instead of stdout")
	rootCmd.AddCommand(shareCmd)
}
