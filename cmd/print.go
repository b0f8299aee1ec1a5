package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/repmax/internal/export"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/misterclayt0n/repmax/internal/table"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var zoneColors = map[string]*color.Color{
	"Peaking":     color.New(color.FgMagenta, color.Bold),
	"Strength":    color.New(color.FgBlue, color.Bold),
	"Hypertrophy": color.New(color.FgGreen),
	"Recovery":    color.New(color.FgWhite),
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(w io.Writer, title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Fprintln(w, cyanBold("╔"+border+"╗"))
	fmt.Fprintln(w, cyanBold("║"+centerText(title, width)+"║"))
	fmt.Fprintln(w, cyanBold("╚"+border+"╝"))
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(w io.Writer, label string, value any) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(w, "  %s: %v\n", yellowBold(label), value)
}

func zoneLabel(percent int) string {
	name := table.ZoneFor(percent).Name
	if c, ok := zoneColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

func formatWeight(v float64, unit models.Unit) string {
	return export.FormatNumber(v) + " " + string(unit)
}

// printResult renders the headline and the full percentage table.
func printResult(w io.Writer, lift models.Lift, result *models.Result) error {
	printBoxedHeader(w, lift.Title())
	printMetric(w, fmt.Sprintf("Estimated 1RM (%s)", result.Formula), color.New(color.FgGreen, color.Bold).Sprint(formatWeight(result.Estimate, result.Unit)))
	fmt.Fprintln(w)

	return writePercentageTable(w, result)
}

func writePercentageTable(w io.Writer, result *models.Result) error {
	tbl := tablewriter.NewWriter(w)
	tbl.Header([]string{"Intensity", "Weight", "Reps", "Zone"})
	tbl.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range result.Table {
		data = append(data, []string{
			strconv.Itoa(row.Percentage) + "%",
			formatWeight(row.Weight, result.Unit),
			row.SuggestedReps.String(),
			zoneLabel(row.Percentage),
		})
	}

	if err := tbl.Bulk(data); err != nil {
		return err
	}
	return tbl.Render()
}
