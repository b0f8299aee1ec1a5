package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/repmax/internal/models"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	TextFormat    Format = "text"
	JSONFormat    Format = "json"
	CSVFormat     Format = "csv"
	TOMLFormat    Format = "toml"
	YAMLFormat    Format = "yaml"
	ParquetFormat Format = "parquet"
)

// Formats lists every supported export format.
func Formats() []Format {
	return []Format{TextFormat, JSONFormat, CSVFormat, TOMLFormat, YAMLFormat, ParquetFormat}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "csv":
		return CSVFormat, nil
	case "toml":
		return TOMLFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	case "parquet":
		return ParquetFormat, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q, pass --format", path)
	}
	return ParseFormat(ext)
}

// Write encodes result to w in the given format.
func Write(w io.Writer, format Format, result *models.Result) error {
	switch format {
	case TextFormat:
		_, err := io.WriteString(w, FormatText(result.OneRepMax(), result.Table, result.Unit)+"\n")
		return err
	case JSONFormat:
		return writeJSON(w, result)
	case CSVFormat:
		return writeCSV(w, result)
	case TOMLFormat:
		return writeTOML(w, result)
	case YAMLFormat:
		return writeYAML(w, result)
	case ParquetFormat:
		return writeParquet(w, result)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// writeJSON encodes with the same two-space indentation everywhere.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

var csvHeader = []string{"formula", "unit", "one_rep_max", "percentage", "weight", "suggested_reps"}

func writeCSV(w io.Writer, result *models.Result) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range result.Table {
		record := []string{
			result.Formula.Key(),
			string(result.Unit),
			FormatNumber(result.Estimate),
			strconv.Itoa(row.Percentage),
			FormatNumber(row.Weight),
			row.SuggestedReps.String(),
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func writeTOML(w io.Writer, result *models.Result) error {
	if err := toml.NewEncoder(w).Encode(result); err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, result *models.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
