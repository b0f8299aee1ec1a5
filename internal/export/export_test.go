package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/misterclayt0n/repmax/internal/table"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *models.Result {
	estimate := models.OneRepMaxEstimate{Value: 116.7, Unit: models.Kg, Formula: models.Epley}
	return &models.Result{
		Estimate: estimate.Value,
		Unit:     estimate.Unit,
		Formula:  estimate.Formula,
		Table:    table.Generate(estimate),
	}
}

func TestFormatText(t *testing.T) {
	result := sampleResult()
	got := FormatText(result.OneRepMax(), result.Table, result.Unit)

	want := strings.Join([]string{
		"🏋️ My 1RM Prediction: 116.7 kg",
		"Formula: Epley",
		"",
		"Training Logic:",
		"95%: 110.9 kg",
		"90%: 105 kg",
		"85%: 99.2 kg",
		"80%: 93.4 kg",
		"75%: 87.5 kg",
		"",
		"Calculated via OneRepMaxCalculator.org",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatTextTopFiveOnly(t *testing.T) {
	result := sampleResult()
	text := FormatText(result.OneRepMax(), result.Table, models.Lbs)

	var percentLines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "%: ") {
			percentLines = append(percentLines, line)
		}
	}
	require.Len(t, percentLines, ShareRows)
	for i, line := range percentLines {
		assert.True(t, strings.HasPrefix(line, fmt.Sprintf("%d%%: ", table.Ladder[i])), line)
		assert.True(t, strings.HasSuffix(line, " lbs"), line)
	}
}

func TestFormatTextShortTable(t *testing.T) {
	result := sampleResult()
	text := FormatText(result.OneRepMax(), result.Table[:2], result.Unit)
	assert.Equal(t, 2, strings.Count(text, "%: "))
	assert.True(t, strings.HasSuffix(text, "\n\n"+Attribution))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "116.7", FormatNumber(116.7))
	assert.Equal(t, "105", FormatNumber(105))
	assert.Equal(t, "0.5", FormatNumber(0.5))
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.json", JSONFormat, false},
		{"out.CSV", CSVFormat, false},
		{"dir/out.toml", TOMLFormat, false},
		{"out.yml", YAMLFormat, false},
		{"out.parquet", ParquetFormat, false},
		{"out.txt", TextFormat, false},
		{"out", "", true},
		{"out.xlsx", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteText(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, TextFormat, result))
	assert.Equal(t, FormatText(result.OneRepMax(), result.Table, result.Unit)+"\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSONFormat, sampleResult()))

	var decoded struct {
		Estimate float64 `json:"estimate"`
		Unit     string  `json:"unit"`
		Formula  string  `json:"formula"`
		Table    []struct {
			Percentage    int     `json:"percentage"`
			Weight        float64 `json:"weight"`
			SuggestedReps any     `json:"suggestedReps"`
		} `json:"table"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, 116.7, decoded.Estimate)
	assert.Equal(t, "kg", decoded.Unit)
	assert.Equal(t, "epley", decoded.Formula)
	require.Len(t, decoded.Table, 10)
	assert.Equal(t, 95, decoded.Table[0].Percentage)
	assert.Equal(t, float64(2), decoded.Table[0].SuggestedReps)
	assert.Equal(t, "30+", decoded.Table[9].SuggestedReps)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSVFormat, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"epley", "kg", "116.7", "95", "110.9", "2"}, records[1])
	assert.Equal(t, []string{"epley", "kg", "116.7", "50", "58.4", "30+"}, records[10])
}

func TestWriteTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, TOMLFormat, sampleResult()))

	var decoded map[string]any
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, 116.7, decoded["estimate"])
	assert.Equal(t, "epley", decoded["formula"])

	rows, ok := decoded["table"].([]map[string]any)
	require.True(t, ok, "table should decode as an array of tables")
	require.Len(t, rows, 10)
	assert.Equal(t, int64(95), rows[0]["percentage"])
	assert.Equal(t, int64(2), rows[0]["suggested_reps"])
	assert.Equal(t, "30+", rows[9]["suggested_reps"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAMLFormat, sampleResult()))

	var decoded struct {
		Estimate float64 `yaml:"estimate"`
		Formula  string  `yaml:"formula"`
		Table    []struct {
			Percentage    int `yaml:"percentage"`
			SuggestedReps any `yaml:"suggested_reps"`
		} `yaml:"table"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 116.7, decoded.Estimate)
	assert.Equal(t, "epley", decoded.Formula)
	require.Len(t, decoded.Table, 10)
	assert.Equal(t, 95, decoded.Table[0].Percentage)
	assert.Equal(t, 2, decoded.Table[0].SuggestedReps)
	assert.Equal(t, "30+", decoded.Table[9].SuggestedReps)
}

func TestTableRowStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(TableRow))
	require.NotNil(t, schema)

	for _, colName := range []string{"formula", "unit", "one_rep_max", "percentage", "weight", "suggested_reps"} {
		col, ok := schema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col)
	}
}

func TestWriteParquet(t *testing.T) {
	result := sampleResult()
	outputPath := filepath.Join(t.TempDir(), "table.parquet")

	file, err := os.Create(outputPath)
	require.NoError(t, err)
	require.NoError(t, Write(file, ParquetFormat, result))
	require.NoError(t, file.Close())

	in, err := os.Open(outputPath)
	require.NoError(t, err)
	defer in.Close()

	reader := parquet.NewGenericReader[TableRow](in)
	defer reader.Close()

	readData := make([]TableRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(result.Table), n)
	assert.Equal(t, TableRows(result), readData)
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, Format("xlsx"), sampleResult()))
}
