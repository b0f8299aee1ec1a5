package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/misterclayt0n/repmax/internal/export"
	"github.com/misterclayt0n/repmax/internal/models"
	"github.com/spf13/viper"
)

// TableOutput renders the colored terminal table; every other output value is
// an export.Format.
const TableOutput = "table"

const (
	DefaultUnit    = models.Kg
	DefaultFormula = "epley"
	DefaultOutput  = TableOutput
)

// Config is the validated configuration shared by every command.
type Config struct {
	Unit    models.Unit
	Formula models.FormulaKind
	Lift    models.Lift
	Output  string
	Color   bool
	Verbose bool
}

// RawInput holds unvalidated values from the config file, REPMAX_* env vars
// and flags. Viper unmarshals into it.
type RawInput struct {
	Unit    string `mapstructure:"unit"`
	Formula string `mapstructure:"formula"`
	Lift    string `mapstructure:"lift"`
	Output  string `mapstructure:"output"`
	Color   bool   `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

// ErrConfigExists is returned by WriteDefault when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "repmax")
	return filepath.Join(dir, "config.toml"), nil
}

// New returns a viper instance with defaults and env binding set up. An empty
// configFile means the default config path.
func New(configFile string) *viper.Viper {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if path, err := GetConfigPath(); err == nil {
		v.SetConfigFile(path)
	}
	v.SetConfigType("toml")

	v.SetEnvPrefix("REPMAX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("config", configFile)
	v.SetDefault("unit", string(DefaultUnit))
	v.SetDefault("formula", DefaultFormula)
	v.SetDefault("lift", "")
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("color", true)
	v.SetDefault("verbose", false)

	return v
}

// LoadDotEnv reads a .env file into the process environment. A missing file
// is not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load reads the config file, merges env and bound flags, and validates the
// result. The default config file is optional; an explicit one must exist.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		if !missing || v.GetString("config") != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var raw RawInput
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return raw.Process()
}

// Process validates raw values and converts them to their typed form.
func (raw RawInput) Process() (*Config, error) {
	unit, err := models.ParseUnit(raw.Unit)
	if err != nil {
		return nil, fmt.Errorf("invalid unit: %w", err)
	}
	kind, err := models.ParseFormula(raw.Formula)
	if err != nil {
		return nil, fmt.Errorf("invalid formula: %w", err)
	}
	lift, err := models.ParseLift(raw.Lift)
	if err != nil {
		return nil, fmt.Errorf("invalid lift: %w", err)
	}

	output := strings.ToLower(strings.TrimSpace(raw.Output))
	if output != TableOutput {
		format, err := export.ParseFormat(output)
		if err != nil || format == export.ParquetFormat {
			return nil, fmt.Errorf("invalid output %q (want table, text, json, csv, toml or yaml)", raw.Output)
		}
		output = string(format)
	}

	return &Config{
		Unit:    unit,
		Formula: kind,
		Lift:    lift,
		Output:  output,
		Color:   raw.Color,
		Verbose: raw.Verbose,
	}, nil
}

type fileConfig struct {
	Unit    string `toml:"unit"`
	Formula string `toml:"formula"`
	Lift    string `toml:"lift"`
	Output  string `toml:"output"`
	Color   bool   `toml:"color"`
	Verbose bool   `toml:"verbose"`
}

// WriteDefault writes a config file holding the default settings. An existing
// file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return ErrConfigExists
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	data := fileConfig{
		Unit:    string(DefaultUnit),
		Formula: DefaultFormula,
		Output:  DefaultOutput,
		Color:   true,
	}
	if err := toml.NewEncoder(f).Encode(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}
	return nil
}
