// Package config loads run configuration from environment variables and an
// optional .env file. Command-line flags override these values in the CLI.
package config

import (
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/steelneuf/DWH---Test/pkg/recon/logging"
)

// Config holds all configuration for a validation run.
type Config struct {
	// InputDir holds the primary source files (.xlsx, .csv, folder bundles).
	InputDir string `mapstructure:"input_dir"`
	// InputColumnsDir holds alternative sources; labels conflicting with a
	// primary source get an "_InputColumns" suffix.
	InputColumnsDir string `mapstructure:"inputcolumns_dir"`
	// OutputDir receives the two report workbooks.
	OutputDir string `mapstructure:"output_dir"`
	// ValidationDir must contain exactly one Kolommen workbook defining the
	// sheets to compare.
	ValidationDir string `mapstructure:"validation_dir"`
	// Log configures the run logger.
	Log logging.Config `mapstructure:"log"`
}

// Load reads configuration from the environment, overlaid by a .env file in
// the given directory when present.
func Load(path string) (*Config, error) {
	envPath := ".env"
	if path != "" && path != "." {
		envPath = filepath.Join(path, ".env")
	}
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	v.SetDefault("input_dir", filepath.Join("Data", "Input"))
	v.SetDefault("inputcolumns_dir", filepath.Join("Data", "InputColumns"))
	v.SetDefault("output_dir", filepath.Join("Data", "Output"))
	v.SetDefault("validation_dir", filepath.Join("Data", "Validation"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level).
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
