// Package config loads the application configuration from a YAML file with
// environment overrides.
//
// A missing config file is not an error: defaults apply, then values from
// the environment (optionally seeded from a .env file) win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Source kinds for the event dataset.
const (
	SourceValues    = "values"    // Google Sheets values API, needs an API key
	SourcePublished = "published" // "publish to web" HTML table, keyless
)

// Config is the top-level application configuration.
type Config struct {
	// SpreadsheetID identifies the source sheet for the values API.
	SpreadsheetID string `yaml:"spreadsheet_id"`

	// APIKey authorizes the values API. Usually supplied via the
	// AFISHA_API_KEY environment variable rather than the file.
	APIKey string `yaml:"api_key"`

	// Range is the A1 range covering the event columns.
	Range string `yaml:"range"`

	// Source selects the dataset source kind.
	Source string `yaml:"source"`

	// PublishedURL is the published-sheet page for the "published" source.
	PublishedURL string `yaml:"published_url"`

	// Listen is the HTTP listen address for the serve command.
	Listen string `yaml:"listen"`

	// DataDir holds fetch snapshots for offline mode and the check diff.
	DataDir string `yaml:"data_dir"`
}

// DefaultConfig returns the in-memory defaults.
func DefaultConfig() *Config {
	return &Config{
		SpreadsheetID: "1U1qBrsnQsv2wn0EkGU7GPMZX88wcHKnc2hvHkdykUZk",
		Range:         "A1:K",
		Source:        SourceValues,
		Listen:        "127.0.0.1:8080",
		DataDir:       "~/.local/share/afisha",
	}
}

// Normalize fills zero values with defaults so partial configs behave.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.SpreadsheetID == "" {
		c.SpreadsheetID = defaults.SpreadsheetID
	}
	if c.Range == "" {
		c.Range = defaults.Range
	}
	switch c.Source {
	case SourceValues, SourcePublished:
	default:
		c.Source = SourceValues
	}
	if c.Listen == "" {
		c.Listen = defaults.Listen
	}
	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
}

// applyEnv overlays environment variables onto the config.
func (c *Config) applyEnv() {
	if v := os.Getenv("AFISHA_SPREADSHEET_ID"); v != "" {
		c.SpreadsheetID = v
	}
	if v := os.Getenv("AFISHA_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("AFISHA_LISTEN"); v != "" {
		c.Listen = v
	}
}

// Load reads the config file at path, overlays the environment, and
// normalizes the result. A missing file yields the defaults; any .env file
// in the working directory is read first, silently skipped when absent.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults plus environment.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		cfg = &Config{}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.Normalize()
	return cfg, nil
}
