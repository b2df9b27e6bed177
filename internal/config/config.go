// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
// The threshold fields exist so operators can tune the engine defaults; the
// shipped values match production behavior.
type Config struct {
	// Paths
	OldText   string `json:"old_text,omitempty"`   // Path to the original text version
	NewText   string `json:"new_text,omitempty"`   // Path to the new text version
	OldPages  string `json:"old_pages,omitempty"`  // Directory of original page images
	NewPages  string `json:"new_pages,omitempty"`  // Directory of new page images
	Catalog   string `json:"catalog,omitempty"`    // Path to a rule catalog JSON overlay
	Fields    string `json:"fields,omitempty"`     // Path to extracted fields JSON
	OutputDir string `json:"output_dir,omitempty"` // Directory for highlighted page PNGs
	Category  string `json:"category,omitempty"`   // Document category for compliance checks

	// Engine tuning
	Workers        int     `json:"workers,omitempty"`         // Page-diff worker pool size
	PixelThreshold int     `json:"pixel_threshold,omitempty"` // Changed-pixel intensity threshold (0-255)
	MinRegionArea  int     `json:"min_region_area,omitempty"` // Noise floor for changed regions, in pixels
	SignificantPct float64 `json:"significant_pct,omitempty"` // Page change percentage above which a page is significant

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
	JSON    bool `json:"json,omitempty"`    // Emit machine-readable JSON instead of boxes
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.PixelThreshold < 0 || c.PixelThreshold > 255 {
		return fmt.Errorf("config error: 'pixel_threshold' must be in [0, 255]")
	}
	if c.MinRegionArea < 0 {
		return fmt.Errorf("config error: 'min_region_area' must be non-negative")
	}
	if c.SignificantPct < 0 || c.SignificantPct > 100 {
		return fmt.Errorf("config error: 'significant_pct' must be in [0, 100]")
	}

	// Validate file paths exist (if specified)
	for _, path := range []string{c.OldText, c.NewText, c.Catalog, c.Fields} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OldText == "" {
		result.OldText = defaults.OldText
	}
	if result.NewText == "" {
		result.NewText = defaults.NewText
	}
	if result.OldPages == "" {
		result.OldPages = defaults.OldPages
	}
	if result.NewPages == "" {
		result.NewPages = defaults.NewPages
	}
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Fields == "" {
		result.Fields = defaults.Fields
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Category == "" {
		result.Category = defaults.Category
	}

	// Numeric fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.PixelThreshold == 0 {
		result.PixelThreshold = defaults.PixelThreshold
	}
	if result.MinRegionArea == 0 {
		result.MinRegionArea = defaults.MinRegionArea
	}
	if result.SignificantPct == 0 {
		result.SignificantPct = defaults.SignificantPct
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
