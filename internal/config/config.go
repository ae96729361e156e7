// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied by MergeWithDefaults when a field is unset.
const (
	DefaultPaddingWidth      = 80
	DefaultPDFTimeoutSeconds = 60
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Templates
	TemplateDir  string `json:"template_dir,omitempty"`  // Directory replacing the embedded HTML templates
	TemplateName string `json:"template_name,omitempty"` // Template file inside the template set

	// Rendering
	PaddingWidth      int    `json:"padding_width,omitempty"`       // Column width of the remote document layout
	ChromePath        string `json:"chrome_path,omitempty"`         // Browser binary used for PDF output
	PDFTimeoutSeconds int    `json:"pdf_timeout_seconds,omitempty"` // Upper bound for one PDF rasterization
	OutputDir         string `json:"output_dir,omitempty"`          // Directory for rendered files

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information

	// Google OAuth client used to refresh access tokens
	GoogleClientID     string `json:"google_client_id,omitempty"`
	GoogleClientSecret string `json:"google_client_secret,omitempty"`
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
	// Validate numeric ranges
	if c.PaddingWidth < 0 {
		return fmt.Errorf("config error: 'padding_width' must be non-negative")
	}
	if c.PDFTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'pdf_timeout_seconds' must be non-negative")
	}

	// Validate paths exist (if specified)
	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: template_dir is not a directory: %s", c.TemplateDir)
		}
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer the config file over environment values.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.TemplateName == "" {
		result.TemplateName = defaults.TemplateName
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.GoogleClientID == "" {
		result.GoogleClientID = defaults.GoogleClientID
	}
	if result.GoogleClientSecret == "" {
		result.GoogleClientSecret = defaults.GoogleClientSecret
	}

	// Int fields: use default if zero, then the built-in value
	if result.PaddingWidth == 0 {
		if defaults.PaddingWidth > 0 {
			result.PaddingWidth = defaults.PaddingWidth
		} else {
			result.PaddingWidth = DefaultPaddingWidth
		}
	}
	if result.PDFTimeoutSeconds == 0 {
		if defaults.PDFTimeoutSeconds > 0 {
			result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
		} else {
			result.PDFTimeoutSeconds = DefaultPDFTimeoutSeconds
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
