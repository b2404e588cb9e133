package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-csv2web/internal/fileutil"
	"github.com/alnah/go-csv2web/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxPrefixLength     = 32
	MaxCollectionLength = 64
	MaxEncodingLength   = 40
	MaxTitleLength      = 200
)

// Defaults, kept compatible with the csv2web 1.x command line.
const (
	DefaultDataType   = "auto"
	DefaultInputData  = "data.csv"
	DefaultTemplate   = "template.mustache"
	DefaultHTMLOutput = "index.html"
	DefaultPrefix     = "md_"
	DefaultCollection = "rows"
	DefaultEscape     = "markup"
	DefaultEncoding   = "utf-8"
)

// Config holds everything a csv2web run can be configured with from a file.
// Zero values mean "not set" so environment variables and flags can layer
// on top before ApplyDefaults fills the gaps.
type Config struct {
	DataType   string       `yaml:"dataType"`   // "csv", "tsv", "auto"
	InputData  string       `yaml:"inputData"`  // Delimited input file
	Template   string       `yaml:"template"`   // Template file or built-in name
	HTMLOutput string       `yaml:"htmlOutput"` // Output HTML file
	Input      InputConfig  `yaml:"input"`
	Markup     MarkupConfig `yaml:"markup"`
	Render     RenderConfig `yaml:"render"`
}

// InputConfig defines how the input file is decoded.
type InputConfig struct {
	Encoding string `yaml:"encoding"` // IANA charset name (default: utf-8)
}

// MarkupConfig defines which columns hold Markdown and how it is converted.
type MarkupConfig struct {
	Prefix   string `yaml:"prefix"`   // Column name prefix (default: "md_")
	Sanitize bool   `yaml:"sanitize"` // Run converted HTML through a sanitizer
}

// RenderConfig defines template rendering options.
type RenderConfig struct {
	Collection string `yaml:"collection"` // Top-level key holding the rows (default: "rows")
	Escape     string `yaml:"escape"`     // "markup", "all", "none"
	Partials   string `yaml:"partials"`   // Extra partials directory
	Title      string `yaml:"title"`      // Page title (default: input file name)
}

// Validate checks enumerations and field lengths.
// Called automatically by LoadConfig.
func (c *Config) Validate() error {
	if err := validateOneOf("dataType", c.DataType, "csv", "tsv", "auto"); err != nil {
		return err
	}
	if err := validateOneOf("render.escape", c.Render.Escape, "markup", "all", "none"); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"inputData", c.InputData, MaxPathLength},
		{"template", c.Template, MaxPathLength},
		{"htmlOutput", c.HTMLOutput, MaxPathLength},
		{"input.encoding", c.Input.Encoding, MaxEncodingLength},
		{"markup.prefix", c.Markup.Prefix, MaxPrefixLength},
		{"render.collection", c.Render.Collection, MaxCollectionLength},
		{"render.partials", c.Render.Partials, MaxPathLength},
		{"render.title", c.Render.Title, MaxTitleLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.Render.Collection, "{}.# \t") {
		return fmt.Errorf("%w: render.collection %q is not a valid template key", ErrInvalidValue, c.Render.Collection)
	}

	return nil
}

// ApplyDefaults fills every unset field with its default.
func (c *Config) ApplyDefaults() {
	setDefault(&c.DataType, DefaultDataType)
	setDefault(&c.InputData, DefaultInputData)
	setDefault(&c.Template, DefaultTemplate)
	setDefault(&c.HTMLOutput, DefaultHTMLOutput)
	setDefault(&c.Input.Encoding, DefaultEncoding)
	setDefault(&c.Markup.Prefix, DefaultPrefix)
	setDefault(&c.Render.Collection, DefaultCollection)
	setDefault(&c.Render.Escape, DefaultEscape)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// validateOneOf accepts an empty value (unset) or one of allowed.
func validateOneOf(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or an extension, it's treated as a
// file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Unset fields stay empty; call ApplyDefaults once all sources are merged.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/csv2web/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "csv2web", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
