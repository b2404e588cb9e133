package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-csv2web/internal/config"
)

// envPrefix is the prefix of every csv2web environment variable.
const envPrefix = "CSV2WEB_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // CSV2WEB_CONFIG: config file name or path
	DataType   string // CSV2WEB_DATA_TYPE: csv, tsv, auto
	InputData  string // CSV2WEB_INPUT_DATA: delimited input file
	Template   string // CSV2WEB_TEMPLATE: template file or built-in name
	HTMLOutput string // CSV2WEB_HTML_OUTPUT: output HTML file
	Encoding   string // CSV2WEB_ENCODING: input charset
	Prefix     string // CSV2WEB_MARKUP_PREFIX: prefix of Markdown columns
	Sanitize   *bool  // CSV2WEB_SANITIZE: sanitize converted Markdown
	Collection string // CSV2WEB_COLLECTION: template key holding the rows
	Escape     string // CSV2WEB_ESCAPE: markup, all, none
	Partials   string // CSV2WEB_PARTIALS: extra partials directory
	Title      string // CSV2WEB_TITLE: page title
}

// knownEnvVars lists valid CSV2WEB_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CSV2WEB_CONFIG":        true,
	"CSV2WEB_DATA_TYPE":     true,
	"CSV2WEB_INPUT_DATA":    true,
	"CSV2WEB_TEMPLATE":      true,
	"CSV2WEB_HTML_OUTPUT":   true,
	"CSV2WEB_ENCODING":      true,
	"CSV2WEB_MARKUP_PREFIX": true,
	"CSV2WEB_SANITIZE":      true,
	"CSV2WEB_COLLECTION":    true,
	"CSV2WEB_ESCAPE":        true,
	"CSV2WEB_PARTIALS":      true,
	"CSV2WEB_TITLE":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized CSV2WEB_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CSV2WEB_CONFIG"),
		DataType:   os.Getenv("CSV2WEB_DATA_TYPE"),
		InputData:  os.Getenv("CSV2WEB_INPUT_DATA"),
		Template:   os.Getenv("CSV2WEB_TEMPLATE"),
		HTMLOutput: os.Getenv("CSV2WEB_HTML_OUTPUT"),
		Encoding:   os.Getenv("CSV2WEB_ENCODING"),
		Prefix:     os.Getenv("CSV2WEB_MARKUP_PREFIX"),
		Collection: os.Getenv("CSV2WEB_COLLECTION"),
		Escape:     os.Getenv("CSV2WEB_ESCAPE"),
		Partials:   os.Getenv("CSV2WEB_PARTIALS"),
		Title:      os.Getenv("CSV2WEB_TITLE"),
	}

	// Unparseable booleans are ignored
	if v := os.Getenv("CSV2WEB_SANITIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Sanitize = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CSV2WEB_* variables.
// Helps catch typos like CSV2WEB_TEMPLATES instead of CSV2WEB_TEMPLATE.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// A set variable overrides the config file value.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	setIfNotEmpty(&cfg.DataType, env.DataType)
	setIfNotEmpty(&cfg.InputData, env.InputData)
	setIfNotEmpty(&cfg.Template, env.Template)
	setIfNotEmpty(&cfg.HTMLOutput, env.HTMLOutput)
	setIfNotEmpty(&cfg.Input.Encoding, env.Encoding)
	setIfNotEmpty(&cfg.Markup.Prefix, env.Prefix)
	setIfNotEmpty(&cfg.Render.Collection, env.Collection)
	setIfNotEmpty(&cfg.Render.Escape, env.Escape)
	setIfNotEmpty(&cfg.Render.Partials, env.Partials)
	setIfNotEmpty(&cfg.Render.Title, env.Title)

	if env.Sanitize != nil {
		cfg.Markup.Sanitize = *env.Sanitize
	}
}

func setIfNotEmpty(field *string, value string) {
	if value != "" {
		*field = value
	}
}
