package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Defaults of the command-line tool
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"DataType", cfg.DataType, "auto"},
		{"InputData", cfg.InputData, "data.csv"},
		{"Template", cfg.Template, "template.mustache"},
		{"HTMLOutput", cfg.HTMLOutput, "index.html"},
		{"Input.Encoding", cfg.Input.Encoding, "utf-8"},
		{"Markup.Prefix", cfg.Markup.Prefix, "md_"},
		{"Render.Collection", cfg.Render.Collection, "rows"},
		{"Render.Escape", cfg.Render.Escape, "markup"},
		{"Render.Partials", cfg.Render.Partials, ""},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if cfg.Markup.Sanitize {
		t.Error("Markup.Sanitize = true, want false")
	}
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{DataType: "tsv", Render: RenderConfig{Collection: "info"}}
	cfg.ApplyDefaults()

	if cfg.DataType != "tsv" {
		t.Errorf("DataType = %q, want %q", cfg.DataType, "tsv")
	}
	if cfg.Render.Collection != "info" {
		t.Errorf("Render.Collection = %q, want %q", cfg.Render.Collection, "info")
	}
	if cfg.InputData != DefaultInputData {
		t.Errorf("InputData = %q, want %q", cfg.InputData, DefaultInputData)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Enumerations and limits
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "empty config is valid",
			cfg:  Config{},
		},
		{
			name: "defaults are valid",
			cfg:  *DefaultConfig(),
		},
		{
			name:    "unknown data type",
			cfg:     Config{DataType: "xlsx"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "data type is case sensitive",
			cfg:     Config{DataType: "CSV"},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown escape mode",
			cfg:     Config{Render: RenderConfig{Escape: "some"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "collection with braces",
			cfg:     Config{Render: RenderConfig{Collection: "{{rows}}"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "collection with dot",
			cfg:     Config{Render: RenderConfig{Collection: "a.b"}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "prefix too long",
			cfg:     Config{Markup: MarkupConfig{Prefix: strings.Repeat("m", MaxPrefixLength+1)}},
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "title too long",
			cfg:     Config{Render: RenderConfig{Title: strings.Repeat("t", MaxTitleLength+1)}},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "full.yaml", `
dataType: tsv
inputData: people.tsv
template: table
htmlOutput: out/people.html
input:
  encoding: windows-1252
markup:
  prefix: "mk_"
  sanitize: true
render:
  collection: info
  escape: all
  partials: partials
  title: People
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DataType != "tsv" || cfg.InputData != "people.tsv" || cfg.Template != "table" {
			t.Errorf("unexpected top-level values: %+v", cfg)
		}
		if cfg.HTMLOutput != "out/people.html" {
			t.Errorf("HTMLOutput = %q", cfg.HTMLOutput)
		}
		if cfg.Input.Encoding != "windows-1252" {
			t.Errorf("Input.Encoding = %q", cfg.Input.Encoding)
		}
		if cfg.Markup.Prefix != "mk_" || !cfg.Markup.Sanitize {
			t.Errorf("Markup = %+v", cfg.Markup)
		}
		if cfg.Render != (RenderConfig{Collection: "info", Escape: "all", Partials: "partials", Title: "People"}) {
			t.Errorf("Render = %+v", cfg.Render)
		}
	})

	t.Run("partial file leaves the rest unset", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "partial.yaml", "dataType: csv\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.InputData != "" {
			t.Errorf("InputData = %q, want empty before ApplyDefaults", cfg.InputData)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "typo.yaml", "dataTyp: csv\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, dir, "bad.yaml", "dataType: json\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(filepath.Join(dir, "absent.yaml")); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "site.yml", "template: list\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("site")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Template != "list" {
		t.Errorf("Template = %q, want %q", cfg.Template, "list")
	}

	// A name with an extension is a path relative to the working directory.
	writeConfig(t, dir, "local.yaml", "title: x\n")
	if _, err := LoadConfig("local.yaml"); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig(local.yaml) error = %v, want ErrConfigParse for unknown field", err)
	}
	writeConfig(t, dir, "local.yaml", "template: table\n")
	cfg, err = LoadConfig("local.yaml")
	if err != nil {
		t.Fatalf("LoadConfig(local.yaml): %v", err)
	}
	if cfg.Template != "table" {
		t.Errorf("Template = %q, want %q", cfg.Template, "table")
	}

	_, err = LoadConfig("nothing-here")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "nothing-here.yaml") {
		t.Errorf("error %q should list tried paths", err)
	}
}
