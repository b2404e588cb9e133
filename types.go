package csv2web

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DataType declares how the input file is delimited.
type DataType string

// Data types.
const (
	DataTypeCSV  DataType = "csv"
	DataTypeTSV  DataType = "tsv"
	DataTypeAuto DataType = "auto" // decided from the input file extension
)

// ParseDataType parses a data type name. Names are case-sensitive.
func ParseDataType(s string) (DataType, error) {
	switch dt := DataType(s); dt {
	case DataTypeCSV, DataTypeTSV, DataTypeAuto:
		return dt, nil
	}
	return "", fmt.Errorf("%w: data type %q (must be csv, tsv or auto)", ErrConfig, s)
}

// EscapeMode controls HTML escaping of {{name}} interpolations.
type EscapeMode string

// Escape modes.
const (
	// EscapeMarkup escapes plain columns and emits markup-prefixed columns
	// as HTML, since they were produced by the Markdown converter.
	EscapeMarkup EscapeMode = "markup"
	// EscapeAll escapes every {{name}}; only {{{name}}} is emitted raw.
	EscapeAll EscapeMode = "all"
	// EscapeNone never escapes.
	EscapeNone EscapeMode = "none"
)

// ParseEscapeMode parses an escape mode name.
func ParseEscapeMode(s string) (EscapeMode, error) {
	switch m := EscapeMode(s); m {
	case EscapeMarkup, EscapeAll, EscapeNone:
		return m, nil
	}
	return "", fmt.Errorf("%w: escape mode %q (must be markup, all or none)", ErrConfig, s)
}

// Default configuration values.
const (
	DefaultInputPath    = "data.csv"
	DefaultTemplatePath = "template.mustache"
	DefaultOutputPath   = "index.html"
	DefaultMarkupPrefix = "md_"
	DefaultCollection   = "rows"
)

// Config is the finished configuration of one run. It is never mutated by
// the pipeline.
type Config struct {
	DataType     DataType
	InputPath    string
	TemplatePath string // template file, or the name of a built-in template
	OutputPath   string

	Encoding     string     // IANA charset of the input (empty = UTF-8)
	MarkupPrefix string     // columns with this prefix hold Markdown
	Sanitize     bool       // sanitize converted Markdown
	Collection   string     // template key holding the records
	Escape       EscapeMode // interpolation escaping
	PartialsDir  string     // extra directory searched for partials
	Title        string     // page title (empty = input file name)
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		DataType:     DataTypeAuto,
		InputPath:    DefaultInputPath,
		TemplatePath: DefaultTemplatePath,
		OutputPath:   DefaultOutputPath,
		MarkupPrefix: DefaultMarkupPrefix,
		Collection:   DefaultCollection,
		Escape:       EscapeMarkup,
	}
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if _, err := ParseDataType(string(c.DataType)); err != nil {
		return err
	}
	if _, err := ParseEscapeMode(string(c.Escape)); err != nil {
		return err
	}
	if c.InputPath == "" {
		return fmt.Errorf("%w: input path is empty", ErrConfig)
	}
	if c.TemplatePath == "" {
		return fmt.Errorf("%w: template path is empty", ErrConfig)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output path is empty", ErrConfig)
	}
	if c.MarkupPrefix == "" {
		return fmt.Errorf("%w: markup prefix is empty", ErrConfig)
	}
	if c.Collection == "" || strings.ContainsAny(c.Collection, "{}.# \t") {
		return fmt.Errorf("%w: collection name %q is not a valid template key", ErrConfig, c.Collection)
	}
	return nil
}

// title returns the configured title or the input file name without extension.
func (c Config) title() string {
	if c.Title != "" {
		return c.Title
	}
	base := filepath.Base(c.InputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Record is one data row keyed by column name.
type Record map[string]string

// Collection is the ordered result of ingesting one input file.
type Collection struct {
	Columns []string // header names, in file order
	Records []Record // data rows, in file order
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// Stage is a state of a pipeline run.
type Stage int

// Run states, in order. StageFailed is terminal and reachable from
// StageIngesting, StageRendering and StageWriting.
const (
	StageStart Stage = iota
	StageConfigured
	StageDelimiterResolved
	StageIngesting
	StageIngested
	StageRendering
	StageRendered
	StageWriting
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:             "start",
	StageConfigured:        "configured",
	StageDelimiterResolved: "delimiter resolved",
	StageIngesting:         "ingesting",
	StageIngested:          "ingested",
	StageRendering:         "rendering",
	StageRendered:          "rendered",
	StageWriting:           "writing",
	StageDone:              "done",
	StageFailed:            "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Result describes a completed run.
type Result struct {
	OutputPath string
	Delimiter  rune
	Columns    []string
	Records    int
	HTML       []byte
}
