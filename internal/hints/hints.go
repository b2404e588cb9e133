// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-csv2web/internal/fileutil"
)

// ForInputNotFound returns a hint when the data file is missing.
func ForInputNotFound(path string) string {
	if path == "data.csv" {
		return format("no data.csv in the current directory; use --inputData <file>")
	}
	return format("check the path or use --inputData <file>")
}

// ForTemplateNotFound returns a hint when the template file is missing.
// Lists built-in templates that can be used by name instead.
func ForTemplateNotFound(builtins []string) string {
	hint := "use --template <file.mustache>"
	if len(builtins) > 0 {
		hint += " or a built-in: " + strings.Join(builtins, ", ")
	}
	return format(hint)
}

// ForFieldCount returns a hint for rows whose column count differs from the
// header, which is almost always a delimiter mismatch.
func ForFieldCount(path, dataType string) string {
	if dataType == "auto" && fileutil.Suffix(path, 3) != "tsv" {
		return format("file was read as comma-separated; use --dataType tsv for tab-separated data")
	}
	return format("every row must have as many fields as the header; quote values containing the delimiter")
}

// ForInvalidText returns a hint for input that is not valid UTF-8.
func ForInvalidText() string {
	return format("set the source charset with --encoding (e.g. windows-1252, iso-8859-1)")
}

// ForTemplateSyntax returns a hint for mustache parse errors.
func ForTemplateSyntax() string {
	return format("check that every {{#section}} is closed by a matching {{/section}}")
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
