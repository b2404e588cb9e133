package assets

import "github.com/alnah/go-csv2web/internal/fileutil"

// defaultLoader serves built-in templates.
var defaultLoader = NewEmbeddedLoader()

// Built-in template names.
const (
	TemplateTable = "table"
	TemplateList  = "list"
)

// IsBuiltinName reports whether ref refers to a built-in template by name
// rather than to a file: no separators and no extension.
func IsBuiltinName(ref string) bool {
	return ref != "" && !fileutil.IsFilePath(ref)
}

// LoadTemplate loads a built-in template by name.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// BuiltinNames lists the built-in templates and partials.
func BuiltinNames() []string {
	return defaultLoader.Names()
}
