package csv2web

import (
	"strings"

	"github.com/alnah/go-csv2web/internal/markup"
)

// MarkupTransformer converts the Markdown held in prefixed columns to HTML.
type MarkupTransformer struct {
	prefix    string
	converter markup.Renderer
}

// NewMarkupTransformer creates a transformer for columns starting with
// prefix. With sanitize, converted HTML is run through an allow-list
// sanitizer before it reaches the template.
func NewMarkupTransformer(prefix string, sanitize bool) *MarkupTransformer {
	var opts []markup.Option
	if sanitize {
		opts = append(opts, markup.WithSanitize())
	}
	return &MarkupTransformer{
		prefix:    prefix,
		converter: markup.NewConverter(opts...),
	}
}

// IsMarkupColumn reports whether the column holds Markdown.
func (t *MarkupTransformer) IsMarkupColumn(name string) bool {
	return strings.HasPrefix(name, t.prefix)
}

// Transform replaces the value of every markup column with its HTML
// rendering. The record is updated in place and returned; its key set is
// unchanged. Transform never fails.
func (t *MarkupTransformer) Transform(rec Record) Record {
	for name, value := range rec {
		if t.IsMarkupColumn(name) {
			rec[name] = t.converter.ToHTML(value)
		}
	}
	return rec
}

// Compile-time interface check.
var _ Transformer = (*MarkupTransformer)(nil)
