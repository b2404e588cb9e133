package csv2web

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cbroglie/mustache"

	"github.com/alnah/go-csv2web/internal/assets"
)

// PartialProvider resolves {{> name}} partials.
type PartialProvider interface {
	Get(name string) (string, error)
}

// Renderer substitutes a Collection into a mustache template.
// Rendering is pure: the same template and collection always produce the
// same bytes.
type Renderer struct {
	collection string
	prefix     string
	escape     EscapeMode
	title      string
	partials   PartialProvider
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithCollectionName sets the template key holding the records.
func WithCollectionName(name string) RendererOption {
	return func(r *Renderer) { r.collection = name }
}

// WithMarkupPrefix sets the prefix of columns that hold converted HTML.
func WithMarkupPrefix(prefix string) RendererOption {
	return func(r *Renderer) { r.prefix = prefix }
}

// WithEscapeMode sets how {{name}} interpolations are escaped.
func WithEscapeMode(mode EscapeMode) RendererOption {
	return func(r *Renderer) { r.escape = mode }
}

// WithTitle sets the value of the {{title}} key.
func WithTitle(title string) RendererOption {
	return func(r *Renderer) { r.title = title }
}

// WithPartials sets the partial provider. The default serves the built-in
// partials only.
func WithPartials(p PartialProvider) RendererOption {
	return func(r *Renderer) { r.partials = p }
}

// NewRenderer creates a Renderer with the default collection name, markup
// prefix and escape mode.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		collection: DefaultCollection,
		prefix:     DefaultMarkupPrefix,
		escape:     EscapeMarkup,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.partials == nil {
		// Never fails without directories.
		r.partials, _ = assets.NewPartialResolver()
	}
	return r
}

// Render parses tmpl and renders it against c.
//
// Besides the collection key, templates can use:
//   - columns: header names in file order
//   - count: number of records (falsy when zero)
//   - title: page title
//   - table: one entry per record with cells {column, value, markup}, in
//     column order, for layouts that don't know the column names
//
// Returns ErrTemplate for malformed template syntax.
func (r *Renderer) Render(tmpl string, c *Collection) ([]byte, error) {
	partials := r.partials
	if r.escape == EscapeMarkup {
		tmpl = promoteMarkupTags(tmpl, r.prefix)
		partials = markupPartials{base: partials, prefix: r.prefix}
	}

	parsed, err := mustache.ParseStringPartialsRaw(tmpl, partials, r.escape == EscapeNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	out, err := parsed.Render(r.context(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	return []byte(out), nil
}

func (r *Renderer) context(c *Collection) map[string]any {
	if c == nil {
		c = &Collection{}
	}

	records := c.Records
	if records == nil {
		records = []Record{}
	}

	table := make([]map[string]any, len(records))
	for i, rec := range records {
		cells := make([]map[string]any, len(c.Columns))
		for j, col := range c.Columns {
			cells[j] = map[string]any{
				"column": col,
				"value":  rec[col],
				"markup": strings.HasPrefix(col, r.prefix),
			}
		}
		table[i] = map[string]any{"cells": cells}
	}

	ctx := map[string]any{
		"columns": c.Columns,
		"count":   len(records),
		"title":   r.title,
		"table":   table,
	}
	ctx[r.collection] = records
	return ctx
}

// variableTag matches {{name}} and {{{name}}} interpolation tags. Sections,
// inverted sections, closing tags, comments, partials, delimiter changes and
// {{& name}} never match.
var variableTag = regexp.MustCompile(`\{\{(\{?)\s*([^{}!#^/>=&\s][^{}]*?)\s*(\}?)\}\}`)

// promoteMarkupTags rewrites {{md_x}} to {{{md_x}}} so converted Markdown is
// emitted as HTML. Dotted names are matched on their last segment.
func promoteMarkupTags(tmpl, prefix string) string {
	return variableTag.ReplaceAllStringFunc(tmpl, func(tag string) string {
		m := variableTag.FindStringSubmatch(tag)
		if m[1] == "{" {
			return tag
		}
		name := m[2]
		if i := strings.LastIndex(name, "."); i >= 0 {
			name = name[i+1:]
		}
		if !strings.HasPrefix(name, prefix) {
			return tag
		}
		return "{{{" + m[2] + "}}}"
	})
}

// markupPartials promotes markup tags in every partial it serves, so
// {{md_x}} behaves the same in a partial as in the main template.
type markupPartials struct {
	base   PartialProvider
	prefix string
}

func (m markupPartials) Get(name string) (string, error) {
	content, err := m.base.Get(name)
	if err != nil {
		return "", err
	}
	return promoteMarkupTags(content, m.prefix), nil
}
