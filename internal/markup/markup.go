package markup

import (
	"bytes"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns Markdown text into an HTML fragment.
type Renderer interface {
	ToHTML(content string) string
}

// Converter converts Markdown using Goldmark.
type Converter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy // nil when sanitizing is disabled
}

// Option configures a Converter.
type Option func(*Converter)

// WithSanitize passes every fragment through bluemonday's UGC policy,
// extended to keep chroma highlighting classes and <mark> tags.
func WithSanitize() Option {
	return func(c *Converter) {
		p := bluemonday.UGCPolicy()
		p.AllowElements("mark")
		p.AllowAttrs("class").OnElements("pre", "code", "span")
		c.policy = p
	}
}

// NewConverter creates a Converter with GFM extensions and syntax highlighting.
func NewConverter(opts ...Option) *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // page stylesheet controls colors
				),
			),
		),
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(), // a newline inside a cell is a line break
			ghtml.WithXHTML(),
		),
	)

	c := &Converter{md: md}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToHTML converts content to an HTML fragment.
func (c *Converter) ToHTML(content string) string {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(Preprocess(content)), &buf); err != nil {
		return html.EscapeString(content)
	}

	out := convertMarkPlaceholders(buf.String())
	out = unwrapParagraph(out)
	if c.policy != nil {
		out = c.policy.Sanitize(out)
	}
	return strings.TrimRight(out, "\n")
}

// Compile-time interface check.
var _ Renderer = (*Converter)(nil)
