package markup

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestConverter_ToHTML - Markdown dialect coverage
// ---------------------------------------------------------------------------

func TestConverter_ToHTML(t *testing.T) {
	t.Parallel()

	conv := NewConverter()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "**bold**", "<strong>bold</strong>"},
		{"emphasis", "*em*", "<em>em</em>"},
		{"heading", "# Title", "<h1>Title</h1>"},
		{"link", "[site](https://example.com)", `<a href="https://example.com">site</a>`},
		{"unordered list", "- a\n- b", "<ul>\n<li>a</li>\n<li>b</li>\n</ul>"},
		{"strikethrough", "~~old~~", "<del>old</del>"},
		{"highlight", "==hot==", "<mark>hot</mark>"},
		{"highlight beside code span", "==hot== and `x == y`", "<mark>hot</mark> and <code>x == y</code>"},
		{"code spans keep ==", "`a == b` and `c == d`", "<code>a == b</code> and <code>c == d</code>"},
		{"double backtick span", "``a == `b` ==`` ==c==", "<code>a == `b` ==</code> <mark>c</mark>"},
		{"unmatched backtick is text", "`a ==b==", "`a <mark>b</mark>"},
		{"hard wrap", "a\nb", "a<br />\nb"},
		{"crlf normalized", "a\r\nb", "a<br />\nb"},
		{"two paragraphs kept", "one\n\ntwo", "<p>one</p>\n<p>two</p>"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := conv.ToHTML(tt.input); got != tt.want {
				t.Errorf("ToHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConverter_ToHTML_RawHTMLOmitted(t *testing.T) {
	t.Parallel()

	got := NewConverter().ToHTML("<script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}

func TestConverter_ToHTML_CodeHighlighting(t *testing.T) {
	t.Parallel()

	got := NewConverter().ToHTML("```go\nfunc main() {}\n```")
	if !strings.Contains(got, `class="chroma"`) {
		t.Errorf("expected chroma classes, got %q", got)
	}
}

func TestConverter_ToHTML_NoMarkupLeftInHeadings(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	for _, in := range []string{"# A", "## B", "### C\n\ntext", "#### D"} {
		got := conv.ToHTML(in)
		if strings.Contains(got, "#") {
			t.Errorf("ToHTML(%q) = %q, still contains '#'", in, got)
		}
	}
}

func TestConverter_ToHTML_FencedCodeKeepsEquality(t *testing.T) {
	t.Parallel()

	conv := NewConverter()
	for _, in := range []string{
		"```go\nif a == b && c == d {\n}\n```",
		"~~~\nx == 1 == y\n~~~\n\n==after==",
	} {
		got := conv.ToHTML(in)
		code, rest, _ := strings.Cut(got, "</pre>")
		if strings.Contains(code, "<mark>") {
			t.Errorf("ToHTML(%q) highlighted inside code: %q", in, got)
		}
		if strings.HasSuffix(in, "==after==") && !strings.Contains(rest, "<mark>after</mark>") {
			t.Errorf("ToHTML(%q) lost highlight after the block: %q", in, got)
		}
	}
}

func TestMarkHighlights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "==a==", markStart + "a" + markEnd},
		{"code span", "`==a==`", "`==a==`"},
		{"fenced block", "```\n==a==\n```\n==b==", "```\n==a==\n```\n" + markStart + "b" + markEnd},
		{"longer closing fence", "~~~\n==a==\n~~~~\n==b==", "~~~\n==a==\n~~~~\n" + markStart + "b" + markEnd},
		{"unclosed fence", "```\n==a==", "```\n==a=="},
		{"indented code fence marker", "    ```\n==a==", "    ```\n" + markStart + "a" + markEnd},
	}

	for _, tt := range tests {
		if got := markHighlights(tt.in); got != tt.want {
			t.Errorf("%s: markHighlights(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestWithSanitize - bluemonday policy
// ---------------------------------------------------------------------------

func TestWithSanitize(t *testing.T) {
	t.Parallel()

	conv := NewConverter(WithSanitize())

	t.Run("links get nofollow", func(t *testing.T) {
		t.Parallel()

		got := conv.ToHTML("[site](https://example.com)")
		if !strings.Contains(got, `rel="nofollow"`) {
			t.Errorf("expected rel=nofollow, got %q", got)
		}
	})

	t.Run("highlight survives", func(t *testing.T) {
		t.Parallel()

		if got := conv.ToHTML("==x=="); got != "<mark>x</mark>" {
			t.Errorf("got %q, want %q", got, "<mark>x</mark>")
		}
	})

	t.Run("chroma classes survive", func(t *testing.T) {
		t.Parallel()

		got := conv.ToHTML("```go\nx := 1\n```")
		if !strings.Contains(got, `class="chroma"`) {
			t.Errorf("expected chroma classes, got %q", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestUnwrapParagraph - Single paragraph detection
// ---------------------------------------------------------------------------

func TestUnwrapParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"<p>x</p>\n", "x"},
		{"<p>a</p>\n<p>b</p>\n", "<p>a</p>\n<p>b</p>\n"},
		{"<h1>x</h1>\n", "<h1>x</h1>\n"},
		{"<p>a</p>\n<ul>\n<li>b</li>\n</ul>\n", "<p>a</p>\n<ul>\n<li>b</li>\n</ul>\n"},
	}

	for _, tt := range tests {
		if got := unwrapParagraph(tt.in); got != tt.want {
			t.Errorf("unwrapParagraph(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
