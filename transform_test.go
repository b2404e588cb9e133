package csv2web

import (
	"strings"
	"testing"
)

func TestMarkupTransformer_Transform(t *testing.T) {
	t.Parallel()

	tr := NewMarkupTransformer(DefaultMarkupPrefix, false)
	rec := tr.Transform(Record{
		"name":    "**Ada**",
		"md_bio":  "**bold**",
		"md_head": "# Heading",
		"md_list": "- one\n- two",
		"md_none": "",
	})

	want := map[string]string{
		"name":    "**Ada**",
		"md_bio":  "<strong>bold</strong>",
		"md_head": "<h1>Heading</h1>",
		"md_list": "<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
		"md_none": "",
	}
	if len(rec) != len(want) {
		t.Fatalf("record has %d keys, want %d", len(rec), len(want))
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("rec[%q] = %q, want %q", k, rec[k], v)
		}
	}
}

func TestMarkupTransformer_PrefixIsCaseSensitive(t *testing.T) {
	t.Parallel()

	tr := NewMarkupTransformer("md_", false)
	rec := tr.Transform(Record{"MD_x": "*a*", "xmd_y": "*b*"})
	if rec["MD_x"] != "*a*" || rec["xmd_y"] != "*b*" {
		t.Errorf("non-prefixed columns changed: %v", rec)
	}
}

func TestMarkupTransformer_CustomPrefix(t *testing.T) {
	t.Parallel()

	tr := NewMarkupTransformer("html:", false)
	rec := tr.Transform(Record{"html:body": "_x_", "md_body": "_y_"})
	if rec["html:body"] != "<em>x</em>" {
		t.Errorf("html:body = %q", rec["html:body"])
	}
	if rec["md_body"] != "_y_" {
		t.Errorf("md_body = %q, want unchanged", rec["md_body"])
	}
}

func TestMarkupTransformer_NoMarkupSyntaxRemains(t *testing.T) {
	t.Parallel()

	tr := NewMarkupTransformer(DefaultMarkupPrefix, false)
	inputs := []string{"# Title", "## Sub", "**b**", "*i*", "> quote", "`code`", "[l](https://x.org)"}
	for _, in := range inputs {
		got := tr.Transform(Record{"md_x": in})["md_x"]
		for _, syntax := range []string{"# ", "**", "> ", "`", "]("} {
			if strings.Contains(got, syntax) {
				t.Errorf("Transform(%q) = %q, contains %q", in, got, syntax)
			}
		}
	}
}

func TestMarkupTransformer_Sanitize(t *testing.T) {
	t.Parallel()

	tr := NewMarkupTransformer(DefaultMarkupPrefix, true)
	got := tr.Transform(Record{"md_link": "[x](https://example.com)"})["md_link"]
	if !strings.Contains(got, `rel="nofollow"`) {
		t.Errorf("sanitized link = %q, want rel=nofollow", got)
	}
}
