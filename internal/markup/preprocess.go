package markup

import (
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged and are swapped for <mark> tags
// after HTML generation, so raw HTML never has to be enabled.
const (
	markStart = "\uE000" // U+E000: Private Use Area
	markEnd   = "\uE001" // U+E001: Private Use Area
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// Preprocess prepares a cell value for Goldmark.
// Spreadsheet exports frequently carry \r\n inside quoted fields.
func Preprocess(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return markHighlights(content)
}

// markHighlights replaces ==text== with placeholders. Fenced code blocks and
// code spans are copied verbatim: == is an operator there.
func markHighlights(content string) string {
	var out, text strings.Builder
	flush := func() {
		out.WriteString(markInline(text.String()))
		text.Reset()
	}

	fence := "" // opening marker while inside a fenced block
	for _, line := range strings.SplitAfter(content, "\n") {
		switch {
		case fence != "":
			out.WriteString(line)
			if closesFence(line, fence) {
				fence = ""
			}
		case openingFence(line) != "":
			flush()
			fence = openingFence(line)
			out.WriteString(line)
		default:
			text.WriteString(line)
		}
	}
	flush()

	return out.String()
}

// markInline handles text outside fenced blocks, skipping code spans.
// A backtick run without a closing run of the same length is literal text.
func markInline(s string) string {
	var out, text strings.Builder
	for len(s) > 0 {
		start := strings.IndexByte(s, '`')
		if start < 0 {
			text.WriteString(s)
			break
		}
		n := runLength(s[start:], '`')
		end := closingRun(s[start+n:], n)
		if end < 0 {
			text.WriteString(s[:start+n])
			s = s[start+n:]
			continue
		}

		text.WriteString(s[:start])
		out.WriteString(highlightPattern.ReplaceAllString(text.String(), markStart+"$1"+markEnd))
		text.Reset()

		spanEnd := start + n + end + n
		out.WriteString(s[start:spanEnd])
		s = s[spanEnd:]
	}
	out.WriteString(highlightPattern.ReplaceAllString(text.String(), markStart+"$1"+markEnd))
	return out.String()
}

// openingFence returns the ``` or ~~~ marker opening a fenced block, or "".
func openingFence(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || trimmed == "" {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := runLength(trimmed, c)
	if n < 3 {
		return ""
	}
	if c == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return "" // backtick info strings can't contain backticks
	}
	return trimmed[:n]
}

// closesFence reports whether line closes a block opened with fence.
func closesFence(line, fence string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	trimmed = strings.TrimRight(trimmed, " \t\n")
	return len(trimmed) >= len(fence) && runLength(trimmed, fence[0]) == len(trimmed)
}

// closingRun returns the index of the next backtick run of exactly n, or -1.
func closingRun(s string, n int) int {
	for i := 0; i < len(s); {
		if s[i] != '`' {
			i++
			continue
		}
		m := runLength(s[i:], '`')
		if m == n {
			return i
		}
		i += m
	}
	return -1
}

func runLength(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// convertMarkPlaceholders is the second half of the ==highlight== feature.
func convertMarkPlaceholders(content string) string {
	return strings.NewReplacer(markStart, "<mark>", markEnd, "</mark>").Replace(content)
}

// unwrapParagraph strips the <p> wrapper when the fragment is exactly one
// paragraph, so short values like **bold** render inline in table cells.
func unwrapParagraph(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "<p>") || !strings.HasSuffix(trimmed, "</p>") {
		return content
	}
	if strings.Count(trimmed, "<p>") != 1 {
		return content
	}
	return strings.TrimSuffix(strings.TrimPrefix(trimmed, "<p>"), "</p>")
}
