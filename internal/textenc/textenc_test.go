package textenc_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/alnah/go-csv2web/internal/textenc"
)

func readAll(t *testing.T, input, charset string) string {
	t.Helper()

	r, err := textenc.NewReader(strings.NewReader(input), charset)
	if err != nil {
		t.Fatalf("NewReader(%q): %v", charset, err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	return string(out)
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		charset string
		want    string
	}{
		{"plain utf-8", "name,bio\n", "", "name,bio\n"},
		{"utf-8 explicit", "café\n", "UTF-8", "café\n"},
		{"utf-8 bom stripped", "\xef\xbb\xbfname\n", "", "name\n"},
		{"utf-16le bom", "\xff\xfen\x00a\x00\n\x00", "", "na\n"},
		{"latin1", "caf\xe9\n", "ISO-8859-1", "café\n"},
		{"windows-1252", "\x93hi\x94", "windows-1252", "“hi”"},
		{"invalid utf-8 passes through", "a\xffb", "", "a\xffb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := readAll(t, tt.input, tt.charset); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	_, err := textenc.Lookup("klingon-8")
	if !errors.Is(err, textenc.ErrUnknownEncoding) {
		t.Errorf("error = %v, want ErrUnknownEncoding", err)
	}
}
