// Package textenc decodes input files into UTF-8.
//
// Files are expected in UTF-8 by default. A leading byte-order mark always
// wins over the configured charset, so UTF-16 exports from spreadsheet tools
// are read correctly without extra configuration.
package textenc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no charset is configured.
const DefaultEncoding = "utf-8"

// ErrUnknownEncoding indicates the charset name is not a supported IANA name.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Lookup resolves an IANA charset name (case-insensitive, aliases accepted).
// An empty name or any spelling of UTF-8 returns nil: UTF-8 input is passed
// through untouched so invalid byte sequences stay detectable downstream.
func Lookup(name string) (encoding.Encoding, error) {
	if isUTF8(name) {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	if enc == nil {
		// Registered name without a Go implementation.
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// NewReader wraps r so that reads yield UTF-8 text with any BOM stripped.
func NewReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	var fallback transform.Transformer = transform.Nop
	if enc != nil {
		fallback = enc.NewDecoder()
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback)), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}
