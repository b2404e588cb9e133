package csv2web

import (
	"encoding/csv"
	"errors"
)

// Sentinel errors for pipeline operations. Every error returned by a run
// wraps exactly one of them, except context cancellation, so callers can
// classify failures with errors.Is.
var (
	// ErrConfig indicates an invalid configuration value.
	ErrConfig = errors.New("invalid configuration")

	// ErrFile indicates a missing or unreadable input or template file,
	// or an output file that could not be written.
	ErrFile = errors.New("file error")

	// ErrIngest indicates malformed row data in the input file.
	ErrIngest = errors.New("malformed input data")

	// ErrTemplate indicates malformed template syntax.
	ErrTemplate = errors.New("template error")
)

// Refinements of ErrIngest, wrapped alongside it.
var (
	// ErrFieldCount indicates a row whose field count differs from the header.
	ErrFieldCount = csv.ErrFieldCount

	// ErrInvalidText indicates input that is not valid UTF-8 after decoding.
	ErrInvalidText = errors.New("not valid UTF-8")
)
