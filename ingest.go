package csv2web

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// RowReader reads records from delimited text. The first row is the header;
// it is read by NewRowReader and defines the key set of every record.
//
// A RowReader is single-pass: All can be ranged over once.
type RowReader struct {
	csv     *csv.Reader
	columns []string
}

// NewRowReader reads the header row from r.
// Quotes are lazy: a bare " inside an unquoted field, as in 5" screen, is
// part of the value.
// Returns ErrIngest if the header is missing, not valid UTF-8, or has empty
// or duplicate column names.
func NewRowReader(r io.Reader, delimiter rune) (*RowReader, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // column count is checked against the header below
	cr.LazyQuotes = true    // a " inside an unquoted field is kept literally

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrIngest)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrIngest, err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("%w: header column %d is %w", ErrIngest, i+1, ErrInvalidText)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: header column %d has no name", ErrIngest, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q in header", ErrIngest, name)
		}
		seen[name] = true
		columns[i] = name
	}

	return &RowReader{csv: cr, columns: columns}, nil
}

// Columns returns the header names in file order.
func (rr *RowReader) Columns() []string {
	return rr.columns
}

// All yields one Record per non-blank data row, in file order.
// Rows that are empty or contain only blank fields are skipped.
// Iteration stops after the first error, which wraps ErrIngest.
func (rr *RowReader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		for {
			fields, err := rr.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("%w: %v", ErrIngest, err))
				return
			}
			if isBlankRow(fields) {
				continue
			}

			line, _ := rr.csv.FieldPos(0)
			rec, err := rr.record(fields, line)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

func (rr *RowReader) record(fields []string, line int) (Record, error) {
	if len(fields) != len(rr.columns) {
		return nil, fmt.Errorf("%w: line %d: %w: %d fields, header has %d",
			ErrIngest, line, ErrFieldCount, len(fields), len(rr.columns))
	}

	rec := make(Record, len(fields))
	for i, value := range fields {
		if !utf8.ValidString(value) {
			return nil, fmt.Errorf("%w: line %d: column %q is %w", ErrIngest, line, rr.columns[i], ErrInvalidText)
		}
		rec[rr.columns[i]] = value
	}
	return rec, nil
}

func isBlankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// Transformer rewrites a record before it joins the collection.
type Transformer interface {
	Transform(rec Record) Record
}

// Ingest reads every record from r into a Collection, passing each record
// through t (when non-nil) before appending it. A header-only input yields
// an empty collection. On error no partial collection is returned.
func Ingest(ctx context.Context, r io.Reader, delimiter rune, t Transformer) (*Collection, error) {
	rr, err := NewRowReader(r, delimiter)
	if err != nil {
		return nil, err
	}

	coll := &Collection{Columns: rr.Columns(), Records: []Record{}}
	for rec, err := range rr.All() {
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if t != nil {
			rec = t.Transform(rec)
		}
		coll.Records = append(coll.Records, rec)
	}

	return coll, nil
}
