package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ============================================================================
// CSV CODEC — RFC4180, comma-delimited, doubled-quote escaping
// ============================================================================
// A field is quoted iff it needs quoting (contains a comma, quote, or line
// break); embedded quotes are doubled. Rows use LF line endings. Ragged
// input is a hard error: either a fully valid table is returned or none.
// ============================================================================

// ParseCSV parses CSV text into a Table, converting each field per the
// token coercion rule in New. Every row must have the same number of
// fields as the first.
func ParseCSV(data []byte, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	r := csv.NewReader(bytes.NewReader(data))
	// FieldsPerRecord defaults to the first row's count, so ragged input
	// surfaces as csv.ErrFieldCount.

	t := &Table{}
	for i := 0; ; i++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: "csv", Row: csvErrRow(err, i), Err: err}
		}
		if i == 0 && cfg.headerRow {
			if err := t.SetHeaders(record); err != nil {
				return nil, &ParseError{Format: "csv", Row: i, Err: err}
			}
			continue
		}
		if err := t.PushRow(NewSlice(record...)); err != nil {
			return nil, &ParseError{Format: "csv", Row: i, Err: err}
		}
	}
	return t, nil
}

// csvErrRow extracts the 0-based input row from a csv.ParseError, falling
// back to the current read index.
func csvErrRow(err error, fallback int) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line - 1
	}
	return fallback
}

// WriteCSV writes the table to sink, one line per row, header row (if set)
// first.
func (t *Table) WriteCSV(sink io.Writer) error {
	w := csv.NewWriter(sink)
	if t.headers != nil {
		if err := w.Write(t.headers); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	for r := 0; r < t.rows; r++ {
		record := make([]string, t.cols)
		for c := 0; c < t.cols; c++ {
			record[c] = t.cells[r*t.cols+c].String()
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", r, err)
		}
	}
	w.Flush()
	return w.Error()
}

// CSV renders the table as CSV text.
func (t *Table) CSV() (string, error) {
	var b strings.Builder
	if err := t.WriteCSV(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
