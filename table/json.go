package table

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ============================================================================
// JSON CODEC — array-of-arrays wire representation
// ============================================================================
// Canonical mapping: Number → JSON number, Text → JSON string, Empty →
// JSON null. When headers are set they are emitted as the first row of
// strings. Parsing is all-or-nothing: malformed JSON, a non-array root, or
// ragged rows yield no table.
// ============================================================================

// MarshalJSON emits the cell per the canonical mapping.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case kindNumber:
		// Decimal's own MarshalJSON quotes; emit the canonical decimal text
		// as a bare JSON number instead.
		return []byte(decimalString(c.num)), nil
	case kindText:
		return json.Marshal(c.text)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts any JSON value: numbers become Number cells
// (parsed from the raw token, no float64 round-trip), strings follow the
// token coercion rule, null becomes Empty, booleans become their text, and
// nested arrays/objects are kept as their compact JSON text.
func (c *Cell) UnmarshalJSON(data []byte) error {
	cell, err := cellFromJSON(data)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

func cellFromJSON(raw json.RawMessage) (Cell, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Cell{}, fmt.Errorf("empty JSON value")
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Cell{}, err
		}
		return New(s), nil
	case 'n':
		return Cell{}, nil
	case 't':
		return NewText("true"), nil
	case 'f':
		return NewText("false"), nil
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return Cell{}, err
		}
		return NewText(buf.String()), nil
	default:
		// A raw JSON number; parse the token directly so exponent forms
		// and full precision survive (no float64 round-trip).
		d, err := decimal.NewFromString(string(raw))
		if err != nil {
			return Cell{}, fmt.Errorf("invalid number %q: %w", raw, err)
		}
		return NewNumber(d), nil
	}
}

// MarshalJSON emits the slice as a JSON array of cells.
func (s Slice) MarshalJSON() ([]byte, error) {
	if s.cells == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.cells)
}

// UnmarshalJSON parses a JSON array of cells.
func (s *Slice) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return err
	}
	s.cells = cells
	return nil
}

// ParseSlice parses a JSON array (e.g. `["a","b","1"]`) into a Slice.
func ParseSlice(data []byte) (Slice, error) {
	var s Slice
	if err := json.Unmarshal(data, &s); err != nil {
		return Slice{}, &ParseError{Format: "json", Row: -1, Err: err}
	}
	return s, nil
}

// String renders the slice as its JSON form.
func (s Slice) String() string {
	b, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseJSON parses an array-of-arrays JSON document into a Table. Ragged
// rows are a hard error: either a fully valid table is returned or none.
func ParseJSON(data []byte, opts ...Option) (*Table, error) {
	cfg := applyOptions(opts)

	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &ParseError{Format: "json", Row: -1, Err: err}
	}

	t := &Table{}
	for i, rawRow := range rows {
		var rawCells []json.RawMessage
		if err := json.Unmarshal(rawRow, &rawCells); err != nil {
			return nil, &ParseError{Format: "json", Row: i, Err: fmt.Errorf("row is not an array: %w", err)}
		}
		cells := make([]Cell, len(rawCells))
		for j, rawCell := range rawCells {
			cell, err := cellFromJSON(rawCell)
			if err != nil {
				return nil, &ParseError{Format: "json", Row: i, Err: fmt.Errorf("cell %d: %w", j, err)}
			}
			cells[j] = cell
		}
		if i == 0 && cfg.headerRow {
			labels := make([]string, len(cells))
			for j, c := range cells {
				labels[j] = c.String()
			}
			if err := t.SetHeaders(labels); err != nil {
				return nil, &ParseError{Format: "json", Row: i, Err: err}
			}
			continue
		}
		if err := t.PushRow(Slice{cells: cells}); err != nil {
			return nil, &ParseError{Format: "json", Row: i, Err: err}
		}
	}
	return t, nil
}

// MarshalJSON emits the table as an array of arrays, headers (if set)
// first as a row of strings.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := make([][]Cell, 0, t.rows+1)
	if t.headers != nil {
		hs := make([]Cell, len(t.headers))
		for i, h := range t.headers {
			hs[i] = NewText(h)
		}
		out = append(out, hs)
	}
	for r := 0; r < t.rows; r++ {
		out = append(out, t.cells[r*t.cols:(r+1)*t.cols])
	}
	return json.Marshal(out)
}

// JSON renders the table as its wire form.
func (t *Table) JSON() (string, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
