package table

import "fmt"

// ============================================================================
// ERROR SURFACE — every failure is a typed, value-level error
// ============================================================================
// Each error carries enough context (offending index, raw token) for a
// caller to build a diagnostic without string-matching messages.
// ============================================================================

// ParseError reports a failed CSV or JSON conversion. The whole conversion
// is all-or-nothing: a ParseError means no Table was produced.
type ParseError struct {
	Format string // "csv" or "json"
	Row    int    // 0-based input row, -1 if not attributable to a row
	Err    error
}

func (e *ParseError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("parse %s: row %d: %v", e.Format, e.Row, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TypeMismatchError reports arithmetic on a text cell that cannot be
// coerced to a number. Token holds the offending cell text verbatim.
type TypeMismatchError struct {
	Op    string // "add", "sub", "mul", "div"
	Token string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: text cell %q is not numeric", e.Op, e.Token)
}

// LengthMismatchError reports elementwise arithmetic between slices of
// different lengths.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("slice length mismatch: %d vs %d", e.Left, e.Right)
}

// WidthMismatchError reports a structural mutation whose slice does not
// match the table's fixed dimension (column count for row mutations, row
// count for column mutations).
type WidthMismatchError struct {
	Want int
	Got  int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("width mismatch: want %d cells, got %d", e.Want, e.Got)
}

// IndexOutOfBoundsError reports an out-of-range row, column, or cell index.
type IndexOutOfBoundsError struct {
	What  string // "row", "column", "cell"
	Index int
	Len   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}
