package table

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ============================================================================
// CELL — tagged scalar: Empty, Text, or exact decimal Number
// ============================================================================
// Numeric cells carry a fixed-precision decimal, never a binary float.
// Text is stored verbatim. Empty means "unset" and is distinct from Text("").
// ============================================================================

// Numeric token filter, e.g. (+/-)123,456.789 with optional grouping commas.
var (
	reNumericToken = regexp.MustCompile(`^[+-]?(?:(?:(?:\d{1,3}(?:,\d{3})*|\d+)(?:\.\d+)?)|(?:\.\d+))$`)
	reStripChars   = regexp.MustCompile(`[^0-9+.-]`)
)

// DivZero is the text of a cell produced by division by zero.
const DivZero = "#DIV/0"

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindText
	kindNumber
)

// Cell is a single typed scalar. The zero value is the Empty cell.
type Cell struct {
	kind cellKind
	text string
	num  decimal.Decimal
}

// Empty returns the Empty cell.
func Empty() Cell { return Cell{} }

// New converts a raw token to a Cell: the empty token becomes Empty, a
// numeric-looking token (grouping commas allowed) becomes a Number, and
// anything else becomes Text verbatim.
func New(token string) Cell {
	if token == "" {
		return Cell{}
	}
	if reNumericToken.MatchString(token) {
		stripped := reStripChars.ReplaceAllString(token, "")
		if d, err := decimal.NewFromString(stripped); err == nil {
			return Cell{kind: kindNumber, num: d}
		}
	}
	return Cell{kind: kindText, text: token}
}

// NewText builds a Text cell verbatim, bypassing numeric coercion.
func NewText(s string) Cell { return Cell{kind: kindText, text: s} }

// NewNumber builds a Number cell from a decimal.
func NewNumber(d decimal.Decimal) Cell { return Cell{kind: kindNumber, num: d} }

// NewFromInt builds a Number cell from an integer.
func NewFromInt(n int64) Cell { return NewNumber(decimal.NewFromInt(n)) }

// IsEmpty reports whether the cell is unset.
func (c Cell) IsEmpty() bool { return c.kind == kindEmpty }

// IsText reports whether the cell holds text.
func (c Cell) IsText() bool { return c.kind == kindText }

// IsNumber reports whether the cell holds a number.
func (c Cell) IsNumber() bool { return c.kind == kindNumber }

// Decimal returns the numeric value of a Number cell.
func (c Cell) Decimal() (decimal.Decimal, bool) {
	if c.kind != kindNumber {
		return decimal.Decimal{}, false
	}
	return c.num, true
}

// IsDivideByZero reports whether the cell is the #DIV/0 marker.
func (c Cell) IsDivideByZero() bool { return c.kind == kindText && c.text == DivZero }

// String renders Number cells as canonical decimal text (no exponent,
// trailing zeros per stored scale), Text verbatim, and Empty as "".
func (c Cell) String() string {
	switch c.kind {
	case kindNumber:
		return decimalString(c.num)
	case kindText:
		return c.text
	}
	return ""
}

// decimalString renders d at its stored scale. Decimal.String trims
// trailing fractional zeros, so a parsed "1.50" would come back as "1.5".
func decimalString(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// reduce drops trailing fractional zeros from a quotient. Decimal.Div
// always produces a 16-digit scale, which would otherwise leak into the
// rendered text.
func reduce(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() >= 0 {
		return d
	}
	if out, err := decimal.NewFromString(d.String()); err == nil {
		return out
	}
	return d
}

// numeric coerces the cell to a decimal for arithmetic. Text coerces only
// when lexically numeric; a failed coercion is a TypeMismatchError.
func (c Cell) numeric(op string) (decimal.Decimal, error) {
	switch c.kind {
	case kindNumber:
		return c.num, nil
	case kindText:
		if reNumericToken.MatchString(c.text) {
			stripped := reStripChars.ReplaceAllString(c.text, "")
			if d, err := decimal.NewFromString(stripped); err == nil {
				return d, nil
			}
		}
		return decimal.Decimal{}, &TypeMismatchError{Op: op, Token: c.text}
	}
	return decimal.Zero, nil
}

// ============================================================================
// ARITHMETIC — Number⊕Number exact, Text coerces or fails, Empty is identity
// ============================================================================
// Empty policy: Empty⊕Empty = Empty (unset stays unset); otherwise an Empty
// operand passes the other operand through (additive identity 0 for Add/Sub,
// multiplicative identity 1 for Mul/Div), except Empty-x which negates x and
// Empty/x which stays Empty.
// ============================================================================

// Add returns c + other.
func (c Cell) Add(other Cell) (Cell, error) {
	if c.kind == kindEmpty && other.kind == kindEmpty {
		return Cell{}, nil
	}
	if c.kind == kindEmpty {
		return other, nil
	}
	if other.kind == kindEmpty {
		return c, nil
	}
	a, err := c.numeric("add")
	if err != nil {
		return Cell{}, err
	}
	b, err := other.numeric("add")
	if err != nil {
		return Cell{}, err
	}
	return NewNumber(a.Add(b)), nil
}

// Sub returns c - other.
func (c Cell) Sub(other Cell) (Cell, error) {
	if c.kind == kindEmpty && other.kind == kindEmpty {
		return Cell{}, nil
	}
	if other.kind == kindEmpty {
		return c, nil
	}
	if c.kind == kindEmpty {
		b, err := other.numeric("sub")
		if err != nil {
			return Cell{}, err
		}
		return NewNumber(b.Neg()), nil
	}
	a, err := c.numeric("sub")
	if err != nil {
		return Cell{}, err
	}
	b, err := other.numeric("sub")
	if err != nil {
		return Cell{}, err
	}
	return NewNumber(a.Sub(b)), nil
}

// Mul returns c * other.
func (c Cell) Mul(other Cell) (Cell, error) {
	if c.kind == kindEmpty && other.kind == kindEmpty {
		return Cell{}, nil
	}
	if c.kind == kindEmpty {
		return other, nil
	}
	if other.kind == kindEmpty {
		return c, nil
	}
	a, err := c.numeric("mul")
	if err != nil {
		return Cell{}, err
	}
	b, err := other.numeric("mul")
	if err != nil {
		return Cell{}, err
	}
	return NewNumber(a.Mul(b)), nil
}

// Div returns c / other. Division by zero yields the #DIV/0 text cell
// rather than an error, so the marker can flow through a table.
func (c Cell) Div(other Cell) (Cell, error) {
	if c.kind == kindEmpty {
		return Cell{}, nil
	}
	if other.kind == kindEmpty {
		return c, nil
	}
	a, err := c.numeric("div")
	if err != nil {
		return Cell{}, err
	}
	b, err := other.numeric("div")
	if err != nil {
		return Cell{}, err
	}
	if b.IsZero() {
		return NewText(DivZero), nil
	}
	return NewNumber(reduce(a.Div(b))), nil
}

// ============================================================================
// IN-PLACE SCALAR OPS — mutate Number cells, leave Text and Empty untouched
// ============================================================================

// AddValue adds value to a Number cell.
func (c *Cell) AddValue(value decimal.Decimal) {
	if c.kind == kindNumber {
		c.num = c.num.Add(value)
	}
}

// SubValue subtracts value from a Number cell.
func (c *Cell) SubValue(value decimal.Decimal) {
	if c.kind == kindNumber {
		c.num = c.num.Sub(value)
	}
}

// MulValue multiplies a Number cell by value.
func (c *Cell) MulValue(value decimal.Decimal) {
	if c.kind == kindNumber {
		c.num = c.num.Mul(value)
	}
}

// DivValue divides a Number cell by value. A zero value turns the cell
// into the #DIV/0 marker.
func (c *Cell) DivValue(value decimal.Decimal) {
	if c.kind != kindNumber {
		return
	}
	if value.IsZero() {
		*c = NewText(DivZero)
		return
	}
	c.num = reduce(c.num.Div(value))
}

// Replace overwrites the cell with a new value.
func (c *Cell) Replace(value Cell) { *c = value }

// ============================================================================
// COMPARISON — total and consistent, never panics
// ============================================================================

// Compare orders two cells. Number/Number compares by decimal value,
// Text/Text lexically, Empty equals only Empty. A cross-kind pair is
// comparable only when the text side is numeric-looking; otherwise ok is
// false and the cells are simply unequal.
func (c Cell) Compare(other Cell) (int, bool) {
	if c.kind == kindEmpty || other.kind == kindEmpty {
		if c.kind == other.kind {
			return 0, true
		}
		return 0, false
	}
	if c.kind == kindText && other.kind == kindText {
		return strings.Compare(c.text, other.text), true
	}
	a, aok := c.resolve()
	b, bok := other.resolve()
	if !aok || !bok {
		return 0, false
	}
	return a.Cmp(b), true
}

// Equal reports whether two cells are comparable and order equal.
func (c Cell) Equal(other Cell) bool {
	ord, ok := c.Compare(other)
	return ok && ord == 0
}

// resolve coerces a cell to a decimal for cross-kind comparison without
// producing an error.
func (c Cell) resolve() (decimal.Decimal, bool) {
	if c.kind == kindNumber {
		return c.num, true
	}
	if c.kind == kindText && reNumericToken.MatchString(c.text) {
		stripped := reStripChars.ReplaceAllString(c.text, "")
		if d, err := decimal.NewFromString(stripped); err == nil {
			return d, true
		}
	}
	return decimal.Decimal{}, false
}
