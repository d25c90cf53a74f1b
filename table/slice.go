package table

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ============================================================================
// SLICE — owned, ordered sequence of cells (a detached row/column snapshot)
// ============================================================================
// A Slice never aliases Table storage: constructors and Table accessors copy.
// Elementwise arithmetic requires equal lengths and is all-or-nothing.
// ============================================================================

// Slice is an owned sequence of cells.
type Slice struct {
	cells []Cell
}

// NewSlice converts each token to a Cell per the coercion rule in New.
func NewSlice(tokens ...string) Slice {
	cells := make([]Cell, len(tokens))
	for i, t := range tokens {
		cells[i] = New(t)
	}
	return Slice{cells: cells}
}

// SliceFromCells copies the given cells into a new Slice.
func SliceFromCells(cells ...Cell) Slice {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return Slice{cells: out}
}

// SliceFromDecimals builds a Slice of Number cells.
func SliceFromDecimals(values ...decimal.Decimal) Slice {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewNumber(v)
	}
	return Slice{cells: cells}
}

// Len returns the number of cells.
func (s Slice) Len() int { return len(s.cells) }

// Cell returns the cell at idx, bounds-checked.
func (s Slice) Cell(idx int) (Cell, error) {
	if idx < 0 || idx >= len(s.cells) {
		return Cell{}, &IndexOutOfBoundsError{What: "cell", Index: idx, Len: len(s.cells)}
	}
	return s.cells[idx], nil
}

// MutCell returns a pointer to the cell at idx, or false if out of range.
// The pointer is valid for the lifetime of the Slice.
func (s *Slice) MutCell(idx int) (*Cell, bool) {
	if idx < 0 || idx >= len(s.cells) {
		return nil, false
	}
	return &s.cells[idx], true
}

// Cells returns a copy of the underlying cells.
func (s Slice) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Strings renders every cell per Cell.String.
func (s Slice) Strings() []string {
	out := make([]string, len(s.cells))
	for i, c := range s.cells {
		out[i] = c.String()
	}
	return out
}

// Clone returns an independent copy.
func (s Slice) Clone() Slice { return SliceFromCells(s.cells...) }

// Equal reports elementwise cell equality (Cell.Equal semantics).
func (s Slice) Equal(other Slice) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for i := range s.cells {
		if !s.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// ============================================================================
// ELEMENTWISE ARITHMETIC
// ============================================================================

// Add returns the elementwise sum of two equal-length slices. Any element
// failure aborts the whole operation; no partial result is produced.
func (s Slice) Add(other Slice) (Slice, error) { return s.zip(other, Cell.Add) }

// Sub returns the elementwise difference of two equal-length slices.
func (s Slice) Sub(other Slice) (Slice, error) { return s.zip(other, Cell.Sub) }

// Mul returns the elementwise product of two equal-length slices.
func (s Slice) Mul(other Slice) (Slice, error) { return s.zip(other, Cell.Mul) }

// Div returns the elementwise quotient of two equal-length slices.
// Zero divisors yield #DIV/0 cells per Cell.Div.
func (s Slice) Div(other Slice) (Slice, error) { return s.zip(other, Cell.Div) }

func (s Slice) zip(other Slice, op func(Cell, Cell) (Cell, error)) (Slice, error) {
	if len(s.cells) != len(other.cells) {
		return Slice{}, &LengthMismatchError{Left: len(s.cells), Right: len(other.cells)}
	}
	out := make([]Cell, len(s.cells))
	for i := range s.cells {
		c, err := op(s.cells[i], other.cells[i])
		if err != nil {
			return Slice{}, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = c
	}
	return Slice{cells: out}, nil
}

// Sum folds the cells left-to-right with Cell addition, identity Empty.
// A slice of all-Empty cells (or an empty slice) sums to Empty.
func (s Slice) Sum() (Cell, error) {
	acc := Cell{}
	for i, c := range s.cells {
		next, err := acc.Add(c)
		if err != nil {
			return Cell{}, fmt.Errorf("element %d: %w", i, err)
		}
		acc = next
	}
	return acc, nil
}

// Find returns the index of the first cell equal to value, or false.
func (s Slice) Find(value Cell) (int, bool) {
	for i, c := range s.cells {
		if c.Equal(value) {
			return i, true
		}
	}
	return 0, false
}

// ============================================================================
// IN-PLACE SCALAR OPS — apply to every Number cell, skip Text and Empty
// ============================================================================

// AddValue adds value to every Number cell.
func (s *Slice) AddValue(value decimal.Decimal) *Slice {
	for i := range s.cells {
		s.cells[i].AddValue(value)
	}
	return s
}

// SubValue subtracts value from every Number cell.
func (s *Slice) SubValue(value decimal.Decimal) *Slice {
	for i := range s.cells {
		s.cells[i].SubValue(value)
	}
	return s
}

// MulValue multiplies every Number cell by value.
func (s *Slice) MulValue(value decimal.Decimal) *Slice {
	for i := range s.cells {
		s.cells[i].MulValue(value)
	}
	return s
}

// DivValue divides every Number cell by value. Zero yields #DIV/0 markers.
func (s *Slice) DivValue(value decimal.Decimal) *Slice {
	for i := range s.cells {
		s.cells[i].DivValue(value)
	}
	return s
}
