package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireStrings asserts a slice renders to the expected tokens.
func requireStrings(t *testing.T, want []string, s Slice) {
	t.Helper()
	if diff := cmp.Diff(want, s.Strings()); diff != "" {
		t.Fatalf("slice mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSlice(t *testing.T) {
	s := NewSlice("1", "abc", "")
	require.Equal(t, 3, s.Len())

	c, err := s.Cell(0)
	require.NoError(t, err)
	assert.True(t, c.IsNumber())
	c, err = s.Cell(1)
	require.NoError(t, err)
	assert.True(t, c.IsText())
	c, err = s.Cell(2)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestSliceCellBounds(t *testing.T) {
	s := NewSlice("1", "2")
	_, err := s.Cell(2)
	var oob *IndexOutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, 2, oob.Index)
	assert.Equal(t, 2, oob.Len)

	_, err = s.Cell(-1)
	assert.Error(t, err)
}

func TestSliceFromCellsCopies(t *testing.T) {
	cells := []Cell{NewFromInt(1), NewFromInt(2)}
	s := SliceFromCells(cells...)
	cells[0] = NewText("mutated")
	requireStrings(t, []string{"1", "2"}, s)
}

func TestSliceCellsReturnsCopy(t *testing.T) {
	s := NewSlice("1", "2")
	out := s.Cells()
	out[0] = NewText("mutated")
	requireStrings(t, []string{"1", "2"}, s)
}

func TestSliceMutCell(t *testing.T) {
	s := NewSlice("1", "2", "3")
	c, ok := s.MutCell(1)
	require.True(t, ok)
	c.MulValue(decimal.NewFromInt(10))
	requireStrings(t, []string{"1", "20", "3"}, s)

	_, ok = s.MutCell(3)
	assert.False(t, ok)
}

func TestSliceClone(t *testing.T) {
	s := NewSlice("1", "2")
	clone := s.Clone()
	c, ok := clone.MutCell(0)
	require.True(t, ok)
	c.Replace(NewText("x"))
	requireStrings(t, []string{"1", "2"}, s)
	requireStrings(t, []string{"x", "2"}, clone)
}

// ============================================================================
// ELEMENTWISE ARITHMETIC
// ============================================================================

func TestSliceAdd(t *testing.T) {
	got, err := NewSlice("1", "2", "3").Add(NewSlice("4", "5", "6"))
	require.NoError(t, err)
	requireStrings(t, []string{"5", "7", "9"}, got)
}

func TestSliceSub(t *testing.T) {
	got, err := NewSlice("4", "5", "6").Sub(NewSlice("1", "2", "3"))
	require.NoError(t, err)
	requireStrings(t, []string{"3", "3", "3"}, got)
}

func TestSliceMul(t *testing.T) {
	got, err := NewSlice("1", "2", "3").Mul(NewSlice("4", "5", "6"))
	require.NoError(t, err)
	requireStrings(t, []string{"4", "10", "18"}, got)
}

func TestSliceDiv(t *testing.T) {
	got, err := NewSlice("1", "2", "3").Div(NewSlice("2", "8", "15"))
	require.NoError(t, err)
	requireStrings(t, []string{"0.5", "0.25", "0.2"}, got)

	// A zero divisor marks that element, not the whole slice.
	got, err = NewSlice("1", "2").Div(NewSlice("0", "2"))
	require.NoError(t, err)
	requireStrings(t, []string{DivZero, "1"}, got)
}

func TestSliceLengthMismatch(t *testing.T) {
	_, err := NewSlice("1", "2").Add(NewSlice("1"))
	var lm *LengthMismatchError
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 2, lm.Left)
	assert.Equal(t, 1, lm.Right)
}

func TestSliceOpAbortsOnElementError(t *testing.T) {
	a := NewSlice("1", "abc", "3")
	_, err := a.Add(NewSlice("1", "2", "3"))
	require.Error(t, err)
	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Equal(t, "abc", tm.Token)

	// The operands are untouched.
	requireStrings(t, []string{"1", "abc", "3"}, a)
}

func TestSliceAddEmptyCells(t *testing.T) {
	got, err := NewSlice("1", "", "3").Add(NewSlice("", "2", "3"))
	require.NoError(t, err)
	requireStrings(t, []string{"1", "2", "6"}, got)
}

// ============================================================================
// SUM / FIND
// ============================================================================

func TestSliceSum(t *testing.T) {
	sum, err := NewSlice("1", "2", "3").Sum()
	require.NoError(t, err)
	assert.Equal(t, "6", sum.String())

	// Empty cells are skipped, not zeroed.
	sum, err = NewSlice("1", "", "3").Sum()
	require.NoError(t, err)
	assert.Equal(t, "4", sum.String())

	// All-empty (and zero-length) slices sum to Empty.
	sum, err = NewSlice("", "", "").Sum()
	require.NoError(t, err)
	assert.True(t, sum.IsEmpty())
	sum, err = NewSlice().Sum()
	require.NoError(t, err)
	assert.True(t, sum.IsEmpty())

	_, err = NewSlice("1", "abc").Sum()
	require.Error(t, err)
}

func TestSliceFind(t *testing.T) {
	s := NewSlice("a", "10", "b", "10")
	idx, ok := s.Find(New("10"))
	require.True(t, ok)
	assert.Equal(t, 1, idx, "first match wins")

	// Equality, not identity: scale differences still match.
	idx, ok = s.Find(NewText("10.0"))
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = s.Find(New("missing"))
	assert.False(t, ok)
}

func TestSliceEqual(t *testing.T) {
	assert.True(t, NewSlice("1", "a").Equal(NewSlice("1.0", "a")))
	assert.False(t, NewSlice("1", "a").Equal(NewSlice("1")))
	assert.False(t, NewSlice("1").Equal(NewSlice("2")))
}

// ============================================================================
// IN-PLACE SCALAR OPS
// ============================================================================

func TestSliceScalarOps(t *testing.T) {
	s := NewSlice("1", "abc", "3", "")
	s.AddValue(decimal.NewFromInt(10))
	requireStrings(t, []string{"11", "abc", "13", ""}, s)

	s.SubValue(decimal.NewFromInt(1))
	requireStrings(t, []string{"10", "abc", "12", ""}, s)

	s.MulValue(decimal.NewFromInt(2))
	requireStrings(t, []string{"20", "abc", "24", ""}, s)

	s.DivValue(decimal.NewFromInt(4))
	requireStrings(t, []string{"5", "abc", "6", ""}, s)

	// Chaining returns the same slice.
	s2 := NewSlice("1", "2")
	s2.AddValue(decimal.NewFromInt(1)).MulValue(decimal.NewFromInt(3))
	requireStrings(t, []string{"6", "9"}, s2)
}

func TestSliceDivValueZero(t *testing.T) {
	s := NewSlice("1", "abc", "3")
	s.DivValue(decimal.Zero)
	requireStrings(t, []string{DivZero, "abc", DivZero}, s)
}

func TestSliceFromDecimals(t *testing.T) {
	s := SliceFromDecimals(decimal.NewFromInt(1), decimal.RequireFromString("2.50"))
	requireStrings(t, []string{"1", "2.50"}, s)
}
