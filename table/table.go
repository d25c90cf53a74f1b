package table

// ============================================================================
// TABLE — rectangular grid of cells, row-major storage
// ============================================================================
// The Table exclusively owns its cell storage. Row/Column return owned
// Slice copies; MutCell pointers are valid only until the next structural
// mutation. Every mutator either succeeds or leaves the table untouched.
// ============================================================================

// Table is a rectangular R×C grid of cells with optional column headers.
type Table struct {
	cells   []Cell // row-major, len == rows*cols
	rows    int
	cols    int
	headers []string // nil when unset; len == cols otherwise
}

// NewTable returns an empty table.
func NewTable() *Table { return &Table{} }

// TableFromGrid builds a table from a rectangular grid of raw tokens,
// converting each token per the coercion rule in New. A ragged grid is a
// WidthMismatchError and yields no table.
func TableFromGrid(grid [][]string) (*Table, error) {
	t := &Table{}
	for _, row := range grid {
		if err := t.PushRow(NewSlice(row...)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Headers returns a copy of the column header labels, or nil if unset.
func (t *Table) Headers() []string {
	if t.headers == nil {
		return nil
	}
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out
}

// SetHeaders sets the column header labels. On an empty table the labels
// define the column count; otherwise their length must match it.
func (t *Table) SetHeaders(labels []string) error {
	if t.rows > 0 || t.cols > 0 {
		if len(labels) != t.cols {
			return &WidthMismatchError{Want: t.cols, Got: len(labels)}
		}
	} else {
		t.cols = len(labels)
	}
	t.headers = make([]string, len(labels))
	copy(t.headers, labels)
	return nil
}

// ============================================================================
// ACCESS
// ============================================================================

// Row returns an owned copy of row i, or false if out of range.
func (t *Table) Row(i int) (Slice, bool) {
	if i < 0 || i >= t.rows {
		return Slice{}, false
	}
	return SliceFromCells(t.cells[i*t.cols : (i+1)*t.cols]...), true
}

// Column returns an owned copy of column j, or false if out of range.
func (t *Table) Column(j int) (Slice, bool) {
	if j < 0 || j >= t.cols {
		return Slice{}, false
	}
	cells := make([]Cell, t.rows)
	for r := 0; r < t.rows; r++ {
		cells[r] = t.cells[r*t.cols+j]
	}
	return Slice{cells: cells}, true
}

// Cell returns the cell at (r, c), or false if out of range.
func (t *Table) Cell(r, c int) (Cell, bool) {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		return Cell{}, false
	}
	return t.cells[r*t.cols+c], true
}

// MutCell returns a pointer to the cell at (r, c), or false if out of
// range. The pointer is invalidated by any structural mutation (row or
// column insertion/removal); callers must not retain it across one.
func (t *Table) MutCell(r, c int) (*Cell, bool) {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols {
		return nil, false
	}
	return &t.cells[r*t.cols+c], true
}

// SetCell replaces the cell at (r, c).
func (t *Table) SetCell(r, c int, value Cell) error {
	if r < 0 || r >= t.rows {
		return &IndexOutOfBoundsError{What: "row", Index: r, Len: t.rows}
	}
	if c < 0 || c >= t.cols {
		return &IndexOutOfBoundsError{What: "column", Index: c, Len: t.cols}
	}
	t.cells[r*t.cols+c] = value
	return nil
}

// Find returns the first (row, col) whose cell equals value, scanning in
// row-major order.
func (t *Table) Find(value Cell) (int, int, bool) {
	for i, c := range t.cells {
		if c.Equal(value) {
			return i / t.cols, i % t.cols, true
		}
	}
	return 0, 0, false
}

// ============================================================================
// STRUCTURAL MUTATION — all-or-nothing, indices shift as expected
// ============================================================================

// PushRow appends a row. On an empty table the row defines the column
// count (unless headers already fixed it).
func (t *Table) PushRow(s Slice) error {
	return t.InsertRow(t.rows, s)
}

// InsertRow inserts a row at index i, shifting subsequent rows down.
// i may equal Rows() to append.
func (t *Table) InsertRow(i int, s Slice) error {
	if i < 0 || i > t.rows {
		return &IndexOutOfBoundsError{What: "row", Index: i, Len: t.rows + 1}
	}
	if t.rows == 0 && t.headers == nil {
		t.cols = s.Len()
	} else if s.Len() != t.cols {
		return &WidthMismatchError{Want: t.cols, Got: s.Len()}
	}
	row := s.Cells()
	at := i * t.cols
	t.cells = append(t.cells, make([]Cell, t.cols)...)
	copy(t.cells[at+t.cols:], t.cells[at:])
	copy(t.cells[at:], row)
	t.rows++
	return nil
}

// RemoveRow deletes row i, shifting subsequent rows up.
func (t *Table) RemoveRow(i int) error {
	if i < 0 || i >= t.rows {
		return &IndexOutOfBoundsError{What: "row", Index: i, Len: t.rows}
	}
	at := i * t.cols
	t.cells = append(t.cells[:at], t.cells[at+t.cols:]...)
	t.rows--
	if t.rows == 0 && t.headers == nil {
		t.cols = 0
	}
	return nil
}

// PushColumn appends a column. On an empty table the column defines the
// row count.
func (t *Table) PushColumn(s Slice) error {
	return t.InsertColumn(t.cols, s)
}

// InsertColumn inserts a column at index j, applied to every row
// atomically; no partial-width row is ever observable. The column's length
// must equal Rows() (on an empty table it defines it). Inserting into a
// table with headers extends them with an empty label.
func (t *Table) InsertColumn(j int, s Slice) error {
	if j < 0 || j > t.cols {
		return &IndexOutOfBoundsError{What: "column", Index: j, Len: t.cols + 1}
	}
	if t.rows == 0 && t.cols == 0 && t.headers == nil {
		t.rows = s.Len()
	} else if s.Len() != t.rows {
		return &WidthMismatchError{Want: t.rows, Got: s.Len()}
	}
	col := s.Cells()
	next := make([]Cell, 0, t.rows*(t.cols+1))
	for r := 0; r < t.rows; r++ {
		row := t.cells[r*t.cols : (r+1)*t.cols]
		next = append(next, row[:j]...)
		next = append(next, col[r])
		next = append(next, row[j:]...)
	}
	t.cells = next
	t.cols++
	if t.headers != nil {
		hs := make([]string, 0, t.cols)
		hs = append(hs, t.headers[:j]...)
		hs = append(hs, "")
		hs = append(hs, t.headers[j:]...)
		t.headers = hs
	}
	return nil
}

// RemoveColumn deletes column j from every row atomically.
func (t *Table) RemoveColumn(j int) error {
	if j < 0 || j >= t.cols {
		return &IndexOutOfBoundsError{What: "column", Index: j, Len: t.cols}
	}
	next := make([]Cell, 0, t.rows*(t.cols-1))
	for r := 0; r < t.rows; r++ {
		row := t.cells[r*t.cols : (r+1)*t.cols]
		next = append(next, row[:j]...)
		next = append(next, row[j+1:]...)
	}
	t.cells = next
	t.cols--
	if t.headers != nil {
		t.headers = append(t.headers[:j], t.headers[j+1:]...)
	}
	return nil
}

// ============================================================================
// COPY / EQUALITY
// ============================================================================

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	out := &Table{rows: t.rows, cols: t.cols}
	out.cells = make([]Cell, len(t.cells))
	copy(out.cells, t.cells)
	if t.headers != nil {
		out.headers = make([]string, len(t.headers))
		copy(out.headers, t.headers)
	}
	return out
}

// Equal reports whether two tables have the same shape, headers, and
// elementwise-equal cells (Cell.Equal semantics).
func (t *Table) Equal(other *Table) bool {
	if t.rows != other.rows || t.cols != other.cols {
		return false
	}
	if (t.headers == nil) != (other.headers == nil) {
		return false
	}
	for i := range t.headers {
		if t.headers[i] != other.headers[i] {
			return false
		}
	}
	for i := range t.cells {
		if !t.cells[i].Equal(other.cells[i]) {
			return false
		}
	}
	return true
}
