// Package tabular provides a small in-memory table for storing,
// manipulating, and formatting tabular data with exact decimal arithmetic.
//
// Usage:
//
//	import "github.com/spektr-org/tabular/table"
//
//	t, err := table.ParseJSON([]byte(`[["a","b","c"],["1","2","3"]]`))
//	t.PushRow(table.NewSlice("4", "5", "6"))
//
//	row1, _ := t.Row(1)
//	row2, _ := t.Row(2)
//	total, err := row1.Add(row2)
//	t.PushRow(total)
//
//	csv, err := t.CSV()
//
// Cells are typed scalars (empty, text, or decimal number); slices are
// owned row/column snapshots supporting elementwise arithmetic; the table
// owns all cell storage and serializes to CSV and JSON. All computation is
// local and synchronous — the package never performs I/O beyond the
// readers and writers handed to it.
package tabular
