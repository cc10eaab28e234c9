// Package table implements the in-memory data model: tables of named,
// ordered columns holding opaque text cells.
package table

import (
	"github.com/leengari/rowdb/internal/domain/errors"
)

// Table is a named collection of columns sharing a common row count.
// columnOrder records insertion order and is the source of truth for
// display and serialization; the map itself has no defined order.
type Table struct {
	name        string
	columns     map[string]*Column
	columnOrder []string
}

// New creates an empty table with the given name and no columns.
func New(name string) *Table {
	return &Table{
		name:    name,
		columns: make(map[string]*Column),
	}
}

// NewWithColumns creates a table with the given columns, in the given order.
// Duplicate names collapse to the first occurrence (AddColumn is idempotent).
func NewWithColumns(name string, columnNames []string) *Table {
	t := New(name)
	for _, col := range columnNames {
		t.AddColumn(col)
	}
	return t
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// AddColumn inserts an empty column at the end of the column order.
// No-op when a column with that name already exists.
func (t *Table) AddColumn(name string) {
	if _, ok := t.columns[name]; ok {
		return
	}
	t.columns[name] = NewColumn(name)
	t.columnOrder = append(t.columnOrder, name)
}

// RemoveColumn deletes the column and its ordering entry. No-op when absent.
func (t *Table) RemoveColumn(name string) {
	if _, ok := t.columns[name]; !ok {
		return
	}
	delete(t.columns, name)
	for i, col := range t.columnOrder {
		if col == name {
			t.columnOrder = append(t.columnOrder[:i], t.columnOrder[i+1:]...)
			break
		}
	}
}

// HasColumn reports whether the table has a column with the given name.
// Matching is exact and case-sensitive.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// ColumnNames returns the column names in display order. The returned slice
// is a copy; mutating it does not affect the table.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columnOrder))
	copy(names, t.columnOrder)
	return names
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.columnOrder)
}

// RowCount returns the length of the first column in display order, which
// equals every column's length under normal use (AddRow and reference-driven
// edits keep columns synchronized). Returns 0 when the table has no columns.
func (t *Table) RowCount() int {
	if len(t.columnOrder) == 0 {
		return 0
	}
	return t.columns[t.columnOrder[0]].Len()
}

// AddRow appends one value to every column, in display order. Fails with
// DimensionMismatchError unless exactly one value per column is given; on
// failure no column is touched. This is the only operation guaranteed to
// keep all columns equal length when used exclusively.
func (t *Table) AddRow(values []string) error {
	if len(values) != len(t.columnOrder) {
		return errors.NewDimensionMismatch(t.name, len(t.columnOrder), len(values))
	}
	for i, col := range t.columnOrder {
		t.columns[col].AppendCell(values[i])
	}
	return nil
}

// GetCell returns the value at (column, row). Reads never fail: an unknown
// column or out-of-range row yields the empty string.
func (t *Table) GetCell(colName string, rowIndex int) string {
	col, ok := t.columns[colName]
	if !ok {
		return ""
	}
	return col.Cell(rowIndex).Value()
}

// SetCell stores a value at (column, row). Fails with ColumnNotFoundError
// for an unknown column. An out-of-range row grows the target column only;
// callers needing whole-table consistency must pre-expand all columns (the
// reference resolver does).
func (t *Table) SetCell(colName string, rowIndex int, value string) error {
	col, ok := t.columns[colName]
	if !ok {
		return errors.NewColumnNotFound(t.name, colName)
	}
	col.SetCell(rowIndex, value)
	return nil
}

// Equal reports whether two tables agree in name, column order, row count,
// and every cell value.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if t.name != other.name {
		return false
	}
	if len(t.columnOrder) != len(other.columnOrder) {
		return false
	}
	for i, col := range t.columnOrder {
		if other.columnOrder[i] != col {
			return false
		}
	}
	if t.RowCount() != other.RowCount() {
		return false
	}
	rows := t.RowCount()
	for _, col := range t.columnOrder {
		for i := 0; i < rows; i++ {
			if t.GetCell(col, i) != other.GetCell(col, i) {
				return false
			}
		}
	}
	return true
}
