// Package reference resolves spreadsheet-style cell references ("Name5",
// "A12") into table coordinates, expanding the table with empty rows so the
// referenced row becomes addressable.
package reference

import (
	"strconv"

	"github.com/leengari/rowdb/internal/domain/errors"
	"github.com/leengari/rowdb/internal/domain/table"
)

// Ref is a resolved cell reference: a column name plus a 0-based row index.
type Ref struct {
	Column string
	Row    int
}

// Parse splits a reference token at its first decimal digit: the prefix is
// the column name, the suffix the 1-based row number. Fails with
// InvalidReferenceError when the prefix is empty, the suffix is empty or
// contains a non-digit, or the row number is zero.
func Parse(token string) (Ref, error) {
	split := len(token)
	for i := 0; i < len(token); i++ {
		if token[i] >= '0' && token[i] <= '9' {
			split = i
			break
		}
	}
	if split == 0 {
		return Ref{}, errors.NewInvalidReference(token, "missing column name")
	}
	if split == len(token) {
		return Ref{}, errors.NewInvalidReference(token, "missing row number")
	}

	colName := token[:split]
	rowStr := token[split:]
	for i := 0; i < len(rowStr); i++ {
		if rowStr[i] < '0' || rowStr[i] > '9' {
			return Ref{}, errors.NewInvalidReference(token, "row number is not numeric")
		}
	}

	rowNum, err := strconv.Atoi(rowStr)
	if err != nil {
		return Ref{}, errors.NewInvalidReference(token, "row number is not numeric")
	}
	if rowNum == 0 {
		return Ref{}, errors.NewInvalidReference(token, "row numbers start at 1")
	}

	return Ref{Column: colName, Row: rowNum - 1}, nil
}

// Resolve parses a token against a table: the column must exist (exact,
// case-sensitive), and the table is grown with empty rows until the row
// index is valid. Growth goes through AddRow so every column stays
// length-synchronized, unlike direct SetCell expansion.
func Resolve(t *table.Table, token string) (Ref, error) {
	ref, err := Parse(token)
	if err != nil {
		return Ref{}, err
	}

	if !t.HasColumn(ref.Column) {
		return Ref{}, errors.NewColumnNotFound(t.Name(), ref.Column)
	}

	empty := make([]string, t.ColumnCount())
	for ref.Row >= t.RowCount() {
		if err := t.AddRow(empty); err != nil {
			return Ref{}, err
		}
	}

	return ref, nil
}

// Apply resolves a token and writes the value into the referenced cell.
func Apply(t *table.Table, token, value string) (Ref, error) {
	ref, err := Resolve(t, token)
	if err != nil {
		return Ref{}, err
	}
	if err := t.SetCell(ref.Column, ref.Row, value); err != nil {
		return Ref{}, err
	}
	return ref, nil
}
