// Package errors defines the structured error kinds reported by the core.
// Every failure is a value returned to the caller; the presentation layer
// decides how to show it.
package errors

import (
	"fmt"
	"strings"
)

// DimensionMismatchError is returned when a row's value count does not
// match the table's column count.
type DimensionMismatchError struct {
	Table    string
	Expected int // column count
	Got      int // value count
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("table %s: row has %d values, expected %d", e.Table, e.Got, e.Expected)
}

func NewDimensionMismatch(table string, expected, got int) *DimensionMismatchError {
	return &DimensionMismatchError{Table: table, Expected: expected, Got: got}
}

// ColumnNotFoundError is returned when an operation references a column
// name the table does not have. Column matching is case-sensitive.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("column not found: %s", e.Column)
	}
	return fmt.Sprintf("column not found: %s.%s", e.Table, e.Column)
}

func NewColumnNotFound(table, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Table: table, Column: column}
}

// TableNotFoundError is returned by registry lookups for unknown names.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table not found: %s", e.Name)
}

func NewTableNotFound(name string) *TableNotFoundError {
	return &TableNotFoundError{Name: name}
}

// TableExistsError is returned when creating a table whose name is taken.
type TableExistsError struct {
	Name string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table already exists: %s", e.Name)
}

func NewTableExists(name string) *TableExistsError {
	return &TableExistsError{Name: name}
}

// NoTableSelectedError is returned by operations that need a current table
// when none has been created, loaded, or selected yet.
type NoTableSelectedError struct {
	Op string // operation that required a selection (optional)
}

func (e *NoTableSelectedError) Error() string {
	if e.Op == "" {
		return "no table selected"
	}
	return fmt.Sprintf("no table selected (%s)", e.Op)
}

func NewNoTableSelected(op string) *NoTableSelectedError {
	return &NoTableSelectedError{Op: op}
}

// InvalidReferenceError is returned for malformed cell-reference tokens:
// no column letters, no trailing row digits, or a zero row number.
type InvalidReferenceError struct {
	Ref    string
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	parts := []string{fmt.Sprintf("invalid cell reference: %s", e.Ref)}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, " - ")
}

func NewInvalidReference(ref, reason string) *InvalidReferenceError {
	return &InvalidReferenceError{Ref: ref, Reason: reason}
}

// FileNotFoundError is returned when a load path and its suffixed fallback
// are both absent. Both attempted paths are named in the message.
type FileNotFoundError struct {
	Path     string
	Fallback string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("cannot open file: %s (also tried: %s)", e.Path, e.Fallback)
}

func NewFileNotFound(path, fallback string) *FileNotFoundError {
	return &FileNotFoundError{Path: path, Fallback: fallback}
}

// FormatError is returned when persisted text violates the file format:
// a missing or malformed header line, or a data row whose field count does
// not match the declared column count.
type FormatError struct {
	Path   string // file path, empty when parsing in-memory text
	Row    int    // 0-based data row index, -1 for header problems
	Reason string
}

func (e *FormatError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("invalid file format in %s", e.Path))
	} else {
		parts = append(parts, "invalid file format")
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Row >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.Row))
	}
	return strings.Join(parts, " - ")
}

func NewFormatError(reason string) *FormatError {
	return &FormatError{Row: -1, Reason: reason}
}

func NewRowFormatError(row int, reason string) *FormatError {
	return &FormatError{Row: row, Reason: reason}
}

// IOError wraps an underlying read/write failure (permissions, disk).
type IOError struct {
	Op   string // "read", "write", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func NewIOError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}
