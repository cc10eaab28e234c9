// Package storage implements the flat-file persistence layer: the
// line-oriented text codec and load/save against the filesystem.
package storage

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/leengari/rowdb/internal/domain/errors"
	"github.com/leengari/rowdb/internal/domain/table"
)

// Header prefixes of the persisted text format.
const (
	tableHeader   = "TABLE:"
	columnsHeader = "COLUMNS:"
	rowsHeader    = "ROWS:"
	dataHeader    = "DATA:"

	delimiter = ","
)

// Marshal serializes a table into its text form: a table-name line, a
// comma-joined column-name line, a row-count line, a DATA: marker, and one
// comma-joined line per row in column display order. Cell values are
// written verbatim; an embedded comma will corrupt the round trip.
func Marshal(t *table.Table) []byte {
	var buf bytes.Buffer

	cols := t.ColumnNames()
	rowCount := t.RowCount()

	fmt.Fprintf(&buf, "%s%s\n", tableHeader, t.Name())
	fmt.Fprintf(&buf, "%s%s\n", columnsHeader, strings.Join(cols, delimiter))
	fmt.Fprintf(&buf, "%s%d\n", rowsHeader, rowCount)
	fmt.Fprintf(&buf, "%s\n", dataHeader)

	row := make([]string, len(cols))
	for i := 0; i < rowCount; i++ {
		for j, col := range cols {
			row[j] = t.GetCell(col, i)
		}
		fmt.Fprintf(&buf, "%s\n", strings.Join(row, delimiter))
	}

	return buf.Bytes()
}

// Unmarshal reconstructs a table from its text form. Fields are trimmed of
// surrounding whitespace on read. Fails with FormatError when a structural
// header is missing or malformed, or when a data row does not split into
// exactly the declared number of fields. The result is built fresh, so a
// failed parse never leaves a partially-populated table behind.
func Unmarshal(data []byte) (*table.Table, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	// Cell values have no length limit, so a line can exceed the default
	// token size. No line can be longer than the input itself.
	scanner.Buffer(nil, len(data)+1)

	line, ok, err := nextLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok || !strings.HasPrefix(line, tableHeader) {
		return nil, errors.NewFormatError("missing TABLE header")
	}
	tableName := strings.TrimPrefix(line, tableHeader)

	line, ok, err = nextLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok || !strings.HasPrefix(line, columnsHeader) {
		return nil, errors.NewFormatError("missing COLUMNS header")
	}
	var colNames []string
	if rest := strings.TrimPrefix(line, columnsHeader); strings.TrimSpace(rest) != "" {
		colNames = splitFields(rest)
	}

	line, ok, err = nextLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok || !strings.HasPrefix(line, rowsHeader) {
		return nil, errors.NewFormatError("missing ROWS header")
	}
	rowCount, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, rowsHeader)))
	if err != nil || rowCount < 0 {
		return nil, errors.NewFormatError("invalid row count")
	}

	// The DATA: line is only a marker; its content is skipped.
	line, ok, err = nextLine(scanner)
	if err != nil {
		return nil, err
	}
	if !ok || !strings.HasPrefix(line, dataHeader) {
		return nil, errors.NewFormatError("missing DATA marker")
	}

	t := table.NewWithColumns(tableName, colNames)

	for i := 0; i < rowCount; i++ {
		line, ok, err = nextLine(scanner)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.NewRowFormatError(i, "missing data row")
		}
		values := splitFields(line)
		if len(values) != len(colNames) {
			return nil, errors.NewRowFormatError(i,
				fmt.Sprintf("expected %d fields, got %d", len(colNames), len(values)))
		}
		if err := t.AddRow(values); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// nextLine reads one line, reporting false at end of input. A scan failure
// is returned as an error so it is never mistaken for end of input.
func nextLine(scanner *bufio.Scanner) (string, bool, error) {
	if scanner.Scan() {
		return scanner.Text(), true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, errors.NewFormatError("unreadable line: " + err.Error())
	}
	return "", false, nil
}

// splitFields splits a comma-separated line and trims each field. A line
// with no delimiter is a single field, so an empty data line is one empty
// field (a one-column table with an empty cell still round-trips).
func splitFields(line string) []string {
	parts := strings.Split(line, delimiter)
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.TrimSpace(p)
	}
	return fields
}
