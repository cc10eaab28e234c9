package repl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/leengari/rowdb/internal/domain/table"
)

// Render writes a table as a bordered ASCII grid with a 1-based line-number
// column, matching what the user typed in cell references.
func Render(w io.Writer, t *table.Table) {
	if t.ColumnCount() == 0 {
		fmt.Fprintln(w, "Table is empty.")
		return
	}

	cols := t.ColumnNames()
	header := make([]string, 0, len(cols)+1)
	header = append(header, "#")
	header = append(header, cols...)

	grid := tablewriter.NewWriter(w)
	grid.Header(header)

	for i := 0; i < t.RowCount(); i++ {
		row := make([]string, 0, len(cols)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, col := range cols {
			row = append(row, t.GetCell(col, i))
		}
		if err := grid.Append(row); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return
		}
	}

	if err := grid.Render(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}
