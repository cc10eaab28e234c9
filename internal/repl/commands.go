package repl

import (
	"fmt"
	"strings"

	"github.com/leengari/rowdb/internal/domain/errors"
)

func (r *REPL) cmdCreate(args []string) {
	tableName := args[0]
	columns := args[1:]

	if err := r.reg.Create(tableName, columns); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "Table '%s' created successfully.\n", tableName)
}

func (r *REPL) cmdEdit(args []string) {
	cellRef := args[0]
	// The value is everything after the reference, spaces included.
	value := strings.Join(args[1:], " ")

	if _, err := r.reg.EditCell(cellRef, value); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "Cell %s updated to: %s\n", cellRef, value)
}

func (r *REPL) cmdView(args []string) {
	t := r.reg.Current()
	if t == nil {
		r.printError(errors.NewNoTableSelected("view"))
		return
	}
	Render(r.out, t)
}

func (r *REPL) cmdSelect(args []string) {
	tableName := args[0]

	if err := r.reg.Select(tableName); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "Selected table: %s\n", tableName)
}

func (r *REPL) cmdLoad(args []string) {
	path := args[0]

	name, actual, err := r.reg.Load(path)
	if err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "Table '%s' loaded successfully from '%s'.\n", name, actual)
}

func (r *REPL) cmdSave(args []string) {
	path := args[0]

	if err := r.reg.Save(path); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintf(r.out, "Table saved to '%s' successfully.\n", path)
}

func (r *REPL) cmdAddRow(args []string) {
	if err := r.reg.AddRow(args); err != nil {
		r.printError(err)
		return
	}
	fmt.Fprintln(r.out, "Row added successfully.")
}

func (r *REPL) cmdList(args []string) {
	names := r.reg.List()
	if len(names) == 0 {
		fmt.Fprintln(r.out, "No tables loaded.")
		return
	}
	fmt.Fprintln(r.out, "Available tables:")
	for _, name := range names {
		fmt.Fprintf(r.out, "  %s\n", name)
	}
}

func (r *REPL) cmdHelp(args []string) {
	fmt.Fprintf(r.out, "%s - Personal Data Table Manager\n", SoftwareName)
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  -c, --create <table> [columns...]  Create a new table")
	fmt.Fprintln(r.out, "  -e, --edit <cellRef> <value>       Edit a cell (e.g., A5)")
	fmt.Fprintln(r.out, "  -v, --view                         View current table")
	fmt.Fprintln(r.out, "  -s, --select <table>               Select a table")
	fmt.Fprintln(r.out, "  -l, --load <file>                  Load a table from file")
	fmt.Fprintln(r.out, "  -sv, --save <file>                 Save current table to file")
	fmt.Fprintln(r.out, "  -a, --addrow <values...>           Append a row to the current table")
	fmt.Fprintln(r.out, "  --list                             List all loaded tables")
	fmt.Fprintln(r.out, "  help                               Show this help message")
	fmt.Fprintln(r.out, "  version                            Show version information")
	fmt.Fprintln(r.out, "  exit                               Leave the shell")
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Supported Formats:")
	fmt.Fprintln(r.out, "  .odt - Open Data Table (unencrypted)")
}

func (r *REPL) cmdVersion(args []string) {
	fmt.Fprintf(r.out, "%s version %s\n", SoftwareName, r.version)
}
