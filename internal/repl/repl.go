// Package repl implements the interactive shell: one line in, one command
// dispatched, one result printed. The core never prints; everything user
// visible is produced here.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/leengari/rowdb/internal/registry"
)

// SoftwareName is the user-facing product name.
const SoftwareName = "RowDB"

// command is one dispatch-table entry: a handler plus its argument contract.
type command struct {
	usage   string
	minArgs int
	run     func(r *REPL, args []string)
}

// REPL reads commands from in and writes all output to out. Errors from the
// registry are reported and the loop continues; nothing is fatal.
type REPL struct {
	reg      *registry.Registry
	in       io.Reader
	out      io.Writer
	version  string
	logger   *slog.Logger
	commands map[string]command
}

// New builds a REPL over the given registry. All output goes to out.
func New(reg *registry.Registry, in io.Reader, out io.Writer, version string) *REPL {
	r := &REPL{
		reg:     reg,
		in:      in,
		out:     out,
		version: version,
		logger:  slog.Default().With("session", uuid.NewString()),
	}
	r.commands = dispatchTable()
	return r
}

// dispatchTable maps every command token to its handler. Flag spellings are
// aliases for the same entry.
func dispatchTable() map[string]command {
	table := map[string]command{}

	register := func(entry command, tokens ...string) {
		for _, tok := range tokens {
			table[tok] = entry
		}
	}

	register(command{
		usage:   "create <table> <column> [columns...]",
		minArgs: 2,
		run:     (*REPL).cmdCreate,
	}, "-c", "--create")

	register(command{
		usage:   "edit <cellRef> <value>",
		minArgs: 2,
		run:     (*REPL).cmdEdit,
	}, "-e", "--edit")

	register(command{
		usage: "view",
		run:   (*REPL).cmdView,
	}, "-v", "--view")

	register(command{
		usage:   "select <table>",
		minArgs: 1,
		run:     (*REPL).cmdSelect,
	}, "-s", "--select")

	register(command{
		usage:   "load <file>",
		minArgs: 1,
		run:     (*REPL).cmdLoad,
	}, "-l", "--load")

	register(command{
		usage:   "save <file>",
		minArgs: 1,
		run:     (*REPL).cmdSave,
	}, "-sv", "--save")

	register(command{
		usage:   "addrow <value> [values...]",
		minArgs: 1,
		run:     (*REPL).cmdAddRow,
	}, "-a", "--addrow")

	register(command{
		usage: "list",
		run:   (*REPL).cmdList,
	}, "--list")

	register(command{
		usage: "help",
		run:   (*REPL).cmdHelp,
	}, "help", "--help")

	register(command{
		usage: "version",
		run:   (*REPL).cmdVersion,
	}, "version", "--version")

	return table
}

// Run drives the loop until EOF or an exit command.
func (r *REPL) Run() {
	r.logger.Info("session started")
	defer r.logger.Info("session ended")

	fmt.Fprintf(r.out, "%s %s\n", SoftwareName, r.version)
	fmt.Fprintln(r.out, "Type 'help' for commands or 'exit' to quit.")

	scanner := bufio.NewScanner(r.in)
	for {
		r.printPrompt()
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !r.Dispatch(line) {
			return
		}
	}
}

// Dispatch executes one input line. Returns false when the session should
// end.
func (r *REPL) Dispatch(line string) bool {
	args := strings.Fields(line)
	token := strings.ToLower(args[0])

	if token == "exit" || token == "quit" {
		return false
	}

	cmd, ok := r.commands[token]
	if !ok {
		fmt.Fprintf(r.out, "Unknown command: %s\n", token)
		fmt.Fprintln(r.out, "Type 'help' for available commands.")
		return true
	}

	if len(args)-1 < cmd.minArgs {
		fmt.Fprintf(r.out, "Error: usage: %s\n", cmd.usage)
		return true
	}

	r.logger.Debug("dispatching command", "command", token, "args", len(args)-1)
	cmd.run(r, args[1:])
	return true
}

func (r *REPL) printPrompt() {
	if name := r.reg.CurrentName(); name != "" {
		fmt.Fprintf(r.out, "%s/%s >> ", SoftwareName, name)
	} else {
		fmt.Fprintf(r.out, "%s >> ", SoftwareName)
	}
}

func (r *REPL) printError(err error) {
	fmt.Fprintf(r.out, "Error: %v\n", err)
}
