package repl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/rowdb/internal/registry"
)

func newTestREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	r := New(registry.New(""), strings.NewReader(""), out, "test")
	return r, out
}

func TestDispatchCreateAndView(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Assert(t, r.Dispatch("-c contacts Name Phone"))
	assert.Assert(t, strings.Contains(out.String(), "Table 'contacts' created successfully."))

	out.Reset()
	assert.Assert(t, r.Dispatch("--view"))
	view := out.String()
	assert.Assert(t, strings.Contains(view, "NAME") || strings.Contains(view, "Name"),
		"view output should include the column header, got:\n%s", view)
}

func TestDispatchEdit(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Assert(t, r.Dispatch("-c contacts Name Phone"))

	out.Reset()
	// Values keep their spaces: everything after the reference is the value.
	assert.Assert(t, r.Dispatch("-e Name1 John Doe"))
	assert.Assert(t, strings.Contains(out.String(), "Cell Name1 updated to: John Doe"))

	cur := r.reg.Current()
	assert.Equal(t, "John Doe", cur.GetCell("Name", 0))
	assert.Equal(t, 1, cur.RowCount())
}

func TestDispatchEditErrorKeepsSessionAlive(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Assert(t, r.Dispatch("-c contacts Name"))

	out.Reset()
	assert.Assert(t, r.Dispatch("-e Phone1 x"))
	assert.Assert(t, strings.Contains(out.String(), "Error:"))
	assert.Assert(t, strings.Contains(out.String(), "column not found"))
}

func TestDispatchSelectAndList(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Assert(t, r.Dispatch("-c beta X"))
	assert.Assert(t, r.Dispatch("-c alpha Y"))

	out.Reset()
	assert.Assert(t, r.Dispatch("--list"))
	listed := out.String()
	assert.Assert(t, strings.Index(listed, "alpha") < strings.Index(listed, "beta"),
		"tables should list in sorted order, got:\n%s", listed)

	out.Reset()
	assert.Assert(t, r.Dispatch("-s beta"))
	assert.Assert(t, strings.Contains(out.String(), "Selected table: beta"))

	out.Reset()
	assert.Assert(t, r.Dispatch("-s missing"))
	assert.Assert(t, strings.Contains(out.String(), "Error:"))
}

func TestDispatchSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.odt")

	r, out := newTestREPL(t)
	assert.Assert(t, r.Dispatch("-c contacts Name Phone"))
	assert.Assert(t, r.Dispatch("-e Name1 alice"))

	out.Reset()
	assert.Assert(t, r.Dispatch("-sv "+path))
	assert.Assert(t, strings.Contains(out.String(), "saved to"))

	fresh, out2 := newTestREPL(t)
	assert.Assert(t, fresh.Dispatch("-l "+path))
	assert.Assert(t, strings.Contains(out2.String(), "Table 'contacts' loaded successfully"))
	assert.Equal(t, "alice", fresh.reg.Current().GetCell("Name", 0))
}

func TestDispatchAddRow(t *testing.T) {
	r, out := newTestREPL(t)
	assert.Assert(t, r.Dispatch("-c contacts Name Phone"))

	out.Reset()
	assert.Assert(t, r.Dispatch("-a bob 555-0101"))
	assert.Assert(t, strings.Contains(out.String(), "Row added successfully."))
	assert.Equal(t, 1, r.reg.Current().RowCount())

	out.Reset()
	assert.Assert(t, r.Dispatch("-a too-few"))
	assert.Assert(t, strings.Contains(out.String(), "Error:"))
}

func TestDispatchUnknownCommand(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Assert(t, r.Dispatch("frobnicate"))
	assert.Assert(t, strings.Contains(out.String(), "Unknown command: frobnicate"))
}

func TestDispatchUsageErrors(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Assert(t, r.Dispatch("-c onlyname"))
	assert.Assert(t, strings.Contains(out.String(), "usage:"))

	out.Reset()
	assert.Assert(t, r.Dispatch("-e OnlyRef"))
	assert.Assert(t, strings.Contains(out.String(), "usage:"))
}

func TestDispatchExit(t *testing.T) {
	r, _ := newTestREPL(t)

	assert.Assert(t, !r.Dispatch("exit"))
	assert.Assert(t, !r.Dispatch("quit"))
	assert.Assert(t, !r.Dispatch("EXIT"), "command tokens are case-insensitive")
}

func TestDispatchHelpAndVersion(t *testing.T) {
	r, out := newTestREPL(t)

	assert.Assert(t, r.Dispatch("help"))
	assert.Assert(t, strings.Contains(out.String(), "Personal Data Table Manager"))

	out.Reset()
	assert.Assert(t, r.Dispatch("version"))
	assert.Assert(t, strings.Contains(out.String(), "RowDB version test"))
}

func TestRunStopsAtExit(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.NewReader("-c contacts Name\n\nexit\n-c never Reached\n")

	r := New(registry.New(""), in, out, "test")
	r.Run()

	output := out.String()
	assert.Assert(t, strings.Contains(output, "Table 'contacts' created successfully."))
	assert.Assert(t, !strings.Contains(output, "never"))
	// Prompt shows the current table once one is selected.
	assert.Assert(t, strings.Contains(output, "RowDB/contacts >> "))
}
