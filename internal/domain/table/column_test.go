package table

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestColumnReadIsSafe(t *testing.T) {
	col := NewColumn("Name")

	// Out-of-range reads yield an empty cell and must not grow the column.
	assert.Equal(t, "", col.Cell(0).Value())
	assert.Equal(t, "", col.Cell(99).Value())
	assert.Equal(t, 0, col.Len())
}

func TestColumnSetCellGrows(t *testing.T) {
	col := NewColumn("Name")

	col.SetCell(3, "dave")

	assert.Equal(t, 4, col.Len())
	assert.Equal(t, "dave", col.Cell(3).Value())
	// Implicitly created cells are empty.
	assert.Equal(t, "", col.Cell(0).Value())
	assert.Equal(t, "", col.Cell(2).Value())
}

func TestColumnSetCellNegativeIndexIsNoOp(t *testing.T) {
	col := NewColumn("Name")
	col.AppendCell("alice")

	col.SetCell(-1, "x")

	assert.Equal(t, 1, col.Len())
	assert.Equal(t, "alice", col.Cell(0).Value())
}

func TestColumnAppendCell(t *testing.T) {
	col := NewColumn("Name")

	col.AppendCell("alice")
	col.AppendCell("bob")

	assert.Equal(t, 2, col.Len())
	assert.Equal(t, "alice", col.Cell(0).Value())
	assert.Equal(t, "bob", col.Cell(1).Value())
}

func TestColumnRemoveCellShiftsDown(t *testing.T) {
	col := NewColumn("Name")
	col.AppendCell("alice")
	col.AppendCell("bob")
	col.AppendCell("carol")

	col.RemoveCell(1)

	assert.Equal(t, 2, col.Len())
	assert.Equal(t, "alice", col.Cell(0).Value())
	assert.Equal(t, "carol", col.Cell(1).Value())

	// Out-of-range removal is a no-op.
	col.RemoveCell(10)
	assert.Equal(t, 2, col.Len())
}
