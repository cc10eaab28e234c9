package table

// Column is a named, ordered sequence of cells indexed from 0.
// Index i denotes row i.
type Column struct {
	name  string
	cells []Cell
}

// NewColumn creates an empty column with the given name.
func NewColumn(name string) *Column {
	return &Column{name: name}
}

// Name returns the column's name.
func (c *Column) Name() string {
	return c.name
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.cells)
}

// Cell returns the cell at the given index. Reads are always safe: an
// out-of-range index yields an empty cell and does not grow the column.
func (c *Column) Cell(index int) Cell {
	if index < 0 || index >= len(c.cells) {
		return Cell{}
	}
	return c.cells[index]
}

// SetCell stores a value at the given index, growing the column with empty
// cells as needed so that the index becomes valid. A negative index is a
// no-op, as in Cell and RemoveCell.
func (c *Column) SetCell(index int, value string) {
	if index < 0 {
		return
	}
	c.grow(index)
	c.cells[index].SetValue(value)
}

// AppendCell adds a cell holding the given value at the end of the column.
func (c *Column) AppendCell(value string) {
	c.cells = append(c.cells, NewCell(value))
}

// RemoveCell deletes the cell at the given index, shifting all subsequent
// cells down by one. No-op when the index is out of range. Removing a cell
// shrinks only this column; sibling columns keep their length.
func (c *Column) RemoveCell(index int) {
	if index < 0 || index >= len(c.cells) {
		return
	}
	c.cells = append(c.cells[:index], c.cells[index+1:]...)
}

// grow extends the column with empty cells until index is addressable.
func (c *Column) grow(index int) {
	for len(c.cells) <= index {
		c.cells = append(c.cells, Cell{})
	}
}
