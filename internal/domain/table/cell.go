package table

// Cell holds a single opaque text value. A cell has no identity beyond its
// position in its column; the zero value is an empty cell.
type Cell struct {
	value string
}

// NewCell creates a cell holding the given value.
func NewCell(value string) Cell {
	return Cell{value: value}
}

// Value returns the cell's text value (may be empty).
func (c Cell) Value() string {
	return c.value
}

// SetValue replaces the cell's text value in place.
func (c *Cell) SetValue(value string) {
	c.value = value
}
