// Package cursor provides a cursor for scrollable lists and grids.
package cursor

// Cursor manages the cursor position and the first visible row of a list
// laid out in rows of cols items. A plain list is a grid with one column.
// The item count, column count and viewport rows are passed to methods
// rather than stored, since they change with the terminal size.
type Cursor struct {
	pos    int // Current item index (0-indexed)
	top    int // First visible row
	margin int // Rows to keep visible above/below the cursor row
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Top returns the first visible row.
func (c Cursor) Top() int {
	return c.top
}

// Move moves the cursor by delta items, clamped to the list, and scrolls to
// keep it visible. If n is 0, this is a no-op.
func (c *Cursor) Move(delta, n, cols, rows int) {
	if n == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, n-1)
	c.ensureVisible(n, cols, rows)
}

// MoveRows moves the cursor by delta rows.
func (c *Cursor) MoveRows(delta, n, cols, rows int) {
	c.Move(delta*max(cols, 1), n, cols, rows)
}

// Jump sets the cursor to an absolute position, clamped to the list.
func (c *Cursor) Jump(pos, n, cols, rows int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
	c.ensureVisible(n, cols, rows)
}

// Clamp brings the cursor back into a list that may have shrunk.
// Returns true if the cursor was adjusted.
func (c *Cursor) Clamp(n, cols, rows int) bool {
	old := c.pos
	if n == 0 {
		c.pos, c.top = 0, 0
		return old != 0
	}
	c.pos = clamp(c.pos, n-1)
	c.ensureVisible(n, cols, rows)
	return c.pos != old
}

// VisibleRange returns the visible item indices [start, end).
func (c Cursor) VisibleRange(n, cols, rows int) (start, end int) {
	if n == 0 || rows <= 0 {
		return 0, 0
	}
	cols = max(cols, 1)
	start = c.top * cols
	end = min(start+rows*cols, n)
	return start, end
}

func (c *Cursor) ensureVisible(n, cols, rows int) {
	if rows <= 0 || n == 0 {
		return
	}
	cols = max(cols, 1)
	row := c.pos / cols
	totalRows := (n + cols - 1) / cols
	margin := min(c.margin, (rows-1)/2)

	// Scroll up: cursor too close to top
	if row < c.top+margin {
		c.top = max(row-margin, 0)
	}
	// Scroll down: cursor too close to bottom
	if row >= c.top+rows-margin {
		c.top = row - rows + margin + 1
	}
	c.top = clamp(c.top, max(totalRows-rows, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
