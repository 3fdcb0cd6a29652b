package playlistpanel

// cursor tracks the highlighted row and the first visible row of the list.
// The list length and viewport height are passed in because both change
// as items are added and the terminal is resized.
type cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the cursor
}

// move shifts the cursor by delta, clamped to the list.
func (c *cursor) move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.jump(c.pos+delta, listLen, height)
}

// jump places the cursor at pos, clamped to the list.
func (c *cursor) jump(pos, listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = min(max(pos, 0), listLen-1)
	c.ensureVisible(listLen, height)
}

// clamp pulls the cursor back inside the list after items were removed.
func (c *cursor) clamp(listLen, height int) {
	c.jump(c.pos, listLen, height)
}

func (c *cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = min(max(c.offset, 0), maxOffset)
}

// visibleRange returns the visible indices [start, end).
func (c cursor) visibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}
