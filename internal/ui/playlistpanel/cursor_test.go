package playlistpanel

import "testing"

func TestCursor_MoveClamps(t *testing.T) {
	c := cursor{margin: 1}

	c.move(-3, 5, 10)
	if c.pos != 0 {
		t.Errorf("pos = %d, want 0", c.pos)
	}

	c.move(10, 5, 10)
	if c.pos != 4 {
		t.Errorf("pos = %d, want 4", c.pos)
	}
}

func TestCursor_EmptyListResets(t *testing.T) {
	c := cursor{pos: 3, offset: 2}

	c.jump(1, 0, 10)

	if c.pos != 0 || c.offset != 0 {
		t.Errorf("cursor = %+v, want zero position", c)
	}
}

func TestCursor_ScrollsToKeepCursorVisible(t *testing.T) {
	c := cursor{margin: 1}
	const listLen, height = 20, 5

	c.jump(10, listLen, height)
	start, end := c.visibleRange(listLen, height)
	if c.pos < start || c.pos >= end {
		t.Fatalf("cursor %d outside visible range [%d, %d)", c.pos, start, end)
	}
	if c.pos >= end-1 {
		t.Errorf("margin not respected: pos %d, end %d", c.pos, end)
	}

	c.jump(19, listLen, height)
	start, end = c.visibleRange(listLen, height)
	if start != 15 || end != 20 {
		t.Errorf("visible range = [%d, %d), want [15, 20)", start, end)
	}

	c.jump(0, listLen, height)
	if start, _ := c.visibleRange(listLen, height); start != 0 {
		t.Errorf("start = %d, want 0", start)
	}
}

func TestCursor_ClampAfterShrink(t *testing.T) {
	c := cursor{}
	c.jump(9, 10, 4)

	c.clamp(3, 4)

	if c.pos != 2 {
		t.Errorf("pos = %d, want 2", c.pos)
	}
	if c.offset != 0 {
		t.Errorf("offset = %d, want 0", c.offset)
	}
}
