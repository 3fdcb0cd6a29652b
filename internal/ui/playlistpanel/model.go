// Package playlistpanel renders the playlist with a movable cursor.
package playlistpanel

import (
	"github.com/llehouerou/setlist/internal/playlist"
)

const (
	scrollMargin = 2

	// panelOverhead is border (2) + header (1) + separator (1).
	panelOverhead = 4
)

// Source is the read side of the playlist engine.
type Source interface {
	CurrentItems() []playlist.Item
	CanUndo() bool
	CanRedo() bool
}

// Model represents the playlist panel state.
type Model struct {
	source  Source
	cursor  cursor
	width   int
	height  int
	focused bool
}

// New creates a panel reading from source.
func New(source Source) Model {
	return Model{
		source: source,
		cursor: cursor{margin: scrollMargin},
	}
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.SyncCursor()
}

// Width returns the panel width.
func (m Model) Width() int { return m.width }

// Height returns the panel height.
func (m Model) Height() int { return m.height }

func (m Model) listHeight() int {
	return max(m.height-panelOverhead, 0)
}

// CursorPos returns the index under the cursor.
func (m Model) CursorPos() int {
	return m.cursor.pos
}

// Selected returns the item under the cursor.
func (m Model) Selected() (playlist.Item, bool) {
	items := m.source.CurrentItems()
	if m.cursor.pos < 0 || m.cursor.pos >= len(items) {
		return playlist.Item{}, false
	}
	return items[m.cursor.pos], true
}

// MoveCursor moves the cursor by delta rows.
func (m *Model) MoveCursor(delta int) {
	m.cursor.move(delta, len(m.source.CurrentItems()), m.listHeight())
}

// JumpStart moves the cursor to the first item.
func (m *Model) JumpStart() {
	m.cursor.jump(0, len(m.source.CurrentItems()), m.listHeight())
}

// JumpEnd moves the cursor to the last item.
func (m *Model) JumpEnd() {
	n := len(m.source.CurrentItems())
	m.cursor.jump(n-1, n, m.listHeight())
}

// FocusID moves the cursor onto the item with the given id.
// Returns false if the item is not in the playlist.
func (m *Model) FocusID(id string) bool {
	items := m.source.CurrentItems()
	for i := range items {
		if items[i].ID == id {
			m.cursor.jump(i, len(items), m.listHeight())
			return true
		}
	}
	return false
}

// SyncCursor keeps the cursor inside the list after the playlist changed.
func (m *Model) SyncCursor() {
	m.cursor.clamp(len(m.source.CurrentItems()), m.listHeight())
}
