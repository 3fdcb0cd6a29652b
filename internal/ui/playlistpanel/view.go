package playlistpanel

import (
	"fmt"
	"strings"

	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/ui/render"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

const (
	undoSymbol = "\u21B6" // ↶
	redoSymbol = "\u21B7" // ↷

	emptyHint = "Empty playlist. Press a to add an item."
)

// View renders the playlist panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := max(m.width-2, 0) // border
	items := m.source.CurrentItems()

	header := m.renderHeader(len(items), innerWidth)
	separator := styles.T().S().Subtle.Render(render.Separator(innerWidth))
	list := m.renderList(items, innerWidth, m.listHeight())

	content := header + "\n" + separator
	if list != "" {
		content += "\n" + list
	}

	return styles.PanelStyle(m.focused).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders "Playlist (n)" with undo/redo availability on the right.
func (m Model) renderHeader(count, innerWidth int) string {
	s := styles.T().S()
	left := s.Title.Render(fmt.Sprintf("Playlist (%d)", count))

	undo := s.Subtle.Render(undoSymbol + " undo")
	if m.source.CanUndo() {
		undo = s.Success.Render(undoSymbol + " undo")
	}
	redo := s.Subtle.Render(redoSymbol + " redo")
	if m.source.CanRedo() {
		redo = s.Success.Render(redoSymbol + " redo")
	}

	return render.Row(left, undo+"  "+redo, innerWidth)
}

func (m Model) renderList(items []playlist.Item, innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}

	lines := make([]string, 0, listHeight)
	if len(items) == 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.Fit(emptyHint, innerWidth)))
	}

	start, end := m.cursor.visibleRange(len(items), listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderItemLine(items[idx], idx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return strings.Join(lines, "\n")
}

// renderItemLine renders one row: position number and name.
func (m Model) renderItemLine(item playlist.Item, idx, width int) string {
	number := fmt.Sprintf("%3d  ", idx+1)
	nameWidth := max(width-len(number), 0)
	line := number + render.Fit(item.Name, nameWidth)

	if idx == m.cursor.pos && m.focused {
		return styles.T().S().Cursor.Render(line)
	}
	return styles.T().S().Base.Render(line)
}
