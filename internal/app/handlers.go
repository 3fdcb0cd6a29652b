package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/keymap"
)

// handleKey dispatches a key press through the resolver.
func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.showHelp = !m.showHelp
		m.resize()
	case keymap.ActionMoveDown:
		m.panel.MoveCursor(1)
	case keymap.ActionMoveUp:
		m.panel.MoveCursor(-1)
	case keymap.ActionJumpStart:
		m.panel.JumpStart()
	case keymap.ActionJumpEnd:
		m.panel.JumpEnd()
	case keymap.ActionAdd:
		cmd := m.input.Start("Add item", m.width)
		m.resize()
		return m, cmd
	case keymap.ActionDelete:
		m.handleDelete()
	case keymap.ActionClear:
		m.handleClear()
	case keymap.ActionUndo:
		m.handleUndo()
	case keymap.ActionRedo:
		m.handleRedo()
	case keymap.ActionConfirm, keymap.ActionCancel:
		// Only meaningful while the name input is open.
	}
	return m, nil
}

func (m *Model) handleDelete() {
	item, ok := m.panel.Selected()
	if !ok {
		return
	}
	if m.engine.RemoveItem(item.ID) {
		m.setStatus("Removed " + item.Name)
		m.changed()
	}
}

func (m *Model) handleClear() {
	n := m.engine.Len()
	if !m.engine.ClearAll() {
		m.setStatus("Playlist is already empty")
		return
	}
	if n == 1 {
		m.setStatus("Cleared 1 item")
	} else {
		m.setStatus(fmt.Sprintf("Cleared %d items", n))
	}
	m.changed()
}

func (m *Model) handleUndo() {
	desc := m.engine.UndoDescription()
	if !m.engine.Undo() {
		m.setStatus("Nothing to undo")
		return
	}
	m.setStatus("Undo " + desc)
	m.changed()
}

func (m *Model) handleRedo() {
	desc := m.engine.RedoDescription()
	if !m.engine.Redo() {
		m.setStatus("Nothing to redo")
		return
	}
	m.setStatus("Redo " + desc)
	m.changed()
}

// changed runs after every state-changing engine call.
func (m *Model) changed() {
	m.panel.SyncCursor()
	m.persist()
}

// quit flushes pending saves and exits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.store != nil {
		if err := m.store.Close(); err != nil {
			m.logger.Error("close state", "err", err)
		}
	}
	return m, tea.Quit
}
