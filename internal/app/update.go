package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/ui/nameinput"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case nameinput.SubmittedMsg:
		return m.handleSubmitted(msg)

	case nameinput.CanceledMsg:
		m.resize()
		m.setStatus("")
		return m, nil

	case tea.KeyMsg:
		if m.input.Active() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg.String())
	}

	if m.input.Active() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleSubmitted adds the entered name to the playlist.
func (m Model) handleSubmitted(msg nameinput.SubmittedMsg) (tea.Model, tea.Cmd) {
	m.resize()

	item, err := m.engine.AddItem(strings.TrimSpace(msg.Text))
	if err != nil {
		m.logger.Debug("add rejected", "err", err)
		m.ShowError(errmsg.Format(errmsg.OpItemAdd, err))
		return m, nil
	}

	m.logger.Debug("item added", "id", item.ID)
	m.panel.FocusID(item.ID)
	m.setStatus("Added " + item.Name)
	m.persist()
	return m, nil
}

// resize lays out the panel above the input, help and status lines.
func (m *Model) resize() {
	m.panel.SetSize(m.width, max(m.height-m.chromeHeight(), 0))
}

// chromeHeight returns the number of lines below the panel.
func (m Model) chromeHeight() int {
	h := 1 // status bar
	if m.showHelp {
		h += len(m.helpLines())
	}
	if m.input.Active() {
		h += inputHeight
	}
	return h
}
