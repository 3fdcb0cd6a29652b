// Package nameinput provides the single-line prompt used to name a new item.
package nameinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/ui/styles"
)

const charLimit = 256

// SubmittedMsg carries the text entered when the user pressed enter.
// The text is passed through untrimmed.
type SubmittedMsg struct {
	Text string
}

// CanceledMsg is sent when the user pressed escape.
type CanceledMsg struct{}

// Model wraps a bubbles text input with a title and key hint.
type Model struct {
	input  textinput.Model
	title  string
	active bool
}

// New creates an inactive input.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Item name..."
	ti.CharLimit = charLimit
	ti.Prompt = "> "
	return Model{input: ti}
}

// Start activates the input with an empty value.
func (m *Model) Start(title string, width int) tea.Cmd {
	m.title = title
	m.active = true
	m.input.SetValue("")
	m.input.Width = max(width-4, 10)
	return m.input.Focus()
}

// Stop deactivates the input.
func (m *Model) Stop() {
	m.active = false
	m.input.Blur()
}

// Active reports whether the input is capturing keys.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Update handles key input while active.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			text := m.input.Value()
			m.Stop()
			return m, func() tea.Msg { return SubmittedMsg{Text: text} }
		case "esc":
			m.Stop()
			return m, func() tea.Msg { return CanceledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the title, the input line and the key hint.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	s := styles.T().S()
	return s.Title.Render(m.title) + "\n" +
		m.input.View() + "\n" +
		s.Subtle.Render("Enter: confirm, Esc: cancel")
}
