package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setlist/internal/ui/render"
	"github.com/llehouerou/setlist/internal/ui/styles"
)

// inputHeight is title + input line + key hint.
const inputHeight = 3

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	parts := []string{m.panel.View()}
	if m.input.Active() {
		parts = append(parts, m.input.View())
	}
	if m.showHelp {
		for _, line := range m.helpLines() {
			parts = append(parts, styles.T().S().Muted.Render(render.Fit(line, m.width)))
		}
	}
	parts = append(parts, m.renderStatusBar())

	return strings.Join(parts, "\n")
}

// helpLines packs the help entries into lines no wider than the window.
// An entry is never split; one wider than the window gets its own line.
func (m Model) helpLines() []string {
	const sep = "  "
	var lines []string
	line := ""
	for _, entry := range m.keys.HelpEntries("global", "playlist") {
		switch {
		case line == "":
			line = entry
		case lipgloss.Width(line)+len(sep)+lipgloss.Width(entry) <= m.width:
			line += sep + entry
		default:
			lines = append(lines, line)
			line = entry
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// renderStatusBar shows the last message on the left and save state on the right.
func (m Model) renderStatusBar() string {
	s := styles.T().S()

	saved := m.saveState()
	right := s.Subtle.Render(saved)
	left := m.status
	if left == "" && !m.showHelp {
		left = "? help"
	}
	left = render.Truncate(render.Sanitize(left), max(m.width-len(saved)-1, 0))
	if m.statusErr {
		left = s.Error.Render(left)
	} else {
		left = s.Muted.Render(left)
	}

	return render.Row(left, right, m.width)
}

// saveState describes when the playlist was last written.
func (m Model) saveState() string {
	if m.store == nil {
		return "not saved"
	}
	last := m.store.LastSaved()
	if last.IsZero() {
		return "unsaved"
	}
	return "saved " + humanize.RelTime(last, m.now(), "ago", "from now")
}
