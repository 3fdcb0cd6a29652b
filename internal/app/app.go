// Package app wires the playlist engine, its persistence and the panels
// into a Bubble Tea program.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/keymap"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/state"
	"github.com/llehouerou/setlist/internal/ui/nameinput"
	"github.com/llehouerou/setlist/internal/ui/playlistpanel"
)

// Model is the root tea.Model.
type Model struct {
	engine *playlist.Engine
	store  state.Interface // nil when persistence is disabled
	logger *slog.Logger
	keys   *keymap.Resolver

	panel playlistpanel.Model
	input nameinput.Model

	status    string
	statusErr bool
	showHelp  bool

	width  int
	height int

	now func() time.Time
}

// New creates the application model. store may be nil to run without
// persistence; logger may be nil to discard logs.
func New(engine *playlist.Engine, store state.Interface, logger *slog.Logger) Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	panel := playlistpanel.New(engine)
	panel.SetFocused(true)
	return Model{
		engine: engine,
		store:  store,
		logger: logger.With("component", "app"),
		keys:   keymap.NewResolver(keymap.Bindings),
		panel:  panel,
		input:  nameinput.New(),
		now:    time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// ShowError puts msg in the status bar as an error.
func (m *Model) ShowError(msg string) {
	m.status = msg
	m.statusErr = true
}

// Status returns the current status bar message.
func (m Model) Status() string {
	return m.status
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

// persist schedules a snapshot save of the current items.
func (m *Model) persist() {
	if m.store == nil {
		return
	}
	m.store.SchedulePlaylistSave(m.engine.CurrentItems())
}
