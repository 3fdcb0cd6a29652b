// Package state persists the playlist snapshot in a SQLite database.
// Only the current items are stored; undo history is never persisted.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/setlist/internal/db"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/playlist"
)

const (
	appName             = "setlist"
	dbFileName          = "setlist.db"
	DefaultSaveDebounce = 500 * time.Millisecond
)

// Options configures Open.
type Options struct {
	// Path of the database file. Empty means $XDG_DATA_HOME/setlist/setlist.db.
	Path string
	// SaveDebounce delays scheduled saves. Zero saves synchronously.
	SaveDebounce time.Duration
	Logger       *slog.Logger
}

type Manager struct {
	db       *sql.DB
	logger   *slog.Logger
	debounce time.Duration

	saveMu     sync.Mutex
	saveTimer  *time.Timer
	pending    []playlist.Item
	pendingGen uint64
	hasSave    bool
	gen        uint64 // last generation handed out
	lastSaved  time.Time

	// writeMu serializes snapshot writes. A write whose generation is not
	// newer than written is dropped, so an older snapshot never lands last.
	writeMu sync.Mutex
	written uint64
	closed  bool
}

func Open(opts Options) (*Manager, error) {
	dbPath := opts.Path
	if dbPath == "" {
		var err error
		dbPath, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if dbPath != ":memory:" {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := dbutil.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Manager{
		db:       db,
		logger:   logger.With("component", "state", "path", dbPath),
		debounce: max(opts.SaveDebounce, 0),
	}, nil
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close flushes a pending save and closes the database. A save that is
// already running finishes first.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending, gen, hasSave := m.takePending()
	m.saveMu.Unlock()

	// Flush pending state
	if hasSave {
		if err := m.write(gen, pending); err != nil {
			m.logger.Error("flush playlist on close", "err", err)
		}
	}

	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.closed = true
	return m.db.Close()
}

// GetPlaylist returns the saved items in order, or an empty slice.
func (m *Manager) GetPlaylist() ([]playlist.Item, error) {
	return getPlaylist(m.db)
}

// SavePlaylist replaces the stored snapshot with items.
func (m *Manager) SavePlaylist(items []playlist.Item) error {
	m.saveMu.Lock()
	m.gen++
	gen := m.gen
	m.saveMu.Unlock()

	return m.write(gen, items)
}

// write stores items unless a newer generation is already stored.
func (m *Manager) write(gen uint64, items []playlist.Item) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if m.closed || gen <= m.written {
		m.logger.Debug("stale playlist save skipped", "gen", gen, "written", m.written)
		return nil
	}
	if err := savePlaylist(context.Background(), m.db, items); err != nil {
		return err
	}
	m.written = gen

	m.saveMu.Lock()
	m.lastSaved = time.Now()
	m.saveMu.Unlock()
	m.logger.Debug("playlist saved", "items", len(items), "gen", gen)
	return nil
}

// takePending returns and clears the scheduled snapshot. saveMu must be held.
func (m *Manager) takePending() ([]playlist.Item, uint64, bool) {
	pending, gen, hasSave := m.pending, m.pendingGen, m.hasSave
	m.pending, m.pendingGen, m.hasSave = nil, 0, false
	return pending, gen, hasSave
}

// SchedulePlaylistSave stores items after the debounce delay.
// A newer call replaces a snapshot that has not been written yet.
func (m *Manager) SchedulePlaylistSave(items []playlist.Item) {
	snapshot := append([]playlist.Item(nil), items...)

	if m.debounce == 0 {
		if err := m.SavePlaylist(snapshot); err != nil {
			m.logger.Error("save playlist", "err", err)
		}
		return
	}

	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.gen++
	m.pending = snapshot
	m.pendingGen = m.gen
	m.hasSave = true

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending, gen, hasSave := m.takePending()
		m.saveMu.Unlock()

		if hasSave {
			if err := m.write(gen, pending); err != nil {
				m.logger.Error("save playlist", "err", err)
			}
		}
	})
}

// LastSaved returns when the snapshot was last written, or the zero time.
func (m *Manager) LastSaved() time.Time {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	return m.lastSaved
}
