package state

import (
	"time"

	"github.com/llehouerou/setlist/internal/playlist"
)

// Mock is a test double for Manager. It keeps the last snapshot in memory.
type Mock struct {
	items     []playlist.Item
	saves     int
	lastSaved time.Time
	closed    bool

	// SaveErr, when set, is returned by SavePlaylist and GetPlaylist.
	SaveErr error
}

// NewMock creates a new mock state manager holding items.
func NewMock(items ...playlist.Item) *Mock {
	return &Mock{items: items}
}

func (m *Mock) SavePlaylist(items []playlist.Item) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.items = append([]playlist.Item(nil), items...)
	m.saves++
	m.lastSaved = time.Now()
	return nil
}

func (m *Mock) SchedulePlaylistSave(items []playlist.Item) {
	_ = m.SavePlaylist(items)
}

func (m *Mock) GetPlaylist() ([]playlist.Item, error) {
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	return append([]playlist.Item(nil), m.items...), nil
}

func (m *Mock) LastSaved() time.Time { return m.lastSaved }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Saves returns how many snapshots were stored.
func (m *Mock) Saves() int { return m.saves }

// Items returns the stored snapshot.
func (m *Mock) Items() []playlist.Item { return m.items }

// Closed reports whether Close was called.
func (m *Mock) Closed() bool { return m.closed }
