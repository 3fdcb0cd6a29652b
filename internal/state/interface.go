package state

import (
	"time"

	"github.com/llehouerou/setlist/internal/playlist"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SavePlaylist(items []playlist.Item) error
	SchedulePlaylistSave(items []playlist.Item)
	GetPlaylist() ([]playlist.Item, error)
	LastSaved() time.Time
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
