package main

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/setlist/internal/config"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/state"
)

func TestInitialModel_RestoresSavedPlaylist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setlist.db")

	mgr, err := state.Open(state.Options{Path: path})
	if err != nil {
		t.Fatalf("state.Open failed: %v", err)
	}
	saved := []playlist.Item{{ID: "a", Name: "Intro"}, {ID: "b", Name: "Outro"}}
	if err := mgr.SavePlaylist(saved); err != nil {
		t.Fatalf("SavePlaylist failed: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m, err := initialModel(&config.Config{StateFile: path}, logging.NewNop())
	if err != nil {
		t.Fatalf("initialModel failed: %v", err)
	}
	if m.Status() != "" {
		t.Errorf("unexpected status %q", m.Status())
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	out := ansi.Strip(next.View())
	if !strings.Contains(out, "Playlist (2)") || !strings.Contains(out, "Intro") {
		t.Errorf("restored items should be shown, got: %s", out)
	}

	// Quitting closes the database.
	if _, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
}

func TestInitialModel_PersistDisabled(t *testing.T) {
	off := false
	dir := t.TempDir()
	path := filepath.Join(dir, "never.db")

	if _, err := initialModel(&config.Config{StateFile: path, Persist: &off}, logging.NewNop()); err != nil {
		t.Fatalf("initialModel failed: %v", err)
	}

	if matches, _ := filepath.Glob(filepath.Join(dir, "*")); len(matches) != 0 {
		t.Errorf("no database should be created, found %v", matches)
	}
}

func TestOpenLogger_InvalidLevel(t *testing.T) {
	cfg := &config.Config{LogLevel: "loud", LogFile: filepath.Join(t.TempDir(), "x.log")}

	if _, _, err := openLogger(cfg); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestOpenLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "setlist.log")

	logger, closer, err := openLogger(&config.Config{LogFile: path, LogLevel: "debug"})
	if err != nil {
		t.Fatalf("openLogger failed: %v", err)
	}
	defer closer.Close()

	logger.Debug("hello")
	if matches, _ := filepath.Glob(path); len(matches) != 1 {
		t.Errorf("log file should exist at %s", path)
	}
}
