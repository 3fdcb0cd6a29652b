package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setlist/internal/app"
	"github.com/llehouerou/setlist/internal/config"
	"github.com/llehouerou/setlist/internal/errmsg"
	"github.com/llehouerou/setlist/internal/logging"
	"github.com/llehouerou/setlist/internal/playlist"
	"github.com/llehouerou/setlist/internal/state"
)

func initialModel(cfg *config.Config, logger *slog.Logger) (app.Model, error) {
	engine := playlist.NewEngine()

	if !cfg.PersistEnabled() {
		logger.Info("persistence disabled")
		return app.New(engine, nil, logger), nil
	}

	stateMgr, err := state.Open(state.Options{
		Path:         cfg.StateFile,
		SaveDebounce: cfg.SaveDebounce(),
		Logger:       logger,
	})
	if err != nil {
		return app.Model{}, errors.New(errmsg.FormatWith(errmsg.OpStateOpen, cfg.StateFile, err))
	}

	// A broken snapshot should not keep the app from starting empty.
	items, loadErr := stateMgr.GetPlaylist()
	if loadErr == nil {
		engine.RestoreItems(items)
		logger.Info("playlist restored", "items", engine.Len())
	} else {
		logger.Error("load playlist", "err", loadErr)
	}

	m := app.New(engine, stateMgr, logger)
	if loadErr != nil {
		m.ShowError(errmsg.Format(errmsg.OpPlaylistLoad, loadErr))
	}
	return m, nil
}

// openLogger writes logs to a file since the TUI owns the terminal.
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.LogFile
	if path == "" {
		path, err = logging.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, level), f, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpConfigLoad, err))
		os.Exit(1)
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		fmt.Println(errmsg.Format(errmsg.OpLogOpen, err))
		os.Exit(1)
	}
	defer logFile.Close()

	m, err := initialModel(cfg, logger)
	if err != nil {
		logger.Error("initialize", "err", err)
		fmt.Println(err)
		os.Exit(1) //nolint:gocritic // log file is append-only
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
