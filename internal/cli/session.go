package cli

import (
	"context"
	"fmt"

	"github.com/aidanlsb/tripbook/internal/export"
	"github.com/aidanlsb/tripbook/internal/history"
	"github.com/aidanlsb/tripbook/internal/logic"
	"github.com/aidanlsb/tripbook/internal/storage"
)

// historyRetention is how many history lines survive a session start.
const historyRetention = 1000

// session is one opened catalog plus its history database.
type session struct {
	logic   *logic.Logic
	history *history.Store
}

// openSession wires storage, history and export from the loaded config.
// History problems are logged and the session runs without it.
func openSession(ctx context.Context) (*session, error) {
	var format storage.Format
	if cfg.Format != "" {
		f, err := storage.ParseFormat(cfg.Format)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog: %w", err)
		}
		format = f
	}

	hist, err := history.Open(cfg.HistoryPath())
	if err != nil {
		logger.Warn("command history disabled", "path", cfg.HistoryPath(), "error", err)
		hist = nil
	} else if pruned, err := hist.Prune(ctx, historyRetention); err != nil {
		logger.Warn("failed to prune history", "error", err)
	} else if pruned > 0 {
		logger.Debug("pruned history", "removed", pruned)
	}

	l := logic.New(logic.Options{
		Store:        storage.New(dataPath(), format),
		History:      hist,
		Exporter:     export.Exporter{Dir: cfg.ExportPath()},
		HistoryLimit: cfg.HistoryLimit,
		Logger:       logger,
	})
	return &session{logic: l, history: hist}, nil
}

// Close releases the history database.
func (s *session) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close()
}
