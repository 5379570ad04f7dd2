// Package logic runs command lines against the catalog.
//
// Execute parses a line, runs the command, saves the catalog when the
// command changed it, records the line in history, and carries out the
// export side effect. Everything else a Result asks for (help, history,
// detail, exit) is left to the caller.
package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/export"
	"github.com/aidanlsb/tripbook/internal/history"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/parser"
	"github.com/aidanlsb/tripbook/internal/storage"
)

// Options wires a Logic to its collaborators. History may be nil.
type Options struct {
	Store        *storage.Store
	History      *history.Store
	Exporter     export.Exporter
	HistoryLimit int
	Logger       *slog.Logger
}

// Logic owns the in-memory catalog for one session.
type Logic struct {
	catalog      *catalog.Catalog
	store        *storage.Store
	history      *history.Store
	exporter     export.Exporter
	historyLimit int
	logger       *slog.Logger

	// stamp is the file version last loaded or saved by this session.
	stamp storage.Stamp
}

// New loads the catalog from opts.Store. A file that cannot be read or
// does not hold a valid catalog is logged and replaced by an empty catalog
// in memory; the file itself is left alone until the next save.
func New(opts Options) *Logic {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c, exists, err := opts.Store.Load()
	switch {
	case err != nil:
		logger.Warn("starting with an empty catalog", "path", opts.Store.Path(), "error", err)
		c = catalog.New()
	case !exists:
		logger.Info("no catalog file yet", "path", opts.Store.Path())
	default:
		logger.Debug("loaded catalog", "path", opts.Store.Path(),
			"attractions", len(c.Attractions()),
			"itineraries", len(c.Itineraries()),
			"locations", len(c.Locations()))
	}

	l := &Logic{
		catalog:      c,
		store:        opts.Store,
		history:      opts.History,
		exporter:     opts.Exporter,
		historyLimit: opts.HistoryLimit,
		logger:       logger,
	}
	l.stamp, _ = opts.Store.Stamp()
	return l
}

// Reload replaces the in-memory catalog with the file's contents when the
// file changed since this session last read or wrote it. Filters are
// cleared. An invalid file is reported and the current catalog kept.
func (l *Logic) Reload() (bool, error) {
	stamp, ok := l.store.Stamp()
	if !ok || stamp.Equal(l.stamp) {
		return false, nil
	}
	l.stamp = stamp

	c, _, err := l.store.Load()
	if err != nil {
		l.logger.Warn("ignoring changed catalog file", "path", l.store.Path(), "error", err)
		return false, err
	}
	l.catalog = c
	l.logger.Info("reloaded catalog", "path", l.store.Path())
	return true, nil
}

// Execute runs one command line.
//
// When the command succeeded but saving failed, the result is returned
// together with an error wrapping *storage.PersistenceError; the change
// stays applied in memory.
func (l *Logic) Execute(ctx context.Context, line string) (commands.Result, error) {
	start := time.Now()
	result, err := l.execute(line)
	l.record(ctx, line, err == nil, start)

	verb := parser.Verb(line)
	if err != nil {
		l.logger.Debug("command failed", "verb", verb, "error", err, "duration", time.Since(start))
		return result, err
	}
	l.logger.Debug("command executed", "verb", verb, "duration", time.Since(start))
	return result, nil
}

func (l *Logic) execute(line string) (commands.Result, error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		return commands.Result{}, err
	}

	before := l.catalog.Version()
	result, err := cmd.Execute(l.catalog)
	if err != nil {
		return commands.Result{}, err
	}

	if l.catalog.Version() != before {
		if err := l.store.Save(l.catalog.Snapshot()); err != nil {
			l.logger.Error("failed to save catalog", "path", l.store.Path(), "error", err)
			return result, fmt.Errorf("%s\n%w", result.Feedback, err)
		}
		l.stamp, _ = l.store.Stamp()
	}

	if result.Export != nil {
		path, err := l.exporter.Write(*result.Export)
		if err != nil {
			l.logger.Error("failed to export itinerary", "itinerary", result.Export.Name().String(), "error", err)
			return result, err
		}
		result.Feedback = fmt.Sprintf("%s\nWritten to %s", result.Feedback, path)
	}
	return result, nil
}

func (l *Logic) record(ctx context.Context, line string, ok bool, at time.Time) {
	verb := parser.Verb(line)
	if l.history == nil || verb == "" {
		return
	}
	err := l.history.Record(ctx, history.Entry{EnteredAt: at, Verb: verb, Line: line, OK: ok})
	if err != nil {
		l.logger.Warn("failed to record history", "error", err)
	}
}

// History returns the most recent entered lines, oldest first. Without a
// history store it returns nothing.
func (l *Logic) History(ctx context.Context) ([]history.Entry, error) {
	if l.history == nil {
		return nil, nil
	}
	return l.history.Recent(ctx, l.historyLimit)
}

// FilteredAttractions is the attraction list as currently displayed.
func (l *Logic) FilteredAttractions() []model.Attraction { return l.catalog.FilteredAttractions() }

// FilteredItineraries is the itinerary list as currently displayed.
func (l *Logic) FilteredItineraries() []model.Itinerary { return l.catalog.FilteredItineraries() }

// Locations lists every location.
func (l *Logic) Locations() []model.Location { return l.catalog.Locations() }

// Attraction returns the displayed attraction at i.
func (l *Logic) Attraction(i commands.Index) (model.Attraction, bool) {
	list := l.catalog.FilteredAttractions()
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(list) {
		return model.Attraction{}, false
	}
	return list[i.ZeroBased()], true
}

// DataPath is where the catalog is saved.
func (l *Logic) DataPath() string { return l.store.Path() }

// IsPersistence reports whether err came from saving the catalog.
func IsPersistence(err error) bool {
	var pe *storage.PersistenceError
	return errors.As(err, &pe)
}
