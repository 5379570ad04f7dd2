package logic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/tripbook/internal/export"
	"github.com/aidanlsb/tripbook/internal/history"
	"github.com/aidanlsb/tripbook/internal/logging"
	"github.com/aidanlsb/tripbook/internal/parser"
	"github.com/aidanlsb/tripbook/internal/storage"
)

const (
	addZoo    = "add n/Singapore Zoo p/9 c/91234567 a/80 Mandai Lake Rd t/animals"
	addGarden = "add n/Gardens by the Bay p/7 c/65206848 a/18 Marina Gardens Dr h/05:00-02:00"
)

type fixture struct {
	dir     string
	data    string
	history *history.Store
	logic   *Logic
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{dir: dir, data: filepath.Join(dir, "tripbook.json")}

	h, err := history.Open(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	f.history = h

	f.logic = f.open(t)
	return f
}

func (f *fixture) open(t *testing.T) *Logic {
	t.Helper()
	return New(Options{
		Store:        storage.New(f.data, ""),
		History:      f.history,
		Exporter:     export.Exporter{Dir: filepath.Join(f.dir, "exports")},
		HistoryLimit: 10,
		Logger:       logging.Discard(),
	})
}

func (f *fixture) run(t *testing.T, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := f.logic.Execute(context.Background(), line)
		require.NoError(t, err, line)
	}
}

func TestExecuteSavesAndReloads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	result, err := f.logic.Execute(ctx, addZoo)
	require.NoError(t, err)
	assert.Contains(t, result.Feedback, "New attraction added: Singapore Zoo")
	assert.FileExists(t, f.data)

	f.run(t, addGarden, "additinerary n/Day One ai/1 ai/2", "addlocation ln/North i/1")

	reopened := f.open(t)
	require.Len(t, reopened.FilteredAttractions(), 2)
	assert.Equal(t, "Singapore Zoo", reopened.FilteredAttractions()[0].Name().String())
	require.Len(t, reopened.FilteredItineraries(), 1)
	assert.Len(t, reopened.FilteredItineraries()[0].Attractions(), 2)
	require.Len(t, reopened.Locations(), 1)
	assert.Equal(t, "North", reopened.Locations()[0].Name().String())
}

func TestExecuteDoesNotSaveUnchangedCatalog(t *testing.T) {
	f := newFixture(t)

	_, err := f.logic.Execute(context.Background(), "list")
	require.NoError(t, err)
	assert.NoFileExists(t, f.data)

	_, err = f.logic.Execute(context.Background(), "add n/Zoo")
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.NoFileExists(t, f.data)
}

func TestExecutePersistenceFailureKeepsChange(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(f.dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	f.data = filepath.Join(blocker, "tripbook.json")
	f.logic = f.open(t)

	result, err := f.logic.Execute(context.Background(), addZoo)
	require.Error(t, err)
	assert.True(t, IsPersistence(err))
	assert.Contains(t, err.Error(), "New attraction added: Singapore Zoo")
	assert.Contains(t, result.Feedback, "Singapore Zoo")
	assert.Len(t, f.logic.FilteredAttractions(), 1)
}

func TestNewFallsBackOnCorruptFile(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.data, []byte("{not json"), 0o644))

	l := f.open(t)
	assert.Empty(t, l.FilteredAttractions())

	data, err := os.ReadFile(f.data)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "corrupt file is left alone until a save")
}

func TestExecuteExport(t *testing.T) {
	f := newFixture(t)
	f.run(t, addZoo, "additinerary n/Day One ai/1")

	result, err := f.logic.Execute(context.Background(), "export 1")
	require.NoError(t, err)

	path := filepath.Join(f.dir, "exports", "day-one.md")
	assert.Contains(t, result.Feedback, "Written to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Day One")
	assert.Contains(t, string(data), "Singapore Zoo")
}

func TestHistoryRecordsEveryLine(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.run(t, addZoo)
	_, err := f.logic.Execute(ctx, "frobnicate")
	require.Error(t, err)
	_, err = f.logic.Execute(ctx, "   ")
	require.Error(t, err)

	entries, err := f.logic.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "add", entries[0].Verb)
	assert.True(t, entries[0].OK)
	assert.Equal(t, "frobnicate", entries[1].Verb)
	assert.False(t, entries[1].OK)
}

func TestAttractionLooksUpDisplayedList(t *testing.T) {
	f := newFixture(t)
	f.run(t, addZoo, addGarden, "find gardens")

	a, ok := f.logic.Attraction(0)
	require.True(t, ok)
	assert.Equal(t, "Gardens by the Bay", a.Name().String())

	_, ok = f.logic.Attraction(1)
	assert.False(t, ok)
}

func TestReloadPicksUpOtherWriters(t *testing.T) {
	f := newFixture(t)
	f.run(t, addZoo)

	changed, err := f.logic.Reload()
	require.NoError(t, err)
	assert.False(t, changed, "own saves are not reloaded")

	other := f.open(t)
	_, err = other.Execute(context.Background(), addGarden)
	require.NoError(t, err)

	changed, err = f.logic.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, f.logic.FilteredAttractions(), 2)
}

func TestReloadKeepsCatalogOnInvalidFile(t *testing.T) {
	f := newFixture(t)
	f.run(t, addZoo)
	require.NoError(t, os.WriteFile(f.data, []byte("{broken"), 0o644))

	changed, err := f.logic.Reload()
	require.Error(t, err)
	assert.False(t, changed)
	assert.Len(t, f.logic.FilteredAttractions(), 1)

	changed, err = f.logic.Reload()
	require.NoError(t, err)
	assert.False(t, changed, "the same broken file is reported once")
}
