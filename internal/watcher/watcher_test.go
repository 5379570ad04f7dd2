package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyDebounces(t *testing.T) {
	w, err := New(Config{Path: "catalog.json", DebounceDelay: time.Second})
	require.NoError(t, err)

	start := time.Now()
	assert.False(t, w.ready(start), "nothing pending")

	w.handleEvent(fsnotify.Event{Name: w.path, Op: fsnotify.Write})
	assert.False(t, w.ready(time.Now()), "still inside the debounce window")
	assert.True(t, w.ready(time.Now().Add(2*time.Second)))
	assert.False(t, w.ready(time.Now().Add(3*time.Second)), "a burst signals once")
}

func TestHandleEventIgnoresOtherFiles(t *testing.T) {
	w, err := New(Config{Path: "catalog.json", DebounceDelay: time.Millisecond})
	require.NoError(t, err)

	w.handleEvent(fsnotify.Event{Name: filepath.Join(filepath.Dir(w.path), "other.json"), Op: fsnotify.Write})
	w.handleEvent(fsnotify.Event{Name: w.path, Op: fsnotify.Chmod})
	assert.False(t, w.ready(time.Now().Add(time.Second)))
}

func TestNotifyMergesBursts(t *testing.T) {
	w, err := New(Config{Path: "catalog.json"})
	require.NoError(t, err)

	w.notify()
	w.notify()
	<-w.Changes()
	select {
	case <-w.Changes():
		t.Fatal("second notification should have been merged")
	default:
	}
}

func TestStartSignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	w, err := New(Config{Path: path, DebounceDelay: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change signalled")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
