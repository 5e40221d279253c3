package defs_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaanit/ArgumentParse/defs"
)

const watcherDocV1 = `{
  "version": "1.0.0",
  "commands": [
    {"name": "ban", "args": [{"name": "1", "position": 1, "type": "integer", "required": true}]},
    {"name": "mute"}
  ]
}`

// ban's argument is no longer required, mute is gone, kick is new.
const watcherDocV2 = `{
  "version": "1.0.0",
  "commands": [
    {"name": "ban", "args": [{"name": "1", "position": 1, "type": "integer"}]},
    {"name": "kick"}
  ]
}`

func writeDefs(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestWatcherReloadReportsDrift(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.json")
	writeDefs(t, path, watcherDocV1)

	var (
		mu      sync.Mutex
		updates []defs.Update
	)
	w, err := defs.Watch(path, func(u defs.Update) {
		mu.Lock()
		defer mu.Unlock()
		updates = append(updates, u)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"ban", "mute"}, w.Catalog().Names())

	// Stop the event loop so the writes below only reload when asked;
	// otherwise disk events race the manual Reload calls.
	require.NoError(t, w.Close())

	writeDefs(t, path, watcherDocV2)
	upd := w.Reload()
	require.NoError(t, upd.Err)
	assert.Equal(t, []string{"kick"}, upd.Added)
	assert.Equal(t, []string{"mute"}, upd.Removed)
	assert.Equal(t, []string{"ban"}, upd.Changed)
	assert.Equal(t, []string{"ban", "kick"}, w.Catalog().Names())

	// A broken rewrite keeps the previous catalog in effect.
	writeDefs(t, path, `{"version": "1.0.0"`)
	upd = w.Reload()
	require.Error(t, upd.Err)
	assert.Equal(t, []string{"ban", "kick"}, w.Catalog().Names())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, updates, 2)
	assert.NoError(t, updates[0].Err)
	assert.Error(t, updates[1].Err)
}

func TestWatcherPicksUpDiskChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.json")
	writeDefs(t, path, watcherDocV1)

	w, err := defs.Watch(path, nil)
	require.NoError(t, err)
	defer w.Close()

	writeDefs(t, path, watcherDocV2)
	require.Eventually(t, func() bool {
		_, err := w.Catalog().Command("kick")
		return err == nil
	}, 5*time.Second, 25*time.Millisecond)
}

func TestWatchRejectsBadInitialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.json")
	writeDefs(t, path, `not json`)

	_, err := defs.Watch(path, nil)
	require.Error(t, err)
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defs.json")
	writeDefs(t, path, watcherDocV1)

	w, err := defs.Watch(path, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
