package defs

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Update describes one reload of a watched definitions file. When Err
// is set the previous catalog stays in effect and the name slices are
// empty.
type Update struct {
	Catalog *Catalog
	Added   []string
	Removed []string
	Changed []string
	Err     error
}

// Watcher reloads a definitions file when it changes on disk and
// reports which commands appeared, vanished, or changed shape between
// loads. Changed means the command's fingerprint moved.
type Watcher struct {
	path     string
	onUpdate func(Update)
	fsw      *fsnotify.Watcher
	done     chan struct{}
	once     sync.Once

	mu      sync.Mutex
	current *Catalog
}

// Watch loads path and starts watching it. onUpdate runs on the
// watcher goroutine after every reload attempt, including failed ones;
// it may be nil. Watching the containing directory rather than the
// file itself survives editors that replace files by rename.
func Watch(path string, onUpdate func(Update)) (*Watcher, error) {
	initial, err := Load(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch definitions: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch definitions: %w", err)
	}

	w := &Watcher{
		path:     path,
		onUpdate: onUpdate,
		fsw:      fsw,
		done:     make(chan struct{}),
		current:  initial,
	}
	go w.run()
	return w, nil
}

// Catalog returns the most recently loaded catalog.
func (w *Watcher) Catalog() *Catalog {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Reload re-reads the file immediately and reports the outcome. The
// event loop uses it too, so disk events and manual reloads behave
// identically.
func (w *Watcher) Reload() Update {
	upd := w.reload()
	if w.onUpdate != nil {
		w.onUpdate(upd)
	}
	return upd
}

// Close stops the event loop. The last loaded catalog remains
// available through Catalog.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) reload() Update {
	next, err := Load(w.path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		return Update{Catalog: w.current, Err: err}
	}

	added, removed, changed := diffCatalogs(w.current, next)
	w.current = next
	return Update{Catalog: next, Added: added, Removed: removed, Changed: changed}
}

func (w *Watcher) run() {
	base := filepath.Base(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) == 0 {
				continue
			}
			w.Reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Debug("definitions watch error", slog.String("err", err.Error()))
		}
	}
}

// diffCatalogs compares two loaded catalogs by command name and
// fingerprint. Outputs stay in name order because catalog names are
// kept sorted.
func diffCatalogs(old, next *Catalog) (added, removed, changed []string) {
	for _, name := range next.names {
		prior, ok := old.byName[name]
		switch {
		case !ok:
			added = append(added, name)
		case !prior.Fingerprint.Equal(next.byName[name].Fingerprint):
			changed = append(changed, name)
		}
	}
	for _, name := range old.names {
		if _, ok := next.byName[name]; !ok {
			removed = append(removed, name)
		}
	}
	return added, removed, changed
}
