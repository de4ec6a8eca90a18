package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"countrymap/internal/geom"
)

type reloadMsg struct {
	data geom.Data
	err  error
}

type watchErrMsg struct{ err error }

// newWatcher watches the directory of path so that editors which replace
// the file on save are still seen.
func newWatcher(path string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return w, nil
}

// waitForChange blocks until path is written or recreated and reloads it.
// The caller re-issues it after every message.
func waitForChange(w *fsnotify.Watcher, path string) tea.Cmd {
	want := filepath.Clean(path)
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != want || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				d, err := geom.LoadCountries(path)
				return reloadMsg{data: d, err: err}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
