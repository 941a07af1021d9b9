package theme

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the palette when a terminal config file changes.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce *time.Timer
	delay    time.Duration
	mu       sync.Mutex
	onChange func()
	done     chan struct{}
}

// NewWatcher watches the existing directories from WatchDirs under the
// user's home. onChange, if set, runs after each reload.
func NewWatcher(onChange func()) (*Watcher, error) {
	home, _ := os.UserHomeDir()
	var dirs []string
	if home != "" {
		dirs = WatchDirs(home)
	}
	return newWatcher(dirs, 150*time.Millisecond, onChange)
}

func newWatcher(dirs []string, delay time.Duration, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if _, err := os.Stat(d); err == nil {
			_ = fsw.Add(d)
		}
	}

	w := &Watcher{
		fsw:      fsw,
		delay:    delay,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.scheduleRefresh()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// scheduleRefresh collapses bursts of writes into one reload.
func (w *Watcher) scheduleRefresh() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.delay, func() {
		Refresh()
		if w.onChange != nil {
			w.onChange()
		}
	})
}

// Stop closes the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsw.Close()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}
