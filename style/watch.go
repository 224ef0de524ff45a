package style

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a stylesheet whenever it or one of its includes changes on disk.
// Directories are watched rather than files so editors that replace files on save are
// picked up.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	logger  *slog.Logger
	files   map[string]bool
	dirs    map[string]bool
	reloads chan *Sheet
	errs    chan error
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The caller receives reloaded sheets from Reloads.
func Watch(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("style: resolve %q: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("style: create watcher: %w", err)
	}
	w := &Watcher{
		path:    abs,
		fs:      fw,
		logger:  logger,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		reloads: make(chan *Sheet, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}

	files := []string{abs}
	if s, err := Load(abs); err == nil {
		files = s.Files()
	} else {
		logger.Warn("stylesheet watch started on a sheet that does not load", "path", abs, "error", err)
	}
	if err := w.track(files); err != nil {
		fw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Reloads delivers the latest successfully reloaded sheet. Unread sheets are replaced by
// newer ones.
func (w *Watcher) Reloads() <-chan *Sheet { return w.reloads }

// Errors delivers reload and watch failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) track(files []string) error {
	for _, f := range files {
		w.files[f] = true
		dir := filepath.Dir(f)
		if w.dirs[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("style: watch %q: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s, err := Load(w.path)
			if err != nil {
				w.logger.Error("stylesheet reload failed", "path", w.path, "error", err)
				w.sendErr(err)
				continue
			}
			if err := w.track(s.Files()); err != nil {
				w.sendErr(err)
			}
			w.logger.Debug("stylesheet reloaded", "path", w.path)
			w.send(s)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Error("stylesheet watcher error", "error", err)
			w.sendErr(err)
		}
	}
}

func (w *Watcher) send(s *Sheet) {
	for {
		select {
		case w.reloads <- s:
			return
		default:
		}
		select {
		case <-w.reloads:
		default:
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
