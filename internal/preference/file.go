package preference

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// File reads the preference from a file containing "dark", "light", "night"
// or "day". Anything else, including a missing file, means no preference.
type File struct {
	path string
	log  *logger.Logger
}

var _ Source = (*File)(nil)

// NewFile returns a Source backed by path.
func NewFile(path string, log *logger.Logger) *File {
	return &File{path: path, log: log.With("preference_file", path)}
}

// Current reads and parses the file.
func (f *File) Current() (tokens.Mode, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			f.log.Debug("preference file unreadable")
		}
		return "", false
	}
	mode, err := tokens.ParseMode(strings.ToLower(strings.TrimSpace(string(data))))
	if err != nil {
		return "", false
	}
	return mode, true
}

// Watch follows the file's directory so editors that replace the file by
// rename are picked up. fn only fires when the parsed mode changes.
func (f *File) Watch(ctx context.Context, fn func(tokens.Mode)) error {
	return f.watch(ctx, fn, nil)
}

// watch calls ready once the directory is being watched.
func (f *File) watch(ctx context.Context, fn func(tokens.Mode), ready func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create preference watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(f.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	last, known := f.Current()
	target := filepath.Clean(f.path)
	if ready != nil {
		ready()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			mode, ok := f.Current()
			if !ok || (known && mode == last) {
				continue
			}
			last, known = mode, true
			f.log.With("mode", string(mode)).Debug("system preference changed")
			fn(mode)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.log.Warn(err, "preference watcher error")
		}
	}
}
