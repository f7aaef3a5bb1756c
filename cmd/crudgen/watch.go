package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// debounce is the quiet period after the last change before regenerating.
const debounce = 200 * time.Millisecond

// watchSet resolves the directories to watch for a set of sources.
type watchSet struct {
	sources []string
	target  string
}

// dirs returns the directories of schema files and of local package
// patterns. Patterns naming a remote import path are not watched.
func (s *watchSet) dirs() []string {
	seen := make(map[string]bool)
	for _, src := range s.sources {
		var dir string
		switch {
		case isSchemaFile(src):
			dir = filepath.Dir(src)
		case src == "." || strings.HasPrefix(src, "./") || strings.HasPrefix(src, "../") || filepath.IsAbs(src):
			dir = filepath.Clean(strings.TrimSuffix(src, "/..."))
		default:
			if fi, err := os.Stat(src); err == nil && fi.IsDir() {
				dir = filepath.Clean(src)
			}
		}
		if dir != "" {
			seen[dir] = true
		}
	}
	dirs := make([]string, 0, len(seen))
	for dir := range seen {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// relevant reports whether ev may change the loaded schemas. Files below
// the target directory are ignored.
func (s *watchSet) relevant(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	if s.target != "" {
		if rel, err := filepath.Rel(s.target, ev.Name); err == nil && !strings.HasPrefix(rel, "..") {
			return false
		}
	}
	return filepath.Ext(ev.Name) == ".go" || isSchemaFile(ev.Name)
}

// watch calls run after changes to the watched sources until ctx is done.
// Run failures are logged and do not stop watching.
func watch(ctx context.Context, log *zap.Logger, set *watchSet, run func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer w.Close()
	for _, dir := range set.dirs() {
		if err := w.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
		log.Info("watching", zap.String("dir", dir))
	}
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !set.relevant(ev) {
				continue
			}
			log.Debug("source changed", zap.String("file", ev.Name), zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		case <-fire:
			fire = nil
			if err := run(ctx); err != nil {
				log.Error("generation failed", zap.Error(err))
			}
		}
	}
}
