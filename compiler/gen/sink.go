package gen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/tools/imports"
)

// Sink persists generated units.
type Sink interface {
	Write(ctx context.Context, u *Unit) error
}

// FileSink writes units below a root directory. Go units are formatted
// with goimports first.
type FileSink struct {
	Dir string
}

// NewFileSink returns a sink writing below dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Write formats and writes one unit.
func (s *FileSink) Write(ctx context.Context, u *Unit) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, u.File)
	src := u.Source
	if filepath.Ext(path) == ".go" {
		formatted, err := imports.Process(path, src, nil)
		if err != nil {
			// Keep the unformatted file for debugging. Errors are ignored as
			// the unit already failed.
			debug := path + ".error"
			_ = os.MkdirAll(filepath.Dir(debug), 0o755)
			_ = os.WriteFile(debug, src, 0o644)
			return fmt.Errorf("format %s: %w (unformatted written to %s)", u.File, err, debug)
		}
		src = formatted
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", u.File, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", u.File, err)
	}
	return nil
}

// MemorySink keeps units in memory, keyed by full name.
type MemorySink struct {
	mu    sync.Mutex
	units map[string]*Unit
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{units: make(map[string]*Unit)}
}

// Write stores a copy of u.
func (s *MemorySink) Write(_ context.Context, u *Unit) error {
	c := *u
	c.Source = append([]byte(nil), u.Source...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[u.FullName()] = &c
	return nil
}

// Unit returns the unit stored under the given full name.
func (s *MemorySink) Unit(name string) (*Unit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[name]
	return u, ok
}

// Units returns all stored units ordered by full name.
func (s *MemorySink) Units() []*Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	units := make([]*Unit, 0, len(s.units))
	for _, u := range s.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].FullName() < units[j].FullName()
	})
	return units
}
