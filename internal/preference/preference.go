// Package preference reports the operating system's colour-scheme preference
// and notifies watchers when it changes.
package preference

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Source reports the system preference. Current returns ok=false when no
// preference is known. Watch calls fn for every change and blocks until ctx
// is done.
type Source interface {
	Current() (tokens.Mode, bool)
	Watch(ctx context.Context, fn func(tokens.Mode)) error
}

// Static is a Source whose value only changes through Set.
type Static struct {
	mu       sync.Mutex
	mode     tokens.Mode
	known    bool
	watchers map[int]func(tokens.Mode)
	next     int
}

var _ Source = (*Static)(nil)

// NewStatic returns a Static source. An empty mode means no preference.
func NewStatic(mode tokens.Mode) *Static {
	return &Static{mode: mode, known: mode != "", watchers: make(map[int]func(tokens.Mode))}
}

// Current returns the configured mode.
func (s *Static) Current() (tokens.Mode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.known
}

// Set changes the preference and notifies watchers when it differs.
func (s *Static) Set(mode tokens.Mode) {
	s.mu.Lock()
	if s.known && s.mode == mode {
		s.mu.Unlock()
		return
	}
	s.mode, s.known = mode, true
	fns := make([]func(tokens.Mode), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
}

// Watch registers fn until ctx is done.
func (s *Static) Watch(ctx context.Context, fn func(tokens.Mode)) error {
	s.mu.Lock()
	id := s.next
	s.next++
	s.watchers[id] = fn
	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	delete(s.watchers, id)
	s.mu.Unlock()
	return nil
}
