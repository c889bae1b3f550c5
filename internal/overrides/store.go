// Package overrides holds the theme override and the active brand package
// that sit above the token registry during resolution.
package overrides

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Store owns at most one theme override and at most one active brand.
// Every mutation replaces the previous state.
type Store struct {
	themes ThemeSource
	log    *logger.Logger

	mu        sync.RWMutex
	themeName tokens.ThemeName
	theme     *tokens.Patch
	brand     *brand.Package
	written   []string
}

// NewStore returns an empty store. A nil themes source serves Presets.
func NewStore(themes ThemeSource, log *logger.Logger) *Store {
	if themes == nil {
		themes = Presets{}
	}
	return &Store{themes: themes, log: log, themeName: tokens.ThemeDefault}
}

// LoadThemeOverride replaces the theme override with the one named. On error
// the previous override is kept.
func (s *Store) LoadThemeOverride(ctx context.Context, name tokens.ThemeName) error {
	patch, err := s.ResolveThemeOverride(ctx, name)
	if err != nil {
		return err
	}
	s.SetThemeOverride(name, patch)
	return nil
}

// ResolveThemeOverride fetches the patch for name without activating it.
func (s *Store) ResolveThemeOverride(ctx context.Context, name tokens.ThemeName) (*tokens.Patch, error) {
	patch, err := s.themes.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load theme override %q: %w", name, err)
	}
	return patch, nil
}

// SetThemeOverride activates patch under name, replacing the previous override.
func (s *Store) SetThemeOverride(name tokens.ThemeName, patch *tokens.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		name = tokens.ThemeDefault
	}
	s.themeName = name
	s.theme = patch
}

// ThemeName returns the name of the loaded theme override.
func (s *Store) ThemeName() tokens.ThemeName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.themeName
}

// SetActiveBrand makes pkg the active brand and writes its namespaced
// variables to target. Any previously active brand must be removed first.
func (s *Store) SetActiveBrand(pkg *brand.Package, target dom.Target) error {
	if pkg == nil {
		return errors.New("brand package is nil")
	}
	if brand.ReservedNamespace(pkg.Namespace) {
		return fmt.Errorf("brand %q: namespace %q is reserved for engine variables", pkg.ID, pkg.Namespace)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.brand != nil && s.brand.ID != pkg.ID {
		return fmt.Errorf("brand %q is still active", s.brand.ID)
	}

	vars := pkg.NamespacedVariables()
	written := make([]string, 0, len(vars))
	var errs []error
	for _, name := range pkg.VariableNames() {
		if err := target.SetProperty(name, vars[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		written = append(written, name)
	}

	s.brand = pkg
	s.written = written
	s.log.WithFields(map[string]any{"brand": pkg.ID, "variables": len(written)}).Debug("brand activated")

	return errors.Join(errs...)
}

// RemoveBrandOverrides removes every variable the active brand wrote and
// clears it. It is a no-op when no brand is active.
func (s *Store) RemoveBrandOverrides(target dom.Target) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.brand == nil {
		return
	}

	for _, name := range s.written {
		target.RemoveProperty(name)
	}
	s.log.With("brand", s.brand.ID).Debug("brand removed")
	s.brand = nil
	s.written = nil
}

// ClearActiveBrand forgets the active brand without touching any target.
func (s *Store) ClearActiveBrand() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brand = nil
	s.written = nil
}

// ActiveBrand returns the active brand package, or nil.
func (s *Store) ActiveBrand() *brand.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brand
}

// Layers returns the override context for token resolution.
func (s *Store) Layers() tokens.Layers {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layers := tokens.Layers{Theme: s.theme}
	if s.brand != nil {
		patch := s.brand.Tokens
		layers.Brand = &patch
	}
	return layers
}
