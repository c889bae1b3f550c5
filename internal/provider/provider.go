// Package provider owns the user-facing mode/theme/brand selection. It
// persists the selection, follows the system colour-scheme preference until
// the user picks a mode, and re-runs the orchestrator on every change.
package provider

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/preference"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// State is the selection exposed to consumers.
type State struct {
	Mode  tokens.Mode
	Theme tokens.ThemeName
	// BrandID is the applied brand, empty when none is active.
	BrandID string
	// ModeExplicit is set once the user has chosen a mode; from then on the
	// system preference is ignored.
	ModeExplicit bool
}

// Options configures a Provider. Orchestrator is required.
type Options struct {
	Orchestrator *orchestrator.Orchestrator
	Storage      storage.Storage
	Preference   preference.Source
	Logger       *logger.Logger
}

// Provider is safe for concurrent use.
type Provider struct {
	orch  *orchestrator.Orchestrator
	store storage.Storage
	pref  preference.Source
	log   *logger.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextSub     int
}

// New returns a Provider in the default state. Call Init to load persisted
// state and apply it.
func New(opts Options) (*Provider, error) {
	if opts.Orchestrator == nil {
		return nil, errors.New("provider requires an orchestrator")
	}
	store := opts.Storage
	if store == nil {
		store = storage.NewMemory()
	}
	return &Provider{
		orch:        opts.Orchestrator,
		store:       store,
		pref:        opts.Preference,
		log:         opts.Logger.With("component", "provider"),
		state:       State{Mode: tokens.ModeDay, Theme: tokens.ThemeDefault},
		subscribers: make(map[int]func(State)),
	}, nil
}

// Init paints synchronously from storage, then restores the persisted theme
// and brand through the full transition.
func (p *Provider) Init(ctx context.Context) (orchestrator.Result, error) {
	fast, err := p.orch.InitSync(p.store)
	if err != nil {
		return fast, err
	}

	next := State{Mode: fast.Request.Mode, Theme: tokens.ThemeDefault}

	if mode, ok := p.readMode(); ok {
		next.Mode = mode
		next.ModeExplicit = true
	} else if p.pref != nil {
		if mode, ok := p.pref.Current(); ok {
			next.Mode = mode
		}
	}

	if value, ok := p.read(orchestrator.KeyTheme); ok {
		if name, err := tokens.ParseThemeName(value); err == nil {
			next.Theme = name
		}
	}
	if value, ok := p.read(orchestrator.KeyBrand); ok {
		next.BrandID = value
	}

	return p.apply(ctx, next)
}

// State returns the current selection.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// SetMode records an explicit mode choice, persists it and applies it.
func (p *Provider) SetMode(ctx context.Context, mode tokens.Mode) (orchestrator.Result, error) {
	legacy := "light"
	if mode == tokens.ModeNight {
		legacy = "dark"
	}
	p.write(orchestrator.KeyMode, string(mode))
	p.write(orchestrator.KeyLegacyTheme, legacy)

	next := p.State()
	next.Mode = mode
	next.ModeExplicit = true
	return p.apply(ctx, next)
}

// ToggleMode switches between day and night.
func (p *Provider) ToggleMode(ctx context.Context) (orchestrator.Result, error) {
	return p.SetMode(ctx, p.State().Mode.Toggle())
}

// SetTheme persists and applies a theme override.
func (p *Provider) SetTheme(ctx context.Context, name tokens.ThemeName) (orchestrator.Result, error) {
	p.write(orchestrator.KeyTheme, string(name))

	next := p.State()
	next.Theme = name
	return p.apply(ctx, next)
}

// SetBrand persists and applies a brand. An empty id removes the brand.
func (p *Provider) SetBrand(ctx context.Context, id string) (orchestrator.Result, error) {
	if id == "" {
		p.remove(orchestrator.KeyBrand)
	} else {
		p.write(orchestrator.KeyBrand, id)
	}

	next := p.State()
	next.BrandID = id
	return p.apply(ctx, next)
}

// FollowPreference applies system preference changes until ctx is done.
// Changes are ignored while the mode is explicit.
func (p *Provider) FollowPreference(ctx context.Context) error {
	if p.pref == nil {
		return nil
	}
	return p.pref.Watch(ctx, func(mode tokens.Mode) {
		next := p.State()
		if next.ModeExplicit || next.Mode == mode {
			return
		}
		next.Mode = mode
		if _, err := p.apply(ctx, next); err != nil {
			p.log.Error(err, "apply system preference")
		}
	})
}

// Subscribe registers fn for state changes and returns a function that
// removes it.
func (p *Provider) Subscribe(fn func(State)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSub
	p.nextSub++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

func (p *Provider) apply(ctx context.Context, next State) (orchestrator.Result, error) {
	result, err := p.orch.Apply(ctx, orchestrator.Request{
		Mode:    next.Mode,
		Theme:   next.Theme,
		BrandID: next.BrandID,
	})
	if err != nil || result.Superseded {
		return result, err
	}

	next.Mode = result.Request.Mode
	next.Theme = result.Request.Theme
	next.BrandID = result.Request.BrandID

	p.mu.Lock()
	changed := p.state != next
	p.state = next
	subs := make([]func(State), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(next)
		}
	}
	return result, nil
}

func (p *Provider) readMode() (tokens.Mode, bool) {
	for _, key := range []string{orchestrator.KeyMode, orchestrator.KeyLegacyTheme} {
		value, ok := p.read(key)
		if !ok {
			continue
		}
		if mode, err := tokens.ParseMode(value); err == nil {
			return mode, true
		}
	}
	return "", false
}

func (p *Provider) read(key string) (string, bool) {
	value, ok, err := p.store.Get(key)
	if err != nil {
		p.log.With("key", key).Debug("storage read failed")
		return "", false
	}
	return value, ok && value != ""
}

func (p *Provider) write(key, value string) {
	if err := p.store.Set(key, value); err != nil {
		p.log.With("key", key).Debug("storage write failed")
	}
}

func (p *Provider) remove(key string) {
	if err := p.store.Remove(key); err != nil {
		p.log.With("key", key).Debug("storage remove failed")
	}
}
