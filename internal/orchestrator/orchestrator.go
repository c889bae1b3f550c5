// Package orchestrator applies a (mode, theme, brand) selection to a document:
// it resolves override layers, projects colour and state variables, and keeps
// root attributes and body colours in step.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/overrides"
	"github.com/alexisbeaulieu97/tmtheme/internal/projector"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// Root attributes and classes written on every transition.
const (
	AttrMode      = "data-mode"
	AttrTheme     = "data-theme"
	AttrThemeName = "data-theme-name"
	AttrBrand     = "data-brand"
	ClassDark     = "dark"
)

// Storage keys read by the fast path. The provider writes them.
const (
	KeyMode        = "tm_mode"
	KeyTheme       = "tm_theme"
	KeyBrand       = "tm_brand"
	KeyLegacyTheme = "theme"
)

// Request is the state to apply. An empty BrandID means no brand.
type Request struct {
	Mode    tokens.Mode
	Theme   tokens.ThemeName
	BrandID string
}

// Result describes one transition.
type Result struct {
	Request Request
	Colors  projector.Report
	States  projector.Report
	// BrandErr holds a brand load failure that was absorbed.
	BrandErr error
	// Superseded is set when a newer Apply started before this one projected.
	Superseded bool
}

// Options configures an Orchestrator. Target is required.
type Options struct {
	Target    dom.Target
	Projector *projector.Projector
	Overrides *overrides.Store
	Brands    brand.Loader
	Registry  *tokens.Registry
	Logger    *logger.Logger
}

// Orchestrator sequences theme transitions against one target.
type Orchestrator struct {
	target    dom.Target
	projector *projector.Projector
	overrides *overrides.Store
	brands    brand.Loader
	registry  *tokens.Registry
	log       *logger.Logger

	// mu serializes every write to target.
	mu      sync.Mutex
	current Request

	applyMu sync.Mutex
	cancel  context.CancelFunc
}

// New builds an Orchestrator, filling unset collaborators with defaults.
func New(opts Options) (*Orchestrator, error) {
	if opts.Target == nil {
		return nil, errors.New("orchestrator requires a target")
	}

	o := &Orchestrator{
		target:    opts.Target,
		projector: opts.Projector,
		overrides: opts.Overrides,
		brands:    opts.Brands,
		registry:  opts.Registry,
		log:       opts.Logger,
		current:   Request{Mode: tokens.ModeDay, Theme: tokens.ThemeDefault},
	}
	if o.projector == nil {
		o.projector = projector.New(projector.Options{Logger: opts.Logger})
	}
	if o.overrides == nil {
		o.overrides = overrides.NewStore(nil, opts.Logger)
	}
	if o.registry == nil {
		o.registry = tokens.DefaultRegistry()
	}
	return o, nil
}

// Overrides exposes the store owned by this orchestrator.
func (o *Orchestrator) Overrides() *overrides.Store {
	return o.overrides
}

// Current returns the last projected request.
func (o *Orchestrator) Current() Request {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// InitSync is the fast transition used before first paint. It settles the
// mode from the document, then storage, then day, and projects the cached
// override layers without touching any loader.
func (o *Orchestrator) InitSync(store storage.Storage) (Result, error) {
	mode := o.initialMode(store)

	o.mu.Lock()
	defer o.mu.Unlock()

	req := Request{Mode: mode, Theme: o.overrides.ThemeName()}
	if active := o.overrides.ActiveBrand(); active != nil {
		req.BrandID = active.ID
	}
	return o.project(req)
}

func (o *Orchestrator) initialMode(store storage.Storage) tokens.Mode {
	if value, ok := o.target.Attribute(AttrMode); ok {
		if mode, err := tokens.ParseMode(value); err == nil {
			return mode
		}
	}

	for _, key := range []string{KeyMode, KeyLegacyTheme} {
		if mode, ok := readMode(store, key, o.log); ok {
			return mode
		}
	}

	return tokens.ModeDay
}

func readMode(store storage.Storage, key string, log *logger.Logger) (tokens.Mode, bool) {
	if store == nil {
		return "", false
	}
	value, ok, err := store.Get(key)
	if err != nil {
		log.With("key", key).Debug("storage read failed, using defaults")
		return "", false
	}
	if !ok {
		return "", false
	}
	mode, err := tokens.ParseMode(value)
	if err != nil {
		return "", false
	}
	return mode, true
}

// Apply is the full transition. It cancels any Apply still in flight, loads
// the theme override, swaps the brand (removing the old one before loading
// the new one) and projects. Loads run outside the projection lock; their
// results are only activated if the call has not been superseded. Brand
// failures are absorbed into the result.
func (o *Orchestrator) Apply(parent context.Context, req Request) (Result, error) {
	if req.Theme == "" {
		req.Theme = tokens.ThemeDefault
	}
	if req.Mode == "" {
		req.Mode = tokens.ModeDay
	}

	o.applyMu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	o.cancel = cancel
	o.applyMu.Unlock()
	defer cancel()

	log := o.log.WithFields(map[string]any{
		"mode":  string(req.Mode),
		"theme": string(req.Theme),
		"brand": req.BrandID,
	})

	theme, themeErr := o.overrides.ResolveThemeOverride(ctx, req.Theme)
	if themeErr != nil {
		if ctx.Err() != nil {
			return o.superseded(parent, req)
		}
		log.Warn(themeErr, "theme override unavailable, keeping previous override")
	}

	result := Result{Request: req}

	o.mu.Lock()
	if active := o.overrides.ActiveBrand(); active != nil && active.ID != req.BrandID {
		o.overrides.RemoveBrandOverrides(o.target)
	}
	needLoad := req.BrandID != "" && o.overrides.ActiveBrand() == nil
	o.mu.Unlock()

	var pkg *brand.Package
	if needLoad {
		var err error
		pkg, err = o.loadBrand(ctx, req.BrandID)
		if ctx.Err() != nil {
			return o.superseded(parent, req)
		}
		if err != nil {
			log.Warn(err, "brand load failed, continuing without brand")
			result.BrandErr = err
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if ctx.Err() != nil {
		return o.superseded(parent, req)
	}

	if themeErr == nil {
		o.overrides.SetThemeOverride(req.Theme, theme)
	} else {
		req.Theme = o.overrides.ThemeName()
	}

	if pkg != nil {
		if active := o.overrides.ActiveBrand(); active != nil && active.ID != pkg.ID {
			o.overrides.RemoveBrandOverrides(o.target)
		}
		if err := o.overrides.SetActiveBrand(pkg, o.target); err != nil {
			log.Warn(err, "brand variables partially written")
		}
	} else if result.BrandErr != nil {
		o.overrides.ClearActiveBrand()
	}

	if active := o.overrides.ActiveBrand(); active != nil {
		req.BrandID = active.ID
	} else {
		req.BrandID = ""
	}

	projected, err := o.project(req)
	projected.BrandErr = result.BrandErr
	return projected, err
}

func (o *Orchestrator) loadBrand(ctx context.Context, id string) (*brand.Package, error) {
	if o.brands == nil {
		return nil, fmt.Errorf("no brand loader configured for %q", id)
	}
	pkg, err := o.brands.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, fmt.Errorf("brand loader returned nothing for %q", id)
	}
	// Custom loaders may skip parsing, so validation runs here too.
	if err := brand.Validate(pkg); err != nil {
		return nil, themeerrors.NewBrandLoadError(id, err)
	}
	return pkg, nil
}

func (o *Orchestrator) superseded(parent context.Context, req Request) (Result, error) {
	if err := parent.Err(); err != nil {
		return Result{Request: req}, err
	}
	o.log.With("mode", string(req.Mode)).Debug("theme transition superseded")
	return Result{Request: req, Superseded: true}, nil
}

// project writes attributes, colours, the state matrix and body colours for
// req, in that order. Colours precede the state matrix so component variables
// never reference a stale palette. Callers hold o.mu.
func (o *Orchestrator) project(req Request) (Result, error) {
	result := Result{Request: req}

	o.writeAttributes(req)

	merged := tokens.GetMergedTokens(o.registry, o.overrides.Layers())

	colors, err := o.projector.UpdateCSSVariablesFromTokens(o.target, req.Mode, merged)
	result.Colors = colors
	if err != nil {
		return result, err
	}

	states, err := o.projector.UpdateStateMatrixFromTokens(o.target, req.Mode, merged)
	result.States = states
	if err != nil {
		return result, err
	}

	base := merged.Base.Get(req.Mode)
	o.target.SetBodyStyle("background-color", fmt.Sprintf("hsl(%s)", base.Background))
	o.target.SetBodyStyle("color", fmt.Sprintf("hsl(%s)", base.Foreground))

	o.current = req
	o.log.WithFields(map[string]any{
		"mode":    string(req.Mode),
		"theme":   string(req.Theme),
		"brand":   req.BrandID,
		"written": colors.Written() + states.Written(),
	}).Debug("theme projected")

	return result, nil
}

func (o *Orchestrator) writeAttributes(req Request) {
	legacy := "light"
	if req.Mode == tokens.ModeNight {
		legacy = "dark"
	}

	o.target.SetAttribute(AttrMode, string(req.Mode))
	o.target.SetAttribute(AttrTheme, legacy)
	o.target.SetAttribute(AttrThemeName, string(req.Theme))
	if req.BrandID != "" {
		o.target.SetAttribute(AttrBrand, req.BrandID)
	} else {
		o.target.RemoveAttribute(AttrBrand)
	}
	o.target.ToggleClass(ClassDark, req.Mode == tokens.ModeNight)
}
