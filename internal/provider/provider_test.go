package provider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/preference"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

type deniedStorage struct{}

func (deniedStorage) Get(string) (string, bool, error) { return "", false, errors.New("denied") }
func (deniedStorage) Set(string, string) error { return errors.New("denied") }
func (deniedStorage) Remove(string) error { return errors.New("denied") }

func loader() brand.Loader {
	return brand.LoaderFunc(func(_ context.Context, id string) (*brand.Package, error) {
		if id != "neon" {
			return nil, errors.New("unknown brand")
		}
		return &brand.Package{ID: "neon", Namespace: "neon", Variables: map[string]string{"glow": "1px"}}, nil
	})
}

func newProvider(t *testing.T, store storage.Storage, pref preference.Source) (*Provider, *dom.Document) {
	t.Helper()

	doc := dom.NewDocument()
	orch, err := orchestrator.New(orchestrator.Options{Target: doc, Brands: loader()})
	require.NoError(t, err)

	p, err := New(Options{Orchestrator: orch, Storage: store, Preference: pref})
	require.NoError(t, err)
	return p, doc
}

func TestNewRequiresOrchestrator(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestInitRestoresPersistedState(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(orchestrator.KeyMode, "night"))
	require.NoError(t, store.Set(orchestrator.KeyTheme, "dark"))
	require.NoError(t, store.Set(orchestrator.KeyBrand, "neon"))

	p, doc := newProvider(t, store, preference.NewStatic(tokens.ModeDay))
	_, err := p.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, State{Mode: tokens.ModeNight, Theme: tokens.ThemeDark, BrandID: "neon", ModeExplicit: true}, p.State())
	brandAttr, _ := doc.Attribute(orchestrator.AttrBrand)
	assert.Equal(t, "neon", brandAttr)
}

func TestInitReadsLegacyThemeKey(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(orchestrator.KeyLegacyTheme, "dark"))

	p, _ := newProvider(t, store, nil)
	_, err := p.Init(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tokens.ModeNight, p.State().Mode)
}

func TestInitUsesSystemPreferenceWithoutStoredMode(t *testing.T) {
	p, doc := newProvider(t, storage.NewMemory(), preference.NewStatic(tokens.ModeNight))
	_, err := p.Init(context.Background())
	require.NoError(t, err)

	state := p.State()
	assert.Equal(t, tokens.ModeNight, state.Mode)
	assert.False(t, state.ModeExplicit)
	assert.True(t, doc.HasClass(orchestrator.ClassDark))
}

func TestInitToleratesFailingStorage(t *testing.T) {
	p, _ := newProvider(t, deniedStorage{}, nil)

	_, err := p.Init(context.Background())
	require.NoError(t, err)
	assert.Equal(t, State{Mode: tokens.ModeDay, Theme: tokens.ThemeDefault}, p.State())

	_, err = p.SetMode(context.Background(), tokens.ModeNight)
	require.NoError(t, err)
	assert.Equal(t, tokens.ModeNight, p.State().Mode)
}

func TestSettersPersist(t *testing.T) {
	store := storage.NewMemory()
	p, _ := newProvider(t, store, nil)
	ctx := context.Background()

	_, err := p.SetMode(ctx, tokens.ModeNight)
	require.NoError(t, err)
	_, err = p.SetTheme(ctx, tokens.ThemeBrand)
	require.NoError(t, err)
	_, err = p.SetBrand(ctx, "neon")
	require.NoError(t, err)

	for key, want := range map[string]string{
		orchestrator.KeyMode:        "night",
		orchestrator.KeyLegacyTheme: "dark",
		orchestrator.KeyTheme:       "brand",
		orchestrator.KeyBrand:       "neon",
	} {
		got, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, err = p.SetBrand(ctx, "")
	require.NoError(t, err)
	_, ok, err := store.Get(orchestrator.KeyBrand)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, p.State().BrandID)
}

func TestToggleMode(t *testing.T) {
	p, _ := newProvider(t, nil, nil)

	_, err := p.ToggleMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tokens.ModeNight, p.State().Mode)

	_, err = p.ToggleMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, tokens.ModeDay, p.State().Mode)
}

func TestFailedBrandIsNotReportedAsActive(t *testing.T) {
	p, _ := newProvider(t, nil, nil)

	result, err := p.SetBrand(context.Background(), "ghost")
	require.NoError(t, err)
	require.Error(t, result.BrandErr)
	assert.Empty(t, p.State().BrandID)
}

func TestSubscribe(t *testing.T) {
	p, _ := newProvider(t, nil, nil)

	var mu sync.Mutex
	var seen []State
	unsubscribe := p.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s)
	})

	_, err := p.SetMode(context.Background(), tokens.ModeNight)
	require.NoError(t, err)
	_, err = p.SetTheme(context.Background(), tokens.ThemeDefault)
	require.NoError(t, err, "unchanged state does not notify")

	unsubscribe()
	_, err = p.SetMode(context.Background(), tokens.ModeDay)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, seen, 1)
	assert.Equal(t, tokens.ModeNight, seen[0].Mode)
}

func TestFollowPreferenceUntilExplicitChoice(t *testing.T) {
	pref := preference.NewStatic(tokens.ModeDay)
	p, _ := newProvider(t, storage.NewMemory(), pref)
	_, err := p.Init(context.Background())
	require.NoError(t, err)

	changes := make(chan State, 4)
	p.Subscribe(func(s State) { changes <- s })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.FollowPreference(ctx) }()

	// Static.Watch registers asynchronously; re-send until it is observed.
	require.Eventually(t, func() bool {
		pref.Set(tokens.ModeDay)
		pref.Set(tokens.ModeNight)
		return p.State().Mode == tokens.ModeNight
	}, 5*time.Second, 10*time.Millisecond)

	_, err = p.SetMode(context.Background(), tokens.ModeDay)
	require.NoError(t, err)

	pref.Set(tokens.ModeDay)
	pref.Set(tokens.ModeNight)
	assert.Equal(t, tokens.ModeDay, p.State().Mode, "explicit choice wins over the system")
	assert.True(t, p.State().ModeExplicit)
}

func TestFollowPreferenceWithoutSource(t *testing.T) {
	p, _ := newProvider(t, nil, nil)
	require.NoError(t, p.FollowPreference(context.Background()))
}
