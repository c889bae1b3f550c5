// Package studio is an interactive terminal previewer. Key presses change
// the mode, theme and brand through a Selector and the projected variables
// are redrawn as swatches.
package studio

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tmtheme/internal/provider"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// DefaultFilters are the prefixes the g key cycles through.
var DefaultFilters = []string{"", "--tm-", "--primary-", "--accent-", "--button-", "--checkbox-", "--radio-"}

// Themes are the theme names the t key cycles through.
var Themes = []tokens.ThemeName{tokens.ThemeDefault, tokens.ThemeDark, tokens.ThemeBrand}

// Options configures a Model. Selector and Variables are required.
type Options struct {
	Context  context.Context
	Selector Selector
	// Variables returns the custom properties currently projected.
	Variables func() map[string]string
	// Merged returns the merged tokens used to colour the chrome.
	Merged func() tokens.Merged
	// Brands are the ids the b key cycles through, after "no brand".
	Brands  []string
	Filters []string
	Plain   bool
}

// Model is the bubbletea model for the studio.
type Model struct {
	ctx       context.Context
	sel       Selector
	variables func() map[string]string
	merged    func() tokens.Merged

	brands  []string
	filters []string
	plain   bool

	state   provider.State
	pending int
	spinner spinner.Model

	filter   int
	scroll   int
	showHelp bool

	warnings []string
	errorMsg string

	width  int
	height int
}

// NewModel validates opts and returns a model.
func NewModel(opts Options) (Model, error) {
	if opts.Selector == nil {
		return Model{}, errors.New("studio requires a selector")
	}
	if opts.Variables == nil {
		return Model{}, errors.New("studio requires a variables source")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	merged := opts.Merged
	if merged == nil {
		merged = func() tokens.Merged { return tokens.GetMergedTokens(nil, tokens.Layers{}) }
	}
	filters := opts.Filters
	if len(filters) == 0 {
		filters = DefaultFilters
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		sel:       opts.Selector,
		variables: opts.Variables,
		merged:    merged,
		brands:    append([]string{""}, opts.Brands...),
		filters:   filters,
		plain:     opts.Plain,
		state:     opts.Selector.State(),
		spinner:   s,
		width:     80,
		height:    24,
	}, nil
}

// Init restores the persisted selection.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, initCmd(m.ctx, m.sel))
}

// State returns the selection last reported by the selector.
func (m Model) State() provider.State {
	return m.state
}

// Filter returns the active variable prefix filter.
func (m Model) Filter() string {
	return m.filters[m.filter]
}

// Busy reports whether a transition is in flight.
func (m Model) Busy() bool {
	return m.pending > 0
}

func (m Model) nextTheme() tokens.ThemeName {
	for i, name := range Themes {
		if name == m.state.Theme {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func (m Model) nextBrand() string {
	for i, id := range m.brands {
		if id == m.state.BrandID {
			return m.brands[(i+1)%len(m.brands)]
		}
	}
	return m.brands[0]
}
