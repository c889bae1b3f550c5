// Package statematrix derives interaction-state colours (hover, active,
// disabled, focus, loading) per component and variant from resolved tokens.
package statematrix

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Properties maps a property name (background, text, border, ring, …) to a value.
type Properties map[string]string

// States maps an interaction state to its properties.
type States map[string]Properties

// Variants maps a variant to its states.
type Variants map[string]States

// Matrix is component → variant → state → property → value.
type Matrix map[string]Variants

// ComponentStateContract describes the complete, statically shaped matrix
// for one component.
type ComponentStateContract struct {
	Component string
	Variants  []string
	States    []string
	Matrix    Matrix
}

// Interaction states shared by the button family.
const (
	StateDefault  = "default"
	StateHover    = "hover"
	StateActive   = "active"
	StateDisabled = "disabled"
	StateFocus    = "focus"
	StateLoading  = "loading"
	StateChecked  = "checked"
)

// Property names. Flattening abbreviates background to bg.
const (
	PropBackground = "background"
	PropText       = "text"
	PropBorder     = "border"
	PropRing       = "ring"
	PropIndicator  = "indicator"
)

// Source is the slice of merged tokens the builders read for one mode.
type Source struct {
	Base     tokens.BaseColors
	Surface  tokens.SurfaceColors
	Semantic tokens.SemanticColors
	Disabled tokens.DisabledColors

	Primary   tokens.ColorScale
	Accent    tokens.ColorScale
	Secondary tokens.ColorScale
}

// SourceFor selects the mode's view of m.
func SourceFor(mode tokens.Mode, m tokens.Merged) Source {
	return Source{
		Base:      m.Base.Get(mode),
		Surface:   m.Surface.Get(mode),
		Semantic:  m.Semantic.Get(mode),
		Disabled:  m.Disabled.Get(mode),
		Primary:   m.Primary,
		Accent:    m.Accent,
		Secondary: m.Secondary,
	}
}

// Contracts returns every component contract for mode.
func Contracts(mode tokens.Mode, src Source) []ComponentStateContract {
	return []ComponentStateContract{
		GetButtonStateMatrix(mode, src),
		GetCheckboxStateMatrix(mode, src),
		GetRadioStateMatrix(mode, src),
	}
}

// BuildMatrix combines every component contract into a single matrix.
func BuildMatrix(mode tokens.Mode, src Source) Matrix {
	out := Matrix{}
	for _, contract := range Contracts(mode, src) {
		for component, variants := range contract.Matrix {
			out[component] = variants
		}
	}
	return out
}

func props(background, text, border string) Properties {
	return Properties{
		PropBackground: background,
		PropText:       text,
		PropBorder:     border,
	}
}
