package tokens

import (
	"reflect"
	"strings"
)

// ScalePatch replaces individual stops of a ColorScale. Keys are stop
// numbers written as strings ("500") so the patch decodes the same way
// from YAML, TOML and JSON.
type ScalePatch map[string]string

// Patch is a sparse override over the colour shapes of the registry. Empty
// strings and absent stops mean "keep the lower layer's value".
type Patch struct {
	Primary   ScalePatch `yaml:"primary,omitempty" toml:"primary,omitempty" json:"primary,omitempty" validate:"omitempty,dive,keys,stop,endkeys,hsl"`
	Accent    ScalePatch `yaml:"accent,omitempty" toml:"accent,omitempty" json:"accent,omitempty" validate:"omitempty,dive,keys,stop,endkeys,hsl"`
	Secondary ScalePatch `yaml:"secondary,omitempty" toml:"secondary,omitempty" json:"secondary,omitempty" validate:"omitempty,dive,keys,stop,endkeys,hsl"`

	Base     ModeTokens[BaseColors]     `yaml:"base,omitempty" toml:"base,omitempty" json:"base"`
	Surface  ModeTokens[SurfaceColors]  `yaml:"surface,omitempty" toml:"surface,omitempty" json:"surface"`
	Semantic ModeTokens[SemanticColors] `yaml:"semantic,omitempty" toml:"semantic,omitempty" json:"semantic"`
	Text     ModeTokens[TextColors]     `yaml:"text,omitempty" toml:"text,omitempty" json:"text"`
	Disabled ModeTokens[DisabledColors] `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled"`
	Chart    ModeTokens[ChartColors]    `yaml:"chart,omitempty" toml:"chart,omitempty" json:"chart"`
}

// Layers is the explicit override context threaded through resolution.
// Either layer may be nil. Brand wins over Theme on conflict.
type Layers struct {
	Theme *Patch
	Brand *Patch
}

// Merged is the fully resolved token set. Mode-dependent groups keep both
// modes so a single resolution serves day and night projection.
type Merged struct {
	Primary   ColorScale
	Accent    ColorScale
	Secondary ColorScale

	Base     ModeTokens[BaseColors]
	Surface  ModeTokens[SurfaceColors]
	Semantic ModeTokens[SemanticColors]
	Text     ModeTokens[TextColors]
	Disabled ModeTokens[DisabledColors]
	Chart    ModeTokens[ChartColors]

	Spacing    []Token
	Radius     []Token
	Shadow     []Token
	Typography []Token
	Motion     []Token
}

// GetMergedTokens resolves reg against the override layers in precedence
// order base, theme, brand. Every value the registry defines is present in
// the result regardless of the layers supplied.
func GetMergedTokens(reg *Registry, layers Layers) Merged {
	if reg == nil {
		reg = DefaultRegistry()
	}

	merged := Merged{
		Primary:    reg.Primary,
		Accent:     reg.Accent,
		Secondary:  reg.Secondary,
		Base:       reg.Base,
		Surface:    reg.Surface,
		Semantic:   reg.Semantic,
		Text:       reg.Text,
		Disabled:   reg.Disabled,
		Chart:      reg.Chart,
		Spacing:    cloneTokens(reg.Spacing),
		Radius:     cloneTokens(reg.Radius),
		Shadow:     cloneTokens(reg.Shadow),
		Typography: cloneTokens(reg.Typography),
		Motion:     cloneTokens(reg.Motion),
	}

	for _, patch := range []*Patch{layers.Theme, layers.Brand} {
		if patch == nil {
			continue
		}
		merged.apply(patch)
	}

	return merged
}

func (m *Merged) apply(p *Patch) {
	m.Primary = patchScale(m.Primary, p.Primary)
	m.Accent = patchScale(m.Accent, p.Accent)
	m.Secondary = patchScale(m.Secondary, p.Secondary)

	m.Base = mergeModes(m.Base, p.Base)
	m.Surface = mergeModes(m.Surface, p.Surface)
	m.Semantic = mergeModes(m.Semantic, p.Semantic)
	m.Text = mergeModes(m.Text, p.Text)
	m.Disabled = mergeModes(m.Disabled, p.Disabled)
	m.Chart = mergeModes(m.Chart, p.Chart)
}

func patchScale(scale ColorScale, patch ScalePatch) ColorScale {
	for key, value := range patch {
		if value == "" {
			continue
		}
		stop, ok := ParseStop(key)
		if !ok {
			continue
		}
		scale[stop.index()] = value
	}
	return scale
}

func mergeModes[T any](base ModeTokens[T], patch ModeTokens[T]) ModeTokens[T] {
	return ModeTokens[T]{
		Day:   overlay(base.Day, patch.Day),
		Night: overlay(base.Night, patch.Night),
	}
}

// overlay copies every non-empty string field of patch onto base.
func overlay[T any](base, patch T) T {
	out := base
	dst := reflect.ValueOf(&out).Elem()
	src := reflect.ValueOf(patch)
	if src.Kind() != reflect.Struct {
		return out
	}
	for i := 0; i < src.NumField(); i++ {
		field := src.Field(i)
		if field.Kind() != reflect.String || field.String() == "" {
			continue
		}
		dst.Field(i).SetString(field.String())
	}
	return out
}

// Fields flattens a colour group into field-name → value pairs using the
// yaml tag names. It is used by builders and by completeness checks.
func Fields[T any](group T) map[string]string {
	v := reflect.ValueOf(group)
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	out := make(map[string]string, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).Kind() != reflect.String {
			continue
		}
		out[fieldName(t.Field(i))] = v.Field(i).String()
	}
	return out
}

func fieldName(f reflect.StructField) string {
	tag, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if tag == "" {
		return f.Name
	}
	return tag
}

func cloneTokens(in []Token) []Token {
	if in == nil {
		return nil
	}
	out := make([]Token, len(in))
	copy(out, in)
	return out
}

// IsEmpty reports whether the patch overrides nothing.
func (p *Patch) IsEmpty() bool {
	if p == nil {
		return true
	}
	if len(p.Primary)+len(p.Accent)+len(p.Secondary) > 0 {
		return false
	}
	groups := []any{
		p.Base.Day, p.Base.Night,
		p.Surface.Day, p.Surface.Night,
		p.Semantic.Day, p.Semantic.Night,
		p.Text.Day, p.Text.Night,
		p.Disabled.Day, p.Disabled.Night,
		p.Chart.Day, p.Chart.Night,
	}
	for _, group := range groups {
		for _, value := range Fields(group) {
			if value != "" {
				return false
			}
		}
	}
	return true
}
