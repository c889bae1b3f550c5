package overrides

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// ThemeSource resolves a theme name to its override patch. A nil patch means
// the theme resolves to the registry alone.
type ThemeSource interface {
	Load(ctx context.Context, name tokens.ThemeName) (*tokens.Patch, error)
}

// ThemeSourceFunc adapts a function to ThemeSource.
type ThemeSourceFunc func(ctx context.Context, name tokens.ThemeName) (*tokens.Patch, error)

// Load calls f.
func (f ThemeSourceFunc) Load(ctx context.Context, name tokens.ThemeName) (*tokens.Patch, error) {
	return f(ctx, name)
}

// Presets serves the built-in theme overrides.
type Presets struct{}

var _ ThemeSource = Presets{}

// Load returns a fresh copy of the preset for name.
func (Presets) Load(ctx context.Context, name tokens.ThemeName) (*tokens.Patch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch name {
	case tokens.ThemeDefault, "":
		return nil, nil
	case tokens.ThemeDark:
		return darkPreset(), nil
	case tokens.ThemeBrand:
		return brandSlotPreset(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// darkPreset deepens every surface so the day palette reads as a dim room
// and the night palette drops to near black.
func darkPreset() *tokens.Patch {
	return &tokens.Patch{
		Base: tokens.ModeTokens[tokens.BaseColors]{
			Day: tokens.BaseColors{
				Background: "220 14% 92%",
				Foreground: "222 47% 8%",
				Muted:      "220 13% 86%",
				Border:     "220 13% 80%",
				Input:      "220 13% 80%",
			},
			Night: tokens.BaseColors{
				Background: "224 71% 3%",
				Foreground: "210 20% 96%",
				Muted:      "223 47% 9%",
				Border:     "216 34% 14%",
				Input:      "216 34% 14%",
			},
		},
		Surface: tokens.ModeTokens[tokens.SurfaceColors]{
			Day: tokens.SurfaceColors{
				Card:     "220 14% 96%",
				Popover:  "220 14% 96%",
				Elevated: "0 0% 100%",
			},
			Night: tokens.SurfaceColors{
				Card:     "224 71% 5%",
				Popover:  "224 71% 5%",
				Overlay:  "224 71% 2%",
				Elevated: "223 47% 9%",
			},
		},
		Text: tokens.ModeTokens[tokens.TextColors]{
			Night: tokens.TextColors{
				Primary: "210 20% 96%",
				Muted:   "217 10% 60%",
			},
		},
	}
}

// brandSlotPreset reserves the accent ramp for brand colours: a neutral teal
// that brand packages are expected to replace.
func brandSlotPreset() *tokens.Patch {
	return &tokens.Patch{
		Accent: tokens.ScalePatch{
			"50":  "166 76% 97%",
			"100": "167 85% 89%",
			"200": "168 84% 78%",
			"300": "171 77% 64%",
			"400": "172 66% 50%",
			"500": "173 80% 40%",
			"600": "175 84% 32%",
			"700": "175 77% 26%",
			"800": "176 69% 22%",
			"900": "176 61% 19%",
			"950": "179 84% 10%",
		},
		Base: tokens.ModeTokens[tokens.BaseColors]{
			Day: tokens.BaseColors{
				Ring: "173 80% 40%",
			},
			Night: tokens.BaseColors{
				Ring: "172 66% 50%",
			},
		},
	}
}
