// Package cssvars builds the flat CSS custom-property maps projected onto a
// style target. Every builder here is a pure function of mode and merged tokens.
package cssvars

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Values maps a CSS custom-property name to its value.
type Values map[string]string

// RequiredThemeTokens is the allowlist checked after the tm group is written
// in development builds. BuildTmRuntimeValues always emits exactly this set.
var RequiredThemeTokens = []string{
	"--tm-bg",
	"--tm-fg",
	"--tm-primary",
	"--tm-primary-fg",
	"--tm-primary-hover",
	"--tm-secondary",
	"--tm-secondary-fg",
	"--tm-accent",
	"--tm-accent-fg",
	"--tm-muted",
	"--tm-muted-fg",
	"--tm-border",
	"--tm-input",
	"--tm-ring",
	"--tm-focus-ring",
	"--tm-card",
	"--tm-card-fg",
	"--tm-popover",
	"--tm-popover-fg",
	"--tm-overlay",
	"--tm-elevated",
	"--tm-text-primary",
	"--tm-text-secondary",
	"--tm-text-muted",
	"--tm-text-inverse",
	"--tm-link",
	"--tm-success",
	"--tm-warning",
	"--tm-error",
	"--tm-info",
	"--tm-disabled-bg",
	"--tm-disabled-fg",
	"--tm-disabled-border",
	"--tm-selection",
	"--tm-hover",
	"--tm-highlight",
	"--tm-shadow-color",
}

const nightShadowColor = "0 0% 0%"

// BuildTmRuntimeValues derives the --tm-* runtime tokens for mode. Several
// entries are mode-conditional formulas over the colour scales rather than
// lookups; downstream visual parity depends on each formula.
func BuildTmRuntimeValues(mode tokens.Mode, m tokens.Merged) Values {
	base := m.Base.Get(mode)
	surface := m.Surface.Get(mode)
	text := m.Text.Get(mode)
	semantic := m.Semantic.Get(mode)
	disabled := m.Disabled.Get(mode)
	night := mode == tokens.ModeNight

	pick := func(day, nightValue string) string {
		if night {
			return nightValue
		}
		return day
	}

	return Values{
		"--tm-bg":              base.Background,
		"--tm-fg":              base.Foreground,
		"--tm-primary":         pick(m.Secondary.At(800), m.Accent.At(600)),
		"--tm-primary-fg":      pick(m.Secondary.At(50), m.Accent.At(50)),
		"--tm-primary-hover":   pick(m.Secondary.At(900), m.Accent.At(500)),
		"--tm-secondary":       base.Secondary,
		"--tm-secondary-fg":    base.SecondaryForeground,
		"--tm-accent":          pick(m.Accent.At(600), m.Accent.At(400)),
		"--tm-accent-fg":       base.AccentForeground,
		"--tm-muted":           base.Muted,
		"--tm-muted-fg":        base.MutedForeground,
		"--tm-border":          base.Border,
		"--tm-input":           base.Input,
		"--tm-ring":            base.Ring,
		"--tm-focus-ring":      pick(m.Primary.At(500), m.Accent.At(400)),
		"--tm-card":            surface.Card,
		"--tm-card-fg":         surface.CardForeground,
		"--tm-popover":         surface.Popover,
		"--tm-popover-fg":      surface.PopoverForeground,
		"--tm-overlay":         surface.Overlay,
		"--tm-elevated":        surface.Elevated,
		"--tm-text-primary":    text.Primary,
		"--tm-text-secondary":  text.Secondary,
		"--tm-text-muted":      text.Muted,
		"--tm-text-inverse":    text.Inverse,
		"--tm-link":            text.Link,
		"--tm-success":         semantic.Success,
		"--tm-warning":         semantic.Warning,
		"--tm-error":           semantic.Error,
		"--tm-info":            semantic.Info,
		"--tm-disabled-bg":     disabled.Background,
		"--tm-disabled-fg":     disabled.Foreground,
		"--tm-disabled-border": disabled.Border,
		"--tm-selection":       pick(m.Primary.At(100), m.Accent.At(800)),
		"--tm-hover":           pick(m.Secondary.At(100), m.Secondary.At(800)),
		"--tm-highlight":       pick(m.Accent.At(100), m.Accent.At(900)),
		"--tm-shadow-color":    pick(m.Secondary.At(900), nightShadowColor),
	}
}

// CheckRequired compares values against RequiredThemeTokens and returns the
// keys that are absent and the keys that are present but blank.
func CheckRequired(values Values) (missing, empty []string) {
	for _, key := range RequiredThemeTokens {
		value, ok := values[key]
		switch {
		case !ok:
			missing = append(missing, key)
		case value == "":
			empty = append(empty, key)
		}
	}
	return missing, empty
}
