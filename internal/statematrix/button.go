package statematrix

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/hsl"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Button variants.
const (
	VariantPrimary     = "primary"
	VariantSecondary   = "secondary"
	VariantAccent      = "accent"
	VariantOutline     = "outline"
	VariantGhost       = "ghost"
	VariantDestructive = "destructive"
)

// ButtonVariants lists the declared button variants.
var ButtonVariants = []string{
	VariantPrimary,
	VariantSecondary,
	VariantAccent,
	VariantOutline,
	VariantGhost,
	VariantDestructive,
}

// ButtonStates lists the declared button states.
var ButtonStates = []string{
	StateDefault,
	StateHover,
	StateActive,
	StateDisabled,
	StateFocus,
	StateLoading,
}

// scaleOffsets picks stops on a colour scale for each state.
type scaleOffsets struct {
	Default      tokens.Stop
	Hover        tokens.Stop
	Active       tokens.Stop
	Disabled     tokens.Stop
	Focus        tokens.Stop
	Text         tokens.Stop
	DisabledText tokens.Stop
}

// solidOffsets serves the primary and accent variants.
var solidOffsets = map[tokens.Mode]scaleOffsets{
	tokens.ModeDay:   {Default: 600, Hover: 700, Active: 800, Disabled: 300, Focus: 500, Text: 50, DisabledText: 100},
	tokens.ModeNight: {Default: 500, Hover: 400, Active: 300, Disabled: 800, Focus: 400, Text: 950, DisabledText: 600},
}

// softOffsets serves the secondary variant.
var softOffsets = map[tokens.Mode]scaleOffsets{
	tokens.ModeDay:   {Default: 100, Hover: 200, Active: 300, Disabled: 50, Focus: 400, Text: 900, DisabledText: 400},
	tokens.ModeNight: {Default: 800, Hover: 700, Active: 600, Disabled: 900, Focus: 500, Text: 50, DisabledText: 600},
}

// Lightness deltas for destructive states, applied to the semantic error colour.
var destructiveShift = map[tokens.Mode]struct {
	Hover, Active, Focus, Disabled float64
}{
	tokens.ModeDay:   {Hover: -8, Active: -14, Focus: -4, Disabled: 25},
	tokens.ModeNight: {Hover: 8, Active: 14, Focus: 4, Disabled: -25},
}

const destructiveDisabledDesaturation = 40

// GetButtonStateMatrix derives the full button matrix for mode.
func GetButtonStateMatrix(mode tokens.Mode, src Source) ComponentStateContract {
	if mode != tokens.ModeNight {
		mode = tokens.ModeDay
	}

	variants := Variants{
		VariantPrimary:     scaleVariant(src.Primary, solidOffsets[mode]),
		VariantSecondary:   scaleVariant(src.Secondary, softOffsets[mode]),
		VariantAccent:      scaleVariant(src.Accent, solidOffsets[mode]),
		VariantOutline:     outlineVariant(mode, src),
		VariantGhost:       ghostVariant(mode, src),
		VariantDestructive: destructiveVariant(mode, src),
	}

	return ComponentStateContract{
		Component: "button",
		Variants:  ButtonVariants,
		States:    ButtonStates,
		Matrix:    Matrix{"button": variants},
	}
}

func scaleVariant(scale tokens.ColorScale, o scaleOffsets) States {
	focus := props(scale.At(o.Default), scale.At(o.Text), scale.At(o.Focus))
	focus[PropRing] = scale.At(o.Focus)

	return States{
		StateDefault:  props(scale.At(o.Default), scale.At(o.Text), scale.At(o.Default)),
		StateHover:    props(scale.At(o.Hover), scale.At(o.Text), scale.At(o.Hover)),
		StateActive:   props(scale.At(o.Active), scale.At(o.Text), scale.At(o.Active)),
		StateDisabled: props(scale.At(o.Disabled), scale.At(o.DisabledText), scale.At(o.Disabled)),
		StateFocus:    focus,
		StateLoading:  props(scale.At(o.Hover), scale.At(o.Text), scale.At(o.Hover)),
	}
}

// outlineVariant draws from the accent scale over the page background.
func outlineVariant(mode tokens.Mode, src Source) States {
	a := src.Accent
	var hoverBg, hoverText, hoverBorder, activeBg, activeBorder, ring string
	if mode == tokens.ModeNight {
		hoverBg, hoverText, hoverBorder = a.At(900), a.At(200), a.At(700)
		activeBg, activeBorder = a.At(800), a.At(600)
		ring = a.At(400)
	} else {
		hoverBg, hoverText, hoverBorder = a.At(50), a.At(700), a.At(300)
		activeBg, activeBorder = a.At(100), a.At(400)
		ring = a.At(500)
	}

	focus := props(src.Base.Background, src.Base.Foreground, ring)
	focus[PropRing] = ring

	return States{
		StateDefault:  props(src.Base.Background, src.Base.Foreground, src.Base.Border),
		StateHover:    props(hoverBg, hoverText, hoverBorder),
		StateActive:   props(activeBg, hoverText, activeBorder),
		StateDisabled: props(src.Base.Background, src.Disabled.Foreground, src.Disabled.Border),
		StateFocus:    focus,
		StateLoading:  props(src.Surface.Elevated, src.Base.MutedForeground, src.Base.Border),
	}
}

// ghostVariant has no resting chrome; it picks up muted and accent fills on interaction.
func ghostVariant(mode tokens.Mode, src Source) States {
	a := src.Accent
	var activeBg, activeText, ring string
	if mode == tokens.ModeNight {
		activeBg, activeText, ring = a.At(800), a.At(100), a.At(400)
	} else {
		activeBg, activeText, ring = a.At(100), a.At(800), a.At(500)
	}

	bg := src.Base.Background
	focus := props(bg, src.Base.Foreground, ring)
	focus[PropRing] = ring

	return States{
		StateDefault:  props(bg, src.Base.Foreground, bg),
		StateHover:    props(src.Base.Muted, src.Base.Foreground, src.Base.Muted),
		StateActive:   props(activeBg, activeText, activeBg),
		StateDisabled: props(bg, src.Disabled.Foreground, bg),
		StateFocus:    focus,
		StateLoading:  props(src.Base.Muted, src.Base.MutedForeground, src.Base.Muted),
	}
}

// destructiveVariant derives every state from the semantic error colour.
func destructiveVariant(mode tokens.Mode, src Source) States {
	base := src.Semantic.Error
	text := src.Semantic.ErrorForeground
	shift := destructiveShift[mode]

	hover := shiftOr(base, shift.Hover)
	active := shiftOr(base, shift.Active)
	ring := shiftOr(base, shift.Focus)
	disabled := base
	if c, err := hsl.Parse(base); err == nil {
		disabled = c.Desaturate(destructiveDisabledDesaturation).Lighten(shift.Disabled).String()
	}

	focus := props(base, text, ring)
	focus[PropRing] = ring

	return States{
		StateDefault:  props(base, text, base),
		StateHover:    props(hover, text, hover),
		StateActive:   props(active, text, active),
		StateDisabled: props(disabled, text, disabled),
		StateFocus:    focus,
		StateLoading:  props(hover, text, hover),
	}
}

// shiftOr falls back to the unshifted value when value is not a parseable triplet.
func shiftOr(value string, delta float64) string {
	shifted, err := hsl.Shift(value, delta)
	if err != nil {
		return value
	}
	return shifted
}
