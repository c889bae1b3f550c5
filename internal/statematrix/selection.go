package statematrix

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// SelectionStates lists the states declared for checkbox and radio controls.
var SelectionStates = []string{
	StateDefault,
	StateHover,
	StateChecked,
	StateDisabled,
	StateFocus,
}

const variantDefault = "default"

// GetCheckboxStateMatrix derives checkbox colours from the primary scale.
func GetCheckboxStateMatrix(mode tokens.Mode, src Source) ComponentStateContract {
	return selectionControl("checkbox", mode, src, false)
}

// GetRadioStateMatrix derives radio colours. Unlike the checkbox, a checked
// radio keeps the page background and paints only its indicator.
func GetRadioStateMatrix(mode tokens.Mode, src Source) ComponentStateContract {
	return selectionControl("radio", mode, src, true)
}

func selectionControl(component string, mode tokens.Mode, src Source, hollow bool) ComponentStateContract {
	o := solidOffsets[tokens.ModeDay]
	if mode == tokens.ModeNight {
		o = solidOffsets[tokens.ModeNight]
	}
	p := src.Primary
	bg := src.Base.Background

	withIndicator := func(pr Properties, indicator string) Properties {
		pr[PropIndicator] = indicator
		return pr
	}

	checked := withIndicator(props(p.At(o.Default), src.Base.PrimaryForeground, p.At(o.Default)), src.Base.PrimaryForeground)
	if hollow {
		checked = withIndicator(props(bg, src.Base.Foreground, p.At(o.Default)), p.At(o.Default))
	}

	focus := withIndicator(props(bg, src.Base.Foreground, p.At(o.Focus)), bg)
	focus[PropRing] = p.At(o.Focus)

	states := States{
		StateDefault:  withIndicator(props(bg, src.Base.Foreground, src.Base.Input), bg),
		StateHover:    withIndicator(props(bg, src.Base.Foreground, p.At(o.Hover)), bg),
		StateChecked:  checked,
		StateDisabled: withIndicator(props(src.Disabled.Background, src.Disabled.Foreground, src.Disabled.Border), src.Disabled.Foreground),
		StateFocus:    focus,
	}

	return ComponentStateContract{
		Component: component,
		Variants:  []string{variantDefault},
		States:    SelectionStates,
		Matrix:    Matrix{component: Variants{variantDefault: states}},
	}
}
