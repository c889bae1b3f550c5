package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tmtheme/internal/hsl"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// ColourSet is one semantic slot with its day (Light) and night (Dark) colours.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
}

// Palette maps resolved tokens onto terminal colours so the CLI chrome
// follows the active theme and brand.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Muted   ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
	Info    ColourSet
}

// NewPalette derives a Palette from m.
func NewPalette(m tokens.Merged) Palette {
	ac := func(day, night string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hexOrEmpty(day), Dark: hexOrEmpty(night)}
	}
	base := func(pick func(tokens.BaseColors) string) lipgloss.AdaptiveColor {
		return ac(pick(m.Base.Day), pick(m.Base.Night))
	}
	semantic := func(pick func(tokens.SemanticColors) string) lipgloss.AdaptiveColor {
		return ac(pick(m.Semantic.Day), pick(m.Semantic.Night))
	}

	return Palette{
		Primary: ColourSet{
			Base:   ac(m.Primary.At(600), m.Primary.At(400)),
			OnBase: ac(m.Primary.At(50), m.Primary.At(950)),
		},
		Surface: ColourSet{
			Base:   base(func(b tokens.BaseColors) string { return b.Background }),
			OnBase: base(func(b tokens.BaseColors) string { return b.Foreground }),
		},
		Muted: ColourSet{
			Base:   base(func(b tokens.BaseColors) string { return b.Muted }),
			OnBase: base(func(b tokens.BaseColors) string { return b.MutedForeground }),
		},
		Success: ColourSet{
			Base:   semantic(func(s tokens.SemanticColors) string { return s.Success }),
			OnBase: semantic(func(s tokens.SemanticColors) string { return s.SuccessForeground }),
		},
		Warning: ColourSet{
			Base:   semantic(func(s tokens.SemanticColors) string { return s.Warning }),
			OnBase: semantic(func(s tokens.SemanticColors) string { return s.WarningForeground }),
		},
		Danger: ColourSet{
			Base:   semantic(func(s tokens.SemanticColors) string { return s.Error }),
			OnBase: semantic(func(s tokens.SemanticColors) string { return s.ErrorForeground }),
		},
		Info: ColourSet{
			Base:   semantic(func(s tokens.SemanticColors) string { return s.Info }),
			OnBase: semantic(func(s tokens.SemanticColors) string { return s.InfoForeground }),
		},
	}
}

func hexOrEmpty(value string) string {
	hex, err := hsl.Hex(value)
	if err != nil {
		return ""
	}
	return hex
}

// In returns the slot's base colour for mode, ignoring the terminal background.
func (c ColourSet) In(mode tokens.Mode) lipgloss.Color {
	if mode == tokens.ModeNight {
		return lipgloss.Color(c.Base.Dark)
	}
	return lipgloss.Color(c.Base.Light)
}

// OnIn returns the slot's foreground colour for mode.
func (c ColourSet) OnIn(mode tokens.Mode) lipgloss.Color {
	if mode == tokens.ModeNight {
		return lipgloss.Color(c.OnBase.Dark)
	}
	return lipgloss.Color(c.OnBase.Light)
}
