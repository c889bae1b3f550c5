// Package tokens holds the static design-token registry, the sparse patch
// types used by theme and brand overrides, and the resolver that merges them.
package tokens

import (
	"fmt"
	"strconv"
)

// Mode selects the day or night variant of mode-dependent tokens.
type Mode string

const (
	ModeDay   Mode = "day"
	ModeNight Mode = "night"
)

// Modes lists every supported mode in projection order.
var Modes = []Mode{ModeDay, ModeNight}

// ParseMode converts a user supplied value into a Mode. The legacy
// light/dark spellings are accepted.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "day", "light":
		return ModeDay, nil
	case "night", "dark":
		return ModeNight, nil
	default:
		return "", fmt.Errorf("unknown mode %q", value)
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeNight {
		return ModeDay
	}
	return ModeNight
}

// ThemeName identifies a theme override preset.
type ThemeName string

const (
	ThemeDefault ThemeName = "default"
	ThemeDark    ThemeName = "dark"
	ThemeBrand   ThemeName = "brand"
)

// ParseThemeName validates a theme name.
func ParseThemeName(value string) (ThemeName, error) {
	switch ThemeName(value) {
	case ThemeDefault, ThemeDark, ThemeBrand:
		return ThemeName(value), nil
	case "":
		return ThemeDefault, nil
	default:
		return "", fmt.Errorf("unknown theme %q", value)
	}
}

// Stop is a numeric position on a colour scale.
type Stop int

// Stops lists the 11 scale positions from lightest to darkest.
var Stops = []Stop{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

const scaleSize = 11

// ParseStop converts "500" style keys into a Stop. Unknown positions are rejected.
func ParseStop(value string) (Stop, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	stop := Stop(n)
	return stop, stop.index() >= 0
}

func (s Stop) index() int {
	for i, candidate := range Stops {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (s Stop) String() string {
	return strconv.Itoa(int(s))
}

// ColorScale maps every stop to an HSL triplet such as "221 83% 53%".
type ColorScale [scaleSize]string

// NewColorScale builds a scale from 11 HSL values ordered 50 through 950.
func NewColorScale(values ...string) ColorScale {
	var scale ColorScale
	copy(scale[:], values)
	return scale
}

// At returns the HSL value at stop, or "" for unknown stops.
func (c ColorScale) At(stop Stop) string {
	idx := stop.index()
	if idx < 0 {
		return ""
	}
	return c[idx]
}

// ModeTokens holds a value for each mode. Both modes are always present.
type ModeTokens[T any] struct {
	Day   T `yaml:"day,omitempty" toml:"day,omitempty" json:"day"`
	Night T `yaml:"night,omitempty" toml:"night,omitempty" json:"night"`
}

// Get returns the value for mode.
func (m ModeTokens[T]) Get(mode Mode) T {
	if mode == ModeNight {
		return m.Night
	}
	return m.Day
}

// BaseColors are the core page-level colours.
type BaseColors struct {
	Background          string `yaml:"background,omitempty" toml:"background,omitempty" json:"background" validate:"omitempty,hsl"`
	Foreground          string `yaml:"foreground,omitempty" toml:"foreground,omitempty" json:"foreground" validate:"omitempty,hsl"`
	Primary             string `yaml:"primary,omitempty" toml:"primary,omitempty" json:"primary" validate:"omitempty,hsl"`
	PrimaryForeground   string `yaml:"primary_foreground,omitempty" toml:"primary_foreground,omitempty" json:"primary_foreground" validate:"omitempty,hsl"`
	Secondary           string `yaml:"secondary,omitempty" toml:"secondary,omitempty" json:"secondary" validate:"omitempty,hsl"`
	SecondaryForeground string `yaml:"secondary_foreground,omitempty" toml:"secondary_foreground,omitempty" json:"secondary_foreground" validate:"omitempty,hsl"`
	Accent              string `yaml:"accent,omitempty" toml:"accent,omitempty" json:"accent" validate:"omitempty,hsl"`
	AccentForeground    string `yaml:"accent_foreground,omitempty" toml:"accent_foreground,omitempty" json:"accent_foreground" validate:"omitempty,hsl"`
	Muted               string `yaml:"muted,omitempty" toml:"muted,omitempty" json:"muted" validate:"omitempty,hsl"`
	MutedForeground     string `yaml:"muted_foreground,omitempty" toml:"muted_foreground,omitempty" json:"muted_foreground" validate:"omitempty,hsl"`
	Border              string `yaml:"border,omitempty" toml:"border,omitempty" json:"border" validate:"omitempty,hsl"`
	Input               string `yaml:"input,omitempty" toml:"input,omitempty" json:"input" validate:"omitempty,hsl"`
	Ring                string `yaml:"ring,omitempty" toml:"ring,omitempty" json:"ring" validate:"omitempty,hsl"`
}

// SurfaceColors describe raised and layered containers.
type SurfaceColors struct {
	Card              string `yaml:"card,omitempty" toml:"card,omitempty" json:"card" validate:"omitempty,hsl"`
	CardForeground    string `yaml:"card_foreground,omitempty" toml:"card_foreground,omitempty" json:"card_foreground" validate:"omitempty,hsl"`
	Popover           string `yaml:"popover,omitempty" toml:"popover,omitempty" json:"popover" validate:"omitempty,hsl"`
	PopoverForeground string `yaml:"popover_foreground,omitempty" toml:"popover_foreground,omitempty" json:"popover_foreground" validate:"omitempty,hsl"`
	Overlay           string `yaml:"overlay,omitempty" toml:"overlay,omitempty" json:"overlay" validate:"omitempty,hsl"`
	Elevated          string `yaml:"elevated,omitempty" toml:"elevated,omitempty" json:"elevated" validate:"omitempty,hsl"`
}

// SemanticColors carry status meaning.
type SemanticColors struct {
	Success           string `yaml:"success,omitempty" toml:"success,omitempty" json:"success" validate:"omitempty,hsl"`
	SuccessForeground string `yaml:"success_foreground,omitempty" toml:"success_foreground,omitempty" json:"success_foreground" validate:"omitempty,hsl"`
	Warning           string `yaml:"warning,omitempty" toml:"warning,omitempty" json:"warning" validate:"omitempty,hsl"`
	WarningForeground string `yaml:"warning_foreground,omitempty" toml:"warning_foreground,omitempty" json:"warning_foreground" validate:"omitempty,hsl"`
	Error             string `yaml:"error,omitempty" toml:"error,omitempty" json:"error" validate:"omitempty,hsl"`
	ErrorForeground   string `yaml:"error_foreground,omitempty" toml:"error_foreground,omitempty" json:"error_foreground" validate:"omitempty,hsl"`
	Info              string `yaml:"info,omitempty" toml:"info,omitempty" json:"info" validate:"omitempty,hsl"`
	InfoForeground    string `yaml:"info_foreground,omitempty" toml:"info_foreground,omitempty" json:"info_foreground" validate:"omitempty,hsl"`
}

// TextColors is the text hierarchy.
type TextColors struct {
	Primary   string `yaml:"primary,omitempty" toml:"primary,omitempty" json:"primary" validate:"omitempty,hsl"`
	Secondary string `yaml:"secondary,omitempty" toml:"secondary,omitempty" json:"secondary" validate:"omitempty,hsl"`
	Muted     string `yaml:"muted,omitempty" toml:"muted,omitempty" json:"muted" validate:"omitempty,hsl"`
	Inverse   string `yaml:"inverse,omitempty" toml:"inverse,omitempty" json:"inverse" validate:"omitempty,hsl"`
	Link      string `yaml:"link,omitempty" toml:"link,omitempty" json:"link" validate:"omitempty,hsl"`
}

// DisabledColors are shared by every disabled control.
type DisabledColors struct {
	Background string `yaml:"background,omitempty" toml:"background,omitempty" json:"background" validate:"omitempty,hsl"`
	Foreground string `yaml:"foreground,omitempty" toml:"foreground,omitempty" json:"foreground" validate:"omitempty,hsl"`
	Border     string `yaml:"border,omitempty" toml:"border,omitempty" json:"border" validate:"omitempty,hsl"`
}

// ChartColors is the categorical data-visualisation palette.
type ChartColors struct {
	One   string `yaml:"one,omitempty" toml:"one,omitempty" json:"one" validate:"omitempty,hsl"`
	Two   string `yaml:"two,omitempty" toml:"two,omitempty" json:"two" validate:"omitempty,hsl"`
	Three string `yaml:"three,omitempty" toml:"three,omitempty" json:"three" validate:"omitempty,hsl"`
	Four  string `yaml:"four,omitempty" toml:"four,omitempty" json:"four" validate:"omitempty,hsl"`
	Five  string `yaml:"five,omitempty" toml:"five,omitempty" json:"five" validate:"omitempty,hsl"`
}

// Token is a named, mode-independent design value.
type Token struct {
	Name  string
	Value string
}
