// Package hsl parses and manipulates the space separated HSL triplets
// ("221 83% 53%") that design tokens are stored as.
package hsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a parsed HSL triplet. H is in degrees, S and L in percent.
type Color struct {
	H float64
	S float64
	L float64
}

// Parse decodes a triplet such as "221 83% 53%".
func Parse(value string) (Color, error) {
	parts := strings.Fields(value)
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("hsl %q: expected 3 components, got %d", value, len(parts))
	}

	h, err := parseNumber(parts[0])
	if err != nil {
		return Color{}, fmt.Errorf("hsl %q: hue: %w", value, err)
	}
	s, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, fmt.Errorf("hsl %q: saturation: %w", value, err)
	}
	l, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, fmt.Errorf("hsl %q: lightness: %w", value, err)
	}
	if h < 0 || h > 360 {
		return Color{}, fmt.Errorf("hsl %q: hue out of range", value)
	}

	return Color{H: h, S: s, L: l}, nil
}

func parsePercent(part string) (float64, error) {
	if !strings.HasSuffix(part, "%") {
		return 0, fmt.Errorf("%q is not a percentage", part)
	}
	v, err := parseNumber(strings.TrimSuffix(part, "%"))
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%q out of range", part)
	}
	return v, nil
}

// parseNumber rejects NaN and infinities, which ParseFloat accepts and which
// slip through range comparisons.
func parseNumber(part string) (float64, error) {
	v, err := strconv.ParseFloat(part, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", part)
	}
	return v, nil
}

// Valid reports whether value is a well-formed triplet.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// String formats the colour back into triplet form.
func (c Color) String() string {
	return fmt.Sprintf("%s %s%% %s%%", format(c.H), format(c.S), format(c.L))
}

func format(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}

// Lighten returns c with lightness shifted by delta percentage points, clamped to [0, 100].
func (c Color) Lighten(delta float64) Color {
	c.L = math.Max(0, math.Min(100, c.L+delta))
	return c
}

// Desaturate returns c with saturation reduced by delta percentage points.
func (c Color) Desaturate(delta float64) Color {
	c.S = math.Max(0, math.Min(100, c.S-delta))
	return c
}

// Shift parses value, applies a lightness delta and formats the result.
func Shift(value string, delta float64) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return c.Lighten(delta).String(), nil
}

// Hex converts a triplet into a #rrggbb string.
func Hex(value string) (string, error) {
	c, err := Parse(value)
	if err != nil {
		return "", err
	}
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped().Hex(), nil
}
