// Package preview renders projected custom properties as terminal swatches.
package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tmtheme/internal/hsl"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

const swatchWidth = 4

// Options controls Render.
type Options struct {
	Title   string
	Mode    tokens.Mode
	Palette Palette
	// Prefix keeps only variables starting with it, e.g. "--tm-".
	Prefix string
	// Plain disables colour, for pipes and tests.
	Plain bool
}

// Render lists values sorted by name. HSL triplets get a colour swatch,
// anything else (lengths, shadows, font stacks) gets a blank cell.
func Render(values map[string]string, opts Options) string {
	names := make([]string, 0, len(values))
	width := 0
	for name := range values {
		if opts.Prefix != "" && !strings.HasPrefix(name, opts.Prefix) {
			continue
		}
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(title(opts))
		b.WriteString("\n")
	}

	nameStyle := lipgloss.NewStyle().Width(width + 2)
	for _, name := range names {
		value := values[name]
		b.WriteString(swatch(value, opts.Plain))
		b.WriteString(" ")
		if opts.Plain {
			b.WriteString(fmt.Sprintf("%-*s", width+2, name))
		} else {
			b.WriteString(nameStyle.Render(name))
		}
		b.WriteString(value)
		b.WriteString("\n")
	}

	if len(names) == 0 {
		b.WriteString("(no variables)\n")
	}
	return b.String()
}

func title(opts Options) string {
	text := fmt.Sprintf(" %s · %s ", opts.Title, opts.Mode)
	if opts.Plain {
		return text
	}
	return lipgloss.NewStyle().
		Bold(true).
		Background(opts.Palette.Primary.In(opts.Mode)).
		Foreground(opts.Palette.Primary.OnIn(opts.Mode)).
		Render(text)
}

func swatch(value string, plain bool) string {
	hex, err := hsl.Hex(value)
	if err != nil {
		return strings.Repeat(" ", swatchWidth)
	}
	if plain {
		return fmt.Sprintf("%-*s", swatchWidth, "■")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Width(swatchWidth).
		Render("")
}
