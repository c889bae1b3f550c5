package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

func TestRenderPlain(t *testing.T) {
	values := map[string]string{
		"--tm-bg":     "0 0% 100%",
		"--tm-fg":     "222 47% 11%",
		"--radius-md": "0.375rem",
		"--spacing-4": "1rem",
	}

	out := Render(values, Options{Title: "colours", Mode: tokens.ModeDay, Prefix: "--tm-", Plain: true})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, " colours · day ", lines[0])
	assert.Equal(t, "■    --tm-bg  0 0% 100%", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "■    --tm-fg"))
	assert.NotContains(t, out, "--radius-md")
}

func TestRenderNonColourValuesHaveBlankSwatch(t *testing.T) {
	out := Render(map[string]string{"--radius-md": "0.375rem"}, Options{Plain: true})

	assert.Equal(t, "     --radius-md  0.375rem\n", out)
}

func TestRenderEmpty(t *testing.T) {
	out := Render(map[string]string{"--a": "1"}, Options{Prefix: "--tm-", Plain: true})
	assert.Equal(t, "(no variables)\n", out)
}

func TestRenderStyledKeepsNamesAndValues(t *testing.T) {
	m := tokens.GetMergedTokens(nil, tokens.Layers{})
	out := Render(map[string]string{"--tm-bg": "0 0% 100%"}, Options{
		Title:   "colours",
		Mode:    tokens.ModeNight,
		Palette: NewPalette(m),
	})

	assert.Contains(t, out, "--tm-bg")
	assert.Contains(t, out, "0 0% 100%")
	assert.Contains(t, out, "colours")
}

func TestNewPaletteUsesModeColours(t *testing.T) {
	m := tokens.GetMergedTokens(nil, tokens.Layers{})
	palette := NewPalette(m)

	assert.Equal(t, lipglossHex(t, m.Base.Day.Background), string(palette.Surface.In(tokens.ModeDay)))
	assert.Equal(t, lipglossHex(t, m.Base.Night.Background), string(palette.Surface.In(tokens.ModeNight)))
	assert.NotEmpty(t, palette.Danger.OnIn(tokens.ModeNight))
}

func lipglossHex(t *testing.T, value string) string {
	t.Helper()
	hex := hexOrEmpty(value)
	require.NotEmpty(t, hex)
	return hex
}
