package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMergedTokensWithoutLayersMatchesRegistry(t *testing.T) {
	reg := DefaultRegistry()

	merged := GetMergedTokens(reg, Layers{})

	assert.Equal(t, reg.Base.Day, merged.Base.Day)
	assert.Equal(t, reg.Base.Night, merged.Base.Night)
	assert.Equal(t, reg.Primary, merged.Primary)
	assert.Equal(t, reg.Chart, merged.Chart)
	assert.Equal(t, reg.Motion, merged.Motion)
}

func TestGetMergedTokensNilRegistryUsesDefaults(t *testing.T) {
	merged := GetMergedTokens(nil, Layers{})

	assert.Equal(t, DefaultRegistry().Secondary, merged.Secondary)
}

func TestGetMergedTokensTotality(t *testing.T) {
	reg := DefaultRegistry()
	layers := Layers{
		Theme: &Patch{},
		Brand: &Patch{Base: ModeTokens[BaseColors]{Day: BaseColors{Primary: "1 1% 1%"}}},
	}

	merged := GetMergedTokens(reg, layers)

	for _, mode := range Modes {
		for name, value := range Fields(merged.Base.Get(mode)) {
			assert.NotEmpty(t, value, "base.%s.%s", mode, name)
		}
		for name, value := range Fields(merged.Surface.Get(mode)) {
			assert.NotEmpty(t, value, "surface.%s.%s", mode, name)
		}
		for name, value := range Fields(merged.Semantic.Get(mode)) {
			assert.NotEmpty(t, value, "semantic.%s.%s", mode, name)
		}
	}
	for _, stop := range Stops {
		assert.NotEmpty(t, merged.Accent.At(stop))
	}
}

func TestGetMergedTokensBrandBeatsTheme(t *testing.T) {
	theme := &Patch{
		Primary: ScalePatch{"500": "10 10% 10%", "600": "11 11% 11%"},
		Base: ModeTokens[BaseColors]{
			Day: BaseColors{Primary: "20 20% 20%", Accent: "21 21% 21%"},
		},
	}
	brand := &Patch{
		Primary: ScalePatch{"500": "30 30% 30%"},
		Base: ModeTokens[BaseColors]{
			Day: BaseColors{Primary: "40 40% 40%"},
		},
	}

	merged := GetMergedTokens(DefaultRegistry(), Layers{Theme: theme, Brand: brand})

	assert.Equal(t, "30 30% 30%", merged.Primary.At(500), "brand stop wins")
	assert.Equal(t, "11 11% 11%", merged.Primary.At(600), "theme stop survives where brand is silent")
	assert.Equal(t, "40 40% 40%", merged.Base.Day.Primary)
	assert.Equal(t, "21 21% 21%", merged.Base.Day.Accent)
	assert.Equal(t, DefaultRegistry().Base.Night.Primary, merged.Base.Night.Primary, "modes merge independently")
}

func TestGetMergedTokensScalePatchIsSparse(t *testing.T) {
	reg := DefaultRegistry()
	patch := &Patch{Accent: ScalePatch{"950": "5 5% 5%", "999": "bogus", "abc": "bogus", "100": ""}}

	merged := GetMergedTokens(reg, Layers{Theme: patch})

	for _, stop := range Stops {
		if stop == 950 {
			assert.Equal(t, "5 5% 5%", merged.Accent.At(stop))
			continue
		}
		assert.Equal(t, reg.Accent.At(stop), merged.Accent.At(stop), "stop %d", stop)
	}
}

func TestGetMergedTokensDoesNotMutateRegistry(t *testing.T) {
	reg := DefaultRegistry()
	before := reg.Primary

	_ = GetMergedTokens(reg, Layers{Brand: &Patch{Primary: ScalePatch{"50": "0 0% 0%"}}})

	require.Equal(t, before, reg.Primary)
}

func TestColorScaleAtUnknownStop(t *testing.T) {
	assert.Equal(t, "", DefaultRegistry().Primary.At(Stop(450)))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
		err   bool
	}{
		{"day", ModeDay, false},
		{"light", ModeDay, false},
		{"night", ModeNight, false},
		{"dark", ModeNight, false},
		{"dusk", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.err {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseThemeName(t *testing.T) {
	name, err := ParseThemeName("")
	require.NoError(t, err)
	assert.Equal(t, ThemeDefault, name)

	name, err = ParseThemeName("brand")
	require.NoError(t, err)
	assert.Equal(t, ThemeBrand, name)

	_, err = ParseThemeName("sepia")
	assert.Error(t, err)
}

func TestPatchIsEmpty(t *testing.T) {
	var nilPatch *Patch
	assert.True(t, nilPatch.IsEmpty())
	assert.True(t, (&Patch{}).IsEmpty())
	assert.False(t, (&Patch{Text: ModeTokens[TextColors]{Night: TextColors{Link: "1 1% 1%"}}}).IsEmpty())
	assert.False(t, (&Patch{Secondary: ScalePatch{"50": "1 1% 1%"}}).IsEmpty())
}

func TestFieldsUsesYAMLNames(t *testing.T) {
	fields := Fields(DisabledColors{Background: "a", Foreground: "b", Border: "c"})

	assert.Equal(t, map[string]string{"background": "a", "foreground": "b", "border": "c"}, fields)
}

func TestFieldsTrimsTagOptionsAndFallsBackToFieldName(t *testing.T) {
	type group struct {
		Ring    string `yaml:"ring,omitempty"`
		Outline string
		Width   int `yaml:"width"`
	}

	fields := Fields(group{Ring: "a", Outline: "b", Width: 2})

	assert.Equal(t, map[string]string{"ring": "a", "Outline": "b"}, fields)
}
