package hsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("221 83% 53%")
	require.NoError(t, err)
	assert.Equal(t, Color{H: 221, S: 83, L: 53}, c)

	c, err = Parse("222.2 84% 4.9%")
	require.NoError(t, err)
	assert.InDelta(t, 4.9, c.L, 0.0001)
}

func TestParseRejectsMalformed(t *testing.T) {
	inputs := []string{
		"", "221 83 53", "red", "221 83% 53% 1", "400 10% 10%", "10 120% 10%", "10 10% -1%",
		"NaN 50% 50%", "0 NaN% 50%", "0 50% NaN%", "Inf 50% 50%", "0 +Inf% 50%", "0 50% -Inf%",
	}
	for _, input := range inputs {
		_, err := Parse(input)
		assert.Error(t, err, input)
		assert.False(t, Valid(input), input)
	}
}

func TestStringRoundTrips(t *testing.T) {
	for _, input := range []string{"221 83% 53%", "222.2 84% 4.9%", "0 0% 100%"} {
		c, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, c.String())
	}
}

func TestShiftClamps(t *testing.T) {
	out, err := Shift("0 84% 60%", -8)
	require.NoError(t, err)
	assert.Equal(t, "0 84% 52%", out)

	out, err = Shift("0 0% 98%", 10)
	require.NoError(t, err)
	assert.Equal(t, "0 0% 100%", out)

	_, err = Shift("nope", 1)
	assert.Error(t, err)
}

func TestDesaturate(t *testing.T) {
	c := Color{H: 10, S: 20, L: 50}.Desaturate(30)
	assert.Equal(t, 0.0, c.S)
}

func TestHex(t *testing.T) {
	hex, err := Hex("0 0% 100%")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", hex)

	hex, err = Hex("0 100% 50%")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", hex)
}
