package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("neon.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "neon.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "neon.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("tokens.primary[500]", "must be an HSL triplet", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tokens.primary[500]", validationErr.Field)
	require.Contains(t, err.Error(), "must be an HSL triplet")
}

func TestProjectionErrorIncludesGroupAndMode(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("write refused")
	err := NewProjectionError("chart", "night", underlying)

	var projErr *ProjectionError
	require.ErrorAs(t, err, &projErr)
	require.Equal(t, "chart", projErr.Group)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "[chart/night]")
}

func TestRequiredTokensErrorListsMissingAndEmpty(t *testing.T) {
	t.Parallel()

	err := NewRequiredTokensError("day", []string{"--tm-primary"}, []string{"--tm-ring"})

	require.Contains(t, err.Error(), "missing: --tm-primary")
	require.Contains(t, err.Error(), "empty: --tm-ring")
}

func TestRequiredTokensErrorOmitsEmptySections(t *testing.T) {
	t.Parallel()

	err := NewRequiredTokensError("night", []string{"--tm-bg"}, nil)

	require.Contains(t, err.Error(), "missing: --tm-bg")
	require.NotContains(t, err.Error(), "empty:")
}

func TestBrandLoadErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("network down")
	err := NewBrandLoadError("neon", underlying)

	var brandErr *BrandLoadError
	require.ErrorAs(t, err, &brandErr)
	require.Equal(t, "neon", brandErr.BrandID)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestStorageErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewStorageError("set", "tm_mode", underlying)

	require.Contains(t, err.Error(), `"tm_mode"`)
	require.True(t, stdErrors.Is(err, underlying))
}
