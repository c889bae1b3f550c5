package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/projector"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

func TestGenerateIsDeterministic(t *testing.T) {
	first, err := Generate(context.Background(), Options{Environment: projector.Development})
	require.NoError(t, err)
	second, err := Generate(context.Background(), Options{Environment: projector.Development})
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, tokens.ModeDay, first[0].Mode)
	assert.Equal(t, tokens.ModeNight, first[1].Mode)
	assert.Equal(t, first, second)
}

func TestGenerateProducesSortedCompleteMaps(t *testing.T) {
	snaps, err := Generate(context.Background(), Options{})
	require.NoError(t, err)

	for _, snap := range snaps {
		var values map[string]string
		require.NoError(t, json.Unmarshal(snap.Data, &values))
		assert.Contains(t, values, "--tm-bg")
		assert.Contains(t, values, "--button-destructive-hover-bg")
		assert.Contains(t, values, "--primary-950")

		var keys []string
		for _, line := range strings.Split(string(snap.Data), "\n") {
			if strings.HasPrefix(line, "  \"") {
				keys = append(keys, strings.SplitN(line, "\"", 3)[1])
			}
		}
		assert.True(t, sort.StringsAreSorted(keys))
		assert.True(t, strings.HasSuffix(string(snap.Data), "}\n"))
	}

	assert.NotEqual(t, snaps[0].Data, snaps[1].Data)
}

func TestGenerateWithBrand(t *testing.T) {
	loader := brand.LoaderFunc(func(context.Context, string) (*brand.Package, error) {
		return &brand.Package{ID: "neon", Namespace: "neon", Variables: map[string]string{"glow": "2px"}}, nil
	})

	snaps, err := Generate(context.Background(), Options{BrandID: "neon", Brands: loader})
	require.NoError(t, err)
	assert.Contains(t, string(snaps[0].Data), "\"--neon-glow\": \"2px\"")
}

func TestGenerateFailsOnBrandError(t *testing.T) {
	loader := brand.LoaderFunc(func(context.Context, string) (*brand.Package, error) {
		return nil, errors.New("gone")
	})

	_, err := Generate(context.Background(), Options{BrandID: "neon", Brands: loader})
	require.Error(t, err)
}

func TestWriteThenCheck(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "snapshots")
	snaps, err := Generate(context.Background(), Options{})
	require.NoError(t, err)

	drifts, err := Check(dir, snaps)
	require.NoError(t, err)
	assert.Len(t, drifts, 2, "missing files are drift")

	paths, err := Write(dir, snaps)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "tokens.day.json"),
		filepath.Join(dir, "tokens.night.json"),
	}, paths)

	drifts, err = Check(dir, snaps)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	night := filepath.Join(dir, "tokens.night.json")
	edited := strings.Replace(string(snaps[1].Data), "\"--tm-bg\"", "\"--tm-bg-old\"", 1)
	require.NoError(t, os.WriteFile(night, []byte(edited), 0o644))

	drifts, err = Check(dir, snaps)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, night, drifts[0].Path)
	assert.Contains(t, drifts[0].Diff, "-  \"--tm-bg-old\"")
	assert.Contains(t, drifts[0].Diff, "+  \"--tm-bg\"")
}

func TestMarshalSortsKeys(t *testing.T) {
	data, err := Marshal(map[string]string{"--b": "2", "--a": "1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"--a\": \"1\",\n  \"--b\": \"2\"\n}\n", string(data))
}
