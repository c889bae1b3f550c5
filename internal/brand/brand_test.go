package brand

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

const neonYAML = `id: neon
name: Neon
namespace: neon
tokens:
  primary:
    "500": "320 90% 55%"
    "600": "320 90% 48%"
  base:
    day:
      background: "0 0% 100%"
    night:
      background: "270 40% 6%"
variables:
  glow: "0 0 12px hsl(320 90% 55%)"
  logo-width: "120px"
`

const neonTOML = `id = "neon"
name = "Neon"
namespace = "neon"

[tokens.primary]
"500" = "320 90% 55%"
"600" = "320 90% 48%"

[tokens.base.day]
background = "0 0% 100%"

[tokens.base.night]
background = "270 40% 6%"

[variables]
glow = "0 0 12px hsl(320 90% 55%)"
logo-width = "120px"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseYAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := Parse("neon.yaml", []byte(neonYAML))
	require.NoError(t, err)
	fromTOML, err := Parse("neon.toml", []byte(neonTOML))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, "320 90% 55%", fromYAML.Tokens.Primary["500"])
	assert.Equal(t, "270 40% 6%", fromYAML.Tokens.Base.Night.Background)
}

func TestParseReportsYAMLLine(t *testing.T) {
	_, err := Parse("broken.yaml", []byte("id: neon\nnamespace: [neon\n"))

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.yaml", parseErr.Path)
	assert.Positive(t, parseErr.Line)
}

func TestParseReportsTOMLLine(t *testing.T) {
	_, err := Parse("broken.toml", []byte("id = \"neon\"\nnamespace = \n"))

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	_, err := Parse("neon.json", []byte("{}"))

	var parseErr *themeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "missing namespace",
			input: "id: neon\n",
			want:  "package.namespace",
		},
		{
			name:  "bad id",
			input: "id: Neon Brand\nnamespace: neon\n",
			want:  "package.id",
		},
		{
			name:  "bad stop",
			input: "id: neon\nnamespace: neon\ntokens:\n  primary:\n    \"550\": \"0 0% 0%\"\n",
			want:  "stop",
		},
		{
			name:  "bad hsl",
			input: "id: neon\nnamespace: neon\ntokens:\n  base:\n    day:\n      ring: \"#ff00ff\"\n",
			want:  "not an HSL triplet",
		},
		{
			name:  "nan hsl",
			input: "id: neon\nnamespace: neon\ntokens:\n  base:\n    day:\n      ring: \"NaN 50% 50%\"\n",
			want:  "not an HSL triplet",
		},
		{
			name:  "engine namespace",
			input: "id: neon\nnamespace: tm\nvariables:\n  bg: red\n",
			want:  "reserved for engine variables",
		},
		{
			name:  "state matrix namespace",
			input: "id: neon\nnamespace: button-primary\n",
			want:  "reserved for engine variables",
		},
		{
			name:  "empty variable",
			input: "id: neon\nnamespace: neon\nvariables:\n  glow: \"\"\n",
			want:  "package.variables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("brand.yaml", []byte(tt.input))

			var valErr *themeerrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReservedNamespace(t *testing.T) {
	for _, ns := range []string{"tm", "primary", "accent", "chart", "button", "checkbox", "radio", "success", "spacing"} {
		assert.True(t, ReservedNamespace(ns), ns)
	}
	for _, ns := range []string{"neon", "ocean", "acme-corp"} {
		assert.False(t, ReservedNamespace(ns), ns)
	}
}

func TestValidateNil(t *testing.T) {
	require.Error(t, Validate(nil))
}

func TestPackageVariables(t *testing.T) {
	pkg, err := Parse("neon.yaml", []byte(neonYAML))
	require.NoError(t, err)

	assert.Equal(t, "--neon-glow", pkg.VariableName("glow"))
	assert.Equal(t, []string{"--neon-glow", "--neon-logo-width"}, pkg.VariableNames())
	assert.Equal(t, "120px", pkg.NamespacedVariables()["--neon-logo-width"])
}

func TestDirLoaderLoadAndList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "neon.yaml", neonYAML)
	writeFile(t, dir, "ocean.toml", "id = \"ocean\"\nnamespace = \"ocean\"\n")
	writeFile(t, dir, "README.md", "not a brand")

	loader := NewDirLoader(dir)

	ids, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"neon", "ocean"}, ids)

	pkg, err := loader.Load(context.Background(), "ocean")
	require.NoError(t, err)
	assert.Equal(t, "ocean", pkg.Namespace)
}

func TestDirLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "liar.yaml", "id: other\nnamespace: other\n")
	loader := NewDirLoader(dir)

	_, err := loader.Load(context.Background(), "missing")
	var loadErr *themeerrors.BrandLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = loader.Load(context.Background(), "liar")
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "declares id")

	_, err = loader.Load(context.Background(), "../etc/passwd")
	require.Error(t, err)
}

func TestDirLoaderHonoursCancellation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "neon.yaml", neonYAML)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirLoader(dir).Load(ctx, "neon")
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoaderFunc(t *testing.T) {
	want := &Package{ID: "x", Namespace: "x"}
	var loader Loader = LoaderFunc(func(_ context.Context, id string) (*Package, error) {
		assert.Equal(t, "x", id)
		return want, nil
	})

	got, err := loader.Load(context.Background(), "x")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func initBrandRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "brands"), 0o755))
	writeFile(t, filepath.Join(dir, "brands"), "neon.yaml", neonYAML)
	commitAll(t, repo, "add neon")

	return dir, repo
}

func commitAll(t *testing.T, repo *git.Repository, msg string) {
	t.Helper()

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.AddGlob("."))
	_, err = wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tmtheme",
			Email: "tmtheme@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)
}

func TestGitLoaderClonesAndPulls(t *testing.T) {
	origin, repo := initBrandRepo(t)
	cache := filepath.Join(t.TempDir(), "brands-cache")

	loader, err := NewGitLoader(GitOptions{URL: origin, CacheDir: cache, Subdir: "brands"})
	require.NoError(t, err)

	pkg, err := loader.Load(context.Background(), "neon")
	require.NoError(t, err)
	assert.Equal(t, "neon", pkg.ID)
	assert.DirExists(t, filepath.Join(cache, ".git"))

	writeFile(t, filepath.Join(origin, "brands"), "ocean.yaml", "id: ocean\nnamespace: ocean\n")
	commitAll(t, repo, "add ocean")

	ids, err := loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"neon"}, ids, "mirror is not re-synced implicitly")

	require.NoError(t, loader.Sync(context.Background()))
	ids, err = loader.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"neon", "ocean"}, ids)
}

func TestGitLoaderRequiresOptions(t *testing.T) {
	_, err := NewGitLoader(GitOptions{CacheDir: t.TempDir()})
	require.Error(t, err)

	_, err = NewGitLoader(GitOptions{URL: "https://example.com/brands.git"})
	require.Error(t, err)
}
