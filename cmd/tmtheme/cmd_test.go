package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const neonBrand = `id: neon
namespace: neon
tokens:
  accent:
    "400": "320 90% 60%"
variables:
  glow: "0 0 12px pink"
`

func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	err := cmd.Execute()
	return buf.String(), err
}

// workspace writes a config pointing every path into a temp dir.
func workspace(t *testing.T, extra string) (dir, cfgPath string) {
	t.Helper()

	dir = t.TempDir()
	brands := filepath.Join(dir, "brands")
	require.NoError(t, os.MkdirAll(brands, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(brands, "neon.yaml"), []byte(neonBrand), 0o644))

	cfgPath = filepath.Join(dir, "tmtheme.yaml")
	cfg := fmt.Sprintf(`environment: development
log:
  level: error
brands:
  dir: %s
storage:
  driver: file
  path: %s
snapshot:
  dir: %s
%s`, brands, filepath.Join(dir, "state", "prefs.json"), filepath.Join(dir, "snapshots"), extra)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))
	return dir, cfgPath
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	out, err := executeCommand(newRootCmd(), "version")
	require.NoError(t, err)
	assert.Equal(t, "tmtheme 1.2.3 (commit abcdef1, built 2026-10-03)\n"+
		"modes:   day, night\n"+
		"themes:  default, dark, brand\n"+
		"brands:  .yaml, .yml, .toml\n"+
		"storage: memory, file, sqlite\n", out)

	flagOut, err := executeCommand(newRootCmd(), "--version")
	require.NoError(t, err)
	assert.Equal(t, out, flagOut)
}

func TestApplyWritesCSSAndPersists(t *testing.T) {
	dir, cfgPath := workspace(t, "")
	cssPath := filepath.Join(dir, "out", "theme.css")

	_, err := executeCommand(newRootCmd(), "apply", "--config", cfgPath, "--mode", "dark", "--brand", "neon", "--out", cssPath)
	require.NoError(t, err)

	css, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	assert.Contains(t, string(css), `data-mode="night"`)
	assert.Contains(t, string(css), `data-brand="neon"`)
	assert.Contains(t, string(css), "--neon-glow: 0 0 12px pink;")
	assert.Contains(t, string(css), "--tm-accent: 320 90% 60%;")

	// A second run without flags restores the persisted selection.
	out, err := executeCommand(newRootCmd(), "apply", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, `data-mode="night"`)
	assert.Contains(t, out, "--neon-glow")

	out, err = executeCommand(newRootCmd(), "apply", "--config", cfgPath, "--brand", "", "--toggle")
	require.NoError(t, err)
	assert.Contains(t, out, `data-mode="day"`)
	assert.NotContains(t, out, "--neon-glow")
}

func TestApplyReportsMissingBrand(t *testing.T) {
	_, cfgPath := workspace(t, "")

	out, err := executeCommand(newRootCmd(), "apply", "--config", cfgPath, "--brand", "ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "warning: brand not applied")
	assert.NotContains(t, out, "data-brand")
}

func TestApplyRejectsBadMode(t *testing.T) {
	_, cfgPath := workspace(t, "")

	_, err := executeCommand(newRootCmd(), "apply", "--config", cfgPath, "--mode", "sepia")
	require.Error(t, err)

	var cmdErr *commandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestApplyRejectsBadConfig(t *testing.T) {
	_, cfgPath := workspace(t, "")

	_, err := executeCommand(newRootCmd(), "apply", "--config", cfgPath, "--env", "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}

func TestSnapshotWriteAndCheck(t *testing.T) {
	dir, cfgPath := workspace(t, "")

	out, err := executeCommand(newRootCmd(), "snapshot", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "snapshots", "tokens.day.json"))
	assert.FileExists(t, filepath.Join(dir, "snapshots", "tokens.night.json"))

	out, err = executeCommand(newRootCmd(), "snapshot", "--config", cfgPath, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = executeCommand(newRootCmd(), "snapshot", "--config", cfgPath, "--check", "--theme", "dark")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSnapshotDrift))
	assert.Contains(t, out, "tokens.day.json")
}

func TestShowPlain(t *testing.T) {
	_, cfgPath := workspace(t, "")

	out, err := executeCommand(newRootCmd(), "show", "--config", cfgPath, "--mode", "night", "--brand", "neon", "--group=--tm-", "--plain")
	require.NoError(t, err)

	assert.Contains(t, out, "default + neon · night")
	assert.Contains(t, out, "--tm-accent")
	assert.NotContains(t, out, "--button-")
	for _, line := range strings.Split(strings.TrimSpace(out), "\n")[1:] {
		assert.True(t, strings.Contains(line, "--tm-"), line)
	}
}

func TestBrandsListAndValidate(t *testing.T) {
	_, cfgPath := workspace(t, "")

	out, err := executeCommand(newRootCmd(), "brands", "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "neon\n", out)

	out, err = executeCommand(newRootCmd(), "brands", "validate", "neon", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "neon ok")

	_, err = executeCommand(newRootCmd(), "brands", "validate", "ghost", "--config", cfgPath)
	require.Error(t, err)
}

func TestBrandsFetchRequiresGitURL(t *testing.T) {
	_, cfgPath := workspace(t, "")

	_, err := executeCommand(newRootCmd(), "brands", "fetch", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brands.git.url")
}

func TestWatchRequiresPreferenceFile(t *testing.T) {
	dir, cfgPath := workspace(t, "")

	_, err := executeCommand(newRootCmd(), "watch", "--config", cfgPath, "--out", filepath.Join(dir, "theme.css"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preference.file")
}

func TestStudioRequiresTerminal(t *testing.T) {
	_, cfgPath := workspace(t, "")

	_, err := executeCommand(newRootCmd(), "studio", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
}

func TestCommandErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := newCommandError("apply theme", "loading", cause, "Try again.")

	assert.Equal(t, "Failed to apply theme: loading\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	assert.ErrorIs(t, err, cause)
}
