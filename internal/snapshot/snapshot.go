// Package snapshot serializes the fully projected variable map for each mode
// to sorted JSON files and detects drift against files already on disk.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/dom"
	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/projector"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
	"github.com/alexisbeaulieu97/tmtheme/pkg/diff"
)

// Options selects what to snapshot.
type Options struct {
	Theme       tokens.ThemeName
	BrandID     string
	Brands      brand.Loader
	Environment projector.Environment
	Logger      *logger.Logger
}

// Snapshot is the serialized variable map of one mode.
type Snapshot struct {
	Mode tokens.Mode
	Data []byte
}

// FileName returns the file a mode's snapshot is stored in.
func FileName(mode tokens.Mode) string {
	return fmt.Sprintf("tokens.%s.json", mode)
}

// Generate projects every mode onto a fresh document and serializes the
// resulting custom properties. Projection errors of any group fail the
// snapshot, as does a brand that cannot be loaded.
func Generate(ctx context.Context, opts Options) ([]Snapshot, error) {
	snapshots := make([]Snapshot, 0, len(tokens.Modes))

	for _, mode := range tokens.Modes {
		doc := dom.NewDocument()
		orch, err := orchestrator.New(orchestrator.Options{
			Target:    doc,
			Projector: projector.New(projector.Options{Environment: opts.Environment, Logger: opts.Logger}),
			Brands:    opts.Brands,
			Logger:    opts.Logger,
		})
		if err != nil {
			return nil, err
		}

		result, err := orch.Apply(ctx, orchestrator.Request{Mode: mode, Theme: opts.Theme, BrandID: opts.BrandID})
		if err != nil {
			return nil, fmt.Errorf("project %s: %w", mode, err)
		}
		if result.BrandErr != nil {
			return nil, result.BrandErr
		}
		if err := errors.Join(result.Colors.Err(), result.States.Err()); err != nil {
			return nil, err
		}

		data, err := Marshal(doc.Properties())
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, Snapshot{Mode: mode, Data: data})
	}

	return snapshots, nil
}

// Marshal renders values as indented JSON with sorted keys and a trailing newline.
func Marshal(values map[string]string) ([]byte, error) {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// Write stores snapshots in dir and returns the written paths.
func Write(dir string, snapshots []Snapshot) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	paths := make([]string, 0, len(snapshots))
	for _, snap := range snapshots {
		path := filepath.Join(dir, FileName(snap.Mode))
		if err := os.WriteFile(path, snap.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Drift describes a snapshot file that no longer matches generated output.
type Drift struct {
	Path  string
	Diff  string
	Stats diff.Stats
}

// Check compares snapshots with the files in dir. A missing file counts as
// drift against empty content.
func Check(dir string, snapshots []Snapshot) ([]Drift, error) {
	var drifts []Drift

	for _, snap := range snapshots {
		path := filepath.Join(dir, FileName(snap.Mode))
		existing, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		out, stats := diff.Unified(existing, snap.Data, path, "generated")
		if stats.Changed() {
			drifts = append(drifts, Drift{Path: path, Diff: out, Stats: stats})
		}
	}

	return drifts, nil
}
