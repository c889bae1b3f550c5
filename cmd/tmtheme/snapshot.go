package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/snapshot"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

type snapshotOptions struct {
	dir   string
	check bool
	theme string
	brand string
}

var errSnapshotDrift = errors.New("snapshots are out of date")

func newSnapshotCmd(root *rootFlags) *cobra.Command {
	opts := &snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write day and night token snapshots, or check them for drift",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", "", "Snapshot directory (default: snapshot.dir)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail with a diff when snapshots on disk differ")
	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme override to snapshot")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "Brand to snapshot")

	return cmd
}

func runSnapshot(cmd *cobra.Command, root *rootFlags, opts *snapshotOptions) error {
	a, err := loadApp(cmd, root, "snapshot tokens")
	if err != nil {
		return err
	}

	dir := opts.dir
	if dir == "" {
		dir = a.cfg.Snapshot.Dir
	}

	theme, err := tokens.ParseThemeName(opts.theme)
	if err != nil {
		return newCommandError("snapshot tokens", "parsing --theme", err, "Use default, dark or brand.")
	}

	snaps, err := snapshot.Generate(cmd.Context(), snapshot.Options{
		Theme:       theme,
		BrandID:     opts.brand,
		Brands:      a.brands,
		Environment: a.environment(),
		Logger:      a.log,
	})
	if err != nil {
		return newCommandError("snapshot tokens", "projecting tokens", err, "Fix the reported token groups before snapshotting.")
	}

	out := cmd.OutOrStdout()

	if opts.check {
		drifts, err := snapshot.Check(dir, snaps)
		if err != nil {
			return newCommandError("snapshot tokens", "reading snapshots", err, "Run 'tmtheme snapshot' to create them.")
		}
		for _, drift := range drifts {
			fmt.Fprintf(out, "%s (%s)\n%s\n", drift.Path, drift.Stats, drift.Diff)
		}
		if len(drifts) > 0 {
			return newCommandError("snapshot tokens", dir, errSnapshotDrift, "Run 'tmtheme snapshot' and commit the result.")
		}
		fmt.Fprintf(out, "snapshots in %s are up to date\n", dir)
		return nil
	}

	paths, err := snapshot.Write(dir, snaps)
	if err != nil {
		return newCommandError("snapshot tokens", "writing snapshots", err, "Check that the snapshot directory is writable.")
	}
	for _, path := range paths {
		fmt.Fprintf(out, "wrote %s\n", path)
	}
	return nil
}
