package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
	"github.com/alexisbeaulieu97/tmtheme/internal/studio"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootFlags struct {
	configPath  string
	verbose     bool
	environment string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tmtheme",
		Short:         "tmtheme resolves design tokens and projects them as CSS custom properties",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(versionInfo())

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to tmtheme.yaml (default: ./tmtheme.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.environment, "env", "", "Override the environment (development|production)")

	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newBrandsCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newStudioCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display build information and supported modes, themes and backends",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionInfo())
		},
	})

	return cmd
}

// versionInfo backs both `tmtheme version` and `tmtheme --version`.
func versionInfo() string {
	modes := make([]string, 0, len(tokens.Modes))
	for _, mode := range tokens.Modes {
		modes = append(modes, string(mode))
	}
	themes := make([]string, 0, len(studio.Themes))
	for _, name := range studio.Themes {
		themes = append(themes, string(name))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "tmtheme %s (commit %s, built %s)\n", version, commit, date)
	fmt.Fprintf(&b, "modes:   %s\n", strings.Join(modes, ", "))
	fmt.Fprintf(&b, "themes:  %s\n", strings.Join(themes, ", "))
	fmt.Fprintf(&b, "brands:  %s\n", strings.Join(brand.Extensions, ", "))
	fmt.Fprintf(&b, "storage: %s\n", strings.Join([]string{storage.DriverMemory, storage.DriverFile, storage.DriverSQLite}, ", "))
	return b.String()
}
