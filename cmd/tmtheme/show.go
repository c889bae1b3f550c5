package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/preview"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

type showOptions struct {
	mode   string
	theme  string
	brand  string
	prefix string
	plain  bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print projected variables with colour swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "day", "Mode to show (day|night)")
	cmd.Flags().StringVar(&opts.theme, "theme", "default", "Theme override (default|dark|brand)")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "Brand id")
	cmd.Flags().StringVar(&opts.prefix, "group", "", "Only show variables with this prefix, e.g. --tm- or --button-")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable colours (default when stdout is not a terminal)")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, opts *showOptions) error {
	a, err := loadApp(cmd, root, "show tokens")
	if err != nil {
		return err
	}

	mode, err := tokens.ParseMode(opts.mode)
	if err != nil {
		return newCommandError("show tokens", "parsing --mode", err, "Use day or night.")
	}
	theme, err := tokens.ParseThemeName(opts.theme)
	if err != nil {
		return newCommandError("show tokens", "parsing --theme", err, "Use default, dark or brand.")
	}

	// show never touches persisted preferences.
	sess, err := a.newSession(storage.NewMemory(), nil)
	if err != nil {
		return err
	}

	result, err := sess.orch.Apply(cmd.Context(), orchestrator.Request{Mode: mode, Theme: theme, BrandID: opts.brand})
	if err != nil {
		return newCommandError("show tokens", "projecting tokens", err, "Run with --env production to inspect incomplete themes.")
	}
	reportResult(cmd.ErrOrStderr(), result)

	palette := preview.NewPalette(tokens.GetMergedTokens(nil, sess.orch.Overrides().Layers()))
	title := string(theme)
	if result.Request.BrandID != "" {
		title = fmt.Sprintf("%s + %s", theme, result.Request.BrandID)
	}

	fmt.Fprint(cmd.OutOrStdout(), preview.Render(sess.doc.Properties(), preview.Options{
		Title:   title,
		Mode:    mode,
		Palette: palette,
		Prefix:  opts.prefix,
		Plain:   opts.plain || !isTerminal(cmd.OutOrStdout()),
	}))
	return nil
}
