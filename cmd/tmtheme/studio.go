package main

import (
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/provider"
	"github.com/alexisbeaulieu97/tmtheme/internal/studio"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

type studioOptions struct {
	out   string
	plain bool
}

func newStudioCmd(root *rootFlags) *cobra.Command {
	opts := &studioOptions{}

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Switch mode, theme and brand interactively and preview the result",
		Long: `Launch an interactive previewer. Selections are persisted like 'tmtheme apply',
and the system preference is followed until a mode is picked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStudio(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the final CSS to this file on exit")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable colours")

	return cmd
}

func runStudio(cmd *cobra.Command, root *rootFlags, opts *studioOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("run studio", "checking terminal", errors.New("stdout is not a terminal"), "Use 'tmtheme show' or 'tmtheme apply' in scripts.")
	}

	a, err := loadApp(cmd, root, "run studio")
	if err != nil {
		return err
	}

	store, release, err := a.openStorage()
	if err != nil {
		return newCommandError("run studio", "opening preference storage", err, "Check storage.driver and storage.path.")
	}
	defer release()

	sess, err := a.newSession(store, a.preferenceSource())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	var brands []string
	if lister, ok := a.brands.(brand.Lister); ok {
		if brands, err = lister.List(ctx); err != nil {
			a.log.Warn(err, "list brands for studio")
		}
	}

	model, err := studio.NewModel(studio.Options{
		Context:   ctx,
		Selector:  sess.provider,
		Variables: sess.doc.Properties,
		Merged: func() tokens.Merged {
			return tokens.GetMergedTokens(nil, sess.orch.Overrides().Layers())
		},
		Brands: brands,
		Plain:  opts.plain,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	unsubscribe := sess.provider.Subscribe(func(provider.State) {
		program.Send(studio.PreferenceMsg{})
	})
	defer unsubscribe()

	go func() {
		if err := sess.provider.FollowPreference(ctx); err != nil && !errors.Is(err, ctx.Err()) {
			a.log.Warn(err, "follow system preference")
		}
	}()

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return newCommandError("run studio", "running interface", err, "Run the studio in an interactive terminal.")
	}

	if opts.out != "" {
		return writeCSS(cmd.OutOrStdout(), opts.out, sess.doc.CSS())
	}
	return nil
}
