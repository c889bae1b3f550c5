package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/provider"
)

type watchOptions struct {
	out string
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the system preference file and rewrite CSS when it changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "CSS file to keep up to date")
	cmd.MarkFlagRequired("out") //nolint:errcheck

	return cmd
}

func runWatch(cmd *cobra.Command, root *rootFlags, opts *watchOptions) error {
	a, err := loadApp(cmd, root, "watch preference")
	if err != nil {
		return err
	}

	pref := a.preferenceSource()
	if pref == nil {
		return newCommandError("watch preference", "configuring watcher", errors.New("preference.file is not set"), "Set preference.file or TMTHEME_PREFERENCE_FILE.")
	}

	store, release, err := a.openStorage()
	if err != nil {
		return newCommandError("watch preference", "opening preference storage", err, "Check storage.driver and storage.path.")
	}
	defer release()

	sess, err := a.newSession(store, pref)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := sess.provider.Init(ctx); err != nil {
		return newCommandError("watch preference", "applying initial selection", err, "Fix the reported tokens or run with --env production.")
	}
	if err := writeCSS(cmd.OutOrStdout(), opts.out, sess.doc.CSS()); err != nil {
		return err
	}

	sess.provider.Subscribe(func(state provider.State) {
		a.log.With("mode", string(state.Mode)).Info("preference changed, rewriting CSS")
		if err := writeCSS(cmd.OutOrStdout(), opts.out, sess.doc.CSS()); err != nil {
			a.log.Error(err, "write CSS")
		}
	})

	if sess.provider.State().ModeExplicit {
		a.log.Info("mode was chosen explicitly; system preference changes are ignored")
	}

	return sess.provider.FollowPreference(ctx)
}
