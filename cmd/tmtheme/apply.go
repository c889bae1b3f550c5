package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

type applyOptions struct {
	mode   string
	theme  string
	brand  string
	out    string
	toggle bool
}

func newApplyCmd(root *rootFlags) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Resolve the selected mode, theme and brand and write the resulting CSS",
		Long: "Restores the persisted selection, applies any --mode/--theme/--brand changes " +
			"(persisting them), and writes the projected :root variables as CSS.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.mode, "mode", "", "Mode to apply (day|night, light|dark)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme override (default|dark|brand)")
	cmd.Flags().StringVar(&opts.brand, "brand", "", "Brand id; an empty value removes the brand")
	cmd.Flags().BoolVar(&opts.toggle, "toggle", false, "Toggle between day and night")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write CSS to this file instead of stdout")

	return cmd
}

func runApply(cmd *cobra.Command, root *rootFlags, opts *applyOptions) error {
	a, err := loadApp(cmd, root, "apply theme")
	if err != nil {
		return err
	}

	store, release, err := a.openStorage()
	if err != nil {
		return newCommandError("apply theme", "opening preference storage", err, "Check storage.driver and storage.path.")
	}
	defer release()

	sess, err := a.newSession(store, a.preferenceSource())
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	result, err := sess.provider.Init(ctx)
	if err != nil {
		return newCommandError("apply theme", "restoring persisted selection", err, "Fix the reported tokens or run with --env production.")
	}

	flags := cmd.Flags()
	steps := []struct {
		changed bool
		run     func() (orchestrator.Result, error)
	}{
		{flags.Changed("theme"), func() (orchestrator.Result, error) {
			name, err := tokens.ParseThemeName(opts.theme)
			if err != nil {
				return orchestrator.Result{}, err
			}
			return sess.provider.SetTheme(ctx, name)
		}},
		{flags.Changed("brand"), func() (orchestrator.Result, error) {
			return sess.provider.SetBrand(ctx, opts.brand)
		}},
		{flags.Changed("mode"), func() (orchestrator.Result, error) {
			mode, err := tokens.ParseMode(opts.mode)
			if err != nil {
				return orchestrator.Result{}, err
			}
			return sess.provider.SetMode(ctx, mode)
		}},
		{opts.toggle, func() (orchestrator.Result, error) {
			return sess.provider.ToggleMode(ctx)
		}},
	}

	for _, step := range steps {
		if !step.changed {
			continue
		}
		if result, err = step.run(); err != nil {
			return newCommandError("apply theme", "applying selection", err, "Run 'tmtheme apply --help' for accepted values.")
		}
	}

	reportResult(cmd.ErrOrStderr(), result)

	return writeCSS(cmd.OutOrStdout(), opts.out, sess.doc.CSS())
}

// reportResult prints absorbed failures so a partial projection is visible.
func reportResult(w io.Writer, result orchestrator.Result) {
	if result.BrandErr != nil {
		fmt.Fprintf(w, "warning: brand not applied: %v\n", result.BrandErr)
	}
	for _, group := range append(result.Colors.Failed(), result.States.Failed()...) {
		fmt.Fprintf(w, "warning: %v\n", group.Err)
	}
}

func writeCSS(stdout io.Writer, path, css string) error {
	if path == "" {
		_, err := io.WriteString(stdout, css)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newCommandError("write CSS", path, err, "Check that the output directory is writable.")
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return newCommandError("write CSS", path, err, "Check that the output directory is writable.")
	}
	return nil
}
