package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
)

func newBrandsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brands",
		Short: "Inspect and fetch brand packages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available brand packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsList(cmd, root)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "fetch",
		Short: "Clone or update the git brand repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsFetch(cmd, root)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <id>",
		Short: "Load and validate one brand package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandsValidate(cmd, root, args[0])
		},
	})

	return cmd
}

func runBrandsList(cmd *cobra.Command, root *rootFlags) error {
	a, err := loadApp(cmd, root, "list brands")
	if err != nil {
		return err
	}

	lister, ok := a.brands.(brand.Lister)
	if !ok {
		return newCommandError("list brands", "enumerating brands", errors.New("brand loader cannot list packages"), "Configure brands.dir or brands.git.url.")
	}

	ids, err := lister.List(cmd.Context())
	if err != nil {
		return newCommandError("list brands", "enumerating brands", err, "Check brands.dir, or run 'tmtheme brands fetch'.")
	}

	out := cmd.OutOrStdout()
	if len(ids) == 0 {
		fmt.Fprintln(out, "No brand packages found.")
		return nil
	}
	for _, id := range ids {
		fmt.Fprintln(out, id)
	}
	return nil
}

func runBrandsFetch(cmd *cobra.Command, root *rootFlags) error {
	a, err := loadApp(cmd, root, "fetch brands")
	if err != nil {
		return err
	}

	gitLoader, ok := a.brands.(*brand.GitLoader)
	if !ok {
		return newCommandError("fetch brands", "syncing repository", errors.New("brands.git.url is not set"), "Set brands.git.url in tmtheme.yaml or TMTHEME_BRANDS_GIT_URL.")
	}

	if err := gitLoader.Sync(cmd.Context()); err != nil {
		return newCommandError("fetch brands", a.cfg.Brands.Git.URL, err, "Check the repository URL and your network access.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "brands synced into %s\n", a.cfg.Brands.Git.Cache)
	return nil
}

func runBrandsValidate(cmd *cobra.Command, root *rootFlags, id string) error {
	a, err := loadApp(cmd, root, "validate brand")
	if err != nil {
		return err
	}

	pkg, err := a.brands.Load(cmd.Context(), id)
	if err != nil {
		return newCommandError("validate brand", id, err, "Fix the reported field and try again.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s ok (namespace %q, %d variables)\n", pkg.ID, pkg.Namespace, len(pkg.Variables))
	return nil
}
