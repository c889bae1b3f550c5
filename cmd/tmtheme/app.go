package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tmtheme/internal/brand"
	"github.com/alexisbeaulieu97/tmtheme/internal/config"
	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	"github.com/alexisbeaulieu97/tmtheme/internal/projector"
	"github.com/alexisbeaulieu97/tmtheme/internal/storage"
)

// app bundles what every command builds from configuration.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	brands brand.Loader
}

func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*app, error) {
	overrides := map[string]any{}
	if flags.environment != "" {
		overrides[config.KeyEnvironment] = flags.environment
	}
	if flags.verbose {
		overrides[config.KeyLogLevel] = "debug"
	}

	cfg, err := config.Load(config.Options{File: flags.configPath, Overrides: overrides})
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check tmtheme.yaml and TMTHEME_* environment variables.")
	}

	human := cfg.Log.Human || isTerminal(cmd.ErrOrStderr())
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: human,
		Writer:        cmd.ErrOrStderr(),
		Component:     "tmtheme",
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn or error for log.level.")
	}

	loader, err := newBrandLoader(cfg, log)
	if err != nil {
		return nil, newCommandError(operation, "configuring brand loader", err, "Set brands.git.url and brands.git.cache together.")
	}

	return &app{cfg: cfg, log: log, brands: loader}, nil
}

func newBrandLoader(cfg *config.Config, log *logger.Logger) (brand.Loader, error) {
	if cfg.Brands.Git.URL == "" {
		return brand.NewDirLoader(cfg.Brands.Dir), nil
	}
	return brand.NewGitLoader(brand.GitOptions{
		URL:      cfg.Brands.Git.URL,
		Branch:   cfg.Brands.Git.Branch,
		CacheDir: cfg.Brands.Git.Cache,
		Subdir:   cfg.Brands.Git.Path,
		Logger:   log,
	})
}

func (a *app) environment() projector.Environment {
	if a.cfg.Development() {
		return projector.Development
	}
	return projector.Production
}

// openStorage returns the configured store and a function releasing it.
func (a *app) openStorage() (storage.Storage, func(), error) {
	if a.cfg.Storage.Driver != storage.DriverMemory {
		if err := os.MkdirAll(filepath.Dir(a.cfg.Storage.Path), 0o755); err != nil {
			return nil, nil, err
		}
	}
	store, err := storage.Open(a.cfg.Storage.Driver, a.cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if closer, ok := store.(storage.Closer); ok {
			if err := closer.Close(); err != nil {
				a.log.Warn(err, "close storage")
			}
		}
	}
	return store, release, nil
}

type fdWriter interface {
	Fd() uintptr
}

func isTerminal(w any) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}
