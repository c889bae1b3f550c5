// Package config loads tmtheme settings with the precedence
// defaults < config file < environment (TMTHEME_*) < flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// Keys accepted in the config file, environment and overrides.
const (
	KeyEnvironment    = "environment"
	KeyLogLevel       = "log.level"
	KeyLogHuman       = "log.human"
	KeyBrandsDir      = "brands.dir"
	KeyBrandsGitURL   = "brands.git.url"
	KeyBrandsGitRef   = "brands.git.branch"
	KeyBrandsGitCache = "brands.git.cache"
	KeyBrandsGitPath  = "brands.git.path"
	KeyStorageDriver  = "storage.driver"
	KeyStoragePath    = "storage.path"
	KeySnapshotDir    = "snapshot.dir"
	KeyPreferenceFile = "preference.file"
)

const (
	envPrefix = "TMTHEME"
	// FileName is the config file discovered in the working directory.
	FileName = "tmtheme.yaml"
)

// Config is the decoded, validated configuration.
type Config struct {
	Environment string           `mapstructure:"environment" validate:"oneof=development production"`
	Log         LogConfig        `mapstructure:"log"`
	Brands      BrandsConfig     `mapstructure:"brands"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Snapshot    SnapshotConfig   `mapstructure:"snapshot"`
	Preference  PreferenceConfig `mapstructure:"preference"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human"`
}

// BrandsConfig locates brand packages: a local directory, or a git
// repository mirrored into Git.Cache.
type BrandsConfig struct {
	Dir string    `mapstructure:"dir"`
	Git GitConfig `mapstructure:"git"`
}

// GitConfig configures the git-backed brand loader.
type GitConfig struct {
	URL    string `mapstructure:"url" validate:"omitempty,git_url"`
	Branch string `mapstructure:"branch"`
	Cache  string `mapstructure:"cache" validate:"required_with=URL"`
	Path   string `mapstructure:"path"`
}

// StorageConfig selects the preference store backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=memory file sqlite"`
	Path   string `mapstructure:"path" validate:"required_unless=Driver memory"`
}

// SnapshotConfig configures the snapshot command.
type SnapshotConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

// PreferenceConfig points at the file holding the system colour-scheme preference.
type PreferenceConfig struct {
	File string `mapstructure:"file"`
}

// Options controls Load.
type Options struct {
	// File forces a config file, YAML or TOML by extension. Without it
	// FileName is looked up in WorkingDir.
	File       string
	WorkingDir string
	// Overrides typically come from CLI flags and win over everything else.
	Overrides map[string]any
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault(KeyEnvironment, "production")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogHuman, false)
	v.SetDefault(KeyBrandsDir, "brands")
	v.SetDefault(KeyBrandsGitURL, "")
	v.SetDefault(KeyBrandsGitRef, "")
	v.SetDefault(KeyBrandsGitCache, filepath.Join(dataDir, "brands"))
	v.SetDefault(KeyBrandsGitPath, "")
	v.SetDefault(KeyStorageDriver, "file")
	v.SetDefault(KeyStoragePath, filepath.Join(dataDir, "preferences.json"))
	v.SetDefault(KeySnapshotDir, "snapshots")
	v.SetDefault(KeyPreferenceFile, "")
}

// Load resolves configuration from every layer and validates it.
func Load(opts Options) (*Config, error) {
	workingDir := strings.TrimSpace(opts.WorkingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	v := viper.New()
	setDefaults(v, defaultDataDir())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path := opts.File
	if path == "" {
		candidate := filepath.Join(workingDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return nil, fmt.Errorf("config file %s not found", path)
			}
			return nil, themeerrors.NewParseError(path, 0, err)
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, themeerrors.NewParseError(path, 0, err)
	}
	cfg.File = path

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if cfg == nil {
		return themeerrors.NewValidationError("config", "config is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Development reports whether required-token validation should fail fast.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tmtheme")
	}
	return ".tmtheme"
}
