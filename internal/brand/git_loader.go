package brand

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/tmtheme/internal/logger"
	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// GitOptions configures a GitLoader.
type GitOptions struct {
	URL      string
	Branch   string
	CacheDir string
	// Subdir is the directory inside the repository holding brand files.
	Subdir string
	Logger *logger.Logger
}

// GitLoader serves brand packages from a git repository mirrored into a
// local cache directory. The mirror is synced lazily on first use.
type GitLoader struct {
	opts GitOptions

	mu     sync.Mutex
	synced bool
}

var (
	_ Loader = (*GitLoader)(nil)
	_ Lister = (*GitLoader)(nil)
)

// NewGitLoader validates opts and returns a loader.
func NewGitLoader(opts GitOptions) (*GitLoader, error) {
	if opts.URL == "" {
		return nil, themeerrors.NewValidationError("brands.git.url", "repository url is required", nil)
	}
	if opts.CacheDir == "" {
		return nil, themeerrors.NewValidationError("brands.git.cache", "cache directory is required", nil)
	}
	return &GitLoader{opts: opts}, nil
}

// Sync clones the repository into the cache, or pulls when a clone exists.
func (l *GitLoader) Sync(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.sync(ctx); err != nil {
		return err
	}
	l.synced = true
	return nil
}

func (l *GitLoader) sync(ctx context.Context) error {
	log := l.opts.Logger.With("url", l.opts.URL)

	if _, err := os.Stat(filepath.Join(l.opts.CacheDir, ".git")); err == nil {
		repo, err := git.PlainOpen(l.opts.CacheDir)
		if err != nil {
			return fmt.Errorf("open brand cache: %w", err)
		}
		wt, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("open brand cache worktree: %w", err)
		}

		pullOpts := &git.PullOptions{RemoteName: "origin"}
		if l.opts.Branch != "" {
			pullOpts.ReferenceName = plumbing.NewBranchReferenceName(l.opts.Branch)
			pullOpts.SingleBranch = true
		}
		err = wt.PullContext(ctx, pullOpts)
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			return fmt.Errorf("pull brand repository: %w", err)
		}
		log.Debug("brand cache up to date")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(l.opts.CacheDir), 0o755); err != nil {
		return fmt.Errorf("create brand cache parent: %w", err)
	}

	cloneOpts := &git.CloneOptions{URL: l.opts.URL}
	if l.opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(l.opts.Branch)
		cloneOpts.SingleBranch = true
	}
	if _, err := git.PlainCloneContext(ctx, l.opts.CacheDir, false, cloneOpts); err != nil {
		_ = os.RemoveAll(l.opts.CacheDir)
		return fmt.Errorf("clone brand repository: %w", err)
	}
	log.Info("cloned brand repository")
	return nil
}

func (l *GitLoader) ensureSynced(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.synced {
		return nil
	}
	if err := l.sync(ctx); err != nil {
		return err
	}
	l.synced = true
	return nil
}

func (l *GitLoader) dir() *DirLoader {
	return NewDirLoader(filepath.Join(l.opts.CacheDir, l.opts.Subdir))
}

// Load syncs the mirror if needed and reads the package from it.
func (l *GitLoader) Load(ctx context.Context, id string) (*Package, error) {
	if err := l.ensureSynced(ctx); err != nil {
		return nil, themeerrors.NewBrandLoadError(id, err)
	}
	return l.dir().Load(ctx, id)
}

// List syncs the mirror if needed and lists its brands.
func (l *GitLoader) List(ctx context.Context) ([]string, error) {
	if err := l.ensureSynced(ctx); err != nil {
		return nil, err
	}
	return l.dir().List(ctx)
}
