package brand

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// ErrNotFound is returned when no file exists for a brand id.
var ErrNotFound = errors.New("brand not found")

// DirLoader loads brand packages from <dir>/<id>.{yaml,yml,toml}.
type DirLoader struct {
	Dir string
}

var (
	_ Loader = (*DirLoader)(nil)
	_ Lister = (*DirLoader)(nil)
)

// NewDirLoader returns a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// Load finds and parses the package for id. The decoded package id must match.
func (l *DirLoader) Load(ctx context.Context, id string) (*Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !brandIDPattern.MatchString(id) {
		return nil, themeerrors.NewBrandLoadError(id, fmt.Errorf("invalid brand id"))
	}

	for _, ext := range Extensions {
		path := filepath.Join(l.Dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, themeerrors.NewBrandLoadError(id, err)
		}

		pkg, err := ParseFile(path)
		if err != nil {
			return nil, themeerrors.NewBrandLoadError(id, err)
		}
		if pkg.ID != id {
			return nil, themeerrors.NewBrandLoadError(id, fmt.Errorf("%s declares id %q", path, pkg.ID))
		}
		return pkg, nil
	}

	return nil, themeerrors.NewBrandLoadError(id, ErrNotFound)
}

// List returns the ids of every brand file in the directory, sorted.
func (l *DirLoader) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("read brand directory: %w", err)
	}

	seen := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, candidate := range Extensions {
			if ext == candidate {
				seen[strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
