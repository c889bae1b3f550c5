// Package brand loads namespaced brand packages: sparse token patches plus
// extra CSS variables that live under the brand's own namespace.
package brand

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Package is a brand override layered above the theme override.
type Package struct {
	ID        string            `yaml:"id" toml:"id" json:"id" validate:"required,brand_id"`
	Name      string            `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`
	Namespace string            `yaml:"namespace" toml:"namespace" json:"namespace" validate:"required,brand_id,brand_namespace"`
	Tokens    tokens.Patch      `yaml:"tokens,omitempty" toml:"tokens,omitempty" json:"tokens"`
	Variables map[string]string `yaml:"variables,omitempty" toml:"variables,omitempty" json:"variables,omitempty" validate:"omitempty,dive,keys,brand_id,endkeys,required"`
}

// VariableName returns the namespaced custom-property name for key.
func (p *Package) VariableName(key string) string {
	return fmt.Sprintf("--%s-%s", p.Namespace, key)
}

// NamespacedVariables returns Variables keyed by their full property names.
func (p *Package) NamespacedVariables() map[string]string {
	out := make(map[string]string, len(p.Variables))
	for key, value := range p.Variables {
		out[p.VariableName(key)] = value
	}
	return out
}

// VariableNames lists the namespaced property names in sorted order.
func (p *Package) VariableNames() []string {
	names := make([]string, 0, len(p.Variables))
	for key := range p.Variables {
		names = append(names, p.VariableName(key))
	}
	sort.Strings(names)
	return names
}

// Loader fetches a brand package by id. Implementations must honour ctx
// cancellation so a superseded load can be dropped.
type Loader interface {
	Load(ctx context.Context, id string) (*Package, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, id string) (*Package, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, id string) (*Package, error) {
	return f(ctx, id)
}

// Lister is implemented by loaders that can enumerate available brands.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}
