package studio

import (
	"context"

	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/provider"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

// Selector exposes the selection operations the studio drives. It is
// satisfied by *provider.Provider.
type Selector interface {
	State() provider.State
	Init(ctx context.Context) (orchestrator.Result, error)
	ToggleMode(ctx context.Context) (orchestrator.Result, error)
	SetTheme(ctx context.Context, name tokens.ThemeName) (orchestrator.Result, error)
	SetBrand(ctx context.Context, id string) (orchestrator.Result, error)
}

var _ Selector = (*provider.Provider)(nil)
