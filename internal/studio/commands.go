package studio

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
	"github.com/alexisbeaulieu97/tmtheme/internal/tokens"
)

func transitionCmd(action Action, run func() (orchestrator.Result, error)) tea.Cmd {
	return func() tea.Msg {
		result, err := run()
		return AppliedMsg{Action: action, Result: result, Err: err}
	}
}

func initCmd(ctx context.Context, sel Selector) tea.Cmd {
	return transitionCmd(ActionInit, func() (orchestrator.Result, error) {
		return sel.Init(ctx)
	})
}

func toggleModeCmd(ctx context.Context, sel Selector) tea.Cmd {
	return transitionCmd(ActionMode, func() (orchestrator.Result, error) {
		return sel.ToggleMode(ctx)
	})
}

func setThemeCmd(ctx context.Context, sel Selector, name tokens.ThemeName) tea.Cmd {
	return transitionCmd(ActionTheme, func() (orchestrator.Result, error) {
		return sel.SetTheme(ctx, name)
	})
}

func setBrandCmd(ctx context.Context, sel Selector, id string) tea.Cmd {
	return transitionCmd(ActionBrand, func() (orchestrator.Result, error) {
		return sel.SetBrand(ctx, id)
	})
}
