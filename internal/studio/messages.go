package studio

import (
	"github.com/alexisbeaulieu97/tmtheme/internal/orchestrator"
)

// Action names the selection change that produced an AppliedMsg.
type Action string

const (
	ActionInit  Action = "init"
	ActionMode  Action = "mode"
	ActionTheme Action = "theme"
	ActionBrand Action = "brand"
)

// AppliedMsg reports the end of one transition started by the studio.
type AppliedMsg struct {
	Action Action
	Result orchestrator.Result
	Err    error
}

// PreferenceMsg reports that the followed system preference changed the
// selection outside of a key press.
type PreferenceMsg struct{}
