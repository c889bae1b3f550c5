package studio

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AppliedMsg:
		if m.pending > 0 {
			m.pending--
		}
		if msg.Err != nil {
			m.errorMsg = fmt.Sprintf("%s failed: %v", msg.Action, msg.Err)
			m.state = m.sel.State()
			return m, nil
		}
		if msg.Result.Superseded {
			return m, nil
		}
		m.state = m.sel.State()
		m.errorMsg = ""
		m.warnings = warningsFor(msg)
		m.clampScroll()
		return m, nil

	case PreferenceMsg:
		m.state = m.sel.State()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.showHelp = false
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "x":
		m.errorMsg = ""
		m.warnings = nil
		return m, nil

	case "m":
		m.pending++
		return m, tea.Batch(m.spinner.Tick, toggleModeCmd(m.ctx, m.sel))

	case "t":
		m.pending++
		return m, tea.Batch(m.spinner.Tick, setThemeCmd(m.ctx, m.sel, m.nextTheme()))

	case "b":
		m.pending++
		return m, tea.Batch(m.spinner.Tick, setBrandCmd(m.ctx, m.sel, m.nextBrand()))

	case "g":
		m.filter = (m.filter + 1) % len(m.filters)
		m.scroll = 0
		return m, nil

	case "up", "k":
		m.scroll--
		m.clampScroll()
		return m, nil

	case "down", "j":
		m.scroll++
		m.clampScroll()
		return m, nil

	case "pgup":
		m.scroll -= m.pageSize()
		m.clampScroll()
		return m, nil

	case "pgdown", " ":
		m.scroll += m.pageSize()
		m.clampScroll()
		return m, nil
	}

	return m, nil
}

func warningsFor(msg AppliedMsg) []string {
	var out []string
	if msg.Result.BrandErr != nil {
		out = append(out, fmt.Sprintf("brand not applied: %v", msg.Result.BrandErr))
	}
	for _, group := range append(msg.Result.Colors.Failed(), msg.Result.States.Failed()...) {
		out = append(out, group.Err.Error())
	}
	return out
}

func (m *Model) clampScroll() {
	limit := len(m.lines()) - m.pageSize()
	if m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
