package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tmtheme/internal/preview"
)

// chromeLines is the number of rows used around the variable list.
const chromeLines = 6

// View renders the current model state.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(errorBannerStyle.Render(m.errorMsg))
		b.WriteString("\n")
	}
	for _, w := range m.warnings {
		b.WriteString(warningStyle.Render("! " + w))
		b.WriteString("\n")
	}

	lines := m.lines()
	end := m.scroll + m.pageSize()
	if end > len(lines) {
		end = len(lines)
	}
	start := m.scroll
	if start > end {
		start = end
	}
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")

	b.WriteString(m.renderFooter(len(lines)))
	return b.String()
}

func (m Model) renderHeader() string {
	palette := preview.NewPalette(m.merged())

	title := fmt.Sprintf(" tmtheme studio · %s ", m.state.Mode)
	if !m.plain {
		title = lipgloss.NewStyle().
			Bold(true).
			Background(palette.Primary.In(m.state.Mode)).
			Foreground(palette.Primary.OnIn(m.state.Mode)).
			Render(title)
	}

	brand := m.state.BrandID
	if brand == "" {
		brand = "none"
	}
	filter := m.Filter()
	if filter == "" {
		filter = "all"
	}

	fields := []string{
		m.field("mode", string(m.state.Mode)),
		m.field("theme", string(m.state.Theme)),
		m.field("brand", brand),
		m.field("group", filter),
	}
	line := strings.Join(fields, "  ")
	if m.Busy() {
		line += "  " + m.spinner.View()
	}

	return title + "\n" + line
}

func (m Model) field(label, value string) string {
	if m.plain {
		return label + ": " + value
	}
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m Model) renderFooter(total int) string {
	text := fmt.Sprintf("%d variables · m mode · t theme · b brand · g group · ↑/↓ scroll · ? help · q quit", total)
	if m.plain {
		return text
	}
	return footerStyle.Render(text)
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"m", "toggle day and night"},
		{"t", "next theme (default, dark, brand)"},
		{"b", "next brand, then none"},
		{"g", "cycle the variable group filter"},
		{"↑/k ↓/j", "scroll one line"},
		{"pgup pgdown", "scroll one page"},
		{"x", "dismiss warnings"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("Keys\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", row[0], row[1]))
	}
	b.WriteString("\nPress any key to return.")
	return b.String()
}

// lines renders the filtered variable list, one entry per row.
func (m Model) lines() []string {
	out := preview.Render(m.variables(), preview.Options{
		Mode:    m.state.Mode,
		Palette: preview.NewPalette(m.merged()),
		Prefix:  m.Filter(),
		Plain:   m.plain,
	})
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func (m Model) pageSize() int {
	size := m.height - chromeLines - len(m.warnings)
	if size < 1 {
		return 1
	}
	return size
}
