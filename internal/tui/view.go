package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordlehelp/internal/report"
)

const helpText = "tab/shift+tab: move  ctrl+r: reset  ctrl+o: open list  pgup/pgdn: scroll  esc: quit"

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderEditor(),
		countStyle.Render(report.CountLine(m.result.Count)),
		m.list.View(),
		m.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m *Model) renderEditor() string {
	known := m.renderRow(firstKnown, firstMisplaced)
	misplaced := m.renderRow(firstMisplaced, excludedField)
	excluded := m.renderSlot(excludedField)
	return lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Found Characters"),
		known,
		headingStyle.Render("Characters At Wrong Position"),
		misplaced,
		headingStyle.Render("Wrong Characters"),
		excluded,
	)
}

func (m *Model) renderRow(from, to int) string {
	slots := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		slots = append(slots, m.renderSlot(i))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func (m *Model) renderSlot(idx int) string {
	style := slotStyle
	if idx == m.focus && !m.pathMode {
		style = focusedSlotStyle
	}
	return style.Render(slotView(m.inputs[idx]))
}

// slotView pads an input to its width so empty slots keep their size.
func slotView(input textinput.Model) string {
	view := input.View()
	if pad := input.Width + 1 - lipgloss.Width(view); pad > 0 {
		view += strings.Repeat(" ", pad)
	}
	return view
}

func (m *Model) renderFooter() string {
	if m.pathMode {
		return m.pathInput.View() + "\n" + footerStyle.Render("enter: load  esc: cancel")
	}
	lines := []string{footerStyle.Render(helpText)}
	if m.status != "" {
		lines = append(lines, footerStyle.Render(m.status))
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	return strings.Join(lines, "\n")
}
