package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m *Model) View() string {
	switch m.uiState {
	case StateRequestForm:
		return m.viewRequestForm()
	case StatePresetSelector:
		return m.viewPresetSelector()
	case StateLogin:
		return m.viewLogin()
	case StateStudents:
		return m.viewStudents()
	case StateTunnels:
		return m.viewTunnels()
	case StateActivity:
		return m.viewActivity()
	}
	return "Unknown state"
}

// renderHeader renders a title line with right-aligned help when there is
// room for both.
func (m *Model) renderHeader(titleText, help string) string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTitle)).Bold(true).Render(titleText)
	helpText := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).Render(help)

	if m.width >= 80 {
		spacing := m.width - lipgloss.Width(title) - lipgloss.Width(helpText)
		if spacing > 0 {
			return lipgloss.JoinHorizontal(lipgloss.Left, title, strings.Repeat(" ", spacing), helpText)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, helpText)
}

// renderMessage renders the error or status line, error taking precedence.
func (m *Model) renderMessage() string {
	if m.errorMsg != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render(fmt.Sprintf("ERROR: %s", m.errorMsg))
	}
	if m.statusMsg != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(m.statusMsg)
	}
	return ""
}

// joinView stacks header, body, and the message line when present.
func (m *Model) joinView(header string, body ...string) string {
	parts := append([]string{header, ""}, body...)
	if msg := m.renderMessage(); msg != "" {
		parts = append(parts, msg)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
