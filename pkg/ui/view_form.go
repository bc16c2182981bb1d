package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewRequestForm renders the deployment request form
func (m *Model) viewRequestForm() string {
	header := m.renderHeader(
		fmt.Sprintf("Deployment Request - %s", m.client.BaseURL()),
		"Enter: Submit | Ctrl+S: Check Status | Ctrl+W: Save Preset | Ctrl+P: Presets | Ctrl+A: Admin | Ctrl+L: Activity | Ctrl+X: Quit",
	)

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).Width(14)
	focusedLabel := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFocused)).Width(14)

	labels := []string{"Name", "CPU (cores)", "Memory (MB)", "Storage (GB)"}
	lines := make([]string, 0, fieldCount+2)
	for i, input := range m.inputs {
		style := labelStyle
		if i == m.focusIndex {
			style = focusedLabel
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, style.Render(labels[i]), input.View()))
	}

	if len(m.deploying) > 0 {
		names := make([]string, 0, len(m.deploying))
		for name := range m.deploying {
			names = append(names, name)
		}
		progress := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).
			Render(fmt.Sprintf("In flight: %v (polling until Running)", names))
		lines = append(lines, "", progress)
	}

	body := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	return m.joinView(header, body)
}

// viewPresetSelector renders the saved preset table
func (m *Model) viewPresetSelector() string {
	header := m.renderHeader(
		"Saved Presets",
		"Enter: Load | d: Delete | Esc: Back",
	)
	if m.store.Len() == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).
			Render("No presets saved yet. Use Ctrl+W on the form to save one.")
		return m.joinView(header, empty)
	}
	return m.joinView(header, m.presetTable.View())
}

// viewLogin renders the admin key prompt
func (m *Model) viewLogin() string {
	header := m.renderHeader(
		"Admin Login",
		"Enter: Log In | Esc: Back",
	)

	prompt := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render("Admin key: " + m.loginInput.View())

	return m.joinView(header, prompt)
}
