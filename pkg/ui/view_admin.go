package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewStudents renders the admin records table
func (m *Model) viewStudents() string {
	header := m.renderHeader(
		fmt.Sprintf("Records (%d)", len(m.records)),
		"r: Refresh | s: Status | d: Remove | f: Tunnel | x: Stop Tunnels | t: Tunnels | Ctrl+O: Logout | Esc: Back",
	)

	tableView := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.studentsTable.View())
	return m.joinView(header, tableView)
}

// viewTunnels renders the server-side tunnel registry
func (m *Model) viewTunnels() string {
	header := m.renderHeader(
		fmt.Sprintf("Tunnels (%d)", len(m.tunnelSessions)),
		"r: Refresh | o: Open URL | x: Stop All | Esc: Back",
	)

	if len(m.tunnelSessions) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).
			Render("No active tunnels.")
		return m.joinView(header, empty)
	}

	tableView := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.tunnelsTable.View())
	return m.joinView(header, tableView)
}
