package ui

import (
	"fmt"

	"studeploy/pkg/activity"

	"github.com/charmbracelet/lipgloss"
)

// viewActivity renders the activity trail, most recent first
func (m *Model) viewActivity() string {
	header := m.renderHeader(
		fmt.Sprintf("Activity (%d of max %d)", m.log.Len(), activity.MaxEntries),
		"r: Refresh | Esc: Back",
	)

	if m.log.Len() == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelp)).
			Render("Nothing logged yet.")
		return m.joinView(header, empty)
	}

	tableView := lipgloss.PlaceHorizontal(m.width, lipgloss.Left, m.activityTable.View())
	return m.joinView(header, tableView)
}
