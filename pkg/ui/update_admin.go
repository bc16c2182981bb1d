package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateLogin handles updates for the StateLogin
func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.loginInput.Blur()
		return m.enterRequestForm()

	case "enter":
		key := strings.TrimSpace(m.loginInput.Value())
		if key == "" {
			m.errorMsg = "Admin key required"
			return m, nil
		}
		m.errorMsg = ""
		m.statusMsg = "Logging in..."
		return m, loginCmd(m.session, key)
	}

	var cmd tea.Cmd
	m.loginInput, cmd = m.loginInput.Update(msg)
	return m, cmd
}

// updateStudents handles updates for the StateStudents
func (m *Model) updateStudents(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.enterRequestForm()

	case "q":
		return m, tea.Quit

	case "r":
		m.errorMsg = ""
		m.statusMsg = "Refreshing..."
		return m, refreshStudentsCmd(m.session)

	case "d":
		m.errorMsg = ""
		rec, ok := m.selectedStudent()
		if !ok {
			m.errorMsg = "No record selected"
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Removing %s...", rec.Name)
		return m, cleanupCmd(m.session, rec.Name)

	case "s":
		m.errorMsg = ""
		rec, ok := m.selectedStudent()
		if !ok {
			m.errorMsg = "No record selected"
			return m, nil
		}
		return m, statusCmd(m.session.Client(), rec.Name)

	case "f":
		m.errorMsg = ""
		rec, ok := m.selectedStudent()
		if !ok {
			m.errorMsg = "No record selected"
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Opening tunnel for %s...", rec.Name)
		return m, tunnelStartCmd(m.tunnels, rec.Name)

	case "x":
		m.errorMsg = ""
		m.statusMsg = "Stopping all tunnels..."
		return m, tunnelStopAllCmd(m.tunnels)

	case "t":
		return m.enterTunnels()

	case "ctrl+o":
		// Log out and return to the form
		m.session.Logout()
		m.statusMsg = "Logged out"
		return m.enterRequestForm()
	}

	var cmd tea.Cmd
	m.studentsTable, cmd = m.studentsTable.Update(msg)
	return m, cmd
}

// updateTunnels handles updates for the StateTunnels
func (m *Model) updateTunnels(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.enterStudents()

	case "r":
		m.errorMsg = ""
		return m, tunnelListCmd(m.tunnels)

	case "x":
		m.errorMsg = ""
		m.statusMsg = "Stopping all tunnels..."
		return m, tunnelStopAllCmd(m.tunnels)

	case "o":
		m.errorMsg = ""
		idx := m.tunnelsTable.Cursor()
		if idx < 0 || idx >= len(m.tunnelSessions) {
			m.errorMsg = "No tunnel selected"
			return m, nil
		}
		sess := m.tunnelSessions[idx]
		if sess.URL == "" {
			m.errorMsg = fmt.Sprintf("No URL known for %s", sess.Namespace)
			return m, nil
		}
		if err := m.openInBrowser(sess.URL); err != nil {
			m.errorMsg = fmt.Sprintf("Failed to open browser: %v", err)
		} else {
			m.statusMsg = fmt.Sprintf("Opened %s in browser", sess.URL)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tunnelsTable, cmd = m.tunnelsTable.Update(msg)
	return m, cmd
}

// updateActivity handles updates for the StateActivity
func (m *Model) updateActivity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.session.Authenticated() {
			return m.enterStudents()
		}
		return m.enterRequestForm()

	case "r":
		m.activityTable.SetRows(m.generateActivityRows())
		return m, nil
	}

	var cmd tea.Cmd
	m.activityTable, cmd = m.activityTable.Update(msg)
	return m, cmd
}
