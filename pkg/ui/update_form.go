package ui

import (
	"fmt"

	"studeploy/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// updateRequestForm handles updates for the StateRequestForm
func (m *Model) updateRequestForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		if msg.String() == "enter" && m.focusIndex == fieldCount-1 {
			return m.submitForm()
		}
		return m.cycleFocus(1)

	case "shift+tab", "up":
		return m.cycleFocus(-1)

	case "ctrl+d":
		// Submit from anywhere in the form
		return m.submitForm()

	case "ctrl+s":
		// Check current status for the entered name
		m.errorMsg = ""
		name := m.inputs[fieldName].Value()
		if name == "" {
			m.errorMsg = "Enter a name to check its status"
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Checking %s...", name)
		return m, statusCmd(m.client, name)

	case "ctrl+w":
		// Save the current form as a preset
		return m.saveFormAsPreset()

	case ShortcutPresets:
		return m.enterPresetSelector()

	case ShortcutAdmin:
		if m.session.Authenticated() {
			return m.enterStudents()
		}
		return m.enterLogin()
	}

	// Pass everything else to the focused input
	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// cycleFocus moves focus between form fields
func (m *Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + delta + fieldCount) % fieldCount
	m.inputs[m.focusIndex].Focus()
	return m, nil
}

// submitForm validates the form and kicks off the deploy pipeline
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	m.errorMsg = ""
	m.statusMsg = ""

	req, err := m.parseFormRequest()
	if err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}

	if m.deploying[req.Name] {
		// A pipeline for this name is still polling; let it finish.
		m.errorMsg = fmt.Sprintf("Deploy of %s already in progress", req.Name)
		return m, nil
	}

	m.deploying[req.Name] = true
	m.statusMsg = fmt.Sprintf("Deploying %s...", req.Name)
	return m, deployCmd(m.client, req)
}

// saveFormAsPreset stores the current form values locally
func (m *Model) saveFormAsPreset() (tea.Model, tea.Cmd) {
	m.errorMsg = ""

	req, err := m.parseFormRequest()
	if err != nil {
		m.errorMsg = err.Error()
		return m, nil
	}

	preset := config.RequestPreset{
		ID:      uuid.New().String(),
		Name:    req.Name,
		CPU:     req.CPU,
		Memory:  req.Memory,
		Storage: req.Storage,
	}
	if err := m.store.AddPreset(preset); err != nil {
		m.errorMsg = fmt.Sprintf("Could not save preset: %v", err)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("Saved preset %s", preset.Name)
	return m, nil
}

// updatePresetSelector handles updates for the StatePresetSelector
func (m *Model) updatePresetSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.enterRequestForm()

	case "enter":
		idx := m.presetTable.Cursor()
		preset, err := m.store.GetWithError(idx)
		if err != nil {
			m.errorMsg = fmt.Sprintf("Cannot load preset: %v", err)
			return m, nil
		}
		m.fillFormFromPreset(preset)
		m.statusMsg = fmt.Sprintf("Loaded preset %s", preset.Name)
		return m.enterRequestForm()

	case "d":
		idx := m.presetTable.Cursor()
		preset, err := m.store.GetWithError(idx)
		if err != nil {
			m.errorMsg = fmt.Sprintf("Cannot delete preset: %v", err)
			return m, nil
		}
		if err := m.store.DeletePreset(preset.ID); err != nil {
			m.errorMsg = fmt.Sprintf("Delete failed: %v", err)
			return m, nil
		}
		m.presetTable.SetRows(m.generatePresetRows(m.store.GetAll()))
		m.statusMsg = fmt.Sprintf("Deleted preset %s", preset.Name)
		return m, nil
	}

	var cmd tea.Cmd
	m.presetTable, cmd = m.presetTable.Update(msg)
	return m, cmd
}
