package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"studeploy/pkg/api"
	"studeploy/pkg/config"
	"studeploy/pkg/logging"
	"studeploy/pkg/tunnel"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func studentColumns() []table.Column {
	return []table.Column{
		{Title: ColName, Width: 16},
		{Title: ColCPU, Width: 6},
		{Title: ColMemory, Width: 8},
		{Title: ColStorage, Width: 8},
		{Title: ColDBStatus, Width: 10},
		{Title: ColLivePhase, Width: 14},
	}
}

func activityColumns() []table.Column {
	return []table.Column{
		{Title: ColTimestamp, Width: 20},
		{Title: ColOutcome, Width: 8},
		{Title: ColPath, Width: 40},
	}
}

func tunnelColumns() []table.Column {
	return []table.Column{
		{Title: ColNamespace, Width: 16},
		{Title: ColURL, Width: 32},
	}
}

func presetColumns() []table.Column {
	return []table.Column{
		{Title: ColName, Width: 16},
		{Title: ColCPU, Width: 6},
		{Title: ColMemory, Width: 8},
		{Title: ColStorage, Width: 8},
	}
}

// generateStudentRows converts records to table rows. Translated units are
// preferred when the record carries them; otherwise they are recomputed
// from the raw numbers the way the backend would.
func (m *Model) generateStudentRows(records []api.StudentRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		cpu, mem, store := rec.K8sCPU, rec.K8sMemory, rec.K8sStore
		if cpu == "" || mem == "" || store == "" {
			t := api.DeploymentRequest{CPU: rec.CPU, Memory: rec.Memory, Storage: rec.Storage}.Translate()
			if cpu == "" {
				cpu = t.CPU
			}
			if mem == "" {
				mem = t.Memory
			}
			if store == "" {
				store = t.Storage
			}
		}
		rows = append(rows, table.Row{
			rec.Name,
			cpu,
			mem,
			store,
			rec.DBStatus,
			rec.LivePhase,
		})
	}
	return rows
}

// generateActivityRows converts the activity log snapshot to table rows,
// most recent first.
func (m *Model) generateActivityRows() []table.Row {
	entries := m.log.Entries()
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Timestamp, e.Outcome, e.Path})
	}
	return rows
}

func (m *Model) generateTunnelRows(sessions []tunnel.Session) []table.Row {
	rows := make([]table.Row, 0, len(sessions))
	for _, sess := range sessions {
		rows = append(rows, table.Row{sess.Namespace, sess.URL})
	}
	return rows
}

func (m *Model) generatePresetRows(presets []config.RequestPreset) []table.Row {
	rows := make([]table.Row, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, table.Row{
			p.Name,
			strconv.FormatFloat(p.CPU, 'f', -1, 64),
			strconv.Itoa(p.Memory),
			strconv.Itoa(p.Storage),
		})
	}
	return rows
}

// parseFormRequest builds a DeploymentRequest from the form inputs.
func (m *Model) parseFormRequest() (api.DeploymentRequest, error) {
	var req api.DeploymentRequest
	req.Name = strings.TrimSpace(m.inputs[fieldName].Value())

	cpuStr := strings.TrimSpace(m.inputs[fieldCPU].Value())
	cpu, err := strconv.ParseFloat(cpuStr, 64)
	if err != nil {
		return req, fmt.Errorf("cpu must be a number (cores)")
	}
	req.CPU = cpu

	memStr := strings.TrimSpace(m.inputs[fieldMemory].Value())
	mem, err := strconv.Atoi(memStr)
	if err != nil {
		return req, fmt.Errorf("memory must be an integer (MB)")
	}
	req.Memory = mem

	storeStr := strings.TrimSpace(m.inputs[fieldStorage].Value())
	store, err := strconv.Atoi(storeStr)
	if err != nil {
		return req, fmt.Errorf("storage must be an integer (GB)")
	}
	req.Storage = store

	return req, req.Validate()
}

// fillFormFromPreset loads a preset into the form inputs.
func (m *Model) fillFormFromPreset(p config.RequestPreset) {
	m.inputs[fieldName].SetValue(p.Name)
	m.inputs[fieldCPU].SetValue(strconv.FormatFloat(p.CPU, 'f', -1, 64))
	m.inputs[fieldMemory].SetValue(strconv.Itoa(p.Memory))
	m.inputs[fieldStorage].SetValue(strconv.Itoa(p.Storage))
}

// selectedStudent returns the record under the cursor, if any.
func (m *Model) selectedStudent() (api.StudentRecord, bool) {
	idx := m.studentsTable.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return api.StudentRecord{}, false
	}
	return m.records[idx], true
}

// --- State transitions ---

func (m *Model) enterStudents() (tea.Model, tea.Cmd) {
	m.uiState = StateStudents
	m.errorMsg = ""
	m.studentsTable.SetRows(m.generateStudentRows(m.session.Records()))
	m.studentsTable.Focus()
	return m, refreshStudentsCmd(m.session)
}

func (m *Model) enterActivity() (tea.Model, tea.Cmd) {
	m.uiState = StateActivity
	m.errorMsg = ""
	m.statusMsg = ""
	m.activityTable.SetRows(m.generateActivityRows())
	m.activityTable.Focus()
	return m, nil
}

func (m *Model) enterTunnels() (tea.Model, tea.Cmd) {
	m.uiState = StateTunnels
	m.errorMsg = ""
	m.tunnelsTable.SetRows(m.generateTunnelRows(m.tunnelSessions))
	m.tunnelsTable.Focus()
	return m, tunnelListCmd(m.tunnels)
}

func (m *Model) enterRequestForm() (tea.Model, tea.Cmd) {
	m.uiState = StateRequestForm
	m.errorMsg = ""
	m.focusIndex = fieldName
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[fieldName].Focus()
	return m, nil
}

func (m *Model) enterPresetSelector() (tea.Model, tea.Cmd) {
	m.uiState = StatePresetSelector
	m.errorMsg = ""
	m.presetTable.SetRows(m.generatePresetRows(m.store.GetAll()))
	m.presetTable.Focus()
	return m, nil
}

func (m *Model) enterLogin() (tea.Model, tea.Cmd) {
	m.uiState = StateLogin
	m.errorMsg = ""
	m.statusMsg = ""
	m.loginInput.SetValue("")
	m.loginInput.Focus()
	return m, nil
}

// openInBrowser opens a tunnel URL in the local browser.
func (m *Model) openInBrowser(url string) error {
	logging.LogDebug("Opening URL in browser: %s", url)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return cmd.Run()
}
