package ui

import (
	"errors"
	"fmt"

	"studeploy/pkg/activity"
	"studeploy/pkg/api"
	"studeploy/pkg/config"
	"studeploy/pkg/logging"
	"studeploy/pkg/tunnel"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the state of the UI. The activity log, session, and
// tunnel controller are owned here rather than living as globals, and all
// network work flows through async commands (commands.go).
type Model struct {
	uiState UIState

	// Core components
	store   config.StoreInterface
	client  *api.Client
	session *api.Session
	tunnels *tunnel.Controller
	log     *activity.Log
	width   int
	height  int

	// Central error message
	errorMsg string
	// Status/info message (non-error feedback)
	statusMsg string

	// Request form
	inputs     []textinput.Model
	focusIndex int
	// Names with an in-flight deploy pipeline; there is no way to cancel
	// one, it runs to its attempt budget.
	deploying map[string]bool

	// Admin state
	loginInput    textinput.Model
	studentsTable table.Model
	records       []api.StudentRecord

	// Secondary tables
	activityTable  table.Model
	tunnelsTable   table.Model
	tunnelSessions []tunnel.Session
	presetTable    table.Model
}

// NewModel wires the UI over an already-constructed gateway and store.
func NewModel(client *api.Client, store config.StoreInterface) *Model {
	m := &Model{
		uiState:   StateRequestForm,
		store:     store,
		client:    client,
		session:   api.NewSession(client),
		tunnels:   tunnel.NewController(client),
		log:       client.Log(),
		width:     80,
		height:    24,
		deploying: make(map[string]bool),
	}

	// --- Request form inputs ---
	labels := []string{"name", "cpu (cores)", "memory (MB)", "storage (GB)"}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = labels[i]
		ti.CharLimit = 63
		ti.Width = FormInputWidth
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()

	// --- Login input ---
	li := textinput.New()
	li.Placeholder = "admin key"
	li.EchoMode = textinput.EchoPassword
	li.CharLimit = 128
	li.Width = FormInputWidth
	m.loginInput = li

	// --- Tables ---
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(ColorSelectedFg)).
		Background(lipgloss.Color(ColorSelectedBg)).
		Bold(false)

	m.studentsTable = table.New(
		table.WithColumns(studentColumns()),
		table.WithHeight(10),
		table.WithStyles(s),
	)
	m.activityTable = table.New(
		table.WithColumns(activityColumns()),
		table.WithHeight(10),
		table.WithStyles(s),
	)
	m.tunnelsTable = table.New(
		table.WithColumns(tunnelColumns()),
		table.WithHeight(10),
		table.WithStyles(s),
	)
	m.presetTable = table.New(
		table.WithColumns(presetColumns()),
		table.WithHeight(10),
		table.WithStyles(s),
	)

	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		tableHeight := m.height - TableViewOffset
		if tableHeight < MinTableHeight {
			tableHeight = MinTableHeight
		}
		m.studentsTable.SetHeight(tableHeight)
		m.activityTable.SetHeight(tableHeight)
		m.tunnelsTable.SetHeight(tableHeight)
		m.presetTable.SetHeight(tableHeight)
		return m, nil

	case tea.KeyMsg:
		// Global shortcuts that work in any state
		switch msg.String() {
		case "ctrl+c", ShortcutExit:
			return m, tea.Quit
		case ShortcutActivity:
			if m.uiState != StateActivity {
				return m.enterActivity()
			}
		}

		// Delegate to state-specific handlers
		switch m.uiState {
		case StateRequestForm:
			return m.updateRequestForm(msg)
		case StatePresetSelector:
			return m.updatePresetSelector(msg)
		case StateLogin:
			return m.updateLogin(msg)
		case StateStudents:
			return m.updateStudents(msg)
		case StateTunnels:
			return m.updateTunnels(msg)
		case StateActivity:
			return m.updateActivity(msg)
		}

	case deployResultMsg:
		delete(m.deploying, msg.name)
		if msg.err != nil {
			m.errorMsg = deployErrorText(msg.name, msg.err)
		} else {
			m.statusMsg = fmt.Sprintf("%s is Running", msg.name)
		}
		return m, nil

	case statusResultMsg:
		if msg.err != nil {
			m.statusMsg = ""
			m.errorMsg = fmt.Sprintf("%s: Error (%v)", msg.name, msg.err)
		} else {
			m.errorMsg = ""
			m.statusMsg = fmt.Sprintf("%s: %s", msg.name, msg.outcome)
		}
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			m.errorMsg = "Login failed"
			logging.LogDebug("Login attempt failed: %v", msg.err)
			return m, nil
		}
		m.loginInput.SetValue("")
		m.loginInput.Blur()
		m.statusMsg = "Logged in"
		return m.enterStudents()

	case studentsLoadedMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Refresh failed: %v", msg.err)
			return m, nil
		}
		m.records = msg.records
		m.studentsTable.SetRows(m.generateStudentRows(msg.records))
		m.statusMsg = fmt.Sprintf("%d record(s)", len(msg.records))
		return m, nil

	case cleanupResultMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Cleanup of %s failed: %v", msg.name, msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Removed %s", msg.name)
		return m, refreshStudentsCmd(m.session)

	case tunnelStartedMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Tunnel for %s failed: %v", msg.sess.Namespace, msg.err)
			return m, nil
		}
		if msg.sess.Outcome != api.OutcomeOK {
			m.errorMsg = fmt.Sprintf("Tunnel for %s failed", msg.sess.Namespace)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Forwarding %s at %s", msg.sess.Namespace, msg.sess.URL)
		return m, nil

	case tunnelsStoppedMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Stop all tunnels failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Stopped all tunnels (%s)", msg.outcome)
		if m.uiState == StateTunnels {
			return m, tunnelListCmd(m.tunnels)
		}
		return m, nil

	case tunnelListMsg:
		if msg.err != nil {
			m.errorMsg = fmt.Sprintf("Tunnel list failed: %v", msg.err)
			return m, nil
		}
		m.tunnelSessions = msg.sessions
		m.tunnelsTable.SetRows(m.generateTunnelRows(msg.sessions))
		return m, nil
	}

	return m, nil
}

// deployErrorText picks a user-facing line for a failed pipeline.
func deployErrorText(name string, err error) string {
	switch {
	case errors.Is(err, api.ErrPollTimeout):
		return fmt.Sprintf("%s accepted but not Running yet; check status later", name)
	case errors.Is(err, api.ErrInvalidRequest):
		return err.Error()
	default:
		return fmt.Sprintf("Deploy of %s failed: %v", name, err)
	}
}
