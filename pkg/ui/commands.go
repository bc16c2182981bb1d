package ui

import (
	"context"

	"studeploy/pkg/api"
	"studeploy/pkg/tunnel"

	tea "github.com/charmbracelet/bubbletea"
)

// Every network operation runs as an async command returning a typed
// result message. Nothing here cancels anything else: re-triggering an
// action while one is in flight simply produces a second command, and an
// in-flight poll loop runs to its attempt budget.

type deployResultMsg struct {
	name string
	err  error
}

type statusResultMsg struct {
	name    string
	outcome api.Outcome
	err     error
}

type loginResultMsg struct {
	err error
}

type studentsLoadedMsg struct {
	records []api.StudentRecord
	err     error
}

type cleanupResultMsg struct {
	name string
	err  error
}

type tunnelStartedMsg struct {
	sess tunnel.Session
	err  error
}

type tunnelsStoppedMsg struct {
	outcome api.Outcome
	err     error
}

type tunnelListMsg struct {
	sessions []tunnel.Session
	err      error
}

// deployCmd runs the full submit/trigger/poll pipeline.
func deployCmd(client *api.Client, req api.DeploymentRequest) tea.Cmd {
	return func() tea.Msg {
		err := client.Deploy(context.Background(), req, api.DeployOptions{})
		return deployResultMsg{name: req.Name, err: err}
	}
}

// statusCmd queries the current phase of one deployment.
func statusCmd(client *api.Client, name string) tea.Cmd {
	return func() tea.Msg {
		res, err := client.PodStatus(context.Background(), name)
		if err != nil {
			return statusResultMsg{name: name, outcome: api.OutcomeFail, err: err}
		}
		return statusResultMsg{name: name, outcome: res.Outcome}
	}
}

// loginCmd probes the admin listing with the supplied key.
func loginCmd(session *api.Session, key string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: session.Login(context.Background(), key)}
	}
}

// refreshStudentsCmd re-fetches the record listing.
func refreshStudentsCmd(session *api.Session) tea.Cmd {
	return func() tea.Msg {
		records, err := session.Refresh(context.Background())
		return studentsLoadedMsg{records: records, err: err}
	}
}

// cleanupCmd removes a deployment and its record.
func cleanupCmd(session *api.Session, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := session.Client().Cleanup(context.Background(), name)
		return cleanupResultMsg{name: name, err: err}
	}
}

// tunnelStartCmd opens a tunnel for a record's namespace.
func tunnelStartCmd(tunnels *tunnel.Controller, namespace string) tea.Cmd {
	return func() tea.Msg {
		sess, err := tunnels.Start(context.Background(), namespace)
		return tunnelStartedMsg{sess: sess, err: err}
	}
}

// tunnelStopAllCmd tears down every tunnel.
func tunnelStopAllCmd(tunnels *tunnel.Controller) tea.Cmd {
	return func() tea.Msg {
		outcome, err := tunnels.StopAll(context.Background())
		return tunnelsStoppedMsg{outcome: outcome, err: err}
	}
}

// tunnelListCmd fetches the server-side tunnel registry.
func tunnelListCmd(tunnels *tunnel.Controller) tea.Cmd {
	return func() tea.Msg {
		sessions, err := tunnels.List(context.Background())
		return tunnelListMsg{sessions: sessions, err: err}
	}
}
