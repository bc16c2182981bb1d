package tunnel

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"studeploy/pkg/api"
	"studeploy/pkg/logging"
)

// Session is one ephemeral tunnel as the client last saw it. The
// authoritative state lives server-side; nothing here is persisted.
type Session struct {
	Namespace string
	Outcome   api.Outcome
	URL       string
}

// Controller starts and stops port-forward tunnels through the gateway,
// keyed by namespace. Overlapping UI actions may call into it at once, so
// the session registry sits behind a mutex.
type Controller struct {
	client *api.Client
	mu     sync.Mutex
	active map[string]Session
}

// NewController creates a tunnel controller over the given gateway.
func NewController(client *api.Client) *Controller {
	return &Controller{
		client: client,
		active: make(map[string]Session),
	}
}

// Start requests a tunnel for the namespace. The outcome is OK only when
// the remote reports "forwarding" or "already-forwarding"; anything else
// is Fail. Gateway errors surface unchanged after being logged there.
func (t *Controller) Start(ctx context.Context, namespace string) (Session, error) {
	path := "/pf/start?name=" + url.QueryEscape(namespace)
	res, err := t.client.Call(ctx, http.MethodPost, path, nil)
	if err != nil {
		return Session{Namespace: namespace, Outcome: api.OutcomeFail}, err
	}

	sess := Session{Namespace: namespace, Outcome: api.OutcomeFail}
	if body, ok := res.Body.(map[string]interface{}); ok {
		status, _ := body["status"].(string)
		if status == "forwarding" || status == "already-forwarding" {
			sess.Outcome = api.OutcomeOK
			sess.URL, _ = body["url"].(string)
		}
	}

	if sess.Outcome == api.OutcomeOK {
		t.mu.Lock()
		t.active[namespace] = sess
		t.mu.Unlock()
		logging.LogDebug("Tunnel started for %s at %s", namespace, sess.URL)
	} else {
		logging.LogError("Tunnel start for %s reported an unexpected status", namespace)
	}
	return sess, nil
}

// StopAll tears down every tunnel unconditionally and clears the local
// registry. The remote outcome is returned as the gateway normalized it.
func (t *Controller) StopAll(ctx context.Context) (api.Outcome, error) {
	res, err := t.client.Call(ctx, http.MethodPost, "/pf/stop_all", nil)

	// The server kills everything it knows about even when the response
	// is unusable, so the local registry is cleared either way.
	t.mu.Lock()
	t.active = make(map[string]Session)
	t.mu.Unlock()

	if err != nil {
		return api.OutcomeFail, err
	}
	logging.LogDebug("Stopped all tunnels, outcome %s", res.Outcome)
	return res.Outcome, nil
}

// List fetches the server-side tunnel registry.
func (t *Controller) List(ctx context.Context) ([]Session, error) {
	res, err := t.client.Call(ctx, http.MethodGet, "/pf/list", nil)
	if err != nil {
		return nil, err
	}
	items, ok := res.Body.([]interface{})
	if !ok {
		return nil, nil
	}
	sessions := make([]Session, 0, len(items))
	for _, item := range items {
		info, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := info["name"].(string)
		u, _ := info["url"].(string)
		if u == "" {
			if port, ok := info["port"].(float64); ok {
				u = fmt.Sprintf("http://127.0.0.1:%d/", int(port))
			}
		}
		sessions = append(sessions, Session{Namespace: name, Outcome: api.OutcomeOK, URL: u})
	}
	return sessions, nil
}

// Active returns the tunnels this controller started, in no particular
// order.
func (t *Controller) Active() []Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Session, 0, len(t.active))
	for _, sess := range t.active {
		out = append(out, sess)
	}
	return out
}
