package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"studeploy/pkg/activity"
	"studeploy/pkg/logging"
)

// AdminKeyHeader carries the admin credential on privileged calls.
const AdminKeyHeader = "x-admin-key"

const defaultTimeout = 30 * time.Second

// Client is the single chokepoint for all calls to the deployer backend.
// Every invocation normalizes the response into an Outcome and appends
// exactly one activity log entry, even when the transport fails.
type Client struct {
	baseURL  string
	http     *http.Client
	log      *activity.Log
	adminKey string
}

// Result is the normalized output of a successful gateway call.
type Result struct {
	Body    interface{}
	Outcome Outcome
	Status  int
}

// NewClient creates a gateway client for the given base address. The base
// address is fixed for the client's lifetime.
func NewClient(baseURL string, log *activity.Log) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// WithAdminKey returns a privileged copy of the client that attaches the
// credential header to every outgoing call. The copy shares the activity
// log and transport; nothing else about the contract changes.
func (c *Client) WithAdminKey(key string) *Client {
	clone := *c
	clone.adminKey = key
	return &clone
}

// Log exposes the activity log the client writes to.
func (c *Client) Log() *activity.Log {
	return c.log
}

// BaseURL returns the backend address the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs one HTTP request against the backend. The response body is
// parsed as JSON when possible and degraded to raw text otherwise. The
// call is logged before any error is returned: transport failures surface
// as *NetworkError, non-2xx responses as *APIError.
func (c *Client) Call(ctx context.Context, method, path string, payload interface{}) (*Result, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.adminKey != "" {
		req.Header.Set(AdminKeyHeader, c.adminKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		netErr := &NetworkError{Path: path, Err: err}
		logging.LogError("Gateway transport failure on %s %s: %v", method, path, err)
		c.log.Append(path, string(OutcomeFail), map[string]interface{}{"error": err.Error()})
		return nil, netErr
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		netErr := &NetworkError{Path: path, Err: err}
		logging.LogError("Gateway read failure on %s %s: %v", method, path, err)
		c.log.Append(path, string(OutcomeFail), map[string]interface{}{"error": err.Error()})
		return nil, netErr
	}

	body := parseBody(raw)
	httpOK := resp.StatusCode >= 200 && resp.StatusCode < 300
	outcome := NormalizeOutcome(path, httpOK, body)

	// Exactly one entry per invocation, recorded before any error is
	// raised to the caller.
	c.log.Append(path, string(outcome), body)
	logging.LogDebug("Gateway %s %s -> HTTP %d, outcome %s", method, path, resp.StatusCode, outcome)

	if !httpOK {
		return nil, &APIError{Path: path, StatusCode: resp.StatusCode, Body: body}
	}
	return &Result{Body: body, Outcome: outcome, Status: resp.StatusCode}, nil
}

// parseBody decodes a JSON body, degrading to raw text when the body is
// not JSON rather than failing the call.
func parseBody(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	var body interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return string(raw)
	}
	return body
}

// Submit validates and persists a deployment request on the backend.
func (c *Client) Submit(ctx context.Context, req DeploymentRequest) (*Result, error) {
	return c.Call(ctx, http.MethodPost, "/submit", req)
}

// DeployFromDB triggers deployment of a previously submitted record.
func (c *Client) DeployFromDB(ctx context.Context, name string) (*Result, error) {
	return c.Call(ctx, http.MethodPost, "/deploy-from-db?name="+url.QueryEscape(name), nil)
}

// PodStatus queries the current phase of a deployment.
func (c *Client) PodStatus(ctx context.Context, name string) (*Result, error) {
	return c.Call(ctx, http.MethodGet, "/status?name="+url.QueryEscape(name), nil)
}

// ListStudents fetches all records. Privileged: the client must carry an
// admin key for the backend to accept it.
func (c *Client) ListStudents(ctx context.Context) (*Result, error) {
	return c.Call(ctx, http.MethodGet, "/admin/students", nil)
}

// Cleanup removes a deployment and its record. Privileged.
func (c *Client) Cleanup(ctx context.Context, name string) (*Result, error) {
	return c.Call(ctx, http.MethodDelete, "/cleanup?name="+url.QueryEscape(name), nil)
}
