package api

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler tracks request paths so pipeline short-circuits can be
// asserted directly.
type recordingHandler struct {
	mu    sync.Mutex
	paths []string
	serve func(w http.ResponseWriter, r *http.Request)
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.paths = append(h.paths, r.URL.Path)
	h.mu.Unlock()
	h.serve(w, r)
}

func (h *recordingHandler) seen() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.paths))
	copy(out, h.paths)
	return out
}

func validRequest() DeploymentRequest {
	return DeploymentRequest{Name: "alice", CPU: 0.5, Memory: 512, Storage: 1}
}

func TestDeployHappyPath(t *testing.T) {
	handler := &recordingHandler{serve: func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/submit":
			w.Write([]byte(`{"student":"alice","status":"queued"}`))
		case "/deploy-from-db":
			w.Write([]byte(`{"student":"alice"}`))
		case "/status":
			w.Write([]byte(`{"student":"alice","status":"Running"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}}
	client, _ := newTestClient(t, handler)

	err := client.Deploy(context.Background(), validRequest(), DeployOptions{MaxAttempts: 3, Interval: time.Millisecond})
	require.NoError(t, err)
	assert.Equal(t, []string{"/submit", "/deploy-from-db", "/status"}, handler.seen())
}

func TestDeploySubmitFailureShortCircuits(t *testing.T) {
	handler := &recordingHandler{serve: func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"already exists"}`))
	}}
	client, _ := newTestClient(t, handler)

	err := client.Deploy(context.Background(), validRequest(), DeployOptions{MaxAttempts: 3})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"/submit"}, handler.seen())
}

func TestDeployTriggerFailureSkipsPolling(t *testing.T) {
	handler := &recordingHandler{serve: func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/submit":
			w.Write([]byte(`{"student":"alice","status":"queued"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"deploy failed"}`))
		}
	}}
	client, _ := newTestClient(t, handler)

	err := client.Deploy(context.Background(), validRequest(), DeployOptions{MaxAttempts: 3})
	require.Error(t, err)
	assert.Equal(t, []string{"/submit", "/deploy-from-db"}, handler.seen())
}

func TestDeployPollExhaustionReturnsTimeout(t *testing.T) {
	handler := &recordingHandler{serve: func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/status":
			w.Write([]byte(`{"student":"alice","status":"Pending"}`))
		default:
			w.Write([]byte(`{"student":"alice"}`))
		}
	}}
	client, _ := newTestClient(t, handler)

	err := client.Deploy(context.Background(), validRequest(), DeployOptions{MaxAttempts: 2, Interval: time.Millisecond})
	assert.ErrorIs(t, err, ErrPollTimeout)
	assert.Equal(t, []string{"/submit", "/deploy-from-db", "/status", "/status"}, handler.seen())
}

func TestDeployInvalidRequestMakesNoCalls(t *testing.T) {
	handler := &recordingHandler{serve: func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}}
	client, _ := newTestClient(t, handler)

	for _, req := range []DeploymentRequest{
		{Name: "", CPU: 1, Memory: 512, Storage: 1},
		{Name: "Not-Valid", CPU: 1, Memory: 512, Storage: 1},
		{Name: "alice", CPU: 0, Memory: 512, Storage: 1},
		{Name: "alice", CPU: 1, Memory: 0, Storage: 1},
		{Name: "alice", CPU: 1, Memory: 512, Storage: -2},
	} {
		err := client.Deploy(context.Background(), req, DeployOptions{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	}
	assert.Empty(t, handler.seen())
}
