package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"studeploy/pkg/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient wires a client to a fake backend and returns both plus the
// shared activity log.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *activity.Log) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	log := activity.NewLog()
	return NewClient(srv.URL, log), log
}

func TestClientCallSuccessLogsOnce(t *testing.T) {
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"student":"alice","status":"queued"}`))
	}))

	res, err := client.Call(context.Background(), http.MethodPost, "/submit", map[string]string{"name": "alice"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, res.Outcome)
	assert.Equal(t, http.StatusOK, res.Status)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "/submit", entries[0].Path)
	assert.Equal(t, string(OutcomeOK), entries[0].Outcome)
}

func TestClientCallAPIErrorAfterLogging(t *testing.T) {
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Insufficient cluster resources"}`))
	}))

	res, err := client.Call(context.Background(), http.MethodPost, "/submit", nil)
	assert.Nil(t, res)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "/submit", apiErr.Path)

	// The entry was written before the error was raised.
	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, string(OutcomeFail), entries[0].Outcome)
}

func TestClientCallNetworkErrorStillLogs(t *testing.T) {
	log := activity.NewLog()
	// Nothing listens here.
	client := NewClient("http://127.0.0.1:1", log)

	res, err := client.Call(context.Background(), http.MethodGet, "/status?name=alice", nil)
	assert.Nil(t, res)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "/status?name=alice", netErr.Path)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, string(OutcomeFail), entries[0].Outcome)
}

func TestClientCallStatusMappingBeatsHTTPSuccess(t *testing.T) {
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"student":"ghost","status":"Not Found"}`))
	}))

	res, err := client.Call(context.Background(), http.MethodGet, "/status?name=ghost", nil)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFail, res.Outcome)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, string(OutcomeFail), entries[0].Outcome)
}

func TestClientCallStripsLastErrorFromLoggedPayload(t *testing.T) {
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"alice","status":"pending","last_error":"CrashLoopBackOff"}`))
	}))

	res, err := client.Call(context.Background(), http.MethodGet, "/status?name=alice", nil)
	require.NoError(t, err)

	// Raw body keeps the field for the caller...
	body, ok := res.Body.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, body, "last_error")

	// ...but the logged payload never carries it.
	entries := log.Entries()
	require.Len(t, entries, 1)
	logged, ok := entries[0].Payload.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, logged, "last_error")
}

func TestClientCallDegradesNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	}))

	res, err := client.Call(context.Background(), http.MethodGet, "/status?name=alice", nil)
	require.NoError(t, err)
	assert.Equal(t, "plain text, not json", res.Body)
	assert.Equal(t, OutcomeOK, res.Outcome)
}

func TestClientWithAdminKeyAttachesHeader(t *testing.T) {
	var seenKey string
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenKey = r.Header.Get(AdminKeyHeader)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	privileged := client.WithAdminKey("s3cret")
	_, err := privileged.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "s3cret", seenKey)

	// The base client stays unprivileged.
	_, err = client.ListStudents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, seenKey)

	// Both write to the same log.
	assert.Equal(t, 2, log.Len())
}

func TestClientEndpointPathsEscapeNames(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Write([]byte(`{}`))
	}))

	_, err := client.PodStatus(context.Background(), "alice bob")
	require.NoError(t, err)
	assert.Equal(t, "/status?name=alice+bob", gotPath)
}
