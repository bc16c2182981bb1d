package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"studeploy/pkg/activity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForRunningExhaustsAttempts(t *testing.T) {
	var calls int32
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"student":"x","status":"Pending"}`))
	}))

	ok := client.WaitForRunning(context.Background(), "x", 3, 0)
	assert.False(t, ok)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))

	// 3 per-attempt entries from the gateway plus one failure summary.
	entries := log.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "poll:x", entries[0].Path)
	assert.Equal(t, string(OutcomeFail), entries[0].Outcome)
	summary, ok2 := entries[0].Payload.(map[string]interface{})
	require.True(t, ok2)
	assert.Equal(t, 3, summary["attempts"])
}

func TestWaitForRunningStopsOnFirstRunning(t *testing.T) {
	var calls int32
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		if n >= 2 {
			w.Write([]byte(`{"student":"x","status":"Running"}`))
			return
		}
		w.Write([]byte(`{"student":"x","status":"pending"}`))
	}))

	ok := client.WaitForRunning(context.Background(), "x", 5, 0)
	assert.True(t, ok)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "poll:x", entries[0].Path)
	assert.Equal(t, string(OutcomeRunning), entries[0].Outcome)
}

func TestWaitForRunningErrorsCountAsNotRunning(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"no such student"}`))
	}))

	ok := client.WaitForRunning(context.Background(), "ghost", 2, 0)
	assert.False(t, ok)
}

func TestWaitForRunningCancelEndsEarly(t *testing.T) {
	client, log := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"student":"x","status":"Pending"}`))
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok := client.WaitForRunning(ctx, "x", 10, time.Hour)
	assert.False(t, ok)

	// One attempt, then the cancellation summary.
	entries := log.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "poll:x", entries[0].Path)
	assert.Equal(t, string(OutcomeFail), entries[0].Outcome)
}

func TestWaitForRunningZeroAttemptsUsesDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"student":"x","status":"Running"}`))
	}))
	defer srv.Close()
	client := NewClient(srv.URL, activity.NewLog())

	// Running on the first attempt, so the default budget never matters
	// beyond being positive.
	assert.True(t, client.WaitForRunning(context.Background(), "x", 0, 0))
}
