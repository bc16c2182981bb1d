package activity

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendOrder(t *testing.T) {
	log := NewLog()
	log.Append("/submit", "OK", nil)
	log.Append("/status?name=alice", "Pending", nil)
	log.Append("/status?name=alice", "Running", nil)

	entries := log.Entries()
	require.Len(t, entries, 3)
	// Most recent first
	assert.Equal(t, "Running", entries[0].Outcome)
	assert.Equal(t, "Pending", entries[1].Outcome)
	assert.Equal(t, "OK", entries[2].Outcome)
}

func TestLogCapacityEvictsOldest(t *testing.T) {
	log := NewLog()
	for i := 0; i < MaxEntries; i++ {
		log.Append(fmt.Sprintf("/call/%d", i), "OK", nil)
	}
	require.Equal(t, MaxEntries, log.Len())

	// The 51st append evicts exactly the oldest entry.
	log.Append("/call/50", "OK", nil)
	entries := log.Entries()
	require.Len(t, entries, MaxEntries)
	assert.Equal(t, "/call/50", entries[0].Path)
	assert.Equal(t, "/call/1", entries[MaxEntries-1].Path)

	for _, e := range entries {
		assert.NotEqual(t, "/call/0", e.Path)
	}
}

func TestLogStripsLastError(t *testing.T) {
	log := NewLog()
	payload := map[string]interface{}{
		"name":       "alice",
		"last_error": "kubectl blew up",
		"nested": map[string]interface{}{
			"last_error": "still here",
			"phase":      "Pending",
		},
	}
	entry := log.Append("/status?name=alice", "Pending", payload)

	logged, ok := entry.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, logged, "last_error")
	assert.Equal(t, "alice", logged["name"])

	nested, ok := logged["nested"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, nested, "last_error")
	assert.Equal(t, "Pending", nested["phase"])

	// The caller's payload is untouched.
	assert.Contains(t, payload, "last_error")
}

func TestLogStripsLastErrorInLists(t *testing.T) {
	// /admin/students returns a list of documents, each of which may carry
	// the field.
	log := NewLog()
	payload := []interface{}{
		map[string]interface{}{"name": "alice", "last_error": "Pod not found"},
		map[string]interface{}{"name": "bob"},
	}
	entry := log.Append("/admin/students", "OK", payload)

	logged, ok := entry.Payload.([]interface{})
	require.True(t, ok)
	require.Len(t, logged, 2)
	first, ok := logged[0].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, first, "last_error")
	assert.Equal(t, "alice", first["name"])
}

func TestLogConcurrentAppends(t *testing.T) {
	log := NewLog()

	var wg sync.WaitGroup
	const writers = 8
	const perWriter = 20
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Append(fmt.Sprintf("/call/%d/%d", w, i), "OK", nil)
			}
		}(w)
	}
	wg.Wait()

	// The cap holds under contention and every surviving entry is intact.
	assert.Equal(t, MaxEntries, log.Len())
	for _, e := range log.Entries() {
		assert.NotEmpty(t, e.ID)
		assert.NotEmpty(t, e.Timestamp)
		assert.NotEmpty(t, e.Path)
	}
}

func TestLogEntriesReturnsSnapshot(t *testing.T) {
	log := NewLog()
	log.Append("/submit", "OK", nil)

	snapshot := log.Entries()
	log.Append("/status?name=alice", "Running", nil)

	assert.Len(t, snapshot, 1)
	assert.Equal(t, 2, log.Len())
}
