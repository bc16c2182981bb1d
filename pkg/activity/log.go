package activity

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxEntries caps the log; appending beyond it evicts the oldest entry.
const MaxEntries = 50

// Key stripped from every logged payload. The backend attaches internal
// diagnostics under it and they must not show up in the visible trail.
const strippedKey = "last_error"

// Entry is one immutable record of a past operation.
type Entry struct {
	ID        string
	Timestamp string
	Path      string
	Outcome   string
	Payload   interface{}
}

// Log is a bounded, ordered record of past gateway calls, most recent
// first. It is process-local: created at startup, discarded at exit.
// Appends may race (overlapping poll loops, re-clicked actions), so all
// access goes through the mutex.
type Log struct {
	mu      sync.Mutex
	entries []Entry
}

// NewLog creates an empty activity log.
func NewLog() *Log {
	return &Log{entries: make([]Entry, 0, MaxEntries)}
}

// Append records an operation at the front of the log, evicting the oldest
// entry when the log is full. The payload is deep-copied with every
// last_error field removed, so later mutation of the caller's value cannot
// change what was logged.
func (l *Log) Append(path, outcome string, payload interface{}) Entry {
	entry := Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Path:      path,
		Outcome:   outcome,
		Payload:   stripLastError(payload),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return entry
}

// Entries returns a snapshot of the log, most recent first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// stripLastError returns a copy of the payload with every last_error key
// removed. The strip is recursive: /admin/students returns a list of
// documents and each one may carry the field.
func stripLastError(payload interface{}) interface{} {
	switch v := payload.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			if k == strippedKey {
				continue
			}
			out[k] = stripLastError(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = stripLastError(val)
		}
		return out
	default:
		return payload
	}
}
