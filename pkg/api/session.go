package api

import (
	"context"
	"sync"

	"studeploy/pkg/logging"
)

// Session tracks the admin mode of the client. It starts unauthenticated
// and flips only on a successful login probe; logout is the only other
// transition. The credential lives in memory for the life of the process
// and is never persisted or logged.
type Session struct {
	mu            sync.Mutex
	base          *Client
	key           string
	authenticated bool
	records       []StudentRecord
}

// NewSession creates an unauthenticated session over the given client.
func NewSession(base *Client) *Session {
	return &Session{base: base}
}

// Login probes the record listing with the supplied credential. The
// session becomes authenticated only when the probe succeeds and returns a
// record list; any other response, including a well-formed error body,
// leaves it unauthenticated.
//
// A probe that fails at the HTTP layer was already logged by the gateway,
// so only the 2xx-but-wrong-shape case appends the generic login-failed
// entry here.
func (s *Session) Login(ctx context.Context, key string) error {
	probe := s.base.WithAdminKey(key)
	res, err := probe.ListStudents(ctx)
	if err != nil {
		logging.LogError("Login probe rejected: %v", err)
		return &AuthError{Err: err}
	}

	records, ok := StudentRecordsFromBody(res.Body)
	if !ok {
		logging.LogError("Login probe returned a non-list body")
		s.base.Log().Append("/admin/students", string(OutcomeFail), map[string]interface{}{
			"message": "login failed",
		})
		return ErrLoginFailed
	}

	s.mu.Lock()
	s.key = key
	s.authenticated = true
	s.records = records
	s.mu.Unlock()
	logging.LogDebug("Admin session authenticated (%d records)", len(records))
	return nil
}

// Logout drops the credential and returns the session to unauthenticated.
func (s *Session) Logout() {
	s.mu.Lock()
	s.key = ""
	s.authenticated = false
	s.records = nil
	s.mu.Unlock()
	logging.LogDebug("Admin session logged out")
}

// Authenticated reports whether the session holds a working credential.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Client returns the gateway to use for the session's calls: the
// privileged copy when authenticated, the plain client otherwise.
func (s *Session) Client() *Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.authenticated {
		return s.base.WithAdminKey(s.key)
	}
	return s.base
}

// Refresh re-fetches the record listing and replaces the cached copy.
func (s *Session) Refresh(ctx context.Context) ([]StudentRecord, error) {
	res, err := s.Client().ListStudents(ctx)
	if err != nil {
		return nil, err
	}
	records, ok := StudentRecordsFromBody(res.Body)
	if !ok {
		return nil, ErrLoginFailed
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return records, nil
}

// Records returns the last fetched listing without hitting the network.
func (s *Session) Records() []StudentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StudentRecord, len(s.records))
	copy(out, s.records)
	return out
}
