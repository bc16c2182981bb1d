package api

import (
	"errors"
	"fmt"
)

// Sentinel error for a poll loop that exhausted its attempt budget
var ErrPollTimeout = errors.New("deployment did not reach Running before the attempt budget was exhausted")

// Sentinel error for a login probe that returned something other than a record list
var ErrLoginFailed = errors.New("login failed")

// NetworkError wraps a transport-level failure: the request never produced
// an HTTP response.
type NetworkError struct {
	Path string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError represents a non-2xx HTTP response. Body holds the parsed
// response body (or raw text when the body was not JSON).
type APIError struct {
	Path       string
	StatusCode int
	Body       interface{}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error calling %s: HTTP %d", e.Path, e.StatusCode)
}

// AuthError wraps a gateway error raised by the privileged login probe.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login probe rejected: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
