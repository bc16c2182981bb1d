package api

import "strings"

// Outcome is the canonical result of any gateway call. Every raw backend
// response is normalized into one of these four values before anything
// else looks at it.
type Outcome string

const (
	OutcomeRunning Outcome = "Running"
	OutcomePending Outcome = "Pending"
	OutcomeOK      Outcome = "OK"
	OutcomeFail    Outcome = "Fail"
)

// deployTriggerPath is the endpoint that accepts a deployment for a
// persisted record. A success response from it means "accepted", not
// "running", hence the Pending reclassification below.
const deployTriggerPath = "/deploy-from-db"

// NormalizeOutcome maps a raw response to an Outcome.
//
// The status-field mapping takes precedence over plain HTTP success: a 200
// response can still represent a logical failure (e.g. status "not found").
// Status values outside the mapping table fall through to the HTTP rules.
func NormalizeOutcome(path string, httpOK bool, body interface{}) Outcome {
	if status, ok := statusField(body); ok {
		switch strings.ToLower(status) {
		case "running":
			return OutcomeRunning
		case "pending", "containercreating":
			return OutcomePending
		case "not found", "error":
			return OutcomeFail
		}
	}
	if !httpOK {
		return OutcomeFail
	}
	// A successful deploy trigger that reports nothing has been accepted
	// but not yet observed running.
	if isDeployTrigger(path) && !hasStatusField(body) {
		return OutcomePending
	}
	return OutcomeOK
}

// statusField extracts a string "status" field from a parsed JSON object.
func statusField(body interface{}) (string, bool) {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return "", false
	}
	raw, ok := obj["status"]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

// hasStatusField reports whether the body is an object carrying a "status"
// key of any type. A non-string status still counts as carrying one.
func hasStatusField(body interface{}) bool {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return false
	}
	_, has := obj["status"]
	return has
}

func isDeployTrigger(path string) bool {
	trimmed := path
	if i := strings.IndexByte(trimmed, '?'); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed == deployTriggerPath
}
