package api

import (
	"context"
	"fmt"
	"time"

	"studeploy/pkg/logging"
)

// Poll defaults: 30 attempts at a fixed 2 second interval, so a full loop
// is bounded at one minute of wall-clock time.
const (
	DefaultPollAttempts = 30
	DefaultPollInterval = 2 * time.Second
)

// WaitForRunning polls the status endpoint for name until the Running
// phase is observed or the attempt budget runs out. The interval is fixed,
// no backoff. Every attempt goes through the gateway and is independently
// logged; attempts that error count as not-running. One terminal summary
// entry is appended on top of the per-attempt entries.
//
// Cancelling the context ends the loop early; that counts as exhaustion
// (false), never as success.
func (c *Client) WaitForRunning(ctx context.Context, name string, maxAttempts int, interval time.Duration) bool {
	if maxAttempts <= 0 {
		maxAttempts = DefaultPollAttempts
	}
	if interval < 0 {
		interval = DefaultPollInterval
	}

	summaryPath := "poll:" + name

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := c.PodStatus(ctx, name)
		if err == nil && res.Outcome == OutcomeRunning {
			logging.LogDebug("Poll %s: Running after %d attempt(s)", name, attempt)
			c.log.Append(summaryPath, string(OutcomeRunning), map[string]interface{}{
				"message":  fmt.Sprintf("%s reached Running after %d attempt(s)", name, attempt),
				"attempts": attempt,
			})
			return true
		}
		// The gateway already logged the attempt; nothing to record here.

		if attempt == maxAttempts {
			break
		}
		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logging.LogDebug("Poll %s: canceled after %d attempt(s)", name, attempt)
			c.log.Append(summaryPath, string(OutcomeFail), map[string]interface{}{
				"message":  fmt.Sprintf("%s poll canceled after %d of %d attempts", name, attempt, maxAttempts),
				"attempts": attempt,
			})
			return false
		case <-timer.C:
		}
	}

	logging.LogDebug("Poll %s: not Running after %d attempts", name, maxAttempts)
	c.log.Append(summaryPath, string(OutcomeFail), map[string]interface{}{
		"message":  fmt.Sprintf("%s did not reach Running after %d attempts", name, maxAttempts),
		"attempts": maxAttempts,
	})
	return false
}
