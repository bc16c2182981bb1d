package api

import (
	"context"
	"time"
)

// DeployOptions tunes the poll phase of the deploy pipeline. Zero values
// mean the poll defaults.
type DeployOptions struct {
	MaxAttempts int
	Interval    time.Duration
}

// Deploy runs the full pipeline for a request: validate, submit the record,
// trigger deployment from it, then poll until Running. The pipeline
// short-circuits on the first failure; there is no client-side rollback
// and no retry of an earlier step. The individual gateway calls have
// already logged their outcomes by the time an error surfaces here.
func (c *Client) Deploy(ctx context.Context, req DeploymentRequest, opts DeployOptions) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := c.Submit(ctx, req); err != nil {
		return err
	}
	if _, err := c.DeployFromDB(ctx, req.Name); err != nil {
		return err
	}
	interval := opts.Interval
	if interval == 0 {
		interval = DefaultPollInterval
	}
	if !c.WaitForRunning(ctx, req.Name, opts.MaxAttempts, interval) {
		return ErrPollTimeout
	}
	return nil
}
