// Copyright 2026 The Forcekit Authors
// Licensed under the AGPLv3, see LICENCE file for details.

// Package lro implements the submit/poll/report pattern for operations
// that complete asynchronously on a remote system and are tracked by an
// opaque request id. The engine holds no state of its own: every poll
// re-queries the remote system, which is the sole source of truth.
package lro

import (
	"context"
	"fmt"
	"time"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/juju/retry"
)

// Status is the remote-reported state of a long-running operation.
type Status string

const (
	StatusQueued     Status = "QUEUED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusSuccess    Status = "SUCCESS"
	StatusError      Status = "ERROR"
)

// Terminal reports whether no further status transitions can occur.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Failed reports whether the operation reached a failure state.
func (s Status) Failed() bool {
	return s == StatusError
}

// Title returns the human form of the status, eg "In Progress".
func (s Status) Title() string {
	switch s {
	case StatusQueued:
		return "Queued"
	case StatusInProgress:
		return "In Progress"
	case StatusSuccess:
		return "Success"
	case StatusError:
		return "Error"
	}
	return string(s)
}

// Handle identifies one submitted operation.
type Handle struct {
	// ID is the opaque token issued by the remote system at submission
	// time. It never changes once issued.
	ID string

	// SubmittedAt is when the submission call returned.
	SubmittedAt time.Time
}

// Poller performs a single status check for the operation with the
// given id. Implementations issue exactly one remote call per
// invocation and do not block beyond that round trip.
type Poller[R any] interface {
	Poll(ctx context.Context, id string) (R, error)
}

// PollerFunc adapts a function to the Poller interface.
type PollerFunc[R any] func(ctx context.Context, id string) (R, error)

// Poll implements Poller.
func (f PollerFunc[R]) Poll(ctx context.Context, id string) (R, error) {
	return f(ctx, id)
}

// ErrCancelled is returned by Wait when the caller aborts waiting.
// The remote operation is left running; cancellation never attempts
// to abort the remote side.
const ErrCancelled = errors.ConstError("wait cancelled")

// TimeoutError reports an exhausted wait budget. The operation is
// still running remotely and can be reported on later using its id.
type TimeoutError struct {
	ID         string
	LastStatus Status
}

// Error implements error.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out waiting for operation %q (last status %s)", e.ID, e.LastStatus.Title())
}

// IsTimeout reports whether err was caused by an exhausted wait budget.
func IsTimeout(err error) bool {
	_, ok := errors.Cause(err).(*TimeoutError)
	return ok
}

// errStillRunning marks a poll that returned a non-terminal status.
var errStillRunning = errors.New("operation still running")

// Waiter drives repeated polling of a single operation until it
// reaches a terminal status or the wait budget runs out. Polling is
// strictly sequential, one outstanding remote call at a time.
type Waiter[R any] struct {
	// Poller performs the individual status checks.
	Poller Poller[R]

	// Status extracts the operation status from a polled record.
	Status func(R) Status

	// Clock is the time source for the poll interval and budget.
	Clock clock.Clock

	// Interval is how long to sleep between polls.
	Interval time.Duration
}

// Wait polls the operation identified by op until its status is
// terminal. A budget <= 0 performs no polls at all and returns initial
// unchanged, so callers can submit without blocking.
//
// When the budget runs out before a terminal status is seen, the last
// observed record is returned together with a *TimeoutError; the
// caller can report "still in progress, check later" rather than a
// hard failure. Cancelling ctx returns the last record and
// ErrCancelled. Remote errors from an individual poll abort the wait
// and propagate unchanged; the engine does not retry them.
func (w Waiter[R]) Wait(ctx context.Context, op Handle, initial R, budget time.Duration) (R, error) {
	if budget <= 0 {
		return initial, nil
	}
	last := initial
	err := retry.Call(retry.CallArgs{
		Func: func() error {
			record, err := w.Poller.Poll(ctx, op.ID)
			if err != nil {
				return errors.Trace(err)
			}
			last = record
			if w.Status(record).Terminal() {
				return nil
			}
			return errStillRunning
		},
		IsFatalError: func(err error) bool {
			return errors.Cause(err) != errStillRunning
		},
		Delay:       w.Interval,
		MaxDuration: budget,
		Clock:       w.Clock,
		Stop:        ctx.Done(),
	})
	switch {
	case err == nil:
		return last, nil
	case retry.IsRetryStopped(err):
		return last, ErrCancelled
	case retry.IsDurationExceeded(err) || retry.IsAttemptsExceeded(err):
		return last, &TimeoutError{ID: op.ID, LastStatus: w.Status(last)}
	case ctx.Err() != nil:
		// The poll itself failed because the caller gave up.
		return last, ErrCancelled
	}
	return last, errors.Trace(err)
}
