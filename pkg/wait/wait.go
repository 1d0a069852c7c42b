// Package wait implements the polling primitive the wrapper's blocking
// operations build on: run a condition repeatedly until it reports done,
// sleeping a fixed interval between attempts, and fail with a TimeoutError
// once the budget is spent.
package wait

import (
	"context"
	"fmt"
	"time"
)

const (
	// DefaultTimeout bounds a wait when the caller does not override it.
	DefaultTimeout = 10 * time.Second

	// DefaultInterval is the pause between condition attempts.
	DefaultInterval = 500 * time.Millisecond
)

// Condition is polled by Until. Returning done=true ends the wait
// successfully. Returning an error aborts the wait immediately; conditions
// that want to treat an error as "not yet" must swallow it themselves.
type Condition func(ctx context.Context) (done bool, err error)

// TimeoutError reports that a wait exhausted its budget. Message is the
// caller-supplied description of what was being waited for; Last is the
// error the condition most recently swallowed into "not yet", when the
// condition chose to record one via WithLast.
type TimeoutError struct {
	Message string
	Timeout time.Duration
	Last    error
}

func (e *TimeoutError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "condition not met"
	}
	if e.Last != nil {
		return fmt.Sprintf("timed out after %s: %s (last state: %v)", e.Timeout, msg, e.Last)
	}
	return fmt.Sprintf("timed out after %s: %s", e.Timeout, msg)
}

func (e *TimeoutError) Unwrap() error { return e.Last }

// Waiter polls conditions against a fixed timeout and interval. The zero
// value is not useful; construct with New.
type Waiter struct {
	Timeout  time.Duration
	Interval time.Duration

	// last records the most recent "not yet" state a condition reported
	// through WithLast, surfaced in the TimeoutError.
	last error
}

// New returns a Waiter bound to the given timeout. A zero or negative
// timeout falls back to DefaultTimeout; the interval starts at
// DefaultInterval and can be adjusted on the returned value.
func New(timeout time.Duration) *Waiter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Waiter{Timeout: timeout, Interval: DefaultInterval}
}

// WithLast lets a condition record the falsy state behind a "not yet"
// verdict, typically the lookup error it swallowed. The most recent value
// is carried on the TimeoutError when the wait expires.
func (w *Waiter) WithLast(err error) {
	w.last = err
}

// Until polls cond until it reports done, the timeout elapses, or the
// context is cancelled. Timeout is wall-clock, measured from entry. The
// condition is always attempted at least once, and once more after the
// deadline passes so a condition that became true during the final sleep
// still succeeds.
func (w *Waiter) Until(ctx context.Context, cond Condition, message string) error {
	interval := w.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	deadline := time.Now().Add(w.Timeout)

	for {
		done, err := cond(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if time.Now().After(deadline) {
			return &TimeoutError{Message: message, Timeout: w.Timeout, Last: w.last}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
