// Package browser implements the webdrive convenience layer over a
// driver.Session: shorthand element lookup, visibility-aware waiting,
// window management and alert handling.
//
// A Browser wraps one live session. It holds no state of its own beyond
// configuration; every element, window and alert reference is re-derived
// from the session on each call. The session is a single shared mutable
// resource, so callers must serialize all calls against one Browser
// themselves.
package browser

import (
	"context"
	"time"

	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/logging"
	"github.com/entrhq/webdrive/pkg/selector"
	"github.com/entrhq/webdrive/pkg/wait"
)

// Options configures a Browser.
type Options struct {
	// Timeout is the default budget for the WaitFor* operations.
	// Zero means wait.DefaultTimeout.
	Timeout time.Duration

	// PollInterval is the pause between wait attempts. Zero means
	// wait.DefaultInterval.
	PollInterval time.Duration

	// Logger receives debug output. Nil means no logging.
	Logger *logging.Logger
}

// Browser is the convenience wrapper around a driver session.
type Browser struct {
	session      driver.Session
	timeout      time.Duration
	pollInterval time.Duration
	log          *logging.Logger
}

// New wraps a driver session. The zero Options give a 10 second default
// wait timeout, 500ms polling and no logging.
func New(session driver.Session, opts Options) *Browser {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = wait.DefaultTimeout
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = wait.DefaultInterval
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop("browser")
	}
	return &Browser{
		session:      session,
		timeout:      timeout,
		pollInterval: interval,
		log:          log,
	}
}

// Session exposes the wrapped driver session for operations the wrapper
// does not cover.
func (b *Browser) Session() driver.Session {
	return b.session
}

// Navigate loads the given URL, which may be a path relative to the
// current page's origin.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	current, err := b.session.CurrentURL(ctx)
	if err != nil {
		return err
	}
	absolute, err := BuildURL(current, url, "")
	if err != nil {
		return err
	}
	b.log.Debugf("navigate %s", absolute)
	return b.session.Navigate(ctx, absolute)
}

// Elements returns every element matching the query, searching from the
// document root. No match is an empty slice, not an error.
func (b *Browser) Elements(ctx context.Context, q selector.Query) ([]driver.Element, error) {
	return selector.All(ctx, b.session, q)
}

// Element returns the first element matching the query, searching from
// the document root. Fails with driver.ErrNoSuchElement when nothing
// matches.
func (b *Browser) Element(ctx context.Context, q selector.Query) (driver.Element, error) {
	return selector.First(ctx, b.session, q)
}

// Click resolves the first element matching the query and clicks it.
func (b *Browser) Click(ctx context.Context, q selector.Query) error {
	elm, err := b.Element(ctx, q)
	if err != nil {
		return err
	}
	b.log.Debugf("click %s", q.String())
	return elm.Click(ctx)
}

// Wait returns a waiter bound to the given timeout, for arbitrary
// conditions against the session. A zero timeout uses the browser's
// default.
//
//	err := b.Wait(0).Until(ctx, func(ctx context.Context) (bool, error) {
//		elms, err := b.Elements(ctx, selector.Query{ID: "items"})
//		return len(elms) > 10, err
//	}, "more than 10 items")
func (b *Browser) Wait(timeout time.Duration) *wait.Waiter {
	if timeout <= 0 {
		timeout = b.timeout
	}
	w := wait.New(timeout)
	w.Interval = b.pollInterval
	return w
}
