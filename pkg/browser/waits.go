package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/selector"
)

// WaitOptions tunes a single WaitFor* call. The zero value uses the
// browser's default timeout and a generated message.
type WaitOptions struct {
	// Timeout overrides the browser default for this call only.
	Timeout time.Duration

	// Message describes the awaited condition in the timeout error.
	Message string
}

func (o WaitOptions) message(fallback string) string {
	if o.Message != "" {
		return o.Message
	}
	return fallback
}

// WaitForElement polls until at least one element matches the query, then
// resolves and returns the first match. A lookup that finds nothing counts
// as "not yet"; invalid queries and driver failures abort the wait
// immediately.
func (b *Browser) WaitForElement(ctx context.Context, q selector.Query, opts WaitOptions) (driver.Element, error) {
	w := b.Wait(opts.Timeout)
	cond := func(ctx context.Context) (bool, error) {
		_, err := selector.First(ctx, b.session, q)
		if errors.Is(err, driver.ErrNoSuchElement) {
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if err := w.Until(ctx, cond, opts.message(fmt.Sprintf("element %s to exist", q.String()))); err != nil {
		return nil, err
	}
	// Resolve again rather than holding a reference across the last poll
	// gap; the page may have swapped the node in the meantime.
	return selector.First(ctx, b.session, q)
}

// WaitForElementVisible polls until at least one element matches the
// query and at least one of the matches reports visible. A stale element
// during the visibility check counts as "not yet" rather than failing the
// wait; the page is allowed to mutate under the poll. On success the
// query is resolved again and the first match returned, which is not
// necessarily the element that was observed visible.
func (b *Browser) WaitForElementVisible(ctx context.Context, q selector.Query, opts WaitOptions) (driver.Element, error) {
	w := b.Wait(opts.Timeout)
	cond := func(ctx context.Context) (bool, error) {
		elms, err := selector.All(ctx, b.session, q)
		if errors.Is(err, driver.ErrNoSuchElement) {
			// The scope parent has not rendered yet.
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if len(elms) == 0 {
			w.WithLast(fmt.Errorf("%w: %s", driver.ErrNoSuchElement, q.String()))
			return false, nil
		}
		visible, err := anyDisplayed(ctx, elms)
		if errors.Is(err, driver.ErrStaleElement) {
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if !visible {
			w.WithLast(fmt.Errorf("element %s matched but not visible", q.String()))
		}
		return visible, nil
	}
	if err := w.Until(ctx, cond, opts.message(fmt.Sprintf("element %s to be visible", q.String()))); err != nil {
		return nil, err
	}
	return selector.First(ctx, b.session, q)
}

// WaitForElementHidden polls until no element matches the query or every
// match reports not visible. A stale element during the check counts as
// "not yet hidden": during a mutation race the safe answer is that the
// element may still be showing, so the wait keeps polling instead of
// declaring the element gone.
func (b *Browser) WaitForElementHidden(ctx context.Context, q selector.Query, opts WaitOptions) error {
	w := b.Wait(opts.Timeout)
	cond := func(ctx context.Context) (bool, error) {
		elms, err := selector.All(ctx, b.session, q)
		if errors.Is(err, driver.ErrNoSuchElement) {
			// A missing scope parent is indistinguishable from a slow
			// render, so it counts as not yet hidden, not as gone.
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if len(elms) == 0 {
			return true, nil
		}
		visible, err := anyDisplayed(ctx, elms)
		if errors.Is(err, driver.ErrStaleElement) {
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if visible {
			w.WithLast(fmt.Errorf("element %s still visible", q.String()))
		}
		return !visible, nil
	}
	return w.Until(ctx, cond, opts.message(fmt.Sprintf("element %s to be hidden", q.String())))
}

// anyDisplayed reports whether at least one element is visible. The first
// IsDisplayed error stops the scan.
func anyDisplayed(ctx context.Context, elms []driver.Element) (bool, error) {
	for _, elm := range elms {
		displayed, err := elm.IsDisplayed(ctx)
		if err != nil {
			return false, err
		}
		if displayed {
			return true, nil
		}
	}
	return false, nil
}
