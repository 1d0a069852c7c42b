package browser

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"

	"github.com/entrhq/webdrive/pkg/driver"
)

// WindowQuery names a window by exactly one of its handle, its exact
// title, or its exact URL. A URL may be a path relative to the current
// window's origin; it is resolved at call time, before any switching.
type WindowQuery struct {
	Handle string
	Title  string
	URL    string
}

// WindowDescriptor is a point-in-time view of one open window, derived
// live from the session and never cached.
type WindowDescriptor struct {
	Handle string
	Title  string
	URL    string
}

// WindowNotFoundError reports that no open window matched a title/URL
// scan. It unwraps to driver.ErrNoSuchWindow.
type WindowNotFoundError struct {
	Title string
	URL   string
}

func (e *WindowNotFoundError) Error() string {
	return fmt.Sprintf("window (title=%q, url=%q) not found", e.Title, e.URL)
}

func (e *WindowNotFoundError) Unwrap() error { return driver.ErrNoSuchWindow }

// SwitchToWindow moves focus to the window named by the query. A handle
// switches directly. A title or URL scans every open window in the
// driver's enumeration order, switching into each to inspect it, and
// stays on the first match. On a failed scan focus is left on the last
// window tested, not restored.
func (b *Browser) SwitchToWindow(ctx context.Context, q WindowQuery) error {
	if q.Handle != "" {
		return b.session.SwitchToWindow(ctx, q.Handle)
	}

	target := q.URL
	if target != "" {
		current, err := b.session.CurrentURL(ctx)
		if err != nil {
			return err
		}
		target, err = BuildURL(current, q.URL, "")
		if err != nil {
			return err
		}
	}

	handles, err := b.session.WindowHandles(ctx)
	if err != nil {
		return err
	}
	for _, handle := range handles {
		if err := b.session.SwitchToWindow(ctx, handle); err != nil {
			return err
		}
		if q.Title != "" {
			title, err := b.session.Title(ctx)
			if err != nil {
				return err
			}
			if title == q.Title {
				b.log.Debugf("switched to window %s (title=%q)", handle, title)
				return nil
			}
		}
		if target != "" {
			url, err := b.session.CurrentURL(ctx)
			if err != nil {
				return err
			}
			if url == target {
				b.log.Debugf("switched to window %s (url=%s)", handle, url)
				return nil
			}
		}
	}
	return &WindowNotFoundError{Title: q.Title, URL: q.URL}
}

// SwitchToWindowMatching scans open windows like SwitchToWindow but
// matches the glob pattern against either the window title or its URL,
// staying on the first window that matches.
func (b *Browser) SwitchToWindowMatching(ctx context.Context, pattern string) error {
	g, err := glob.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: bad window pattern %q: %v", driver.ErrInvalidQuery, pattern, err)
	}

	handles, err := b.session.WindowHandles(ctx)
	if err != nil {
		return err
	}
	for _, handle := range handles {
		if err := b.session.SwitchToWindow(ctx, handle); err != nil {
			return err
		}
		title, err := b.session.Title(ctx)
		if err != nil {
			return err
		}
		url, err := b.session.CurrentURL(ctx)
		if err != nil {
			return err
		}
		if g.Match(title) || g.Match(url) {
			b.log.Debugf("switched to window %s matching %q", handle, pattern)
			return nil
		}
	}
	return &WindowNotFoundError{Title: pattern, URL: pattern}
}

// CloseWindow closes the window named by the query without losing the
// caller's place: it records the focused window, switches to the target,
// closes it, and switches back. Closing the currently focused window
// through this path leaves the recorded handle dangling and the final
// switch fails with whatever the driver reports.
func (b *Browser) CloseWindow(ctx context.Context, q WindowQuery) error {
	main, err := b.session.CurrentWindowHandle(ctx)
	if err != nil {
		return err
	}
	if err := b.SwitchToWindow(ctx, q); err != nil {
		return err
	}
	if err := b.session.CloseWindow(ctx); err != nil {
		return err
	}
	return b.session.SwitchToWindow(ctx, main)
}

// CloseOtherWindows closes every open window except the focused one and
// returns focus to it. The handle list is snapshotted once at entry so
// windows closed along the way are neither skipped nor processed twice.
func (b *Browser) CloseOtherWindows(ctx context.Context) error {
	main, err := b.session.CurrentWindowHandle(ctx)
	if err != nil {
		return err
	}
	handles, err := b.session.WindowHandles(ctx)
	if err != nil {
		return err
	}
	for _, handle := range handles {
		if handle == main {
			continue
		}
		if err := b.session.SwitchToWindow(ctx, handle); err != nil {
			return err
		}
		if err := b.session.CloseWindow(ctx); err != nil {
			return err
		}
	}
	return b.session.SwitchToWindow(ctx, main)
}

// Windows enumerates every open window, switching into each to read its
// title and URL, and restores focus to the window that was current at
// entry.
func (b *Browser) Windows(ctx context.Context) ([]WindowDescriptor, error) {
	main, err := b.session.CurrentWindowHandle(ctx)
	if err != nil {
		return nil, err
	}
	handles, err := b.session.WindowHandles(ctx)
	if err != nil {
		return nil, err
	}

	descriptors := make([]WindowDescriptor, 0, len(handles))
	for _, handle := range handles {
		if err := b.session.SwitchToWindow(ctx, handle); err != nil {
			return nil, err
		}
		title, err := b.session.Title(ctx)
		if err != nil {
			return nil, err
		}
		url, err := b.session.CurrentURL(ctx)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, WindowDescriptor{Handle: handle, Title: title, URL: url})
	}

	if err := b.session.SwitchToWindow(ctx, main); err != nil {
		return nil, err
	}
	return descriptors, nil
}
