// Package driver defines the capability interfaces a browser driver must
// implement for the webdrive wrapper, along with the locator strategies and
// the shared error taxonomy.
//
// The package splits the driver surface into two interfaces:
//
//  1. SearchScope: anything elements can be searched under (the document
//     root or a single element)
//  2. Session: the full browser session, adding navigation, window and
//     alert operations on top of root-level search
//
// Elements implement only SearchScope plus element-local operations; the
// session implements both. Concrete bindings live in subpackages (see
// driver/playwright); tests use the in-memory fake in driver/drivertest.
package driver

import "context"

// By identifies a locator strategy for element lookup. The values mirror
// the W3C WebDriver locator strategy names.
type By string

const (
	ByID          By = "id"
	ByClassName   By = "class name"
	ByName        By = "name"
	ByTagName     By = "tag name"
	ByXPath       By = "xpath"
	ByCSSSelector By = "css selector"
)

// SearchScope is the capability to search for elements beneath some root.
// Both the session (document root) and individual elements implement it.
type SearchScope interface {
	// FindElements returns all elements matching the locator beneath this
	// scope, in the order the underlying driver reports them (document
	// order for most backends). No match is an empty slice, not an error.
	FindElements(ctx context.Context, by By, value string) ([]Element, error)
}

// Element is a live reference to a node in the browser's rendered document.
// The reference becomes stale when page mutation removes or replaces the
// node; operations on a stale element fail with ErrStaleElement.
type Element interface {
	SearchScope

	// IsDisplayed reports whether the element is currently visible.
	IsDisplayed(ctx context.Context) (bool, error)

	// GetAttribute returns the value of the named attribute, or an empty
	// string when the attribute is absent.
	GetAttribute(ctx context.Context, name string) (string, error)

	// Click clicks the element.
	Click(ctx context.Context) error

	// Text returns the element's visible text content.
	Text(ctx context.Context) (string, error)
}

// Alert is a handle on the session's modal dialog (alert, confirm or
// prompt). The handle itself is always constructible; reading Text fails
// with ErrNoAlertPresent when no dialog is open.
type Alert interface {
	// Text returns the dialog's message text.
	Text(ctx context.Context) (string, error)

	// Accept dismisses the dialog positively (OK).
	Accept(ctx context.Context) error

	// Dismiss dismisses the dialog negatively (Cancel).
	Dismiss(ctx context.Context) error
}

// Session is a live browser session: root-level element search plus the
// navigation, window and alert primitives the wrapper builds on. A session
// is a single shared mutable resource (active window focus, set of open
// windows); callers must serialize access themselves.
type Session interface {
	SearchScope

	// Navigate loads the given URL in the current window.
	Navigate(ctx context.Context, url string) error

	// CurrentURL returns the URL of the focused window.
	CurrentURL(ctx context.Context) (string, error)

	// Title returns the title of the focused window.
	Title(ctx context.Context) (string, error)

	// WindowHandles returns the handles of all open windows, in
	// driver-defined enumeration order.
	WindowHandles(ctx context.Context) ([]string, error)

	// CurrentWindowHandle returns the handle of the focused window.
	CurrentWindowHandle(ctx context.Context) (string, error)

	// SwitchToWindow moves focus to the window with the given handle.
	// Switching to an unknown or closed handle fails with ErrNoSuchWindow.
	SwitchToWindow(ctx context.Context, handle string) error

	// CloseWindow closes the focused window. Focus afterwards is
	// driver-defined; callers switch explicitly.
	CloseWindow(ctx context.Context) error

	// Alert returns a handle on the session's modal dialog. The handle is
	// valid to construct even when no dialog is open.
	Alert() Alert
}
