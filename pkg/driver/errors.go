package driver

import "errors"

// Sentinel errors shared by all driver bindings and the wrapper built on
// top of them. Bindings wrap these with fmt.Errorf("...: %w", ...) so that
// callers can test with errors.Is while still seeing backend detail.
var (
	// ErrInvalidQuery reports selector misuse: zero or more than one
	// locator field populated where exactly one is required.
	ErrInvalidQuery = errors.New("invalid element query")

	// ErrNoSuchElement reports that no element matched a lookup that
	// required at least one match.
	ErrNoSuchElement = errors.New("no such element")

	// ErrNoSuchWindow reports that a window handle is unknown or that no
	// open window matched a search.
	ErrNoSuchWindow = errors.New("no such window")

	// ErrNoAlertPresent reports that an alert operation ran with no modal
	// dialog open.
	ErrNoAlertPresent = errors.New("no alert present")

	// ErrStaleElement reports that an element reference outlived its DOM
	// node. Page mutation between resolution and use is the usual cause.
	ErrStaleElement = errors.New("stale element reference")
)
