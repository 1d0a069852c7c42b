// Package drivertest provides an in-memory driver.Session implementation
// for testing the wrapper without a live browser. Windows, elements,
// visibility and alerts are plain scriptable state, and tests can mutate
// it between polls through the OnFind hook.
package drivertest

import (
	"context"
	"fmt"
	"strings"

	"github.com/entrhq/webdrive/pkg/driver"
)

// Element is a scriptable driver.Element. Matching is structural: ID,
// Class (space-separated list), Name and Tag match their locator kinds,
// while XPath and CSS lookups match the literal expressions listed in
// Selectors.
type Element struct {
	Tag       string
	ID        string
	Class     string
	Name      string
	Selectors []string // xpath/css expressions this element answers to
	Content   string

	Displayed bool
	Stale     bool // all operations fail with driver.ErrStaleElement
	Children  []*Element

	Clicks int
}

var _ driver.Element = (*Element)(nil)

func (e *Element) stale() error {
	if e.Stale {
		return fmt.Errorf("%w: node removed from document", driver.ErrStaleElement)
	}
	return nil
}

func (e *Element) matches(by driver.By, value string) bool {
	switch by {
	case driver.ByID:
		return e.ID == value
	case driver.ByName:
		return e.Name == value
	case driver.ByTagName:
		return e.Tag == value
	case driver.ByClassName:
		for _, c := range strings.Fields(e.Class) {
			if c == value {
				return true
			}
		}
		return false
	case driver.ByXPath, driver.ByCSSSelector:
		for _, s := range e.Selectors {
			if s == value {
				return true
			}
		}
		return false
	}
	return false
}

func findIn(elms []*Element, by driver.By, value string) []driver.Element {
	var out []driver.Element
	for _, e := range elms {
		if e.matches(by, value) {
			out = append(out, e)
		}
		out = append(out, findIn(e.Children, by, value)...)
	}
	return out
}

// FindElements searches the element's subtree.
func (e *Element) FindElements(_ context.Context, by driver.By, value string) ([]driver.Element, error) {
	if err := e.stale(); err != nil {
		return nil, err
	}
	return findIn(e.Children, by, value), nil
}

func (e *Element) IsDisplayed(context.Context) (bool, error) {
	if err := e.stale(); err != nil {
		return false, err
	}
	return e.Displayed, nil
}

func (e *Element) GetAttribute(_ context.Context, name string) (string, error) {
	if err := e.stale(); err != nil {
		return "", err
	}
	switch name {
	case "id":
		return e.ID, nil
	case "class":
		return e.Class, nil
	case "name":
		return e.Name, nil
	case "innerHTML", "textContent":
		return e.Content, nil
	}
	return "", nil
}

func (e *Element) Click(context.Context) error {
	if err := e.stale(); err != nil {
		return err
	}
	e.Clicks++
	return nil
}

func (e *Element) Text(context.Context) (string, error) {
	if err := e.stale(); err != nil {
		return "", err
	}
	return e.Content, nil
}

// Window is one open window of a fake session.
type Window struct {
	Handle   string
	Title    string
	URL      string
	Elements []*Element
}

// Session is a scriptable driver.Session. The zero value is unusable;
// construct with NewSession.
type Session struct {
	windows []*Window
	current string

	// AlertOpen and AlertText script the modal dialog state. Accepted
	// and Dismissed count dismissals.
	AlertOpen bool
	AlertText string
	Accepted  int
	Dismissed int

	// OnFind, when set, runs before every root-level FindElements call.
	// Tests use it to mutate page state between wait polls.
	OnFind func()

	// OnAlertRead, when set, runs before every alert text read, letting
	// tests open an alert partway through a wait.
	OnAlertRead func()

	// FindCalls counts root-level FindElements calls.
	FindCalls int

	// Switches records every handle passed to SwitchToWindow, in order.
	Switches []string
}

var _ driver.Session = (*Session)(nil)

// NewSession creates a fake session focused on the first window.
func NewSession(windows ...*Window) *Session {
	s := &Session{windows: windows}
	if len(windows) > 0 {
		s.current = windows[0].Handle
	}
	return s
}

// Window returns the open window with the given handle, or nil.
func (s *Session) Window(handle string) *Window {
	for _, w := range s.windows {
		if w.Handle == handle {
			return w
		}
	}
	return nil
}

// CurrentWindow returns the focused window, or nil when focus points at a
// closed handle.
func (s *Session) CurrentWindow() *Window {
	return s.Window(s.current)
}

func (s *Session) focused() (*Window, error) {
	w := s.CurrentWindow()
	if w == nil {
		return nil, fmt.Errorf("%w: handle %q", driver.ErrNoSuchWindow, s.current)
	}
	return w, nil
}

func (s *Session) FindElements(_ context.Context, by driver.By, value string) ([]driver.Element, error) {
	s.FindCalls++
	if s.OnFind != nil {
		s.OnFind()
	}
	w, err := s.focused()
	if err != nil {
		return nil, err
	}
	return findIn(w.Elements, by, value), nil
}

func (s *Session) Navigate(_ context.Context, url string) error {
	w, err := s.focused()
	if err != nil {
		return err
	}
	w.URL = url
	return nil
}

func (s *Session) CurrentURL(context.Context) (string, error) {
	w, err := s.focused()
	if err != nil {
		return "", err
	}
	return w.URL, nil
}

func (s *Session) Title(context.Context) (string, error) {
	w, err := s.focused()
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (s *Session) WindowHandles(context.Context) ([]string, error) {
	handles := make([]string, len(s.windows))
	for i, w := range s.windows {
		handles[i] = w.Handle
	}
	return handles, nil
}

func (s *Session) CurrentWindowHandle(context.Context) (string, error) {
	return s.current, nil
}

func (s *Session) SwitchToWindow(_ context.Context, handle string) error {
	s.Switches = append(s.Switches, handle)
	if s.Window(handle) == nil {
		return fmt.Errorf("%w: handle %q", driver.ErrNoSuchWindow, handle)
	}
	s.current = handle
	return nil
}

func (s *Session) CloseWindow(context.Context) error {
	w, err := s.focused()
	if err != nil {
		return err
	}
	for i, open := range s.windows {
		if open == w {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	// Focus keeps pointing at the closed handle until the caller
	// switches away, mirroring real drivers.
	return nil
}

func (s *Session) Alert() driver.Alert {
	return &alert{s: s}
}

type alert struct {
	s *Session
}

func (a *alert) Text(context.Context) (string, error) {
	if a.s.OnAlertRead != nil {
		a.s.OnAlertRead()
	}
	if !a.s.AlertOpen {
		return "", driver.ErrNoAlertPresent
	}
	return a.s.AlertText, nil
}

func (a *alert) Accept(context.Context) error {
	if !a.s.AlertOpen {
		return driver.ErrNoAlertPresent
	}
	a.s.AlertOpen = false
	a.s.Accepted++
	return nil
}

func (a *alert) Dismiss(context.Context) error {
	if !a.s.AlertOpen {
		return driver.ErrNoAlertPresent
	}
	a.s.AlertOpen = false
	a.s.Dismissed++
	return nil
}
