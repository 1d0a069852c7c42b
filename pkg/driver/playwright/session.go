// Package playwright binds the webdrive driver interfaces to a real
// browser through playwright-community/playwright-go. Each page of one
// browser context acts as a window, identified by a generated handle, and
// page dialog events back the alert primitives.
package playwright

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	pw "github.com/playwright-community/playwright-go"

	"github.com/entrhq/webdrive/pkg/config"
	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/logging"
)

// Options configures a launched session.
type Options struct {
	// Browser selects the binary: "chromium" (default), "firefox" or
	// "webkit".
	Browser string

	// Headless runs the browser without a window.
	Headless bool

	// BaseURL, when set, is loaded in the first window before Launch
	// returns.
	BaseURL string

	// Logger receives debug output. Nil disables logging.
	Logger *logging.Logger
}

// FromConfig derives launch options from a loaded configuration.
func FromConfig(cfg config.Config, log *logging.Logger) Options {
	return Options{
		Browser:  cfg.Browser,
		Headless: cfg.Headless,
		BaseURL:  cfg.BaseURL,
		Logger:   log,
	}
}

// Session implements driver.Session on a playwright browser context.
type Session struct {
	mu sync.Mutex

	runner  *pw.Playwright
	browser pw.Browser
	bctx    pw.BrowserContext

	// handles maps window handles to pages; order tracks the enumeration
	// order handed to WindowHandles.
	handles map[string]pw.Page
	order   []string
	current string

	// dialog holds the pending modal dialog, if any. Playwright delivers
	// dialogs as events; the handler parks them here until the alert
	// handle accepts or dismisses.
	dialog pw.Dialog

	log *logging.Logger
}

var _ driver.Session = (*Session)(nil)

// Launch starts playwright, launches a browser and opens one page.
// Callers own the returned session and must Close it.
func Launch(opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop("playwright")
	}

	runner, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browserType := runner.Chromium
	switch opts.Browser {
	case "", "chromium":
	case "firefox":
		browserType = runner.Firefox
	case "webkit":
		browserType = runner.WebKit
	default:
		_ = runner.Stop()
		return nil, fmt.Errorf("unknown browser %q", opts.Browser)
	}

	browser, err := browserType.Launch(pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(opts.Headless),
	})
	if err != nil {
		_ = runner.Stop()
		return nil, fmt.Errorf("launch %s: %w", opts.Browser, err)
	}

	bctx, err := browser.NewContext()
	if err != nil {
		_ = browser.Close()
		_ = runner.Stop()
		return nil, fmt.Errorf("new browser context: %w", err)
	}

	s := &Session{
		runner:  runner,
		browser: browser,
		bctx:    bctx,
		handles: make(map[string]pw.Page),
		log:     log,
	}

	// Windows opened by the page itself (window.open, target=_blank) show
	// up as page events and get handles on arrival.
	bctx.OnPage(func(page pw.Page) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.adoptPage(page)
	})

	page, err := bctx.NewPage()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("open page: %w", err)
	}

	s.mu.Lock()
	handle := s.adoptPage(page)
	s.current = handle
	s.mu.Unlock()

	if opts.BaseURL != "" {
		if _, err := page.Goto(opts.BaseURL); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("open base url %s: %w", opts.BaseURL, err)
		}
	}

	return s, nil
}

// adoptPage registers a page under a fresh handle and hooks its dialog
// events. Callers hold s.mu.
func (s *Session) adoptPage(page pw.Page) string {
	for handle, known := range s.handles {
		if known == page {
			return handle
		}
	}
	handle := uuid.New().String()
	s.handles[handle] = page
	s.order = append(s.order, handle)
	page.OnDialog(func(dialog pw.Dialog) {
		s.mu.Lock()
		s.dialog = dialog
		s.mu.Unlock()
		s.log.Debugf("dialog opened: %s %q", dialog.Type(), dialog.Message())
	})
	s.log.Debugf("window %s opened", handle)
	return handle
}

// page returns the focused page.
func (s *Session) page() (pw.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	page, ok := s.handles[s.current]
	if !ok || page.IsClosed() {
		return nil, fmt.Errorf("%w: handle %q", driver.ErrNoSuchWindow, s.current)
	}
	return page, nil
}

// Close tears down the browser context, the browser and the playwright
// runner.
func (s *Session) Close() error {
	var firstErr error
	if s.bctx != nil {
		if err := s.bctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.runner != nil {
		if err := s.runner.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// FindElements implements root-level element search on the focused page.
func (s *Session) FindElements(ctx context.Context, by driver.By, value string) ([]driver.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := s.page()
	if err != nil {
		return nil, err
	}
	sel, err := toSelector(by, value)
	if err != nil {
		return nil, err
	}
	found, err := page.QuerySelectorAll(sel)
	if err != nil {
		return nil, mapError(err)
	}
	return wrapElements(found), nil
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	page, err := s.page()
	if err != nil {
		return err
	}
	if _, err := page.Goto(url); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Session) CurrentURL(context.Context) (string, error) {
	page, err := s.page()
	if err != nil {
		return "", err
	}
	return page.URL(), nil
}

func (s *Session) Title(context.Context) (string, error) {
	page, err := s.page()
	if err != nil {
		return "", err
	}
	title, err := page.Title()
	if err != nil {
		return "", mapError(err)
	}
	return title, nil
}

func (s *Session) WindowHandles(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var handles []string
	for _, handle := range s.order {
		if page, ok := s.handles[handle]; ok && !page.IsClosed() {
			handles = append(handles, handle)
		}
	}
	return handles, nil
}

func (s *Session) CurrentWindowHandle(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, nil
}

func (s *Session) SwitchToWindow(_ context.Context, handle string) error {
	s.mu.Lock()
	page, ok := s.handles[handle]
	if !ok || page.IsClosed() {
		s.mu.Unlock()
		return fmt.Errorf("%w: handle %q", driver.ErrNoSuchWindow, handle)
	}
	s.current = handle
	s.mu.Unlock()

	if err := page.BringToFront(); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Session) CloseWindow(context.Context) error {
	page, err := s.page()
	if err != nil {
		return err
	}
	if err := page.Close(); err != nil {
		return mapError(err)
	}
	return nil
}

func (s *Session) Alert() driver.Alert {
	return &alert{s: s}
}
