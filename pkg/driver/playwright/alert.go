package playwright

import (
	"context"
	"fmt"

	pw "github.com/playwright-community/playwright-go"

	"github.com/entrhq/webdrive/pkg/driver"
)

// alert implements driver.Alert on the session's pending dialog. The
// handle is always constructible; operations fail with ErrNoAlertPresent
// while no dialog is parked.
type alert struct {
	s *Session
}

var _ driver.Alert = (*alert)(nil)

// pending returns the parked dialog without clearing it.
func (a *alert) pending() (pw.Dialog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if a.s.dialog == nil {
		return nil, driver.ErrNoAlertPresent
	}
	return a.s.dialog, nil
}

// take removes and returns the parked dialog.
func (a *alert) take() (pw.Dialog, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if a.s.dialog == nil {
		return nil, driver.ErrNoAlertPresent
	}
	dialog := a.s.dialog
	a.s.dialog = nil
	return dialog, nil
}

func (a *alert) Text(context.Context) (string, error) {
	dialog, err := a.pending()
	if err != nil {
		return "", err
	}
	return dialog.Message(), nil
}

func (a *alert) Accept(context.Context) error {
	dialog, err := a.take()
	if err != nil {
		return err
	}
	if err := dialog.Accept(); err != nil {
		return fmt.Errorf("accept dialog: %w", err)
	}
	return nil
}

func (a *alert) Dismiss(context.Context) error {
	dialog, err := a.take()
	if err != nil {
		return err
	}
	if err := dialog.Dismiss(); err != nil {
		return fmt.Errorf("dismiss dialog: %w", err)
	}
	return nil
}
