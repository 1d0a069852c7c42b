package browser

import (
	"context"
	"errors"
	"time"

	"github.com/entrhq/webdrive/pkg/driver"
)

// Alert returns a handle on the session's modal dialog. No check is made
// that a dialog is actually open; reading its text is what fails with
// driver.ErrNoAlertPresent when there is none.
func (b *Browser) Alert() driver.Alert {
	return b.session.Alert()
}

// WaitForAlert polls until a modal dialog is open, probing by reading the
// alert text, and returns the alert handle. A zero timeout uses the
// browser's default.
func (b *Browser) WaitForAlert(ctx context.Context, timeout time.Duration) (driver.Alert, error) {
	alert := b.session.Alert()
	w := b.Wait(timeout)
	cond := func(ctx context.Context) (bool, error) {
		_, err := alert.Text(ctx)
		if errors.Is(err, driver.ErrNoAlertPresent) {
			w.WithLast(err)
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
	if err := w.Until(ctx, cond, "alert to be present"); err != nil {
		return nil, err
	}
	return alert, nil
}

// CloseAlert accepts the open modal dialog. With no dialog open it fails
// with driver.ErrNoAlertPresent, unless ignoreErrors is set, in which
// case every error from the operation is swallowed. Tests commonly run
// CloseAlert(ctx, true) in teardown to clear any dialog a case left
// behind.
func (b *Browser) CloseAlert(ctx context.Context, ignoreErrors bool) error {
	err := b.session.Alert().Accept(ctx)
	if err != nil && ignoreErrors {
		b.log.Debugf("ignoring alert close failure: %v", err)
		return nil
	}
	return err
}
