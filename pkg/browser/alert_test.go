package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/driver/drivertest"
	"github.com/entrhq/webdrive/pkg/wait"
)

func TestAlertHandle(t *testing.T) {
	session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
	b := newTestBrowser(session)
	ctx := context.Background()

	// The handle is always constructible; reading is what fails.
	alert := b.Alert()
	_, err := alert.Text(ctx)
	assert.ErrorIs(t, err, driver.ErrNoAlertPresent)

	session.AlertOpen = true
	session.AlertText = "are you sure?"
	text, err := alert.Text(ctx)
	require.NoError(t, err)
	assert.Equal(t, "are you sure?", text)
}

func TestWaitForAlert(t *testing.T) {
	t.Run("returns once an alert opens", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		reads := 0
		session.OnAlertRead = func() {
			reads++
			if reads == 3 {
				session.AlertOpen = true
				session.AlertText = "saved"
			}
		}
		b := newTestBrowser(session)

		alert, err := b.WaitForAlert(context.Background(), 0)
		require.NoError(t, err)
		text, err := alert.Text(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "saved", text)
	})

	t.Run("times out when no alert opens", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		b := newTestBrowser(session)

		_, err := b.WaitForAlert(context.Background(), 0)
		var timeoutErr *wait.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.ErrorIs(t, err, driver.ErrNoAlertPresent)
	})
}

func TestCloseAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts the open alert", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		session.AlertOpen = true
		b := newTestBrowser(session)

		require.NoError(t, b.CloseAlert(ctx, false))
		assert.Equal(t, 1, session.Accepted)
		assert.False(t, session.AlertOpen)
	})

	t.Run("fails without an alert", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		b := newTestBrowser(session)

		err := b.CloseAlert(ctx, false)
		assert.ErrorIs(t, err, driver.ErrNoAlertPresent)
	})

	t.Run("ignoreErrors swallows every failure", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		b := newTestBrowser(session)

		assert.NoError(t, b.CloseAlert(ctx, true))
	})
}
