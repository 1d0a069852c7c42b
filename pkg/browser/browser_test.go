package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/webdrive/pkg/driver"
	"github.com/entrhq/webdrive/pkg/driver/drivertest"
	"github.com/entrhq/webdrive/pkg/selector"
)

// newTestBrowser wraps a fake session with tight polling so wait tests
// finish quickly.
func newTestBrowser(session *drivertest.Session) *Browser {
	return New(session, Options{
		Timeout:      50 * time.Millisecond,
		PollInterval: time.Millisecond,
	})
}

func TestElementLookup(t *testing.T) {
	session := drivertest.NewSession(&drivertest.Window{
		Handle: "main",
		URL:    "https://a.com/",
		Elements: []*drivertest.Element{
			{Tag: "button", ID: "save", Displayed: true},
			{Tag: "button", ID: "cancel", Displayed: true},
		},
	})
	b := newTestBrowser(session)
	ctx := context.Background()

	elms, err := b.Elements(ctx, selector.Query{TagName: "button"})
	require.NoError(t, err)
	assert.Len(t, elms, 2)

	elm, err := b.Element(ctx, selector.Query{ID: "cancel"})
	require.NoError(t, err)
	id, err := elm.GetAttribute(ctx, "id")
	require.NoError(t, err)
	assert.Equal(t, "cancel", id)

	_, err = b.Element(ctx, selector.Query{ID: "missing"})
	assert.ErrorIs(t, err, driver.ErrNoSuchElement)
}

func TestClick(t *testing.T) {
	save := &drivertest.Element{Tag: "button", ID: "save", Displayed: true}
	session := drivertest.NewSession(&drivertest.Window{
		Handle:   "main",
		Elements: []*drivertest.Element{save},
	})
	b := newTestBrowser(session)

	require.NoError(t, b.Click(context.Background(), selector.Query{ID: "save"}))
	assert.Equal(t, 1, save.Clicks)

	err := b.Click(context.Background(), selector.Query{ID: "missing"})
	assert.ErrorIs(t, err, driver.ErrNoSuchElement)
}

func TestNavigateResolvesRelativeURL(t *testing.T) {
	session := drivertest.NewSession(&drivertest.Window{
		Handle: "main",
		URL:    "https://a.com/x?y=1",
	})
	b := newTestBrowser(session)

	require.NoError(t, b.Navigate(context.Background(), "/dashboard"))
	assert.Equal(t, "https://a.com/dashboard", session.CurrentWindow().URL)

	require.NoError(t, b.Navigate(context.Background(), "https://other.com/"))
	assert.Equal(t, "https://other.com/", session.CurrentWindow().URL)
}
