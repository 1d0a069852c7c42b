package drivertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/webdrive/pkg/driver"
)

func TestElementMatching(t *testing.T) {
	session := NewSession(&Window{
		Handle: "w1",
		Elements: []*Element{
			{Tag: "div", ID: "panel", Class: "card wide", Children: []*Element{
				{Tag: "input", Name: "email", Selectors: []string{"//input[@name='email']"}},
			}},
		},
	})
	ctx := context.Background()

	tests := []struct {
		name  string
		by    driver.By
		value string
		count int
	}{
		{name: "by id", by: driver.ByID, value: "panel", count: 1},
		{name: "by class word", by: driver.ByClassName, value: "wide", count: 1},
		{name: "class substring does not match", by: driver.ByClassName, value: "wid", count: 0},
		{name: "by name in subtree", by: driver.ByName, value: "email", count: 1},
		{name: "by xpath literal", by: driver.ByXPath, value: "//input[@name='email']", count: 1},
		{name: "by tag", by: driver.ByTagName, value: "input", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elms, err := session.FindElements(ctx, tt.by, tt.value)
			require.NoError(t, err)
			assert.Len(t, elms, tt.count)
		})
	}
}

func TestStaleElementFailsOperations(t *testing.T) {
	elm := &Element{Tag: "div", ID: "old", Stale: true}
	ctx := context.Background()

	_, err := elm.IsDisplayed(ctx)
	assert.ErrorIs(t, err, driver.ErrStaleElement)
	_, err = elm.Text(ctx)
	assert.ErrorIs(t, err, driver.ErrStaleElement)
	assert.ErrorIs(t, elm.Click(ctx), driver.ErrStaleElement)
}

func TestWindowLifecycle(t *testing.T) {
	session := NewSession(
		&Window{Handle: "w1", Title: "one"},
		&Window{Handle: "w2", Title: "two"},
	)
	ctx := context.Background()

	require.NoError(t, session.SwitchToWindow(ctx, "w2"))
	require.NoError(t, session.CloseWindow(ctx))

	// Focus dangles on the closed handle until the caller switches away.
	_, err := session.Title(ctx)
	assert.ErrorIs(t, err, driver.ErrNoSuchWindow)

	require.NoError(t, session.SwitchToWindow(ctx, "w1"))
	title, err := session.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "one", title)
}
