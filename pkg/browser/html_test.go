package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/webdrive/pkg/driver/drivertest"
)

func TestPageHTML(t *testing.T) {
	ctx := context.Background()

	t.Run("returns body innerHTML", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{
			Handle: "main",
			Elements: []*drivertest.Element{
				{Tag: "body", Content: "<h1>Hello</h1>"},
			},
		})
		b := newTestBrowser(session)

		html, err := b.PageHTML(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello</h1>", html)
	})

	t.Run("no body yields empty string", func(t *testing.T) {
		session := drivertest.NewSession(&drivertest.Window{Handle: "main"})
		b := newTestBrowser(session)

		html, err := b.PageHTML(ctx)
		require.NoError(t, err)
		assert.Empty(t, html)
	})
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "blocks become lines",
			raw:  "<div>first</div><div>second</div>",
			want: "first\nsecond",
		},
		{
			name: "scripts and styles are dropped",
			raw:  "<p>keep</p><script>var x = 1;</script><style>p{}</style>",
			want: "keep",
		},
		{
			name: "inline markup joins with collapsed whitespace",
			raw:  "<p>Hello   <b>big</b>\n world</p>",
			want: "Hello big world",
		},
		{
			name: "nested structure",
			raw:  "<ul><li>one</li><li>two</li></ul>",
			want: "one\ntwo",
		},
		{
			name: "comments are ignored",
			raw:  "<p>text<!-- hidden --></p>",
			want: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractText(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
