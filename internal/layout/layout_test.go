package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, l := range All {
		got, err := Parse(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
		assert.NotEmpty(t, got.Description())
	}
	assert.Len(t, All, 10)
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "template0", "template11", "Template1", "../template1", "template1.html"} {
		_, err := Parse(name)
		assert.ErrorIs(t, err, ErrUnknownLayout, name)
		assert.False(t, Valid(name), name)
	}
}

func TestRenderEveryLayout(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	fields := Fields{
		Header:     "Welcome aboard",
		Body:       "Thanks for joining",
		ButtonText: "Get started",
		ButtonLink: "https://example.com/start",
		Footer:     "Example Inc.",
	}

	for _, l := range All {
		t.Run(l.String(), func(t *testing.T) {
			html, err := r.Render(l, fields)
			require.NoError(t, err)
			assert.Contains(t, strings.ToLower(html), "<!doctype html>")
			assert.Contains(t, html, "Welcome aboard")
			assert.Contains(t, html, "Thanks for joining")
			assert.Contains(t, html, "Get started")
			assert.Contains(t, html, "https://example.com/start")
			assert.Contains(t, html, "Example Inc.")
		})
	}
}

func TestRenderOmitsButtonWithoutText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	html, err := r.Render(Template3, Fields{Body: "Hi", ButtonLink: "https://example.com/unused"})
	require.NoError(t, err)
	assert.Contains(t, html, "Hi")
	assert.NotContains(t, html, "https://example.com/unused")
}

func TestRenderNamed(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	_, err = r.RenderNamed("template42", Fields{})
	assert.ErrorIs(t, err, ErrUnknownLayout)

	_, err = r.Render(Layout("../../etc/passwd"), Fields{})
	assert.ErrorIs(t, err, ErrUnknownLayout)

	html, err := r.RenderNamed("template7", Fields{Header: "Issue 12"})
	require.NoError(t, err)
	assert.Contains(t, html, "Issue 12")
}
