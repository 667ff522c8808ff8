package ui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func samplePage() *types.IndexPage {
	return &types.IndexPage{
		Templates: []types.TemplateItem{{Id: 4, Title: "Welcome", Subject: "Hi", TemplateName: "template3"}},
		Images:    []types.ImageItem{{Filename: "0011223344556677_logo.png", Url: "/static/uploads/0011223344556677_logo.png"}},
		Layouts: []types.LayoutOption{
			{Name: "template1", Description: "Classic"},
			{Name: "template3", Description: "Hero"},
		},
	}
}

func TestIndexPageEmbedsCSRFToken(t *testing.T) {
	html := render(t, IndexPage(samplePage(), "tok123"))

	assert.Contains(t, html, `name="csrf_token" value="tok123"`)
	assert.Contains(t, html, `action="/save"`)
	assert.Contains(t, html, `action="/delete/4"`)
	assert.Contains(t, html, `action="/send_test/4"`)
	assert.Contains(t, html, `action="/delete_image/0011223344556677_logo.png"`)
	assert.Contains(t, html, "Welcome")
}

func TestIndexPageEditMode(t *testing.T) {
	p := samplePage()
	p.Edit = &types.TemplateItem{Id: 4, Title: "Welcome", Body: "Hi <b>there</b>", TemplateName: "template3"}

	html := render(t, IndexPage(p, "tok"))
	assert.Contains(t, html, `action="/update/4"`)
	assert.Contains(t, html, "Update Template")
	assert.Contains(t, html, "Hi &lt;b&gt;there&lt;/b&gt;")
	assert.Contains(t, html, `<option value="template3" selected>`)
}

func TestStatusBanner(t *testing.T) {
	assert.Contains(t, render(t, StatusBanner("saved", "")), "Template saved.")
	assert.Contains(t, render(t, StatusBanner("", "title is required")), "title is required")
	assert.Empty(t, render(t, StatusBanner("unknown", "")))
}

func TestViewPage(t *testing.T) {
	html := render(t, ViewPage(&types.ViewPage{
		Template: types.TemplateItem{Id: 2, Title: "Promo", TemplateName: "template2"},
		Html:     "<p>hello</p>",
		Issues:   []string{"Missing DOCTYPE declaration"},
		Events:   []types.SendEventItem{{EventType: "sent", Recipient: "ada@example.com"}},
	}))

	assert.Contains(t, html, `srcdoc="&lt;p&gt;hello&lt;/p&gt;"`)
	assert.Contains(t, html, "Missing DOCTYPE declaration")
	assert.Contains(t, html, "ada@example.com")
}

func TestRender(t *testing.T) {
	w := httptest.NewRecorder()
	Render(w, httptest.NewRequest(http.MethodGet, "/", nil), StatusBanner("saved", ""))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Template saved.")
}
