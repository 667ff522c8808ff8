package ui

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	g "maragu.dev/gomponents"
)

// Render writes a page as HTML.
func Render(w http.ResponseWriter, r *http.Request, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logx.WithContext(r.Context()).Errorf("render page: %v", err)
	}
}

// PatchPreview streams the live preview result to the editor as datastar signals.
func PatchPreview(w http.ResponseWriter, r *http.Request, html string, err error) {
	signals := map[string]any{
		"previewHtml":  html,
		"previewError": "",
	}
	if err != nil {
		signals = map[string]any{"previewError": err.Error()}
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.WithContext(r.Context()).Errorf("datastar patch signals: %v", err)
	}
}
