// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/internal/ui"
	"github.com/starfederation/datastar-go/datastar"
)

func LivePreviewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var signals types.LivePreviewSignals
		if err := datastar.ReadSignals(r, &signals); err != nil {
			ui.PatchPreview(w, r, "", errorx.ErrBadRequest("invalid preview request"))
			return
		}

		l := template.NewPreviewTemplateLogic(r.Context(), svcCtx)
		html, err := l.LivePreview(&signals)
		ui.PatchPreview(w, r, html, err)
	}
}
