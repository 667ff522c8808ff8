// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/session"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/joeblew999/plat-mailcraft/internal/ui"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func EditTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TemplateIdRequest
		if err := redirect.PathID(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := template.NewEditTemplateLogic(r.Context(), svcCtx)
		resp, err := l.EditTemplate(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			ui.Render(w, r, ui.IndexPage(resp, session.Token(r.Context())))
		}
	}
}
