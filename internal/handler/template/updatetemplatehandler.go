// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UpdateTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id types.TemplateIdRequest
		if err := redirect.PathID(r, &id); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		var req types.TemplateForm
		if err := redirect.Form(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := template.NewUpdateTemplateLogic(r.Context(), svcCtx)
		if err := l.UpdateTemplate(&id, &req); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "updated")
		}
	}
}
