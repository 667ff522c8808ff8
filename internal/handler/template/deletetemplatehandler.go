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

func DeleteTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TemplateIdRequest
		if err := redirect.PathID(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := template.NewDeleteTemplateLogic(r.Context(), svcCtx)
		if err := l.DeleteTemplate(&req); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "deleted")
		}
	}
}
