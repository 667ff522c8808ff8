// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
)

func SaveTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TemplateForm
		if err := redirect.Form(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := template.NewSaveTemplateLogic(r.Context(), svcCtx)
		if _, err := l.SaveTemplate(&req); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "saved")
		}
	}
}
