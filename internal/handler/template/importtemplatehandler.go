// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"errors"
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
)

func ImportTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ImportRequest
		if err := redirect.Form(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := template.NewImportTemplateLogic(r.Context(), svcCtx)

		file, header, err := r.FormFile("html_file")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				_, err = l.ImportTemplate(&req, "", nil)
			}
			redirect.Error(w, r, err)
			return
		}
		defer file.Close()

		if _, err := l.ImportTemplate(&req, header.Filename, file); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "imported")
		}
	}
}
