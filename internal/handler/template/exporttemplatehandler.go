// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package template

import (
	"io"
	"mime"
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/template"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ExportTemplateHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TemplateIdRequest
		if err := redirect.PathID(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := template.NewExportTemplateLogic(r.Context(), svcCtx)
		resp, err := l.ExportTemplate(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			writeDownload(w, resp)
		}
	}
}

func ExportCurrentHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.TemplateForm
		if err := redirect.Form(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := template.NewExportTemplateLogic(r.Context(), svcCtx)
		resp, err := l.ExportCurrent(&req)
		if err != nil {
			redirect.Error(w, r, err)
		} else {
			writeDownload(w, resp)
		}
	}
}

func writeDownload(w http.ResponseWriter, file *types.ExportFile) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": file.Filename})
	if disposition == "" {
		disposition = `attachment; filename="email_template.html"`
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", disposition)
	io.WriteString(w, file.Html)
}
