// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/joeblew999/plat-mailcraft/internal/logic/image"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ServeImageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ImageNameRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound("image not found"))
			return
		}

		l := image.NewServeImageLogic(r.Context(), svcCtx)
		file, err := l.OpenImage(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}
		defer file.Close()

		info, err := file.Stat()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, errorx.ErrNotFound("image not found"))
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=3600")
		http.ServeContent(w, r, info.Name(), info.ModTime(), file)
	}
}
