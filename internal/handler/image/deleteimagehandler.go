// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/image"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteImageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ImageNameRequest
		if err := httpx.ParsePath(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := image.NewDeleteImageLogic(r.Context(), svcCtx)
		if err := l.DeleteImage(&req); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "image_deleted")
		}
	}
}
