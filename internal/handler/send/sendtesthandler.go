// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package send

import (
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/send"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
	"github.com/joeblew999/plat-mailcraft/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func SendTestHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id types.TemplateIdRequest
		if err := redirect.PathID(r, &id); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		var req types.SendTestRequest
		if err := redirect.Form(r, &req); err != nil {
			redirect.Error(w, r, err)
			return
		}

		l := send.NewSendTestLogic(r.Context(), svcCtx)
		if _, err := l.SendTest(&id, &req); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "test_queued")
		}
	}
}
