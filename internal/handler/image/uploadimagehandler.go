// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package image

import (
	"errors"
	"net/http"

	"github.com/joeblew999/plat-mailcraft/internal/handler/redirect"
	"github.com/joeblew999/plat-mailcraft/internal/logic/image"
	"github.com/joeblew999/plat-mailcraft/internal/svc"
)

func UploadImageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := image.NewUploadImageLogic(r.Context(), svcCtx)

		file, header, err := r.FormFile("image")
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
				_, err = l.UploadImage("", nil)
			}
			redirect.Error(w, r, err)
			return
		}
		defer file.Close()

		if _, err := l.UploadImage(header.Filename, file); err != nil {
			redirect.Error(w, r, err)
		} else {
			redirect.Success(w, r, "image_uploaded")
		}
	}
}
