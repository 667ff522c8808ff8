// Package redirect sends form submissions back to the index with a status parameter.
package redirect

import (
	"net/http"
	"net/url"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// Success redirects to the index with success=status.
func Success(w http.ResponseWriter, r *http.Request, status string) {
	http.Redirect(w, r, "/?"+url.Values{"success": {status}}.Encode(), http.StatusFound)
}

// Error redirects invalid input back to the index with error=message.
// Other errors go through the registered httpx error handler.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	if msg, ok := errorx.IsBadRequest(err); ok {
		http.Redirect(w, r, "/?"+url.Values{"error": {msg}}.Encode(), http.StatusFound)
		return
	}
	httpx.ErrorCtx(r.Context(), w, err)
}

// Form parses the request into v, reporting failures as invalid input.
func Form(r *http.Request, v any) error {
	if err := httpx.Parse(r, v); err != nil {
		return errorx.ErrBadRequest(err.Error())
	}
	return nil
}

// PathID parses the :id path parameter. Anything but an integer is not found.
func PathID(r *http.Request, v any) error {
	if err := httpx.ParsePath(r, v); err != nil {
		return errorx.ErrNotFound("not found")
	}
	return nil
}
