package redirect

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	errorx.RegisterErrorHandler()
	os.Exit(m.Run())
}

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, httptest.NewRequest(http.MethodPost, "/save", nil), "saved")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?success=saved", w.Header().Get("Location"))
}

func TestErrorBadRequestRedirects(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, httptest.NewRequest(http.MethodPost, "/save", nil), errorx.ErrBadRequest("title is required"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/?error=title+is+required", w.Header().Get("Location"))
}

func TestErrorOthersPassThrough(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, httptest.NewRequest(http.MethodPost, "/update/9", nil), errorx.ErrNotFound("template not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	Error(w, httptest.NewRequest(http.MethodPost, "/save", nil), errors.New("db gone"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
