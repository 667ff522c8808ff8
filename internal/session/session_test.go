package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	errorx.RegisterErrorHandler()
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore("test-secret", time.Hour)
	require.NoError(t, err)
	return s
}

// capture runs one request through Middleware and returns the session it saw and the response.
func capture(s *Store, r *http.Request) (*Session, *httptest.ResponseRecorder) {
	var seen *Session
	w := httptest.NewRecorder()
	s.Middleware(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	})(w, r)
	return seen, w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func TestNewStoreRequiresSecret(t *testing.T) {
	_, err := NewStore("", time.Hour)
	assert.Error(t, err)
}

func TestMiddlewareIssuesCookie(t *testing.T) {
	s := newTestStore(t)

	sess, w := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, sess)
	assert.Len(t, sess.Token, 32)

	c := sessionCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.True(t, strings.HasPrefix(c.Value, sess.ID+"."))
}

func TestTokenStablePerSession(t *testing.T) {
	s := newTestStore(t)

	first, w := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	c := sessionCookie(t, w)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	second, w2 := capture(s, r)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Token, second.Token)
	assert.Empty(t, w2.Result().Cookies())
}

func TestTokenDistinctAcrossSessions(t *testing.T) {
	s := newTestStore(t)

	a, _ := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	b, _ := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestForgedCookieReplaced(t *testing.T) {
	s := newTestStore(t)
	first, w := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	c := sessionCookie(t, w)

	other, err := NewStore("other-secret", time.Hour)
	require.NoError(t, err)

	for _, value := range []string{
		first.ID + ".deadbeef",
		other.sign(first.ID),
		"not-a-uuid." + s.mac("not-a-uuid"),
		first.ID,
	} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: c.Name, Value: value})
		sess, w := capture(s, r)
		assert.NotEqual(t, first.ID, sess.ID, value)
		sessionCookie(t, w)
	}
}

func guardedRequest(t *testing.T, s *Store, token string) (called bool, code int) {
	t.Helper()
	sess, w := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))
	c := sessionCookie(t, w)

	form := url.Values{"title": {"x"}}
	switch token {
	case "valid":
		form.Set(FormField, sess.Token)
	case "":
	default:
		form.Set(FormField, token)
	}

	r := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.AddCookie(c)

	rec := httptest.NewRecorder()
	s.Middleware(s.Guard(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))(rec, r)
	return called, rec.Code
}

func TestGuardAcceptsValidToken(t *testing.T) {
	called, code := guardedRequest(t, newTestStore(t), "valid")
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, code)
}

func TestGuardRejectsMissingToken(t *testing.T) {
	called, code := guardedRequest(t, newTestStore(t), "")
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGuardRejectsWrongToken(t *testing.T) {
	called, code := guardedRequest(t, newTestStore(t), "00112233445566778899aabbccddeeff")
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGuardAcceptsHeaderToken(t *testing.T) {
	s := newTestStore(t)
	sess, w := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))

	r := httptest.NewRequest(http.MethodPost, "/delete/1", nil)
	r.AddCookie(sessionCookie(t, w))
	r.Header.Set(HeaderName, sess.Token)

	called := false
	rec := httptest.NewRecorder()
	s.Middleware(s.Guard(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))(rec, r)
	assert.True(t, called)
}

func TestGuardRejectsTokenOfAnotherSession(t *testing.T) {
	s := newTestStore(t)
	other, _ := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))

	called, code := guardedRequest(t, s, other.Token)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestGuardWithoutMiddleware(t *testing.T) {
	s := newTestStore(t)
	rec := httptest.NewRecorder()
	s.Guard(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	})(rec, httptest.NewRequest(http.MethodPost, "/save", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTokenFromContext(t *testing.T) {
	s := newTestStore(t)
	sess, _ := capture(s, httptest.NewRequest(http.MethodGet, "/", nil))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Token(r.Context()))
	assert.NotEmpty(t, sess.Token)
}
