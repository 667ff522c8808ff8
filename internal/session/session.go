// Package session binds each browser to a signed session cookie and a per-session CSRF token.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joeblew999/plat-mailcraft/internal/errorx"
	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

const (
	// CookieName is the session cookie.
	CookieName = "mailcraft_session"
	// FormField carries the CSRF token in form posts.
	FormField = "csrf_token"
	// HeaderName carries the CSRF token in script requests.
	HeaderName = "X-CSRF-Token"

	tokenBytes = 16
	maxMemory  = 32 << 20
)

// Session is the per-request view of a browser session.
type Session struct {
	ID    string
	Token string
}

type ctxKey struct{}

// Store issues session cookies and holds one CSRF token per session.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
	tokens *collection.Cache
}

// Option configures a Store.
type Option func(*Store)

// WithSecureCookie marks the session cookie Secure.
func WithSecureCookie(secure bool) Option {
	return func(s *Store) {
		s.secure = secure
	}
}

// NewStore creates a Store signing cookies with secret. Tokens expire after ttl without use.
func NewStore(secret string, ttl time.Duration, opts ...Option) (*Store, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}

	tokens, err := collection.NewCache(ttl, collection.WithName("csrf-tokens"))
	if err != nil {
		return nil, fmt.Errorf("create token cache: %w", err)
	}

	s := &Store{
		secret: []byte(secret),
		ttl:    ttl,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Middleware attaches the request's session to its context, issuing a new cookie
// when the request has none or a forged one.
func (s *Store) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.verify(r)
		if !ok {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    s.sign(id),
				Path:     "/",
				MaxAge:   int(s.ttl.Seconds()),
				HttpOnly: true,
				Secure:   s.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		token, err := s.token(id)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("issue csrf token: %v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, &Session{ID: id, Token: token})
		next(w, r.WithContext(ctx))
	}
}

// Guard rejects requests whose CSRF token does not match the session token.
// It must run inside Middleware.
func (s *Store) Guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := FromContext(r.Context())
		if sess == nil {
			forbid(w, r)
			return
		}

		submitted := r.Header.Get(HeaderName)
		if submitted == "" {
			if err := r.ParseMultipartForm(maxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
				forbid(w, r)
				return
			}
			submitted = r.FormValue(FormField)
		}

		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(sess.Token)) != 1 {
			logx.WithContext(r.Context()).Infow("csrf check failed",
				logx.Field("path", r.URL.Path),
				logx.Field("present", submitted != ""))
			forbid(w, r)
			return
		}

		next(w, r)
	}
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(ctxKey{}).(*Session)
	return sess
}

// Token returns the CSRF token of the session in ctx, or the empty string.
func Token(ctx context.Context) string {
	if sess := FromContext(ctx); sess != nil {
		return sess.Token
	}
	return ""
}

func forbid(w http.ResponseWriter, r *http.Request) {
	httpx.ErrorCtx(r.Context(), w, errorx.ErrForbidden("invalid or missing csrf token"))
}

func (s *Store) token(id string) (string, error) {
	v, err := s.tokens.Take(id, func() (any, error) {
		b := make([]byte, tokenBytes)
		if _, err := rand.Read(b); err != nil {
			return nil, err
		}
		return hex.EncodeToString(b), nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s *Store) sign(id string) string {
	return id + "." + s.mac(id)
}

func (s *Store) verify(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	id, sig, found := strings.Cut(c.Value, ".")
	if !found {
		return "", false
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.mac(id))) {
		return "", false
	}
	return id, true
}

func (s *Store) mac(id string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(id))
	return hex.EncodeToString(h.Sum(nil))
}
