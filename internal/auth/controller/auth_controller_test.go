package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockAuthUseCase struct {
	LoginFunc        func(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error)
	LogoutFunc       func(ctx context.Context, token string) error
	AuthenticateFunc func(ctx context.Context, token string) (*domain.Session, error)
}

func (m *mockAuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error) {
	return m.LoginFunc(ctx, req)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	return m.AuthenticateFunc(ctx, token)
}

func (m *mockAuthUseCase) Me(ctx context.Context, token string) dto.MeResponse {
	_, err := m.AuthenticateFunc(ctx, token)
	return dto.MeResponse{Authenticated: err == nil}
}

var testCookie = config.AuthConfig{CookieName: "storefront-admin", CookieSecure: true}

func liveToken(ctx context.Context, token string) (*domain.Session, error) {
	if token == "good" {
		return &domain.Session{ID: "sid", ExpiresAt: time.Now().Add(time.Hour)}, nil
	}
	return nil, apperrors.NewUnauthorizedError()
}

func newTestRouter(uc AuthUseCase) http.Handler {
	c := NewController(uc, testCookie, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/admin/auth", c.Login)
	r.Delete("/api/admin/auth", c.Logout)
	r.Get("/api/admin/me", c.Me)
	r.Group(func(r chi.Router) {
		r.Use(c.RequireSession)
		r.Get("/api/admin/ping", func(w http.ResponseWriter, r *http.Request) {
			session := authctx.SessionFromContext(r.Context())
			_, _ = w.Write([]byte(session.ID))
		})
	})
	return r
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	expires := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	uc := &mockAuthUseCase{
		LoginFunc: func(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error) {
			assert.Equal(t, "admin@example.com", req.Email)
			return "signed-token", &domain.Session{ID: "sid", ExpiresAt: expires}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth",
		strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "storefront-admin", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc := &mockAuthUseCase{
		LoginFunc: func(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error) {
			return "", nil, apperrors.NewUnauthorizedError()
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth",
		strings.NewReader(`{"email":"admin@example.com","password":"nope"}`))
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_ClearsCookie(t *testing.T) {
	var revoked string
	uc := &mockAuthUseCase{
		LogoutFunc: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/auth", nil)
	req.AddCookie(&http.Cookie{Name: "storefront-admin", Value: "good"})
	rec := httptest.NewRecorder()
	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good", revoked)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMe(t *testing.T) {
	router := newTestRouter(&mockAuthUseCase{AuthenticateFunc: liveToken})

	tests := []struct {
		name   string
		cookie string
		want   bool
	}{
		{name: "live session", cookie: "good", want: true},
		{name: "bad session", cookie: "bad", want: false},
		{name: "no cookie", cookie: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "storefront-admin", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp dto.MeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Authenticated)
		})
	}
}

func TestRequireSession(t *testing.T) {
	router := newTestRouter(&mockAuthUseCase{AuthenticateFunc: liveToken})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
	req.AddCookie(&http.Cookie{Name: "storefront-admin", Value: "good"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sid", rec.Body.String())

	for _, cookie := range []string{"", "forged"} {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "storefront-admin", Value: cookie})
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "UNAUTHORIZED", resp.Error)
	}
}
