package controller

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/httpio"
)

type AuthUseCase interface {
	Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	Me(ctx context.Context, token string) dto.MeResponse
}

type Controller struct {
	useCase AuthUseCase
	cookie  config.AuthConfig
	logger  *zap.Logger
}

func NewController(useCase AuthUseCase, cookie config.AuthConfig, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		cookie:  cookie,
		logger:  logger,
	}
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.LoginRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	token, session, err := c.useCase.Login(r.Context(), req)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	http.SetCookie(w, c.newCookie(token, session.ExpiresAt))
	httpio.WriteJSON(w, http.StatusOK, dto.OKResponse{OK: true}, logger)
}

func (c *Controller) Logout(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.Logout(r.Context(), c.token(r)); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	expired := c.newCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	httpio.WriteJSON(w, http.StatusOK, dto.OKResponse{OK: true}, logger)
}

func (c *Controller) Me(w http.ResponseWriter, r *http.Request) {
	logger := c.logger.With(zap.String("traceId", httpio.TraceID(r)))
	httpio.WriteJSON(w, http.StatusOK, c.useCase.Me(r.Context(), c.token(r)), logger)
}

// RequireSession rejects requests without a live session cookie and puts
// the session on the request context otherwise.
func (c *Controller) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := c.useCase.Authenticate(r.Context(), c.token(r))
		if err != nil {
			traceID := httpio.TraceID(r)
			httpio.WriteError(w, traceID, err, c.logger.With(zap.String("traceId", traceID)))
			return
		}

		next.ServeHTTP(w, r.WithContext(authctx.WithSession(r.Context(), session)))
	})
}

func (c *Controller) token(r *http.Request) string {
	cookie, err := r.Cookie(c.cookie.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (c *Controller) newCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.cookie.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
