package authctx

import (
	"context"
	"time"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

type contextKey struct{}

func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// SessionFromContext returns nil when the request passed no session gate.
func SessionFromContext(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(contextKey{}).(*domain.Session)
	return session
}

// Authorize is checked by every operator use case, independently of the
// HTTP middleware that produced the session.
func Authorize(session *domain.Session, now time.Time) error {
	if !session.Valid(now) {
		return apperrors.NewUnauthorizedError()
	}
	return nil
}
