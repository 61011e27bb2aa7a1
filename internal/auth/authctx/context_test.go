package authctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

func TestSessionFromContext(t *testing.T) {
	assert.Nil(t, SessionFromContext(context.Background()))

	session := &domain.Session{ID: "sid"}
	ctx := WithSession(context.Background(), session)
	assert.Same(t, session, SessionFromContext(ctx))
}

func TestAuthorize(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *domain.Session
		allowed bool
	}{
		{name: "live", session: &domain.Session{ID: "sid", ExpiresAt: now.Add(time.Minute)}, allowed: true},
		{name: "expired", session: &domain.Session{ID: "sid", ExpiresAt: now}},
		{name: "missing id", session: &domain.Session{ExpiresAt: now.Add(time.Minute)}},
		{name: "nil", session: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.session, now)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			_, ok := apperrors.IsUnauthorizedError(err)
			assert.True(t, ok)
		})
	}
}
