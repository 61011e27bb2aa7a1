package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type SessionStore interface {
	Create(ctx context.Context, email string) (string, *domain.Session, error)
	Validate(ctx context.Context, token string) (*domain.Session, error)
	Revoke(ctx context.Context, token string) error
}

type AuthUseCase struct {
	admins   AdminRepository
	sessions SessionStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewAuthUseCase(admins AdminRepository, sessions SessionStore, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		admins:   admins,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Login returns a session token for valid credentials. Unknown emails and
// wrong passwords fail the same way.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (string, *domain.Session, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Struct(req); err != nil {
		return "", nil, err
	}

	admin, err := uc.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			uc.logger.Info("login rejected", zap.String("reason", "unknown email"))
			return "", nil, apperrors.NewUnauthorizedError()
		}
		return "", nil, apperrors.Translate("loading admin", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		uc.logger.Info("login rejected", zap.String("reason", "password mismatch"))
		return "", nil, apperrors.NewUnauthorizedError()
	}

	token, session, err := uc.sessions.Create(ctx, admin.Email)
	if err != nil {
		return "", nil, apperrors.Translate("opening session", err)
	}

	uc.logger.Info("admin logged in", zap.String("sessionId", session.ID))
	return token, session, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := uc.sessions.Revoke(ctx, token); err != nil {
		return apperrors.Translate("closing session", err)
	}
	return nil
}

// Authenticate resolves a token into a live session.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	session, err := uc.sessions.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if !session.Valid(uc.now()) {
		return nil, apperrors.NewUnauthorizedError()
	}
	return session, nil
}

// Me never fails: any problem with the token means not authenticated.
func (uc *AuthUseCase) Me(ctx context.Context, token string) dto.MeResponse {
	if token == "" {
		return dto.MeResponse{}
	}
	_, err := uc.Authenticate(ctx, token)
	if err != nil {
		if _, ok := apperrors.IsUnauthorizedError(err); !ok {
			uc.logger.Warn("session check failed", zap.Error(err))
		}
		return dto.MeResponse{}
	}
	return dto.MeResponse{Authenticated: true}
}
