package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

type Repository interface {
	Create(ctx context.Context, submission domain.ContactSubmission) error
}

type ContactUseCase struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewContactUseCase(repo Repository, logger *zap.Logger) *ContactUseCase {
	return &ContactUseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Submit stores a contact form message. A blank phone is stored as NULL.
func (uc *ContactUseCase) Submit(ctx context.Context, req dto.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Message = strings.TrimSpace(req.Message)
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		req.Phone = &phone
		if phone == "" {
			req.Phone = nil
		}
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	submission := domain.ContactSubmission{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		CreatedAt: uc.now().UTC().Truncate(time.Millisecond),
	}
	if err := uc.repo.Create(ctx, submission); err != nil {
		return apperrors.Translate("storing contact submission", err)
	}

	uc.logger.Info("contact submission stored", zap.String("id", submission.ID))
	return nil
}
