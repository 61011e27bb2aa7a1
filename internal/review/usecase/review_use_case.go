package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

type Repository interface {
	ListApproved(ctx context.Context) ([]domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, review domain.Review) error
	Update(ctx context.Context, id string, patch domain.ReviewPatch) error
	Delete(ctx context.Context, id string) error
}

type ReviewUseCase struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewReviewUseCase(repo Repository, logger *zap.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *ReviewUseCase) ListApproved(ctx context.Context) ([]dto.ReviewResponse, error) {
	reviews, err := uc.repo.ListApproved(ctx)
	if err != nil {
		return nil, apperrors.Translate("listing reviews", err)
	}
	return dto.NewReviewListResponse(reviews), nil
}

func (uc *ReviewUseCase) List(ctx context.Context, session *domain.Session) ([]dto.ReviewResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	reviews, err := uc.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Translate("listing reviews", err)
	}
	return dto.NewReviewListResponse(reviews), nil
}

// Create stores a review; it stays hidden from the storefront until
// approved.
func (uc *ReviewUseCase) Create(ctx context.Context, session *domain.Session, req dto.ReviewRequest) (*dto.ReviewResponse, error) {
	now := uc.now()
	if err := authctx.Authorize(session, now); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Text = strings.TrimSpace(req.Text)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	review := domain.Review{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Name:      req.Name,
		Rating:    req.Rating,
		Text:      req.Text,
		Approved:  req.Approved != nil && *req.Approved,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}
	if err := uc.repo.Create(ctx, review); err != nil {
		return nil, apperrors.Translate("creating review", err)
	}

	uc.logger.Info("review created", zap.String("id", review.ID), zap.Bool("approved", review.Approved))
	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (uc *ReviewUseCase) Update(ctx context.Context, session *domain.Session, id string, req dto.ReviewPatchRequest) (*dto.ReviewResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		req.Text = &text
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := domain.ReviewPatch{
		Name:     req.Name,
		Rating:   req.Rating,
		Text:     req.Text,
		Approved: req.Approved,
	}
	if err := uc.repo.Update(ctx, id, patch); err != nil {
		return nil, apperrors.Translate("updating review", err)
	}

	review, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.Translate("reloading review", err)
	}

	resp := dto.NewReviewResponse(*review)
	return &resp, nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, session *domain.Session, id string) error {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperrors.Translate("deleting review", err)
	}

	uc.logger.Info("review deleted", zap.String("id", id))
	return nil
}
