package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/validation"
)

type Service interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListInStock(ctx context.Context) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	service Service
	logger  *zap.Logger
	now     func() time.Time
}

func NewCatalogUseCase(service Service, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		service: service,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *CatalogUseCase) ListVisible(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := uc.service.ListInStock(ctx)
	if err != nil {
		return nil, apperrors.Translate("listing products", err)
	}
	resp := dto.NewProductListResponse(products)
	return &resp, nil
}

func (uc *CatalogUseCase) GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperrors.NewNotFoundError("product not found")
	}

	p, err := uc.service.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.Translate("loading product", err)
	}
	resp := dto.NewProductResponse(*p)
	return &resp, nil
}

func (uc *CatalogUseCase) List(ctx context.Context, session *domain.Session) (*dto.ProductListResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	products, err := uc.service.List(ctx)
	if err != nil {
		return nil, apperrors.Translate("listing products", err)
	}
	resp := dto.NewProductListResponse(products)
	return &resp, nil
}

func (uc *CatalogUseCase) Get(ctx context.Context, session *domain.Session, id string) (*dto.ProductResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	p, err := uc.service.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Translate("loading product", err)
	}
	resp := dto.NewProductResponse(*p)
	return &resp, nil
}

func (uc *CatalogUseCase) Create(ctx context.Context, session *domain.Session, req dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p, err := uc.service.Create(ctx, req.ToDomain())
	if err != nil {
		return nil, apperrors.Translate("creating product", err)
	}

	uc.logger.Info("product created", zap.String("id", p.ID), zap.String("slug", p.Slug))
	resp := dto.NewProductResponse(*p)
	return &resp, nil
}

func (uc *CatalogUseCase) Update(ctx context.Context, session *domain.Session, id string, req dto.ProductPatchRequest) (*dto.ProductResponse, error) {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return nil, err
	}

	if req.Slug != nil {
		slug := strings.ToLower(strings.TrimSpace(*req.Slug))
		req.Slug = &slug
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p, err := uc.service.Update(ctx, id, req.ToDomain())
	if err != nil {
		return nil, apperrors.Translate("updating product", err)
	}

	uc.logger.Info("product updated", zap.String("id", id))
	resp := dto.NewProductResponse(*p)
	return &resp, nil
}

// Delete leaves existing order items untouched; they keep their captured
// price and show an empty product name.
func (uc *CatalogUseCase) Delete(ctx context.Context, session *domain.Session, id string) error {
	if err := authctx.Authorize(session, uc.now()); err != nil {
		return err
	}

	if err := uc.service.Delete(ctx, id); err != nil {
		return apperrors.Translate("deleting product", err)
	}

	uc.logger.Info("product deleted", zap.String("id", id))
	return nil
}
