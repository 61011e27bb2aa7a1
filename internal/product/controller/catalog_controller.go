package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/httpio"
)

type CatalogUseCase interface {
	ListVisible(ctx context.Context) (*dto.ProductListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ProductResponse, error)
	List(ctx context.Context, session *domain.Session) (*dto.ProductListResponse, error)
	Get(ctx context.Context, session *domain.Session, id string) (*dto.ProductResponse, error)
	Create(ctx context.Context, session *domain.Session, req dto.ProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, session *domain.Session, id string, req dto.ProductPatchRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, session *domain.Session, id string) error
}

type Controller struct {
	useCase CatalogUseCase
	logger  *zap.Logger
}

func NewController(useCase CatalogUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) ListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.ListVisible(r.Context())
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) GetProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.List(r.Context(), authctx.SessionFromContext(r.Context()))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) AdminGetProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.Get(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) CreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ProductRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	resp, err := c.useCase.Create(r.Context(), authctx.SessionFromContext(r.Context()), req)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusCreated, resp, logger)
}

func (c *Controller) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ProductPatchRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	resp, err := c.useCase.Update(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.Delete(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, dto.OKResponse{OK: true}, logger)
}
