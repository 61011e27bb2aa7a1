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

type ReviewUseCase interface {
	ListApproved(ctx context.Context) ([]dto.ReviewResponse, error)
	List(ctx context.Context, session *domain.Session) ([]dto.ReviewResponse, error)
	Create(ctx context.Context, session *domain.Session, req dto.ReviewRequest) (*dto.ReviewResponse, error)
	Update(ctx context.Context, session *domain.Session, id string, req dto.ReviewPatchRequest) (*dto.ReviewResponse, error)
	Delete(ctx context.Context, session *domain.Session, id string) error
}

type Controller struct {
	useCase ReviewUseCase
	logger  *zap.Logger
}

func NewController(useCase ReviewUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) ListApproved(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.ListApproved(r.Context())
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) AdminList(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.useCase.List(r.Context(), authctx.SessionFromContext(r.Context()))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ReviewRequest
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

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ReviewPatchRequest
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

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.Delete(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, dto.OKResponse{OK: true}, logger)
}
