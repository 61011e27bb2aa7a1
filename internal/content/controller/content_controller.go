package controller

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/httpio"
)

type ContentUseCase interface {
	Get(ctx context.Context, keys []string) (map[string]string, error)
	All(ctx context.Context, session *domain.Session) (map[string]string, error)
	Set(ctx context.Context, session *domain.Session, req dto.ContentRequest) error
}

type Controller struct {
	useCase ContentUseCase
	logger  *zap.Logger
}

func NewController(useCase ContentUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

// GetContent serves ?keys=a,b as a flat key/value object.
func (c *Controller) GetContent(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var keys []string
	if raw := r.URL.Query().Get("keys"); raw != "" {
		keys = strings.Split(raw, ",")
	}

	content, err := c.useCase.Get(r.Context(), keys)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, content, logger)
}

func (c *Controller) AdminGetContent(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	content, err := c.useCase.All(r.Context(), authctx.SessionFromContext(r.Context()))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, content, logger)
}

func (c *Controller) SetContent(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ContentRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	if err := c.useCase.Set(r.Context(), authctx.SessionFromContext(r.Context()), req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, dto.OKResponse{OK: true}, logger)
}
