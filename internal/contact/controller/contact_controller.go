package controller

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"storefront/internal/dto"
	"storefront/internal/httpio"
)

type ContactUseCase interface {
	Submit(ctx context.Context, req dto.ContactRequest) error
}

type Controller struct {
	useCase ContactUseCase
	logger  *zap.Logger
}

func NewController(useCase ContactUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *Controller) Submit(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.ContactRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	if err := c.useCase.Submit(r.Context(), req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, dto.ContactResponse{OK: true}, logger)
}
