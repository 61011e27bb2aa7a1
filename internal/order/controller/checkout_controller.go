package controller

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/dto"
	"storefront/internal/httpio"
)

type CheckoutUseCase interface {
	Submit(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type LookupUseCase interface {
	LookupByCode(ctx context.Context, code string) (*dto.OrderResponse, error)
}

// CheckoutController serves the public storefront: placing an order and
// tracking it by code.
type CheckoutController struct {
	checkout CheckoutUseCase
	lookup   LookupUseCase
	logger   *zap.Logger
}

func NewCheckoutController(checkout CheckoutUseCase, lookup LookupUseCase, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		checkout: checkout,
		lookup:   lookup,
		logger:   logger,
	}
}

func (c *CheckoutController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		logger.Warn("invalid JSON body")
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	resp, err := c.checkout.Submit(r.Context(), req)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *CheckoutController) TrackOrder(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.lookup.LookupByCode(r.Context(), chi.URLParam(r, "orderCode"))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}
