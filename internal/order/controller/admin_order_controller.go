package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"storefront/internal/auth/authctx"
	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/httpio"
	"storefront/internal/validation"
)

type OrderQueryUseCase interface {
	GetByID(ctx context.Context, session *domain.Session, id string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, session *domain.Session, filter domain.OrderFilter) (*dto.OrderListResponse, error)
	Export(ctx context.Context, session *domain.Session) ([]byte, string, error)
}

type StatusUseCase interface {
	TransitionStatus(ctx context.Context, session *domain.Session, id string, status string) (*dto.OrderResponse, error)
}

// AdminOrderController serves the operator console. The session placed in
// the request context by the auth middleware is passed to every use case.
type AdminOrderController struct {
	query  OrderQueryUseCase
	status StatusUseCase
	logger *zap.Logger
}

func NewAdminOrderController(query OrderQueryUseCase, status StatusUseCase, logger *zap.Logger) *AdminOrderController {
	return &AdminOrderController{
		query:  query,
		status: status,
		logger: logger,
	}
}

func (c *AdminOrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	q := r.URL.Query()
	filter := domain.OrderFilter{
		Search: strings.TrimSpace(q.Get("search")),
		Status: domain.OrderStatus(strings.TrimSpace(q.Get("status"))),
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	resp, err := c.query.ListOrders(r.Context(), authctx.SessionFromContext(r.Context()), filter)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *AdminOrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	resp, err := c.query.GetByID(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *AdminOrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.StatusUpdateRequest
	if err := httpio.DecodeJSON(w, r, &req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}
	if err := validation.Struct(req); err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	resp, err := c.status.TransitionStatus(r.Context(), authctx.SessionFromContext(r.Context()), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	httpio.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *AdminOrderController) ExportOrders(w http.ResponseWriter, r *http.Request) {
	traceID := httpio.TraceID(r)
	logger := c.logger.With(zap.String("traceId", traceID))

	body, filename, err := c.query.Export(r.Context(), authctx.SessionFromContext(r.Context()))
	if err != nil {
		httpio.WriteError(w, traceID, err, logger)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write export", zap.Error(err))
	}
}
