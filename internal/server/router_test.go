package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	authcontroller "storefront/internal/auth/controller"
	contactcontroller "storefront/internal/contact/controller"
	"storefront/internal/config"
	contentcontroller "storefront/internal/content/controller"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/metrics"
	"storefront/internal/order"
	ordercontroller "storefront/internal/order/controller"
	productcontroller "storefront/internal/product/controller"
	reviewcontroller "storefront/internal/review/controller"
)

type rejectingAuth struct {
	authcontroller.AuthUseCase
}

func (rejectingAuth) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	return nil, apperrors.NewUnauthorizedError()
}

func (rejectingAuth) Me(ctx context.Context, token string) dto.MeResponse {
	return dto.MeResponse{}
}

type approvedReviews struct {
	reviewcontroller.ReviewUseCase
}

func (approvedReviews) ListApproved(ctx context.Context) ([]dto.ReviewResponse, error) {
	return []dto.ReviewResponse{}, nil
}

type acceptingContact struct{}

func (acceptingContact) Submit(ctx context.Context, req dto.ContactRequest) error {
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	reg := prometheus.NewRegistry()
	m := metrics.NewServerMetrics(reg)

	return NewRouter(Handlers{
		Auth: authcontroller.NewController(rejectingAuth{}, config.AuthConfig{CookieName: "storefront-admin"}, logger),
		Order: &order.Module{
			Checkout: ordercontroller.NewCheckoutController(nil, nil, logger),
			Admin:    ordercontroller.NewAdminOrderController(nil, nil, logger),
		},
		Product:        productcontroller.NewController(nil, logger),
		Content:        contentcontroller.NewController(nil, logger),
		Review:         reviewcontroller.NewController(approvedReviews{}, logger),
		Contact:        contactcontroller.NewController(acceptingContact{}, logger),
		Metrics:        m.Middleware,
		MetricsHandler: metrics.Handler(reg),
	}, logger)
}

func TestRouter_OperatorRoutesRequireSession(t *testing.T) {
	handler := newTestHandler(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/orders"},
		{http.MethodGet, "/api/admin/orders/export"},
		{http.MethodGet, "/api/admin/orders/o1"},
		{http.MethodPatch, "/api/admin/orders/o1"},
		{http.MethodGet, "/api/admin/products"},
		{http.MethodPost, "/api/admin/products"},
		{http.MethodDelete, "/api/admin/products/p1"},
		{http.MethodGet, "/api/admin/content"},
		{http.MethodPost, "/api/admin/content"},
		{http.MethodGet, "/api/admin/reviews"},
		{http.MethodDelete, "/api/admin/reviews/r1"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Mehak","email":"mehak@example.com","message":"Do you ship pherans?"}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")
}
