package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	authcontroller "storefront/internal/auth/controller"
	contactcontroller "storefront/internal/contact/controller"
	contentcontroller "storefront/internal/content/controller"
	"storefront/internal/order"
	productcontroller "storefront/internal/product/controller"
	reviewcontroller "storefront/internal/review/controller"
)

type Handlers struct {
	Auth    *authcontroller.Controller
	Order   *order.Module
	Product *productcontroller.Controller
	Content *contentcontroller.Controller
	Review  *reviewcontroller.Controller
	Contact *contactcontroller.Controller
	// Metrics wraps every request; nil disables it.
	Metrics func(http.Handler) http.Handler
	// MetricsHandler is served at /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	if h.Metrics != nil {
		r.Use(h.Metrics)
	}

	if h.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", h.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/orders", h.Order.Checkout.PlaceOrder)
		r.Get("/orders/{orderCode}", h.Order.Checkout.TrackOrder)

		r.Get("/products", h.Product.ListProducts)
		r.Get("/products/{slug}", h.Product.GetProduct)

		r.Get("/content", h.Content.GetContent)
		r.Get("/reviews", h.Review.ListApproved)
		r.Post("/contact", h.Contact.Submit)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth", h.Auth.Login)
			r.Delete("/auth", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)

			r.Group(func(r chi.Router) {
				r.Use(h.Auth.RequireSession)

				r.Get("/orders", h.Order.Admin.ListOrders)
				r.Get("/orders/export", h.Order.Admin.ExportOrders)
				r.Get("/orders/{id}", h.Order.Admin.GetOrder)
				r.Patch("/orders/{id}", h.Order.Admin.UpdateStatus)

				r.Get("/products", h.Product.AdminListProducts)
				r.Post("/products", h.Product.CreateProduct)
				r.Get("/products/{id}", h.Product.AdminGetProduct)
				r.Patch("/products/{id}", h.Product.UpdateProduct)
				r.Delete("/products/{id}", h.Product.DeleteProduct)

				r.Get("/content", h.Content.AdminGetContent)
				r.Post("/content", h.Content.SetContent)

				r.Get("/reviews", h.Review.AdminList)
				r.Post("/reviews", h.Review.Create)
				r.Patch("/reviews/{id}", h.Review.Update)
				r.Delete("/reviews/{id}", h.Review.Delete)
			})
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("traceId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
