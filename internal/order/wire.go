package order

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/order/controller"
	"storefront/internal/order/ordercode"
	orderrepo "storefront/internal/order/repository"
	"storefront/internal/order/service"
	"storefront/internal/order/usecase"
)

type Module struct {
	Checkout *controller.CheckoutController
	Admin    *controller.AdminOrderController
}

func NewModule(db *sql.DB, cfg *config.Config, catalog usecase.CatalogReader, recorder usecase.Recorder, logger *zap.Logger) *Module {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	orderItemRepo := orderrepo.NewMySQLOrderItemRepository(db)

	checkoutSvc := service.NewCheckoutService(
		db,
		orderRepo,
		orderItemRepo,
		logger,
		cfg.Order.CheckoutTxTimeout,
	)

	var policy domain.TransitionPolicy = domain.PermissiveTransitions{}
	if cfg.Order.StrictTransitions {
		policy = domain.StrictTransitions{}
	}

	checkoutUC := usecase.NewCheckoutUseCase(
		checkoutSvc,
		ordercode.NewGenerator(),
		catalog,
		recorder,
		logger,
		usecase.CheckoutOptions{
			MaxRetryAttempts:   cfg.Order.MaxRetryAttempts,
			VerifyCatalogPrice: cfg.Order.VerifyCatalogPrice,
		},
	)
	queryUC := usecase.NewOrderQueryUseCase(orderRepo, orderItemRepo, logger)
	statusUC := usecase.NewStatusUseCase(orderRepo, orderItemRepo, policy, recorder, logger)

	return &Module{
		Checkout: controller.NewCheckoutController(checkoutUC, queryUC, logger),
		Admin:    controller.NewAdminOrderController(queryUC, statusUC, logger),
	}
}
