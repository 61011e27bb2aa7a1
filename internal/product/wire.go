package product

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/product/controller"
	"storefront/internal/product/repository"
	"storefront/internal/product/service"
	"storefront/internal/product/usecase"
)

type Module struct {
	Controller *controller.Controller
	// Catalog answers price lookups for checkout.
	Catalog *service.ProductService
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewMySQLRepository(db)
	svc := service.NewService(repo)
	uc := usecase.NewCatalogUseCase(svc, logger)
	return &Module{
		Controller: controller.NewController(uc, logger),
		Catalog:    svc,
	}
}
