package contact

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/contact/controller"
	"storefront/internal/contact/repository"
	"storefront/internal/contact/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLContactRepository(db)
	uc := usecase.NewContactUseCase(repo, logger)
	return controller.NewController(uc, logger)
}
