package content

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/content/controller"
	"storefront/internal/content/repository"
	"storefront/internal/content/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLContentRepository(db)
	uc := usecase.NewContentUseCase(repo, logger)
	return controller.NewController(uc, logger)
}
