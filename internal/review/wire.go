package review

import (
	"database/sql"

	"go.uber.org/zap"

	"storefront/internal/review/controller"
	"storefront/internal/review/repository"
	"storefront/internal/review/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.Controller {
	repo := repository.NewMySQLReviewRepository(db)
	uc := usecase.NewReviewUseCase(repo, logger)
	return controller.NewController(uc, logger)
}
