package auth

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"storefront/internal/auth/controller"
	"storefront/internal/auth/repository"
	"storefront/internal/auth/session"
	"storefront/internal/auth/usecase"
	"storefront/internal/config"
)

func NewModule(db *sql.DB, client *redis.Client, cfg config.AuthConfig, logger *zap.Logger) *controller.Controller {
	adminRepo := repository.NewMySQLAdminRepository(db)
	sessions := session.NewStore(client, cfg.JWTSecret, cfg.SessionTTL)

	authUseCase := usecase.NewAuthUseCase(adminRepo, sessions, logger)

	return controller.NewController(authUseCase, cfg, logger)
}
