package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authrepo "storefront/internal/auth/repository"
	"storefront/internal/commons"
	"storefront/internal/config"
	contentrepo "storefront/internal/content/repository"
	contentusecase "storefront/internal/content/usecase"
	"storefront/internal/domain"
	"storefront/internal/infrastructure/logger"
	"storefront/internal/infrastructure/mysql"
)

const bcryptCost = 12

func main() {
	file, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		log.Fatalf("loading config file: %v", err)
	}

	cfg, err := config.Load(file)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log, "storefront-seed")
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	viper.AutomaticEnv()
	viper.SetDefault("ADMIN_EMAIL", "admin@storefront.local")
	viper.SetDefault("ADMIN_NAME", "Admin")
	email := strings.ToLower(strings.TrimSpace(viper.GetString("ADMIN_EMAIL")))
	password := viper.GetString("ADMIN_PASSWORD")
	if password == "" {
		zapLogger.Fatal("ADMIN_PASSWORD must be set")
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := mysql.Migrate(ctx, db); err != nil {
		zapLogger.Fatal("creating schema", zap.Error(err))
	}
	zapLogger.Info("schema ready")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		zapLogger.Fatal("hashing admin password", zap.Error(err))
	}

	admins := authrepo.NewMySQLAdminRepository(db)
	if err := admins.Upsert(ctx, domain.Admin{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         viper.GetString("ADMIN_NAME"),
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		zapLogger.Fatal("seeding admin", zap.Error(err))
	}
	zapLogger.Info("admin seeded", zap.String("email", email))

	content := contentrepo.NewMySQLContentRepository(db)
	stored, err := content.FindAll(ctx)
	if err != nil {
		zapLogger.Fatal("reading site content", zap.Error(err))
	}

	seeded := 0
	for key, value := range contentusecase.Defaults {
		if _, ok := stored[key]; ok {
			continue
		}
		if err := content.Upsert(ctx, key, value); err != nil {
			zapLogger.Fatal("seeding site content", zap.String("key", key), zap.Error(err))
		}
		seeded++
	}
	zapLogger.Info("site content seeded", zap.Int("keys", seeded))
}
