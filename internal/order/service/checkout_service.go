package service

import (
	"context"
	"database/sql"
	"time"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/mysql"

	"go.uber.org/zap"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

type OrderItemRepository interface {
	InsertBatch(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error
}

// CheckoutService persists an order header and its items as one unit.
type CheckoutService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewCheckoutService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// CreateOrder returns a ConflictError when the order code is already taken;
// the caller retries with a fresh code.
func (s *CheckoutService) CreateOrder(ctx context.Context, order domain.Order) error {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return apperrors.NewStorageError("beginning checkout transaction", err)
	}
	// Rollback is a no-op once Commit has succeeded.
	defer tx.Rollback()

	if err := s.orderRepo.Insert(txCtx, tx, order); err != nil {
		if mysql.IsDuplicateKey(err) {
			s.logger.Warn("order code collision", zap.String("orderCode", order.OrderCode))
			return apperrors.NewConflictError("order code already exists")
		}
		s.logger.Error("failed to insert order", zap.String("orderCode", order.OrderCode), zap.Error(err))
		return apperrors.NewStorageError("inserting order", err)
	}

	if err := s.orderItemRepo.InsertBatch(txCtx, tx, order.Items); err != nil {
		s.logger.Error("failed to insert order items", zap.String("orderCode", order.OrderCode), zap.Error(err))
		return apperrors.NewStorageError("inserting order items", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderCode", order.OrderCode), zap.Error(err))
		return apperrors.NewStorageError("committing checkout", err)
	}

	s.logger.Info("order committed",
		zap.String("orderCode", order.OrderCode),
		zap.Int("itemCount", len(order.Items)),
		zap.Int64("total", order.Total),
	)

	return nil
}
