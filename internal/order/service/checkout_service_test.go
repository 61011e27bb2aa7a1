package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

// Helper to create CheckoutService with test defaults
func newTestCheckoutService(
	txMgr TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
) *CheckoutService {
	return NewCheckoutService(txMgr, orderRepo, orderItemRepo, zap.NewNop(), 5*time.Second)
}

// Mock implementations
type mockTransactionManager struct {
	BeginTxFunc func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

func (m *mockTransactionManager) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return m.BeginTxFunc(ctx, opts)
}

type mockOrderRepository struct {
	InsertFunc func(ctx context.Context, tx *sql.Tx, order domain.Order) error
}

func (m *mockOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	return m.InsertFunc(ctx, tx, order)
}

type mockOrderItemRepository struct {
	InsertBatchFunc func(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error
}

func (m *mockOrderItemRepository) InsertBatch(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
	return m.InsertBatchFunc(ctx, tx, items)
}

func testOrder() domain.Order {
	return domain.Order{
		ID:        "o1",
		OrderCode: "LKTEST0001",
		Status:    domain.OrderStatusPending,
		Total:     49800,
		Items: []domain.OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p1", Size: "M", Quantity: 2, Price: 24900},
		},
	}
}

// Tests

func TestCreateOrder_CommitsHeaderAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	var insertedOrder, insertedItems bool
	svc := newTestCheckoutService(
		db,
		&mockOrderRepository{InsertFunc: func(ctx context.Context, tx *sql.Tx, order domain.Order) error {
			assert.NotNil(t, tx)
			insertedOrder = true
			return nil
		}},
		&mockOrderItemRepository{InsertBatchFunc: func(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
			assert.NotNil(t, tx)
			assert.Len(t, items, 1)
			insertedItems = true
			return nil
		}},
	)

	err = svc.CreateOrder(context.Background(), testOrder())

	require.NoError(t, err)
	assert.True(t, insertedOrder)
	assert.True(t, insertedItems)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_ItemFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := newTestCheckoutService(
		db,
		&mockOrderRepository{InsertFunc: func(ctx context.Context, tx *sql.Tx, order domain.Order) error {
			return nil
		}},
		&mockOrderItemRepository{InsertBatchFunc: func(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
			return errors.New("connection reset")
		}},
	)

	err = svc.CreateOrder(context.Background(), testOrder())

	_, ok := apperrors.IsStorageError(err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_DuplicateCodeIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	svc := newTestCheckoutService(
		db,
		&mockOrderRepository{InsertFunc: func(ctx context.Context, tx *sql.Tx, order domain.Order) error {
			return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
		}},
		&mockOrderItemRepository{InsertBatchFunc: func(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
			t.Fatal("items must not be inserted after a header failure")
			return nil
		}},
	)

	err = svc.CreateOrder(context.Background(), testOrder())

	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_CommitFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	svc := newTestCheckoutService(
		db,
		&mockOrderRepository{InsertFunc: func(ctx context.Context, tx *sql.Tx, order domain.Order) error {
			return nil
		}},
		&mockOrderItemRepository{InsertBatchFunc: func(ctx context.Context, tx *sql.Tx, items []domain.OrderItem) error {
			return nil
		}},
	)

	err = svc.CreateOrder(context.Background(), testOrder())

	se, ok := apperrors.IsStorageError(err)
	require.True(t, ok)
	assert.Equal(t, "committing checkout", se.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_BeginFailure(t *testing.T) {
	svc := newTestCheckoutService(
		&mockTransactionManager{BeginTxFunc: func(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
			assert.Equal(t, sql.LevelReadCommitted, opts.Isolation)
			return nil, errors.New("too many connections")
		}},
		&mockOrderRepository{},
		&mockOrderItemRepository{},
	)

	err := svc.CreateOrder(context.Background(), testOrder())

	_, ok := apperrors.IsStorageError(err)
	assert.True(t, ok)
}
