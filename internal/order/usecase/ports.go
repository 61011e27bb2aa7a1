package usecase

import (
	"context"

	"storefront/internal/domain"
)

type CheckoutService interface {
	CreateOrder(ctx context.Context, order domain.Order) error
}

type CodeGenerator interface {
	Next() string
}

// CatalogReader returns the products found for ids and the ids that were not.
type CatalogReader interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, []string, error)
}

type OrderRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	StatusTotals(ctx context.Context) ([]domain.StatusTotal, error)
}

type OrderItemRepository interface {
	FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error)
}

type Recorder interface {
	ObserveOrderCreated()
	ObserveStatusChange(status string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOrderCreated()       {}
func (nopRecorder) ObserveStatusChange(string) {}

func attachItems(ctx context.Context, items OrderItemRepository, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	byOrder, err := items.FindByOrderIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
	}
	return nil
}
