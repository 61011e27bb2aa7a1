package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

// memoryStore keeps orders the way the MySQL repositories do: header and
// items are written together or not at all, and only status changes later.
type memoryStore struct {
	mu           sync.Mutex
	orders       map[string]domain.Order
	byCode       map[string]string
	productNames map[string]string
	failItems    bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders:       make(map[string]domain.Order),
		byCode:       make(map[string]string),
		productNames: map[string]string{"p1": "The Sapphire Heirloom Kaftan"},
	}
}

func (s *memoryStore) CreateOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byCode[order.OrderCode]; taken {
		return apperrors.NewConflictError("order code already exists")
	}
	if s.failItems {
		return apperrors.NewStorageError("inserting order items", context.DeadlineExceeded)
	}

	stored := order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	s.orders[order.ID] = stored
	s.byCode[order.OrderCode] = order.ID
	return nil
}

func (s *memoryStore) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byCode[code]
	if !ok {
		return nil, apperrors.NewNotFoundError("order " + code + " not found")
	}
	o := header(s.orders[id])
	return &o, nil
}

func (s *memoryStore) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("order with id " + id + " not found")
	}
	h := header(o)
	return &h, nil
}

func (s *memoryStore) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return apperrors.NewNotFoundError("order with id " + id + " not found")
	}
	o.Status = status
	s.orders[id] = o
	return nil
}

func (s *memoryStore) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Order
	for _, o := range s.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(o.OrderCode, filter.Search) &&
			!strings.Contains(o.FullName, filter.Search) &&
			!strings.Contains(o.Phone, filter.Search) {
			continue
		}
		out = append(out, header(o))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memoryStore) StatusTotals(ctx context.Context) ([]domain.StatusTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byStatus := make(map[domain.OrderStatus]*domain.StatusTotal)
	var rows []domain.StatusTotal
	for _, o := range s.orders {
		row, ok := byStatus[o.Status]
		if !ok {
			row = &domain.StatusTotal{Status: o.Status}
			byStatus[o.Status] = row
		}
		row.Count++
		row.Sum += o.Total
	}
	for _, status := range domain.OrderStatuses {
		if row, ok := byStatus[status]; ok {
			rows = append(rows, *row)
		}
	}
	return rows, nil
}

func (s *memoryStore) FindByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string][]domain.OrderItem, len(orderIDs))
	for _, id := range orderIDs {
		for _, item := range s.orders[id].Items {
			item.ProductName = s.productNames[item.ProductID]
			result[id] = append(result[id], item)
		}
	}
	return result, nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func header(o domain.Order) domain.Order {
	o.Items = nil
	return o
}

// Mock implementations

type mockCodeGenerator struct {
	codes []string
	calls int
}

func (m *mockCodeGenerator) Next() string {
	code := m.codes[m.calls%len(m.codes)]
	m.calls++
	return code
}

type mockCatalogReader struct {
	GetProductsByIDsFunc func(ctx context.Context, ids []string) ([]domain.Product, []string, error)
}

func (m *mockCatalogReader) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, []string, error) {
	return m.GetProductsByIDsFunc(ctx, ids)
}

type mockOrderRepository struct {
	FindByCodeFunc   func(ctx context.Context, code string) (*domain.Order, error)
	FindByIDFunc     func(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.OrderStatus) error
	ListFunc         func(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	StatusTotalsFunc func(ctx context.Context) ([]domain.StatusTotal, error)
}

func (m *mockOrderRepository) FindByCode(ctx context.Context, code string) (*domain.Order, error) {
	return m.FindByCodeFunc(ctx, code)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

func (m *mockOrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockOrderRepository) StatusTotals(ctx context.Context) ([]domain.StatusTotal, error) {
	return m.StatusTotalsFunc(ctx)
}

type countingRecorder struct {
	created int
	changes []string
}

func (r *countingRecorder) ObserveOrderCreated() {
	r.created++
}

func (r *countingRecorder) ObserveStatusChange(status string) {
	r.changes = append(r.changes, status)
}

func activeSession() *domain.Session {
	return &domain.Session{
		ID:         "session-1",
		AdminEmail: "admin@example.com",
		ExpiresAt:  time.Now().Add(7 * 24 * time.Hour),
	}
}

func expiredSession() *domain.Session {
	return &domain.Session{
		ID:         "session-0",
		AdminEmail: "admin@example.com",
		ExpiresAt:  time.Now().Add(-time.Minute),
	}
}
