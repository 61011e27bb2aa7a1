package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

const DefaultDeliveryDays = 7

type Repository interface {
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListInStock(ctx context.Context) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo, now: time.Now}
}

// FindByIDs looks up each distinct id once. Unknown ids are simply absent
// from the result.
func (s *ProductService) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return s.repo.FindByIDs(ctx, unique)
}

// GetProductsByIDs splits ids into the products found and the ids that were not.
func (s *ProductService) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, []string, error) {
	found, err := s.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	foundSet := make(map[string]struct{}, len(found))
	for _, p := range found {
		foundSet[p.ID] = struct{}{}
	}

	var notFoundIDs []string
	for _, id := range ids {
		if _, ok := foundSet[id]; !ok {
			notFoundIDs = append(notFoundIDs, id)
		}
	}

	return found, notFoundIDs, nil
}

func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.repo.FindBySlug(ctx, slug)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListInStock(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListInStock(ctx)
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Create assigns the id and timestamps and fills the catalog defaults.
func (s *ProductService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	p.ID = uuid.Must(uuid.NewV7()).String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.DeliveryDays <= 0 {
		p.DeliveryDays = DefaultDeliveryDays
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
