package products

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service handles catalog business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req SaveProductRequest) (*Product, error) {
	now := time.Now().UTC()
	product := Product{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		HSNCode:     req.HSNCode,
		Unit:        req.Unit,
		DefaultRate: req.DefaultRate,
		TaxRate:     req.TaxRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req SaveProductRequest) (*Product, error) {
	existing, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.HSNCode = req.HSNCode
	existing.Unit = req.Unit
	existing.DefaultRate = req.DefaultRate
	existing.TaxRate = req.TaxRate
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Product, error) {
	return s.repo.Get(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req ListProductsRequest) ([]Product, int, error) {
	return s.repo.List(ctx, tenantID, req)
}

func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}
