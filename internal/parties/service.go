package parties

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service handles party business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreatePartyRequest) (*Party, error) {
	now := time.Now().UTC()
	party := Party{
		ID:              uuid.New(),
		TenantID:        tenantID,
		Name:            req.Name,
		Type:            PartyType(req.Type),
		GSTIN:           req.GSTIN,
		State:           req.State,
		StateCode:       req.StateCode,
		Address:         req.Address,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Create(ctx, party); err != nil {
		return nil, fmt.Errorf("create party: %w", err)
	}
	return &party, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdatePartyRequest) (*Party, error) {
	existing, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get party: %w", err)
	}

	existing.Name = req.Name
	existing.Type = PartyType(req.Type)
	existing.GSTIN = req.GSTIN
	existing.State = req.State
	existing.StateCode = req.StateCode
	existing.Address = req.Address
	existing.ShippingAddress = req.ShippingAddress
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update party: %w", err)
	}
	return existing, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Party, error) {
	return s.repo.Get(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req ListPartiesRequest) ([]Party, int, error) {
	return s.repo.List(ctx, tenantID, req)
}

func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, id)
}
