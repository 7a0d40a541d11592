package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service handles company profile business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, tenantID uuid.UUID) (*Profile, error) {
	return s.repo.Get(ctx, tenantID)
}

// Save creates the profile on first call and replaces it afterwards; the
// original creation timestamp is kept across updates.
func (s *Service) Save(ctx context.Context, tenantID uuid.UUID, req SaveProfileRequest) (*Profile, error) {
	now := time.Now().UTC()
	profile := Profile{
		TenantID:  tenantID,
		Name:      req.Name,
		Address:   req.Address,
		GSTIN:     req.GSTIN,
		State:     req.State,
		StateCode: req.StateCode,
		BankName:  req.BankName,
		AccountNo: req.AccountNo,
		IFSC:      req.IFSC,
		Branch:    req.Branch,
		CreatedAt: now,
		UpdatedAt: now,
	}

	existing, err := s.repo.Get(ctx, tenantID)
	switch {
	case err == nil:
		profile.CreatedAt = existing.CreatedAt
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("get company profile: %w", err)
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("save company profile: %w", err)
	}
	return &profile, nil
}
