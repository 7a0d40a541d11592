package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/platform/cache"
)

// Service handles payment business logic. Every write invalidates the
// tenant's cached ledgers, since payments feed the credit column.
type Service struct {
	repo    Repository
	parties parties.Repository
	cache   *cache.Cache
	logger  *slog.Logger
}

func NewService(repo Repository, partyRepo parties.Repository, c *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, parties: partyRepo, cache: c, logger: logger}
}

func (s *Service) build(ctx context.Context, tenantID uuid.UUID, payment *Payment, req SavePaymentRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}
	if _, err := s.parties.Get(ctx, tenantID, req.PartyID); err != nil {
		return fmt.Errorf("get party: %w", err)
	}

	payment.PartyID = req.PartyID
	payment.Date = date
	payment.Amount = req.Amount
	payment.Mode = Mode(req.Mode)
	payment.ReferenceNo = req.ReferenceNo
	payment.Description = req.Description
	return nil
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req SavePaymentRequest) (*Payment, error) {
	now := time.Now().UTC()
	payment := Payment{
		ID:        uuid.New(),
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.build(ctx, tenantID, &payment, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}
	s.bump(ctx, tenantID)
	return &payment, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req SavePaymentRequest) (*Payment, error) {
	existing, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if err := s.build(ctx, tenantID, existing, req); err != nil {
		return nil, err
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	s.bump(ctx, tenantID)
	return existing, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error) {
	return s.repo.Get(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req ListPaymentsRequest) ([]Payment, int, error) {
	return s.repo.List(ctx, tenantID, req)
}

func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.bump(ctx, tenantID)
	return nil
}

func (s *Service) bump(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.Bump(ctx, tenantID); err != nil {
		s.logger.Warn("cache invalidation failed", slog.Any("error", err), slog.String("tenant_id", tenantID.String()))
	}
}
