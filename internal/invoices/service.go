package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/company"
	"github.com/ledgerline/ledgerline/internal/docnum"
	"github.com/ledgerline/ledgerline/internal/money"
	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/platform/cache"
	"github.com/ledgerline/ledgerline/internal/words"
)

// Service owns the document lifecycle: numbering, party snapshots and the
// totals cache all flow through here so every save leaves the document
// internally consistent.
type Service struct {
	repo    Repository
	parties parties.Repository
	company company.Repository
	cache   *cache.Cache
	logger  *slog.Logger
}

func NewService(repo Repository, partyRepo parties.Repository, companyRepo company.Repository, c *cache.Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, parties: partyRepo, company: companyRepo, cache: c, logger: logger}
}

// snapshot copies the party's current details into the document. The copy
// is frozen: later edits to the party never rewrite issued documents.
func snapshot(p *parties.Party) PartySnapshot {
	return PartySnapshot{
		PartyID:         p.ID,
		Name:            p.Name,
		GSTIN:           p.GSTIN,
		State:           p.State,
		StateCode:       p.StateCode,
		Address:         p.Address,
		ShippingAddress: p.ShippingAddress,
	}
}

func (s *Service) resolveParties(ctx context.Context, tenantID uuid.UUID, req SaveInvoiceRequest) (PartySnapshot, *PartySnapshot, error) {
	buyer, err := s.parties.Get(ctx, tenantID, req.BuyerID)
	if err != nil {
		return PartySnapshot{}, nil, fmt.Errorf("get buyer: %w", err)
	}
	buyerSnap := snapshot(buyer)

	if req.ConsigneeID == nil {
		return buyerSnap, nil, nil
	}
	consignee, err := s.parties.Get(ctx, tenantID, *req.ConsigneeID)
	if err != nil {
		return PartySnapshot{}, nil, fmt.Errorf("get consignee: %w", err)
	}
	snap := snapshot(consignee)
	return buyerSnap, &snap, nil
}

// companyStateCode reads the seller's state code. A missing profile is
// not an error: the document is saved as inter-state until the profile
// exists.
func (s *Service) companyStateCode(ctx context.Context, tenantID uuid.UUID) (string, error) {
	profile, err := s.company.Get(ctx, tenantID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get company profile: %w", err)
	}
	return profile.StateCode, nil
}

func (s *Service) apply(ctx context.Context, tenantID uuid.UUID, inv *Invoice, req SaveInvoiceRequest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fmt.Errorf("parse date: %w", err)
	}

	buyer, consignee, err := s.resolveParties(ctx, tenantID, req)
	if err != nil {
		return err
	}
	stateCode, err := s.companyStateCode(ctx, tenantID)
	if err != nil {
		return err
	}

	inv.DocumentType = docnum.Type(req.DocumentType)
	inv.Date = date
	inv.Buyer = buyer
	inv.Consignee = consignee
	inv.Lines = make([]LineItem, len(req.Lines))
	for i, l := range req.Lines {
		inv.Lines[i] = LineItem{
			Description: l.Description,
			HSNCode:     l.HSNCode,
			Quantity:    l.Quantity,
			Rate:        l.Rate,
			Unit:        l.Unit,
		}
	}
	inv.Freight = money.ParseAmount(req.Freight)
	inv.TaxRatePercent = req.TaxRatePercent
	inv.CompanyState = stateCode
	inv.EWayBillNo = req.EWayBillNo
	inv.VehicleNo = req.VehicleNo
	inv.DispatchDocNo = req.DispatchDocNo
	inv.ModeOfPayment = req.ModeOfPayment
	inv.TermsOfDelivery = req.TermsOfDelivery
	inv.Recompute()
	return nil
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req SaveInvoiceRequest) (*Invoice, error) {
	now := time.Now().UTC()
	inv := Invoice{
		ID:        uuid.New(),
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.apply(ctx, tenantID, &inv, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListNumbers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list document numbers: %w", err)
	}
	inv.Number = docnum.Next(existing, inv.DocumentType, inv.Date)

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	s.bump(ctx, tenantID)
	return &inv, nil
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req SaveInvoiceRequest) (*Invoice, error) {
	existing, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	previousType := existing.DocumentType
	if err := s.apply(ctx, tenantID, existing, req); err != nil {
		return nil, err
	}

	// A document keeps its number for life within its series. Switching
	// the type moves it to another series, which means a fresh number.
	if existing.DocumentType != previousType {
		numbers, err := s.repo.ListNumbers(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("list document numbers: %w", err)
		}
		existing.Number = docnum.Next(numbers, existing.DocumentType, existing.Date)
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, *existing); err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	s.bump(ctx, tenantID)
	return existing, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error) {
	return s.repo.Get(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, req ListInvoicesRequest) ([]Invoice, int, error) {
	return s.repo.List(ctx, tenantID, req)
}

func (s *Service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	s.bump(ctx, tenantID)
	return nil
}

// PrintPayload is everything the print view needs beyond the stored
// document: the seller block and the rupee amounts spelled out.
type PrintPayload struct {
	Invoice         *Invoice         `json:"invoice"`
	Company         *company.Profile `json:"company,omitempty"`
	AmountInWords   string           `json:"amountInWords"`
	TaxInWords      string           `json:"taxInWords"`
	GrandTotalLabel string           `json:"grandTotalFormatted"`
}

// Print assembles the render payload for one document.
func (s *Service) Print(ctx context.Context, tenantID, id uuid.UUID) (*PrintPayload, error) {
	inv, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.company.Get(ctx, tenantID)
	if err != nil && !errors.Is(err, company.ErrNotFound) {
		return nil, fmt.Errorf("get company profile: %w", err)
	}

	roundedTax, _ := money.RoundToUnit(inv.Totals.TotalTax)
	return &PrintPayload{
		Invoice:         inv,
		Company:         profile,
		AmountInWords:   words.ToWords(inv.Totals.GrandTotal),
		TaxInWords:      words.ToWords(roundedTax),
		GrandTotalLabel: money.Format(inv.Totals.GrandTotal),
	}, nil
}

func (s *Service) bump(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.Bump(ctx, tenantID); err != nil {
		s.logger.Warn("cache invalidation failed", slog.Any("error", err), slog.String("tenant_id", tenantID.String()))
	}
}
