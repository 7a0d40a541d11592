package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/platform/cache"
)

// View is the complete ledger response for one party and period: the
// reconciled report, its T-format statement rendering, and the side of
// the closing balance.
type View struct {
	PartyID         uuid.UUID `json:"partyId"`
	PartyName       string    `json:"partyName"`
	Report          Report    `json:"report"`
	Statement       Statement `json:"statement"`
	ClosingPosition string    `json:"closingPosition"`
}

// Service reconciles party ledgers. Results are served through the
// versioned cache; any invoice or payment write bumps the tenant version
// and implicitly invalidates every cached ledger.
type Service struct {
	repo    Repository
	parties parties.Repository
	cache   *cache.Cache
}

func NewService(repo Repository, partyRepo parties.Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, parties: partyRepo, cache: c}
}

// Reconcile builds the ledger view for one party over the inclusive
// [from, to] period.
func (s *Service) Reconcile(ctx context.Context, tenantID, partyID uuid.UUID, from, to time.Time) (*View, error) {
	party, err := s.parties.Get(ctx, tenantID, partyID)
	if err != nil {
		return nil, fmt.Errorf("get party: %w", err)
	}

	key, err := s.cache.Key(ctx, tenantID, "ledger", partyID.String(),
		from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("cache key: %w", err)
	}

	var view View
	err = s.cache.FetchJSON(ctx, key, &view, func(ctx context.Context) (any, error) {
		return s.build(ctx, tenantID, party, from, to)
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *Service) build(ctx context.Context, tenantID uuid.UUID, party *parties.Party, from, to time.Time) (*View, error) {
	var debits, credits []Entry
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		debits, err = s.repo.Debits(gctx, tenantID, party.ID)
		if err != nil {
			return fmt.Errorf("load debits: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		credits, err = s.repo.Credits(gctx, tenantID, party.ID)
		if err != nil {
			return fmt.Errorf("load credits: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := Reconcile(debits, credits, from, to)
	return &View{
		PartyID:         party.ID,
		PartyName:       party.Name,
		Report:          report,
		Statement:       BuildStatement(report),
		ClosingPosition: Position(report.ClosingBalance),
	}, nil
}
