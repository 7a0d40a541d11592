package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/parties"
	"github.com/ledgerline/ledgerline/internal/platform/cache"
)

type memoryLedgerRepo struct {
	debits  []Entry
	credits []Entry
	calls   int
}

func (r *memoryLedgerRepo) Debits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error) {
	r.calls++
	return r.debits, nil
}

func (r *memoryLedgerRepo) Credits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error) {
	return r.credits, nil
}

type memoryPartyRepo struct {
	parties map[uuid.UUID]*parties.Party
}

func (r *memoryPartyRepo) Get(ctx context.Context, tenantID, id uuid.UUID) (*parties.Party, error) {
	p, ok := r.parties[id]
	if !ok || p.TenantID != tenantID {
		return nil, parties.ErrNotFound
	}
	return p, nil
}

func (r *memoryPartyRepo) List(ctx context.Context, tenantID uuid.UUID, req parties.ListPartiesRequest) ([]parties.Party, int, error) {
	return nil, 0, nil
}

func (r *memoryPartyRepo) Create(ctx context.Context, party parties.Party) error { return nil }
func (r *memoryPartyRepo) Update(ctx context.Context, party parties.Party) error { return nil }
func (r *memoryPartyRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return nil
}

func newLedgerFixture(t *testing.T, c *cache.Cache) (*Service, *memoryLedgerRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	tenant := uuid.New()
	party := uuid.New()
	repo := &memoryLedgerRepo{
		debits: []Entry{
			{Date: day(5), Ref: "NFI/2025-26/1", Description: "Tax Invoice", Amount: 1000},
		},
		credits: []Entry{
			{Date: day(10), Ref: "NEFT-1", Description: "Bank Transfer", Amount: 400},
		},
	}
	partyRepo := &memoryPartyRepo{parties: map[uuid.UUID]*parties.Party{
		party: {ID: party, TenantID: tenant, Name: "Sharma Traders"},
	}}
	return NewService(repo, partyRepo, c), repo, tenant, party
}

func TestReconcileView(t *testing.T) {
	service, _, tenant, party := newLedgerFixture(t, nil)

	view, err := service.Reconcile(context.Background(), tenant, party, day(1), day(20))
	require.NoError(t, err)

	require.Equal(t, "Sharma Traders", view.PartyName)
	require.Zero(t, view.Report.OpeningBalance)
	require.InDelta(t, 1000, view.Report.TotalDebits, 1e-9)
	require.InDelta(t, 400, view.Report.TotalCredits, 1e-9)
	require.InDelta(t, 600, view.Report.ClosingBalance, 1e-9)
	require.Equal(t, "Dr", view.ClosingPosition)
	require.NotEmpty(t, view.Statement.DebitLines)
}

func TestReconcileUnknownParty(t *testing.T) {
	service, _, tenant, _ := newLedgerFixture(t, nil)

	_, err := service.Reconcile(context.Background(), tenant, uuid.New(), day(1), day(20))
	require.ErrorIs(t, err, parties.ErrNotFound)
}

func TestReconcileServedFromCache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	c := cache.NewCache(client, "ledgerline", time.Minute)

	service, repo, tenant, party := newLedgerFixture(t, c)
	ctx := context.Background()

	first, err := service.Reconcile(ctx, tenant, party, day(1), day(20))
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	second, err := service.Reconcile(ctx, tenant, party, day(1), day(20))
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)
	require.Equal(t, first.Report.ClosingBalance, second.Report.ClosingBalance)

	// A different period is a different key.
	_, err = service.Reconcile(ctx, tenant, party, day(11), day(20))
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}

func TestReconcileCacheInvalidatedByBump(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	c := cache.NewCache(client, "ledgerline", time.Minute)

	service, repo, tenant, party := newLedgerFixture(t, c)
	ctx := context.Background()

	_, err := service.Reconcile(ctx, tenant, party, day(1), day(20))
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	require.NoError(t, c.Bump(ctx, tenant))

	repo.debits = append(repo.debits, Entry{Date: day(15), Ref: "NFI/2025-26/2", Description: "Tax Invoice", Amount: 500})
	view, err := service.Reconcile(ctx, tenant, party, day(1), day(20))
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
	require.InDelta(t, 1100, view.Report.ClosingBalance, 1e-9)
}
