package payments

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/parties"
)

type memoryPaymentRepo struct {
	payments map[uuid.UUID]*Payment
}

func newMemoryPaymentRepo() *memoryPaymentRepo {
	return &memoryPaymentRepo{payments: make(map[uuid.UUID]*Payment)}
}

func (r *memoryPaymentRepo) Get(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok || p.TenantID != tenantID {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memoryPaymentRepo) List(ctx context.Context, tenantID uuid.UUID, req ListPaymentsRequest) ([]Payment, int, error) {
	var out []Payment
	for _, p := range r.payments {
		if p.TenantID != tenantID {
			continue
		}
		if req.PartyID != nil && p.PartyID != *req.PartyID {
			continue
		}
		out = append(out, *p)
	}
	return out, len(out), nil
}

func (r *memoryPaymentRepo) Create(ctx context.Context, payment Payment) error {
	r.payments[payment.ID] = &payment
	return nil
}

func (r *memoryPaymentRepo) Update(ctx context.Context, payment Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return ErrNotFound
	}
	r.payments[payment.ID] = &payment
	return nil
}

func (r *memoryPaymentRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, ok := r.payments[id]; !ok {
		return ErrNotFound
	}
	delete(r.payments, id)
	return nil
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

func newTestService(t *testing.T) (*Service, uuid.UUID, uuid.UUID) {
	t.Helper()
	tenant := uuid.New()
	party := uuid.New()
	partyRepo := &memoryPartyRepo{parties: map[uuid.UUID]*parties.Party{
		party: {ID: party, TenantID: tenant, Name: "Sharma Traders"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(newMemoryPaymentRepo(), partyRepo, nil, logger), tenant, party
}

func TestCreatePayment(t *testing.T) {
	service, tenant, party := newTestService(t)

	payment, err := service.Create(context.Background(), tenant, SavePaymentRequest{
		PartyID:     party,
		Date:        "2025-06-10",
		Amount:      5000,
		Mode:        string(ModeBankTransfer),
		ReferenceNo: "NEFT-991",
	})
	require.NoError(t, err)
	require.Equal(t, party, payment.PartyID)
	require.Equal(t, ModeBankTransfer, payment.Mode)
	require.InDelta(t, 5000, payment.Amount, 1e-9)
	require.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), payment.Date)
}

func TestCreatePaymentUnknownParty(t *testing.T) {
	service, tenant, _ := newTestService(t)

	_, err := service.Create(context.Background(), tenant, SavePaymentRequest{
		PartyID: uuid.New(),
		Date:    "2025-06-10",
		Amount:  100,
		Mode:    string(ModeCash),
	})
	require.ErrorIs(t, err, parties.ErrNotFound)
}

func TestCreatePaymentBadDate(t *testing.T) {
	service, tenant, party := newTestService(t)

	_, err := service.Create(context.Background(), tenant, SavePaymentRequest{
		PartyID: party,
		Date:    "10-06-2025",
		Amount:  100,
		Mode:    string(ModeCash),
	})
	require.Error(t, err)
}

func TestUpdatePayment(t *testing.T) {
	service, tenant, party := newTestService(t)
	ctx := context.Background()

	payment, err := service.Create(ctx, tenant, SavePaymentRequest{
		PartyID: party,
		Date:    "2025-06-10",
		Amount:  5000,
		Mode:    string(ModeCheque),
	})
	require.NoError(t, err)

	updated, err := service.Update(ctx, tenant, payment.ID, SavePaymentRequest{
		PartyID:     party,
		Date:        "2025-06-12",
		Amount:      4500,
		Mode:        string(ModeUPI),
		Description: "corrected amount",
	})
	require.NoError(t, err)
	require.Equal(t, payment.ID, updated.ID)
	require.InDelta(t, 4500, updated.Amount, 1e-9)
	require.Equal(t, ModeUPI, updated.Mode)
	require.Equal(t, payment.CreatedAt, updated.CreatedAt)
}

func TestDeletePayment(t *testing.T) {
	service, tenant, party := newTestService(t)
	ctx := context.Background()

	payment, err := service.Create(ctx, tenant, SavePaymentRequest{
		PartyID: party,
		Date:    "2025-06-10",
		Amount:  100,
		Mode:    string(ModeCash),
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, tenant, payment.ID))
	_, err = service.Get(ctx, tenant, payment.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
