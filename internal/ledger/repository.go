package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository loads a party's full transaction history. Both sides come
// back unbounded in time: the reconciliation needs pre-period entries for
// the opening balance.
type Repository interface {
	Debits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error)
	Credits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error)
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func collectEntries(rows pgx.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Date, &e.Ref, &e.Description, &e.Amount); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Debits are the party's tax invoices. Proforma invoices and quotations
// never touch the ledger.
func (r *repository) Debits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, number, document_type, grand_total
		FROM invoices
		WHERE tenant_id = $1 AND document_type = 'Tax Invoice' AND buyer_snapshot->>'partyId' = $2`,
		tenantID, partyID.String())
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}

func (r *repository) Credits(ctx context.Context, tenantID, partyID uuid.UUID) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date, reference_no, mode, amount
		FROM payments
		WHERE tenant_id = $1 AND party_id = $2`,
		tenantID, partyID)
	if err != nil {
		return nil, err
	}
	return collectEntries(rows)
}
