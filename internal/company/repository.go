package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("company profile not found")

type Repository interface {
	Get(ctx context.Context, tenantID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, profile Profile) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) Get(ctx context.Context, tenantID uuid.UUID) (*Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT tenant_id, name, address, gstin, state, state_code,
		       bank_name, account_no, ifsc, branch, created_at, updated_at
		FROM company_profiles WHERE tenant_id = $1`, tenantID)

	var p Profile
	err := row.Scan(&p.TenantID, &p.Name, &p.Address, &p.GSTIN, &p.State, &p.StateCode,
		&p.BankName, &p.AccountNo, &p.IFSC, &p.Branch, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Upsert(ctx context.Context, profile Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO company_profiles (tenant_id, name, address, gstin, state, state_code,
		                              bank_name, account_no, ifsc, branch, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (tenant_id) DO UPDATE SET
			name = EXCLUDED.name, address = EXCLUDED.address, gstin = EXCLUDED.gstin,
			state = EXCLUDED.state, state_code = EXCLUDED.state_code,
			bank_name = EXCLUDED.bank_name, account_no = EXCLUDED.account_no,
			ifsc = EXCLUDED.ifsc, branch = EXCLUDED.branch, updated_at = EXCLUDED.updated_at`,
		profile.TenantID, profile.Name, profile.Address, profile.GSTIN, profile.State,
		profile.StateCode, profile.BankName, profile.AccountNo, profile.IFSC, profile.Branch,
		profile.CreatedAt, profile.UpdatedAt)
	return err
}
