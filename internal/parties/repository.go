package parties

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("party not found")

type Repository interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*Party, error)
	List(ctx context.Context, tenantID uuid.UUID, req ListPartiesRequest) ([]Party, int, error)
	Create(ctx context.Context, party Party) error
	Update(ctx context.Context, party Party) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const partyColumns = `id, tenant_id, name, type, gstin, state, state_code, address, shipping_address, created_at, updated_at`

func scanParty(row pgx.Row) (*Party, error) {
	var p Party
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Type, &p.GSTIN, &p.State,
		&p.StateCode, &p.Address, &p.ShippingAddress, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Get(ctx context.Context, tenantID, id uuid.UUID) (*Party, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+partyColumns+` FROM parties WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	return scanParty(row)
}

func (r *repository) List(ctx context.Context, tenantID uuid.UUID, req ListPartiesRequest) ([]Party, int, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE tenant_id = $1`
	countQuery := `SELECT COUNT(*) FROM parties WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if req.Search != "" {
		query += ` AND name ILIKE $2`
		countQuery += ` AND name ILIKE $2`
		args = append(args, "%"+req.Search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY name`
	if req.PerPage > 0 {
		argPos := len(args)
		query += ` LIMIT $` + strconv.Itoa(argPos+1) + ` OFFSET $` + strconv.Itoa(argPos+2)
		offset := (req.Page - 1) * req.PerPage
		if offset < 0 {
			offset = 0
		}
		args = append(args, req.PerPage, offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Party
	for rows.Next() {
		var p Party
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Type, &p.GSTIN, &p.State,
			&p.StateCode, &p.Address, &p.ShippingAddress, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, party Party) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO parties (id, tenant_id, name, type, gstin, state, state_code, address, shipping_address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		party.ID, party.TenantID, party.Name, party.Type, party.GSTIN, party.State,
		party.StateCode, party.Address, party.ShippingAddress, party.CreatedAt, party.UpdatedAt)
	return err
}

func (r *repository) Update(ctx context.Context, party Party) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE parties
		SET name = $3, type = $4, gstin = $5, state = $6, state_code = $7,
		    address = $8, shipping_address = $9, updated_at = $10
		WHERE tenant_id = $1 AND id = $2`,
		party.TenantID, party.ID, party.Name, party.Type, party.GSTIN, party.State,
		party.StateCode, party.Address, party.ShippingAddress, party.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM parties WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
