package payments

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("payment not found")

type Repository interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error)
	List(ctx context.Context, tenantID uuid.UUID, req ListPaymentsRequest) ([]Payment, int, error)
	Create(ctx context.Context, payment Payment) error
	Update(ctx context.Context, payment Payment) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const paymentColumns = `id, tenant_id, party_id, date, amount, mode, reference_no, description, created_at, updated_at`

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.TenantID, &p.PartyID, &p.Date, &p.Amount, &p.Mode,
		&p.ReferenceNo, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) Get(ctx context.Context, tenantID, id uuid.UUID) (*Payment, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	return scanPayment(row)
}

func (r *repository) List(ctx context.Context, tenantID uuid.UUID, req ListPaymentsRequest) ([]Payment, int, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1`
	countQuery := `SELECT COUNT(*) FROM payments WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	addFilter := func(clause string, value interface{}) {
		pos := strconv.Itoa(len(args) + 1)
		query += ` AND ` + clause + ` $` + pos
		countQuery += ` AND ` + clause + ` $` + pos
		args = append(args, value)
	}

	if req.PartyID != nil {
		addFilter("party_id =", *req.PartyID)
	}
	if req.DateFrom != "" {
		addFilter("date >=", req.DateFrom)
	}
	if req.DateTo != "" {
		addFilter("date <=", req.DateTo)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY date DESC, created_at DESC`
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

	var out []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *p)
	}
	return out, total, rows.Err()
}

func (r *repository) Create(ctx context.Context, payment Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, tenant_id, party_id, date, amount, mode, reference_no, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		payment.ID, payment.TenantID, payment.PartyID, payment.Date, payment.Amount,
		payment.Mode, payment.ReferenceNo, payment.Description, payment.CreatedAt, payment.UpdatedAt)
	return err
}

func (r *repository) Update(ctx context.Context, payment Payment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE payments
		SET party_id = $3, date = $4, amount = $5, mode = $6, reference_no = $7, description = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`,
		payment.TenantID, payment.ID, payment.PartyID, payment.Date, payment.Amount,
		payment.Mode, payment.ReferenceNo, payment.Description, payment.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
