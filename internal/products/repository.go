package products

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/platform/db"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrDuplicateName = errors.New("product name already in use")
)

type Repository interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	List(ctx context.Context, tenantID uuid.UUID, req ListProductsRequest) ([]Product, int, error)
	Create(ctx context.Context, product Product) error
	Update(ctx context.Context, product Product) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const productColumns = `id, tenant_id, name, description, hsn_code, unit, default_rate, tax_rate, created_at, updated_at`

func (r *repository) Get(ctx context.Context, tenantID, id uuid.UUID) (*Product, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)

	var p Product
	err := row.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.HSNCode,
		&p.Unit, &p.DefaultRate, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, tenantID uuid.UUID, req ListProductsRequest) ([]Product, int, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE tenant_id = $1`
	countQuery := `SELECT COUNT(*) FROM products WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if req.Search != "" {
		query += ` AND (name ILIKE $2 OR hsn_code ILIKE $2)`
		countQuery += ` AND (name ILIKE $2 OR hsn_code ILIKE $2)`
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

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Name, &p.Description, &p.HSNCode,
			&p.Unit, &p.DefaultRate, &p.TaxRate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// Create relies on the (tenant_id, lower(name)) unique index for the
// case-insensitive name constraint.
func (r *repository) Create(ctx context.Context, product Product) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, tenant_id, name, description, hsn_code, unit, default_rate, tax_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.TenantID, product.Name, product.Description, product.HSNCode,
		product.Unit, product.DefaultRate, product.TaxRate, product.CreatedAt, product.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return ErrDuplicateName
	}
	return err
}

func (r *repository) Update(ctx context.Context, product Product) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE products
		SET name = $3, description = $4, hsn_code = $5, unit = $6,
		    default_rate = $7, tax_rate = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`,
		product.TenantID, product.ID, product.Name, product.Description, product.HSNCode,
		product.Unit, product.DefaultRate, product.TaxRate, product.UpdatedAt)
	if db.IsUniqueViolation(err) {
		return ErrDuplicateName
	}
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
		`DELETE FROM products WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
