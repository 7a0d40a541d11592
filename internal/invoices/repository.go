package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerline/ledgerline/internal/docnum"
	"github.com/ledgerline/ledgerline/internal/platform/db"
)

var (
	ErrNotFound        = errors.New("invoice not found")
	ErrDuplicateNumber = errors.New("document number already in use")
)

type Repository interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context, tenantID uuid.UUID, req ListInvoicesRequest) ([]Invoice, int, error)
	ListNumbers(ctx context.Context, tenantID uuid.UUID) ([]docnum.Document, error)
	Create(ctx context.Context, invoice Invoice) error
	Update(ctx context.Context, invoice Invoice) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `id, tenant_id, document_type, number, date, buyer_snapshot, consignee_snapshot,
	freight, tax_rate, company_state_code, eway_bill_no, vehicle_no, dispatch_doc_no,
	mode_of_payment, terms_of_delivery,
	subtotal, taxable_value, total_tax, cgst, sgst, igst, grand_total, round_off,
	total_quantity, intra_state, created_at, updated_at`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	var buyerRaw []byte
	var consigneeRaw []byte

	err := row.Scan(&inv.ID, &inv.TenantID, &inv.DocumentType, &inv.Number, &inv.Date,
		&buyerRaw, &consigneeRaw,
		&inv.Freight, &inv.TaxRatePercent, &inv.CompanyState, &inv.EWayBillNo, &inv.VehicleNo,
		&inv.DispatchDocNo, &inv.ModeOfPayment, &inv.TermsOfDelivery,
		&inv.Totals.Subtotal, &inv.Totals.TaxableValue, &inv.Totals.TotalTax,
		&inv.Totals.CGST, &inv.Totals.SGST, &inv.Totals.IGST, &inv.Totals.GrandTotal,
		&inv.Totals.RoundOff, &inv.Totals.TotalQuantity, &inv.Totals.IntraState,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(buyerRaw, &inv.Buyer); err != nil {
		return nil, err
	}
	if len(consigneeRaw) > 0 {
		var snap PartySnapshot
		if err := json.Unmarshal(consigneeRaw, &snap); err != nil {
			return nil, err
		}
		inv.Consignee = &snap
	}
	inv.Totals.Freight = inv.Freight
	inv.Totals.RatePercent = inv.TaxRatePercent
	return &inv, nil
}

func (r *repository) Get(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	inv, err := scanInvoice(row)
	if err != nil {
		return nil, err
	}

	lines, err := r.fetchLines(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Lines = lines
	return inv, nil
}

func (r *repository) fetchLines(ctx context.Context, invoiceID uuid.UUID) ([]LineItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT description, hsn_code, quantity, rate, unit, amount
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY line_order`, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []LineItem
	for rows.Next() {
		var l LineItem
		if err := rows.Scan(&l.Description, &l.HSNCode, &l.Quantity, &l.Rate, &l.Unit, &l.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *repository) List(ctx context.Context, tenantID uuid.UUID, req ListInvoicesRequest) ([]Invoice, int, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1`
	countQuery := `SELECT COUNT(*) FROM invoices WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	addFilter := func(clause string, value interface{}) {
		pos := strconv.Itoa(len(args) + 1)
		query += ` AND ` + clause + ` $` + pos
		countQuery += ` AND ` + clause + ` $` + pos
		args = append(args, value)
	}

	if req.DocumentType != "" {
		addFilter("document_type =", req.DocumentType)
	}
	if req.BuyerID != nil {
		addFilter("buyer_snapshot->>'partyId' =", req.BuyerID.String())
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

	query += ` ORDER BY date DESC, number DESC`
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

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *inv)
	}
	return out, total, rows.Err()
}

func (r *repository) ListNumbers(ctx context.Context, tenantID uuid.UUID) ([]docnum.Document, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT document_type, number FROM invoices WHERE tenant_id = $1`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []docnum.Document
	for rows.Next() {
		var doc docnum.Document
		if err := rows.Scan(&doc.Type, &doc.Number); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, invoice Invoice) error {
	buyerRaw, consigneeRaw, err := marshalSnapshots(invoice)
	if err != nil {
		return err
	}

	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoices (id, tenant_id, document_type, number, date, buyer_snapshot, consignee_snapshot,
				freight, tax_rate, company_state_code, eway_bill_no, vehicle_no, dispatch_doc_no,
				mode_of_payment, terms_of_delivery,
				subtotal, taxable_value, total_tax, cgst, sgst, igst, grand_total, round_off,
				total_quantity, intra_state, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
				$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`,
			invoice.ID, invoice.TenantID, invoice.DocumentType, invoice.Number, invoice.Date,
			buyerRaw, consigneeRaw,
			invoice.Freight, invoice.TaxRatePercent, invoice.CompanyState, invoice.EWayBillNo,
			invoice.VehicleNo, invoice.DispatchDocNo, invoice.ModeOfPayment, invoice.TermsOfDelivery,
			invoice.Totals.Subtotal, invoice.Totals.TaxableValue, invoice.Totals.TotalTax,
			invoice.Totals.CGST, invoice.Totals.SGST, invoice.Totals.IGST, invoice.Totals.GrandTotal,
			invoice.Totals.RoundOff, invoice.Totals.TotalQuantity, invoice.Totals.IntraState,
			invoice.CreatedAt, invoice.UpdatedAt)
		if db.IsUniqueViolation(err) {
			return ErrDuplicateNumber
		}
		if err != nil {
			return err
		}
		return insertLines(ctx, tx, invoice.ID, invoice.Lines)
	})
}

func (r *repository) Update(ctx context.Context, invoice Invoice) error {
	buyerRaw, consigneeRaw, err := marshalSnapshots(invoice)
	if err != nil {
		return err
	}

	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE invoices
			SET document_type = $3, number = $4, date = $5, buyer_snapshot = $6, consignee_snapshot = $7,
			    freight = $8, tax_rate = $9, company_state_code = $10, eway_bill_no = $11,
			    vehicle_no = $12, dispatch_doc_no = $13, mode_of_payment = $14, terms_of_delivery = $15,
			    subtotal = $16, taxable_value = $17, total_tax = $18, cgst = $19, sgst = $20,
			    igst = $21, grand_total = $22, round_off = $23, total_quantity = $24,
			    intra_state = $25, updated_at = $26
			WHERE tenant_id = $1 AND id = $2`,
			invoice.TenantID, invoice.ID, invoice.DocumentType, invoice.Number, invoice.Date,
			buyerRaw, consigneeRaw,
			invoice.Freight, invoice.TaxRatePercent, invoice.CompanyState, invoice.EWayBillNo,
			invoice.VehicleNo, invoice.DispatchDocNo, invoice.ModeOfPayment, invoice.TermsOfDelivery,
			invoice.Totals.Subtotal, invoice.Totals.TaxableValue, invoice.Totals.TotalTax,
			invoice.Totals.CGST, invoice.Totals.SGST, invoice.Totals.IGST, invoice.Totals.GrandTotal,
			invoice.Totals.RoundOff, invoice.Totals.TotalQuantity, invoice.Totals.IntraState,
			invoice.UpdatedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, invoice.ID); err != nil {
			return err
		}
		return insertLines(ctx, tx, invoice.ID, invoice.Lines)
	})
}

func (r *repository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM invoice_lines WHERE invoice_id = $1`, id); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE tenant_id = $1 AND id = $2`, tenantID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func insertLines(ctx context.Context, tx pgx.Tx, invoiceID uuid.UUID, lines []LineItem) error {
	for i, line := range lines {
		_, err := tx.Exec(ctx, `
			INSERT INTO invoice_lines (invoice_id, line_order, description, hsn_code, quantity, rate, unit, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			invoiceID, i+1, line.Description, line.HSNCode, line.Quantity, line.Rate, line.Unit, line.Amount)
		if err != nil {
			return err
		}
	}
	return nil
}

func marshalSnapshots(invoice Invoice) ([]byte, []byte, error) {
	buyerRaw, err := json.Marshal(invoice.Buyer)
	if err != nil {
		return nil, nil, err
	}
	var consigneeRaw []byte
	if invoice.Consignee != nil {
		consigneeRaw, err = json.Marshal(invoice.Consignee)
		if err != nil {
			return nil, nil, err
		}
	}
	return buyerRaw, consigneeRaw, nil
}
