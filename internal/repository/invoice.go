package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
)

type InvoiceRepository struct {
	db DBTX
}

func NewInvoiceRepository(db DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]model.InvoiceSummary, error) {
	stmt := `
		SELECT
			id,
			comp_code
		FROM
			invoices
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list invoices query: %w", err)
	}

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.InvoiceSummary, error) {
		var i model.InvoiceSummary
		err := row.Scan(&i.ID, &i.CompCode)
		return i, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:invoices: %w", err)
	}

	return invoices, nil
}

func (r *InvoiceRepository) GetInvoiceWithCompany(ctx context.Context, id int64) (*model.InvoiceCompanyRow, error) {
	stmt := `
		SELECT
			i.id,
			i.amt,
			i.paid,
			i.add_date,
			i.paid_date,
			c.code,
			c.name,
			c.description
		FROM
			invoices i
			LEFT JOIN companies c ON c.code = i.comp_code
		WHERE
			i.id = $1
	`

	var row model.InvoiceCompanyRow
	err := r.db.QueryRow(ctx, stmt, id).Scan(
		&row.ID,
		&row.Amt,
		&row.Paid,
		&row.AddDate,
		&row.PaidDate,
		&row.Code,
		&row.Name,
		&row.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice id=%d: %w", id, err)
	}

	return &row, nil
}

// CreateInvoice inserts an invoice. paid, add_date and paid_date take their
// column defaults. An unknown comp_code fails with SQLSTATE 23503.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, compCode string, amt float64) (*model.InvoiceRow, error) {
	stmt := `
		INSERT INTO
			invoices (comp_code, amt)
		VALUES
			($1, $2)
		RETURNING
			id, comp_code, amt, paid, add_date, paid_date
	`

	row, err := scanInvoice(r.db.QueryRow(ctx, stmt, compCode, amt))
	if err != nil {
		return nil, fmt.Errorf("failed to insert invoice for comp_code=%s: %w", compCode, err)
	}

	return row, nil
}

func (r *InvoiceRepository) UpdateInvoiceAmount(ctx context.Context, id int64, amt float64) (*model.InvoiceRow, error) {
	stmt := `
		UPDATE invoices
		SET
			amt = $1
		WHERE
			id = $2
		RETURNING
			id, comp_code, amt, paid, add_date, paid_date
	`

	row, err := scanInvoice(r.db.QueryRow(ctx, stmt, amt, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice id=%d: %w", id, err)
	}

	return row, nil
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	stmt := `
		DELETE FROM invoices
		WHERE
			id = $1
		RETURNING
			id
	`

	var deleted int64
	if err := r.db.QueryRow(ctx, stmt, id).Scan(&deleted); err != nil {
		return fmt.Errorf("failed to delete invoice id=%d: %w", id, err)
	}

	return nil
}

func scanInvoice(row pgx.Row) (*model.InvoiceRow, error) {
	var i model.InvoiceRow
	err := row.Scan(&i.ID, &i.CompCode, &i.Amt, &i.Paid, &i.AddDate, &i.PaidDate)
	if err != nil {
		return nil, err
	}
	return &i, nil
}
