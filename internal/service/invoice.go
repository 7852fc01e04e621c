package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/mapper"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

type InvoiceStore interface {
	ListInvoices(ctx context.Context) ([]model.InvoiceSummary, error)
	GetInvoiceWithCompany(ctx context.Context, id int64) (*model.InvoiceCompanyRow, error)
	CreateInvoice(ctx context.Context, compCode string, amt float64) (*model.InvoiceRow, error)
	UpdateInvoiceAmount(ctx context.Context, id int64, amt float64) (*model.InvoiceRow, error)
	DeleteInvoice(ctx context.Context, id int64) error
}

type InvoiceService struct {
	store InvoiceStore
}

func NewInvoiceService(store InvoiceStore) *InvoiceService {
	return &InvoiceService{store: store}
}

func (s *InvoiceService) List(ctx context.Context) ([]model.InvoiceSummary, error) {
	invoices, err := s.store.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []model.InvoiceSummary{}
	}
	return invoices, nil
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	row, err := s.store.GetInvoiceWithCompany(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, invoiceNotFound(id)
	}
	if err != nil {
		return nil, err
	}

	detail := mapper.NestInvoiceCompany(*row)
	return &detail, nil
}

// Create adds an unpaid invoice. A comp_code that names no company is the
// caller's mistake and is reported as such instead of as a server error.
func (s *InvoiceService) Create(ctx context.Context, req *model.CreateInvoiceRequest) (*model.Invoice, error) {
	row, err := s.store.CreateInvoice(ctx, req.CompCode, req.Amt)
	if sqlerr.IsForeignKeyViolation(err) {
		return nil, errs.NewConstraintError(
			fmt.Sprintf("Invalid comp code: %s", req.CompCode),
			"INVOICE_COMPANY_NOT_FOUND",
		)
	}
	if err != nil {
		return nil, err
	}

	invoice := mapper.InvoiceFromRow(*row)
	return &invoice, nil
}

func (s *InvoiceService) Update(ctx context.Context, req *model.UpdateInvoiceRequest) (*model.Invoice, error) {
	row, err := s.store.UpdateInvoiceAmount(ctx, req.ID, req.Amt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, invoiceNotFound(req.ID)
	}
	if err != nil {
		return nil, err
	}

	invoice := mapper.InvoiceFromRow(*row)
	return &invoice, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	err := s.store.DeleteInvoice(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return invoiceNotFound(id)
	}
	return err
}

func invoiceNotFound(id int64) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Invalid ID: %d", id), true, nil)
}
