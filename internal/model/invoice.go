package model

import (
	"time"

	"github.com/deppfellow/biztime/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

// Invoice is the full invoice record as returned by create and update.
type Invoice struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail is an invoice with its company nested in place of comp_code.
type InvoiceDetail struct {
	ID       int64      `json:"id"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
	Company  Company    `json:"company"`
}

// InvoiceRow is an invoice as scanned from the store.
type InvoiceRow struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate pgtype.Timestamptz
}

// InvoiceCompanyRow is one row of invoices LEFT JOIN companies.
type InvoiceCompanyRow struct {
	ID          int64
	Amt         float64
	Paid        bool
	AddDate     time.Time
	PaidDate    pgtype.Timestamptz
	Code        pgtype.Text
	Name        pgtype.Text
	Description pgtype.Text
}

// Requests

type GetInvoiceRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *GetInvoiceRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type CreateInvoiceRequest struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      float64 `json:"amt" validate:"required,gt=0"`
}

func (r *CreateInvoiceRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// UpdateInvoiceRequest changes the amount only.
type UpdateInvoiceRequest struct {
	ID  int64   `param:"id" json:"-"`
	Amt float64 `json:"amt" validate:"required,gt=0"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type DeleteInvoiceRequest struct {
	ID int64 `param:"id" json:"-"`
}

func (r *DeleteInvoiceRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// Responses

type InvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

type InvoiceResponse struct {
	Invoice Invoice `json:"invoice"`
}

type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}
