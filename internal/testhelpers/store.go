// Package testhelpers provides an in-memory stand-in for the Postgres store.
//
// Store satisfies the company, industry and invoice store interfaces of the
// service package and fails the way Postgres does: *pgconn.PgError with
// SQLSTATE 23503 or 23505 for constraint violations and pgx.ErrNoRows when
// a lookup or mutation matches nothing.
package testhelpers

import (
	"context"
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// SeedDate is the add_date of every seeded invoice.
var SeedDate = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)

type association struct {
	industry string
	company  string
}

type Store struct {
	mu sync.Mutex

	companies    []model.Company
	industries   []model.Industry
	associations []association
	invoices     []model.InvoiceRow
	nextID       int64

	// Now stamps add_date on new invoices.
	Now func() time.Time
	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		Now:    time.Now,
	}
}

// NewSeededStore returns a store holding the apple/ibm fixture: industry
// tech with both companies, industry auto with none, invoices 1 and 2 for
// apple and 3 for ibm.
func NewSeededStore() *Store {
	s := NewStore()
	s.companies = []model.Company{
		{Code: "apple", Name: "Apple", Description: "Maker of OSX."},
		{Code: "ibm", Name: "IBM", Description: "Big Blue."},
	}
	s.industries = []model.Industry{
		{Code: "tech", Industry: "Technology"},
		{Code: "auto", Industry: "Automotive"},
	}
	s.associations = []association{
		{industry: "tech", company: "apple"},
		{industry: "tech", company: "ibm"},
	}
	for _, code := range []string{"apple", "apple", "ibm"} {
		s.invoices = append(s.invoices, model.InvoiceRow{
			ID:       s.nextID,
			CompCode: code,
			Amt:      100,
			AddDate:  SeedDate,
		})
		s.nextID++
	}
	return s
}

func pgError(code, table, constraint string) error {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           code,
		Message:        fmt.Sprintf("constraint %q violated", constraint),
		TableName:      table,
		ConstraintName: constraint,
	}
}

func (s *Store) companyIndex(code string) int {
	for i, c := range s.companies {
		if c.Code == code {
			return i
		}
	}
	return -1
}

func (s *Store) invoiceIndex(id int64) int {
	for i, inv := range s.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

// Companies

func (s *Store) ListCompanies(ctx context.Context) ([]model.CompanySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]model.CompanySummary, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, model.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return out, nil
}

func (s *Store) GetCompanyWithIndustries(ctx context.Context, code string) ([]model.CompanyIndustryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.companyIndex(code)
	if i < 0 {
		return nil, nil
	}
	c := s.companies[i]

	var rows []model.CompanyIndustryRow
	for _, a := range s.associations {
		if a.company == code {
			rows = append(rows, model.CompanyIndustryRow{
				Code:         c.Code,
				Name:         c.Name,
				Description:  c.Description,
				IndustryCode: pgtype.Text{String: a.industry, Valid: true},
			})
		}
	}
	if len(rows) == 0 {
		rows = append(rows, model.CompanyIndustryRow{Code: c.Code, Name: c.Name, Description: c.Description})
	}
	return rows, nil
}

func (s *Store) CreateCompany(ctx context.Context, company model.Company) (*model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	if s.companyIndex(company.Code) >= 0 {
		return nil, fmt.Errorf("failed to insert company code=%s: %w",
			company.Code, pgError("23505", "companies", "companies_pkey"))
	}
	for _, c := range s.companies {
		if c.Name == company.Name {
			return nil, fmt.Errorf("failed to insert company code=%s: %w",
				company.Code, pgError("23505", "companies", "companies_name_key"))
		}
	}

	s.companies = append(s.companies, company)
	created := company
	return &created, nil
}

func (s *Store) UpdateCompany(ctx context.Context, code, name, description string) (*model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.companyIndex(code)
	if i < 0 {
		return nil, fmt.Errorf("failed to update company code=%s: %w", code, pgx.ErrNoRows)
	}
	s.companies[i].Name = name
	s.companies[i].Description = description
	updated := s.companies[i]
	return &updated, nil
}

// DeleteCompany cascades to the company's invoices and industry
// associations, as the schema's ON DELETE CASCADE does.
func (s *Store) DeleteCompany(ctx context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	i := s.companyIndex(code)
	if i < 0 {
		return fmt.Errorf("failed to delete company code=%s: %w", code, pgx.ErrNoRows)
	}
	s.companies = append(s.companies[:i], s.companies[i+1:]...)

	invoices := s.invoices[:0]
	for _, inv := range s.invoices {
		if inv.CompCode != code {
			invoices = append(invoices, inv)
		}
	}
	s.invoices = invoices

	associations := s.associations[:0]
	for _, a := range s.associations {
		if a.company != code {
			associations = append(associations, a)
		}
	}
	s.associations = associations
	return nil
}

// Industries

func (s *Store) ListIndustriesWithCompanies(ctx context.Context) ([]model.IndustryCompanyRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	var rows []model.IndustryCompanyRow
	for _, ind := range s.industries {
		matched := false
		for _, a := range s.associations {
			if a.industry == ind.Code {
				matched = true
				rows = append(rows, model.IndustryCompanyRow{
					Code:     ind.Code,
					Industry: ind.Industry,
					CompCode: pgtype.Text{String: a.company, Valid: true},
				})
			}
		}
		if !matched {
			rows = append(rows, model.IndustryCompanyRow{Code: ind.Code, Industry: ind.Industry})
		}
	}
	slices.SortFunc(rows, func(a, b model.IndustryCompanyRow) int {
		return cmp.Or(cmp.Compare(a.Code, b.Code), cmp.Compare(a.CompCode.String, b.CompCode.String))
	})
	return rows, nil
}

func (s *Store) CreateIndustry(ctx context.Context, industry model.Industry) (*model.Industry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	for _, ind := range s.industries {
		if ind.Code == industry.Code {
			return nil, fmt.Errorf("failed to insert industry code=%s: %w",
				industry.Code, pgError("23505", "industries", "industries_pkey"))
		}
	}

	s.industries = append(s.industries, industry)
	created := industry
	return &created, nil
}

// Invoices

func (s *Store) ListInvoices(ctx context.Context) ([]model.InvoiceSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]model.InvoiceSummary, 0, len(s.invoices))
	for _, inv := range s.invoices {
		out = append(out, model.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return out, nil
}

func (s *Store) GetInvoiceWithCompany(ctx context.Context, id int64) (*model.InvoiceCompanyRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.invoiceIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("failed to get invoice id=%d: %w", id, pgx.ErrNoRows)
	}
	inv := s.invoices[i]

	row := &model.InvoiceCompanyRow{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
	if c := s.companyIndex(inv.CompCode); c >= 0 {
		company := s.companies[c]
		row.Code = pgtype.Text{String: company.Code, Valid: true}
		row.Name = pgtype.Text{String: company.Name, Valid: true}
		row.Description = pgtype.Text{String: company.Description, Valid: true}
	}
	return row, nil
}

func (s *Store) CreateInvoice(ctx context.Context, compCode string, amt float64) (*model.InvoiceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	if s.companyIndex(compCode) < 0 {
		return nil, fmt.Errorf("failed to insert invoice for comp_code=%s: %w",
			compCode, pgError("23503", "invoices", "invoices_comp_code_fkey"))
	}

	inv := model.InvoiceRow{
		ID:       s.nextID,
		CompCode: compCode,
		Amt:      amt,
		AddDate:  s.Now(),
	}
	s.nextID++
	s.invoices = append(s.invoices, inv)
	return &inv, nil
}

func (s *Store) UpdateInvoiceAmount(ctx context.Context, id int64, amt float64) (*model.InvoiceRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	i := s.invoiceIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("failed to update invoice id=%d: %w", id, pgx.ErrNoRows)
	}
	s.invoices[i].Amt = amt
	updated := s.invoices[i]
	return &updated, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	i := s.invoiceIndex(id)
	if i < 0 {
		return fmt.Errorf("failed to delete invoice id=%d: %w", id, pgx.ErrNoRows)
	}
	s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
	return nil
}

// InvoiceCount reports how many invoices are stored.
func (s *Store) InvoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invoices)
}
