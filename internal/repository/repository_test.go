package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestListCompanies(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`FROM\s+companies`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "name"}).
			AddRow("apple", "Apple").
			AddRow("ibm", "IBM"))

	companies, err := repo.ListCompanies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.CompanySummary{
		{Code: "apple", Name: "Apple"},
		{Code: "ibm", Name: "IBM"},
	}, companies)
}

func TestGetCompanyWithIndustries(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`LEFT JOIN industry_company`).
		WithArgs("apple").
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description", "industry_code"}).
			AddRow("apple", "Apple", "Maker of OSX.", "tech").
			AddRow("apple", "Apple", "Maker of OSX.", "consumer"))

	rows, err := repo.GetCompanyWithIndustries(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "apple", rows[0].Code)
	assert.True(t, rows[0].IndustryCode.Valid)
	assert.Equal(t, "consumer", rows[1].IndustryCode.String)
}

func TestGetCompanyWithoutIndustries(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`LEFT JOIN industry_company`).
		WithArgs("ibm").
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description", "industry_code"}).
			AddRow("ibm", "IBM", "Big Blue.", nil))

	rows, err := repo.GetCompanyWithIndustries(context.Background(), "ibm")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IndustryCode.Valid)
}

func TestCreateCompanyDuplicate(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`INSERT INTO\s+companies`).
		WithArgs("apple", "Apple", "Maker of OSX.").
		WillReturnError(&pgconn.PgError{Code: "23505", TableName: "companies", ConstraintName: "companies_pkey"})

	_, err := repo.CreateCompany(context.Background(), model.Company{Code: "apple", Name: "Apple", Description: "Maker of OSX."})
	require.Error(t, err)
	assert.True(t, sqlerr.IsUniqueViolation(err))
}

func TestUpdateCompany(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`UPDATE companies`).
		WithArgs("IBM2", "Big Blue 2.", "ibm").
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "description"}).
			AddRow("ibm", "IBM2", "Big Blue 2."))

	company, err := repo.UpdateCompany(context.Background(), "ibm", "IBM2", "Big Blue 2.")
	require.NoError(t, err)
	assert.Equal(t, &model.Company{Code: "ibm", Name: "IBM2", Description: "Big Blue 2."}, company)
}

func TestDeleteCompanyNotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewCompanyRepository(mock)

	mock.ExpectQuery(`DELETE FROM companies`).
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	err := repo.DeleteCompany(context.Background(), "nope")
	assert.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestListIndustriesWithCompanies(t *testing.T) {
	mock := newMock(t)
	repo := NewIndustryRepository(mock)

	mock.ExpectQuery(`FROM\s+industries i.*ORDER BY\s+i\.code,\s+ic\.comp_code`).
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry", "comp_code"}).
			AddRow("auto", "Automotive", nil).
			AddRow("tech", "Technology", "apple"))

	rows, err := repo.ListIndustriesWithCompanies(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].CompCode.Valid)
	assert.Equal(t, "apple", rows[1].CompCode.String)
}

func TestCreateIndustry(t *testing.T) {
	mock := newMock(t)
	repo := NewIndustryRepository(mock)

	mock.ExpectQuery(`INSERT INTO\s+industries`).
		WithArgs("auto", "Automotive").
		WillReturnRows(pgxmock.NewRows([]string{"code", "industry"}).AddRow("auto", "Automotive"))

	industry, err := repo.CreateIndustry(context.Background(), model.Industry{Code: "auto", Industry: "Automotive"})
	require.NoError(t, err)
	assert.Equal(t, &model.Industry{Code: "auto", Industry: "Automotive"}, industry)
}

func TestListInvoices(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)

	mock.ExpectQuery(`FROM\s+invoices`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code"}).
			AddRow(int64(1), "apple").
			AddRow(int64(3), "ibm"))

	invoices, err := repo.ListInvoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.InvoiceSummary{{ID: 1, CompCode: "apple"}, {ID: 3, CompCode: "ibm"}}, invoices)
}

func TestGetInvoiceWithCompany(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)
	added := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`LEFT JOIN companies`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "amt", "paid", "add_date", "paid_date", "code", "name", "description"}).
			AddRow(int64(1), 100.0, false, added, nil, "apple", "Apple", "Maker of OSX."))

	row, err := repo.GetInvoiceWithCompany(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row.ID)
	assert.Equal(t, 100.0, row.Amt)
	assert.True(t, added.Equal(row.AddDate))
	assert.False(t, row.PaidDate.Valid)
	assert.Equal(t, "Apple", row.Name.String)
}

func TestCreateInvoice(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)
	added := time.Now()

	mock.ExpectQuery(`INSERT INTO\s+invoices`).
		WithArgs("ibm", 200.0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(5), "ibm", 200.0, false, added, nil))

	row, err := repo.CreateInvoice(context.Background(), "ibm", 200)
	require.NoError(t, err)
	assert.Equal(t, int64(5), row.ID)
	assert.False(t, row.Paid)
	assert.False(t, row.PaidDate.Valid)
}

func TestCreateInvoiceUnknownCompany(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)

	mock.ExpectQuery(`INSERT INTO\s+invoices`).
		WithArgs("nope", 200.0).
		WillReturnError(&pgconn.PgError{Code: "23503", TableName: "invoices", ConstraintName: "invoices_comp_code_fkey"})

	_, err := repo.CreateInvoice(context.Background(), "nope", 200)
	require.Error(t, err)
	assert.True(t, sqlerr.IsForeignKeyViolation(err))
}

func TestUpdateInvoiceAmount(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)
	added := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`UPDATE invoices`).
		WithArgs(201.0, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "comp_code", "amt", "paid", "add_date", "paid_date"}).
			AddRow(int64(1), "apple", 201.0, false, added, nil))

	row, err := repo.UpdateInvoiceAmount(context.Background(), 1, 201)
	require.NoError(t, err)
	assert.Equal(t, 201.0, row.Amt)
	assert.Equal(t, "apple", row.CompCode)
}

func TestDeleteInvoice(t *testing.T) {
	mock := newMock(t)
	repo := NewInvoiceRepository(mock)

	mock.ExpectQuery(`DELETE FROM invoices`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectQuery(`DELETE FROM invoices`).
		WithArgs(int64(2)).
		WillReturnError(pgx.ErrNoRows)

	require.NoError(t, repo.DeleteInvoice(context.Background(), 2))
	assert.True(t, errors.Is(repo.DeleteInvoice(context.Background(), 2), pgx.ErrNoRows))
}
