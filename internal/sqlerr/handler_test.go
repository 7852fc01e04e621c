package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestErrCode(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	unique := &pgconn.PgError{Code: "23505"}

	assert.Equal(t, ForeignKeyViolation, ErrCode(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsUniqueViolation(unique))
	assert.Equal(t, UniqueViolation, ErrCode(ConvertPgError(unique)))

	assert.Equal(t, Other, ErrCode(errors.New("boom")))
	assert.Equal(t, Other, ErrCode(nil))
	assert.False(t, IsForeignKeyViolation(nil))
}

func TestHandleErrorForeignKey(t *testing.T) {
	err := fmt.Errorf("failed to insert invoice: %w", &pgconn.PgError{
		Code:           "23503",
		TableName:      "invoices",
		ConstraintName: "invoices_comp_code_fkey",
	})

	httpErr := asHTTPError(t, HandleError(err))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "INVOICE_REFERENCE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Comp Code does not exist", httpErr.Message)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	t.Run("primary key", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", TableName: "companies", ConstraintName: "companies_pkey"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "COMPANY_ALREADY_EXISTS", httpErr.Code)
		assert.Equal(t, "A company with this identifier already exists", httpErr.Message)
		assert.True(t, httpErr.Override)
	})

	t.Run("named unique column", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", TableName: "companies", ConstraintName: "companies_name_key"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, "A company with this name already exists", httpErr.Message)
	})

	t.Run("industries table", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", TableName: "industries", ConstraintName: "industries_pkey"}

		httpErr := asHTTPError(t, HandleError(err))
		assert.Equal(t, "INDUSTRY_ALREADY_EXISTS", httpErr.Code)
	})
}

func TestHandleErrorNotNullAndCheck(t *testing.T) {
	notNull := &pgconn.PgError{Code: "23502", TableName: "invoices", ColumnName: "amt"}
	httpErr := asHTTPError(t, HandleError(notNull))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "The Amt is required", httpErr.Message)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, errs.FieldError{Field: "amt", Error: "is required"}, httpErr.Errors[0])

	check := &pgconn.PgError{Code: "23514", TableName: "invoices", ConstraintName: "invoices_amt_check"}
	httpErr = asHTTPError(t, HandleError(check))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "INVOICE_INVALID", httpErr.Code)
}

func TestHandleErrorFallbacks(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(fmt.Errorf("lookup: %w", pgx.ErrNoRows)))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
	})

	t.Run("other postgres error", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"}))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	})

	t.Run("unknown error hides details", func(t *testing.T) {
		httpErr := asHTTPError(t, HandleError(errors.New("dial tcp: connection refused")))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.NotContains(t, httpErr.Message, "connection refused")
	})

	t.Run("http error passes through", func(t *testing.T) {
		original := errs.NewNotFoundError("Invalid ID: 9", true, nil)
		assert.Same(t, original, HandleError(original))
	})
}

func TestExtractColumnFromConstraint(t *testing.T) {
	assert.Equal(t, "comp_code", extractColumnFromConstraint("invoices_comp_code_fkey", "fkey"))
	assert.Equal(t, "", extractColumnFromConstraint("invoices_comp_code_fkey", "key"))
	assert.Equal(t, "name", extractColumnFromConstraint("companies_name_key", "key"))
	assert.Equal(t, "", extractColumnFromConstraint("companies_pkey", "key"))
	assert.Equal(t, "", extractColumnFromConstraint("", "key"))
}

func TestSingularize(t *testing.T) {
	assert.Equal(t, "company", singularize("companies"))
	assert.Equal(t, "industry", singularize("industries"))
	assert.Equal(t, "invoice", singularize("invoices"))
}
