// Package repository is the persistence gateway. Each method issues exactly
// one parameterized statement and returns the rows it produced; mutations
// use RETURNING so no second read is needed.
//
// Lookups and mutations that match nothing return pgx.ErrNoRows. Driver
// errors are wrapped with %w so callers can still inspect the SQLSTATE.
package repository

import (
	"context"

	"github.com/deppfellow/biztime/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of *pgxpool.Pool the repositories need.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories groups every repository.
type Repositories struct {
	Companies  *CompanyRepository
	Industries *IndustryRepository
	Invoices   *InvoiceRepository
}

// NewRepositories builds the repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Companies:  NewCompanyRepository(db),
		Industries: NewIndustryRepository(db),
		Invoices:   NewInvoiceRepository(db),
	}
}
