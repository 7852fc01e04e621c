package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
)

type CompanyRepository struct {
	db DBTX
}

func NewCompanyRepository(db DBTX) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) ListCompanies(ctx context.Context) ([]model.CompanySummary, error) {
	stmt := `
		SELECT
			code,
			name
		FROM
			companies
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list companies query: %w", err)
	}

	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CompanySummary, error) {
		var c model.CompanySummary
		err := row.Scan(&c.Code, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:companies: %w", err)
	}

	return companies, nil
}

// GetCompanyWithIndustries returns one row per industry the company belongs
// to, or a single row with a NULL industry code. An unknown code yields no rows.
func (r *CompanyRepository) GetCompanyWithIndustries(ctx context.Context, code string) ([]model.CompanyIndustryRow, error) {
	stmt := `
		SELECT
			c.code,
			c.name,
			c.description,
			ic.industry_code
		FROM
			companies c
			LEFT JOIN industry_company ic ON ic.comp_code = c.code
		WHERE
			c.code = $1
	`

	rows, err := r.db.Query(ctx, stmt, code)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get company query for code=%s: %w", code, err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CompanyIndustryRow, error) {
		var c model.CompanyIndustryRow
		err := row.Scan(&c.Code, &c.Name, &c.Description, &c.IndustryCode)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:companies for code=%s: %w", code, err)
	}

	return result, nil
}

func (r *CompanyRepository) CreateCompany(ctx context.Context, company model.Company) (*model.Company, error) {
	stmt := `
		INSERT INTO
			companies (code, name, description)
		VALUES
			($1, $2, $3)
		RETURNING
			code, name, description
	`

	var created model.Company
	err := r.db.QueryRow(ctx, stmt, company.Code, company.Name, company.Description).
		Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to insert company code=%s: %w", company.Code, err)
	}

	return &created, nil
}

func (r *CompanyRepository) UpdateCompany(ctx context.Context, code, name, description string) (*model.Company, error) {
	stmt := `
		UPDATE companies
		SET
			name = $1,
			description = $2
		WHERE
			code = $3
		RETURNING
			code, name, description
	`

	var updated model.Company
	err := r.db.QueryRow(ctx, stmt, name, description, code).
		Scan(&updated.Code, &updated.Name, &updated.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to update company code=%s: %w", code, err)
	}

	return &updated, nil
}

func (r *CompanyRepository) DeleteCompany(ctx context.Context, code string) error {
	stmt := `
		DELETE FROM companies
		WHERE
			code = $1
		RETURNING
			code
	`

	var deleted string
	if err := r.db.QueryRow(ctx, stmt, code).Scan(&deleted); err != nil {
		return fmt.Errorf("failed to delete company code=%s: %w", code, err)
	}

	return nil
}
