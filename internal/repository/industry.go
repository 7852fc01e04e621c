package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
)

type IndustryRepository struct {
	db DBTX
}

func NewIndustryRepository(db DBTX) *IndustryRepository {
	return &IndustryRepository{db: db}
}

// ListIndustriesWithCompanies returns every industry joined with its
// associations, ordered by industry code then company code. Industries
// without companies come back once with a NULL comp_code.
func (r *IndustryRepository) ListIndustriesWithCompanies(ctx context.Context) ([]model.IndustryCompanyRow, error) {
	stmt := `
		SELECT
			i.code,
			i.industry,
			ic.comp_code
		FROM
			industries i
			LEFT JOIN industry_company ic ON ic.industry_code = i.code
		ORDER BY
			i.code,
			ic.comp_code
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list industries query: %w", err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.IndustryCompanyRow, error) {
		var i model.IndustryCompanyRow
		err := row.Scan(&i.Code, &i.Industry, &i.CompCode)
		return i, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:industries: %w", err)
	}

	return result, nil
}

func (r *IndustryRepository) CreateIndustry(ctx context.Context, industry model.Industry) (*model.Industry, error) {
	stmt := `
		INSERT INTO
			industries (code, industry)
		VALUES
			($1, $2)
		RETURNING
			code, industry
	`

	var created model.Industry
	err := r.db.QueryRow(ctx, stmt, industry.Code, industry.Industry).
		Scan(&created.Code, &created.Industry)
	if err != nil {
		return nil, fmt.Errorf("failed to insert industry code=%s: %w", industry.Code, err)
	}

	return &created, nil
}
