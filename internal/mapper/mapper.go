// Package mapper reshapes rows read from the store into response payloads.
//
// The functions here are pure: they take row slices and return the public
// shape, so joins can be tested without a database.
package mapper

import (
	"time"

	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5/pgtype"
)

// CompanyWithIndustries folds the rows of a company/industry join into one
// CompanyDetail. It reports false when rows is empty. Industry codes keep
// their first-appearance order and are never duplicated.
func CompanyWithIndustries(rows []model.CompanyIndustryRow) (model.CompanyDetail, bool) {
	if len(rows) == 0 {
		return model.CompanyDetail{}, false
	}

	first := rows[0]
	detail := model.CompanyDetail{
		Code:        first.Code,
		Name:        first.Name,
		Description: first.Description,
		Industries:  make([]string, 0, len(rows)),
	}

	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if !row.IndustryCode.Valid {
			continue
		}
		if _, ok := seen[row.IndustryCode.String]; ok {
			continue
		}
		seen[row.IndustryCode.String] = struct{}{}
		detail.Industries = append(detail.Industries, row.IndustryCode.String)
	}

	return detail, true
}

// GroupIndustries groups industry/company join rows by industry code.
// Every industry appears once, in first-appearance order; one without
// companies gets an empty list.
func GroupIndustries(rows []model.IndustryCompanyRow) []model.IndustryCompanies {
	industries := make([]model.IndustryCompanies, 0)
	index := make(map[string]int)
	seen := make(map[string]map[string]struct{})

	for _, row := range rows {
		i, ok := index[row.Code]
		if !ok {
			i = len(industries)
			index[row.Code] = i
			seen[row.Code] = make(map[string]struct{})
			industries = append(industries, model.IndustryCompanies{
				Code:      row.Code,
				Companies: []string{},
			})
		}

		if !row.CompCode.Valid {
			continue
		}
		if _, dup := seen[row.Code][row.CompCode.String]; dup {
			continue
		}
		seen[row.Code][row.CompCode.String] = struct{}{}
		industries[i].Companies = append(industries[i].Companies, row.CompCode.String)
	}

	return industries
}

// NestInvoiceCompany moves the joined company columns of row into a nested
// company object.
func NestInvoiceCompany(row model.InvoiceCompanyRow) model.InvoiceDetail {
	return model.InvoiceDetail{
		ID:       row.ID,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  row.AddDate,
		PaidDate: nullableTime(row.PaidDate),
		Company: model.Company{
			Code:        row.Code.String,
			Name:        row.Name.String,
			Description: row.Description.String,
		},
	}
}

func InvoiceFromRow(row model.InvoiceRow) model.Invoice {
	return model.Invoice{
		ID:       row.ID,
		CompCode: row.CompCode,
		Amt:      row.Amt,
		Paid:     row.Paid,
		AddDate:  row.AddDate,
		PaidDate: nullableTime(row.PaidDate),
	}
}

func nullableTime(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}
