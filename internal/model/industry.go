package model

import (
	"github.com/deppfellow/biztime/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryCompanies lists the codes of the companies in one industry.
type IndustryCompanies struct {
	Code      string   `json:"code"`
	Companies []string `json:"companies"`
}

// IndustryCompanyRow is one row of industries LEFT JOIN industry_company.
type IndustryCompanyRow struct {
	Code     string
	Industry string
	CompCode pgtype.Text
}

type CreateIndustryRequest struct {
	Code     string `json:"code" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

func (r *CreateIndustryRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type IndustriesResponse struct {
	Industries []IndustryCompanies `json:"industries"`
}

type IndustryResponse struct {
	Industry Industry `json:"industry"`
}
