package model

import (
	"github.com/deppfellow/biztime/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

// Company is a row of the companies table. Code is the primary key and the
// target of invoices.comp_code and industry_company.comp_code.
type Company struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company with the codes of every industry it belongs to.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industries  []string `json:"industries"`
}

// CompanyIndustryRow is one row of companies LEFT JOIN industry_company.
// IndustryCode is NULL for a company without associations.
type CompanyIndustryRow struct {
	Code         string
	Name         string
	Description  string
	IndustryCode pgtype.Text
}

// Requests

type GetCompanyRequest struct {
	Code string `param:"code" json:"-" validate:"required"`
}

func (r *GetCompanyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// CreateCompanyRequest is the body of POST /companies when callers choose
// the code themselves. The code has to be addressable as one path segment.
type CreateCompanyRequest struct {
	Code        string `json:"code" validate:"required,excludes=/"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateCompanyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// CreateSluggedCompanyRequest is the body of POST /companies when the code
// is derived from the name. A code sent by the caller is not bound.
type CreateSluggedCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *CreateSluggedCompanyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type UpdateCompanyRequest struct {
	Code        string `param:"code" json:"-" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (r *UpdateCompanyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type DeleteCompanyRequest struct {
	Code string `param:"code" json:"-" validate:"required"`
}

func (r *DeleteCompanyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// Responses

type CompaniesResponse struct {
	Companies []CompanySummary `json:"companies"`
}

type CompanyResponse struct {
	Company Company `json:"company"`
}

type CompanyDetailResponse struct {
	Company CompanyDetail `json:"company"`
}
