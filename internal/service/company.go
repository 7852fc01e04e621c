package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/biztime/internal/errs"
	"github.com/deppfellow/biztime/internal/lib/utils"
	"github.com/deppfellow/biztime/internal/mapper"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/jackc/pgx/v5"
)

// CompanyStore is the persistence the company service depends on.
type CompanyStore interface {
	ListCompanies(ctx context.Context) ([]model.CompanySummary, error)
	GetCompanyWithIndustries(ctx context.Context, code string) ([]model.CompanyIndustryRow, error)
	CreateCompany(ctx context.Context, company model.Company) (*model.Company, error)
	UpdateCompany(ctx context.Context, code, name, description string) (*model.Company, error)
	DeleteCompany(ctx context.Context, code string) error
}

type CompanyService struct {
	store CompanyStore
}

func NewCompanyService(store CompanyStore) *CompanyService {
	return &CompanyService{store: store}
}

func (s *CompanyService) List(ctx context.Context) ([]model.CompanySummary, error) {
	companies, err := s.store.ListCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.CompanySummary{}
	}
	return companies, nil
}

func (s *CompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	rows, err := s.store.GetCompanyWithIndustries(ctx, code)
	if err != nil {
		return nil, err
	}

	detail, ok := mapper.CompanyWithIndustries(rows)
	if !ok {
		return nil, companyNotFound(code)
	}
	return &detail, nil
}

func (s *CompanyService) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	return s.store.CreateCompany(ctx, model.Company{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
}

// CreateSlugged stores a company whose code is the slug of its name.
func (s *CompanyService) CreateSlugged(ctx context.Context, req *model.CreateSluggedCompanyRequest) (*model.Company, error) {
	code := utils.Slugify(req.Name)
	if code == "" {
		return nil, errs.NewBadRequestError(
			"name must contain at least one letter or digit",
			true,
			nil,
			[]errs.FieldError{{Field: "name", Error: "must contain at least one letter or digit"}},
		)
	}

	return s.store.CreateCompany(ctx, model.Company{
		Code:        code,
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *CompanyService) Update(ctx context.Context, req *model.UpdateCompanyRequest) (*model.Company, error) {
	company, err := s.store.UpdateCompany(ctx, req.Code, req.Name, req.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, companyNotFound(req.Code)
	}
	return company, err
}

func (s *CompanyService) Delete(ctx context.Context, code string) error {
	err := s.store.DeleteCompany(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		return companyNotFound(code)
	}
	return err
}

func companyNotFound(code string) *errs.HTTPError {
	return errs.NewNotFoundError(fmt.Sprintf("Company with code %s not found", code), true, nil)
}
