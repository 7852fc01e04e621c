package handler

import (
	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type CompanyHandler struct {
	Handler
	companyService *service.CompanyService
}

func NewCompanyHandler(s *server.Server, companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		Handler:        NewHandler(s),
		companyService: companyService,
	}
}

func (h *CompanyHandler) ListCompanies(c echo.Context, _ *model.ListRequest) (*model.CompaniesResponse, error) {
	companies, err := h.companyService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.CompaniesResponse{Companies: companies}, nil
}

func (h *CompanyHandler) GetCompany(c echo.Context, req *model.GetCompanyRequest) (*model.CompanyDetailResponse, error) {
	company, err := h.companyService.Get(c.Request().Context(), req.Code)
	if err != nil {
		return nil, err
	}
	return &model.CompanyDetailResponse{Company: *company}, nil
}

func (h *CompanyHandler) CreateCompany(c echo.Context, req *model.CreateCompanyRequest) (*model.CompanyResponse, error) {
	company, err := h.companyService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.CompanyResponse{Company: *company}, nil
}

func (h *CompanyHandler) CreateSluggedCompany(c echo.Context, req *model.CreateSluggedCompanyRequest) (*model.CompanyResponse, error) {
	company, err := h.companyService.CreateSlugged(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.CompanyResponse{Company: *company}, nil
}

func (h *CompanyHandler) UpdateCompany(c echo.Context, req *model.UpdateCompanyRequest) (*model.CompanyResponse, error) {
	company, err := h.companyService.Update(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.CompanyResponse{Company: *company}, nil
}

func (h *CompanyHandler) DeleteCompany(c echo.Context, req *model.DeleteCompanyRequest) (*model.DeletedResponse, error) {
	if err := h.companyService.Delete(c.Request().Context(), req.Code); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
