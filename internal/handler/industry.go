package handler

import (
	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type IndustryHandler struct {
	Handler
	industryService *service.IndustryService
}

func NewIndustryHandler(s *server.Server, industryService *service.IndustryService) *IndustryHandler {
	return &IndustryHandler{
		Handler:         NewHandler(s),
		industryService: industryService,
	}
}

func (h *IndustryHandler) ListIndustries(c echo.Context, _ *model.ListRequest) (*model.IndustriesResponse, error) {
	industries, err := h.industryService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.IndustriesResponse{Industries: industries}, nil
}

func (h *IndustryHandler) CreateIndustry(c echo.Context, req *model.CreateIndustryRequest) (*model.IndustryResponse, error) {
	industry, err := h.industryService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.IndustryResponse{Industry: *industry}, nil
}
