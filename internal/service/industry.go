package service

import (
	"context"

	"github.com/deppfellow/biztime/internal/mapper"
	"github.com/deppfellow/biztime/internal/model"
)

type IndustryStore interface {
	ListIndustriesWithCompanies(ctx context.Context) ([]model.IndustryCompanyRow, error)
	CreateIndustry(ctx context.Context, industry model.Industry) (*model.Industry, error)
}

type IndustryService struct {
	store IndustryStore
}

func NewIndustryService(store IndustryStore) *IndustryService {
	return &IndustryService{store: store}
}

func (s *IndustryService) List(ctx context.Context) ([]model.IndustryCompanies, error) {
	rows, err := s.store.ListIndustriesWithCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.GroupIndustries(rows), nil
}

func (s *IndustryService) Create(ctx context.Context, req *model.CreateIndustryRequest) (*model.Industry, error) {
	return s.store.CreateIndustry(ctx, model.Industry{
		Code:     req.Code,
		Industry: req.Industry,
	})
}
