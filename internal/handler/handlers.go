// Package handler holds the route handlers. Each one binds and validates
// its request through the shared Handle pipeline, calls one service method
// and wraps the result in the response shape of its route.
package handler

import (
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
)

type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Company  *CompanyHandler
	Industry *IndustryHandler
	Invoice  *InvoiceHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Company:  NewCompanyHandler(s, services.Company),
		Industry: NewIndustryHandler(s, services.Industry),
		Invoice:  NewInvoiceHandler(s, services.Invoice),
	}
}
