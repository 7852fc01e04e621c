// Package router builds the echo instance: global middleware, the error
// handler, system routes and the BizTime resource routes.
package router

import (
	"net/http"

	"github.com/deppfellow/biztime/internal/config"
	"github.com/deppfellow/biztime/internal/handler"
	"github.com/deppfellow/biztime/internal/middleware"
	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerCompanyRoutes(router, h, s.Config.Company.CodeMode)
	registerIndustryRoutes(router, h)
	registerInvoiceRoutes(router, h)

	return router
}

// registerCompanyRoutes keeps :code to a single path segment; deeper paths
// are unmatched routes.
func registerCompanyRoutes(r *echo.Echo, h *handler.Handlers, codeMode string) {
	companies := h.Company
	singleSegment := middleware.SegmentParam("code")

	r.GET("/companies", handler.Handle(companies.Handler, companies.ListCompanies, http.StatusOK, &model.ListRequest{}))
	r.GET("/companies/:code", handler.Handle(companies.Handler, companies.GetCompany, http.StatusOK, &model.GetCompanyRequest{}), singleSegment)

	if codeMode == config.CodeModeSupplied {
		r.POST("/companies", handler.Handle(companies.Handler, companies.CreateCompany, http.StatusCreated, &model.CreateCompanyRequest{}))
	} else {
		r.POST("/companies", handler.Handle(companies.Handler, companies.CreateSluggedCompany, http.StatusCreated, &model.CreateSluggedCompanyRequest{}))
	}

	r.PUT("/companies/:code", handler.Handle(companies.Handler, companies.UpdateCompany, http.StatusOK, &model.UpdateCompanyRequest{}), singleSegment)
	r.DELETE("/companies/:code", handler.Handle(companies.Handler, companies.DeleteCompany, http.StatusOK, &model.DeleteCompanyRequest{}), singleSegment)
}

func registerIndustryRoutes(r *echo.Echo, h *handler.Handlers) {
	industries := h.Industry

	r.GET("/industries", handler.Handle(industries.Handler, industries.ListIndustries, http.StatusOK, &model.ListRequest{}))
	r.POST("/industries", handler.Handle(industries.Handler, industries.CreateIndustry, http.StatusCreated, &model.CreateIndustryRequest{}))
}

// registerInvoiceRoutes guards :id so that only digit ids reach the
// handlers; anything else is an unmatched route.
func registerInvoiceRoutes(r *echo.Echo, h *handler.Handlers) {
	invoices := h.Invoice
	numericID := middleware.NumericParam("id")

	r.GET("/invoices", handler.Handle(invoices.Handler, invoices.ListInvoices, http.StatusOK, &model.ListRequest{}))
	r.GET("/invoices/:id", handler.Handle(invoices.Handler, invoices.GetInvoice, http.StatusOK, &model.GetInvoiceRequest{}), numericID)
	r.POST("/invoices", handler.Handle(invoices.Handler, invoices.CreateInvoice, http.StatusCreated, &model.CreateInvoiceRequest{}))
	r.PUT("/invoices/:id", handler.Handle(invoices.Handler, invoices.UpdateInvoice, http.StatusOK, &model.UpdateInvoiceRequest{}), numericID)
	r.DELETE("/invoices/:id", handler.Handle(invoices.Handler, invoices.DeleteInvoice, http.StatusOK, &model.DeleteInvoiceRequest{}), numericID)
}
