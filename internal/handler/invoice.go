package handler

import (
	"github.com/deppfellow/biztime/internal/model"
	"github.com/deppfellow/biztime/internal/server"
	"github.com/deppfellow/biztime/internal/service"
	"github.com/labstack/echo/v4"
)

type InvoiceHandler struct {
	Handler
	invoiceService *service.InvoiceService
}

func NewInvoiceHandler(s *server.Server, invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		Handler:        NewHandler(s),
		invoiceService: invoiceService,
	}
}

func (h *InvoiceHandler) ListInvoices(c echo.Context, _ *model.ListRequest) (*model.InvoicesResponse, error) {
	invoices, err := h.invoiceService.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return &model.InvoicesResponse{Invoices: invoices}, nil
}

func (h *InvoiceHandler) GetInvoice(c echo.Context, req *model.GetInvoiceRequest) (*model.InvoiceDetailResponse, error) {
	invoice, err := h.invoiceService.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &model.InvoiceDetailResponse{Invoice: *invoice}, nil
}

func (h *InvoiceHandler) CreateInvoice(c echo.Context, req *model.CreateInvoiceRequest) (*model.InvoiceResponse, error) {
	invoice, err := h.invoiceService.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.InvoiceResponse{Invoice: *invoice}, nil
}

// UpdateInvoice changes the amount only; comp_code and paid are left alone.
func (h *InvoiceHandler) UpdateInvoice(c echo.Context, req *model.UpdateInvoiceRequest) (*model.InvoiceResponse, error) {
	invoice, err := h.invoiceService.Update(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}
	return &model.InvoiceResponse{Invoice: *invoice}, nil
}

func (h *InvoiceHandler) DeleteInvoice(c echo.Context, req *model.DeleteInvoiceRequest) (*model.DeletedResponse, error) {
	if err := h.invoiceService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &model.Deleted, nil
}
