// Package service holds the business rules between handlers and the
// repository layer: it turns empty lookups into not-found errors and
// reclassifies constraint violations the client can act on.
package service

import "github.com/deppfellow/biztime/internal/repository"

type Services struct {
	Company  *CompanyService
	Industry *IndustryService
	Invoice  *InvoiceService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Company:  NewCompanyService(repos.Companies),
		Industry: NewIndustryService(repos.Industries),
		Invoice:  NewInvoiceService(repos.Invoices),
	}
}
