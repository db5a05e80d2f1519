package fixtures

import (
	"github.com/companieshouse/paypal.go/models"
)

var InvoiceID = "INV2-Z56S-5LLA-Q52L-CPZ5"
var InvoiceNumber = "INV-0001"

// GetInvoicePayload returns a single-item draft invoice payload
func GetInvoicePayload() models.InvoicePayload {
	return models.InvoicePayload{
		Detail: models.InvoiceDetail{
			CurrencyCode:  models.CurrencyGBP,
			InvoiceNumber: InvoiceNumber,
			Note:          "Thank you for your business.",
		},
		Invoicer: &models.InvoicerInfo{
			BusinessName: "Flowers Unlimited",
			EmailAddress: "merchant@example.com",
		},
		Items: []models.InvoiceItem{
			{
				Name:       "Bouquet",
				Quantity:   "1",
				UnitAmount: models.NewMoney(models.CurrencyGBP, "25.00"),
			},
		},
	}
}

// GetInvoice returns the draft invoice created from GetInvoicePayload
func GetInvoice() *models.Invoice {
	return &models.Invoice{
		ID:     InvoiceID,
		Status: models.InvoiceStatusDraft,
		Detail: models.InvoiceDetail{
			CurrencyCode:  models.CurrencyGBP,
			InvoiceNumber: InvoiceNumber,
			Note:          "Thank you for your business.",
		},
		Items: []models.InvoiceItem{
			{
				ID:         "ITEM-1",
				Name:       "Bouquet",
				Quantity:   "1",
				UnitAmount: models.NewMoney(models.CurrencyGBP, "25.00"),
			},
		},
		Amount: models.NewInvoiceAmount(models.CurrencyGBP, "25.00"),
		Links: []models.LinkDescription{
			{
				Href:   "https://api.sandbox.paypal.com/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5",
				Rel:    "self",
				Method: models.LinkMethodGet,
			},
		},
	}
}

// GetInvoiceJSON returns the wire form of GetInvoice
func GetInvoiceJSON() string {
	return `{
		"id": "INV2-Z56S-5LLA-Q52L-CPZ5",
		"status": "DRAFT",
		"detail": {
			"currency_code": "GBP",
			"invoice_number": "INV-0001",
			"note": "Thank you for your business."
		},
		"items": [
			{
				"id": "ITEM-1",
				"name": "Bouquet",
				"quantity": "1",
				"unit_amount": {"currency_code": "GBP", "value": "25.00"}
			}
		],
		"amount": {"currency_code": "GBP", "value": "25.00"},
		"links": [
			{"href": "https://api.sandbox.paypal.com/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5", "rel": "self", "method": "GET"}
		]
	}`
}

// GetInvoiceListJSON returns a one-page invoice list holding GetInvoice
func GetInvoiceListJSON() string {
	return `{
		"total_items": 1,
		"total_pages": 1,
		"items": [` + GetInvoiceJSON() + `],
		"links": [
			{"href": "https://api.sandbox.paypal.com/v2/invoicing/invoices?page=1&page_size=20", "rel": "self", "method": "GET"}
		]
	}`
}
