package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/companieshouse/paypal.go/models"
)

// GenerateInvoiceNumber generates the next invoice number available to the
// invoicer.
type GenerateInvoiceNumber struct{}

// NewGenerateInvoiceNumber returns a GenerateInvoiceNumber call.
func NewGenerateInvoiceNumber() *GenerateInvoiceNumber {
	return &GenerateInvoiceNumber{}
}

func (e *GenerateInvoiceNumber) Method() string {
	return http.MethodPost
}

func (e *GenerateInvoiceNumber) RelativePath() string {
	return "/v2/invoicing/generate-next-invoice-number"
}

func (e *GenerateInvoiceNumber) Query() url.Values {
	return nil
}

func (e *GenerateInvoiceNumber) RequestBody() any {
	return nil
}

// Execute invokes the call and returns the generated invoice number.
func (e *GenerateInvoiceNumber) Execute(ctx context.Context, invoker Invoker) (*models.InvoiceNumber, error) {
	return Execute[models.InvoiceNumber](ctx, invoker, e)
}

// CreateDraftInvoice creates an invoice in the DRAFT state.
type CreateDraftInvoice struct {
	Invoice models.InvoicePayload
}

// NewCreateDraftInvoice returns a CreateDraftInvoice call for the given
// payload.
func NewCreateDraftInvoice(invoice models.InvoicePayload) *CreateDraftInvoice {
	return &CreateDraftInvoice{Invoice: invoice}
}

func (e *CreateDraftInvoice) Method() string {
	return http.MethodPost
}

func (e *CreateDraftInvoice) RelativePath() string {
	return "/v2/invoicing/invoices"
}

func (e *CreateDraftInvoice) Query() url.Values {
	return nil
}

func (e *CreateDraftInvoice) RequestBody() any {
	return e.Invoice
}

// Execute invokes the call and returns the created draft invoice.
func (e *CreateDraftInvoice) Execute(ctx context.Context, invoker Invoker) (*models.Invoice, error) {
	return Execute[models.Invoice](ctx, invoker, e)
}

// GetInvoice fetches an invoice by its ID.
type GetInvoice struct {
	InvoiceID string
}

// NewGetInvoice returns a GetInvoice call for the given invoice.
func NewGetInvoice(invoiceID string) *GetInvoice {
	return &GetInvoice{InvoiceID: invoiceID}
}

func (e *GetInvoice) Method() string {
	return http.MethodGet
}

func (e *GetInvoice) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s", e.InvoiceID)
}

func (e *GetInvoice) Query() url.Values {
	return nil
}

func (e *GetInvoice) RequestBody() any {
	return nil
}

// Execute invokes the call and returns the invoice.
func (e *GetInvoice) Execute(ctx context.Context, invoker Invoker) (*models.Invoice, error) {
	return Execute[models.Invoice](ctx, invoker, e)
}

// ListInvoices lists the invoicer's invoices, one page at a time.
type ListInvoices struct {
	// The page to return, starting at 1.
	Page int
	// The number of invoices per page.
	PageSize int
}

// NewListInvoices returns a ListInvoices call for the given page.
func NewListInvoices(page, pageSize int) *ListInvoices {
	return &ListInvoices{Page: page, PageSize: pageSize}
}

func (e *ListInvoices) Method() string {
	return http.MethodGet
}

func (e *ListInvoices) RelativePath() string {
	return "/v2/invoicing/invoices"
}

func (e *ListInvoices) Query() url.Values {
	return url.Values{
		"page":      []string{strconv.Itoa(e.Page)},
		"page_size": []string{strconv.Itoa(e.PageSize)},
	}
}

func (e *ListInvoices) RequestBody() any {
	return nil
}

// Execute invokes the call and returns the requested page of invoices.
func (e *ListInvoices) Execute(ctx context.Context, invoker Invoker) (*models.InvoiceList, error) {
	return Execute[models.InvoiceList](ctx, invoker, e)
}

// DeleteInvoice deletes a draft or scheduled invoice.
type DeleteInvoice struct {
	InvoiceID string
}

// NewDeleteInvoice returns a DeleteInvoice call for the given invoice.
func NewDeleteInvoice(invoiceID string) *DeleteInvoice {
	return &DeleteInvoice{InvoiceID: invoiceID}
}

func (e *DeleteInvoice) Method() string {
	return http.MethodDelete
}

func (e *DeleteInvoice) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s", e.InvoiceID)
}

func (e *DeleteInvoice) Query() url.Values {
	return nil
}

func (e *DeleteInvoice) RequestBody() any {
	return nil
}

// Execute invokes the call. A successful deletion carries no response body.
func (e *DeleteInvoice) Execute(ctx context.Context, invoker Invoker) error {
	return execute(ctx, invoker, e)
}

// SendInvoice sends or schedules an invoice to be sent to its recipients.
type SendInvoice struct {
	InvoiceID string
	Notes     models.SendInvoicePayload
}

// NewSendInvoice returns a SendInvoice call for the given invoice.
func NewSendInvoice(invoiceID string, notes models.SendInvoicePayload) *SendInvoice {
	return &SendInvoice{InvoiceID: invoiceID, Notes: notes}
}

func (e *SendInvoice) Method() string {
	return http.MethodPost
}

func (e *SendInvoice) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s/send", e.InvoiceID)
}

func (e *SendInvoice) Query() url.Values {
	return nil
}

func (e *SendInvoice) RequestBody() any {
	return e.Notes
}

// Execute invokes the call.
func (e *SendInvoice) Execute(ctx context.Context, invoker Invoker) error {
	return execute(ctx, invoker, e)
}

// CancelInvoice cancels a sent invoice and, optionally, notifies the
// invoicer and recipients of the cancellation.
type CancelInvoice struct {
	InvoiceID string
	Reason    models.CancelReason
}

// NewCancelInvoice returns a CancelInvoice call for the given invoice.
func NewCancelInvoice(invoiceID string, reason models.CancelReason) *CancelInvoice {
	return &CancelInvoice{InvoiceID: invoiceID, Reason: reason}
}

func (e *CancelInvoice) Method() string {
	return http.MethodPost
}

func (e *CancelInvoice) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s/cancel", e.InvoiceID)
}

func (e *CancelInvoice) Query() url.Values {
	return nil
}

func (e *CancelInvoice) RequestBody() any {
	return e.Reason
}

// Execute invokes the call.
func (e *CancelInvoice) Execute(ctx context.Context, invoker Invoker) error {
	return execute(ctx, invoker, e)
}

// RecordPaymentInvoice records a payment made against an invoice outside of
// PayPal.
type RecordPaymentInvoice struct {
	InvoiceID string
	Payment   models.RecordPaymentPayload
}

// NewRecordPaymentInvoice returns a RecordPaymentInvoice call for the given
// invoice.
func NewRecordPaymentInvoice(invoiceID string, payment models.RecordPaymentPayload) *RecordPaymentInvoice {
	return &RecordPaymentInvoice{InvoiceID: invoiceID, Payment: payment}
}

func (e *RecordPaymentInvoice) Method() string {
	return http.MethodPost
}

func (e *RecordPaymentInvoice) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s/payments", e.InvoiceID)
}

func (e *RecordPaymentInvoice) Query() url.Values {
	return nil
}

func (e *RecordPaymentInvoice) RequestBody() any {
	return e.Payment
}

// Execute invokes the call and returns the reference of the recorded
// payment.
func (e *RecordPaymentInvoice) Execute(ctx context.Context, invoker Invoker) (*models.PaymentReference, error) {
	return Execute[models.PaymentReference](ctx, invoker, e)
}

// GenerateQRCode generates a QR code pointing at an invoice's payer view or
// details view.
type GenerateQRCode struct {
	InvoiceID string
	Params    models.QRCodeParams
}

// NewGenerateQRCode returns a GenerateQRCode call for the given invoice.
func NewGenerateQRCode(invoiceID string, params models.QRCodeParams) *GenerateQRCode {
	return &GenerateQRCode{InvoiceID: invoiceID, Params: params}
}

func (e *GenerateQRCode) Method() string {
	return http.MethodPost
}

func (e *GenerateQRCode) RelativePath() string {
	return fmt.Sprintf("/v2/invoicing/invoices/%s/generate-qr-code", e.InvoiceID)
}

func (e *GenerateQRCode) Query() url.Values {
	return nil
}

func (e *GenerateQRCode) RequestBody() any {
	return e.Params
}

// Execute invokes the call and returns the QR code as a base64-encoded PNG.
func (e *GenerateQRCode) Execute(ctx context.Context, invoker Invoker) (*string, error) {
	return Execute[string](ctx, invoker, e)
}
