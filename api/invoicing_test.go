package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/companieshouse/paypal.go/fixtures"
	"github.com/companieshouse/paypal.go/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGenerateInvoiceNumberEndpoint(t *testing.T) {

	Convey("GenerateInvoiceNumber posts with no body", t, func() {
		endpoint := NewGenerateInvoiceNumber()

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/generate-next-invoice-number")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}

func TestUnitCreateDraftInvoiceEndpoint(t *testing.T) {

	Convey("CreateDraftInvoice posts the payload to the invoices collection", t, func() {
		endpoint := NewCreateDraftInvoice(fixtures.GetInvoicePayload())

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices")
		So(endpoint.RequestBody(), ShouldResemble, fixtures.GetInvoicePayload())
	})
}

func TestUnitGetInvoiceEndpoint(t *testing.T) {

	Convey("GetInvoice gets the invoice by id with no body", t, func() {
		endpoint := NewGetInvoice(fixtures.InvoiceID)

		So(endpoint.Method(), ShouldEqual, http.MethodGet)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5")
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}

func TestUnitListInvoicesEndpoint(t *testing.T) {

	Convey("ListInvoices carries the page and page size as query parameters", t, func() {
		endpoint := NewListInvoices(2, 20)

		So(endpoint.Method(), ShouldEqual, http.MethodGet)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices")
		So(endpoint.Query(), ShouldResemble, url.Values{
			"page":      []string{"2"},
			"page_size": []string{"20"},
		})
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}

func TestUnitDeleteInvoiceEndpoint(t *testing.T) {

	Convey("DeleteInvoice issues a DELETE against the invoice", t, func() {
		endpoint := NewDeleteInvoice(fixtures.InvoiceID)

		So(endpoint.Method(), ShouldEqual, http.MethodDelete)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}

func TestUnitSendInvoiceEndpoint(t *testing.T) {

	Convey("SendInvoice posts the notification options to the send action", t, func() {
		notes := models.SendInvoicePayload{Subject: "Your invoice"}
		endpoint := NewSendInvoice(fixtures.InvoiceID, notes)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/send")
		So(endpoint.RequestBody(), ShouldResemble, notes)
	})
}

func TestUnitCancelInvoiceEndpoint(t *testing.T) {

	Convey("CancelInvoice posts the reason to the cancel action", t, func() {
		reason := models.CancelReason{Subject: "Invoice cancelled", Note: "Sorry"}
		endpoint := NewCancelInvoice(fixtures.InvoiceID, reason)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/cancel")
		So(endpoint.RequestBody(), ShouldResemble, reason)
	})
}

func TestUnitRecordPaymentInvoiceEndpoint(t *testing.T) {

	Convey("RecordPaymentInvoice posts the payment to the payments action", t, func() {
		payment, err := models.NewRecordPaymentPayloadBuilder(
			models.InvoicePaymentMethodBankTransfer,
			models.NewInvoiceAmount(models.CurrencyGBP, "25.00"),
		).Build()
		So(err, ShouldBeNil)

		endpoint := NewRecordPaymentInvoice(fixtures.InvoiceID, payment)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/payments")
		So(endpoint.RequestBody(), ShouldResemble, payment)
	})
}

func TestUnitGenerateQRCodeEndpoint(t *testing.T) {

	Convey("GenerateQRCode posts the dimensions to the QR code action", t, func() {
		params := models.QRCodeParams{Width: 300, Height: 300, Action: models.QRActionPay}
		endpoint := NewGenerateQRCode(fixtures.InvoiceID, params)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/invoicing/invoices/INV2-Z56S-5LLA-Q52L-CPZ5/generate-qr-code")
		So(endpoint.RequestBody(), ShouldResemble, params)
	})
}
