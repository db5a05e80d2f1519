package models

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestUnitInvoiceDecode(t *testing.T) {

	invoiceJSON := []byte(`{
		"id": "INV2-Z56S-5LLA-Q52L-CPZ5",
		"status": "DRAFT",
		"detail": {
			"currency_code": "GBP",
			"invoice_number": "INV-0001",
			"invoice_date": "2022-05-23",
			"payment_term": {"term_type": "NET_30", "due_date": "2022-06-22"}
		},
		"items": [
			{
				"name": "Bouquet",
				"quantity": "1",
				"unit_amount": {"currency_code": "GBP", "value": "25.00"},
				"unit_of_measure": "QUANTITY"
			}
		],
		"amount": {
			"currency_code": "GBP",
			"value": "25.00",
			"breakdown": {
				"item_total": {"currency_code": "GBP", "value": "25.00"}
			}
		}
	}`)

	Convey("A full invoice decodes with its detail and amount", t, func() {
		invoice, err := Decode[Invoice](invoiceJSON)

		So(err, ShouldBeNil)
		So(invoice.ID, ShouldEqual, "INV2-Z56S-5LLA-Q52L-CPZ5")
		So(invoice.Status, ShouldEqual, InvoiceStatusDraft)
		So(invoice.Detail.CurrencyCode, ShouldEqual, CurrencyGBP)
		So(invoice.Detail.InvoiceDate.Format("2006-01-02"), ShouldEqual, "2022-05-23")
		So(invoice.Detail.PaymentTerm.TermType, ShouldEqual, PaymentTermNet30)
		So(invoice.Detail.PaymentTerm.DueDate.Day(), ShouldEqual, 22)
		So(invoice.Items[0].UnitOfMeasure, ShouldEqual, UnitOfMeasureQuantity)
		So(invoice.Amount.Breakdown.ItemTotal.Value, ShouldEqual, "25.00")
	})

	Convey("An invoice without a detail is rejected", t, func() {
		invoice, err := Decode[Invoice]([]byte(`{
			"id": "INV2-Z56S-5LLA-Q52L-CPZ5",
			"status": "DRAFT",
			"amount": {"currency_code": "GBP", "value": "25.00"}
		}`))

		So(invoice, ShouldBeNil)
		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Field, ShouldContainSubstring, "detail")
	})

	Convey("An invoice list decodes its pagination totals", t, func() {
		list, err := Decode[InvoiceList]([]byte(`{
			"total_items": 2,
			"total_pages": 1,
			"items": [],
			"links": []
		}`))

		So(err, ShouldBeNil)
		So(list.TotalItems, ShouldEqual, 2)
		So(list.TotalPages, ShouldEqual, 1)
	})
}

func TestUnitInvoiceStatus(t *testing.T) {
	valid := []string{
		"DRAFT", "SENT", "SCHEDULED", "PAID", "MARKED_AS_PAID", "CANCELLED",
		"REFUNDED", "PARTIALLY_PAID", "PARTIALLY_REFUNDED",
		"MARKED_AS_REFUNDED", "UNPAID", "PAYMENT_PENDING",
	}

	for _, token := range valid {
		var s InvoiceStatus
		err := json.Unmarshal([]byte(`"`+token+`"`), &s)
		assert.NoError(t, err, token)
		assert.Equal(t, InvoiceStatus(token), s)
	}

	for _, token := range []string{"OVERDUE", "draft", ""} {
		var s InvoiceStatus
		err := json.Unmarshal([]byte(`"`+token+`"`), &s)
		assert.Error(t, err, token)
	}
}

func TestUnitInvoiceDetailBuilder(t *testing.T) {

	Convey("A detail with a currency builds", t, func() {
		detail, err := NewInvoiceDetailBuilder(CurrencyGBP).
			InvoiceNumber("INV-0001").
			InvoiceDate(NewDate(2022, time.May, 23)).
			PaymentTerm(PaymentTerm{TermType: PaymentTermNet30}).
			Build()

		So(err, ShouldBeNil)
		So(detail.CurrencyCode, ShouldEqual, CurrencyGBP)
		So(detail.InvoiceNumber, ShouldEqual, "INV-0001")
		So(detail.PaymentTerm.TermType, ShouldEqual, PaymentTermNet30)
	})

	Convey("A detail without a currency fails to build", t, func() {
		_, err := NewInvoiceDetailBuilder("").Build()

		conErr, ok := err.(*ConstructionError)
		So(ok, ShouldBeTrue)
		So(conErr.Type, ShouldEqual, "InvoiceDetail")
		So(conErr.Field, ShouldEqual, "currency_code")
	})
}

func TestUnitInvoiceItemBuilder(t *testing.T) {

	Convey("An item with all required fields builds", t, func() {
		item, err := NewInvoiceItemBuilder("Bouquet", "1", NewMoney(CurrencyGBP, "25.00")).
			Description("Red roses").
			UnitOfMeasure(UnitOfMeasureQuantity).
			Build()

		So(err, ShouldBeNil)
		So(item.Name, ShouldEqual, "Bouquet")
		So(item.Description, ShouldEqual, "Red roses")
	})

	Convey("An item without a quantity fails to build", t, func() {
		_, err := NewInvoiceItemBuilder("Bouquet", "", NewMoney(CurrencyGBP, "25.00")).Build()

		conErr, ok := err.(*ConstructionError)
		So(ok, ShouldBeTrue)
		So(conErr.Field, ShouldEqual, "quantity")
	})
}

func TestUnitInvoicePayloadBuilder(t *testing.T) {

	Convey("A payload with a detail and an item builds", t, func() {
		detail, err := NewInvoiceDetailBuilder(CurrencyGBP).Build()
		So(err, ShouldBeNil)
		item, err := NewInvoiceItemBuilder("Bouquet", "1", NewMoney(CurrencyGBP, "25.00")).Build()
		So(err, ShouldBeNil)

		payload, err := NewInvoicePayloadBuilder(detail).
			AddItem(item).
			Invoicer(InvoicerInfo{BusinessName: "Flowers Unlimited"}).
			Build()

		So(err, ShouldBeNil)
		So(payload.Items, ShouldHaveLength, 1)
		So(payload.Invoicer.BusinessName, ShouldEqual, "Flowers Unlimited")
	})

	Convey("A payload without items fails to build", t, func() {
		detail, err := NewInvoiceDetailBuilder(CurrencyGBP).Build()
		So(err, ShouldBeNil)

		_, err = NewInvoicePayloadBuilder(detail).Build()

		conErr, ok := err.(*ConstructionError)
		So(ok, ShouldBeTrue)
		So(conErr.Field, ShouldEqual, "items")
	})
}

func TestUnitRecordPaymentPayloadBuilder(t *testing.T) {

	Convey("A payment with a method and amount builds", t, func() {
		payload, err := NewRecordPaymentPayloadBuilder(
			InvoicePaymentMethodBankTransfer,
			NewInvoiceAmount(CurrencyGBP, "25.00"),
		).Note("Paid by BACS").Build()

		So(err, ShouldBeNil)
		So(payload.Method, ShouldEqual, InvoicePaymentMethodBankTransfer)
		So(payload.Note, ShouldEqual, "Paid by BACS")
	})

	Convey("A payment without a method fails to build", t, func() {
		_, err := NewRecordPaymentPayloadBuilder("", NewInvoiceAmount(CurrencyGBP, "25.00")).Build()

		conErr, ok := err.(*ConstructionError)
		So(ok, ShouldBeTrue)
		So(conErr.Field, ShouldEqual, "method")
	})
}
