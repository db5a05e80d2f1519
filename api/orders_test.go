package api

import (
	"net/http"
	"testing"

	"github.com/companieshouse/paypal.go/fixtures"
	"github.com/companieshouse/paypal.go/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCreateOrderEndpoint(t *testing.T) {

	Convey("CreateOrder posts the payload to the orders collection", t, func() {
		endpoint := NewCreateOrder(fixtures.GetOrderPayload())

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/checkout/orders")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldResemble, fixtures.GetOrderPayload())
	})
}

func TestUnitShowOrderDetailsEndpoint(t *testing.T) {

	Convey("ShowOrderDetails gets the order by id with no body", t, func() {
		endpoint := NewShowOrderDetails(fixtures.OrderID)

		So(endpoint.Method(), ShouldEqual, http.MethodGet)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/checkout/orders/5O190127TN364715T")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}

func TestUnitAuthorizeOrderEndpoint(t *testing.T) {

	Convey("AuthorizeOrder posts to the authorize action", t, func() {
		endpoint := NewAuthorizeOrder(fixtures.OrderID)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/checkout/orders/5O190127TN364715T/authorize")
		So(endpoint.RequestBody(), ShouldBeNil)
	})

	Convey("AuthorizeOrder sends the payment source when one is supplied", t, func() {
		endpoint := NewAuthorizeOrder(fixtures.OrderID)
		endpoint.PaymentSource = &models.OrderPaymentSource{
			Card: models.PaymentCard{
				Number: "4111111111111111",
				Expiry: "2027-02",
				Name:   "John Doe",
				BillingAddress: models.Address{
					CountryCode: "GB",
				},
			},
		}

		So(endpoint.RequestBody(), ShouldEqual, endpoint.PaymentSource)
	})
}

func TestUnitCaptureOrderEndpoint(t *testing.T) {

	Convey("CaptureOrder posts to the capture action with no body", t, func() {
		endpoint := NewCaptureOrder(fixtures.OrderID)

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/checkout/orders/5O190127TN364715T/capture")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldBeNil)
	})
}
