package api

import (
	"net/http"
	"testing"

	"github.com/companieshouse/paypal.go/fixtures"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitAddOrderTrackingEndpoint(t *testing.T) {

	Convey("AddOrderTracking posts the tracking to the order's track action", t, func() {
		endpoint := NewAddOrderTracking(fixtures.OrderID, fixtures.GetOrderTracking())

		So(endpoint.Method(), ShouldEqual, http.MethodPost)
		So(endpoint.RelativePath(), ShouldEqual, "/v2/checkout/orders/5O190127TN364715T/track")
		So(endpoint.Query(), ShouldBeNil)
		So(endpoint.RequestBody(), ShouldResemble, fixtures.GetOrderTracking())
	})
}
