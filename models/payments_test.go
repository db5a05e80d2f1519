package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestUnitCaptureDecode(t *testing.T) {

	Convey("A capture decodes with its receivable breakdown", t, func() {
		capture, err := Decode[Capture]([]byte(`{
			"id": "8MC585209K746392H",
			"status": "COMPLETED",
			"amount": {"currency_code": "GBP", "value": "19.99"},
			"final_capture": true,
			"seller_receivable_breakdown": {
				"gross_amount": {"currency_code": "GBP", "value": "19.99"},
				"paypal_fee": {"currency_code": "GBP", "value": "0.88"},
				"net_amount": {"currency_code": "GBP", "value": "19.11"}
			}
		}`))

		So(err, ShouldBeNil)
		So(capture.ID, ShouldEqual, "8MC585209K746392H")
		So(capture.Status, ShouldEqual, CaptureStatusCompleted)
		So(*capture.FinalCapture, ShouldBeTrue)
		So(capture.SellerReceivableBreakdown.PaypalFee.Value, ShouldEqual, "0.88")
	})

	Convey("A capture without a status is rejected", t, func() {
		capture, err := Decode[Capture]([]byte(`{
			"amount": {"currency_code": "GBP", "value": "19.99"}
		}`))

		So(capture, ShouldBeNil)
		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Field, ShouldEqual, "status")
	})

	Convey("A pending capture carries its status details", t, func() {
		capture, err := Decode[Capture]([]byte(`{
			"status": "PENDING",
			"status_details": {"reason": "PENDING_REVIEW"},
			"amount": {"currency_code": "GBP", "value": "19.99"}
		}`))

		So(err, ShouldBeNil)
		So(capture.Status, ShouldEqual, CaptureStatusPending)
		So(capture.StatusDetails.Reason, ShouldEqual, CaptureReasonPendingReview)
	})
}

func TestUnitAuthorizationDecode(t *testing.T) {

	Convey("An authorization decodes with its seller protection", t, func() {
		auth, err := Decode[AuthorizationWithData]([]byte(`{
			"id": "0VF52814937998046",
			"status": "CREATED",
			"status_details": {"reason": "PENDING_REVIEW"},
			"seller_protection": {
				"status": "ELIGIBLE",
				"dispute_categories": ["ITEM_NOT_RECEIVED"]
			}
		}`))

		So(err, ShouldBeNil)
		So(auth.Status, ShouldEqual, AuthorizationStatusCreated)
		So(auth.StatusDetails.Reason, ShouldEqual, AuthorizationReasonPendingReview)
		So(auth.SellerProtection.Status, ShouldEqual, SellerProtectionEligible)
	})

	Convey("An unknown authorization status is rejected", t, func() {
		auth, err := Decode[AuthorizationWithData]([]byte(`{
			"status": "SETTLED",
			"status_details": {"reason": "PENDING_REVIEW"}
		}`))

		So(auth, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, `unknown value "SETTLED"`)
	})
}

func TestUnitRefundStatus(t *testing.T) {
	tests := []struct {
		token string
		valid bool
	}{
		{`"CANCELLED"`, true},
		{`"FAILED"`, true},
		{`"PENDING"`, true},
		{`"COMPLETED"`, true},
		{`"REFUNDED"`, false},
	}

	for _, tt := range tests {
		var s RefundStatus
		err := json.Unmarshal([]byte(tt.token), &s)
		if tt.valid {
			assert.NoError(t, err, tt.token)
		} else {
			assert.Error(t, err, tt.token)
		}
	}
}
