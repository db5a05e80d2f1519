package models

import (
	"encoding/json"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitDecode(t *testing.T) {

	Convey("Unknown fields are ignored when decoding", t, func() {
		data := `{
			"currency_code": "GBP",
			"value": "19.99",
			"some_future_field": {"nested": true}
		}`

		money, err := Decode[Money]([]byte(data))

		So(err, ShouldBeNil)
		So(money.CurrencyCode, ShouldEqual, CurrencyGBP)
		So(money.Value, ShouldEqual, "19.99")
	})

	Convey("Missing required field returns a DecodingError naming the field", t, func() {
		data := `{"currency_code": "GBP"}`

		money, err := Decode[Money]([]byte(data))

		So(money, ShouldBeNil)
		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Type, ShouldEqual, "Money")
		So(decErr.Field, ShouldEqual, "value")
		So(err.Error(), ShouldContainSubstring, `field "value" is required but was absent`)
	})

	Convey("Missing required field in a nested struct reports the wire path", t, func() {
		data := `{"href": "https://example.com"}`

		link, err := Decode[LinkDescription]([]byte(data))

		So(link, ShouldBeNil)
		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Field, ShouldEqual, "rel")
	})

	Convey("Wrong primitive type returns a DecodingError", t, func() {
		data := `{"currency_code": "GBP", "value": 19.99}`

		money, err := Decode[Money]([]byte(data))

		So(money, ShouldBeNil)
		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Field, ShouldEqual, "value")
	})

	Convey("Malformed JSON returns a DecodingError", t, func() {
		money, err := Decode[Money]([]byte(`{"currency_code":`))

		So(money, ShouldBeNil)
		_, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
	})

	Convey("Absent optional fields stay absent when re-encoding", t, func() {
		order, err := Decode[Order]([]byte(`{
			"id": "5O190127TN364715T",
			"status": "CREATED",
			"links": [{"href": "https://example.com", "rel": "self"}]
		}`))
		So(err, ShouldBeNil)

		out, err := json.Marshal(order)
		So(err, ShouldBeNil)
		So(strings.Contains(string(out), "null"), ShouldBeFalse)
		So(strings.Contains(string(out), "payer"), ShouldBeFalse)
		So(strings.Contains(string(out), "create_time"), ShouldBeFalse)
	})
}

