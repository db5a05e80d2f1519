package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestUnitMoney(t *testing.T) {

	Convey("NewMoney carries the value verbatim", t, func() {
		money := NewMoney(CurrencyGBP, "19.99")

		So(money.CurrencyCode, ShouldEqual, CurrencyGBP)
		So(money.Value, ShouldEqual, "19.99")
	})

	Convey("MoneyFromDecimal formats the decimal without float drift", t, func() {
		money := MoneyFromDecimal(CurrencyUSD, decimal.RequireFromString("19.99"))

		So(money.Value, ShouldEqual, "19.99")
	})

	Convey("The value survives an encode and decode unchanged", t, func() {
		out, err := json.Marshal(NewMoney(CurrencyEUR, "0.10"))
		So(err, ShouldBeNil)

		money, err := Decode[Money](out)
		So(err, ShouldBeNil)
		So(money.Value, ShouldEqual, "0.10")
	})
}

func TestUnitCurrency(t *testing.T) {

	Convey("A supported currency code decodes", t, func() {
		var c Currency
		err := json.Unmarshal([]byte(`"GBP"`), &c)

		So(err, ShouldBeNil)
		So(c, ShouldEqual, CurrencyGBP)
	})

	Convey("An unsupported currency code is rejected", t, func() {
		var c Currency
		err := json.Unmarshal([]byte(`"XYZ"`), &c)

		decErr, ok := err.(*DecodingError)
		So(ok, ShouldBeTrue)
		So(decErr.Type, ShouldEqual, "Currency")
		So(err.Error(), ShouldContainSubstring, `unknown value "XYZ"`)
	})

	Convey("A non-string token is rejected", t, func() {
		var c Currency
		err := json.Unmarshal([]byte(`826`), &c)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "must be a JSON string")
	})
}

func TestUnitLinkMethod(t *testing.T) {
	tests := []struct {
		token string
		valid bool
	}{
		{`"GET"`, true},
		{`"POST"`, true},
		{`"PATCH"`, true},
		{`"get"`, false},
		{`"TRACE"`, false},
	}

	for _, tt := range tests {
		var m LinkMethod
		err := json.Unmarshal([]byte(tt.token), &m)
		if tt.valid {
			assert.NoError(t, err, tt.token)
		} else {
			assert.Error(t, err, tt.token)
		}
	}
}

func TestUnitDate(t *testing.T) {

	Convey("A date serializes as YYYY-MM-DD", t, func() {
		out, err := json.Marshal(NewDate(2022, time.May, 23))

		So(err, ShouldBeNil)
		So(string(out), ShouldEqual, `"2022-05-23"`)
	})

	Convey("A date deserializes from YYYY-MM-DD", t, func() {
		var d Date
		err := json.Unmarshal([]byte(`"2022-05-23"`), &d)

		So(err, ShouldBeNil)
		So(d.Year(), ShouldEqual, 2022)
		So(d.Month(), ShouldEqual, time.May)
		So(d.Day(), ShouldEqual, 23)
	})

	Convey("A timestamp is not a valid date", t, func() {
		var d Date
		err := json.Unmarshal([]byte(`"2022-05-23T11:48:53Z"`), &d)

		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid calendar date")
	})
}
