package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Money is an amount of a specific currency. The value is carried as a
// decimal string exactly as it appears on the wire; this layer performs no
// arithmetic on it.
type Money struct {
	CurrencyCode Currency `json:"currency_code" validate:"required"`
	Value        string   `json:"value"         validate:"required"`
}

// NewMoney returns a Money with the given currency and decimal string value.
func NewMoney(currency Currency, value string) Money {
	return Money{CurrencyCode: currency, Value: value}
}

// MoneyFromDecimal formats a decimal into a wire value. The string form is
// fixed at construction time so no floating-point representation is involved.
func MoneyFromDecimal(currency Currency, value decimal.Decimal) Money {
	return Money{CurrencyCode: currency, Value: value.String()}
}

// LinkMethod is the HTTP method required to make the related HATEOAS call.
type LinkMethod string

const (
	LinkMethodGet     LinkMethod = "GET"
	LinkMethodPost    LinkMethod = "POST"
	LinkMethodPut     LinkMethod = "PUT"
	LinkMethodDelete  LinkMethod = "DELETE"
	LinkMethodHead    LinkMethod = "HEAD"
	LinkMethodConnect LinkMethod = "CONNECT"
	LinkMethodOptions LinkMethod = "OPTIONS"
	LinkMethodPatch   LinkMethod = "PATCH"
)

func (m *LinkMethod) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "LinkMethod", m,
		LinkMethodGet, LinkMethodPost, LinkMethodPut, LinkMethodDelete,
		LinkMethodHead, LinkMethodConnect, LinkMethodOptions, LinkMethodPatch)
}

// LinkDescription is a request-related HATEOAS link returned by the API to
// guide the client to related or next actions.
type LinkDescription struct {
	Href   string     `json:"href" validate:"required"`
	Rel    string     `json:"rel"  validate:"required"`
	Method LinkMethod `json:"method,omitempty"`
}

// PhoneType is the type of a phone number.
type PhoneType string

const (
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeOther  PhoneType = "OTHER"
	PhoneTypePager  PhoneType = "PAGER"
)

func (p *PhoneType) UnmarshalJSON(data []byte) error {
	return decodeEnum(data, "PhoneType", p,
		PhoneTypeFax, PhoneTypeHome, PhoneTypeMobile, PhoneTypeOther, PhoneTypePager)
}

// Address is a portable international postal address.
type Address struct {
	// The first line of the address. For example, number or street.
	AddressLine1 string `json:"address_line_1,omitempty"`
	// The second line of the address. For example, suite or apartment number.
	AddressLine2 string `json:"address_line_2,omitempty"`
	// A city, town, or village.
	AdminArea2 string `json:"admin_area_2,omitempty"`
	// The highest level sub-division in a country, such as a state or province.
	AdminArea1 string `json:"admin_area_1,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	// The two-character ISO 3166-1 country code.
	CountryCode string `json:"country_code" validate:"required"`
}

// ItemUpc is the Universal Product Code of an item.
type ItemUpc struct {
	UPCType string `json:"type" validate:"required"`
	Code    string `json:"code" validate:"required"`
}

// Date is a calendar date without a time component or timezone, serialized
// as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the calendar date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodingError{Type: "Date", Reason: "must be a JSON string"}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return &DecodingError{Type: "Date", Reason: fmt.Sprintf("invalid calendar date %q", s)}
	}
	d.Time = t
	return nil
}
