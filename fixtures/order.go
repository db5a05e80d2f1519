package fixtures

import (
	"time"

	"github.com/companieshouse/paypal.go/models"
)

var OrderID = "5O190127TN364715T"

// GetOrderPayload returns a single-unit CAPTURE order payload
func GetOrderPayload() models.OrderPayload {
	return models.OrderPayload{
		Intent: models.IntentCapture,
		PurchaseUnits: []models.PurchaseUnit{
			{
				ReferenceID: "default",
				Amount:      models.NewAmount(models.CurrencyGBP, "19.99"),
			},
		},
	}
}

// GetOrder returns the order created from GetOrderPayload
func GetOrder() *models.Order {
	createTime := time.Date(2022, 5, 23, 11, 48, 53, 0, time.UTC)
	return &models.Order{
		ID:         OrderID,
		Status:     models.OrderStatusCreated,
		Intent:     models.IntentCapture,
		CreateTime: &createTime,
		PurchaseUnits: []models.PurchaseUnit{
			{
				ReferenceID: "default",
				Amount:      models.NewAmount(models.CurrencyGBP, "19.99"),
			},
		},
		Links: []models.LinkDescription{
			{
				Href:   "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T",
				Rel:    "self",
				Method: models.LinkMethodGet,
			},
			{
				Href:   "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T",
				Rel:    "approve",
				Method: models.LinkMethodGet,
			},
			{
				Href:   "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T/capture",
				Rel:    "capture",
				Method: models.LinkMethodPost,
			},
		},
	}
}

// GetOrderJSON returns the wire form of GetOrder
func GetOrderJSON() string {
	return `{
		"id": "5O190127TN364715T",
		"intent": "CAPTURE",
		"status": "CREATED",
		"create_time": "2022-05-23T11:48:53Z",
		"purchase_units": [
			{
				"reference_id": "default",
				"amount": {"currency_code": "GBP", "value": "19.99"}
			}
		],
		"links": [
			{"href": "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T", "rel": "self", "method": "GET"},
			{"href": "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T", "rel": "approve", "method": "GET"},
			{"href": "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T/capture", "rel": "capture", "method": "POST"}
		]
	}`
}
