package fixtures

import "github.com/companieshouse/paypal.go/models"

var CaptureID = "8MC585209K746392H"
var TrackingNumber = "443844607820"

// GetOrderTracking returns tracking information for the capture of GetOrder
func GetOrderTracking() models.OrderTracking {
	notify := true
	return models.OrderTracking{
		TrackingNumber: TrackingNumber,
		Carrier:        models.ShipmentCarrierFedEx,
		CaptureID:      CaptureID,
		NotifyPayer:    &notify,
		Items: []models.ShipmentItem{
			{
				Name:     "T-Shirt",
				Quantity: "1",
				SKU:      "sku02",
			},
		},
	}
}
