package models

// OrderTracking is the tracking information attached to a PayPal capture by
// the add-tracking call on an order.
type OrderTracking struct {
	// The tracking number assigned by the carrier.
	TrackingNumber string          `json:"tracking_number" validate:"required"`
	Carrier        ShipmentCarrier `json:"carrier" validate:"required"`
	// The carrier name. Required when the carrier is ShipmentCarrierOther.
	CarrierNameOther string `json:"carrier_name_other,omitempty"`
	// The PayPal capture ID the shipment belongs to.
	CaptureID string `json:"capture_id" validate:"required"`
	// Whether PayPal should email the payer about the shipment.
	NotifyPayer *bool          `json:"notify_payer,omitempty"`
	Items       []ShipmentItem `json:"items,omitempty" validate:"omitempty,dive"`
}

// OrderTrackingBuilder assembles an OrderTracking. The tracking number,
// carrier and capture ID are required.
type OrderTrackingBuilder struct {
	tracking OrderTracking
}

// NewOrderTrackingBuilder starts an OrderTracking with its required fields.
func NewOrderTrackingBuilder(trackingNumber string, carrier ShipmentCarrier, captureID string) *OrderTrackingBuilder {
	return &OrderTrackingBuilder{tracking: OrderTracking{
		TrackingNumber: trackingNumber,
		Carrier:        carrier,
		CaptureID:      captureID,
	}}
}

func (b *OrderTrackingBuilder) CarrierNameOther(name string) *OrderTrackingBuilder {
	b.tracking.CarrierNameOther = name
	return b
}

func (b *OrderTrackingBuilder) NotifyPayer(notify bool) *OrderTrackingBuilder {
	b.tracking.NotifyPayer = &notify
	return b
}

func (b *OrderTrackingBuilder) AddItem(item ShipmentItem) *OrderTrackingBuilder {
	b.tracking.Items = append(b.tracking.Items, item)
	return b
}

// Build validates that every required field was supplied.
func (b *OrderTrackingBuilder) Build() (OrderTracking, error) {
	if err := checkBuilt("OrderTracking", b.tracking); err != nil {
		return OrderTracking{}, err
	}
	return b.tracking, nil
}
