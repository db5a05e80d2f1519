package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/companieshouse/paypal.go/models"
)

// AddOrderTracking attaches shipment tracking information to one of an
// order's captures.
type AddOrderTracking struct {
	OrderID  string
	Tracking models.OrderTracking
}

// NewAddOrderTracking returns an AddOrderTracking call for the given order.
func NewAddOrderTracking(orderID string, tracking models.OrderTracking) *AddOrderTracking {
	return &AddOrderTracking{OrderID: orderID, Tracking: tracking}
}

func (e *AddOrderTracking) Method() string {
	return http.MethodPost
}

func (e *AddOrderTracking) RelativePath() string {
	return fmt.Sprintf("/v2/checkout/orders/%s/track", e.OrderID)
}

func (e *AddOrderTracking) Query() url.Values {
	return nil
}

func (e *AddOrderTracking) RequestBody() any {
	return e.Tracking
}

// Execute invokes the call and returns the order with its trackers updated.
func (e *AddOrderTracking) Execute(ctx context.Context, invoker Invoker) (*models.Order, error) {
	return Execute[models.Order](ctx, invoker, e)
}
