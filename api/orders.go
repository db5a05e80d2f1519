package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/companieshouse/paypal.go/models"
)

// CreateOrder creates an order with the supplied intent and purchase units.
type CreateOrder struct {
	Order models.OrderPayload
}

// NewCreateOrder returns a CreateOrder call for the given payload.
func NewCreateOrder(order models.OrderPayload) *CreateOrder {
	return &CreateOrder{Order: order}
}

func (e *CreateOrder) Method() string {
	return http.MethodPost
}

func (e *CreateOrder) RelativePath() string {
	return "/v2/checkout/orders"
}

func (e *CreateOrder) Query() url.Values {
	return nil
}

func (e *CreateOrder) RequestBody() any {
	return e.Order
}

// Execute invokes the call and returns the created order.
func (e *CreateOrder) Execute(ctx context.Context, invoker Invoker) (*models.Order, error) {
	return Execute[models.Order](ctx, invoker, e)
}

// ShowOrderDetails fetches an order by its ID.
type ShowOrderDetails struct {
	OrderID string
}

// NewShowOrderDetails returns a ShowOrderDetails call for the given order.
func NewShowOrderDetails(orderID string) *ShowOrderDetails {
	return &ShowOrderDetails{OrderID: orderID}
}

func (e *ShowOrderDetails) Method() string {
	return http.MethodGet
}

func (e *ShowOrderDetails) RelativePath() string {
	return fmt.Sprintf("/v2/checkout/orders/%s", e.OrderID)
}

func (e *ShowOrderDetails) Query() url.Values {
	return nil
}

func (e *ShowOrderDetails) RequestBody() any {
	return nil
}

// Execute invokes the call and returns the order.
func (e *ShowOrderDetails) Execute(ctx context.Context, invoker Invoker) (*models.Order, error) {
	return Execute[models.Order](ctx, invoker, e)
}

// AuthorizeOrder authorizes payment for an approved order.
type AuthorizeOrder struct {
	OrderID string
	// The payment source used to fund the authorization, if any.
	PaymentSource *models.OrderPaymentSource
}

// NewAuthorizeOrder returns an AuthorizeOrder call for the given order.
func NewAuthorizeOrder(orderID string) *AuthorizeOrder {
	return &AuthorizeOrder{OrderID: orderID}
}

func (e *AuthorizeOrder) Method() string {
	return http.MethodPost
}

func (e *AuthorizeOrder) RelativePath() string {
	return fmt.Sprintf("/v2/checkout/orders/%s/authorize", e.OrderID)
}

func (e *AuthorizeOrder) Query() url.Values {
	return nil
}

func (e *AuthorizeOrder) RequestBody() any {
	if e.PaymentSource == nil {
		return nil
	}
	return e.PaymentSource
}

// Execute invokes the call and returns the order with its authorizations.
func (e *AuthorizeOrder) Execute(ctx context.Context, invoker Invoker) (*models.Order, error) {
	return Execute[models.Order](ctx, invoker, e)
}

// CaptureOrder captures payment for an approved order.
type CaptureOrder struct {
	OrderID string
	// The payment source used to fund the capture, if any.
	PaymentSource *models.OrderPaymentSource
}

// NewCaptureOrder returns a CaptureOrder call for the given order.
func NewCaptureOrder(orderID string) *CaptureOrder {
	return &CaptureOrder{OrderID: orderID}
}

func (e *CaptureOrder) Method() string {
	return http.MethodPost
}

func (e *CaptureOrder) RelativePath() string {
	return fmt.Sprintf("/v2/checkout/orders/%s/capture", e.OrderID)
}

func (e *CaptureOrder) Query() url.Values {
	return nil
}

func (e *CaptureOrder) RequestBody() any {
	if e.PaymentSource == nil {
		return nil
	}
	return e.PaymentSource
}

// Execute invokes the call and returns the order with its captures.
func (e *CaptureOrder) Execute(ctx context.Context, invoker Invoker) (*models.Order, error) {
	return Execute[models.Order](ctx, invoker, e)
}
