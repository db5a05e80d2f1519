// Package api describes the PayPal REST calls as data: each endpoint is a
// value carrying its HTTP method, relative path, query parameters and request
// body. Transport, authentication and retries belong to the Invoker supplied
// by the caller.
package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/companieshouse/paypal.go/models"
)

// Endpoint is a single REST call, described without reference to any
// transport.
type Endpoint interface {
	// Method returns the HTTP method of the call, e.g. http.MethodPost.
	Method() string
	// RelativePath returns the path of the call relative to the API base
	// URL, with path parameters already interpolated.
	RelativePath() string
	// Query returns the query parameters of the call, or nil when the call
	// takes none.
	Query() url.Values
	// RequestBody returns the value to serialise as the JSON request body,
	// or nil when the call sends none.
	RequestBody() any
}

// Invoker carries an Endpoint over the wire and returns the raw response
// body. Implementations own the base URL, authentication and HTTP client.
type Invoker interface {
	Invoke(ctx context.Context, endpoint Endpoint) ([]byte, error)
}

// Execute invokes an endpoint and decodes the response body into R,
// enforcing required fields and closed enumerations.
func Execute[R any](ctx context.Context, invoker Invoker, endpoint Endpoint) (*R, error) {
	body, err := invoker.Invoke(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("error invoking %s %s: [%w]", endpoint.Method(), endpoint.RelativePath(), err)
	}
	return models.Decode[R](body)
}

// execute invokes an endpoint whose response carries no body of interest.
func execute(ctx context.Context, invoker Invoker, endpoint Endpoint) error {
	if _, err := invoker.Invoke(ctx, endpoint); err != nil {
		return fmt.Errorf("error invoking %s %s: [%w]", endpoint.Method(), endpoint.RelativePath(), err)
	}
	return nil
}
