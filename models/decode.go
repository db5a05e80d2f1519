package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations against the wire field names, not the Go ones.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Decode unmarshals data into T and checks that every required field was
// present. Unknown extra fields are ignored so that server-side schema
// additions do not break older clients.
func Decode[T any](data []byte) (*T, error) {
	out := new(T)
	typeName := reflect.TypeOf(*out).Name()
	if err := json.Unmarshal(data, out); err != nil {
		var decErr *DecodingError
		if errors.As(err, &decErr) {
			return nil, err
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &DecodingError{
				Type:   typeName,
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("cannot be decoded from JSON %s", typeErr.Value),
			}
		}
		return nil, &DecodingError{Type: typeName, Reason: err.Error()}
	}
	if err := checkRequired(typeName, out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkRequired validates the decoded value against its validate tags,
// mapping the first violation to a DecodingError naming the offending field.
func checkRequired(typeName string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		// Not a struct (e.g. a bare string response), nothing to check.
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return &DecodingError{
			Type:   typeName,
			Field:  fieldPath(vErrs[0].Namespace()),
			Reason: "is required but was absent",
		}
	}
	return err
}

// checkBuilt validates an assembled builder value, mapping the first
// violation to a ConstructionError.
func checkBuilt(typeName string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		return &ConstructionError{Type: typeName, Field: fieldPath(vErrs[0].Namespace())}
	}
	return err
}

// fieldPath strips the leading struct name from a validator namespace,
// leaving the wire path to the offending field, e.g. "amount.currency_code".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// decodeEnum decodes a JSON string into dst, accepting only the allowed
// tokens. PayPal enumerations are closed sets; an unrecognised token is a
// decoding error, never a silently carried value.
func decodeEnum[E ~string](data []byte, typeName string, dst *E, allowed ...E) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodingError{Type: typeName, Reason: "must be a JSON string"}
	}
	for _, a := range allowed {
		if E(s) == a {
			*dst = E(s)
			return nil
		}
	}
	return &DecodingError{Type: typeName, Reason: fmt.Sprintf("unknown value %q", s)}
}
