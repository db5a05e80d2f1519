package models

import "fmt"

// ConstructionError is returned by a builder's Build step when a required
// field was never supplied. Required fields are never silently defaulted.
type ConstructionError struct {
	Type  string
	Field string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("building %s: required field %q was not supplied", e.Type, e.Field)
}

// DecodingError is returned when an inbound JSON document does not match the
// expected shape of a type: a required field is missing, an enum token is
// outside its closed set, or a primitive has the wrong type.
type DecodingError struct {
	Type   string
	Field  string
	Reason string
}

func (e *DecodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("decoding %s: field %q %s", e.Type, e.Field, e.Reason)
	}
	return fmt.Sprintf("decoding %s: %s", e.Type, e.Reason)
}
