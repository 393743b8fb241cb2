package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Construction error kinds. All are terminal for the load attempt; the first
// error encountered aborts construction and is surfaced verbatim.
var (
	// ErrMissingRequiredField indicates a required document field is absent.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrTypeMismatch indicates a field with the wrong JSON shape.
	ErrTypeMismatch = errors.New("unexpected field type")
	// ErrUnknownEnumValue indicates an enum token outside the closed set.
	ErrUnknownEnumValue = errors.New("unknown enum value")
	// ErrInvalidFixedLength indicates a fixed-width value of the wrong size.
	ErrInvalidFixedLength = errors.New("invalid fixed-length value")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}

// wrapDecodeErr maps encoding/json shape errors to ErrTypeMismatch. Errors
// raised by the leaf unmarshalers already carry their kind and pass through
// untouched.
func wrapDecodeErr(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "document"
		}
		return fmt.Errorf("%w: %s: got %s", ErrTypeMismatch, field, typeErr.Value)
	}
	return err
}
