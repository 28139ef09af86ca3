package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrTrailingData is returned when a request body holds more than one JSON value.
var ErrTrailingData = errors.New("request body must contain a single JSON value")

// DecodeJSON decodes the request body into the given struct.
// An empty body is not an error: v keeps its zero value, so that payload
// validation can report every missing field instead of a parse failure.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// TypeViolation converts a JSON type mismatch (e.g. a number where a string
// was expected) into a FieldViolation. It reports false for any other error,
// which callers treat as an unreadable body.
func TypeViolation(err error) (FieldViolation, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return FieldViolation{}, false
	}

	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return FieldViolation{
		Field:   field,
		Code:    "invalid_type",
		Message: "Expected " + typeErr.Type.String() + ", received " + typeErr.Value,
	}, true
}
