package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// Encode serialises v to JSON. Struct fields keep their declaration order, so
// the same value always yields the same bytes.
func Encode(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &SerializationError{Type: fmt.Sprintf("%T", v), Err: err}
	}
	return b, nil
}

// Decode parses data into a T and validates it. Malformed JSON and values of
// the wrong type are reported as ValidationErrors, like constraint violations,
// so that callers handle a single client-error shape.
func Decode[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, decodeError(err)
	}
	if err := Validate(v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return ValidationErrors{{Field: field, Message: "must be " + kindName(typeErr.Type)}}
	}
	return ValidationErrors{{Field: "body", Message: "must be a valid JSON object"}}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return "a valid value"
	}
}
