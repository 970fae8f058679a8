package envelope

import (
	"encoding/json"
)

// Decoder converts a raw JSON fragment into a typed value.
// Implementations must not retain the input slice.
type Decoder[T any] func(raw json.RawMessage) (T, error)

// Encoder converts a typed value into a raw JSON fragment.
type Encoder[T any] func(value T) (json.RawMessage, error)

// JSONDecoder returns a Decoder backed by encoding/json for any type that
// unmarshals with standard struct tags. This covers the common case of
// plain-record instances and string or numeric primary keys.
func JSONDecoder[T any]() Decoder[T] {
	return func(raw json.RawMessage) (T, error) {
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			var zero T
			return zero, err
		}
		return value, nil
	}
}

// JSONEncoder returns an Encoder backed by encoding/json.
func JSONEncoder[T any]() Encoder[T] {
	return func(value T) (json.RawMessage, error) {
		return json.Marshal(value)
	}
}

// present reports whether a raw payload field was supplied with a usable
// value. A field that is absent or explicitly null is treated the same way.
func present(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	return string(raw) != "null"
}
