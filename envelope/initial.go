package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/c360/streambind/errors"
)

// Item is one element of a decoded initial-load envelope.
type Item[K comparable, V any] struct {
	Model string
	PK    K
	Data  V
}

type rawInitialItem struct {
	Model json.RawMessage `json:"model"`
	Data  json.RawMessage `json:"data"`
	PK    json.RawMessage `json:"pk"`
}

// DecodeInitial decodes an initial-load envelope whose payload is a list of
// items, each carrying model, data and pk and no action. Items are returned
// in wire order. All three fields are required on every item; a single bad
// item fails the whole decode so a caller never seeds a partial snapshot.
func DecodeInitial[K comparable, V any](
	raw []byte,
	decodeKey Decoder[K],
	decodeInstance Decoder[V],
) ([]Item[K, V], error) {
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.WrapInvalid(errors.ErrParsingFailed, "Envelope", "DecodeInitial", "envelope unmarshal")
	}
	if !present(env.Payload) {
		return nil, errors.WrapInvalid(errors.ErrMissingField, "Envelope", "DecodeInitial", "payload")
	}

	var rawItems []rawInitialItem
	if err := json.Unmarshal(env.Payload, &rawItems); err != nil {
		return nil, errors.WrapInvalid(errors.ErrParsingFailed, "Envelope", "DecodeInitial", "payload unmarshal")
	}

	items := make([]Item[K, V], 0, len(rawItems))
	for i, ri := range rawItems {
		var item Item[K, V]

		if !present(ri.Model) {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: model", errors.ErrMissingField, i),
				"Envelope", "DecodeInitial", "item model")
		}
		if err := json.Unmarshal(ri.Model, &item.Model); err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: model: %v", errors.ErrInvalidData, i, err),
				"Envelope", "DecodeInitial", "item model type")
		}

		if !present(ri.PK) {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: pk", errors.ErrMissingField, i),
				"Envelope", "DecodeInitial", "item pk")
		}
		pk, err := decodeKey(ri.PK)
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: pk: %v", errors.ErrInvalidData, i, err),
				"Envelope", "DecodeInitial", "item pk decode")
		}
		item.PK = pk

		if !present(ri.Data) {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: data", errors.ErrMissingField, i),
				"Envelope", "DecodeInitial", "item data")
		}
		data, err := decodeInstance(ri.Data)
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: item %d: data: %v", errors.ErrInvalidData, i, err),
				"Envelope", "DecodeInitial", "item data decode")
		}
		item.Data = data

		items = append(items, item)
	}

	return items, nil
}
