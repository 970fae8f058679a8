package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/c360/streambind/errors"
)

// Binding is a decoded binding envelope. PK and Data are pointers because
// their presence depends on the action: client-encoded create envelopes carry
// no pk, and delete envelopes carry no data. Model is informational only and
// empty when the sender omitted it; it plays no part in dispatch.
type Binding[K comparable, V any] struct {
	Model  string
	Action Action
	PK     *K
	Data   *V
}

// rawEnvelope is the untyped outer wire shape shared by binding and
// initial-load messages.
type rawEnvelope struct {
	Stream  json.RawMessage `json:"stream"`
	Payload json.RawMessage `json:"payload"`
}

// rawBindingPayload defers all field decoding so that per-action requirements
// and the caller's key/instance decoders can be applied after the fact.
type rawBindingPayload struct {
	Model  json.RawMessage `json:"model"`
	Data   json.RawMessage `json:"data"`
	PK     json.RawMessage `json:"pk"`
	Action json.RawMessage `json:"action"`
}

// DecodeBinding decodes a binding envelope using the caller-supplied key and
// instance decoders.
//
// Requirements: payload.action must be a string. payload.pk is required
// unless the action is create, payload.data is required unless the action is
// delete, and payload.model is optional but must be a string when present.
// Any missing or undecodable required field yields an invalid-classified
// error; DecodeBinding never panics on malformed input.
//
// An action outside the canonical create/update/delete set is not a decode
// error; consumers treat it as a no-op so that protocol evolution degrades
// gracefully.
func DecodeBinding[K comparable, V any](
	raw []byte,
	decodeKey Decoder[K],
	decodeInstance Decoder[V],
) (Binding[K, V], error) {
	var zero Binding[K, V]

	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, errors.WrapInvalid(errors.ErrParsingFailed, "Envelope", "DecodeBinding", "envelope unmarshal")
	}
	if !present(env.Payload) {
		return zero, errors.WrapInvalid(errors.ErrMissingField, "Envelope", "DecodeBinding", "payload")
	}

	var payload rawBindingPayload
	if err := json.Unmarshal(env.Payload, &payload); err != nil {
		return zero, errors.WrapInvalid(errors.ErrParsingFailed, "Envelope", "DecodeBinding", "payload unmarshal")
	}

	if !present(payload.Action) {
		return zero, errors.WrapInvalid(errors.ErrMissingField, "Envelope", "DecodeBinding", "payload.action")
	}
	var action string
	if err := json.Unmarshal(payload.Action, &action); err != nil {
		return zero, errors.WrapInvalid(errors.ErrInvalidData, "Envelope", "DecodeBinding", "payload.action type")
	}

	decoded := Binding[K, V]{Action: Action(action)}

	if present(payload.Model) {
		if err := json.Unmarshal(payload.Model, &decoded.Model); err != nil {
			return zero, errors.WrapInvalid(errors.ErrInvalidData, "Envelope", "DecodeBinding", "payload.model type")
		}
	}

	if present(payload.PK) {
		pk, err := decodeKey(payload.PK)
		if err != nil {
			return zero, errors.WrapInvalid(
				fmt.Errorf("%w: pk: %v", errors.ErrInvalidData, err),
				"Envelope", "DecodeBinding", "payload.pk decode")
		}
		decoded.PK = &pk
	} else if decoded.Action != ActionCreate {
		return zero, errors.WrapInvalid(errors.ErrMissingField, "Envelope", "DecodeBinding", "payload.pk")
	}

	if present(payload.Data) {
		data, err := decodeInstance(payload.Data)
		if err != nil {
			return zero, errors.WrapInvalid(
				fmt.Errorf("%w: data: %v", errors.ErrInvalidData, err),
				"Envelope", "DecodeBinding", "payload.data decode")
		}
		decoded.Data = &data
	} else if decoded.Action != ActionDelete {
		return zero, errors.WrapInvalid(errors.ErrMissingField, "Envelope", "DecodeBinding", "payload.data")
	}

	return decoded, nil
}
