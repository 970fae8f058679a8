package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/c360/streambind/errors"
)

// wireBindingPayload is the outbound payload shape. Field declaration order
// matters: the counterpart server reads pk before action before data, and
// byte-exact output keeps client-originated envelopes diffable in captures.
type wireBindingPayload struct {
	PK     json.RawMessage `json:"pk,omitempty"`
	Action Action          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type wireEnvelope struct {
	Stream  string             `json:"stream"`
	Payload wireBindingPayload `json:"payload"`
}

// EncodeBinding builds a client-originated binding envelope as compact JSON.
//
// The server expects exactly these payload fields per action and no others:
//
//	create: {"action", "data"}
//	update: {"pk", "action", "data"}
//	delete: {"pk", "action"}
//
// Fields outside the action's set are dropped even when supplied (a pk passed
// with create is ignored). A nil pk or data that the action requires, or an
// action outside the canonical set, is an error.
func EncodeBinding[K comparable, V any](
	stream string,
	action Action,
	pk *K,
	data *V,
	encodeKey Encoder[K],
	encodeInstance Encoder[V],
) ([]byte, error) {
	if !action.Known() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: action %q", errors.ErrInvalidData, action),
			"Envelope", "EncodeBinding", "action check")
	}

	payload := wireBindingPayload{Action: action}

	if action != ActionCreate {
		if pk == nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: pk for action %q", errors.ErrMissingField, action),
				"Envelope", "EncodeBinding", "pk check")
		}
		rawPK, err := encodeKey(*pk)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Envelope", "EncodeBinding", "pk encode")
		}
		payload.PK = rawPK
	}

	if action != ActionDelete {
		if data == nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: data for action %q", errors.ErrMissingField, action),
				"Envelope", "EncodeBinding", "data check")
		}
		rawData, err := encodeInstance(*data)
		if err != nil {
			return nil, errors.WrapInvalid(err, "Envelope", "EncodeBinding", "data encode")
		}
		payload.Data = rawData
	}

	text, err := json.Marshal(wireEnvelope{Stream: stream, Payload: payload})
	if err != nil {
		return nil, errors.WrapInvalid(err, "Envelope", "EncodeBinding", "envelope marshal")
	}
	return text, nil
}
