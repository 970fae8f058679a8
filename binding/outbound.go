package binding

import (
	"github.com/c360/streambind/envelope"
)

// BuildCreateMessage encodes a client-originated create for the handler's
// stream. The payload carries action and data only; the server assigns the
// primary key.
func BuildCreateMessage[K comparable, V any](h Handler[K, V], instance V) ([]byte, error) {
	text, err := envelope.EncodeBinding(h.Stream, envelope.ActionCreate, nil, &instance, h.EncodeKey, h.EncodeInstance)
	if err != nil {
		h.reportError(err)
		return nil, err
	}
	return text, nil
}

// BuildUpdateMessage encodes a client-originated update carrying pk, action
// and data.
func BuildUpdateMessage[K comparable, V any](h Handler[K, V], pk K, instance V) ([]byte, error) {
	text, err := envelope.EncodeBinding(h.Stream, envelope.ActionUpdate, &pk, &instance, h.EncodeKey, h.EncodeInstance)
	if err != nil {
		h.reportError(err)
		return nil, err
	}
	return text, nil
}

// BuildDeleteMessage encodes a client-originated delete carrying pk and
// action only.
func BuildDeleteMessage[K comparable, V any](h Handler[K, V], pk K) ([]byte, error) {
	text, err := envelope.EncodeBinding(h.Stream, envelope.ActionDelete, &pk, nil, h.EncodeKey, h.EncodeInstance)
	if err != nil {
		h.reportError(err)
		return nil, err
	}
	return text, nil
}
