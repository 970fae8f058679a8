package binding

import (
	"github.com/c360/streambind/envelope"
)

// CreateFunc produces a new collection with the created instance applied.
type CreateFunc[K comparable, V any] func(instance V, pk K, col Collection[K, V]) Collection[K, V]

// UpdateFunc produces a new collection with the updated instance applied.
type UpdateFunc[K comparable, V any] func(instance V, pk K, col Collection[K, V]) Collection[K, V]

// DeleteFunc produces a new collection with the keyed entries removed.
type DeleteFunc[K comparable, V any] func(pk K, col Collection[K, V]) Collection[K, V]

// Handler is the per-stream configuration record: codecs for the key and
// instance types plus the three reducers. It carries no behavior of its own
// and must not be modified after construction; build one per stream at
// startup and pass it into every call.
type Handler[K comparable, V any] struct {
	// Stream is the wire name of the logical stream, used for outbound
	// envelopes.
	Stream string

	DecodeKey      envelope.Decoder[K]
	EncodeKey      envelope.Encoder[K]
	DecodeInstance envelope.Decoder[V]
	EncodeInstance envelope.Encoder[V]

	// Reducers. Nil fields fall back to the Default* reducers at apply
	// time, so a zero-configured handler still reconciles correctly.
	Create CreateFunc[K, V]
	Update UpdateFunc[K, V]
	Delete DeleteFunc[K, V]

	// OnError, when set, receives decode failures that ApplyEvent and the
	// outbound builders otherwise swallow. Purely diagnostic; returning
	// from it does not alter the no-op behavior.
	OnError func(err error)
}

// NewHandler builds a handler with JSON codecs and the default reducers.
// Callers needing custom codecs or reducers can set the fields directly.
func NewHandler[K comparable, V any](stream string) Handler[K, V] {
	return Handler[K, V]{
		Stream:         stream,
		DecodeKey:      envelope.JSONDecoder[K](),
		EncodeKey:      envelope.JSONEncoder[K](),
		DecodeInstance: envelope.JSONDecoder[V](),
		EncodeInstance: envelope.JSONEncoder[V](),
		Create:         DefaultCreate[K, V],
		Update:         DefaultUpdate[K, V],
		Delete:         DefaultDelete[K, V],
	}
}

// InitialHandler is the configuration record for initial-load streams, which
// only ever decode.
type InitialHandler[K comparable, V any] struct {
	Stream         string
	DecodeKey      envelope.Decoder[K]
	DecodeInstance envelope.Decoder[V]

	// OnError receives snapshot decode failures. See Handler.OnError.
	OnError func(err error)
}

// NewInitialHandler builds an initial-load handler with JSON codecs.
func NewInitialHandler[K comparable, V any](stream string) InitialHandler[K, V] {
	return InitialHandler[K, V]{
		Stream:         stream,
		DecodeKey:      envelope.JSONDecoder[K](),
		DecodeInstance: envelope.JSONDecoder[V](),
	}
}

func (h Handler[K, V]) reportError(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}

func (h InitialHandler[K, V]) reportError(err error) {
	if h.OnError != nil {
		h.OnError(err)
	}
}
