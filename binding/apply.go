package binding

import (
	"github.com/c360/streambind/envelope"
	"github.com/c360/streambind/errors"
)

// ApplyEvent decodes one binding envelope and applies its action to the
// collection, returning the new collection.
//
// Failure policy (see the package comment): a message that cannot be decoded
// returns the collection unchanged and reports to h.OnError if set; an
// unknown action returns the collection unchanged and is not reported; it
// is expected protocol evolution, not a fault.
func ApplyEvent[K comparable, V any](h Handler[K, V], raw []byte, col Collection[K, V]) Collection[K, V] {
	decoded, err := envelope.DecodeBinding(raw, h.DecodeKey, h.DecodeInstance)
	if err != nil {
		h.reportError(err)
		return col
	}

	switch decoded.Action {
	case envelope.ActionCreate:
		// Server-originated creates always carry a pk; a client-shaped
		// create without one cannot be placed in the collection.
		if decoded.PK == nil || decoded.Data == nil {
			h.reportError(errors.WrapInvalid(errors.ErrMissingField, "Binding", "ApplyEvent", "create pk"))
			return col
		}
		return h.create()(*decoded.Data, *decoded.PK, col)

	case envelope.ActionUpdate:
		return h.update()(*decoded.Data, *decoded.PK, col)

	case envelope.ActionDelete:
		return h.delete()(*decoded.PK, col)

	default:
		return col
	}
}

// ApplyInitial decodes an initial-load envelope and returns the snapshot as
// a fresh collection in wire order. The result replaces any prior collection
// rather than merging with it. On decode failure the new collection is empty
// and the failure is reported to h.OnError if set.
func ApplyInitial[K comparable, V any](h InitialHandler[K, V], raw []byte) Collection[K, V] {
	items, err := envelope.DecodeInitial(raw, h.DecodeKey, h.DecodeInstance)
	if err != nil {
		h.reportError(err)
		return Collection[K, V]{}
	}

	col := make(Collection[K, V], len(items))
	for i, item := range items {
		col[i] = Entry[K, V]{Key: item.PK, Instance: item.Data}
	}
	return col
}

func (h Handler[K, V]) create() CreateFunc[K, V] {
	if h.Create != nil {
		return h.Create
	}
	return DefaultCreate[K, V]
}

func (h Handler[K, V]) update() UpdateFunc[K, V] {
	if h.Update != nil {
		return h.Update
	}
	return DefaultUpdate[K, V]
}

func (h Handler[K, V]) delete() DeleteFunc[K, V] {
	if h.Delete != nil {
		return h.Delete
	}
	return DefaultDelete[K, V]
}
