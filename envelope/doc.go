// Package envelope provides decode and encode primitives for the stream
// data-binding wire format.
//
// # Wire Format
//
// Every message is a JSON envelope with two top-level fields:
//
//	{"stream": "<name>", "payload": ...}
//
// Binding envelopes carry a single event for one item:
//
//	{"stream": "todo",
//	 "payload": {"model": "todo", "data": {...}, "pk": "1", "action": "update"}}
//
// Initial-load envelopes carry a bulk snapshot used to seed a collection
// before incremental events arrive; the payload is a list of items with no
// action:
//
//	{"stream": "todo",
//	 "payload": [{"model": "todo", "data": {...}, "pk": "1"}, ...]}
//
// # Genericity
//
// The codec is parameterized over the primary-key type K and the instance
// type V and never inspects either beyond what the supplied Decoder/Encoder
// functions need. JSONDecoder and JSONEncoder cover types that round-trip
// through encoding/json; anything else (custom key encodings, protobuf-backed
// instances) plugs in through the same two function types.
//
// # Field requirements
//
// Server-originated binding envelopes carry model, data, pk and action.
// Client-originated envelopes (see EncodeBinding) deliberately omit fields
// the server does not expect: create has no pk, delete has no data, and no
// outbound payload carries model. DecodeBinding therefore enforces the
// per-action minimum (action always; pk unless create; data unless delete)
// so that both directions of the wire format decode cleanly.
package envelope
