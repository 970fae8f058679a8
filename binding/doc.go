// Package binding applies stream data-binding events to in-memory
// collections and builds client-originated mutation envelopes.
//
// # Model
//
// A Collection is an ordered list of (key, instance) entries owned by the
// calling application. Every operation here is a pure function from an old
// collection and a raw event to a new collection; the package retains no
// state between calls and imposes no locking; callers feed it messages in
// transport-delivery order from a single goroutine.
//
// A Handler bundles the per-stream configuration: key and instance codecs
// plus the three reducers that realize create, update and delete. Handlers
// are plain immutable records constructed once at startup; the application
// owns the stream-to-handler dispatch (see the router package for a
// ready-made one).
//
// # Failure policy
//
// ApplyEvent and ApplyInitial never return an error and never panic on
// malformed input: a message that cannot be decoded produces no state change
// (the unchanged collection, or an empty one for initial loads). A single
// bad push message must not crash the reactive update loop, and a server
// that starts sending an action this client does not know must degrade to a
// no-op. This is deliberate policy, not an accident; do not "fix" it into
// returning errors. Handlers accept an optional OnError callback so
// production users can observe dropped messages without changing the
// default behavior.
package binding
