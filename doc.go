// Package streambind is a client-side routing and state-reconciliation kit
// for real-time data-binding protocols: a server pushes JSON stream
// envelopes over a persistent socket, and the client routes each envelope to
// a per-stream handler and applies its action to an in-memory collection.
//
// # Architecture
//
// Three pure, composable layers, leaf first:
//
//	┌─────────────────────────────────────┐
//	│         binding (reducers)          │  apply create/update/delete,
//	│   ApplyEvent / ApplyInitial / Build │  build outbound envelopes
//	└─────────────────────────────────────┘
//	           ↑ decoded envelopes
//	┌─────────────────────────────────────┐
//	│        envelope (wire codec)        │  {stream, payload} decode/encode,
//	│                                     │  generic over key and instance
//	└─────────────────────────────────────┘
//	           ↑ stream discriminator
//	┌─────────────────────────────────────┐
//	│       stream (demultiplexer)        │  extract + classify the stream
//	│                                     │  field, fallback on garbage
//	└─────────────────────────────────────┘
//
// Around the core: router (optional stream→handler dispatch with logging and
// Prometheus counters), config (YAML route tables), transport (WebSocket and
// NATS implementations of the send/deliver collaborator), metric and errors
// (shared instrumentation and error classification).
//
// # Contracts
//
// Every core operation is a deterministic, side-effect-free transform; the
// library retains no collection between calls and does no locking; the
// application feeds messages in transport-delivery order from one goroutine.
// Malformed or unrecognized messages never raise: they produce no state
// change, with opt-in visibility through OnError hooks, debug logs and
// counters.
//
// # Usage
//
//	type Todo struct {
//		Description string `json:"description"`
//		IsDone      bool   `json:"is_done"`
//	}
//
//	handler := binding.NewHandler[string, Todo]("todo")
//	r := router.New()
//	router.Bind(r, handler, store.Get, store.Set)
//
//	ws, err := transport.DialWebSocket(ctx, url, r.Route)
//	if err != nil {
//		// ...
//	}
//	msg, _ := binding.BuildCreateMessage(handler, Todo{Description: "x"})
//	_ = ws.Send(ctx, msg)
package streambind
