// Package transport provides implementations of the text-message transport
// collaborator the binding core expects: something that sends raw messages
// and delivers incoming ones to a callback. Two adapters are included, one
// over a WebSocket connection and one over NATS core pub/sub.
//
// The adapters are deliberately thin. Reconnection, heartbeats and
// backpressure are application or infrastructure concerns and are not
// implemented here; when the underlying connection dies, Send returns an
// error and delivery stops.
package transport

import (
	"context"
)

// MessageFunc receives one raw inbound text message. The application wires
// it to a router.Route or directly to binding.ApplyEvent. Callbacks are
// invoked sequentially from a single delivery goroutine, preserving
// transport order as the binding core requires.
type MessageFunc func(raw []byte)

// Transport is the outbound half of the collaborator contract.
type Transport interface {
	// Send transmits one raw text message. It fails once the underlying
	// connection is gone; it never queues past the connection's own
	// buffering.
	Send(ctx context.Context, raw []byte) error

	// Close tears down the connection and stops delivery.
	Close() error
}
