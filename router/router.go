// Package router dispatches raw wire messages to per-stream message
// functions. The binding core deliberately owns no registry (handlers are
// plain records the application looks up itself), so Router is the optional
// glue an application would otherwise write by hand: extract the stream
// name, find the registered function, count and log what happened.
//
// Router is not synchronized. Drive it from the single goroutine that owns
// the transport's delivery callback; binding reducers assume events for one
// collection arrive serialized.
package router

import (
	"log/slog"

	"github.com/c360/streambind/metric"
	"github.com/c360/streambind/stream"
)

// MessageFunc consumes one raw wire message for a stream.
type MessageFunc func(raw []byte)

// Router maps stream names to message functions.
type Router struct {
	routes   map[string]MessageFunc
	fallback MessageFunc
	logger   *slog.Logger
	metrics  *metric.Metrics
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for drop diagnostics. Drops log at Debug
// level so the default production behavior stays quiet.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithMetrics attaches counters for routed, unrouted and fallback-handled
// envelopes.
func WithMetrics(m *metric.Metrics) Option {
	return func(r *Router) {
		r.metrics = m
	}
}

// New creates an empty router.
func New(opts ...Option) *Router {
	r := &Router{
		routes: make(map[string]MessageFunc),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle registers the message function for a stream name, replacing any
// previous registration.
func (r *Router) Handle(streamName string, fn MessageFunc) {
	r.routes[streamName] = fn
}

// HandleFallback registers the function invoked for messages whose stream is
// missing, malformed, or not registered. Without a fallback such messages
// are counted and dropped.
func (r *Router) HandleFallback(fn MessageFunc) {
	r.fallback = fn
}

// Route dispatches one raw message. Unroutable messages never error: they go
// to the fallback function when one is registered and are otherwise dropped
// with a debug log line, matching the binding core's failure policy.
func (r *Router) Route(raw []byte) {
	name, ok := stream.ExtractName(raw)
	if !ok {
		r.unrouted(raw, "no stream field")
		return
	}

	fn, registered := r.routes[name]
	if !registered {
		r.unrouted(raw, "unregistered stream", slog.String("stream", name))
		return
	}

	if r.metrics != nil {
		r.metrics.EnvelopesReceived.WithLabelValues(name).Inc()
	}
	fn(raw)
}

// Streams returns the registered stream names.
func (r *Router) Streams() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	return names
}

func (r *Router) unrouted(raw []byte, reason string, attrs ...any) {
	if r.metrics != nil {
		r.metrics.EnvelopesUnrouted.Inc()
	}
	if r.fallback != nil {
		r.fallback(raw)
		return
	}
	r.logger.Debug("dropping unroutable message", append(attrs, slog.String("reason", reason))...)
}
