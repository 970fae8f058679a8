package router

import (
	"github.com/tidwall/gjson"

	"github.com/c360/streambind/binding"
	"github.com/c360/streambind/envelope"
)

// Bind registers a binding stream on the router: every routed message is
// applied to the collection read from get, and the resulting collection is
// handed to set. The store functions are how the application keeps ownership
// of its state (e.g. UI state) while the router drives reconciliation.
//
// The handler's OnError hook keeps working; Bind additionally feeds decode
// failures into the router's metrics when metrics are attached.
func Bind[K comparable, V any](
	r *Router,
	h binding.Handler[K, V],
	get func() binding.Collection[K, V],
	set func(binding.Collection[K, V]),
) {
	r.Handle(h.Stream, func(raw []byte) {
		failed := false
		instrumented := h
		userHook := h.OnError
		instrumented.OnError = func(err error) {
			failed = true
			if r.metrics != nil {
				r.metrics.DecodeFailures.WithLabelValues(h.Stream).Inc()
			}
			if userHook != nil {
				userHook(err)
			}
		}

		next := binding.ApplyEvent(instrumented, raw, get())

		if !failed && r.metrics != nil {
			if action := wireAction(raw); action.Known() {
				r.metrics.EventsApplied.WithLabelValues(h.Stream, action.String()).Inc()
			}
		}
		set(next)
	})
}

// BindInitial registers an initial-load stream: each routed snapshot
// replaces the stored collection.
func BindInitial[K comparable, V any](
	r *Router,
	h binding.InitialHandler[K, V],
	set func(binding.Collection[K, V]),
) {
	r.Handle(h.Stream, func(raw []byte) {
		failed := false
		instrumented := h
		userHook := h.OnError
		instrumented.OnError = func(err error) {
			failed = true
			if r.metrics != nil {
				r.metrics.DecodeFailures.WithLabelValues(h.Stream).Inc()
			}
			if userHook != nil {
				userHook(err)
			}
		}

		col := binding.ApplyInitial(instrumented, raw)

		if !failed && r.metrics != nil {
			r.metrics.SnapshotsLoaded.WithLabelValues(h.Stream).Inc()
		}
		set(col)
	})
}

// InstrumentSend wraps a transport send function so that client-originated
// envelopes are counted by stream and action on their way out.
func (r *Router) InstrumentSend(send func(raw []byte) error) func(raw []byte) error {
	return func(raw []byte) error {
		if r.metrics != nil {
			streamName := gjson.GetBytes(raw, "stream").String()
			if action := wireAction(raw); action.Known() {
				r.metrics.MessagesSent.WithLabelValues(streamName, action.String()).Inc()
			}
		}
		return send(raw)
	}
}

// wireAction pulls payload.action without a full decode; empty when absent.
func wireAction(raw []byte) envelope.Action {
	return envelope.Action(gjson.GetBytes(raw, "payload.action").String())
}
