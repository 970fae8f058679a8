// Package metric defines the Prometheus instrumentation for streambind.
// The silent-drop failure policy of the binding core makes counters the only
// production-grade visibility into how many envelopes were actually applied,
// dropped, or routed nowhere.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains all library-level metrics. Counters are labeled by stream
// (and action where it applies) so one registry covers every collection an
// application binds.
type Metrics struct {
	EnvelopesReceived *prometheus.CounterVec
	EnvelopesUnrouted prometheus.Counter
	DecodeFailures    *prometheus.CounterVec
	EventsApplied     *prometheus.CounterVec
	SnapshotsLoaded   *prometheus.CounterVec
	MessagesSent      *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance. Call Register to attach it to a
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		EnvelopesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "router",
				Name:      "envelopes_received_total",
				Help:      "Total number of envelopes routed, by stream",
			},
			[]string{"stream"},
		),

		EnvelopesUnrouted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "router",
				Name:      "envelopes_unrouted_total",
				Help:      "Total number of envelopes with no registered stream handler",
			},
		),

		DecodeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "binding",
				Name:      "decode_failures_total",
				Help:      "Total number of envelopes dropped as undecodable, by stream",
			},
			[]string{"stream"},
		),

		EventsApplied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "binding",
				Name:      "events_applied_total",
				Help:      "Total number of binding events applied to collections",
			},
			[]string{"stream", "action"},
		),

		SnapshotsLoaded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "binding",
				Name:      "snapshots_loaded_total",
				Help:      "Total number of initial-load snapshots applied, by stream",
			},
			[]string{"stream"},
		),

		MessagesSent: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "outbound",
				Name:      "messages_sent_total",
				Help:      "Total number of client-originated envelopes built for transport",
			},
			[]string{"stream", "action"},
		),
	}
}

// Register registers all metrics with the given registerer. Registering the
// same Metrics twice with one registry returns Prometheus's duplicate
// registration error.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.EnvelopesReceived,
		m.EnvelopesUnrouted,
		m.DecodeFailures,
		m.EventsApplied,
		m.SnapshotsLoaded,
		m.MessagesSent,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister registers all metrics and panics on failure, mirroring
// prometheus.MustRegister for use in application wiring.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	if err := m.Register(reg); err != nil {
		panic(err)
	}
}
