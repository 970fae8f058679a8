package transport

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360/streambind/errors"
)

// NATS adapts a core NATS connection to the Transport contract: outbound
// messages publish to one subject, inbound messages arrive on another. Used
// when the binding server fronts its streams with a NATS fabric instead of a
// raw socket. JetStream is intentionally not involved: the binding protocol
// assumes plain in-order delivery on a live connection, not replayed or
// acknowledged messages.
type NATS struct {
	id      string
	conn    *nats.Conn
	subject string
	sub     *nats.Subscription
	logger  *slog.Logger

	closeOnce sync.Once
}

// NATSOption configures NewNATS.
type NATSOption func(*natsConfig)

type natsConfig struct {
	logger *slog.Logger
}

// WithNATSLogger sets the logger for subscription lifecycle events.
func WithNATSLogger(logger *slog.Logger) NATSOption {
	return func(c *natsConfig) {
		c.logger = logger
	}
}

// NewNATS subscribes to receiveSubject and delivers each message's data to
// onMessage; Send publishes to sendSubject. The connection is borrowed, not
// owned: Close drains the subscription but leaves conn open for the caller.
func NewNATS(conn *nats.Conn, sendSubject, receiveSubject string, onMessage MessageFunc, opts ...NATSOption) (*NATS, error) {
	cfg := natsConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if sendSubject == "" || receiveSubject == "" {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "NATS", "NewNATS", "subject check")
	}
	if onMessage == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "NATS", "NewNATS", "onMessage check")
	}
	if conn == nil {
		return nil, errors.WrapInvalid(errors.ErrNoConnection, "NATS", "NewNATS", "connection check")
	}

	t := &NATS{
		id:      uuid.NewString(),
		conn:    conn,
		subject: sendSubject,
		logger:  cfg.logger,
	}

	// A single subscription callback preserves per-subject ordering, which
	// is all the binding core requires.
	sub, err := conn.Subscribe(receiveSubject, func(msg *nats.Msg) {
		onMessage(msg.Data)
	})
	if err != nil {
		return nil, errors.WrapTransient(err, "NATS", "NewNATS", "subscribe")
	}
	t.sub = sub

	t.logger.Debug("nats transport ready",
		slog.String("conn_id", t.id),
		slog.String("send_subject", sendSubject),
		slog.String("receive_subject", receiveSubject))
	return t, nil
}

// Send publishes one message to the send subject.
func (t *NATS) Send(ctx context.Context, raw []byte) error {
	select {
	case <-ctx.Done():
		return errors.WrapTransient(ctx.Err(), "NATS", "Send", "context check")
	default:
	}

	if !t.conn.IsConnected() {
		return errors.WrapTransient(errors.ErrNoConnection, "NATS", "Send", "connection check")
	}
	if err := t.conn.Publish(t.subject, raw); err != nil {
		return errors.WrapTransient(err, "NATS", "Send", "publish")
	}
	return nil
}

// Close unsubscribes from the receive subject. The underlying connection is
// left open. Safe to call more than once.
func (t *NATS) Close() error {
	var err error
	t.closeOnce.Do(func() {
		if t.sub != nil {
			err = t.sub.Unsubscribe()
		}
		t.logger.Debug("nats transport closed", slog.String("conn_id", t.id))
	})
	return err
}

// ID returns the transport's diagnostic identifier.
func (t *NATS) ID() string {
	return t.id
}
