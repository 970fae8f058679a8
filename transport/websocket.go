package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/c360/streambind/errors"
)

// WebSocket adapts a gorilla/websocket client connection to the Transport
// contract. Messages are sent and received as text frames. A single read
// pump goroutine delivers inbound messages in arrival order.
type WebSocket struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	// gorilla permits one concurrent writer per connection.
	writeMu sync.Mutex

	closeOnce sync.Once
	done      chan struct{}
}

// WebSocketOption configures DialWebSocket.
type WebSocketOption func(*wsConfig)

type wsConfig struct {
	logger *slog.Logger
	header http.Header
	dialer *websocket.Dialer
}

// WithWebSocketLogger sets the logger for connection lifecycle events.
func WithWebSocketLogger(logger *slog.Logger) WebSocketOption {
	return func(c *wsConfig) {
		c.logger = logger
	}
}

// WithHeader sets the HTTP request header sent with the handshake, for
// cookies or authorization tokens.
func WithHeader(header http.Header) WebSocketOption {
	return func(c *wsConfig) {
		c.header = header
	}
}

// WithDialer replaces the default websocket dialer, for TLS configuration
// or proxies.
func WithDialer(dialer *websocket.Dialer) WebSocketOption {
	return func(c *wsConfig) {
		c.dialer = dialer
	}
}

// DialWebSocket connects to url and starts delivering inbound text messages
// to onMessage from a single goroutine. Delivery stops when the connection
// closes or errors; there is no automatic reconnect.
func DialWebSocket(ctx context.Context, url string, onMessage MessageFunc, opts ...WebSocketOption) (*WebSocket, error) {
	cfg := wsConfig{
		logger: slog.Default(),
		dialer: websocket.DefaultDialer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if onMessage == nil {
		return nil, errors.WrapInvalid(errors.ErrMissingConfig, "WebSocket", "DialWebSocket", "onMessage check")
	}

	conn, resp, err := cfg.dialer.DialContext(ctx, url, cfg.header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, errors.WrapTransient(err, "WebSocket", "DialWebSocket", "dial")
	}

	ws := &WebSocket{
		id:     uuid.NewString(),
		conn:   conn,
		logger: cfg.logger,
		done:   make(chan struct{}),
	}

	ws.logger.Debug("websocket connected", slog.String("conn_id", ws.id), slog.String("url", url))
	go ws.readPump(onMessage)
	return ws, nil
}

func (ws *WebSocket) readPump(onMessage MessageFunc) {
	defer close(ws.done)
	for {
		messageType, data, err := ws.conn.ReadMessage()
		if err != nil {
			ws.logger.Debug("websocket read loop ended",
				slog.String("conn_id", ws.id), slog.String("error", err.Error()))
			return
		}
		if messageType != websocket.TextMessage {
			// The binding protocol is text-only; binary frames are dropped.
			continue
		}
		onMessage(data)
	}
}

// Send transmits one text frame. It honors a context deadline via the
// connection's write deadline and fails with ErrConnectionLost once the
// read pump has observed the connection closing.
func (ws *WebSocket) Send(ctx context.Context, raw []byte) error {
	select {
	case <-ws.done:
		return errors.WrapTransient(errors.ErrConnectionLost, "WebSocket", "Send", "connection check")
	case <-ctx.Done():
		return errors.WrapTransient(ctx.Err(), "WebSocket", "Send", "context check")
	default:
	}

	ws.writeMu.Lock()
	defer ws.writeMu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		if err := ws.conn.SetWriteDeadline(deadline); err != nil {
			return errors.WrapTransient(err, "WebSocket", "Send", "set deadline")
		}
	}
	if err := ws.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		return errors.WrapTransient(err, "WebSocket", "Send", "write")
	}
	return nil
}

// Close sends a close frame and tears down the connection. Safe to call
// more than once.
func (ws *WebSocket) Close() error {
	var err error
	ws.closeOnce.Do(func() {
		ws.writeMu.Lock()
		// Best effort: the peer may already be gone.
		_ = ws.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		ws.writeMu.Unlock()

		err = ws.conn.Close()
		ws.logger.Debug("websocket closed", slog.String("conn_id", ws.id))
	})
	return err
}

// ID returns the connection's diagnostic identifier.
func (ws *WebSocket) ID() string {
	return ws.id
}
