package dispatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	defaultReconnectAttempts = 5
	defaultReconnectInterval = 5 * time.Second
	defaultClientPingPeriod  = 30 * time.Second
)

// ClientState is the connection state a Client surfaces to its consumer.
type ClientState string

const (
	ClientStateConnecting   ClientState = "CONNECTING"
	ClientStateConnected    ClientState = "CONNECTED"
	ClientStateDisconnected ClientState = "DISCONNECTED"
)

// ErrDisconnected is returned by Run once the reconnect budget is spent.
var ErrDisconnected = errors.New("dispatch connection lost, retries exhausted")

// ClientConfig configures a reconnecting dispatch client.
type ClientConfig struct {
	URL    string
	UserID string
	Token  string

	// ReconnectAttempts caps consecutive failed connection cycles before the
	// client gives up. Zero means 5.
	ReconnectAttempts int
	// ReconnectInterval is the fixed wait between attempts. Zero means 5s.
	ReconnectInterval time.Duration
	// PingPeriod is the keep-alive cadence on an established session.
	// Zero means 30s.
	PingPeriod time.Duration

	// OnEvent receives every channel message pushed by the hub.
	OnEvent func(messageType, channel string, payload json.RawMessage)
	// OnStateChange observes connection state transitions.
	OnStateChange func(state ClientState)

	Logger *slog.Logger
}

// Client maintains a websocket session against the dispatch hub. A broken
// session is re-established at a fixed interval up to the attempt cap, after
// which the client settles in the disconnected state. Missed events are not
// replayed; consumers re-fetch current state after a reconnect.
type Client struct {
	cfg ClientConfig

	mu            sync.Mutex
	state         ClientState
	subscriptions map[string]struct{}
	conn          *websocket.Conn
}

// NewClient creates a reconnecting dispatch client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.ReconnectAttempts <= 0 {
		cfg.ReconnectAttempts = defaultReconnectAttempts
	}
	if cfg.ReconnectInterval <= 0 {
		cfg.ReconnectInterval = defaultReconnectInterval
	}
	if cfg.PingPeriod <= 0 {
		cfg.PingPeriod = defaultClientPingPeriod
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Client{
		cfg:           cfg,
		state:         ClientStateDisconnected,
		subscriptions: make(map[string]struct{}),
	}
}

// State reports the current connection state.
func (c *Client) State() ClientState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Subscribe registers interest in a channel. The subscription survives
// reconnects; it is replayed on every new session.
func (c *Client) Subscribe(channel string) error {
	c.mu.Lock()
	c.subscriptions[channel] = struct{}{}
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		return nil
	}

	return c.writeJSON(clientMessage{Type: clientMessageSubscribe, Channel: channel})
}

// Run connects and serves the session until the context is cancelled or the
// reconnect budget is spent. A session that reached the authenticated state
// resets the attempt counter.
func (c *Client) Run(ctx context.Context) error {
	attempts := 0

	for {
		c.setState(ClientStateConnecting)

		established, err := c.session(ctx)
		if ctx.Err() != nil {
			c.setState(ClientStateDisconnected)

			return ctx.Err()
		}
		if established {
			attempts = 0
		}

		attempts++
		if attempts >= c.cfg.ReconnectAttempts {
			c.cfg.Logger.Error("dispatch connection abandoned",
				slog.Int("attempts", attempts),
				slog.Any("error", err))
			c.setState(ClientStateDisconnected)

			return ErrDisconnected
		}

		c.cfg.Logger.Warn("dispatch connection lost, retrying",
			slog.Int("attempt", attempts),
			slog.Duration("retry_in", c.cfg.ReconnectInterval),
			slog.Any("error", err))

		select {
		case <-time.After(c.cfg.ReconnectInterval):
		case <-ctx.Done():
			c.setState(ClientStateDisconnected)

			return ctx.Err()
		}
	}
}

// session runs one dial-auth-read cycle. It reports whether the session
// reached the authenticated state before failing.
func (c *Client) session(ctx context.Context) (bool, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.cfg.URL, nil)
	if err != nil {
		return false, errors.Wrap(err, "dial dispatch hub")
	}
	defer conn.Close()

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
	}()

	// Unblock the read loop when the context is cancelled.
	sessionDone := make(chan struct{})
	defer close(sessionDone)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-sessionDone:
		}
	}()

	if err := c.writeJSON(clientMessage{Type: clientMessageAuth, UserID: c.cfg.UserID, Token: c.cfg.Token}); err != nil {
		return false, errors.Wrap(err, "send auth")
	}

	var reply serverMessage
	if err := conn.ReadJSON(&reply); err != nil {
		return false, errors.Wrap(err, "read auth reply")
	}
	switch reply.Type {
	case serverMessageAuthSuccess:
	case serverMessageAuthError:
		return false, errors.Errorf("authentication rejected: %s", reply.Error)
	default:
		return false, errors.Errorf("unexpected auth reply %q", reply.Type)
	}

	c.setState(ClientStateConnected)

	if err := c.resubscribe(); err != nil {
		return true, errors.Wrap(err, "resubscribe")
	}

	go c.keepAlive(sessionDone)

	for {
		var message serverMessage
		if err := conn.ReadJSON(&message); err != nil {
			return true, errors.Wrap(err, "read message")
		}

		if message.Type == "PONG" {
			continue
		}

		if c.cfg.OnEvent != nil {
			c.cfg.OnEvent(message.Type, message.Channel, message.Payload)
		}
	}
}

func (c *Client) resubscribe() error {
	c.mu.Lock()
	channels := make([]string, 0, len(c.subscriptions))
	for channel := range c.subscriptions {
		channels = append(channels, channel)
	}
	c.mu.Unlock()

	for _, channel := range channels {
		if err := c.writeJSON(clientMessage{Type: clientMessageSubscribe, Channel: channel}); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) keepAlive(done <-chan struct{}) {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := c.writeJSON(clientMessage{Type: clientMessagePing}); err != nil {
				return
			}
		}
	}
}

// writeJSON serializes writes; the keep-alive ticker, Subscribe and the
// session loop share one connection.
func (c *Client) writeJSON(message clientMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("not connected")
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

	return errors.Wrap(c.conn.WriteJSON(message), "write message")
}

func (c *Client) setState(state ClientState) {
	c.mu.Lock()
	changed := c.state != state
	c.state = state
	c.mu.Unlock()

	if changed && c.cfg.OnStateChange != nil {
		c.cfg.OnStateChange(state)
	}
}
