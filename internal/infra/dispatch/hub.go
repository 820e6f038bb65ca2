// Package dispatch implements the live event fan-out hub over websockets.
package dispatch

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/service"

	"github.com/gorilla/websocket"
)

const (
	defaultPingInterval   = 30 * time.Second
	defaultPongMultiplier = 3
	defaultSendBuffer     = 32

	writeTimeout = 10 * time.Second

	// Channel every deliverer is auto-subscribed to on authentication.
	announcementsChannel = "announcements"
)

// Client message types.
const (
	clientMessageAuth        = "AUTH"
	clientMessageSubscribe   = "SUBSCRIBE"
	clientMessageUnsubscribe = "UNSUBSCRIBE"
	clientMessagePing        = "PING"
)

// Server reply types for the auth handshake.
const (
	serverMessageAuthSuccess = "AUTH_SUCCESS"
	serverMessageAuthError   = "AUTH_ERROR"
)

// clientMessage is the envelope read from a websocket client.
type clientMessage struct {
	Type    string `json:"type"`
	UserID  string `json:"userId,omitempty"`
	Token   string `json:"token,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// serverMessage is the envelope written to a websocket client.
type serverMessage struct {
	Type    string          `json:"type"`
	Channel string          `json:"channel,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Hub fans outbox payloads out to live websocket connections grouped by
// channel. Delivery is at-most-once; a slow consumer's full buffer drops the
// message rather than blocking the broadcaster.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*connection]struct{}

	tokenService service.TokenService
	upgrader     websocket.Upgrader
	logger       *slog.Logger

	pingInterval   time.Duration
	pongMultiplier int
	sendBuffer     int
}

// NewHub creates a new dispatch hub instance
func NewHub(cfg *config.Config, tokenService service.TokenService, logger *slog.Logger) *Hub {
	pingInterval := defaultPingInterval
	pongMultiplier := defaultPongMultiplier
	sendBuffer := defaultSendBuffer
	if cfg.Dispatch != nil {
		if cfg.Dispatch.PingInterval > 0 {
			pingInterval = cfg.Dispatch.PingInterval
		}
		if cfg.Dispatch.PongMultiplier > 0 {
			pongMultiplier = cfg.Dispatch.PongMultiplier
		}
		if cfg.Dispatch.SendBuffer > 0 {
			sendBuffer = cfg.Dispatch.SendBuffer
		}
	}

	return &Hub{
		channels:     make(map[string]map[*connection]struct{}),
		tokenService: tokenService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from app origins unknown in advance.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:         logger,
		pingInterval:   pingInterval,
		pongMultiplier: pongMultiplier,
		sendBuffer:     sendBuffer,
	}
}

// connection is one live websocket client.
type connection struct {
	ws   *websocket.Conn
	send chan serverMessage
	done chan struct{}

	mu            sync.Mutex
	authenticated bool
	userID        string
	roles         []string
	subscriptions map[string]struct{}
}

// Broadcast sends a typed payload to every connection subscribed to the channel.
func (h *Hub) Broadcast(channel, messageType string, payload json.RawMessage) {
	message := serverMessage{
		Type:    messageType,
		Channel: channel,
		Payload: payload,
	}

	h.mu.RLock()
	conns := make([]*connection, 0, len(h.channels[channel]))
	for conn := range h.channels[channel] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		select {
		case conn.send <- message:
		default:
			// Slow consumer, drop instead of blocking the drainer.
			h.logger.Warn("dispatch buffer full, dropping message",
				slog.String("channel", channel),
				slog.String("type", messageType))
		}
	}
}

// SubscriberCount reports how many connections are subscribed to the channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.channels[channel])
}

// HandleConnection upgrades an HTTP request to a websocket and serves its
// read and write pumps until the client disconnects or goes silent.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))

		return
	}

	conn := &connection{
		ws:            ws,
		send:          make(chan serverMessage, h.sendBuffer),
		done:          make(chan struct{}),
		subscriptions: make(map[string]struct{}),
	}

	go h.writePump(conn)
	h.readPump(conn)
}

func (h *Hub) readPump(conn *connection) {
	defer h.drop(conn)

	readDeadline := h.pingInterval * time.Duration(h.pongMultiplier)
	_ = conn.ws.SetReadDeadline(time.Now().Add(readDeadline))
	conn.ws.SetPongHandler(func(string) error {
		return conn.ws.SetReadDeadline(time.Now().Add(readDeadline))
	})

	for {
		var message clientMessage
		if err := conn.ws.ReadJSON(&message); err != nil {
			return
		}

		// Any inbound traffic proves liveness.
		_ = conn.ws.SetReadDeadline(time.Now().Add(readDeadline))

		switch message.Type {
		case clientMessageAuth:
			h.handleAuth(conn, message.UserID, message.Token)
		case clientMessageSubscribe:
			h.handleSubscribe(conn, message.Channel)
		case clientMessageUnsubscribe:
			h.unsubscribe(conn, message.Channel)
		case clientMessagePing:
			conn.trySend(serverMessage{Type: "PONG"})
		default:
			conn.trySend(serverMessage{Type: "ERROR", Error: "unknown message type"})
		}
	}
}

func (h *Hub) writePump(conn *connection) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		conn.ws.Close()
	}()

	for {
		select {
		case <-conn.done:
			return
		case message := <-conn.send:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.ws.WriteJSON(message); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) handleAuth(conn *connection, userID, token string) {
	claims, err := h.tokenService.ValidateToken(token)
	if err != nil {
		conn.trySend(serverMessage{Type: serverMessageAuthError, Error: "invalid token"})

		return
	}

	// A declared userId must belong to the presented token.
	if userID != "" && userID != claims.UserID.String() {
		conn.trySend(serverMessage{Type: serverMessageAuthError, Error: "token does not match user"})

		return
	}

	conn.mu.Lock()
	conn.authenticated = true
	conn.userID = claims.UserID.String()
	conn.roles = claims.Roles
	conn.mu.Unlock()

	conn.trySend(serverMessage{Type: serverMessageAuthSuccess})

	// Deliverers see new announcements without an explicit subscribe.
	for _, role := range claims.Roles {
		if role == entity.RoleDeliverer {
			h.subscribe(conn, announcementsChannel)

			break
		}
	}
}

func (h *Hub) handleSubscribe(conn *connection, channel string) {
	conn.mu.Lock()
	authenticated := conn.authenticated
	conn.mu.Unlock()

	if !authenticated {
		conn.trySend(serverMessage{Type: "ERROR", Error: "authentication required"})

		return
	}
	if channel == "" {
		conn.trySend(serverMessage{Type: "ERROR", Error: "channel required"})

		return
	}

	h.subscribe(conn, channel)
	conn.trySend(serverMessage{Type: "SUBSCRIBED", Channel: channel})
}

func (h *Hub) subscribe(conn *connection, channel string) {
	h.mu.Lock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*connection]struct{})
	}
	h.channels[channel][conn] = struct{}{}
	h.mu.Unlock()

	conn.mu.Lock()
	conn.subscriptions[channel] = struct{}{}
	conn.mu.Unlock()
}

func (h *Hub) unsubscribe(conn *connection, channel string) {
	h.mu.Lock()
	if conns, ok := h.channels[channel]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.channels, channel)
		}
	}
	h.mu.Unlock()

	conn.mu.Lock()
	delete(conn.subscriptions, channel)
	conn.mu.Unlock()
}

// drop removes a connection from every channel and stops its write pump.
// The send channel stays open so a broadcaster holding a stale snapshot can
// never hit a closed channel.
func (h *Hub) drop(conn *connection) {
	conn.mu.Lock()
	channels := make([]string, 0, len(conn.subscriptions))
	for channel := range conn.subscriptions {
		channels = append(channels, channel)
	}
	conn.mu.Unlock()

	for _, channel := range channels {
		h.unsubscribe(conn, channel)
	}

	close(conn.done)
	conn.ws.Close()
}

// trySend queues a message without blocking; a full buffer drops it.
func (c *connection) trySend(message serverMessage) {
	select {
	case c.send <- message:
	default:
	}
}
