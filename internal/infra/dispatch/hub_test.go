package dispatch

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/service"
	mockservice "ecodeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHub() *Hub {
	cfg := &config.Config{
		Dispatch: &config.DispatchConfig{
			SendBuffer: 8,
		},
	}

	return NewHub(cfg, nil, newTestLogger())
}

func newAuthTestHub(tokenSvc service.TokenService) *Hub {
	return NewHub(&config.Config{}, tokenSvc, newTestLogger())
}

func newTestConnection(buffer int) *connection {
	return &connection{
		send:          make(chan serverMessage, buffer),
		done:          make(chan struct{}),
		subscriptions: make(map[string]struct{}),
	}
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	hub := newTestHub()

	first := newTestConnection(8)
	second := newTestConnection(8)
	other := newTestConnection(8)

	hub.subscribe(first, "delivery.abc")
	hub.subscribe(second, "delivery.abc")
	hub.subscribe(other, "announcements")

	hub.Broadcast("delivery.abc", "DELIVERY_UPDATE", json.RawMessage(`{"status":"ACCEPTED"}`))

	assert.Equal(t, 2, hub.SubscriberCount("delivery.abc"))
	assert.Equal(t, 1, hub.SubscriberCount("announcements"))

	for _, conn := range []*connection{first, second} {
		message := <-conn.send
		assert.Equal(t, "DELIVERY_UPDATE", message.Type)
		assert.Equal(t, "delivery.abc", message.Channel)
		assert.JSONEq(t, `{"status":"ACCEPTED"}`, string(message.Payload))
	}

	select {
	case message := <-other.send:
		t.Fatalf("unexpected message on announcements subscriber: %+v", message)
	default:
	}
}

func TestHub_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	hub := newTestHub()

	conn := newTestConnection(1)
	hub.subscribe(conn, "delivery.abc")

	// Second broadcast must not block even though the buffer is full.
	hub.Broadcast("delivery.abc", "DELIVERY_UPDATE", json.RawMessage(`{"n":1}`))
	hub.Broadcast("delivery.abc", "DELIVERY_UPDATE", json.RawMessage(`{"n":2}`))

	message := <-conn.send
	assert.JSONEq(t, `{"n":1}`, string(message.Payload))

	select {
	case extra := <-conn.send:
		t.Fatalf("expected second message to be dropped, got %+v", extra)
	default:
	}
}

func TestHub_UnsubscribeRemovesConnection(t *testing.T) {
	hub := newTestHub()

	conn := newTestConnection(8)
	hub.subscribe(conn, "announcements")
	require.Equal(t, 1, hub.SubscriberCount("announcements"))

	hub.unsubscribe(conn, "announcements")

	assert.Equal(t, 0, hub.SubscriberCount("announcements"))

	hub.Broadcast("announcements", "ANNOUNCEMENT_UPDATE", json.RawMessage(`{}`))

	select {
	case message := <-conn.send:
		t.Fatalf("unexpected message after unsubscribe: %+v", message)
	default:
	}
}

func TestHub_HandleAuth_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Roles: []string{entity.RoleDeliverer}}, nil)

	hub := newAuthTestHub(tokenSvc)
	conn := newTestConnection(8)

	hub.handleAuth(conn, userID.String(), "valid-token")

	message := <-conn.send
	assert.Equal(t, "AUTH_SUCCESS", message.Type)

	conn.mu.Lock()
	assert.True(t, conn.authenticated)
	assert.Equal(t, userID.String(), conn.userID)
	conn.mu.Unlock()

	// Deliverers are auto-subscribed to the announcements channel.
	assert.Equal(t, 1, hub.SubscriberCount(announcementsChannel))
}

func TestHub_HandleAuth_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("expired").
		Return(nil, domainerrors.ErrTokenInvalid)

	hub := newAuthTestHub(tokenSvc)
	conn := newTestConnection(8)

	hub.handleAuth(conn, "", "expired")

	message := <-conn.send
	assert.Equal(t, "AUTH_ERROR", message.Type)
	assert.Equal(t, "invalid token", message.Error)

	conn.mu.Lock()
	assert.False(t, conn.authenticated)
	conn.mu.Unlock()
}

func TestHub_HandleAuth_MismatchedUserRejected(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{entity.RoleClient}}, nil)

	hub := newAuthTestHub(tokenSvc)
	conn := newTestConnection(8)

	hub.handleAuth(conn, uuid.NewString(), "valid-token")

	message := <-conn.send
	assert.Equal(t, "AUTH_ERROR", message.Type)

	conn.mu.Lock()
	assert.False(t, conn.authenticated)
	conn.mu.Unlock()
}

func TestHub_ConcurrentSubscribeAndBroadcast(t *testing.T) {
	hub := newTestHub()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)

		conn := newTestConnection(64)
		channel := fmt.Sprintf("delivery.%d", i%4)

		go func() {
			defer wg.Done()
			hub.subscribe(conn, channel)
			hub.unsubscribe(conn, channel)
		}()

		go func() {
			defer wg.Done()
			for range 32 {
				hub.Broadcast(channel, "DELIVERY_UPDATE", json.RawMessage(`{}`))
			}
		}()
	}

	wg.Wait()

	for i := range 4 {
		assert.Equal(t, 0, hub.SubscriberCount(fmt.Sprintf("delivery.%d", i)))
	}
}
