package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/service"
	mockservice "ecodeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(hub.HandleConnection))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestClient_ReceivesBroadcastAfterSubscribe(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Roles: []string{entity.RoleClient}}, nil)

	hub := newAuthTestHub(tokenSvc)
	wsURL := newHubServer(t, hub)

	events := make(chan serverMessage, 8)
	client := NewClient(ClientConfig{
		URL:               wsURL,
		UserID:            userID.String(),
		Token:             "valid-token",
		ReconnectAttempts: 3,
		ReconnectInterval: 20 * time.Millisecond,
		PingPeriod:        50 * time.Millisecond,
		OnEvent: func(messageType, channel string, payload json.RawMessage) {
			events <- serverMessage{Type: messageType, Channel: channel, Payload: payload}
		},
		Logger: newTestLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runDone := make(chan error, 1)
	go func() { runDone <- client.Run(ctx) }()

	require.Eventually(t, func() bool {
		return client.State() == ClientStateConnected
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, client.Subscribe("delivery.abc"))
	require.Eventually(t, func() bool {
		return hub.SubscriberCount("delivery.abc") == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast("delivery.abc", "DELIVERY_UPDATE", json.RawMessage(`{"status":"PICKUP","progress":40}`))

	select {
	case message := <-events:
		assert.Equal(t, "DELIVERY_UPDATE", message.Type)
		assert.Equal(t, "delivery.abc", message.Channel)
		assert.JSONEq(t, `{"status":"PICKUP","progress":40}`, string(message.Payload))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
	}

	cancel()
	select {
	case err := <-runDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for Run to return")
	}
}

func TestClient_GivesUpAfterRetryBudget(t *testing.T) {
	var dialAttempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dialAttempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	var states []ClientState
	client := NewClient(ClientConfig{
		URL:               "ws" + strings.TrimPrefix(server.URL, "http"),
		Token:             "irrelevant",
		ReconnectAttempts: 3,
		ReconnectInterval: 10 * time.Millisecond,
		OnStateChange: func(state ClientState) {
			states = append(states, state)
		},
		Logger: newTestLogger(),
	})

	err := client.Run(context.Background())

	require.ErrorIs(t, err, ErrDisconnected)
	assert.Equal(t, ClientStateDisconnected, client.State())
	assert.Equal(t, int32(3), dialAttempts.Load())
	assert.Equal(t, []ClientState{ClientStateConnecting, ClientStateDisconnected}, states)
}

func TestClient_AuthRejectionExhaustsRetries(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("expired").
		Return(nil, domainerrors.ErrTokenInvalid)

	hub := newAuthTestHub(tokenSvc)
	wsURL := newHubServer(t, hub)

	client := NewClient(ClientConfig{
		URL:               wsURL,
		UserID:            uuid.NewString(),
		Token:             "expired",
		ReconnectAttempts: 2,
		ReconnectInterval: 10 * time.Millisecond,
		Logger:            newTestLogger(),
	})

	err := client.Run(context.Background())

	require.ErrorIs(t, err, ErrDisconnected)
	assert.Equal(t, ClientStateDisconnected, client.State())
}

func TestClient_DefaultsMatchReferenceBehavior(t *testing.T) {
	client := NewClient(ClientConfig{URL: "ws://localhost"})

	assert.Equal(t, 5, client.cfg.ReconnectAttempts)
	assert.Equal(t, 5*time.Second, client.cfg.ReconnectInterval)
	assert.Equal(t, 30*time.Second, client.cfg.PingPeriod)
	assert.Equal(t, ClientStateDisconnected, client.State())
}
