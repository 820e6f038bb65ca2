package service

import "encoding/json"

// EventDispatcher fans messages out to live connections subscribed to a
// channel. Delivery is at-most-once and best-effort; undelivered messages
// are never replayed, clients re-fetch state from the stateful services.
type EventDispatcher interface {
	// Broadcast sends a typed payload to every connection subscribed to the channel.
	Broadcast(channel, messageType string, payload json.RawMessage)

	// SubscriberCount reports how many connections are subscribed to the channel.
	SubscriberCount(channel string) int
}
