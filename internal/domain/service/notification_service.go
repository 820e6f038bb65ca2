package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendToUser sends a fire-and-forget push notification to a user's topic.
	// Callers never block on delivery outcome beyond the provider call itself.
	SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error

	// SendBatch sends the same notification to multiple users.
	// Returns success count, failure count, and error
	SendBatch(ctx context.Context, userIDs []string, title, body string, data map[string]string) (successCount, failureCount int, err error)
}
