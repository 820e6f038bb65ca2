package notification

import (
	"context"
	"fmt"

	"ecodeli/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits a multicast request to 500 recipients.
const maxBatchRecipients = 500

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance.
// Notifications address users through per-user topics, so no device token
// registry is needed on this side.
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendToUser sends a push notification to a user's topic.
func (s *firebaseService) SendToUser(ctx context.Context, userID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: userTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatch sends the same notification to multiple users' topics.
func (s *firebaseService) SendBatch(ctx context.Context, userIDs []string, title, body string, data map[string]string) (successCount, failureCount int, err error) {
	if len(userIDs) == 0 {
		return 0, 0, nil
	}

	if len(userIDs) > maxBatchRecipients {
		return 0, 0, fmt.Errorf("recipient count exceeds limit: %d (max %d)", len(userIDs), maxBatchRecipients)
	}

	// Topic sends have no multicast API, so fan out one send per user and
	// count outcomes.
	for _, userID := range userIDs {
		if sendErr := s.SendToUser(ctx, userID, title, body, data); sendErr != nil {
			failureCount++

			continue
		}
		successCount++
	}

	return successCount, failureCount, nil
}

func userTopic(userID string) string {
	return "user-" + userID
}
