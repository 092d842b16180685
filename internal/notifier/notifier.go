package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"eventboard/internal/config"
	"eventboard/internal/logger"
	"eventboard/internal/models"
)

// Notifier publishes registration and sign-up notifications to their topics.
type Notifier struct {
	Publisher Publisher
	Topics    config.TopicConfig
	Logger    *logger.Logger
}

func New(publisher Publisher, topics config.TopicConfig, log *logger.Logger) *Notifier {
	return &Notifier{Publisher: publisher, Topics: topics, Logger: log}
}

// UserRegistered announces a new account. Errors are logged, not returned:
// the registration has already been persisted.
func (n *Notifier) UserRegistered(ctx context.Context, user models.User) {
	payload, err := json.Marshal(map[string]interface{}{
		"userId": user.ID,
		"email":  user.Email,
	})
	if err != nil {
		n.Logger.Error("KAFKA", fmt.Sprintf("Failed to marshal registration event: %v", err))
		return
	}

	key := strconv.FormatInt(user.ID, 10)
	if err := n.Publisher.Publish(ctx, n.Topics.UserRegistered, key, payload); err != nil {
		n.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish registration event: %v", err))
	}
}

// EventSignup announces a new participant on an event.
func (n *Notifier) EventSignup(ctx context.Context, participant models.Participant) {
	payload, err := json.Marshal(map[string]interface{}{
		"eventId":           participant.EventID,
		"userId":            participant.UserID,
		"participationDate": participant.ParticipationDate,
	})
	if err != nil {
		n.Logger.Error("KAFKA", fmt.Sprintf("Failed to marshal sign-up event: %v", err))
		return
	}

	key := strconv.FormatInt(participant.EventID, 10)
	if err := n.Publisher.Publish(ctx, n.Topics.EventSignup, key, payload); err != nil {
		n.Logger.Error("KAFKA", fmt.Sprintf("Failed to publish sign-up event: %v", err))
	}
}
