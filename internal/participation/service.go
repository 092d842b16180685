package participation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/database"
	"eventboard/internal/models"
	"eventboard/internal/notifier"
)

// ErrAlreadySignedUp is returned for a duplicate (event, user) sign-up,
// whether it was caught by the pre-insert check or by the store's
// pair-uniqueness constraint when two requests race.
var ErrAlreadySignedUp = errors.New("already signed up")

type ParticipationDBLayer interface {
	HasParticipant(ctx context.Context, eventID, userID int64) (bool, error)
	CreateParticipant(ctx context.Context, participant *models.Participant) error
	ListByEvent(ctx context.Context, eventID int64) ([]models.ParticipantInfo, error)
}

type Service struct {
	DB       ParticipationDBLayer
	Notifier *notifier.Notifier
}

func NewService(db ParticipationDBLayer, n *notifier.Notifier) *Service {
	return &Service{DB: db, Notifier: n}
}

// SignUp registers the user on the event. The pre-insert check keeps the
// common duplicate path on a friendly error; the unique constraint catches
// the concurrent case and maps to the same outcome.
func (s *Service) SignUp(ctx context.Context, eventID, userID int64) error {
	exists, err := s.DB.HasParticipant(ctx, eventID, userID)
	if err != nil {
		return fmt.Errorf("check participation: %w", err)
	}
	if exists {
		return ErrAlreadySignedUp
	}

	participant := models.Participant{
		EventID:           eventID,
		UserID:            userID,
		ParticipationDate: time.Now().UTC(),
	}
	if err := s.DB.CreateParticipant(ctx, &participant); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadySignedUp
		}
		return fmt.Errorf("create participant: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.EventSignup(ctx, participant)
	}
	return nil
}

// EventInfo lists who signed up for the event. An unknown event id is not an
// error, it is just an empty list.
func (s *Service) EventInfo(ctx context.Context, eventID int64) ([]models.ParticipantInfo, error) {
	infos, err := s.DB.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants for event %d: %w", eventID, err)
	}
	return infos, nil
}
