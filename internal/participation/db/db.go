package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// HasParticipant reports whether the (event, user) pair already exists.
func (d *DB) HasParticipant(ctx context.Context, eventID, userID int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Participant)(nil)).
		Where("event_id = ?", eventID).
		Where("user_id = ?", userID).
		Exists(ctx)
}

func (d *DB) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	_, err := d.Bun.NewInsert().Model(participant).Exec(ctx)
	return err
}

// ListByEvent joins participants to users and returns the public view:
// display name plus sign-up time. Unknown events yield an empty list.
func (d *DB) ListByEvent(ctx context.Context, eventID int64) ([]models.ParticipantInfo, error) {
	infos := []models.ParticipantInfo{}
	err := d.Bun.NewSelect().
		Model((*models.Participant)(nil)).
		ColumnExpr("u.name AS user_name").
		ColumnExpr("participant.participation_date AS participation_date").
		Join("JOIN users AS u ON participant.user_id = u.id").
		Where("participant.event_id = ?", eventID).
		Scan(ctx, &infos)
	if err != nil {
		return nil, err
	}
	return infos, nil
}
