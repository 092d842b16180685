package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Participant links a user to an event they signed up for. The
// (event_id, user_id) pair is unique at the store level; no cascade deletes
// exist, so deleting a user or event leaves participant rows behind.
type Participant struct {
	bun.BaseModel `bun:"table:participants,alias:participant"`

	ID                int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID           int64     `bun:"event_id,notnull,unique:event_user" json:"eventId"`
	UserID            int64     `bun:"user_id,notnull,unique:event_user" json:"userId"`
	ParticipationDate time.Time `bun:"participation_date,notnull" json:"participationDate"`
}

// ParticipantInfo is one row of the public event-info listing: the
// participant's display name joined from users.
type ParticipantInfo struct {
	UserName          string    `json:"userName"`
	ParticipationDate time.Time `json:"participationDate"`
}
