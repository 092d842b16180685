package db

import (
	"context"

	"github.com/uptrace/bun"

	"eventboard/internal/models"
)

type DB struct {
	Bun *bun.DB
}

// ListEvents returns one page of events in insertion order (id order, which
// is what the listing has always shown).
func (d *DB) ListEvents(ctx context.Context, limit, offset int) ([]models.Event, error) {
	events := []models.Event{}
	err := d.Bun.NewSelect().
		Model(&events).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) CountEvents(ctx context.Context) (int, error) {
	return d.Bun.NewSelect().Model((*models.Event)(nil)).Count(ctx)
}

func (d *DB) CreateEvent(ctx context.Context, event *models.Event) error {
	_, err := d.Bun.NewInsert().Model(event).Exec(ctx)
	return err
}

func (d *DB) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (d *DB) UpdateEvent(ctx context.Context, event models.Event) error {
	_, err := d.Bun.NewUpdate().
		Model(&event).
		Column("name", "date", "location").
		Where("id = ?", event.ID).
		Exec(ctx)
	return err
}

// DeleteEvent removes the event and reports how many rows went away, so the
// handler can distinguish "not found" from success.
func (d *DB) DeleteEvent(ctx context.Context, id int64) (int64, error) {
	res, err := d.Bun.NewDelete().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
