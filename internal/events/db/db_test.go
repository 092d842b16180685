package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"eventboard/internal/events/db"
	"eventboard/internal/models"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.Event)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create events table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func seedEvents(t *testing.T, bunDB *bun.DB, n int) {
	for i := 1; i <= n; i++ {
		event := models.Event{
			Name:     fmt.Sprintf("Event %d", i),
			Date:     "2025-06-01",
			Location: "Warsaw",
		}
		_, err := bunDB.NewInsert().Model(&event).Exec(context.Background())
		require.NoError(t, err)
	}
}

func TestListEventsPagination(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	seedEvents(t, bunDB, 15)

	// First page of 10
	page, err := eventDB.ListEvents(context.Background(), 10, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, "Event 1", page[0].Name)

	// Second page holds the remaining 5
	page, err = eventDB.ListEvents(context.Background(), 10, 10)
	assert.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Equal(t, "Event 11", page[0].Name)

	// Beyond the data: empty, not an error
	page, err = eventDB.ListEvents(context.Background(), 10, 20)
	assert.NoError(t, err)
	assert.Empty(t, page)
}

func TestListEventsInsertionOrder(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	seedEvents(t, bunDB, 3)

	page, err := eventDB.ListEvents(context.Background(), 10, 0)
	assert.NoError(t, err)
	require.Len(t, page, 3)
	for i, event := range page {
		assert.Equal(t, fmt.Sprintf("Event %d", i+1), event.Name)
	}
}

func TestCountEvents(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	count, err := eventDB.CountEvents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	seedEvents(t, bunDB, 7)

	count, err = eventDB.CountEvents(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestCreateAndGetEvent(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := models.Event{Name: "Concert", Date: "2025-07-12", Location: "New York"}
	err := eventDB.CreateEvent(context.Background(), &event)
	assert.NoError(t, err)
	assert.NotZero(t, event.ID)

	got, err := eventDB.GetEventByID(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Concert", got.Name)
	assert.Equal(t, "New York", got.Location)

	_, err = eventDB.GetEventByID(context.Background(), 9999)
	assert.Error(t, err)
}

func TestUpdateEventOverwritesUnconditionally(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := models.Event{Name: "Concert", Date: "2025-07-12", Location: "New York"}
	require.NoError(t, eventDB.CreateEvent(context.Background(), &event))

	// Empty fields overwrite too; the edit flow never re-validates.
	updated := models.Event{ID: event.ID, Name: "", Date: "whenever", Location: "New York123"}
	err := eventDB.UpdateEvent(context.Background(), updated)
	assert.NoError(t, err)

	got, err := eventDB.GetEventByID(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, "whenever", got.Date)
	assert.Equal(t, "New York123", got.Location)
}

func TestDeleteEventRowsAffected(t *testing.T) {
	eventDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := models.Event{Name: "Concert", Date: "2025-07-12", Location: "New York"}
	require.NoError(t, eventDB.CreateEvent(context.Background(), &event))

	affected, err := eventDB.DeleteEvent(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// Deleting again: zero rows, no error
	affected, err = eventDB.DeleteEvent(context.Background(), event.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
