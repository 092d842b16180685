package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"eventboard/internal/database"
	"eventboard/internal/models"
	"eventboard/internal/users/db"
)

func setupTestDB(t *testing.T) (*db.DB, *bun.DB) {
	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = bunDB.NewCreateTable().Model((*models.User)(nil)).Exec(context.Background())
	if err != nil {
		t.Fatalf("Failed to create users table: %v", err)
	}

	return &db.DB{Bun: bunDB}, bunDB
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	userDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	first := models.User{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Age: 36, Role: "user"}
	require.NoError(t, userDB.CreateUser(context.Background(), &first))
	assert.NotZero(t, first.ID)

	// Same email, different everything else: the store rejects it
	second := models.User{Name: "Adb", Surname: "Other", Email: "ada@example.com", Age: 40, Role: "user"}
	err := userDB.CreateUser(context.Background(), &second)
	assert.Error(t, err)
	assert.True(t, database.IsUniqueViolation(err))

	// The store retains only the first registration
	list, err := userDB.ListUsers(context.Background())
	assert.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada", list[0].Name)
}

func TestGetByNameAndEmailExactMatchOnly(t *testing.T) {
	userDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	user := models.User{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Age: 36, Role: "user"}
	require.NoError(t, userDB.CreateUser(context.Background(), &user))

	got, err := userDB.GetByNameAndEmail(context.Background(), "Ada", "ada@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Both fields must match
	_, err = userDB.GetByNameAndEmail(context.Background(), "Ada", "other@example.com")
	assert.True(t, errors.Is(err, sql.ErrNoRows))

	// Case differences do not match
	_, err = userDB.GetByNameAndEmail(context.Background(), "ada", "ada@example.com")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestDeleteUserNoExistenceCheck(t *testing.T) {
	userDB, bunDB := setupTestDB(t)
	defer bunDB.Close()

	user := models.User{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Age: 36, Role: "user"}
	require.NoError(t, userDB.CreateUser(context.Background(), &user))

	assert.NoError(t, userDB.DeleteUser(context.Background(), user.ID))

	// Deleting an id that is gone is not an error; the admin flow never
	// distinguished the outcomes.
	assert.NoError(t, userDB.DeleteUser(context.Background(), user.ID))
}
