package dao

import (
	"Agora/config"
	"Agora/models"
	"Agora/pkg/database"
	"Agora/pkg/snowflake"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       snowflake.GenID(),
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
		Role:     models.RoleMember,
		IsActive: true,
	}
	require.NoError(t, NewUsers(db).Create(context.Background(), user))
	return user
}
