package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Member{}, &models.User{}))
	return db
}

// newTestConfig returns a config suitable for unit tests.
func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:    "test-secret-key",
		JWTAccessHours:  1,
		JWTRefreshHours: 24,
		StatsCacheTTL:   0,
	}
}
