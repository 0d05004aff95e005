package container

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/infrastructure/config"
)

func newContainerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestContainerRunsWithoutRedis(t *testing.T) {
	db := newContainerTestDB(t)
	cfg := &config.Config{JWTSecretKey: "test-secret-key"}

	c := NewServiceContainer(db, cfg, nil)

	var redisSvc *services.RedisService
	redisSvc, _ = c.GetService("redis").(*services.RedisService)
	assert.Nil(t, redisSvc)

	assert.NotNil(t, c.GetService("member"))
	assert.NotNil(t, c.GetService("user"))
	assert.NotNil(t, c.GetService("stats"))
	assert.NotNil(t, c.GetService("jwt"))
}

func TestContainerDropsUnreachableRedis(t *testing.T) {
	db := newContainerTestDB(t)
	cfg := &config.Config{JWTSecretKey: "test-secret-key"}

	// Nothing listens on port 1; the probe fails and caching is disabled
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	c := NewServiceContainer(db, cfg, client)

	redisSvc, _ := c.GetService("redis").(*services.RedisService)
	assert.Nil(t, redisSvc)
	assert.NotNil(t, c.GetService("stats"))
}
