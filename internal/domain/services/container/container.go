package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/infrastructure/config"
)

// ServiceContainer wires all services together
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Base services
	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	// Business services
	memberService services.InterfaceMemberService
	userService   services.InterfaceUserService
	statsService  services.InterfaceStatsService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("config is nil")
	}

	// Probe the Redis connection; the service runs without caching when
	// Redis is unreachable
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis ping failed: %v, continuing without cache", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Base services
	c.jwtService = services.NewJWTService(c.config)
	if c.redis != nil {
		// Reuse the probed connection rather than dialing a second one
		c.redisService = services.NewRedisService(c.redis)
	}

	// Business services
	c.memberService = services.NewMemberService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.statsService = services.NewStatsService(c.db, c.config, c.redisService)
}

// GetService returns the named service
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "member":
		return c.memberService
	case "user":
		return c.userService
	case "stats":
		return c.statsService
	default:
		return nil
	}
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
