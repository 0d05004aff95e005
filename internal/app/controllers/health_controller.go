package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/response"
)

// HealthController handles liveness and status requests
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler dispatching to the health controller
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			controller.Ping()
		}
	}
}

// Ping is the liveness endpoint
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	c.Ctx.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Status reports database and cache connectivity
// @Summary      Service status
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "up"
	if db := c.Container.GetDB(); db != nil {
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
	} else {
		dbStatus = "down"
	}

	redisStatus := "disabled"
	if redisService, ok := c.Container.GetService("redis").(*services.RedisService); ok && redisService != nil {
		if err := redisService.Ping(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
