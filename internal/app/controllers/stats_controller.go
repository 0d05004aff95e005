package controllers

import (
	"github.com/gin-gonic/gin"

	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
)

// InterfaceStatsController defines the stats controller interface
type InterfaceStatsController interface {
	GetAdminStats()
}

// StatsController handles admin dashboard requests
type StatsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewStatsController creates a new stats controller
func NewStatsController(ctx *gin.Context, container *container.ServiceContainer) *StatsController {
	return &StatsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleStatsFunc returns a Gin handler dispatching to the stats controller
func HandleStatsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewStatsController(ctx, container)

		switch method {
		case "getAdminStats":
			controller.GetAdminStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// GetAdminStats returns the admin dashboard figures
// @Summary      Admin statistics
// @Description  Member counts, referral totals, top performers, stage distribution and recent registrations
// @Tags         Stats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /admin-stats [get]
func (c *StatsController) GetAdminStats() {
	statsService := c.Container.GetService("stats").(services.InterfaceStatsService)
	stats, err := statsService.GetAdminStats()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrStatsQuery, "failed to compute statistics: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, stats)
}
