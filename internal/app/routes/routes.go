package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "membership-http-service/docs"
	"membership-http-service/internal/app/controllers"
	"membership-http-service/internal/app/middleware"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/infrastructure/config"
)

// SetupRouter initializes and returns the configured router
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// Attach a request id to every request
	r.Use(middleware.RequestID())

	// Create the service container
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// Initialize auth middleware
	middleware.InitAuthMiddleware(cfg, db)
	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes configures all API routes
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes registers routes open to unauthenticated callers
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// IP rate limiting on the public surface only; authenticated routes
	// carry their own, more generous limiter
	public := api.Group("/")
	public.Use(middleware.IPRateLimiter(10, 20))

	// Health routes
	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// Registration and token routes
	public.POST("/register", controllers.HandleAuthFunc(container, "register"))
	public.POST("/token", controllers.HandleAuthFunc(container, "token"))
	public.POST("/token/refresh", controllers.HandleAuthFunc(container, "tokenRefresh"))
}

// registerAuthenticatedRoutes registers routes behind authentication
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// Any authenticated account
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	auth.GET("/detail", controllers.HandleAuthFunc(container, "detail"))

	// Member routes, keyed by code_id
	auth.GET("/members", middleware.Cache(middleware.CacheConfig{Expiration: 30 * time.Second}), controllers.HandleMemberFunc(container, "getMembers"))
	auth.POST("/members", controllers.HandleMemberFunc(container, "createMember"))

	memberGroup := auth.Group("/member")
	{
		memberGroup.GET("/:code_id", controllers.HandleMemberFunc(container, "getMember"))
		memberGroup.PUT("/:code_id", controllers.HandleMemberFunc(container, "updateMember"))
		memberGroup.PATCH("/:code_id", controllers.HandleMemberFunc(container, "updateMember"))
		memberGroup.DELETE("/:code_id", controllers.HandleMemberFunc(container, "deleteMember"))
	}

	// Admin-only routes; the role check rejects non-admin callers before
	// any stats query runs
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())
	admin.GET("/admin-stats", controllers.HandleStatsFunc(container, "getAdminStats"))
}
