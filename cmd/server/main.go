// @title           Membership HTTP Service API
// @version         1.0
// @description     Membership management service with referral tracking and an admin dashboard
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"membership-http-service/internal/app/routes"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"membership-http-service/internal/infrastructure/database"
	"membership-http-service/pkg/logger"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; missing files are fine when the environment is
	// configured another way
	if err := godotenv.Load(); err != nil {
		logger.Warning("could not load .env file: %v", err)
	} else {
		logger.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database pool: %v", err)
	}
	db := pool.GetDB()

	if err := autoMigrate(db); err != nil {
		log.Fatalf("auto migration failed: %v", err)
	}

	// Make sure an administrator account exists
	ensureAdminExists(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	port := cfg.ServerPort
	logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logger.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate creates or updates the schema for all models
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.User{},
	)
}

// ensureAdminExists seeds a staff account when none exists yet
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Where("is_staff = ?", true).Count(&count).Error; err != nil {
		logger.Error("failed to check for admin account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := &models.User{
		Username:   cfg.DefaultAdminUsername,
		Email:      cfg.DefaultAdminEmail,
		Password:   cfg.DefaultAdminPassword,
		IsActive:   true,
		IsStaff:    true,
		DateJoined: time.Now(),
	}
	if err := db.Create(admin).Error; err != nil {
		logger.Error("failed to seed admin account: %v", err)
		return
	}
	logger.Info("seeded default admin account %q", admin.Username)
}
