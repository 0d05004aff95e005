package services

import (
	"time"

	"gorm.io/gorm"

	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/infrastructure/config"
	"membership-http-service/pkg/logger"
)

// statsCacheKey is the Redis key the dashboard payload is cached under.
const statsCacheKey = "admin_stats"

// StageCount is one row of the stage distribution.
type StageCount struct {
	Stage string `json:"stage"`
	Count int64  `json:"count"`
}

// AdminStats is the admin dashboard payload.
type AdminStats struct {
	TotalMembers        int64           `json:"total_members"`
	TotalReferrals      int64           `json:"total_referrals"`
	TopPerformers       []models.Member `json:"top_performers"`
	StageDistribution   []StageCount    `json:"stage_distribution"`
	RecentRegistrations int64           `json:"recent_registrations"`
}

// InterfaceStatsService defines the stats service interface
type InterfaceStatsService interface {
	GetAdminStats() (*AdminStats, error)
}

// StatsService computes read-only aggregates for the admin dashboard
type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  *RedisService
}

// NewStatsService creates a new stats service. redisService may be nil, in
// which case no caching is performed.
func NewStatsService(db *gorm.DB, cfg *config.Config, redisService *RedisService) InterfaceStatsService {
	return &StatsService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// GetAdminStats computes all dashboard figures in one read-only transaction
// so they reflect a single point in time. Results are cached briefly in
// Redis; a cache failure falls through to the queries.
func (s *StatsService) GetAdminStats() (*AdminStats, error) {
	if cached := s.fromCache(); cached != nil {
		return cached, nil
	}

	stats := &AdminStats{
		TopPerformers:     []models.Member{},
		StageDistribution: make([]StageCount, 0, len(models.Stages)),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Total member count
		if err := tx.Model(&models.Member{}).Count(&stats.TotalMembers).Error; err != nil {
			return err
		}

		// Sum of referral counters; zero on an empty table
		row := tx.Model(&models.Member{}).
			Select("COALESCE(SUM(no_referrals), 0)").
			Row()
		if err := row.Scan(&stats.TotalReferrals); err != nil {
			return err
		}

		// Top performers: the 3 members with the lowest no_referrals, in
		// ascending order. The ascending order is long-standing dashboard
		// behavior and is kept as-is.
		if err := tx.Order("no_referrals ASC").Limit(3).Find(&stats.TopPerformers).Error; err != nil {
			return err
		}

		// Member count per stage, reported for every stage in order
		type stageRow struct {
			Stage string
			Total int64
		}
		var rows []stageRow
		if err := tx.Model(&models.Member{}).
			Select("stage, COUNT(*) AS total").
			Group("stage").
			Scan(&rows).Error; err != nil {
			return err
		}
		counts := make(map[string]int64, len(rows))
		for _, r := range rows {
			counts[r.Stage] = r.Total
		}
		for _, stage := range models.Stages {
			stats.StageDistribution = append(stats.StageDistribution, StageCount{
				Stage: stage,
				Count: counts[stage],
			})
		}

		// Count of the 10 most recently joined accounts. This counts users,
		// not members; the dashboard has always reported it that way.
		recent := tx.Model(&models.User{}).
			Select("id").
			Order("date_joined DESC").
			Limit(10)
		if err := tx.Table("(?) AS recent", recent).Count(&stats.RecentRegistrations).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.toCache(stats)
	return stats, nil
}

// fromCache returns the cached payload, or nil on miss or disabled cache.
func (s *StatsService) fromCache() *AdminStats {
	if s.Redis == nil || s.Config == nil || s.Config.StatsCacheTTL <= 0 {
		return nil
	}

	var cached AdminStats
	if err := s.Redis.Get(statsCacheKey, &cached); err != nil {
		return nil
	}
	return &cached
}

// toCache stores the payload with the configured TTL.
func (s *StatsService) toCache(stats *AdminStats) {
	if s.Redis == nil || s.Config == nil || s.Config.StatsCacheTTL <= 0 {
		return
	}

	ttl := time.Duration(s.Config.StatsCacheTTL) * time.Second
	if err := s.Redis.Set(statsCacheKey, stats, ttl); err != nil {
		logger.Warning("failed to cache admin stats: %v", err)
	}
}
