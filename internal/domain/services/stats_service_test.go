package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"membership-http-service/internal/domain/models"
)

func seedMember(t *testing.T, svc InterfaceMemberService, codeID, stage string, noReferrals int) {
	t.Helper()
	m := &models.Member{
		FullName:    "Member " + codeID,
		CodeID:      codeID,
		Email:       codeID + "@example.com",
		Phone:       "080000000",
		Stage:       stage,
		NoReferrals: noReferrals,
	}
	require.NoError(t, svc.CreateMember(m))
}

func TestAdminStatsEmptyStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db, newTestConfig(), nil)

	stats, err := svc.GetAdminStats()
	require.NoError(t, err)

	assert.EqualValues(t, 0, stats.TotalMembers)
	assert.EqualValues(t, 0, stats.TotalReferrals)
	assert.Empty(t, stats.TopPerformers)
	assert.NotNil(t, stats.TopPerformers)
	assert.EqualValues(t, 0, stats.RecentRegistrations)

	require.Len(t, stats.StageDistribution, 5)
	for i, sc := range stats.StageDistribution {
		assert.Equal(t, models.Stages[i], sc.Stage)
		assert.EqualValues(t, 0, sc.Count)
	}
}

func TestAdminStatsTotals(t *testing.T) {
	db := newTestDB(t)
	memberSvc := NewMemberService(db, newTestConfig())
	statsSvc := NewStatsService(db, newTestConfig(), nil)

	referrals := []int{5, 1, 3, 9}
	for i, n := range referrals {
		seedMember(t, memberSvc, fmt.Sprintf("MEM-%04d", i+1), "1", n)
	}

	stats, err := statsSvc.GetAdminStats()
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalMembers)
	assert.EqualValues(t, 18, stats.TotalReferrals)
}

func TestAdminStatsTopPerformersAscending(t *testing.T) {
	db := newTestDB(t)
	memberSvc := NewMemberService(db, newTestConfig())
	statsSvc := NewStatsService(db, newTestConfig(), nil)

	referrals := []int{5, 1, 3, 9}
	for i, n := range referrals {
		seedMember(t, memberSvc, fmt.Sprintf("MEM-%04d", i+1), "1", n)
	}

	stats, err := statsSvc.GetAdminStats()
	require.NoError(t, err)

	// Lowest counters first; the dashboard has always ordered ascending
	require.Len(t, stats.TopPerformers, 3)
	got := []int{
		stats.TopPerformers[0].NoReferrals,
		stats.TopPerformers[1].NoReferrals,
		stats.TopPerformers[2].NoReferrals,
	}
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestAdminStatsStageDistribution(t *testing.T) {
	db := newTestDB(t)
	memberSvc := NewMemberService(db, newTestConfig())
	statsSvc := NewStatsService(db, newTestConfig(), nil)

	stages := []string{"1", "1", "2", "5"}
	for i, stage := range stages {
		seedMember(t, memberSvc, fmt.Sprintf("MEM-%04d", i+1), stage, 0)
	}

	stats, err := statsSvc.GetAdminStats()
	require.NoError(t, err)

	want := map[string]int64{"1": 2, "2": 1, "3": 0, "4": 0, "5": 1}
	require.Len(t, stats.StageDistribution, 5)
	for i, sc := range stats.StageDistribution {
		assert.Equal(t, models.Stages[i], sc.Stage)
		assert.Equal(t, want[sc.Stage], sc.Count)
	}
}

func TestAdminStatsRecentRegistrations(t *testing.T) {
	db := newTestDB(t)
	statsSvc := NewStatsService(db, newTestConfig(), nil)

	// recent_registrations counts accounts, not members, capped at the 10
	// most recent
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		user := &models.User{
			Username:   fmt.Sprintf("user%02d", i),
			Email:      fmt.Sprintf("user%02d@example.com", i),
			Password:   "pass12345",
			IsActive:   true,
			DateJoined: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(user).Error)
	}

	stats, err := statsSvc.GetAdminStats()
	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.RecentRegistrations)

	// Members do not move the figure
	memberSvc := NewMemberService(db, newTestConfig())
	seedMember(t, memberSvc, "MEM-0001", "1", 0)

	stats, err = statsSvc.GetAdminStats()
	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.RecentRegistrations)
	assert.EqualValues(t, 1, stats.TotalMembers)
}
