package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	leaderboardingmocks "github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding/mocks"
	"go.uber.org/mock/gomock"
)

func TestSnapshotSyncService_syncAllLeaderboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLeaderboardService := leaderboardingmocks.NewMockLeaderboardService(ctrl)
	mockLeaderboardService.EXPECT().CalculateAll(gomock.Any()).Return(nil)

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
		leaderboardService: mockLeaderboardService,
	}

	service.syncAllLeaderboards()

	assert.False(t, service.syncRunning)
	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
	assert.True(t, service.lastSyncCompletedAt.After(service.lastSyncStartedAt) ||
		service.lastSyncCompletedAt.Equal(service.lastSyncStartedAt))
}

func TestSnapshotSyncService_syncAllLeaderboards_jaEmAndamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// sem expectativa no mock: um recálculo em andamento impede outro
	mockLeaderboardService := leaderboardingmocks.NewMockLeaderboardService(ctrl)

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
		leaderboardService: mockLeaderboardService,
		syncRunning:        true,
	}

	service.syncAllLeaderboards()

	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestSnapshotSyncService_GetStatus(t *testing.T) {
	startedAt := time.Date(2024, 3, 20, 3, 0, 0, 0, time.UTC)
	completedAt := startedAt.Add(2 * time.Minute)

	service := &SnapshotSyncService{
		config: SnapshotSyncConfig{
			CronSchedule: "0 3 * * *",
			SyncEnabled:  true,
		},
		lastSyncStartedAt:   startedAt,
		lastSyncCompletedAt: completedAt,
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, startedAt, status["last_sync_started_at"])
	assert.Equal(t, completedAt, status["last_sync_completed_at"])
}
