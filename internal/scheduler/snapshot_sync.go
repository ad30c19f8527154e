package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotSyncService gerencia o agendamento e execução do recálculo dos leaderboards
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	leaderboardService  leaderboarding.LeaderboardService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewSnapshotSyncService cria uma nova instância do serviço de recálculo de snapshots
func NewSnapshotSyncService(
	leaderboardService leaderboarding.LeaderboardService,
	appConfig *config.Config,
) *SnapshotSyncService {
	syncConfig := SnapshotSyncConfig{
		CronSchedule: appConfig.SnapshotSync.CronSchedule,
		SyncEnabled:  appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		leaderboardService: leaderboardService,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo agendado de snapshots desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de leaderboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllLeaderboards()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de leaderboards")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllLeaderboards recalcula todos os leaderboards ativos
func (s *SnapshotSyncService) syncAllLeaderboards() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()

		s.lastSyncCompletedAt = time.Now()

		logrus.WithField("duration", time.Since(startTime).String()).
			Info("Recálculo de snapshots concluído")
	}()

	if err := s.leaderboardService.CalculateAll(context.Background()); err != nil {
		logrus.WithError(err).Error("Erro durante o recálculo de snapshots")
	}
}

// TriggerManualSync inicia manualmente um recálculo de snapshots
func (s *SnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de snapshots")
	go s.syncAllLeaderboards()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
