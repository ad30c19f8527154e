package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/internal/usecases/boosting"
)

// BoostSweepConfig representa a configuração da varredura de manutenção
type BoostSweepConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// BoostSweepService gerencia a varredura periódica: transições de status de
// boosts e expiração de emblemas com prazo vencido
type BoostSweepService struct {
	scheduler            *gocron.Scheduler
	config               BoostSweepConfig
	boostService         boosting.BoostService
	badgeService         badging.BadgeService
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

// NewBoostSweepService cria uma nova instância do serviço de varredura
func NewBoostSweepService(
	boostService boosting.BoostService,
	badgeService badging.BadgeService,
	appConfig *config.Config,
) *BoostSweepService {
	sweepConfig := BoostSweepConfig{
		CronSchedule: appConfig.BoostSweep.CronSchedule,
		SweepEnabled: appConfig.BoostSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de manutenção carregada")

	return &BoostSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		boostService: boostService,
		badgeService: badgeService,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *BoostSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de manutenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de manutenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de manutenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de manutenção")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep aplica as transições de status devidas e expira emblemas vencidos
func (s *BoostSweepService) runSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de manutenção já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()

		s.lastSweepCompletedAt = time.Now()

		logrus.WithField("duration", time.Since(startTime).String()).
			Info("Varredura de manutenção concluída")
	}()

	ctx := context.Background()

	activated, completed, err := s.boostService.UpdateBoostStatuses(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao aplicar transições de status de boosts")
	} else {
		logrus.WithFields(logrus.Fields{
			"activated": activated,
			"completed": completed,
		}).Debug("Transições de status de boosts avaliadas")
	}

	if _, err := s.badgeService.ExpireBadges(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao expirar emblemas vencidos")
	}
}

// TriggerManualSync inicia manualmente uma varredura de manutenção
func (s *BoostSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de manutenção já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de manutenção")
	go s.runSweep()
}

// GetStatus retorna o status atual do agendador
func (s *BoostSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
