package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/internal/api/handler"
	"github.com/vfg2006/author-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/scheduler"
	"github.com/vfg2006/author-ranking-api/internal/usecases/authenticating"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/internal/usecases/boosting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/crediting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/author-ranking-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	leaderboardService leaderboarding.LeaderboardService,
	boostService boosting.BoostService,
	creditService crediting.CreditService,
	badgeService badging.BadgeService,
	authenticator authenticating.Authenticator,
	snapshotSyncService *scheduler.SnapshotSyncService,
	boostSweepService *scheduler.BoostSweepService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		SnapshotSyncService: snapshotSyncService,
		BoostSweepService:   boostSweepService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Leaderboards(leaderboardService)...),
		router.WithRoutes(handler.Boosts(boostService)...),
		router.WithRoutes(handler.Credits(creditService)...),
		router.WithRoutes(handler.Badges(badgeService)...),
		router.WithRoutes(handler.CronJobs(cronServices, config.Cron.Secret)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
