package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/database/postgres"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/api"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/scheduler"
	"github.com/vfg2006/author-ranking-api/internal/usecases/authenticating"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/internal/usecases/boosting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/collecting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/crediting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	leaderboardRepo := repository.NewLeaderboardRepository(pgConn)
	profileRepo := repository.NewProfileRepository(pgConn)
	metricsRepo := repository.NewMetricsRepository(pgConn)
	badgeRepo := repository.NewBadgeRepository(pgConn)
	creditRepo := repository.NewCreditRepository(pgConn)
	boostRepo := repository.NewBoostRepository(pgConn)

	authenticator := authenticating.NewService(cfg)

	collector := collecting.NewService(metricsRepo)
	badgeService := badging.NewService(badgeRepo, metricsRepo)
	creditService := crediting.NewService(creditRepo)
	boostService := boosting.NewService(boostRepo, leaderboardRepo, cfg.Ranking)

	leaderboardService := leaderboarding.NewService(
		leaderboardRepo,
		profileRepo,
		badgeRepo,
		collector,
		badgeService,
	)

	// Inicializa os agendadores
	snapshotSyncService := scheduler.NewSnapshotSyncService(leaderboardService, cfg)
	boostSweepService := scheduler.NewBoostSweepService(boostService, badgeService, cfg)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de leaderboards")
	} else {
		logrus.Info("Agendador de snapshots de leaderboards iniciado com sucesso")
	}

	if err := boostSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de manutenção")
	} else {
		logrus.Info("Varredura de manutenção iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		leaderboardService,
		boostService,
		creditService,
		badgeService,
		authenticator,
		snapshotSyncService,
		boostSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
