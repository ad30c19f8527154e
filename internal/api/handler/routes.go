package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/author-ranking-api/internal/api/handler/router"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/internal/usecases/boosting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/crediting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/leaderboarding"
	"github.com/vfg2006/author-ranking-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Leaderboards retorna as rotas de leitura pública dos rankings
func Leaderboards(service leaderboarding.LeaderboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leaderboards/:slug",
			Method:  http.MethodGet,
			Handler: GetLeaderboard(service),
		},
		{
			Path:    "/v1/leaderboards/:slug/history",
			Method:  http.MethodGet,
			Handler: GetLeaderboardHistory(service),
		},
	}
}

// Boosts retorna as rotas de gerenciamento de boosts de livros
func Boosts(service boosting.BoostService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/boosts",
			Method:  http.MethodPost,
			Handler: CreateBoost(service),
		},
		{
			Path:    "/v1/boosts/active",
			Method:  http.MethodGet,
			Handler: ListActiveBoosts(service),
		},
		{
			Path:    "/v1/boosts/:id",
			Method:  http.MethodDelete,
			Handler: CancelBoost(service),
		},
	}
}

// Credits retorna as rotas do saldo de créditos promocionais do autor
func Credits(service crediting.CreditService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/credits",
			Method:  http.MethodGet,
			Handler: GetCredits(service),
		},
		{
			Path:    "/v1/credits",
			Method:  http.MethodPost,
			Handler: ClaimCredits(service),
		},
		{
			Path:    "/v1/credits/history",
			Method:  http.MethodGet,
			Handler: GetCreditHistory(service),
		},
	}
}

// Badges retorna as rotas de catálogo e de emblemas do autor autenticado
func Badges(service badging.BadgeService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/badges",
			Method:  http.MethodGet,
			Handler: ListBadges(service),
		},
		{
			Path:    "/v1/profile/badges",
			Method:  http.MethodGet,
			Handler: GetProfileBadges(service),
		},
	}
}

// CronJobs retorna as rotas internas de disparo e status dos agendadores,
// protegidas pelo segredo compartilhado de cron
func CronJobs(services CronJobServices, cronSecret string) []router.Route {
	guard := []func(http.Handler) http.Handler{middleware.CronSecret(cronSecret)}

	return []router.Route{
		{
			Path:        "/internal/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: guard,
		},
		{
			Path:        "/internal/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: guard,
		},
	}
}
