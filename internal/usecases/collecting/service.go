// Package collecting agrega as métricas brutas de um autor em uma janela de
// tempo, consultando as tabelas de vendas, seguidores e comunidade.
package collecting

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/domain"
)

// Collector coleta o pacote de métricas brutas de um autor. A categoria,
// quando informada, restringe o componente de vendas ao gênero do leaderboard;
// seguidores e comunidade são sinais do autor, sem recorte por gênero. Falhas
// parciais não interrompem a coleta: o componente que falhou entra zerado e o
// erro é registrado no log, preservando os demais componentes.
type Collector interface {
	Collect(profileID string, window domain.TimeRange, category string) domain.RawMetrics
}

type service struct {
	metricsRepository repository.MetricsRepository
}

func NewService(metricsRepository repository.MetricsRepository) Collector {
	return &service{
		metricsRepository: metricsRepository,
	}
}

func (s *service) Collect(profileID string, window domain.TimeRange, category string) domain.RawMetrics {
	return domain.RawMetrics{
		Sales:      s.collectSales(profileID, window, category),
		Engagement: s.collectEngagement(profileID, window),
		Community:  s.collectCommunity(profileID, window),
	}
}

func (s *service) collectSales(profileID string, window domain.TimeRange, category string) domain.SalesMetrics {
	totalSales, err := s.metricsRepository.SumSalesQuantity(profileID, window, category)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao coletar métricas de vendas, componente zerado")
		return domain.SalesMetrics{}
	}

	velocity := 0.0
	if days := window.Days(); days > 0 {
		velocity = float64(totalSales) / days
	}

	return domain.SalesMetrics{
		TotalSales: totalSales,
		Velocity:   velocity,
	}
}

func (s *service) collectEngagement(profileID string, window domain.TimeRange) domain.EngagementMetrics {
	growth, err := s.metricsRepository.CountFollowsInWindow(profileID, window)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao coletar crescimento de seguidores, componente zerado")
		return domain.EngagementMetrics{}
	}

	followers, err := s.metricsRepository.CountFollowers(profileID)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao coletar total de seguidores, componente zerado")
		return domain.EngagementMetrics{}
	}

	// A base da taxa é a contagem no início da janela, nunca menor que 1
	// para autores que começaram do zero
	previousFollowers := followers - growth
	if previousFollowers < 0 {
		previousFollowers = 0
	}

	growthRate := float64(growth) / math.Max(1, float64(previousFollowers))

	return domain.EngagementMetrics{
		FollowerGrowth:   growth,
		CurrentFollowers: followers,
		GrowthRate:       growthRate,
	}
}

func (s *service) collectCommunity(profileID string, window domain.TimeRange) domain.CommunityMetrics {
	postCount, likesAndComments, err := s.metricsRepository.PostStats(profileID, window)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao coletar métricas de posts, componente zerado")
		return domain.CommunityMetrics{}
	}

	commentsGiven, err := s.metricsRepository.CountCommentsGiven(profileID, window)
	if err != nil {
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao coletar comentários dados, componente zerado")
		return domain.CommunityMetrics{}
	}

	engagementRate := float64(likesAndComments) / math.Max(1, float64(postCount))

	return domain.CommunityMetrics{
		PostCount:        postCount,
		LikesAndComments: likesAndComments,
		CommentsGiven:    commentsGiven,
		EngagementRate:   engagementRate,
	}
}
