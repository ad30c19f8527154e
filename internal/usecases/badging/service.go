// Package badging avalia e concede emblemas de forma idempotente: um mesmo
// emblema ativo nunca é concedido duas vezes para o mesmo autor, e a
// recompensa em créditos é gravada na mesma transação da concessão.
package badging

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

const (
	// TopRankCutoff delimita as posições do snapshot semanal avaliadas
	// para emblemas de ranking
	TopRankCutoff = 10

	// RisingAuthorMinClimb é a quantidade mínima de posições subidas desde
	// o snapshot anterior para conceder o emblema de autor em ascensão
	RisingAuthorMinClimb = 20
)

// DefaultFollowerMilestones lista os marcos de seguidores e o bônus em
// créditos de cada um. Os slugs correspondem aos emblemas da carga inicial.
var DefaultFollowerMilestones = []domain.FollowerMilestone{
	{Threshold: 100, BadgeSlug: "followers-100", CreditBonus: 25},
	{Threshold: 500, BadgeSlug: "followers-500", CreditBonus: 50},
	{Threshold: 1000, BadgeSlug: "followers-1k", CreditBonus: 100},
	{Threshold: 5000, BadgeSlug: "followers-5k", CreditBonus: 250},
	{Threshold: 10000, BadgeSlug: "followers-10k", CreditBonus: 500},
}

type BadgeService interface {
	EvaluateSnapshot(ctx context.Context, snapshot *domain.LeaderboardSnapshot, entries []*domain.LeaderboardEntry) error
	CheckFollowerMilestones(ctx context.Context, profileID string) ([]*domain.AuthorBadge, error)
	ExpireBadges(ctx context.Context) (int64, error)
	ListBadges() ([]*domain.Badge, error)
	ListAuthorBadges(profileID string) ([]*domain.AuthorBadgeView, error)
}

type service struct {
	badgeRepository   repository.BadgeRepository
	metricsRepository repository.MetricsRepository
	milestones        []domain.FollowerMilestone
}

func NewService(
	badgeRepository repository.BadgeRepository,
	metricsRepository repository.MetricsRepository,
) BadgeService {
	return &service{
		badgeRepository:   badgeRepository,
		metricsRepository: metricsRepository,
		milestones:        DefaultFollowerMilestones,
	}
}

// EvaluateSnapshot percorre as dez primeiras posições de um snapshot semanal
// recém-criado e concede os emblemas de ranking aplicáveis. A falha em uma
// concessão é registrada e não interrompe as demais.
func (s *service) EvaluateSnapshot(
	ctx context.Context,
	snapshot *domain.LeaderboardSnapshot,
	entries []*domain.LeaderboardEntry,
) error {
	for _, entry := range entries {
		if entry.Rank > TopRankCutoff {
			break
		}

		awardCtx := &domain.AwardContext{
			SnapshotID:   snapshot.ID,
			Rank:         entry.Rank,
			PreviousRank: entry.PreviousRank,
		}

		for _, slug := range rankBadgeSlugs(entry) {
			if err := s.awardBySlug(ctx, entry.ProfileID, slug, awardCtx, 0); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"profile_id": entry.ProfileID,
					"badge_slug": slug,
				}).Error("Erro ao conceder emblema de ranking")
			}
		}
	}

	return nil
}

// rankBadgeSlugs retorna os emblemas aplicáveis a uma posição, na ordem de
// avaliação: pódio, primeiro lugar, top 10 e autor em ascensão
func rankBadgeSlugs(entry *domain.LeaderboardEntry) []string {
	slugs := make([]string, 0, 4)

	if entry.Rank <= 3 {
		slugs = append(slugs, domain.BadgeSlugTop3Weekly)
	}

	if entry.Rank == 1 {
		slugs = append(slugs, domain.BadgeSlugNumberOne)
	}

	if entry.Rank <= TopRankCutoff {
		slugs = append(slugs, domain.BadgeSlugTop10Weekly)
	}

	if entry.PreviousRank != nil && *entry.PreviousRank-entry.Rank >= RisingAuthorMinClimb {
		slugs = append(slugs, domain.BadgeSlugRisingAuthor)
	}

	return slugs
}

// CheckFollowerMilestones concede os emblemas de marco de seguidores já
// atingidos pelo autor, pulando os que ainda estão ativos
func (s *service) CheckFollowerMilestones(ctx context.Context, profileID string) ([]*domain.AuthorBadge, error) {
	followers, err := s.metricsRepository.CountFollowers(profileID)
	if err != nil {
		return nil, err
	}

	awarded := make([]*domain.AuthorBadge, 0)

	for _, milestone := range s.milestones {
		if followers < milestone.Threshold {
			break
		}

		awardCtx := &domain.AwardContext{FollowerMilestone: milestone.Threshold}

		award, err := s.award(ctx, profileID, milestone.BadgeSlug, awardCtx,
			milestone.CreditBonus, domain.SourceFollowerMilestone)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"profile_id": profileID,
				"badge_slug": milestone.BadgeSlug,
			}).Error("Erro ao conceder emblema de marco de seguidores")
			continue
		}

		if award != nil {
			awarded = append(awarded, award)
		}
	}

	return awarded, nil
}

func (s *service) awardBySlug(
	ctx context.Context,
	profileID, slug string,
	awardCtx *domain.AwardContext,
	creditOverride int,
) error {
	_, err := s.award(ctx, profileID, slug, awardCtx, creditOverride, domain.SourceBadgeAward)
	return err
}

// award concede um emblema caso o autor não tenha uma concessão ativa dele.
// Retorna (nil, nil) quando a concessão já existe. Com creditOverride zero, a
// recompensa vem da definição do emblema.
func (s *service) award(
	ctx context.Context,
	profileID, slug string,
	awardCtx *domain.AwardContext,
	creditOverride int,
	source domain.TransactionSource,
) (*domain.AuthorBadge, error) {
	badge, err := s.badgeRepository.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if badge == nil || !badge.IsActive {
		return nil, fmt.Errorf("emblema %s não encontrado ou inativo", slug)
	}

	existing, err := s.badgeRepository.GetActiveAward(profileID, badge.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, nil
	}

	now := time.Now()

	award := &domain.AuthorBadge{
		ID:           utils.GenerateUUID(),
		ProfileID:    profileID,
		BadgeID:      badge.ID,
		AwardedAt:    now,
		AwardContext: *awardCtx,
		IsActive:     true,
	}

	if badge.IsTimeLimited && badge.DurationDays > 0 {
		expiresAt := now.AddDate(0, 0, badge.DurationDays)
		award.ExpiresAt = &expiresAt
	}

	creditAmount := badge.CreditReward
	if creditOverride > 0 {
		creditAmount = creditOverride
	}

	description := fmt.Sprintf("Emblema conquistado: %s", badge.Name)

	if _, err := s.badgeRepository.AwardWithCredit(ctx, award, creditAmount, source, description); err != nil {
		return nil, err
	}

	return award, nil
}

// ExpireBadges desativa as concessões com prazo de validade vencido
func (s *service) ExpireBadges(ctx context.Context) (int64, error) {
	expired, err := s.badgeRepository.ExpireDue(time.Now())
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		logrus.WithField("expired", expired).Info("Emblemas expirados desativados")
	}

	return expired, nil
}

func (s *service) ListBadges() ([]*domain.Badge, error) {
	return s.badgeRepository.ListActive()
}

func (s *service) ListAuthorBadges(profileID string) ([]*domain.AuthorBadgeView, error) {
	return s.badgeRepository.ListAwards(profileID)
}
