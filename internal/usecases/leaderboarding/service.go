// Package leaderboarding orquestra o cálculo de snapshots de ranking e a
// leitura paginada dos leaderboards publicados.
package leaderboarding

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/internal/usecases/badging"
	"github.com/vfg2006/author-ranking-api/internal/usecases/collecting"
	"github.com/vfg2006/author-ranking-api/internal/usecases/scoring"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type LeaderboardService interface {
	CalculateLeaderboard(ctx context.Context, slug string) (*domain.LeaderboardSnapshot, error)
	CalculateAll(ctx context.Context) error
	GetLeaderboard(slug string, page, limit int) (*domain.LeaderboardPage, error)
	GetHistory(slug string, limit int) ([]*domain.LeaderboardSnapshot, error)
}

type service struct {
	leaderboardRepository repository.LeaderboardRepository
	profileRepository     repository.ProfileRepository
	badgeRepository       repository.BadgeRepository
	collector             collecting.Collector
	badgeService          badging.BadgeService

	// serializa cálculos concorrentes do mesmo leaderboard
	calcMutexesGuard sync.Mutex
	calcMutexes      map[string]*sync.Mutex
}

func NewService(
	leaderboardRepository repository.LeaderboardRepository,
	profileRepository repository.ProfileRepository,
	badgeRepository repository.BadgeRepository,
	collector collecting.Collector,
	badgeService badging.BadgeService,
) LeaderboardService {
	return &service{
		leaderboardRepository: leaderboardRepository,
		profileRepository:     profileRepository,
		badgeRepository:       badgeRepository,
		collector:             collector,
		badgeService:          badgeService,
		calcMutexes:           map[string]*sync.Mutex{},
	}
}

// CalculateLeaderboard computa e persiste um novo snapshot do leaderboard.
// Cálculos concorrentes do mesmo slug são serializados.
func (s *service) CalculateLeaderboard(ctx context.Context, slug string) (*domain.LeaderboardSnapshot, error) {
	leaderboard, err := s.leaderboardRepository.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if leaderboard == nil || !leaderboard.IsActive {
		return nil, ErrLeaderboardNotFound
	}

	mutex := s.mutexFor(slug)
	mutex.Lock()
	defer mutex.Unlock()

	return s.calculateWithDate(ctx, leaderboard, time.Now())
}

func (s *service) mutexFor(slug string) *sync.Mutex {
	s.calcMutexesGuard.Lock()
	defer s.calcMutexesGuard.Unlock()

	mutex, ok := s.calcMutexes[slug]
	if !ok {
		mutex = &sync.Mutex{}
		s.calcMutexes[slug] = mutex
	}

	return mutex
}

func (s *service) calculateWithDate(
	ctx context.Context,
	leaderboard *domain.Leaderboard,
	now time.Time,
) (*domain.LeaderboardSnapshot, error) {
	window := windowFor(leaderboard.TimeWindow, now)

	profiles, err := s.profileRepository.ListEligible()
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		logrus.WithField("slug", leaderboard.Slug).
			Info("Nenhum autor elegível, snapshot não gerado")
		return nil, nil
	}

	category := ""
	if leaderboard.Category != nil {
		category = *leaderboard.Category
	}

	inputs := make([]domain.RankingInput, 0, len(profiles))
	checked := make([]*domain.AuthorProfile, 0, len(profiles))

	for _, profile := range profiles {
		// reconfirma a elegibilidade da projeção antes de pontuar
		if !profile.Eligible() {
			continue
		}

		checked = append(checked, profile)

		metrics := s.collector.Collect(profile.ID, window, category)
		if metrics.IsZero() {
			continue
		}

		inputs = append(inputs, domain.RankingInput{
			ProfileID: profile.ID,
			Metrics:   metrics,
		})
	}

	outputs := scoring.CalculateRankings(inputs, leaderboard.Weights)

	snapshot := &domain.LeaderboardSnapshot{
		ID:              utils.GenerateUUID(),
		LeaderboardID:   leaderboard.ID,
		SnapshotDate:    now,
		TimeWindowStart: window.Start,
		TimeWindowEnd:   window.End,
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(outputs))

	for _, output := range outputs {
		// autores com pontuação zero ficam fora do snapshot
		if output.TotalScore <= 0 {
			continue
		}

		entries = append(entries, &domain.LeaderboardEntry{
			SnapshotID:      snapshot.ID,
			ProfileID:       output.ProfileID,
			Rank:            len(entries) + 1,
			TotalScore:      output.TotalScore,
			SalesScore:      output.SalesScore,
			EngagementScore: output.EngagementScore,
			CommunityScore:  output.CommunityScore,
			RawMetrics:      output.Metrics,
			CreatedAt:       now,
		})
	}

	snapshot.EntryCount = len(entries)

	previousRanks, err := s.previousRanks(leaderboard.ID, now)
	if err != nil {
		logrus.WithError(err).WithField("slug", leaderboard.Slug).
			Warn("Erro ao carregar snapshot anterior, tendências indisponíveis neste cálculo")
		previousRanks = map[string]int{}
	}

	for _, entry := range entries {
		if previous, ok := previousRanks[entry.ProfileID]; ok {
			rank := previous
			entry.PreviousRank = &rank
		}
	}

	if err := s.leaderboardRepository.CreateSnapshot(ctx, snapshot, entries); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"slug":    leaderboard.Slug,
		"entries": snapshot.EntryCount,
	}).Info("Snapshot de leaderboard gerado")

	// A avaliação de emblemas só acompanha o ciclo semanal. Falhas de
	// gamificação não invalidam o snapshot já persistido.
	if leaderboard.TimeWindow == domain.TimeWindowWeekly {
		if err := s.badgeService.EvaluateSnapshot(ctx, snapshot, entries); err != nil {
			logrus.WithError(err).WithField("slug", leaderboard.Slug).
				Error("Erro ao avaliar emblemas do snapshot")
		}

		// Os marcos de seguidores acompanham o mesmo ciclo: a contagem de
		// cada autor elegível acabou de ser lida, mesmo a dos não ranqueados
		for _, profile := range checked {
			if _, err := s.badgeService.CheckFollowerMilestones(ctx, profile.ID); err != nil {
				logrus.WithError(err).WithField("profile_id", profile.ID).
					Error("Erro ao avaliar marcos de seguidores")
			}
		}
	}

	return snapshot, nil
}

func windowFor(timeWindow domain.TimeWindow, now time.Time) domain.TimeRange {
	switch timeWindow {
	case domain.TimeWindowWeekly:
		return domain.TimeRange{Start: now.AddDate(0, 0, -7), End: now}
	case domain.TimeWindowMonthly:
		return domain.TimeRange{Start: now.AddDate(0, 0, -30), End: now}
	default:
		return domain.TimeRange{Start: time.Unix(0, 0), End: now}
	}
}

func (s *service) previousRanks(leaderboardID string, before time.Time) (map[string]int, error) {
	previous, err := s.leaderboardRepository.GetSnapshotBefore(leaderboardID, before)
	if err != nil {
		return nil, err
	}

	ranks := map[string]int{}

	if previous == nil {
		return ranks, nil
	}

	entries, err := s.leaderboardRepository.GetEntries(previous.ID)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		ranks[entry.ProfileID] = entry.Rank
	}

	return ranks, nil
}

// CalculateAll recalcula todos os leaderboards ativos. A falha de um
// leaderboard é registrada e não interrompe os demais.
func (s *service) CalculateAll(ctx context.Context) error {
	leaderboards, err := s.leaderboardRepository.ListActive()
	if err != nil {
		return err
	}

	for _, leaderboard := range leaderboards {
		mutex := s.mutexFor(leaderboard.Slug)
		mutex.Lock()

		_, err := s.calculateWithDate(ctx, leaderboard, time.Now())

		mutex.Unlock()

		if err != nil {
			logrus.WithError(err).WithField("slug", leaderboard.Slug).
				Error("Erro ao calcular leaderboard")
		}
	}

	return nil
}

// GetLeaderboard retorna a página solicitada do snapshot mais recente, com
// tendência derivada do snapshot anterior e os emblemas ativos dos autores
func (s *service) GetLeaderboard(slug string, page, limit int) (*domain.LeaderboardPage, error) {
	leaderboard, err := s.leaderboardRepository.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if leaderboard == nil || !leaderboard.IsActive {
		return nil, ErrLeaderboardNotFound
	}

	if page < 1 {
		page = 1
	}

	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	result := &domain.LeaderboardPage{
		Leaderboard: leaderboard,
		Entries:     []*domain.LeaderboardEntryView{},
		Page:        page,
		Limit:       limit,
	}

	snapshot, err := s.leaderboardRepository.GetLatestSnapshot(leaderboard.ID)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return result, nil
	}

	result.Snapshot = snapshot
	result.Total = snapshot.EntryCount

	entries, err := s.leaderboardRepository.GetEntriesPage(snapshot.ID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	previousRanks, err := s.previousRanks(leaderboard.ID, snapshot.SnapshotDate)
	if err != nil {
		return nil, err
	}

	profileIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		profileIDs = append(profileIDs, entry.ProfileID)
	}

	badgesByProfile, err := s.badgeRepository.ListActiveBadgesForProfiles(profileIDs)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if previous, ok := previousRanks[entry.ProfileID]; ok {
			rank := previous
			entry.PreviousRank = &rank
		}

		entry.Trend = trendFor(entry.Rank, entry.PreviousRank)
		entry.Badges = badgesByProfile[entry.ProfileID]
	}

	result.Entries = entries

	return result, nil
}

func trendFor(rank int, previousRank *int) domain.RankTrend {
	switch {
	case previousRank == nil:
		return domain.RankTrendNew
	case *previousRank > rank:
		return domain.RankTrendRising
	case *previousRank < rank:
		return domain.RankTrendFalling
	default:
		return domain.RankTrendStable
	}
}

// GetHistory lista os snapshots mais recentes de um leaderboard
func (s *service) GetHistory(slug string, limit int) ([]*domain.LeaderboardSnapshot, error) {
	leaderboard, err := s.leaderboardRepository.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	if leaderboard == nil || !leaderboard.IsActive {
		return nil, ErrLeaderboardNotFound
	}

	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}

	return s.leaderboardRepository.ListSnapshots(leaderboard.ID, limit)
}
