// Package boosting gerencia o ciclo de vida dos boosts de livros: criação com
// débito atômico de créditos, cancelamento com reembolso proporcional e as
// transições automáticas de status da varredura periódica.
package boosting

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/config"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/internal/usecases/scoring"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

const (
	// MaxBoostsPerDay é o limite de boosts criados por autor em 24 horas
	MaxBoostsPerDay = 10

	// MinHoursBetweenSameBook é o intervalo mínimo entre boosts do mesmo livro
	MinHoursBetweenSameBook = 24

	// MinDurationHours e MaxDurationHours delimitam a duração de um boost
	MinDurationHours = 1
	MaxDurationHours = 168
)

type BoostService interface {
	CreateBoost(ctx context.Context, profileID string, req *domain.CreateBoostRequest) (*domain.BoostedBook, error)
	CancelBoost(ctx context.Context, profileID, boostID string) (*domain.BoostCancelResult, error)
	ListActiveBoosts(slot domain.SlotType) ([]*domain.BoostView, error)
	UpdateBoostStatuses(ctx context.Context) (activated, completed int64, err error)
}

type service struct {
	boostRepository       repository.BoostRepository
	leaderboardRepository repository.LeaderboardRepository
	displayScoreSlug      string
}

func NewService(
	boostRepository repository.BoostRepository,
	leaderboardRepository repository.LeaderboardRepository,
	cfg config.Ranking,
) BoostService {
	return &service{
		boostRepository:       boostRepository,
		leaderboardRepository: leaderboardRepository,
		displayScoreSlug:      cfg.DisplayScoreSlug,
	}
}

// CreateBoost valida, precifica e cria um boost debitando os créditos na
// mesma transação da inserção. Nada é persistido quando o saldo é
// insuficiente.
func (s *service) CreateBoost(ctx context.Context, profileID string, req *domain.CreateBoostRequest) (*domain.BoostedBook, error) {
	return s.createBoostAt(ctx, profileID, req, time.Now())
}

func (s *service) createBoostAt(
	ctx context.Context,
	profileID string,
	req *domain.CreateBoostRequest,
	now time.Time,
) (*domain.BoostedBook, error) {
	if !domain.ValidSlotType(req.SlotType) {
		return nil, ErrInvalidSlotType
	}

	if req.DurationHours < MinDurationHours || req.DurationHours > MaxDurationHours {
		return nil, fmt.Errorf("%w: informe entre %d e %d horas",
			ErrInvalidDuration, MinDurationHours, MaxDurationHours)
	}

	created, err := s.boostRepository.CountCreatedSince(profileID, now.Add(-24*time.Hour))
	if err != nil {
		return nil, err
	}

	if created >= MaxBoostsPerDay {
		return nil, fmt.Errorf("%w: máximo de %d boosts por dia",
			ErrRateLimitExceeded, MaxBoostsPerDay)
	}

	recent, err := s.boostRepository.HasRecentBoostForBook(req.BookID, now.Add(-MinHoursBetweenSameBook*time.Hour))
	if err != nil {
		return nil, err
	}

	if recent {
		return nil, ErrBookCooldown
	}

	pricing, err := s.boostRepository.GetSlotPricing(req.SlotType)
	if err != nil {
		return nil, err
	}

	if pricing == nil {
		return nil, ErrInvalidSlotType
	}

	startTime := now
	if req.StartTime != nil && req.StartTime.After(now) {
		startTime = *req.StartTime
	}

	status := domain.BoostStatusActive
	if startTime.After(now) {
		status = domain.BoostStatusScheduled
	}

	boost := &domain.BoostedBook{
		ID:         utils.GenerateUUID(),
		ProfileID:  profileID,
		BookID:     req.BookID,
		SlotType:   req.SlotType,
		StartTime:  startTime,
		EndTime:    startTime.Add(time.Duration(req.DurationHours) * time.Hour),
		CreditCost: BoostCost(pricing.CreditsPer24hr, req.DurationHours),
		Status:     status,
		CreatedAt:  now,
	}

	transaction, err := s.boostRepository.CreateWithSpend(ctx, boost)
	if err != nil {
		return nil, err
	}

	if transaction == nil {
		return nil, ErrInsufficientCredits
	}

	logrus.WithFields(logrus.Fields{
		"boost_id":   boost.ID,
		"profile_id": profileID,
		"slot_type":  boost.SlotType,
		"cost":       boost.CreditCost,
	}).Info("Boost criado")

	return boost, nil
}

// BoostCost calcula o custo em créditos de uma duração, arredondando frações
// de período para cima
func BoostCost(creditsPer24hr, durationHours int) int {
	return int(math.Ceil(float64(creditsPer24hr) * float64(durationHours) / 24))
}

// CancelBoost cancela um boost do autor com reembolso proporcional ao tempo
// não utilizado. Cancelar um boost já terminal é um no-op sem reembolso.
func (s *service) CancelBoost(ctx context.Context, profileID, boostID string) (*domain.BoostCancelResult, error) {
	return s.cancelBoostAt(ctx, profileID, boostID, time.Now())
}

func (s *service) cancelBoostAt(ctx context.Context, profileID, boostID string, now time.Time) (*domain.BoostCancelResult, error) {
	boost, err := s.boostRepository.GetByID(boostID)
	if err != nil {
		return nil, err
	}

	if boost == nil || boost.ProfileID != profileID {
		return nil, ErrBoostNotFound
	}

	if boost.Status.Terminal() {
		return &domain.BoostCancelResult{
			BoostID: boost.ID,
			Status:  boost.Status,
			Refund:  0,
		}, nil
	}

	refund := ProrateRefund(boost, now)

	cancelled, _, err := s.boostRepository.CancelWithRefund(ctx, boost, refund)
	if err != nil {
		return nil, err
	}

	if !cancelled {
		// outra transição venceu a corrida, o boost já é terminal
		current, err := s.boostRepository.GetByID(boostID)
		if err != nil {
			return nil, err
		}

		return &domain.BoostCancelResult{
			BoostID: boostID,
			Status:  current.Status,
			Refund:  0,
		}, nil
	}

	logrus.WithFields(logrus.Fields{
		"boost_id":   boost.ID,
		"profile_id": profileID,
		"refund":     refund,
	}).Info("Boost cancelado")

	return &domain.BoostCancelResult{
		BoostID: boost.ID,
		Status:  domain.BoostStatusCancelled,
		Refund:  refund,
	}, nil
}

// ProrateRefund calcula o reembolso proporcional ao tempo restante do boost,
// arredondado para baixo. Antes do início o reembolso é integral; depois do
// fim é zero.
func ProrateRefund(boost *domain.BoostedBook, now time.Time) int {
	total := boost.EndTime.Sub(boost.StartTime)
	if total <= 0 {
		return 0
	}

	remaining := boost.EndTime.Sub(now)
	if remaining <= 0 {
		return 0
	}

	if remaining >= total {
		return boost.CreditCost
	}

	ratio := remaining.Seconds() / total.Seconds()

	return int(math.Floor(float64(boost.CreditCost) * ratio))
}

// ListActiveBoosts lista os boosts ativos de um slot ordenados pela
// pontuação de exibição (score do autor no leaderboard de referência com o
// multiplicador do slot aplicado)
func (s *service) ListActiveBoosts(slot domain.SlotType) ([]*domain.BoostView, error) {
	if !domain.ValidSlotType(slot) {
		return nil, ErrInvalidSlotType
	}

	pricing, err := s.boostRepository.GetSlotPricing(slot)
	if err != nil {
		return nil, err
	}

	if pricing == nil {
		return nil, ErrInvalidSlotType
	}

	boosts, err := s.boostRepository.ListActiveBySlot(slot)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.latestDisplaySnapshot()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar snapshot de referência, pontuação de exibição zerada")
	}

	views := make([]*domain.BoostView, 0, len(boosts))

	for _, boost := range boosts {
		view := &domain.BoostView{BoostedBook: *boost}

		if snapshot != nil {
			score, found, err := s.leaderboardRepository.GetEntryScore(snapshot.ID, boost.ProfileID)
			if err != nil {
				return nil, err
			}

			if found {
				view.DisplayScore = utils.RoundWithTwoDecimalPlace(
					scoring.ApplyBoostMultiplier(score, pricing.BoostMultiplier),
				)
			}
		}

		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].DisplayScore > views[j].DisplayScore
	})

	return views, nil
}

func (s *service) latestDisplaySnapshot() (*domain.LeaderboardSnapshot, error) {
	leaderboard, err := s.leaderboardRepository.GetBySlug(s.displayScoreSlug)
	if err != nil {
		return nil, err
	}

	if leaderboard == nil {
		return nil, nil
	}

	return s.leaderboardRepository.GetLatestSnapshot(leaderboard.ID)
}

// UpdateBoostStatuses aplica as transições automáticas devidas: scheduled
// para active quando o início chega e active para completed quando o fim
// passa
func (s *service) UpdateBoostStatuses(ctx context.Context) (int64, int64, error) {
	now := time.Now()

	activated, err := s.boostRepository.ActivateDue(now)
	if err != nil {
		return 0, 0, err
	}

	completed, err := s.boostRepository.CompleteDue(now)
	if err != nil {
		return activated, 0, err
	}

	if activated > 0 || completed > 0 {
		logrus.WithFields(logrus.Fields{
			"activated": activated,
			"completed": completed,
		}).Info("Transições de status de boosts aplicadas")
	}

	return activated, completed, nil
}
