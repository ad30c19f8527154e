// Package crediting gerencia o saldo de créditos promocionais dos autores:
// bônus de login diário, bônus de sequência e o extrato de transações.
package crediting

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"github.com/vfg2006/author-ranking-api/pkg/utils"
)

const (
	// DailyLoginCredits é o bônus concedido no primeiro login do dia
	DailyLoginCredits = 5

	// StreakBonusDays é o tamanho da sequência de logins consecutivos que
	// destrava o bônus adicional
	StreakBonusDays = 7

	// StreakBonusCredits é o bônus concedido ao completar a sequência
	StreakBonusCredits = 20
)

type CreditService interface {
	GetBalance(ctx context.Context, profileID string) (*domain.PromoCredit, error)
	GetHistory(profileID string, limit, offset int) ([]*domain.PromoTransaction, error)
	AddCredits(ctx context.Context, profileID string, amount int, source domain.TransactionSource, description string, related *domain.RelatedEntity) (*domain.PromoTransaction, error)
	DeductCredits(ctx context.Context, profileID string, amount int, source domain.TransactionSource, description string, related *domain.RelatedEntity) (*domain.PromoTransaction, error)
	ClaimDailyLogin(ctx context.Context, profileID string) (*domain.DailyLoginResult, error)
}

type service struct {
	creditRepository repository.CreditRepository
}

func NewService(creditRepository repository.CreditRepository) CreditService {
	return &service{
		creditRepository: creditRepository,
	}
}

func (s *service) GetBalance(ctx context.Context, profileID string) (*domain.PromoCredit, error) {
	return s.creditRepository.GetBalance(ctx, profileID)
}

func (s *service) GetHistory(profileID string, limit, offset int) ([]*domain.PromoTransaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	if offset < 0 {
		offset = 0
	}

	return s.creditRepository.ListTransactions(profileID, limit, offset)
}

func (s *service) AddCredits(
	ctx context.Context,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return s.creditRepository.AddCredits(ctx, profileID, amount, source, description, related)
}

func (s *service) DeductCredits(
	ctx context.Context,
	profileID string,
	amount int,
	source domain.TransactionSource,
	description string,
	related *domain.RelatedEntity,
) (*domain.PromoTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	transaction, err := s.creditRepository.DeductCredits(ctx, profileID, amount, source, description, related)
	if err != nil {
		return nil, err
	}

	if transaction == nil {
		return nil, ErrInsufficientBalance
	}

	return transaction, nil
}

// ClaimDailyLogin concede o bônus diário de forma idempotente: apenas a
// primeira chamada desde a meia-noite local concede créditos, as demais
// retornam Granted=false sem tocar no saldo
func (s *service) ClaimDailyLogin(ctx context.Context, profileID string) (*domain.DailyLoginResult, error) {
	return s.claimDailyLoginAt(ctx, profileID, time.Now())
}

func (s *service) claimDailyLoginAt(ctx context.Context, profileID string, now time.Time) (*domain.DailyLoginResult, error) {
	midnight := utils.StartOfDay(now)

	existing, err := s.creditRepository.LastBySourceSince(profileID, domain.SourceDailyLogin, midnight)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return &domain.DailyLoginResult{Granted: false}, nil
	}

	_, err = s.creditRepository.AddCredits(
		ctx, profileID, DailyLoginCredits,
		domain.SourceDailyLogin, "Bônus de login diário", nil,
	)
	if err != nil {
		return nil, err
	}

	result := &domain.DailyLoginResult{
		Granted:      true,
		DailyCredits: DailyLoginCredits,
		StreakDays:   1,
	}

	logins, err := s.creditRepository.ListBySource(profileID, domain.SourceDailyLogin, StreakBonusDays)
	if err != nil {
		// O bônus diário já foi concedido, a falha na apuração da sequência
		// não deve desfazer o resgate
		logrus.WithError(err).WithField("profile_id", profileID).
			Warn("Erro ao apurar sequência de logins, bônus de sequência não avaliado")
		return result, nil
	}

	result.StreakDays = ConsecutiveLoginDays(logins, now)

	if result.StreakDays >= StreakBonusDays {
		_, err = s.creditRepository.AddCredits(
			ctx, profileID, StreakBonusCredits,
			domain.SourceStreakBonus, "Bônus de sequência de logins", nil,
		)
		if err != nil {
			return nil, err
		}

		result.StreakCredits = StreakBonusCredits
	}

	return result, nil
}

// ConsecutiveLoginDays conta quantos dias consecutivos terminam em "now",
// dado o extrato de bônus de login em ordem decrescente de data. Qualquer
// lacuna encerra a contagem.
func ConsecutiveLoginDays(logins []*domain.PromoTransaction, now time.Time) int {
	expected := utils.StartOfDay(now)
	streak := 0

	for _, login := range logins {
		if !utils.EqualDate(login.CreatedAt, expected) {
			break
		}

		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}
