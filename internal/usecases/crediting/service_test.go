package crediting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_AddCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreditRepo := mocks.NewMockCreditRepository(ctrl)
	service := &service{creditRepository: mockCreditRepo}

	ctx := context.Background()

	t.Run("Valor positivo - delega ao repositório", func(t *testing.T) {
		mockCreditRepo.EXPECT().
			AddCredits(ctx, "PRF001", 50, domain.SourcePurchase, "Compra de créditos", nil).
			Return(&domain.PromoTransaction{ID: "TXN001", Amount: 50, BalanceAfter: 50}, nil)

		transaction, err := service.AddCredits(ctx, "PRF001", 50, domain.SourcePurchase, "Compra de créditos", nil)

		assert.NoError(t, err)
		assert.Equal(t, 50, transaction.Amount)
	})

	t.Run("Valor zero - rejeitado sem tocar no repositório", func(t *testing.T) {
		transaction, err := service.AddCredits(ctx, "PRF001", 0, domain.SourcePurchase, "Compra de créditos", nil)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Nil(t, transaction)
	})

	t.Run("Valor negativo - rejeitado", func(t *testing.T) {
		_, err := service.AddCredits(ctx, "PRF001", -10, domain.SourcePurchase, "Compra de créditos", nil)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestService_DeductCredits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreditRepo := mocks.NewMockCreditRepository(ctrl)
	service := &service{creditRepository: mockCreditRepo}

	ctx := context.Background()

	t.Run("Saldo suficiente - transação registrada", func(t *testing.T) {
		mockCreditRepo.EXPECT().
			DeductCredits(ctx, "PRF001", 30, domain.SourceBoostSpend, "Boost de livro", nil).
			Return(&domain.PromoTransaction{ID: "TXN002", Amount: -30, BalanceAfter: 20}, nil)

		transaction, err := service.DeductCredits(ctx, "PRF001", 30, domain.SourceBoostSpend, "Boost de livro", nil)

		assert.NoError(t, err)
		assert.Equal(t, 20, transaction.BalanceAfter)
	})

	t.Run("Saldo insuficiente - repositório retorna nil e o serviço traduz", func(t *testing.T) {
		mockCreditRepo.EXPECT().
			DeductCredits(ctx, "PRF001", 999, domain.SourceBoostSpend, "Boost de livro", nil).
			Return(nil, nil)

		transaction, err := service.DeductCredits(ctx, "PRF001", 999, domain.SourceBoostSpend, "Boost de livro", nil)

		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Nil(t, transaction)
	})

	t.Run("Valor inválido - rejeitado", func(t *testing.T) {
		_, err := service.DeductCredits(ctx, "PRF001", 0, domain.SourceBoostSpend, "Boost de livro", nil)

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestService_claimDailyLoginAt(t *testing.T) {
	now := time.Date(2024, 3, 20, 14, 30, 0, 0, time.Local)
	midnight := time.Date(2024, 3, 20, 0, 0, 0, 0, time.Local)

	loginAt := func(daysAgo int) *domain.PromoTransaction {
		return &domain.PromoTransaction{
			Source:    domain.SourceDailyLogin,
			CreatedAt: now.AddDate(0, 0, -daysAgo),
		}
	}

	tests := []struct {
		name     string
		setup    func(mockCreditRepo *mocks.MockCreditRepository)
		validate func(t *testing.T, result *domain.DailyLoginResult, err error)
	}{
		{
			name: "Primeira reivindicação do dia - concede o bônus diário",
			setup: func(mockCreditRepo *mocks.MockCreditRepository) {
				mockCreditRepo.EXPECT().
					LastBySourceSince("PRF001", domain.SourceDailyLogin, midnight).
					Return(nil, nil)

				mockCreditRepo.EXPECT().
					AddCredits(gomock.Any(), "PRF001", DailyLoginCredits, domain.SourceDailyLogin, gomock.Any(), nil).
					Return(&domain.PromoTransaction{}, nil)

				mockCreditRepo.EXPECT().
					ListBySource("PRF001", domain.SourceDailyLogin, StreakBonusDays).
					Return([]*domain.PromoTransaction{loginAt(0)}, nil)
			},
			validate: func(t *testing.T, result *domain.DailyLoginResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Granted)
				assert.Equal(t, DailyLoginCredits, result.DailyCredits)
				assert.Equal(t, 1, result.StreakDays)
				assert.Equal(t, 0, result.StreakCredits)
			},
		},
		{
			name: "Segunda reivindicação do mesmo dia - idempotente, não concede nada",
			setup: func(mockCreditRepo *mocks.MockCreditRepository) {
				mockCreditRepo.EXPECT().
					LastBySourceSince("PRF001", domain.SourceDailyLogin, midnight).
					Return(loginAt(0), nil)
			},
			validate: func(t *testing.T, result *domain.DailyLoginResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Granted)
				assert.Equal(t, 0, result.DailyCredits)
			},
		},
		{
			name: "Sétimo dia consecutivo - concede também o bônus de sequência",
			setup: func(mockCreditRepo *mocks.MockCreditRepository) {
				mockCreditRepo.EXPECT().
					LastBySourceSince("PRF001", domain.SourceDailyLogin, midnight).
					Return(nil, nil)

				mockCreditRepo.EXPECT().
					AddCredits(gomock.Any(), "PRF001", DailyLoginCredits, domain.SourceDailyLogin, gomock.Any(), nil).
					Return(&domain.PromoTransaction{}, nil)

				mockCreditRepo.EXPECT().
					ListBySource("PRF001", domain.SourceDailyLogin, StreakBonusDays).
					Return([]*domain.PromoTransaction{
						loginAt(0), loginAt(1), loginAt(2), loginAt(3),
						loginAt(4), loginAt(5), loginAt(6),
					}, nil)

				mockCreditRepo.EXPECT().
					AddCredits(gomock.Any(), "PRF001", StreakBonusCredits, domain.SourceStreakBonus, gomock.Any(), nil).
					Return(&domain.PromoTransaction{}, nil)
			},
			validate: func(t *testing.T, result *domain.DailyLoginResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Granted)
				assert.Equal(t, StreakBonusDays, result.StreakDays)
				assert.Equal(t, StreakBonusCredits, result.StreakCredits)
			},
		},
		{
			name: "Falha na apuração da sequência - bônus diário é mantido",
			setup: func(mockCreditRepo *mocks.MockCreditRepository) {
				mockCreditRepo.EXPECT().
					LastBySourceSince("PRF001", domain.SourceDailyLogin, midnight).
					Return(nil, nil)

				mockCreditRepo.EXPECT().
					AddCredits(gomock.Any(), "PRF001", DailyLoginCredits, domain.SourceDailyLogin, gomock.Any(), nil).
					Return(&domain.PromoTransaction{}, nil)

				mockCreditRepo.EXPECT().
					ListBySource("PRF001", domain.SourceDailyLogin, StreakBonusDays).
					Return(nil, errors.New("timeout no banco"))
			},
			validate: func(t *testing.T, result *domain.DailyLoginResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Granted)
				assert.Equal(t, DailyLoginCredits, result.DailyCredits)
				assert.Equal(t, 0, result.StreakCredits)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCreditRepo := mocks.NewMockCreditRepository(ctrl)
			service := &service{creditRepository: mockCreditRepo}

			tt.setup(mockCreditRepo)

			result, err := service.claimDailyLoginAt(context.Background(), "PRF001", now)
			tt.validate(t, result, err)
		})
	}
}

func TestConsecutiveLoginDays(t *testing.T) {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.Local)

	loginAt := func(daysAgo int) *domain.PromoTransaction {
		return &domain.PromoTransaction{CreatedAt: now.AddDate(0, 0, -daysAgo)}
	}

	tests := []struct {
		name     string
		logins   []*domain.PromoTransaction
		expected int
	}{
		{
			name:     "Sem logins - sequência zero",
			logins:   nil,
			expected: 0,
		},
		{
			name:     "Apenas hoje - sequência de um dia",
			logins:   []*domain.PromoTransaction{loginAt(0)},
			expected: 1,
		},
		{
			name:     "Três dias consecutivos",
			logins:   []*domain.PromoTransaction{loginAt(0), loginAt(1), loginAt(2)},
			expected: 3,
		},
		{
			name:     "Lacuna no meio encerra a contagem",
			logins:   []*domain.PromoTransaction{loginAt(0), loginAt(1), loginAt(3), loginAt(4)},
			expected: 2,
		},
		{
			name:     "Último login foi ontem - sequência quebrada",
			logins:   []*domain.PromoTransaction{loginAt(1), loginAt(2)},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConsecutiveLoginDays(tt.logins, now))
		})
	}
}
