package boosting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBoostCost(t *testing.T) {
	tests := []struct {
		name           string
		creditsPer24hr int
		durationHours  int
		expected       int
	}{
		{
			name:           "Dois dias inteiros no slot explore",
			creditsPer24hr: 100,
			durationHours:  48,
			expected:       200,
		},
		{
			name:           "Uma hora - fração arredondada para cima",
			creditsPer24hr: 100,
			durationHours:  1,
			expected:       5,
		},
		{
			name:           "Meio dia",
			creditsPer24hr: 60,
			durationHours:  12,
			expected:       30,
		},
		{
			name:           "Semana inteira no slot mais barato",
			creditsPer24hr: 40,
			durationHours:  168,
			expected:       280,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BoostCost(tt.creditsPer24hr, tt.durationHours))
		})
	}
}

func TestProrateRefund(t *testing.T) {
	start := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	boost := &domain.BoostedBook{
		StartTime:  start,
		EndTime:    start.Add(48 * time.Hour),
		CreditCost: 200,
	}

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{
			name:     "Cancelamento antes do início - reembolso integral",
			now:      start.Add(-1 * time.Hour),
			expected: 200,
		},
		{
			name:     "Cancelamento na metade - reembolso proporcional",
			now:      start.Add(24 * time.Hour),
			expected: 100,
		},
		{
			name:     "Cancelamento a três quartos - arredondado para baixo",
			now:      start.Add(36 * time.Hour),
			expected: 50,
		},
		{
			name:     "Cancelamento depois do fim - sem reembolso",
			now:      start.Add(49 * time.Hour),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProrateRefund(boost, tt.now))
		})
	}
}

func TestService_createBoostAt(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	validRequest := func() *domain.CreateBoostRequest {
		return &domain.CreateBoostRequest{
			BookID:        "BOOK001",
			SlotType:      domain.SlotTypeExplore,
			DurationHours: 48,
		}
	}

	explorePricing := &domain.SlotPricing{
		SlotType:        domain.SlotTypeExplore,
		CreditsPer24hr:  100,
		BoostMultiplier: 1.5,
	}

	tests := []struct {
		name     string
		request  *domain.CreateBoostRequest
		setup    func(mockBoostRepo *mocks.MockBoostRepository)
		validate func(t *testing.T, boost *domain.BoostedBook, err error)
	}{
		{
			name:    "Boost válido sem agendamento - criado ativo com custo debitado",
			request: validRequest(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					CountCreatedSince("PRF001", now.Add(-24*time.Hour)).
					Return(0, nil)
				mockBoostRepo.EXPECT().
					HasRecentBoostForBook("BOOK001", now.Add(-24*time.Hour)).
					Return(false, nil)
				mockBoostRepo.EXPECT().
					GetSlotPricing(domain.SlotTypeExplore).
					Return(explorePricing, nil)
				mockBoostRepo.EXPECT().
					CreateWithSpend(gomock.Any(), gomock.Any()).
					Return(&domain.PromoTransaction{ID: "TXN001"}, nil)
			},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BoostStatusActive, boost.Status)
				assert.Equal(t, 200, boost.CreditCost)
				assert.Equal(t, now, boost.StartTime)
				assert.Equal(t, now.Add(48*time.Hour), boost.EndTime)
			},
		},
		{
			name: "Início futuro - criado como agendado",
			request: func() *domain.CreateBoostRequest {
				req := validRequest()
				futureStart := now.Add(6 * time.Hour)
				req.StartTime = &futureStart
				return req
			}(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					CountCreatedSince("PRF001", gomock.Any()).
					Return(0, nil)
				mockBoostRepo.EXPECT().
					HasRecentBoostForBook("BOOK001", gomock.Any()).
					Return(false, nil)
				mockBoostRepo.EXPECT().
					GetSlotPricing(domain.SlotTypeExplore).
					Return(explorePricing, nil)
				mockBoostRepo.EXPECT().
					CreateWithSpend(gomock.Any(), gomock.Any()).
					Return(&domain.PromoTransaction{}, nil)
			},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BoostStatusScheduled, boost.Status)
				assert.Equal(t, now.Add(6*time.Hour), boost.StartTime)
			},
		},
		{
			name: "Slot inválido - rejeitado antes de qualquer consulta",
			request: func() *domain.CreateBoostRequest {
				req := validRequest()
				req.SlotType = "homepage_banner"
				return req
			}(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.ErrorIs(t, err, ErrInvalidSlotType)
				assert.Nil(t, boost)
			},
		},
		{
			name: "Duração acima do máximo - rejeitada",
			request: func() *domain.CreateBoostRequest {
				req := validRequest()
				req.DurationHours = 200
				return req
			}(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.ErrorIs(t, err, ErrInvalidDuration)
			},
		},
		{
			name:    "Limite diário atingido - rejeitado",
			request: validRequest(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					CountCreatedSince("PRF001", gomock.Any()).
					Return(MaxBoostsPerDay, nil)
			},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.ErrorIs(t, err, ErrRateLimitExceeded)
			},
		},
		{
			name:    "Mesmo livro em cooldown - rejeitado",
			request: validRequest(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					CountCreatedSince("PRF001", gomock.Any()).
					Return(2, nil)
				mockBoostRepo.EXPECT().
					HasRecentBoostForBook("BOOK001", gomock.Any()).
					Return(true, nil)
			},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.ErrorIs(t, err, ErrBookCooldown)
			},
		},
		{
			name:    "Saldo insuficiente - transação nula e nada persistido",
			request: validRequest(),
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					CountCreatedSince("PRF001", gomock.Any()).
					Return(0, nil)
				mockBoostRepo.EXPECT().
					HasRecentBoostForBook("BOOK001", gomock.Any()).
					Return(false, nil)
				mockBoostRepo.EXPECT().
					GetSlotPricing(domain.SlotTypeExplore).
					Return(explorePricing, nil)
				mockBoostRepo.EXPECT().
					CreateWithSpend(gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			validate: func(t *testing.T, boost *domain.BoostedBook, err error) {
				assert.ErrorIs(t, err, ErrInsufficientCredits)
				assert.Nil(t, boost)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBoostRepo := mocks.NewMockBoostRepository(ctrl)
			tt.setup(mockBoostRepo)

			service := &service{boostRepository: mockBoostRepo}

			boost, err := service.createBoostAt(context.Background(), "PRF001", tt.request, now)
			tt.validate(t, boost, err)
		})
	}
}

func TestService_cancelBoostAt(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

	activeBoost := func() *domain.BoostedBook {
		return &domain.BoostedBook{
			ID:         "BST001",
			ProfileID:  "PRF001",
			BookID:     "BOOK001",
			StartTime:  now.Add(-24 * time.Hour),
			EndTime:    now.Add(24 * time.Hour),
			CreditCost: 200,
			Status:     domain.BoostStatusActive,
		}
	}

	tests := []struct {
		name     string
		setup    func(mockBoostRepo *mocks.MockBoostRepository)
		validate func(t *testing.T, result *domain.BoostCancelResult, err error)
	}{
		{
			name: "Cancelamento na metade - reembolso proporcional",
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(activeBoost(), nil)
				mockBoostRepo.EXPECT().
					CancelWithRefund(gomock.Any(), gomock.Any(), 100).
					Return(true, &domain.PromoTransaction{}, nil)
			},
			validate: func(t *testing.T, result *domain.BoostCancelResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BoostStatusCancelled, result.Status)
				assert.Equal(t, 100, result.Refund)
			},
		},
		{
			name: "Boost inexistente - não encontrado",
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.BoostCancelResult, err error) {
				assert.ErrorIs(t, err, ErrBoostNotFound)
			},
		},
		{
			name: "Boost de outro autor - tratado como não encontrado",
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				boost := activeBoost()
				boost.ProfileID = "PRF999"

				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(boost, nil)
			},
			validate: func(t *testing.T, result *domain.BoostCancelResult, err error) {
				assert.ErrorIs(t, err, ErrBoostNotFound)
			},
		},
		{
			name: "Boost já completado - no-op sem reembolso",
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				boost := activeBoost()
				boost.Status = domain.BoostStatusCompleted

				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(boost, nil)
			},
			validate: func(t *testing.T, result *domain.BoostCancelResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BoostStatusCompleted, result.Status)
				assert.Equal(t, 0, result.Refund)
			},
		},
		{
			name: "Corrida com a varredura - retorna o status vigente sem reembolso",
			setup: func(mockBoostRepo *mocks.MockBoostRepository) {
				completed := activeBoost()
				completed.Status = domain.BoostStatusCompleted

				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(activeBoost(), nil)
				mockBoostRepo.EXPECT().
					CancelWithRefund(gomock.Any(), gomock.Any(), 100).
					Return(false, nil, nil)
				mockBoostRepo.EXPECT().
					GetByID("BST001").
					Return(completed, nil)
			},
			validate: func(t *testing.T, result *domain.BoostCancelResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.BoostStatusCompleted, result.Status)
				assert.Equal(t, 0, result.Refund)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBoostRepo := mocks.NewMockBoostRepository(ctrl)
			tt.setup(mockBoostRepo)

			service := &service{boostRepository: mockBoostRepo}

			result, err := service.cancelBoostAt(context.Background(), "PRF001", "BST001", now)
			tt.validate(t, result, err)
		})
	}
}

func TestService_ListActiveBoosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoostRepo := mocks.NewMockBoostRepository(ctrl)
	mockLeaderboardRepo := mocks.NewMockLeaderboardRepository(ctrl)

	service := &service{
		boostRepository:       mockBoostRepo,
		leaderboardRepository: mockLeaderboardRepo,
		displayScoreSlug:      "weekly-overall",
	}

	pricing := &domain.SlotPricing{
		SlotType:        domain.SlotTypeExplore,
		CreditsPer24hr:  100,
		BoostMultiplier: 1.5,
	}

	mockBoostRepo.EXPECT().
		GetSlotPricing(domain.SlotTypeExplore).
		Return(pricing, nil)

	mockBoostRepo.EXPECT().
		ListActiveBySlot(domain.SlotTypeExplore).
		Return([]*domain.BoostedBook{
			{ID: "BST001", ProfileID: "PRF001"},
			{ID: "BST002", ProfileID: "PRF002"},
		}, nil)

	mockLeaderboardRepo.EXPECT().
		GetBySlug("weekly-overall").
		Return(&domain.Leaderboard{ID: "LDB001", Slug: "weekly-overall"}, nil)

	mockLeaderboardRepo.EXPECT().
		GetLatestSnapshot("LDB001").
		Return(&domain.LeaderboardSnapshot{ID: "SNP001"}, nil)

	mockLeaderboardRepo.EXPECT().
		GetEntryScore("SNP001", "PRF001").
		Return(40.0, true, nil)

	mockLeaderboardRepo.EXPECT().
		GetEntryScore("SNP001", "PRF002").
		Return(60.0, true, nil)

	views, err := service.ListActiveBoosts(domain.SlotTypeExplore)

	assert.NoError(t, err)
	assert.Len(t, views, 2)

	// Ordenado pela pontuação de exibição (score x multiplicador do slot)
	assert.Equal(t, "BST002", views[0].ID)
	assert.InDelta(t, 90.0, views[0].DisplayScore, 0.001)
	assert.Equal(t, "BST001", views[1].ID)
	assert.InDelta(t, 60.0, views[1].DisplayScore, 0.001)
}

func TestService_ListActiveBoosts_semSnapshotDeReferencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBoostRepo := mocks.NewMockBoostRepository(ctrl)
	mockLeaderboardRepo := mocks.NewMockLeaderboardRepository(ctrl)

	service := &service{
		boostRepository:       mockBoostRepo,
		leaderboardRepository: mockLeaderboardRepo,
		displayScoreSlug:      "weekly-overall",
	}

	mockBoostRepo.EXPECT().
		GetSlotPricing(domain.SlotTypeExplore).
		Return(&domain.SlotPricing{SlotType: domain.SlotTypeExplore, BoostMultiplier: 1.5}, nil)

	mockBoostRepo.EXPECT().
		ListActiveBySlot(domain.SlotTypeExplore).
		Return([]*domain.BoostedBook{{ID: "BST001", ProfileID: "PRF001"}}, nil)

	mockLeaderboardRepo.EXPECT().
		GetBySlug("weekly-overall").
		Return(nil, nil)

	views, err := service.ListActiveBoosts(domain.SlotTypeExplore)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, 0.0, views[0].DisplayScore)
}
