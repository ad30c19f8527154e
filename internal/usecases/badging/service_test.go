package badging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int {
	return &i
}

func TestRankBadgeSlugs(t *testing.T) {
	tests := []struct {
		name     string
		entry    *domain.LeaderboardEntry
		expected []string
	}{
		{
			name:     "Primeiro lugar - pódio, número 1 e top 10",
			entry:    &domain.LeaderboardEntry{Rank: 1},
			expected: []string{domain.BadgeSlugTop3Weekly, domain.BadgeSlugNumberOne, domain.BadgeSlugTop10Weekly},
		},
		{
			name:     "Terceiro lugar - pódio e top 10",
			entry:    &domain.LeaderboardEntry{Rank: 3},
			expected: []string{domain.BadgeSlugTop3Weekly, domain.BadgeSlugTop10Weekly},
		},
		{
			name:     "Décimo lugar - apenas top 10",
			entry:    &domain.LeaderboardEntry{Rank: 10},
			expected: []string{domain.BadgeSlugTop10Weekly},
		},
		{
			name: "Subida de 25 posições - autor em ascensão",
			entry: &domain.LeaderboardEntry{
				Rank:         5,
				PreviousRank: intPtr(30),
			},
			expected: []string{domain.BadgeSlugTop3Weekly, domain.BadgeSlugTop10Weekly, domain.BadgeSlugRisingAuthor},
		},
		{
			name: "Subida de 19 posições - abaixo do mínimo para ascensão",
			entry: &domain.LeaderboardEntry{
				Rank:         8,
				PreviousRank: intPtr(27),
			},
			expected: []string{domain.BadgeSlugTop10Weekly},
		},
		{
			name: "Sem posição anterior - ascensão não se aplica",
			entry: &domain.LeaderboardEntry{
				Rank: 4,
			},
			expected: []string{domain.BadgeSlugTop10Weekly},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rankBadgeSlugs(tt.entry))
		})
	}
}

func TestService_EvaluateSnapshot(t *testing.T) {
	snapshot := &domain.LeaderboardSnapshot{ID: "SNP001"}

	top10Badge := &domain.Badge{
		ID:            "BDG010",
		Slug:          domain.BadgeSlugTop10Weekly,
		Name:          "Top 10 da Semana",
		IsTimeLimited: true,
		DurationDays:  7,
		CreditReward:  25,
		IsActive:      true,
	}

	tests := []struct {
		name    string
		entries []*domain.LeaderboardEntry
		setup   func(mockBadgeRepo *mocks.MockBadgeRepository)
	}{
		{
			name: "Décimo lugar sem concessão ativa - emblema concedido com crédito",
			entries: []*domain.LeaderboardEntry{
				{SnapshotID: "SNP001", ProfileID: "PRF010", Rank: 10},
			},
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository) {
				mockBadgeRepo.EXPECT().
					GetBySlug(domain.BadgeSlugTop10Weekly).
					Return(top10Badge, nil)
				mockBadgeRepo.EXPECT().
					GetActiveAward("PRF010", "BDG010").
					Return(nil, nil)
				mockBadgeRepo.EXPECT().
					AwardWithCredit(gomock.Any(), gomock.Any(), 25, domain.SourceBadgeAward, gomock.Any()).
					DoAndReturn(func(_ context.Context, award *domain.AuthorBadge, _ int, _ domain.TransactionSource, _ string) (*domain.PromoTransaction, error) {
						assert.Equal(t, "PRF010", award.ProfileID)
						assert.Equal(t, "BDG010", award.BadgeID)
						assert.Equal(t, "SNP001", award.AwardContext.SnapshotID)
						assert.Equal(t, 10, award.AwardContext.Rank)
						assert.NotNil(t, award.ExpiresAt)
						return &domain.PromoTransaction{}, nil
					})
			},
		},
		{
			name: "Concessão já ativa - nada é concedido de novo",
			entries: []*domain.LeaderboardEntry{
				{SnapshotID: "SNP001", ProfileID: "PRF010", Rank: 10},
			},
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository) {
				mockBadgeRepo.EXPECT().
					GetBySlug(domain.BadgeSlugTop10Weekly).
					Return(top10Badge, nil)
				mockBadgeRepo.EXPECT().
					GetActiveAward("PRF010", "BDG010").
					Return(&domain.AuthorBadge{ID: "ABG001", IsActive: true}, nil)
			},
		},
		{
			name: "Posições além do corte são ignoradas",
			entries: []*domain.LeaderboardEntry{
				{SnapshotID: "SNP001", ProfileID: "PRF011", Rank: 11},
				{SnapshotID: "SNP001", ProfileID: "PRF012", Rank: 12},
			},
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBadgeRepo := mocks.NewMockBadgeRepository(ctrl)
			tt.setup(mockBadgeRepo)

			service := &service{badgeRepository: mockBadgeRepo}

			err := service.EvaluateSnapshot(context.Background(), snapshot, tt.entries)
			assert.NoError(t, err)
		})
	}
}

func TestService_CheckFollowerMilestones(t *testing.T) {
	badge100 := &domain.Badge{ID: "BDG100", Slug: "followers-100", Name: "100 Seguidores", IsActive: true}
	badge500 := &domain.Badge{ID: "BDG500", Slug: "followers-500", Name: "500 Seguidores", IsActive: true}

	tests := []struct {
		name     string
		setup    func(mockBadgeRepo *mocks.MockBadgeRepository, mockMetricsRepo *mocks.MockMetricsRepository)
		validate func(t *testing.T, awarded []*domain.AuthorBadge, err error)
	}{
		{
			name: "Autor com 600 seguidores - marcos de 100 e 500 concedidos",
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository, mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(600, nil)

				mockBadgeRepo.EXPECT().GetBySlug("followers-100").Return(badge100, nil)
				mockBadgeRepo.EXPECT().GetActiveAward("PRF001", "BDG100").Return(nil, nil)
				mockBadgeRepo.EXPECT().
					AwardWithCredit(gomock.Any(), gomock.Any(), 25, domain.SourceFollowerMilestone, gomock.Any()).
					Return(&domain.PromoTransaction{}, nil)

				mockBadgeRepo.EXPECT().GetBySlug("followers-500").Return(badge500, nil)
				mockBadgeRepo.EXPECT().GetActiveAward("PRF001", "BDG500").Return(nil, nil)
				mockBadgeRepo.EXPECT().
					AwardWithCredit(gomock.Any(), gomock.Any(), 50, domain.SourceFollowerMilestone, gomock.Any()).
					Return(&domain.PromoTransaction{}, nil)
			},
			validate: func(t *testing.T, awarded []*domain.AuthorBadge, err error) {
				assert.NoError(t, err)
				assert.Len(t, awarded, 2)
			},
		},
		{
			name: "Marco de 100 já concedido - apenas o de 500 entra no resultado",
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository, mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(600, nil)

				mockBadgeRepo.EXPECT().GetBySlug("followers-100").Return(badge100, nil)
				mockBadgeRepo.EXPECT().GetActiveAward("PRF001", "BDG100").
					Return(&domain.AuthorBadge{ID: "ABG001", IsActive: true}, nil)

				mockBadgeRepo.EXPECT().GetBySlug("followers-500").Return(badge500, nil)
				mockBadgeRepo.EXPECT().GetActiveAward("PRF001", "BDG500").Return(nil, nil)
				mockBadgeRepo.EXPECT().
					AwardWithCredit(gomock.Any(), gomock.Any(), 50, domain.SourceFollowerMilestone, gomock.Any()).
					Return(&domain.PromoTransaction{}, nil)
			},
			validate: func(t *testing.T, awarded []*domain.AuthorBadge, err error) {
				assert.NoError(t, err)
				assert.Len(t, awarded, 1)
				assert.Equal(t, "BDG500", awarded[0].BadgeID)
			},
		},
		{
			name: "Autor abaixo do primeiro marco - nada é concedido",
			setup: func(mockBadgeRepo *mocks.MockBadgeRepository, mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(42, nil)
			},
			validate: func(t *testing.T, awarded []*domain.AuthorBadge, err error) {
				assert.NoError(t, err)
				assert.Empty(t, awarded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockBadgeRepo := mocks.NewMockBadgeRepository(ctrl)
			mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
			tt.setup(mockBadgeRepo, mockMetricsRepo)

			service := &service{
				badgeRepository:   mockBadgeRepo,
				metricsRepository: mockMetricsRepo,
				milestones:        DefaultFollowerMilestones,
			}

			awarded, err := service.CheckFollowerMilestones(context.Background(), "PRF001")
			tt.validate(t, awarded, err)
		})
	}
}

func TestService_ExpireBadges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBadgeRepo := mocks.NewMockBadgeRepository(ctrl)
	mockBadgeRepo.EXPECT().ExpireDue(gomock.Any()).Return(int64(3), nil)

	service := &service{badgeRepository: mockBadgeRepo}

	expired, err := service.ExpireBadges(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
}
