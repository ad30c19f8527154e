package collecting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/author-ranking-api/infrastructure/repository/mocks"
	"github.com/vfg2006/author-ranking-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Collect(t *testing.T) {
	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	window := domain.TimeRange{Start: end.AddDate(0, 0, -7), End: end}

	tests := []struct {
		name     string
		setup    func(mockMetricsRepo *mocks.MockMetricsRepository)
		validate func(t *testing.T, metrics domain.RawMetrics)
	}{
		{
			name: "Coleta completa - todos os componentes preenchidos",
			setup: func(mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "").Return(70, nil)
				mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(50, nil)
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(550, nil)
				mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(5, 20, nil)
				mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(10, nil)
			},
			validate: func(t *testing.T, metrics domain.RawMetrics) {
				assert.Equal(t, 70, metrics.Sales.TotalSales)
				assert.InDelta(t, 10.0, metrics.Sales.Velocity, 0.001)

				assert.Equal(t, 50, metrics.Engagement.FollowerGrowth)
				assert.Equal(t, 550, metrics.Engagement.CurrentFollowers)
				assert.InDelta(t, 0.1, metrics.Engagement.GrowthRate, 0.001)

				assert.Equal(t, 5, metrics.Community.PostCount)
				assert.Equal(t, 10, metrics.Community.CommentsGiven)
				assert.InDelta(t, 4.0, metrics.Community.EngagementRate, 0.001)
			},
		},
		{
			name: "Falha nas vendas - apenas o componente de vendas é zerado",
			setup: func(mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "").
					Return(0, errors.New("timeout no banco"))
				mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(10, nil)
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(110, nil)
				mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(2, 8, nil)
				mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(3, nil)
			},
			validate: func(t *testing.T, metrics domain.RawMetrics) {
				assert.Equal(t, domain.SalesMetrics{}, metrics.Sales)
				assert.Equal(t, 10, metrics.Engagement.FollowerGrowth)
				assert.Equal(t, 2, metrics.Community.PostCount)
			},
		},
		{
			name: "Falha na contagem de seguidores - componente de engajamento zerado",
			setup: func(mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "").Return(7, nil)
				mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(10, nil)
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").
					Return(0, errors.New("conexão recusada"))
				mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(2, 8, nil)
				mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(3, nil)
			},
			validate: func(t *testing.T, metrics domain.RawMetrics) {
				assert.Equal(t, domain.EngagementMetrics{}, metrics.Engagement)
				assert.Equal(t, 7, metrics.Sales.TotalSales)
			},
		},
		{
			name: "Autor que começou do zero - taxa de crescimento usa base mínima de 1",
			setup: func(mockMetricsRepo *mocks.MockMetricsRepository) {
				mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "").Return(0, nil)
				mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(5, nil)
				mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(5, nil)
				mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(0, 0, nil)
				mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(0, nil)
			},
			validate: func(t *testing.T, metrics domain.RawMetrics) {
				assert.InDelta(t, 5.0, metrics.Engagement.GrowthRate, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
			tt.setup(mockMetricsRepo)

			service := NewService(mockMetricsRepo)
			metrics := service.Collect("PRF001", window, "")

			tt.validate(t, metrics)
		})
	}
}

func TestService_Collect_categoriaRestringeApenasVendas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	end := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	window := domain.TimeRange{Start: end.AddDate(0, 0, -7), End: end}

	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)

	// o gênero filtra a soma de vendas; seguidores e comunidade são do autor
	mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "fiction").Return(14, nil)
	mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(0, nil)
	mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(100, nil)
	mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(0, 0, nil)
	mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(0, nil)

	service := NewService(mockMetricsRepo)
	metrics := service.Collect("PRF001", window, "fiction")

	assert.Equal(t, 14, metrics.Sales.TotalSales)
	assert.Equal(t, 100, metrics.Engagement.CurrentFollowers)
}

func TestService_Collect_janelaDegenerada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Janela de duração zero não pode dividir por zero na velocidade
	instant := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	window := domain.TimeRange{Start: instant, End: instant}

	mockMetricsRepo := mocks.NewMockMetricsRepository(ctrl)
	mockMetricsRepo.EXPECT().SumSalesQuantity("PRF001", window, "").Return(10, nil)
	mockMetricsRepo.EXPECT().CountFollowsInWindow("PRF001", window).Return(0, nil)
	mockMetricsRepo.EXPECT().CountFollowers("PRF001").Return(0, nil)
	mockMetricsRepo.EXPECT().PostStats("PRF001", window).Return(0, 0, nil)
	mockMetricsRepo.EXPECT().CountCommentsGiven("PRF001", window).Return(0, nil)

	service := NewService(mockMetricsRepo)
	metrics := service.Collect("PRF001", window, "")

	assert.Equal(t, 10, metrics.Sales.TotalSales)
	assert.Equal(t, 0.0, metrics.Sales.Velocity)
}
