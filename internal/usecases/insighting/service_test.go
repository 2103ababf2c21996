package insighting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	cachemocks "github.com/vfg2006/creator-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	profiles     *mocks.MockProfileRepository
	applications *mocks.MockApplicationRepository
	transactions *mocks.MockTransactionRepository
	campaigns    *mocks.MockCampaignRepository
	cache        *cachemocks.MockReportCache
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		profiles:     mocks.NewMockProfileRepository(ctrl),
		applications: mocks.NewMockApplicationRepository(ctrl),
		transactions: mocks.NewMockTransactionRepository(ctrl),
		campaigns:    mocks.NewMockCampaignRepository(ctrl),
		cache:        cachemocks.NewMockReportCache(ctrl),
	}

	service := NewService(nil, DefaultKnowledge(), m.profiles, m.applications, m.transactions, m.campaigns)
	service.now = func() time.Time { return referenceNow }

	return service, m
}

func expectCreatorData(m serviceMocks, creatorID string) {
	m.applications.EXPECT().
		ListByCreatorID(gomock.Any(), creatorID).
		Return([]domain.Application{
			{ID: "AP1", Status: domain.ApplicationStatusAccepted},
		}, nil)
	m.transactions.EXPECT().
		ListByCreatorID(gomock.Any(), creatorID).
		Return([]domain.Transaction{}, nil)
	m.campaigns.EXPECT().
		ListPublishedSince(gomock.Any(), referenceNow.Add(-defaultTrendWindow)).
		Return([]domain.Campaign{}, nil)
}

func TestService_ComputeInsights(t *testing.T) {
	profile := &domain.Profile{
		CreatorID:   "CR001",
		Niche:       []string{"fitness"},
		SocialStats: []domain.SocialStat{{Platform: "TikTok", EngagementRate: 6.1}},
	}

	t.Run("ID vazio é rejeitado sem consultar os repositórios", func(t *testing.T) {
		service, _ := newTestService(t)

		report, err := service.ComputeInsights(context.Background(), "   ")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrCreatorIDRequired)

		var insightsErr *InsightsError
		require.ErrorAs(t, err, &insightsErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, insightsErr.Code)
	})

	t.Run("Criador sem perfil retorna não encontrado", func(t *testing.T) {
		service, m := newTestService(t)
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR404").Return(nil, nil)

		report, err := service.ComputeInsights(context.Background(), "CR404")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, ErrCreatorNotFound)

		var insightsErr *InsightsError
		require.ErrorAs(t, err, &insightsErr)
		assert.Equal(t, apiErrors.ErrCreatorNotFound, insightsErr.Code)
		assert.Equal(t, "CR404", insightsErr.CreatorID)
	})

	t.Run("Erro ao buscar perfil é propagado", func(t *testing.T) {
		service, m := newTestService(t)
		dbErr := errors.New("connection refused")
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").Return(nil, dbErr)

		report, err := service.ComputeInsights(context.Background(), "CR001")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Erro em uma das coleções é propagado", func(t *testing.T) {
		service, m := newTestService(t)
		dbErr := errors.New("timeout reading transactions")

		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").Return(profile, nil)
		m.applications.EXPECT().ListByCreatorID(gomock.Any(), "CR001").Return(nil, nil)
		m.transactions.EXPECT().ListByCreatorID(gomock.Any(), "CR001").Return(nil, dbErr)
		m.campaigns.EXPECT().ListPublishedSince(gomock.Any(), gomock.Any()).Return(nil, nil)

		report, err := service.ComputeInsights(context.Background(), "CR001")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("Monta o relatório com os dados do criador", func(t *testing.T) {
		service, m := newTestService(t)
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").Return(profile, nil)
		expectCreatorData(m, "CR001")

		report, err := service.ComputeInsights(context.Background(), " CR001 ")

		require.NoError(t, err)
		assert.Equal(t, 1, report.CampaignSuccessMetrics.TotalApplications)
		assert.Equal(t, 100.0, report.CampaignSuccessMetrics.SuccessRate)
		assert.Equal(t, domain.TrendStable, report.PerformanceTrends.Trend)
		assert.Equal(t, "TikTok", report.BestPostingTimes[0].Platform)
		assert.Len(t, report.TrendAlerts, 2)
	})

	t.Run("Requisição cancelada não devolve relatório parcial", func(t *testing.T) {
		service, m := newTestService(t)
		ctx, cancel := context.WithCancel(context.Background())

		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").
			DoAndReturn(func(_ context.Context, _ string) (*domain.Profile, error) {
				cancel()
				return profile, nil
			})
		expectCreatorData(m, "CR001")

		report, err := service.ComputeInsights(ctx, "CR001")

		assert.Nil(t, report)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_ComputeInsightsWithCache(t *testing.T) {
	profile := &domain.Profile{CreatorID: "CR001"}
	ttl := 10 * time.Minute

	t.Run("Relatório em cache evita consulta aos repositórios", func(t *testing.T) {
		service, m := newTestService(t)
		service.WithCache(m.cache, ttl)

		cached := &domain.InsightsReport{TrendAlerts: []string{"cached"}}
		m.cache.EXPECT().Get(gomock.Any(), "CR001").Return(cached, nil)

		report, err := service.ComputeInsights(context.Background(), "CR001")

		require.NoError(t, err)
		assert.Same(t, cached, report)
	})

	t.Run("Sem cache calcula e salva o relatório", func(t *testing.T) {
		service, m := newTestService(t)
		service.WithCache(m.cache, ttl)

		m.cache.EXPECT().Get(gomock.Any(), "CR001").Return(nil, nil)
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").Return(profile, nil)
		expectCreatorData(m, "CR001")
		m.cache.EXPECT().Set(gomock.Any(), "CR001", gomock.Any(), ttl).Return(nil)

		report, err := service.ComputeInsights(context.Background(), "CR001")

		require.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("Falhas do cache não interrompem o cálculo", func(t *testing.T) {
		service, m := newTestService(t)
		service.WithCache(m.cache, ttl)

		m.cache.EXPECT().Get(gomock.Any(), "CR001").Return(nil, errors.New("redis down"))
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR001").Return(profile, nil)
		expectCreatorData(m, "CR001")
		m.cache.EXPECT().Set(gomock.Any(), "CR001", gomock.Any(), ttl).Return(errors.New("redis down"))

		report, err := service.ComputeInsights(context.Background(), "CR001")

		require.NoError(t, err)
		assert.NotNil(t, report)
	})

	t.Run("Criador não encontrado não é salvo no cache", func(t *testing.T) {
		service, m := newTestService(t)
		service.WithCache(m.cache, ttl)

		m.cache.EXPECT().Get(gomock.Any(), "CR404").Return(nil, nil)
		m.profiles.EXPECT().GetByCreatorID(gomock.Any(), "CR404").Return(nil, nil)

		_, err := service.ComputeInsights(context.Background(), "CR404")

		assert.ErrorIs(t, err, ErrCreatorNotFound)
	})
}

func TestNewService_TrendWindow(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected time.Duration
	}{
		{name: "Sem configuração usa sete dias", cfg: nil, expected: 7 * 24 * time.Hour},
		{name: "Janela configurada", cfg: &config.Config{Insights: config.Insights{TrendWindowDays: 14}}, expected: 14 * 24 * time.Hour},
		{name: "Janela inválida é ignorada", cfg: &config.Config{Insights: config.Insights{TrendWindowDays: -1}}, expected: 7 * 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.cfg, DefaultKnowledge(), nil, nil, nil, nil)
			assert.Equal(t, tt.expected, service.TrendWindow())
		})
	}
}
