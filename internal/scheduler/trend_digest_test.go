package scheduler

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
	"github.com/vfg2006/creator-insights-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

func TestTrendDigestService_runDigest(t *testing.T) {
	now := time.Date(2024, 6, 15, 7, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour
	knowledge := insighting.DefaultKnowledge()

	cfg := &config.Config{
		TrendDigest: config.TrendDigest{CronSchedule: "0 7 * * *", Enabled: true},
	}

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockCampaignRepository)
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Campanhas recentes geram alerta da plataforma mais pedida",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().
					ListPublishedSince(gomock.Any(), now.Add(-window)).
					Return([]domain.Campaign{
						{Status: domain.CampaignStatusPublished, TargetPlatforms: []string{"TikTok"}, CreatedAt: now.Add(-time.Hour)},
						{Status: domain.CampaignStatusPublished, TargetPlatforms: []string{"TikTok"}, CreatedAt: now.Add(-2 * time.Hour)},
					}, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				alerts := status["last_alerts"].([]string)
				require.Len(t, alerts, 3)
				assert.Contains(t, alerts[0], "TikTok")
				assert.Contains(t, alerts[0], "2")
				assert.NotEmpty(t, status["last_run_id"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, now, status["last_sync_completed_at"])
			},
		},
		{
			name: "Sem campanhas restam os alertas sazonais",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().ListPublishedSince(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, knowledge.SeasonalAlerts, status["last_alerts"])
			},
		},
		{
			name: "Erro no repositório é registrado no status",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().ListPublishedSince(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, "db down", status["last_error"])
				assert.Empty(t, status["last_alerts"])
				assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockCampaignRepository(ctrl)
			tt.setup(repo)

			service := NewTrendDigestService(repo, knowledge, window, cfg)
			service.now = func() time.Time { return now }

			service.runDigest(context.Background())

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			tt.validate(t, status)
		})
	}
}

func TestTrendDigestService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCampaignRepository(ctrl)

	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		service := NewTrendDigestService(repo, insighting.DefaultKnowledge(), time.Hour, &config.Config{})
		assert.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Expressão cron inválida retorna erro", func(t *testing.T) {
		service := NewTrendDigestService(repo, insighting.DefaultKnowledge(), time.Hour, &config.Config{
			TrendDigest: config.TrendDigest{CronSchedule: "not a cron", Enabled: true},
		})
		assert.Error(t, service.Start(context.Background()))
	})
}
