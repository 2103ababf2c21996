package insighting

import (
	"time"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// Snapshot é o conjunto de dados de um criador lido de uma só vez pelo orquestrador
type Snapshot struct {
	Profile         domain.Profile
	Applications    []domain.Application
	Transactions    []domain.Transaction
	RecentCampaigns []domain.Campaign
	Now             time.Time
}

// BuildReport executa todos os analisadores sobre o mesmo snapshot. É uma função pura:
// o mesmo snapshot sempre gera o mesmo relatório.
func BuildReport(snapshot Snapshot, trendWindow time.Duration, k *Knowledge) *domain.InsightsReport {
	campaignMetrics := CalculateCampaignSuccessMetrics(snapshot.Applications)

	return &domain.InsightsReport{
		EngagementTips:         BuildEngagementTips(snapshot.Profile.SocialStats, k),
		ProfileOptimization:    BuildProfileOptimization(snapshot.Profile),
		CampaignSuccessMetrics: campaignMetrics,
		TrendAlerts:            BuildTrendAlerts(snapshot.RecentCampaigns, snapshot.Now, trendWindow, k),
		PerformanceTrends:      CalculatePerformanceTrends(snapshot.Transactions),
		BestPostingTimes:       BuildPostingTimes(snapshot.Profile.SocialStats, k),
		ContentRecommendations: BuildContentRecommendations(
			snapshot.Profile.Niche,
			campaignMetrics.BestPerformingNiches,
			k,
		),
	}
}
