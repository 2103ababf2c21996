package insighting

import (
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

const (
	topNichesLimit = 3

	// Aproximação de alcance herdada do produto: cada unidade de orçamento vale 10 de alcance
	reachPerBudgetUnit = 10

	lowSuccessRate    = 20.0
	steadySuccessRate = 50.0
	onTimeCompletion  = 80.0
)

var (
	lowSuccessInsights = []string{
		"Focus on campaigns that closely match your niche and audience",
		"Personalize each application with examples of relevant past work",
	}
	steadySuccessInsights = []string{
		"You're on the right track - keep refining your pitch for each brand",
		"Apply to campaigns whose budgets match your audience size",
	}
	highSuccessInsights = []string{
		"Excellent success rate - brands clearly value your profile",
		"Consider raising your rates for new campaigns",
	}

	lateCompletionInsight   = "Deliver accepted campaigns on time to build a reliable reputation with brands"
	onTimeCompletionInsight = "Great job completing your campaigns - keep meeting those deadlines"
)

// CalculateCampaignSuccessMetrics calcula as taxas de sucesso e conclusão das candidaturas.
// Aceitas e concluídas são contadas separadamente pelo status exato.
func CalculateCampaignSuccessMetrics(applications []domain.Application) domain.CampaignSuccessMetrics {
	metrics := domain.CampaignSuccessMetrics{
		TotalApplications:    len(applications),
		BestPerformingNiches: make([]string, 0, topNichesLimit),
	}

	successful := make([]domain.Campaign, 0)
	for _, application := range applications {
		switch application.Status {
		case domain.ApplicationStatusAccepted:
			metrics.AcceptedApplications++
		case domain.ApplicationStatusCompleted:
			metrics.CompletedCampaigns++
			successful = append(successful, application.Campaign)
		}
	}

	if metrics.TotalApplications > 0 {
		metrics.SuccessRate = utils.RoundWithOneDecimalPlace(
			float64(metrics.AcceptedApplications) / float64(metrics.TotalApplications) * 100,
		)
	}

	if metrics.AcceptedApplications > 0 {
		metrics.CompletionRate = utils.RoundWithOneDecimalPlace(
			float64(metrics.CompletedCampaigns) / float64(metrics.AcceptedApplications) * 100,
		)
	}

	if len(successful) > 0 {
		totalBudget := 0.0
		interests := make([]string, 0)
		for _, campaign := range successful {
			totalBudget += campaign.Budget
			interests = append(interests, campaign.TargetAudience.Interests...)
		}

		metrics.AvgBudget = utils.RoundWithTwoDecimalPlace(totalBudget / float64(len(successful)))
		metrics.TotalReach = utils.RoundWithTwoDecimalPlace(totalBudget * reachPerBudgetUnit)

		for _, niche := range rankByFrequency(interests, topNichesLimit) {
			metrics.BestPerformingNiches = append(metrics.BestPerformingNiches, niche.Value)
		}
	}

	metrics.Insights = campaignInsights(metrics.SuccessRate, metrics.CompletionRate)

	return metrics
}

func campaignInsights(successRate, completionRate float64) []string {
	insights := make([]string, 0, 3)

	switch {
	case successRate < lowSuccessRate:
		insights = append(insights, lowSuccessInsights...)
	case successRate < steadySuccessRate:
		insights = append(insights, steadySuccessInsights...)
	default:
		insights = append(insights, highSuccessInsights...)
	}

	if completionRate < onTimeCompletion {
		insights = append(insights, lateCompletionInsight)
	} else {
		insights = append(insights, onTimeCompletionInsight)
	}

	return insights
}
