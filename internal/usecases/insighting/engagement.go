package insighting

import "github.com/vfg2006/creator-insights-api/internal/domain"

const (
	maxEngagementTips = 5

	lowEngagementCeiling    = 2.0
	mediumEngagementCeiling = 4.0
)

// BuildEngagementTips gera dicas a partir da taxa média de engajamento e dos limites por plataforma.
// Sem redes conectadas não existe média e apenas as regras por plataforma seriam avaliadas.
func BuildEngagementTips(stats []domain.SocialStat, k *Knowledge) []string {
	tips := make([]string, 0, maxEngagementTips)

	if len(stats) > 0 {
		tips = append(tips, tierTips(averageEngagement(stats), k)...)
	}

	for _, stat := range stats {
		rule, ok := k.platformRule(stat.Platform)
		if ok && stat.EngagementRate < rule.Below {
			tips = append(tips, rule.Tip)
		}
	}

	if len(tips) > maxEngagementTips {
		tips = tips[:maxEngagementTips]
	}

	return tips
}

func averageEngagement(stats []domain.SocialStat) float64 {
	total := 0.0
	for _, stat := range stats {
		total += stat.EngagementRate
	}
	return total / float64(len(stats))
}

func tierTips(avg float64, k *Knowledge) []string {
	switch {
	case avg < lowEngagementCeiling:
		return k.EngagementTiers.Low
	case avg < mediumEngagementCeiling:
		return k.EngagementTiers.Medium
	default:
		return k.EngagementTiers.High
	}
}
