package insighting

import (
	"fmt"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const maxContentRecommendations = 6

// BuildPostingTimes retorna as janelas recomendadas apenas para as plataformas conectadas.
// Plataformas sem entrada na tabela são omitidas.
func BuildPostingTimes(stats []domain.SocialStat, k *Knowledge) []domain.PostingTime {
	postingTimes := make([]domain.PostingTime, 0, len(stats))
	seen := make(map[string]struct{})

	for _, stat := range stats {
		key := normalizeKey(stat.Platform)
		if _, ok := seen[key]; ok {
			continue
		}

		times, ok := k.postingTimesFor(stat.Platform)
		if !ok {
			continue
		}
		seen[key] = struct{}{}

		postingTimes = append(postingTimes, domain.PostingTime{
			Platform: stat.Platform,
			Times:    append([]string(nil), times...),
		})
	}

	return postingTimes
}

// BuildContentRecommendations junta as sugestões dos nichos do perfil, uma sugestão por nicho
// de melhor desempenho e as dicas genéricas, nessa ordem.
func BuildContentRecommendations(niches []string, bestPerformingNiches []string, k *Knowledge) []string {
	recommendations := make([]string, 0, maxContentRecommendations)

	for _, niche := range niches {
		if suggestion, ok := k.nicheSuggestion(niche); ok {
			recommendations = append(recommendations, suggestion)
		}
	}

	for _, niche := range bestPerformingNiches {
		recommendations = append(recommendations, fmt.Sprintf(
			"Create more %s content - it performs well for you", niche,
		))
	}

	recommendations = append(recommendations, k.GenericContentTips...)

	if len(recommendations) > maxContentRecommendations {
		recommendations = recommendations[:maxContentRecommendations]
	}

	return recommendations
}
