package insighting

import (
	"fmt"
	"time"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const maxTrendAlerts = 4

// BuildTrendAlerts procura a plataforma e o nicho mais pedidos nas campanhas publicadas dentro
// da janela [now-window, now]. A lista pode chegar já filtrada pelo repositório; o filtro é
// refeito aqui para aceitar também uma lista completa.
func BuildTrendAlerts(campaigns []domain.Campaign, now time.Time, window time.Duration, k *Knowledge) []string {
	since := now.Add(-window)
	days := int(window.Hours() / 24)

	platforms := make([]string, 0)
	niches := make([]string, 0)
	for _, campaign := range campaigns {
		if !campaign.IsPublishedSince(since) {
			continue
		}
		platforms = append(platforms, campaign.TargetPlatforms...)
		niches = append(niches, campaign.TargetAudience.Interests...)
	}

	alerts := make([]string, 0, maxTrendAlerts)

	if top := rankByFrequency(platforms, 1); len(top) > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"%s is trending: %d new campaigns are targeting it in the last %d days",
			top[0].Value, top[0].Count, days,
		))
	}

	if top := rankByFrequency(niches, 1); len(top) > 0 {
		alerts = append(alerts, fmt.Sprintf(
			"High demand for %s content: %d new campaigns in the last %d days",
			top[0].Value, top[0].Count, days,
		))
	}

	alerts = append(alerts, k.SeasonalAlerts...)

	if len(alerts) > maxTrendAlerts {
		alerts = alerts[:maxTrendAlerts]
	}

	return alerts
}
