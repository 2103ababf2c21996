package insighting

import (
	"sort"

	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

const (
	performanceMonths = 6
	trendSpan         = 3

	increasingFactor = 1.1
	decreasingFactor = 0.9
)

// CalculatePerformanceTrends agrupa os pagamentos de campanha concluídos por mês (YYYY-MM),
// mantém os últimos seis meses com pagamento e classifica a tendência. Meses sem pagamento
// não são preenchidos.
func CalculatePerformanceTrends(transactions []domain.Transaction) domain.PerformanceTrends {
	earningsByMonth := make(map[string]float64)
	for _, transaction := range transactions {
		if !transaction.IsCompletedCampaignPayment() {
			continue
		}
		earningsByMonth[utils.MonthKey(transaction.CreatedAt)] += transaction.Amount
	}

	months := make([]string, 0, len(earningsByMonth))
	for month := range earningsByMonth {
		months = append(months, month)
	}
	sort.Strings(months)

	if len(months) > performanceMonths {
		months = months[len(months)-performanceMonths:]
	}

	series := make([]domain.MonthlyEarning, 0, len(months))
	for _, month := range months {
		series = append(series, domain.MonthlyEarning{
			Month:    month,
			Earnings: utils.RoundWithTwoDecimalPlace(earningsByMonth[month]),
		})
	}

	return domain.PerformanceTrends{
		MonthlyEarnings: series,
		Trend:           classifyTrend(series),
		Growth:          calculateGrowth(series),
	}
}

// classifyTrend compara a soma dos últimos três meses com a dos três anteriores
func classifyTrend(series []domain.MonthlyEarning) string {
	if len(series) < 2 {
		return domain.TrendStable
	}

	recentStart := max(len(series)-trendSpan, 0)
	previousStart := max(recentStart-trendSpan, 0)

	recent := sumEarnings(series[recentStart:])
	previous := sumEarnings(series[previousStart:recentStart])

	switch {
	case recent > previous*increasingFactor:
		return domain.TrendIncreasing
	case recent < previous*decreasingFactor:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

// calculateGrowth é a variação percentual entre os dois últimos meses. Com o mês anterior zerado
// retorna 100 se houve ganho e 0 caso contrário.
func calculateGrowth(series []domain.MonthlyEarning) float64 {
	if len(series) < 2 {
		return 0
	}

	last := series[len(series)-1].Earnings
	previous := series[len(series)-2].Earnings

	if previous == 0 {
		if last > 0 {
			return 100
		}
		return 0
	}

	return utils.RoundWithOneDecimalPlace((last - previous) / previous * 100)
}

func sumEarnings(series []domain.MonthlyEarning) float64 {
	total := 0.0
	for _, entry := range series {
		total += entry.Earnings
	}
	return total
}
