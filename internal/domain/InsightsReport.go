package domain

// Classificação da tendência de ganhos
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// Prioridades das sugestões de otimização de perfil
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ProfileSuggestion é uma sugestão de melhoria no perfil
type ProfileSuggestion struct {
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
	Impact     string `json:"impact"`
}

// CampaignSuccessMetrics agrega o histórico de candidaturas do criador
type CampaignSuccessMetrics struct {
	TotalApplications    int      `json:"totalApplications"`
	AcceptedApplications int      `json:"acceptedApplications"`
	CompletedCampaigns   int      `json:"completedCampaigns"`
	SuccessRate          float64  `json:"successRate"`    // Percentual com uma casa decimal
	CompletionRate       float64  `json:"completionRate"` // Percentual com uma casa decimal
	AvgBudget            float64  `json:"avgBudget"`
	TotalReach           float64  `json:"totalReach"` // Aproximação: budget * 10
	BestPerformingNiches []string `json:"bestPerformingNiches"`
	Insights             []string `json:"insights"`
}

// MonthlyEarning é o total de pagamentos concluídos em um mês (YYYY-MM)
type MonthlyEarning struct {
	Month    string  `json:"month"`
	Earnings float64 `json:"earnings"`
}

type PerformanceTrends struct {
	MonthlyEarnings []MonthlyEarning `json:"monthlyEarnings"`
	Trend           string           `json:"trend"`
	Growth          float64          `json:"growth"`
}

// PostingTime são as janelas recomendadas de postagem para uma plataforma conectada
type PostingTime struct {
	Platform string   `json:"platform"`
	Times    []string `json:"times"`
}

// InsightsReport é o relatório completo de um criador. É montado a cada requisição e nunca persistido.
type InsightsReport struct {
	EngagementTips         []string               `json:"engagementTips"`
	ProfileOptimization    []ProfileSuggestion    `json:"profileOptimization"`
	CampaignSuccessMetrics CampaignSuccessMetrics `json:"campaignSuccessMetrics"`
	TrendAlerts            []string               `json:"trendAlerts"`
	PerformanceTrends      PerformanceTrends      `json:"performanceTrends"`
	BestPostingTimes       []PostingTime          `json:"bestPostingTimes"`
	ContentRecommendations []string               `json:"contentRecommendations"`
}
