package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

// Insighter calcula o relatório de insights de um criador
type Insighter interface {
	// ComputeInsights retorna ErrCreatorNotFound quando o criador não tem perfil
	ComputeInsights(ctx context.Context, creatorID string) (*domain.InsightsReport, error)
}

// ReportCache guarda relatórios já calculados. Get retorna nil, nil quando não há entrada.
type ReportCache interface {
	Get(ctx context.Context, creatorID string) (*domain.InsightsReport, error)
	Set(ctx context.Context, creatorID string, report *domain.InsightsReport, ttl time.Duration) error
}
