package insighting

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/pkg/log"
)

const defaultTrendWindow = 7 * 24 * time.Hour

// Service orquestra a leitura dos dados do criador e a execução dos analisadores
type Service struct {
	profileRepository     repository.ProfileRepository
	applicationRepository repository.ApplicationRepository
	transactionRepository repository.TransactionRepository
	campaignRepository    repository.CampaignRepository
	knowledge             *Knowledge
	trendWindow           time.Duration
	now                   func() time.Time
	reportCache           ReportCache
	reportCacheTTL        time.Duration
	useCache              bool
}

// NewService cria uma nova instância do serviço de insights
func NewService(
	cfg *config.Config,
	knowledge *Knowledge,
	profileRepo repository.ProfileRepository,
	applicationRepo repository.ApplicationRepository,
	transactionRepo repository.TransactionRepository,
	campaignRepo repository.CampaignRepository,
) *Service {
	trendWindow := defaultTrendWindow
	if cfg != nil && cfg.Insights.TrendWindowDays > 0 {
		trendWindow = time.Duration(cfg.Insights.TrendWindowDays) * 24 * time.Hour
	}

	return &Service{
		profileRepository:     profileRepo,
		applicationRepository: applicationRepo,
		transactionRepository: transactionRepo,
		campaignRepository:    campaignRepo,
		knowledge:             knowledge,
		trendWindow:           trendWindow,
		now:                   time.Now,
		useCache:              false, // Inicialmente não usa cache
	}
}

// WithCache habilita o cache de relatórios
func (s *Service) WithCache(cache ReportCache, ttl time.Duration) *Service {
	s.reportCache = cache
	s.reportCacheTTL = ttl
	s.useCache = cache != nil && ttl > 0
	return s
}

// TrendWindow retorna a janela usada para buscar campanhas recentes
func (s *Service) TrendWindow() time.Duration {
	return s.trendWindow
}

// ComputeInsights lê os dados do criador e monta o relatório completo.
// Só falha se o perfil não existir ou se a leitura dos dados falhar.
func (s *Service) ComputeInsights(ctx context.Context, creatorID string) (*domain.InsightsReport, error) {
	creatorID = strings.TrimSpace(creatorID)
	if creatorID == "" {
		return nil, newCreatorIDRequiredError()
	}

	logger := log.ForContext(ctx).WithField("creator_id", creatorID)

	if s.useCache {
		if report := s.getCachedReport(ctx, creatorID); report != nil {
			logger.Debug("insights: relatório encontrado no cache")
			return report, nil
		}
	}

	snapshot, err := s.fetchSnapshot(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	// Requisição cancelada durante a leitura: nenhum resultado parcial é devolvido
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := BuildReport(*snapshot, s.trendWindow, s.knowledge)

	logger.WithFields(log.Fields{
		"creator_applications":     len(snapshot.Applications),
		"creator_transactions":     len(snapshot.Transactions),
		"creator_recent_campaigns": len(snapshot.RecentCampaigns),
		"creator_trend":            report.PerformanceTrends.Trend,
	}).Debug("insights: relatório calculado")

	if s.useCache {
		if err := s.reportCache.Set(ctx, creatorID, report, s.reportCacheTTL); err != nil {
			logger.WithError(err).Warn("insights: erro ao salvar relatório no cache")
		}
	}

	return report, nil
}

// fetchSnapshot busca o perfil e, se existir, as demais coleções em paralelo
func (s *Service) fetchSnapshot(ctx context.Context, creatorID string) (*Snapshot, error) {
	logger := log.ForContext(ctx).WithField("creator_id", creatorID)

	profile, err := s.profileRepository.GetByCreatorID(ctx, creatorID)
	if err != nil {
		logger.WithError(err).Error("insights: erro ao buscar perfil do criador")
		return nil, err
	}

	if profile == nil {
		logger.Warn("insights: criador sem perfil")
		return nil, newCreatorNotFoundError(creatorID)
	}

	now := s.now()
	snapshot := &Snapshot{
		Profile: *profile,
		Now:     now,
	}

	var (
		applicationsErr error
		transactionsErr error
		campaignsErr    error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		snapshot.Applications, applicationsErr = s.applicationRepository.ListByCreatorID(ctx, creatorID)
	}()

	go func() {
		defer wg.Done()
		snapshot.Transactions, transactionsErr = s.transactionRepository.ListByCreatorID(ctx, creatorID)
	}()

	go func() {
		defer wg.Done()
		snapshot.RecentCampaigns, campaignsErr = s.campaignRepository.ListPublishedSince(ctx, now.Add(-s.trendWindow))
	}()

	wg.Wait()

	// Ordem fixa para que o mesmo cenário de falha sempre devolva o mesmo erro
	for _, fetchErr := range []error{applicationsErr, transactionsErr, campaignsErr} {
		if fetchErr != nil {
			logger.WithError(fetchErr).Error("insights: erro ao buscar dados do criador")
			return nil, fetchErr
		}
	}

	return snapshot, nil
}

func (s *Service) getCachedReport(ctx context.Context, creatorID string) *domain.InsightsReport {
	report, err := s.reportCache.Get(ctx, creatorID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("creator_id", creatorID).
			Warn("insights: erro ao ler relatório do cache")
		return nil
	}
	return report
}
