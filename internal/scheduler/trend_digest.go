package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/creator-insights-api/pkg/log"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

const defaultDigestTimeout = 2 * time.Minute

// TrendDigestConfig representa a configuração do agendador do resumo de tendências
type TrendDigestConfig struct {
	CronSchedule string
	Enabled      bool
	TrendWindow  time.Duration
}

// TrendDigestService calcula periodicamente os alertas de tendência da plataforma inteira
type TrendDigestService struct {
	scheduler           *gocron.Scheduler
	config              TrendDigestConfig
	campaignRepo        repository.CampaignRepository
	knowledge           *insighting.Knowledge
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastAlerts          []string
	lastError           string
}

// NewTrendDigestService cria o serviço usando a mesma janela do cálculo de insights
func NewTrendDigestService(
	campaignRepo repository.CampaignRepository,
	knowledge *insighting.Knowledge,
	trendWindow time.Duration,
	appConfig *config.Config,
) *TrendDigestService {
	digestConfig := TrendDigestConfig{
		CronSchedule: appConfig.TrendDigest.CronSchedule,
		Enabled:      appConfig.TrendDigest.Enabled,
		TrendWindow:  trendWindow,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"enabled":       digestConfig.Enabled,
		"trend_window":  digestConfig.TrendWindow.String(),
	}).Info("Configuração do resumo de tendências carregada")

	return &TrendDigestService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       digestConfig,
		campaignRepo: campaignRepo,
		knowledge:    knowledge,
		now:          time.Now,
		lastAlerts:   []string{},
	}
}

// Start agenda o job e para o agendador quando o contexto for cancelado
func (s *TrendDigestService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Resumo de tendências desabilitado por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do resumo de tendências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDigest(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo de tendências: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador do resumo de tendências")
		s.scheduler.Stop()
	}()

	return nil
}

// runDigest busca as campanhas da janela e registra os alertas com um ID de execução
func (s *TrendDigestService) runDigest(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Resumo de tendências já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	runID, err := utils.GenerateID()
	if err != nil {
		runID = startTime.UTC().Format("20060102T150405")
	}
	s.lastRunID = runID
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logger := log.L.WithField("run_id", runID)
	logger.Info("Iniciando resumo de tendências")

	ctx, cancel := context.WithTimeout(ctx, defaultDigestTimeout)
	defer cancel()

	campaigns, err := s.campaignRepo.ListPublishedSince(ctx, startTime.Add(-s.config.TrendWindow))
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar campanhas para o resumo de tendências")
		s.syncMutex.Lock()
		s.lastError = err.Error()
		s.syncMutex.Unlock()
		return
	}

	alerts := insighting.BuildTrendAlerts(campaigns, startTime, s.config.TrendWindow, s.knowledge)
	for _, alert := range alerts {
		logger.WithField("alert", alert).Info("Alerta de tendência")
	}

	completedAt := s.now()
	logger.WithFields(log.Fields{
		"campaigns": len(campaigns),
		"alerts":    len(alerts),
		"duration":  completedAt.Sub(startTime).String(),
	}).Info("Resumo de tendências concluído")

	s.syncMutex.Lock()
	s.lastAlerts = alerts
	s.lastError = ""
	s.lastSyncCompletedAt = completedAt
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente o resumo de tendências
func (s *TrendDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Resumo de tendências já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando resumo manual de tendências")
	go s.runDigest(context.Background())
}

// GetStatus retorna o status atual do resumo
func (s *TrendDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_alerts":            append([]string(nil), s.lastAlerts...),
		"last_error":             s.lastError,
	}
}
