package main

import (
	"context"
	"os"
	"os/signal"
	"path"
	"runtime"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/cache"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository"
	"github.com/vfg2006/creator-insights-api/internal/api"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/scheduler"
	"github.com/vfg2006/creator-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-insights-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	// SIGINT/SIGTERM cancelam o contexto e disparam o shutdown do servidor
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	profileRepo := repository.NewProfileRepository(pgConn)
	applicationRepo := repository.NewApplicationRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)

	knowledge, err := insighting.LoadKnowledge(cfg.Insights.KnowledgeFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar tabelas de conhecimento")
	}

	authenticator := authenticating.NewService(cfg)

	insightService := insighting.NewService(cfg, knowledge, profileRepo, applicationRepo, transactionRepo, campaignRepo)

	if cfg.Redis.ReportCacheEnabled {
		redisClient, err := cache.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			// Sem redis o serviço continua calculando cada relatório
			logrus.WithError(err).Error("Erro ao conectar ao Redis, cache de relatórios desabilitado")
		} else {
			defer redisClient.Close()
			insightService.WithCache(cache.NewReportCache(redisClient), cfg.Redis.ReportCacheTTL)
			logrus.WithField("ttl", cfg.Redis.ReportCacheTTL.String()).Info("Cache de relatórios habilitado")
		}
	}

	trendDigestService := scheduler.NewTrendDigestService(
		campaignRepo,
		knowledge,
		insightService.TrendWindow(),
		cfg,
	)

	if err := trendDigestService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do resumo de tendências")
	} else {
		logrus.Info("Agendador do resumo de tendências iniciado com sucesso")
	}

	server, err := api.New(cfg, insightService, authenticator, trendDigestService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
