package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/creator-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schema = []string{
	`CREATE TABLE IF NOT EXISTS creator_profiles (
		creator_id        TEXT PRIMARY KEY,
		bio               TEXT NOT NULL DEFAULT '',
		niche             TEXT[] NOT NULL DEFAULT '{}',
		social_stats      JSONB NOT NULL DEFAULT '[]',
		portfolio         JSONB NOT NULL DEFAULT '[]',
		pricing_structure JSONB NOT NULL DEFAULT '[]'
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		id               TEXT PRIMARY KEY,
		budget           NUMERIC(12, 2) NOT NULL DEFAULT 0,
		target_platforms TEXT[] NOT NULL DEFAULT '{}',
		target_interests TEXT[] NOT NULL DEFAULT '{}',
		status           TEXT NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_status_created_at ON campaigns (status, created_at)`,
	`CREATE TABLE IF NOT EXISTS campaign_applications (
		id          TEXT PRIMARY KEY,
		creator_id  TEXT NOT NULL,
		campaign_id TEXT NOT NULL,
		status      TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campaign_applications_creator ON campaign_applications (creator_id)`,
	`CREATE TABLE IF NOT EXISTS creator_transactions (
		id         TEXT PRIMARY KEY,
		creator_id TEXT NOT NULL,
		type       TEXT NOT NULL,
		status     TEXT NOT NULL,
		amount     NUMERIC(12, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_creator_transactions_creator ON creator_transactions (creator_id)`,
}

func main() {
	seed := flag.Bool("seed", false, "insere um criador de demonstração")
	creatorID := flag.String("creator", "demo-creator", "ID do criador de demonstração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.RunInTransaction(ctx, createTables); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabelas")
	}
	logrus.WithField("duration", time.Since(startTime).String()).Info("Tabelas criadas")

	if !*seed {
		return
	}

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return seedDemoCreator(ctx, tx, *creatorID, time.Now().UTC())
	}); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir criador de demonstração")
	}
	logrus.WithField("creator_id", *creatorID).Info("Criador de demonstração inserido")

	if cfg.SecretKey != "" {
		token, err := authenticating.NewService(cfg).IssueToken(domain.Claims{
			UserEmail:  "demo@example.com",
			UserRoleID: 3,
			CreatorID:  *creatorID,
		}, 24*time.Hour)
		if err != nil {
			logrus.WithError(err).Warn("Erro ao gerar token de demonstração")
			return
		}
		logrus.WithField("token", token).Info("Token de demonstração para GET /v1/me/insights")
	}
}

func generateID() string {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar ID")
	}
	return id
}

func createTables(tx *sql.Tx) error {
	for _, statement := range schema {
		if _, err := tx.Exec(statement); err != nil {
			return err
		}
	}
	return nil
}

// seedDemoCreator insere um perfil incompleto com algumas campanhas para exercitar todos os analisadores
func seedDemoCreator(ctx context.Context, tx *sql.Tx, creatorID string, now time.Time) error {
	socialStats, err := json.Marshal([]domain.SocialStat{
		{Platform: "Instagram", Followers: 12500, EngagementRate: 2.4, Username: "demo.creator"},
		{Platform: "TikTok", Followers: 30400, EngagementRate: 4.1, Username: "democreator"},
	})
	if err != nil {
		return err
	}

	portfolio, err := json.Marshal([]domain.PortfolioItem{
		{Title: "Summer collection", URL: "https://example.com/summer"},
	})
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO creator_profiles (creator_id, bio, niche, social_stats, portfolio, pricing_structure)
		 VALUES ($1, $2, $3, $4, $5, '[]')
		 ON CONFLICT (creator_id) DO NOTHING`,
		creatorID, "Fashion and lifestyle creator", pq.Array([]string{"fashion", "lifestyle"}), socialStats, portfolio,
	)
	if err != nil {
		return err
	}

	applicationStatuses := []domain.ApplicationStatus{
		domain.ApplicationStatusCompleted,
		domain.ApplicationStatusCompleted,
		domain.ApplicationStatusAccepted,
		domain.ApplicationStatusRejected,
	}

	for i, status := range applicationStatuses {
		campaignID := generateID()
		createdAt := now.AddDate(0, 0, -(i*20 + 1))

		_, err = tx.ExecContext(ctx,
			`INSERT INTO campaigns (id, budget, target_platforms, target_interests, status, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			campaignID, float64(500*(i+1)), pq.Array([]string{"Instagram"}), pq.Array([]string{"fashion", "beauty"}),
			string(domain.CampaignStatusPublished), createdAt,
		)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO campaign_applications (id, creator_id, campaign_id, status, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			generateID(), creatorID, campaignID, string(status), createdAt,
		)
		if err != nil {
			return err
		}
	}

	for month := 1; month <= 4; month++ {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO creator_transactions (id, creator_id, type, status, amount, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			generateID(), creatorID,
			string(domain.TransactionTypeCampaignPayment), string(domain.TransactionStatusCompleted),
			float64(250*month), now.AddDate(0, -(4-month), 0),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
