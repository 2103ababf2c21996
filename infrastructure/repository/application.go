package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	applicationsTable = "campaign_applications ca"
)

type ApplicationRepository interface {
	// ListByCreatorID retorna as candidaturas com a campanha preenchida.
	// Candidaturas cuja campanha não existe mais vêm com a campanha zerada.
	ListByCreatorID(ctx context.Context, creatorID string) ([]domain.Application, error)
}

type applicationRepository struct {
	conn postgres.Queryer
}

func NewApplicationRepository(conn postgres.Queryer) ApplicationRepository {
	return &applicationRepository{
		conn: conn,
	}
}

func buildApplicationsQuery(creatorID string) (string, []interface{}, error) {
	return squirrel.
		Select(
			"ca.id",
			"ca.status",
			"ca.created_at",
			"COALESCE(c.id, '')",
			"COALESCE(c.budget, 0)",
			"c.target_platforms",
			"c.target_interests",
			"COALESCE(c.status, '')",
			"c.created_at",
		).
		From(applicationsTable).
		LeftJoin(campaignsTable + " ON c.id = ca.campaign_id").
		Where(squirrel.Eq{"ca.creator_id": creatorID}).
		OrderBy("ca.created_at ASC", "ca.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *applicationRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]domain.Application, error) {
	query, args, err := buildApplicationsQuery(creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de candidaturas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar candidaturas do criador %s", creatorID)
	}
	defer rows.Close()

	applications := make([]domain.Application, 0)
	for rows.Next() {
		var (
			application       domain.Application
			status            string
			campaignStatus    string
			platforms         pq.StringArray
			interests         pq.StringArray
			campaignCreatedAt sql.NullTime
		)

		if err := rows.Scan(
			&application.ID,
			&status,
			&application.CreatedAt,
			&application.Campaign.ID,
			&application.Campaign.Budget,
			&platforms,
			&interests,
			&campaignStatus,
			&campaignCreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear candidatura")
		}

		application.Status = domain.ApplicationStatus(status)
		application.Campaign.TargetPlatforms = []string(platforms)
		application.Campaign.TargetAudience.Interests = []string(interests)
		application.Campaign.Status = domain.CampaignStatus(campaignStatus)
		application.Campaign.CreatedAt = campaignCreatedAt.Time

		applications = append(applications, application)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de candidaturas")
	}

	return applications, nil
}
