package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

type CampaignRepository interface {
	// ListPublishedSince retorna as campanhas publicadas criadas a partir de since
	ListPublishedSince(ctx context.Context, since time.Time) ([]domain.Campaign, error)
}

type campaignRepository struct {
	conn postgres.Queryer
}

func NewCampaignRepository(conn postgres.Queryer) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func buildPublishedSinceQuery(since time.Time) (string, []interface{}, error) {
	return squirrel.
		Select(
			"c.id",
			"c.budget",
			"c.target_platforms",
			"c.target_interests",
			"c.status",
			"c.created_at",
		).
		From(campaignsTable).
		Where(squirrel.Eq{"c.status": string(domain.CampaignStatusPublished)}).
		Where(squirrel.GtOrEq{"c.created_at": since}).
		OrderBy("c.created_at ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *campaignRepository) ListPublishedSince(ctx context.Context, since time.Time) ([]domain.Campaign, error) {
	query, args, err := buildPublishedSinceQuery(since)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de campanhas")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar campanhas publicadas")
	}
	defer rows.Close()

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		var (
			campaign  domain.Campaign
			status    string
			platforms pq.StringArray
			interests pq.StringArray
			createdAt sql.NullTime
		)

		if err := rows.Scan(&campaign.ID, &campaign.Budget, &platforms, &interests, &status, &createdAt); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear campanha")
		}

		campaign.TargetPlatforms = []string(platforms)
		campaign.TargetAudience.Interests = []string(interests)
		campaign.Status = domain.CampaignStatus(status)
		campaign.CreatedAt = createdAt.Time

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de campanhas")
	}

	return campaigns, nil
}
