// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/creator-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	profilesTable = "creator_profiles p"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ProfileRepository interface {
	// GetByCreatorID retorna nil, nil quando o criador não tem perfil
	GetByCreatorID(ctx context.Context, creatorID string) (*domain.Profile, error)
}

type profileRepository struct {
	conn postgres.Queryer
}

func NewProfileRepository(conn postgres.Queryer) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

func buildProfileQuery(creatorID string) (string, []interface{}, error) {
	return squirrel.
		Select(
			"p.creator_id",
			"p.bio",
			"p.niche",
			"p.social_stats",
			"p.portfolio",
			"p.pricing_structure",
		).
		From(profilesTable).
		Where(squirrel.Eq{"p.creator_id": creatorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *profileRepository) GetByCreatorID(ctx context.Context, creatorID string) (*domain.Profile, error) {
	query, args, err := buildProfileQuery(creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de perfil")
	}

	var (
		profile     domain.Profile
		bio         sql.NullString
		niche       pq.StringArray
		socialStats []byte
		portfolio   []byte
		pricing     []byte
	)

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&profile.CreatorID, &bio, &niche, &socialStats, &portfolio, &pricing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar perfil do criador %s", creatorID)
	}

	profile.Bio = bio.String
	profile.Niche = []string(niche)

	if err := decodeJSONColumn(socialStats, &profile.SocialStats); err != nil {
		return nil, errors.Wrapf(err, "social_stats inválido para o criador %s", creatorID)
	}
	if err := decodeJSONColumn(portfolio, &profile.Portfolio); err != nil {
		return nil, errors.Wrapf(err, "portfolio inválido para o criador %s", creatorID)
	}
	if err := decodeJSONColumn(pricing, &profile.PricingStructure); err != nil {
		return nil, errors.Wrapf(err, "pricing_structure inválido para o criador %s", creatorID)
	}

	return &profile, nil
}

// decodeJSONColumn decodifica uma coluna jsonb. Colunas nulas mantêm o destino vazio.
func decodeJSONColumn(raw []byte, target interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}
