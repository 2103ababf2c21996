package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const reportKeyPrefix = "insights:report:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Connect cria o cliente Redis a partir de uma URL redis:// ou de um endereço host:porta
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("erro ao interpretar url do redis: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "erro ao conectar ao redis")
	}

	return client, nil
}

// ReportCache guarda relatórios de insights serializados em JSON
type ReportCache struct {
	client redis.Cmdable
}

func NewReportCache(client redis.Cmdable) *ReportCache {
	return &ReportCache{client: client}
}

func reportKey(creatorID string) string {
	return reportKeyPrefix + creatorID
}

// Get retorna nil, nil quando não há relatório para o criador
func (c *ReportCache) Get(ctx context.Context, creatorID string) (*domain.InsightsReport, error) {
	raw, err := c.client.Get(ctx, reportKey(creatorID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler relatório do criador %s no cache", creatorID)
	}

	report := &domain.InsightsReport{}
	if err := json.Unmarshal(raw, report); err != nil {
		return nil, errors.Wrapf(err, "relatório inválido no cache para o criador %s", creatorID)
	}

	return report, nil
}

func (c *ReportCache) Set(ctx context.Context, creatorID string, report *domain.InsightsReport, ttl time.Duration) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar relatório")
	}

	return c.client.Set(ctx, reportKey(creatorID), raw, ttl).Err()
}
