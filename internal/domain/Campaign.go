package domain

import "time"

// CampaignStatus representa o estado de publicação de uma campanha
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusPublished CampaignStatus = "published"
	CampaignStatusClosed    CampaignStatus = "closed"
)

// TargetAudience descreve o público que a marca quer alcançar com a campanha
type TargetAudience struct {
	Interests []string `json:"interests"`
}

// Campaign é uma campanha publicada por uma marca. Quando vem aninhada em uma
// Application sem dados, todos os campos ficam com o valor zero.
type Campaign struct {
	ID              string         `json:"id"`
	Budget          float64        `json:"budget"`
	TargetPlatforms []string       `json:"target_platforms"`
	TargetAudience  TargetAudience `json:"target_audience"`
	Status          CampaignStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

// IsPublishedSince indica se a campanha está publicada e foi criada a partir de since
func (c Campaign) IsPublishedSince(since time.Time) bool {
	return c.Status == CampaignStatusPublished && !c.CreatedAt.Before(since)
}
