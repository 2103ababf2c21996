// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// SocialStat são as estatísticas de uma rede social conectada pelo criador
type SocialStat struct {
	Platform       string  `json:"platform"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"` // Percentual, ex: 3.5 = 3,5%
	Username       string  `json:"username"`
}

type PortfolioItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type PricingItem struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// Profile é o perfil público de um criador de conteúdo
type Profile struct {
	CreatorID        string          `json:"creator_id"`
	Bio              string          `json:"bio"`
	Niche            []string        `json:"niche"`
	SocialStats      []SocialStat    `json:"social_stats"`
	Portfolio        []PortfolioItem `json:"portfolio"`
	PricingStructure []PricingItem   `json:"pricing_structure"`
}
