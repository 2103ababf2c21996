package insighting

import (
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const (
	minBioLength       = 100
	minPortfolioItems  = 3
	minSocialPlatforms = 2
	minNicheTags       = 2
)

var (
	bioSuggestion = domain.ProfileSuggestion{
		Priority:   domain.PriorityHigh,
		Suggestion: "Write a detailed bio (at least 100 characters) describing your content, audience and values",
		Impact:     "Profiles with complete bios receive up to 40% more campaign invitations",
	}
	portfolioSuggestion = domain.ProfileSuggestion{
		Priority:   domain.PriorityHigh,
		Suggestion: "Add at least 3 portfolio items showcasing your best brand collaborations",
		Impact:     "A strong portfolio can double your application acceptance rate",
	}
	socialSuggestion = domain.ProfileSuggestion{
		Priority:   domain.PriorityMedium,
		Suggestion: "Connect at least 2 social media platforms to show your full reach",
		Impact:     "Multi-platform creators qualify for 60% more campaigns",
	}
	pricingSuggestion = domain.ProfileSuggestion{
		Priority:   domain.PriorityMedium,
		Suggestion: "Set up your pricing structure so brands know your rates upfront",
		Impact:     "Transparent pricing speeds up brand decisions by around 30%",
	}
	nicheSuggestion = domain.ProfileSuggestion{
		Priority:   domain.PriorityLow,
		Suggestion: "Add more niche tags to help brands discover your profile",
		Impact:     "Better niche targeting improves campaign matching",
	}
)

// BuildProfileOptimization avalia o perfil contra a lista de verificação. Cada verificação é
// independente e o resultado segue a ordem da lista, não a prioridade.
func BuildProfileOptimization(profile domain.Profile) []domain.ProfileSuggestion {
	suggestions := make([]domain.ProfileSuggestion, 0, 5)

	if utf8.RuneCountInString(strings.TrimSpace(profile.Bio)) < minBioLength {
		suggestions = append(suggestions, bioSuggestion)
	}

	if len(profile.Portfolio) < minPortfolioItems {
		suggestions = append(suggestions, portfolioSuggestion)
	}

	if len(profile.SocialStats) < minSocialPlatforms {
		suggestions = append(suggestions, socialSuggestion)
	}

	if len(profile.PricingStructure) == 0 {
		suggestions = append(suggestions, pricingSuggestion)
	}

	if len(profile.Niche) < minNicheTags {
		suggestions = append(suggestions, nicheSuggestion)
	}

	return suggestions
}
