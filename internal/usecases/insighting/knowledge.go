package insighting

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var defaultKnowledge []byte

type EngagementTiers struct {
	Low    []string `yaml:"low"`
	Medium []string `yaml:"medium"`
	High   []string `yaml:"high"`
}

// PlatformEngagementRule gera Tip quando a taxa de engajamento na plataforma fica abaixo de Below
type PlatformEngagementRule struct {
	Platform string  `yaml:"platform"`
	Below    float64 `yaml:"below"`
	Tip      string  `yaml:"tip"`
}

// Knowledge reúne as tabelas estáticas de regras de negócio usadas pelos analisadores.
// Depois de carregado é somente leitura e pode ser compartilhado entre requisições.
type Knowledge struct {
	EngagementTiers         EngagementTiers          `yaml:"engagement_tiers"`
	PlatformEngagementRules []PlatformEngagementRule `yaml:"platform_engagement_rules"`
	PostingTimes            map[string][]string      `yaml:"posting_times"`
	NicheContent            map[string]string        `yaml:"niche_content"`
	GenericContentTips      []string                 `yaml:"generic_content_tips"`
	SeasonalAlerts          []string                 `yaml:"seasonal_alerts"`
}

// LoadKnowledge carrega as tabelas embutidas no binário. Com path, cada tabela presente no
// arquivo substitui a embutida por inteiro; as ausentes continuam as embutidas.
func LoadKnowledge(path string) (*Knowledge, error) {
	defaults, err := parseKnowledge(defaultKnowledge)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return defaults, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler arquivo de conhecimento %s", path)
	}

	override, err := parseKnowledge(content)
	if err != nil {
		return nil, errors.Wrapf(err, "arquivo %s", path)
	}

	return override.withFallback(defaults), nil
}

func (k *Knowledge) withFallback(defaults *Knowledge) *Knowledge {
	if len(k.EngagementTiers.Low) == 0 && len(k.EngagementTiers.Medium) == 0 && len(k.EngagementTiers.High) == 0 {
		k.EngagementTiers = defaults.EngagementTiers
	}
	if len(k.PlatformEngagementRules) == 0 {
		k.PlatformEngagementRules = defaults.PlatformEngagementRules
	}
	if len(k.PostingTimes) == 0 {
		k.PostingTimes = defaults.PostingTimes
	}
	if len(k.NicheContent) == 0 {
		k.NicheContent = defaults.NicheContent
	}
	if len(k.GenericContentTips) == 0 {
		k.GenericContentTips = defaults.GenericContentTips
	}
	if len(k.SeasonalAlerts) == 0 {
		k.SeasonalAlerts = defaults.SeasonalAlerts
	}
	return k
}

// DefaultKnowledge retorna as tabelas embutidas. Entra em pânico se o YAML embutido for inválido.
func DefaultKnowledge() *Knowledge {
	k, err := parseKnowledge(defaultKnowledge)
	if err != nil {
		panic(err)
	}
	return k
}

func parseKnowledge(raw []byte) (*Knowledge, error) {
	k := &Knowledge{}
	if err := yaml.Unmarshal(raw, k); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar tabelas de conhecimento")
	}

	// Chaves normalizadas para busca sem diferenciar maiúsculas
	postingTimes := make(map[string][]string, len(k.PostingTimes))
	for platform, times := range k.PostingTimes {
		postingTimes[normalizeKey(platform)] = times
	}
	k.PostingTimes = postingTimes

	nicheContent := make(map[string]string, len(k.NicheContent))
	for niche, suggestion := range k.NicheContent {
		nicheContent[normalizeKey(niche)] = suggestion
	}
	k.NicheContent = nicheContent

	for i := range k.PlatformEngagementRules {
		k.PlatformEngagementRules[i].Platform = normalizeKey(k.PlatformEngagementRules[i].Platform)
	}

	return k, nil
}

func (k *Knowledge) platformRule(platform string) (PlatformEngagementRule, bool) {
	key := normalizeKey(platform)
	for _, rule := range k.PlatformEngagementRules {
		if rule.Platform == key {
			return rule, true
		}
	}
	return PlatformEngagementRule{}, false
}

func (k *Knowledge) postingTimesFor(platform string) ([]string, bool) {
	times, ok := k.PostingTimes[normalizeKey(platform)]
	if !ok || len(times) == 0 {
		return nil, false
	}
	return times, true
}

func (k *Knowledge) nicheSuggestion(niche string) (string, bool) {
	suggestion, ok := k.NicheContent[normalizeKey(niche)]
	return suggestion, ok
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
