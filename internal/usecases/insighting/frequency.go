package insighting

import (
	"sort"
	"strings"
)

type valueCount struct {
	Value string
	Count int
}

// rankByFrequency conta as ocorrências e retorna até limit valores, do mais frequente para o
// menos frequente. Empates mantêm a ordem da primeira ocorrência. Valores vazios são ignorados.
func rankByFrequency(values []string, limit int) []valueCount {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, seen := counts[value]; !seen {
			order = append(order, value)
		}
		counts[value]++
	}

	ranked := make([]valueCount, 0, len(order))
	for _, value := range order {
		ranked = append(ranked, valueCount{Value: value, Count: counts[value]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}
