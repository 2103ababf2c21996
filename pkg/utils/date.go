package utils

import "time"

// MonthKey retorna o mês civil (UTC) da data no formato YYYY-MM
func MonthKey(date time.Time) string {
	return date.UTC().Format("2006-01")
}
