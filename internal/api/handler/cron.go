package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
	"github.com/vfg2006/creator-insights-api/pkg/log"
)

// Tipos de job aceitos em /v1/cron/jobs/:type/run
const (
	CronJobTypeTrendDigest = "trend-digest"
	CronJobTypeAll         = "all"
)

// CronJob é um job agendado que também pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os jobs agendados indexados pelo tipo
type CronJobServices struct {
	TrendDigestService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.TrendDigestService != nil {
		jobs[CronJobTypeTrendDigest] = s.TrendDigestService
	}
	return jobs
}

// RunCronJob executa manualmente um job específico
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: trend-digest, all", nil)
				return
			}
			job.TriggerManualSync()
		}

		logger.WithField("type", cronType).Info("cron: job disparado manualmente")

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	})
}
