package handler

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/creator-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
	"github.com/vfg2006/creator-insights-api/pkg/log"
	"github.com/vfg2006/creator-insights-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetMyInsights retorna o relatório do criador dono do token
func GetMyInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		if strings.TrimSpace(claims.CreatorID) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Token is not linked to a creator profile", nil)
			return
		}

		writeInsights(w, r, service, claims.CreatorID)
	})
}

// GetCreatorInsights retorna o relatório de qualquer criador pelo ID da rota
func GetCreatorInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creatorID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		writeInsights(w, r, service, creatorID)
	})
}

func writeInsights(w http.ResponseWriter, r *http.Request, service insighting.Insighter, creatorID string) {
	logger := log.ForContext(r.Context()).WithField("creator_id", creatorID)
	logger.Info("insights: calculando relatório do criador")

	report, err := service.ComputeInsights(r.Context(), creatorID)
	if err != nil {
		writeInsightsError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, report)
}

func writeInsightsError(w http.ResponseWriter, logger log.Logger, err error) {
	var insightsErr *insighting.InsightsError
	if errors.As(err, &insightsErr) {
		logger.WithError(err).Warn("insights: relatório não calculado")

		var details any
		if insightsErr.Details != "" {
			details = insightsErr.Details
		}
		apiErrors.WriteError(w, insightsErr.Code, insightsErr.Err.Error(), details)
		return
	}

	logger.WithError(err).Error("insights: erro ao calcular relatório")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Could not load creator data", nil)
}

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao serializar resposta")
	}
}

