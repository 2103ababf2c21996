package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	"github.com/vfg2006/creator-insights-api/internal/usecases/authenticating"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, auth authenticating.Authenticator, roleID int) string {
	t.Helper()
	token, err := auth.IssueToken(domain.Claims{UserID: 1, UserRoleID: roleID, CreatorID: "CR001"}, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{SecretKey: "test-secret"})

	var captured *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name           string
		path           string
		authorization  string
		expectedStatus int
	}{
		{name: "Healthcheck é público", path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Sem cabeçalho", path: "/v1/me/insights", expectedStatus: http.StatusUnauthorized},
		{name: "Sem prefixo Bearer", path: "/v1/me/insights", authorization: "abc", expectedStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/me/insights", authorization: "Bearer abc", expectedStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/me/insights", authorization: "Bearer " + issueToken(t, auth, RoleCreator), expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}

	require.NotNil(t, captured)
	assert.Equal(t, "CR001", captured.CreatorID)
}

func TestRoleMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{SecretKey: "test-secret"})

	tests := []struct {
		name           string
		roleID         int
		authenticated  bool
		expectedStatus int
	}{
		{name: "Administrador acessa", roleID: RoleAdmin, authenticated: true, expectedStatus: http.StatusOK},
		{name: "Supervisor acessa", roleID: RoleSupervisor, authenticated: true, expectedStatus: http.StatusOK},
		{name: "Criador é bloqueado", roleID: RoleCreator, authenticated: true, expectedStatus: http.StatusForbidden},
		{name: "Sem autenticação", authenticated: false, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handler http.Handler = AdminOrSupervisor()(okHandler())
			req := httptest.NewRequest(http.MethodGet, "/v1/creators/CR001/insights", nil)
			if tt.authenticated {
				handler = AuthMiddleware(auth)(handler)
				req.Header.Set("Authorization", "Bearer "+issueToken(t, auth, tt.roleID))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(okHandler())

	t.Run("Reaproveita o ID de correlação recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
	})

	t.Run("Gera um ID quando não recebe", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me/insights", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	t.Run("Preflight de origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/me/insights", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me/insights", nil)
		req.Header.Set("Origin", "https://unknown.example.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Curinga libera qualquer origem", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me/insights", nil)
		req.Header.Set("Origin", "https://any.example.com")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "https://any.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
