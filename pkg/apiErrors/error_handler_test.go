package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		expectedStatus int
	}{
		{name: "Criador não encontrado", code: ErrCreatorNotFound, expectedStatus: http.StatusNotFound},
		{name: "Dados obrigatórios ausentes", code: ErrMissingRequiredData, expectedStatus: http.StatusBadRequest},
		{name: "Token inválido", code: ErrInvalidToken, expectedStatus: http.StatusUnauthorized},
		{name: "Rota inexistente", code: ErrRouteNotFound, expectedStatus: http.StatusNotFound},
		{name: "Método não suportado", code: ErrMethodNotAllowed, expectedStatus: http.StatusMethodNotAllowed},
		{name: "Código desconhecido vira 500", code: "XYZ_999", expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
