package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/creator-insights-api/pkg/apiErrors"
)

var (
	ErrInvalidToken     = errors.New("token inválido")
	ErrExpiredToken     = errors.New("token expirado")
	ErrMissingSecretKey = errors.New("chave de assinatura não configurada")
)

// TokenError descreve por que um token foi recusado e qual código a API deve devolver
type TokenError struct {
	Err    error
	Code   string
	Reason string
}

func (e *TokenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Reason)
	}
	return e.Err.Error()
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func newTokenError(baseErr error, reason string) *TokenError {
	code := apiErrors.ErrInvalidToken
	if errors.Is(baseErr, ErrMissingSecretKey) {
		code = apiErrors.ErrInternalServer
	}

	return &TokenError{
		Err:    baseErr,
		Code:   code,
		Reason: reason,
	}
}

// RejectionFor traduz o erro de validação no código e na mensagem devolvidos ao cliente
func RejectionFor(err error) (code string, message string) {
	switch {
	case errors.Is(err, ErrExpiredToken):
		return apiErrors.ErrInvalidToken, "Token expired"
	case errors.Is(err, ErrMissingSecretKey):
		return apiErrors.ErrInternalServer, "Authentication is not configured"
	}

	var tokenErr *TokenError
	if errors.As(err, &tokenErr) {
		return tokenErr.Code, "Invalid token"
	}
	return apiErrors.ErrInvalidToken, "Invalid token"
}
