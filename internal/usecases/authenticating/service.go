package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/creator-insights-api/internal/config"
	"github.com/vfg2006/creator-insights-api/internal/domain"
)

const defaultTokenTTL = 24 * time.Hour

// Authenticator valida os tokens de acesso emitidos pela plataforma
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	IssueToken(claims domain.Claims, ttl time.Duration) (string, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// IssueToken assina as claims com HS256. Sem ttl o token vale 24 horas.
func (s *Service) IssueToken(claims domain.Claims, ttl time.Duration) (string, error) {
	if s.cfg == nil || s.cfg.SecretKey == "" {
		return "", newTokenError(ErrMissingSecretKey, "SECRET_KEY vazio")
	}

	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if s.cfg == nil || s.cfg.SecretKey == "" {
		return nil, newTokenError(ErrMissingSecretKey, "SECRET_KEY vazio")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newTokenError(ErrExpiredToken, err.Error())
		}
		return nil, newTokenError(ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, newTokenError(ErrInvalidToken, "claims inválidas")
}
