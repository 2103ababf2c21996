package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados do usuário carregados no token de acesso.
// CreatorID vem vazio para usuários administrativos.
type Claims struct {
	UserID     int
	UserEmail  string
	UserRoleID int
	CreatorID  string
	jwt.RegisteredClaims
}
