package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength     = 8
)

// GenerateID gera um identificador curto usado em execuções de jobs e dados de demonstração
func GenerateID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
